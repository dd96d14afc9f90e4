package validation

import (
	"github.com/aldenmoor/levelforge/internal/entities/character"
)

// Bonuses holds the stat contributions progression should have produced,
// split by track
type Bonuses struct {
	Class      map[character.Stat]int
	Profession map[character.Stat]int
	Race       map[character.Stat]int

	ClassFreePoints      int
	ProfessionFreePoints int
	RaceFreePoints       int
}

// TotalFreePoints sums expected free-point grants across all tracks
func (b *Bonuses) TotalFreePoints() int {
	return b.ClassFreePoints + b.ProfessionFreePoints + b.RaceFreePoints
}

// StatAllocation is the per-stat outcome of reverse-allocation analysis.
// FreePointsAllocated is how many free points must have gone into the
// stat; Discrepancy is negative when the final value is below what
// progression alone produces, which free points cannot explain.
type StatAllocation struct {
	Base                    int
	ClassBonus              int
	ProfessionBonus         int
	RaceBonus               int
	ExpectedFromProgression int
	Current                 int
	FreePointsAllocated     int
	Discrepancy             int
}

// Impossible reports whether the allocation cannot be produced by the
// progression rules
func (a StatAllocation) Impossible() bool {
	return a.Discrepancy < 0
}

// Analysis is the full reverse-allocation result. It is produced without
// mutating the character.
type Analysis struct {
	Allocations             map[character.Stat]StatAllocation
	Bonuses                 *Bonuses
	TotalExpectedFreePoints int
	TotalFreePointsUsed     int
	RemainingFreePoints     int
}

// HasImpossibleAllocation reports whether any stat is unreachable
func (a *Analysis) HasImpossibleAllocation() bool {
	for _, alloc := range a.Allocations {
		if alloc.Impossible() {
			return true
		}
	}
	return false
}

// Discrepancy statuses
const (
	StatusOverAllocated  = "over_allocated"
	StatusUnderAllocated = "under_allocated"
	StatusImpossible     = "impossible_allocation"
)

// StatDiscrepancy describes one stat that failed validation
type StatDiscrepancy struct {
	Expected       int
	Actual         int
	Difference     int
	FreePointsUsed int
	Status         string
}

// FreePointsReport is the free-point balance section of a report
type FreePointsReport struct {
	ExpectedTotal int
	Spent         int
	Current       int
	Difference    int
	Match         bool
}

// Report is the structured validation result. Validation never fails past
// this boundary: a broken character produces a Report, not an error.
type Report struct {
	Valid             bool
	Type              character.Classification
	StatDiscrepancies map[character.Stat]StatDiscrepancy
	MetaIssues        []string
	FreePoints        *FreePointsReport
	Summary           string

	AutoCorrected  bool
	PointsAdjusted int

	ConvertedToCalculated bool

	Analysis *Analysis
}
