// Package character implements the character aggregate: the stat ledger,
// progression history tracks, tier thresholds, free points, and health.
package character

import (
	"math"

	"github.com/aldenmoor/levelforge/internal/errors"
)

// Stat identifies one of the nine character attributes
type Stat string

// The nine stats
const (
	StatVitality     Stat = "vitality"
	StatEndurance    Stat = "endurance"
	StatStrength     Stat = "strength"
	StatDexterity    Stat = "dexterity"
	StatToughness    Stat = "toughness"
	StatIntelligence Stat = "intelligence"
	StatWillpower    Stat = "willpower"
	StatWisdom       Stat = "wisdom"
	StatPerception   Stat = "perception"
)

// Stats returns all stats in canonical order
func Stats() []Stat {
	return []Stat{
		StatVitality,
		StatEndurance,
		StatStrength,
		StatDexterity,
		StatToughness,
		StatIntelligence,
		StatWillpower,
		StatWisdom,
		StatPerception,
	}
}

// ParseStat converts a string to a Stat, validating it against the nine
// known stats
func ParseStat(s string) (Stat, error) {
	for _, stat := range Stats() {
		if string(stat) == s {
			return stat, nil
		}
	}
	return "", errors.InvalidArgumentf("invalid stat: %s", s)
}

// IsValidStat reports whether s names one of the nine stats
func IsValidStat(s Stat) bool {
	for _, stat := range Stats() {
		if stat == s {
			return true
		}
	}
	return false
}

// Source identifies where stat points came from
type Source string

// Contribution sources
const (
	SourceBase       Source = "base"
	SourceClass      Source = "class"
	SourceProfession Source = "profession"
	SourceRace       Source = "race"
	SourceItem       Source = "item"
	SourceBlessing   Source = "blessing"
	SourceFreePoints Source = "free_points"
)

// Sources returns all contribution sources in canonical order
func Sources() []Source {
	return []Source{
		SourceBase,
		SourceClass,
		SourceProfession,
		SourceRace,
		SourceItem,
		SourceBlessing,
		SourceFreePoints,
	}
}

// Modifier formula constants. The modifier is a sigmoid of the stat value,
// flat near zero and saturating at high values.
const (
	modifierScale  = 6000.0
	modifierFactor = -0.001
	modifierOffset = 500.0
	modifierShift  = -2265.0
)

// ModifierFor computes the modifier for a stat value. The curve is
// monotonically non-decreasing. Computed in float64 and rounded with
// math.Round, which rounds ties away from zero.
func ModifierFor(value int) int {
	raw := modifierScale/(1+math.Exp(modifierFactor*(float64(value)-modifierOffset))) + modifierShift
	return int(math.Round(raw))
}
