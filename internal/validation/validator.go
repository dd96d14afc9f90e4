package validation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aldenmoor/levelforge/internal/entities/character"
	"github.com/aldenmoor/levelforge/internal/errors"
	"github.com/aldenmoor/levelforge/internal/pkg/clock"
)

// ValidatorConfig holds the validator's dependencies
type ValidatorConfig struct {
	Analyzer *Analyzer
	Clock    clock.Clock
	Logger   *slog.Logger
}

// Validate ensures required dependencies are set
func (c *ValidatorConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Analyzer == nil {
		vb.RequiredField("Analyzer")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	return vb.Build()
}

// Validator audits characters and reconciles free-point drift. Validate
// mutates the character: the free-point counter is overwritten when it
// disagrees with what progression predicts, the validation status flips,
// and a reverse-engineered character that passes is converted to
// calculated with its manual data archived.
type Validator struct {
	analyzer *Analyzer
	clock    clock.Clock
	log      *slog.Logger
}

// NewValidator creates a validator from config
func NewValidator(cfg *ValidatorConfig) (*Validator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Validator{
		analyzer: cfg.Analyzer,
		clock:    cfg.Clock,
		log:      log,
	}, nil
}

// Analyzer returns the pure analyzer for callers that want analysis
// without reconciliation
func (v *Validator) Analyzer() *Analyzer {
	return v.analyzer
}

// Validate runs the classification-specific checks, then reconciles the
// free-point counter and re-validates so the reported result reflects the
// post-correction state. It always returns a report, never an error.
func (v *Validator) Validate(ctx context.Context, c *character.Character) *Report {
	report := v.run(ctx, c)

	if expected, correctable := v.expectedRemaining(ctx, c); correctable && expected != c.FreePoints {
		delta := expected - c.FreePoints
		v.log.InfoContext(ctx, "reconciling free points",
			"character", c.Name,
			"stored", c.FreePoints,
			"expected", expected,
		)
		c.FreePoints = expected

		report = v.run(ctx, c)
		report.AutoCorrected = true
		report.PointsAdjusted = delta
	}

	if report.Valid {
		c.Status = character.StatusValid
	} else {
		c.Status = character.StatusInvalid
	}

	if report.Valid && c.Classify() == character.ClassificationReverseEngineered {
		v.convertToCalculated(c)
		report.ConvertedToCalculated = true
	}

	return report
}

func (v *Validator) run(ctx context.Context, c *character.Character) *Report {
	switch c.Classify() {
	case character.ClassificationRaceLeveling:
		return v.validateRaceLeveling(ctx, c)
	case character.ClassificationReverseEngineered:
		return v.validateReverseEngineered(ctx, c)
	case character.ClassificationCustomManual:
		return v.validateCustom(c)
	default:
		return v.validateCalculated(ctx, c)
	}
}

// expectedRemaining computes what the free-point counter should hold.
// Custom-manual characters have no progression audit trail to correct
// against.
func (v *Validator) expectedRemaining(ctx context.Context, c *character.Character) (int, bool) {
	switch c.Classify() {
	case character.ClassificationCustomManual:
		return 0, false
	case character.ClassificationRaceLeveling:
		bonuses := v.analyzer.ExpectedBonuses(ctx, c)
		return bonuses.RaceFreePoints - spentFreePoints(c), true
	case character.ClassificationReverseEngineered:
		analysis := v.analyzer.Analyze(ctx, c, c.ManualBase, c.ManualCurrent)
		return analysis.RemainingFreePoints, true
	default:
		analysis := v.analyzer.Analyze(ctx, c, c.Ledger.BaseValues(), c.Ledger.CurrentValues())
		return analysis.RemainingFreePoints, true
	}
}

func (v *Validator) validateCalculated(ctx context.Context, c *character.Character) *Report {
	report := &Report{
		Valid:             true,
		Type:              character.ClassificationCalculated,
		StatDiscrepancies: make(map[character.Stat]StatDiscrepancy),
	}

	analysis := v.analyzer.Analyze(ctx, c, c.Ledger.BaseValues(), c.Ledger.CurrentValues())
	report.Analysis = analysis

	for _, stat := range character.Stats() {
		alloc := analysis.Allocations[stat]
		if alloc.Impossible() {
			report.Valid = false
			report.StatDiscrepancies[stat] = StatDiscrepancy{
				Expected:       alloc.ExpectedFromProgression,
				Actual:         alloc.Current,
				Difference:     alloc.Discrepancy,
				FreePointsUsed: alloc.FreePointsAllocated,
				Status:         StatusImpossible,
			}
		}
	}

	report.FreePoints = &FreePointsReport{
		ExpectedTotal: analysis.TotalExpectedFreePoints,
		Spent:         analysis.TotalFreePointsUsed,
		Current:       c.FreePoints,
		Difference:    analysis.RemainingFreePoints - c.FreePoints,
	}
	report.FreePoints.Match = report.FreePoints.Difference == 0
	if !report.FreePoints.Match {
		report.Valid = false
	}

	report.Summary = summarize(report)
	return report
}

func (v *Validator) validateReverseEngineered(ctx context.Context, c *character.Character) *Report {
	report := &Report{
		Valid:             true,
		Type:              character.ClassificationReverseEngineered,
		StatDiscrepancies: make(map[character.Stat]StatDiscrepancy),
	}

	analysis := v.analyzer.Analyze(ctx, c, c.ManualBase, c.ManualCurrent)
	report.Analysis = analysis

	// Ledger-calculated stats must match the manual current stats exactly
	for _, stat := range character.Stats() {
		provided, ok := c.ManualCurrent[stat]
		if !ok {
			if provided, ok = c.ManualBase[stat]; !ok {
				provided = 5
			}
		}
		actual := c.Ledger.Current(stat)
		if actual != provided {
			report.Valid = false
			status := StatusUnderAllocated
			if actual > provided {
				status = StatusOverAllocated
			}
			report.StatDiscrepancies[stat] = StatDiscrepancy{
				Expected:   provided,
				Actual:     actual,
				Difference: actual - provided,
				Status:     status,
			}
		}
	}

	for _, stat := range character.Stats() {
		alloc := analysis.Allocations[stat]
		if alloc.Impossible() {
			report.Valid = false
			report.StatDiscrepancies[stat] = StatDiscrepancy{
				Expected:   alloc.ExpectedFromProgression,
				Actual:     alloc.Current,
				Difference: alloc.Discrepancy,
				Status:     StatusImpossible,
			}
		}
	}

	report.FreePoints = &FreePointsReport{
		ExpectedTotal: analysis.TotalExpectedFreePoints,
		Spent:         analysis.TotalFreePointsUsed,
		Current:       c.FreePoints,
		Difference:    analysis.RemainingFreePoints - c.FreePoints,
	}
	report.FreePoints.Match = report.FreePoints.Difference == 0
	if !report.FreePoints.Match {
		report.Valid = false
	}

	report.Summary = summarize(report)
	return report
}

func (v *Validator) validateRaceLeveling(ctx context.Context, c *character.Character) *Report {
	report := &Report{
		Valid:             true,
		Type:              character.ClassificationRaceLeveling,
		StatDiscrepancies: make(map[character.Stat]StatDiscrepancy),
	}

	if c.ClassLevel > 0 {
		report.Valid = false
		report.MetaIssues = append(report.MetaIssues,
			fmt.Sprintf("%ss should not have class levels", c.Type))
	}
	if c.ProfessionLevel > 0 {
		report.Valid = false
		report.MetaIssues = append(report.MetaIssues,
			fmt.Sprintf("%ss should not have profession levels", c.Type))
	}
	if c.RaceLevel() <= 0 {
		report.Valid = false
		report.MetaIssues = append(report.MetaIssues,
			fmt.Sprintf("%ss must have a race level", c.Type))
	}

	bonuses := v.analyzer.ExpectedBonuses(ctx, c)

	// Expected value per stat from everything except free points
	for _, stat := range character.Stats() {
		expectedBase := c.Ledger.SourceAmount(stat, character.SourceBase) +
			bonuses.Race[stat] +
			c.Ledger.SourceAmount(stat, character.SourceItem) +
			c.Ledger.SourceAmount(stat, character.SourceBlessing)
		fpUsed := c.Ledger.SourceAmount(stat, character.SourceFreePoints)
		expected := expectedBase + fpUsed
		actual := c.Ledger.Current(stat)

		if actual != expected {
			report.Valid = false
			status := StatusUnderAllocated
			if actual > expected {
				status = StatusOverAllocated
			}
			report.StatDiscrepancies[stat] = StatDiscrepancy{
				Expected:       expected,
				Actual:         actual,
				Difference:     actual - expected,
				FreePointsUsed: fpUsed,
				Status:         status,
			}
		}
	}

	spent := spentFreePoints(c)
	current := c.FreePoints
	if current < 0 {
		current = 0
	}
	report.FreePoints = &FreePointsReport{
		ExpectedTotal: bonuses.RaceFreePoints,
		Spent:         spent,
		Current:       current,
		Difference:    bonuses.RaceFreePoints - spent - current,
	}
	report.FreePoints.Match = report.FreePoints.Difference == 0
	if !report.FreePoints.Match {
		report.Valid = false
	}

	report.Summary = summarize(report)
	return report
}

// validateCustom performs minimal sanity checks only: there is no
// progression trail to reverse-engineer
func (v *Validator) validateCustom(c *character.Character) *Report {
	report := &Report{
		Valid:             true,
		Type:              character.ClassificationCustomManual,
		StatDiscrepancies: make(map[character.Stat]StatDiscrepancy),
	}

	if !c.IsRaceLeveling() {
		if expected := c.DerivedRaceLevel(); expected != c.RaceLevel() {
			report.Valid = false
			report.MetaIssues = append(report.MetaIssues,
				fmt.Sprintf("race level calculation error: expected %d, actual %d", expected, c.RaceLevel()))
		}
	}

	for _, stat := range character.Stats() {
		if value := c.Ledger.Current(stat); value < 0 {
			report.Valid = false
			report.StatDiscrepancies[stat] = StatDiscrepancy{
				Actual:     value,
				Difference: value,
				Status:     StatusUnderAllocated,
			}
		}
	}

	if c.FreePoints < 0 {
		report.Valid = false
		report.MetaIssues = append(report.MetaIssues,
			fmt.Sprintf("free points cannot be negative: %d", c.FreePoints))
	}

	if report.Valid {
		report.Summary = "custom character: all basic checks passed"
	} else {
		report.Summary = fmt.Sprintf("custom character has %d issue(s)",
			len(report.MetaIssues)+len(report.StatDiscrepancies))
	}
	return report
}

func (v *Validator) convertToCalculated(c *character.Character) {
	c.Creation = &character.CreationRecord{
		OriginalMethod:  "manual_reverse_engineered",
		OriginalBase:    copyStats(c.ManualBase),
		OriginalCurrent: copyStats(c.ManualCurrent),
		ConvertedAt:     v.clock.Now(),
		Reason:          "passed_validation",
	}
	c.Manual = false
	c.ManualBase = nil
	c.ManualCurrent = nil
}

func spentFreePoints(c *character.Character) int {
	total := 0
	for _, stat := range character.Stats() {
		total += c.Ledger.SourceAmount(stat, character.SourceFreePoints)
	}
	return total
}

func copyStats(in map[character.Stat]int) map[character.Stat]int {
	out := make(map[character.Stat]int, len(in))
	for stat, v := range in {
		out[stat] = v
	}
	return out
}

func summarize(r *Report) string {
	if r.Valid {
		switch r.Type {
		case character.ClassificationRaceLeveling:
			return "race progression rules followed correctly"
		case character.ClassificationReverseEngineered:
			return "reverse-engineered character follows progression rules correctly"
		default:
			return "character stats are valid, all stats properly allocated"
		}
	}

	var parts []string
	if len(r.MetaIssues) > 0 {
		parts = append(parts, fmt.Sprintf("%d meta issue(s)", len(r.MetaIssues)))
	}
	if len(r.StatDiscrepancies) > 0 {
		parts = append(parts, fmt.Sprintf("%d stat issue(s)", len(r.StatDiscrepancies)))
	}
	if r.FreePoints != nil && !r.FreePoints.Match {
		if r.FreePoints.Difference > 0 {
			parts = append(parts, fmt.Sprintf("missing %d free points", r.FreePoints.Difference))
		} else {
			parts = append(parts, fmt.Sprintf("%d excess free points", -r.FreePoints.Difference))
		}
	}

	summary := "validation failed"
	for i, p := range parts {
		if i == 0 {
			summary += ": " + p
		} else {
			summary += ", " + p
		}
	}
	return summary
}
