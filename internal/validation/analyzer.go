// Package validation audits a character's stat ledger against what its
// progression history says it should contain. The Analyzer is pure; the
// Validator reconciles free-point drift and flips validation status.
package validation

import (
	"context"
	"log/slog"

	"github.com/aldenmoor/levelforge/internal/catalog"
	"github.com/aldenmoor/levelforge/internal/entities/character"
	"github.com/aldenmoor/levelforge/internal/errors"
	"github.com/aldenmoor/levelforge/internal/tier"
)

// AnalyzerConfig holds the analyzer's dependencies
type AnalyzerConfig struct {
	Catalog catalog.Catalog
	Logger  *slog.Logger
}

// Validate ensures required dependencies are set
func (c *AnalyzerConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	return vb.Build()
}

// Analyzer reverse-engineers how a character's stats were allocated. It
// never mutates the character.
type Analyzer struct {
	catalog catalog.Catalog
	log     *slog.Logger
}

// NewAnalyzer creates an analyzer from config
func NewAnalyzer(cfg *AnalyzerConfig) (*Analyzer, error) {
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
	return &Analyzer{catalog: cfg.Catalog, log: log}, nil
}

// ExpectedBonuses replays the character's histories level by level and
// accumulates what progression should have contributed. Race-leveling
// characters only accrue race bonuses.
func (a *Analyzer) ExpectedBonuses(ctx context.Context, c *character.Character) *Bonuses {
	b := &Bonuses{
		Class:      make(map[character.Stat]int),
		Profession: make(map[character.Stat]int),
		Race:       make(map[character.Stat]int),
	}

	if !c.IsRaceLeveling() {
		for level := 1; level <= c.ClassLevel; level++ {
			name := c.ClassHistory.ActiveAt(level)
			if name == "" {
				continue
			}
			t := tier.ForLevel(level, c.TierThresholds)
			gains, ok := a.catalog.ClassGains(name, t)
			if !ok {
				a.log.WarnContext(ctx, "no gains for class during analysis", "class", name, "tier", t)
				continue
			}
			accumulate(b.Class, gains)
			b.ClassFreePoints += gains.FreePoints
		}

		for level := 1; level <= c.ProfessionLevel; level++ {
			name := c.ProfessionHistory.ActiveAt(level)
			if name == "" {
				continue
			}
			t := tier.ForLevel(level, c.TierThresholds)
			gains, ok := a.catalog.ProfessionGains(name, t)
			if !ok {
				a.log.WarnContext(ctx, "no gains for profession during analysis", "profession", name, "tier", t)
				continue
			}
			accumulate(b.Profession, gains)
			b.ProfessionFreePoints += gains.FreePoints
		}
	}

	for level := 1; level <= c.RaceLevel(); level++ {
		name := c.RaceHistory.ActiveAt(level)
		if name == "" {
			name = c.Race
		}
		if name == "" {
			continue
		}
		gains, ok := a.catalog.RaceGains(name, level)
		if !ok {
			a.log.WarnContext(ctx, "no gains for race during analysis", "race", name, "level", level)
			continue
		}
		accumulate(b.Race, gains)
		b.RaceFreePoints += gains.FreePoints
	}

	return b
}

func accumulate(into map[character.Stat]int, gains catalog.Gains) {
	for stat, amount := range gains.Stats {
		if character.IsValidStat(stat) {
			into[stat] += amount
		}
	}
}

// Analyze infers the free-point allocation that must explain the gap
// between base and current stats, given the character's histories. A
// negative gap on any stat is flagged as an impossible allocation. Stats
// missing from base default to 5; stats missing from current default to
// their base.
func (a *Analyzer) Analyze(ctx context.Context, c *character.Character, base, current map[character.Stat]int) *Analysis {
	bonuses := a.ExpectedBonuses(ctx, c)

	analysis := &Analysis{
		Allocations:             make(map[character.Stat]StatAllocation, len(character.Stats())),
		Bonuses:                 bonuses,
		TotalExpectedFreePoints: bonuses.TotalFreePoints(),
	}

	for _, stat := range character.Stats() {
		b, ok := base[stat]
		if !ok {
			b = 5
		}
		cur, ok := current[stat]
		if !ok {
			cur = b
		}

		expected := b + bonuses.Class[stat] + bonuses.Profession[stat] + bonuses.Race[stat]
		gap := cur - expected

		alloc := StatAllocation{
			Base:                    b,
			ClassBonus:              bonuses.Class[stat],
			ProfessionBonus:         bonuses.Profession[stat],
			RaceBonus:               bonuses.Race[stat],
			ExpectedFromProgression: expected,
			Current:                 cur,
		}
		if gap >= 0 {
			alloc.FreePointsAllocated = gap
			analysis.TotalFreePointsUsed += gap
		} else {
			alloc.Discrepancy = gap
		}
		analysis.Allocations[stat] = alloc
	}

	analysis.RemainingFreePoints = analysis.TotalExpectedFreePoints - analysis.TotalFreePointsUsed
	return analysis
}
