// Package engine applies progression gains to characters: level-ups,
// class/profession/race changes, race-level derivation, and free-point
// allocation. All stat math flows through the character's ledger so every
// point stays attributed to its source.
package engine

import (
	"context"
	"log/slog"

	"github.com/aldenmoor/levelforge/internal/catalog"
	"github.com/aldenmoor/levelforge/internal/entities/character"
	"github.com/aldenmoor/levelforge/internal/errors"
	"github.com/aldenmoor/levelforge/internal/tier"
)

// Config holds the engine's dependencies
type Config struct {
	Catalog catalog.Catalog
	Logger  *slog.Logger
}

// Validate ensures required dependencies are set
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	return vb.Build()
}

// Engine walks level ranges and applies per-level gains from the catalog
type Engine struct {
	catalog catalog.Catalog
	log     *slog.Logger
}

// New creates an engine from config
func New(cfg *Config) (*Engine, error) {
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
	return &Engine{
		catalog: cfg.Catalog,
		log:     log,
	}, nil
}

// LevelUp advances one progression track to targetLevel, applying each
// gained level exactly once. The current level is the watermark: targets
// at or below it are rejected, so a level's gains can never be applied
// twice. Regular characters level class or profession and derive race
// level from them; familiars and monsters level race only.
func (e *Engine) LevelUp(ctx context.Context, c *character.Character, kind Kind, targetLevel int) error {
	switch kind {
	case KindClass, KindProfession:
		if c.IsRaceLeveling() {
			return errors.FailedPreconditionf("%ss cannot level up %s, use race leveling", c.Type, kind)
		}
		return e.levelUpTrack(ctx, c, kind, targetLevel)
	case KindRace:
		if !c.IsRaceLeveling() {
			return errors.FailedPrecondition("race level is derived from class and profession for regular characters")
		}
		return e.raceLevelUp(ctx, c, targetLevel)
	}
	return errors.InvalidArgumentf("invalid level type %q", kind)
}

func (e *Engine) levelUpTrack(ctx context.Context, c *character.Character, kind Kind, targetLevel int) error {
	current := c.ClassLevel
	if kind == KindProfession {
		current = c.ProfessionLevel
	}
	if targetLevel <= current {
		return errors.FailedPreconditionf("%s is already at or above level %d", kind, targetLevel)
	}

	e.log.InfoContext(ctx, "leveling up",
		"character", c.Name,
		"kind", string(kind),
		"from", current,
		"to", targetLevel,
	)

	for level := current + 1; level <= targetLevel; level++ {
		if kind == KindClass {
			c.ClassLevel = level
			e.applyClassLevel(ctx, c, level)
		} else {
			c.ProfessionLevel = level
			e.applyProfessionLevel(ctx, c, level)
		}
	}

	e.updateRaceLevel(ctx, c, false)
	c.RecomputeHealth()
	return nil
}

func (e *Engine) raceLevelUp(ctx context.Context, c *character.Character, targetLevel int) error {
	current := c.RaceLevel()
	if targetLevel <= current {
		return errors.FailedPreconditionf("race is already at or above level %d", targetLevel)
	}

	e.log.InfoContext(ctx, "leveling up race",
		"character", c.Name,
		"from", current,
		"to", targetLevel,
	)

	c.SetRaceLevel(targetLevel)
	e.applyRaceLevels(ctx, c, current, targetLevel, false)
	e.updateRaceRank(ctx, c, targetLevel)
	c.RecomputeHealth()
	return nil
}

func (e *Engine) applyClassLevel(ctx context.Context, c *character.Character, level int) {
	name := c.ClassHistory.ActiveAt(level)
	if name == "" {
		e.log.WarnContext(ctx, "no class active at level", "character", c.Name, "level", level)
		return
	}
	t := tier.ForLevel(level, c.TierThresholds)
	gains, ok := e.catalog.ClassGains(name, t)
	if !ok {
		e.log.WarnContext(ctx, "no gains for class", "class", name, "tier", t)
		return
	}
	e.applyGains(c, gains, character.SourceClass, false)
}

func (e *Engine) applyProfessionLevel(ctx context.Context, c *character.Character, level int) {
	name := c.ProfessionHistory.ActiveAt(level)
	if name == "" {
		e.log.WarnContext(ctx, "no profession active at level", "character", c.Name, "level", level)
		return
	}
	t := tier.ForLevel(level, c.TierThresholds)
	gains, ok := e.catalog.ProfessionGains(name, t)
	if !ok {
		e.log.WarnContext(ctx, "no gains for profession", "profession", name, "tier", t)
		return
	}
	e.applyGains(c, gains, character.SourceProfession, false)
}

// updateRaceLevel recomputes the derived race level for a regular
// character and applies gains for any newly crossed race levels
func (e *Engine) updateRaceLevel(ctx context.Context, c *character.Character, skipFreePoints bool) {
	if c.IsRaceLeveling() {
		return
	}

	current := c.RaceLevel()
	derived := c.DerivedRaceLevel()
	c.SetRaceLevel(derived)
	e.updateRaceRank(ctx, c, derived)

	if derived > current {
		e.applyRaceLevels(ctx, c, current, derived, skipFreePoints)
	}
}

// applyRaceLevels applies race gains for levels from+1 through to. The
// race history decides which race was active per level; an empty history
// falls back to the character's current race.
func (e *Engine) applyRaceLevels(ctx context.Context, c *character.Character, from, to int, skipFreePoints bool) {
	for level := from + 1; level <= to; level++ {
		name := c.RaceHistory.ActiveAt(level)
		if name == "" {
			name = c.Race
		}
		if name == "" {
			e.log.WarnContext(ctx, "no race active at race level", "character", c.Name, "level", level)
			continue
		}
		gains, ok := e.catalog.RaceGains(name, level)
		if !ok {
			e.log.WarnContext(ctx, "no gains for race", "race", name, "level", level)
			continue
		}
		if rank, ok := e.catalog.RaceRank(name, level); ok {
			c.SetRaceRank(rank)
		}
		e.applyGains(c, gains, character.SourceRace, skipFreePoints)
	}
}

func (e *Engine) applyGains(c *character.Character, gains catalog.Gains, source character.Source, skipFreePoints bool) {
	for stat, amount := range gains.Stats {
		if !character.IsValidStat(stat) {
			continue
		}
		_ = c.Ledger.AddContribution(stat, amount, source)
	}
	if !skipFreePoints {
		c.FreePoints += gains.FreePoints
	}
}

func (e *Engine) updateRaceRank(ctx context.Context, c *character.Character, raceLevel int) {
	name := c.RaceHistory.ActiveAt(raceLevel)
	if name == "" {
		name = c.Race
	}
	if name == "" || raceLevel < 1 {
		c.SetRaceRank("")
		return
	}
	rank, ok := e.catalog.RaceRank(name, raceLevel)
	if !ok {
		e.log.WarnContext(ctx, "no rank range for race level", "race", name, "level", raceLevel)
		c.SetRaceRank("")
		return
	}
	c.SetRaceRank(rank)
}

// ChangeClass validates the new class against the tier implied by the
// change level and records it in the class history
func (e *Engine) ChangeClass(ctx context.Context, c *character.Character, newClass string, atLevel int) error {
	if c.IsRaceLeveling() {
		return errors.FailedPreconditionf("%ss cannot have classes", c.Type)
	}
	t := tier.ForLevel(atLevel, c.TierThresholds)
	if !e.catalog.IsClassAvailable(newClass, t) {
		return errors.InvalidArgumentf("invalid class %q for tier %d at level %d", newClass, t, atLevel)
	}
	if err := c.ClassHistory.RecordChange(newClass, atLevel); err != nil {
		return err
	}
	e.log.InfoContext(ctx, "class changed",
		"character", c.Name,
		"from", c.Class,
		"to", newClass,
		"at_level", atLevel,
	)
	c.Class = newClass
	return nil
}

// ChangeProfession validates the new profession against the tier implied
// by the change level and records it in the profession history
func (e *Engine) ChangeProfession(ctx context.Context, c *character.Character, newProfession string, atLevel int) error {
	if c.IsRaceLeveling() {
		return errors.FailedPreconditionf("%ss cannot have professions", c.Type)
	}
	t := tier.ForLevel(atLevel, c.TierThresholds)
	if !e.catalog.IsProfessionAvailable(newProfession, t) {
		return errors.InvalidArgumentf("invalid profession %q for tier %d at level %d", newProfession, t, atLevel)
	}
	if err := c.ProfessionHistory.RecordChange(newProfession, atLevel); err != nil {
		return err
	}
	e.log.InfoContext(ctx, "profession changed",
		"character", c.Name,
		"from", c.Profession,
		"to", newProfession,
		"at_level", atLevel,
	)
	c.Profession = newProfession
	return nil
}

// ChangeRace records a race change, wipes all race-sourced stat
// contributions, and replays the full race history from level 1. A full
// replay keeps the ledger consistent when the history mixes races.
// atRaceLevel of 0 defaults to the current race level plus one.
func (e *Engine) ChangeRace(ctx context.Context, c *character.Character, newRace string, atRaceLevel int) error {
	if newRace == c.Race {
		return errors.FailedPreconditionf("race is already %q", newRace)
	}
	if !e.catalog.HasRace(newRace) {
		return errors.InvalidArgumentf("unknown race %q", newRace)
	}
	if atRaceLevel <= 0 {
		atRaceLevel = c.RaceLevel() + 1
	}

	if err := c.RaceHistory.RecordChange(newRace, atRaceLevel); err != nil {
		return err
	}

	e.log.InfoContext(ctx, "race changed",
		"character", c.Name,
		"from", c.Race,
		"to", newRace,
		"at_race_level", atRaceLevel,
	)

	c.Race = newRace
	c.Ledger.ResetSource(character.SourceRace)
	if level := c.RaceLevel(); level > 0 {
		e.applyRaceLevels(ctx, c, 0, level, false)
		e.updateRaceRank(ctx, c, level)
	}
	c.RecomputeHealth()
	return nil
}

// RecalculateRaceLevels rebuilds race-sourced contributions from scratch.
// Regular characters re-derive race level from class and profession;
// familiars and monsters keep their race level and only replay bonuses.
// skipFreePoints suppresses free-point grants, used when reloading a
// character whose free points were already banked.
func (e *Engine) RecalculateRaceLevels(ctx context.Context, c *character.Character, skipFreePoints bool) {
	c.Ledger.ResetSource(character.SourceRace)

	if !c.IsRaceLeveling() {
		c.SetRaceLevel(0)
		c.SetRaceRank("")
		e.updateRaceLevel(ctx, c, skipFreePoints)
	} else if level := c.RaceLevel(); level > 0 {
		e.applyRaceLevels(ctx, c, 0, level, skipFreePoints)
		e.updateRaceRank(ctx, c, level)
	}
	c.RecomputeHealth()
}

// ApplyHistoricalGains seeds a freshly constructed character's ledger by
// replaying its histories from level 1 up to its current levels. Factories
// call this exactly once; afterwards LevelUp's watermark keeps every level
// single-application.
func (e *Engine) ApplyHistoricalGains(ctx context.Context, c *character.Character) {
	if c.IsRaceLeveling() {
		if level := c.RaceLevel(); level > 0 {
			e.applyRaceLevels(ctx, c, 0, level, false)
			e.updateRaceRank(ctx, c, level)
		}
	} else {
		for level := 1; level <= c.ClassLevel; level++ {
			e.applyClassLevel(ctx, c, level)
		}
		for level := 1; level <= c.ProfessionLevel; level++ {
			e.applyProfessionLevel(ctx, c, level)
		}
		c.SetRaceLevel(0)
		e.updateRaceLevel(ctx, c, false)
	}
	c.RecomputeHealth()
}

// AllocateFreePoints spends free points on a stat. Overspending is only
// allowed with allowDebt, which drives the counter negative.
func (e *Engine) AllocateFreePoints(ctx context.Context, c *character.Character, stat character.Stat, amount int, allowDebt bool) error {
	if !character.IsValidStat(stat) {
		return errors.InvalidArgumentf("invalid stat: %s", stat)
	}
	if amount <= 0 {
		return errors.InvalidArgumentf("allocation must be positive, got %d", amount)
	}
	if !allowDebt && amount > c.FreePoints {
		return errors.FailedPreconditionf("not enough free points: have %d, need %d", c.FreePoints, amount)
	}

	if err := c.Ledger.AddContribution(stat, amount, character.SourceFreePoints); err != nil {
		return err
	}
	c.FreePoints -= amount
	if c.FreePoints < 0 {
		e.log.WarnContext(ctx, "free point balance is negative",
			"character", c.Name,
			"balance", c.FreePoints,
		)
	}
	c.RecomputeHealth()
	return nil
}
