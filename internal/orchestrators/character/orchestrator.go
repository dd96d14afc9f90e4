// Package character implements the character progression service:
// factories, level-ups, track changes, free-point allocation, bonuses,
// validation, and persistence.
package character

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aldenmoor/levelforge/internal/catalog"
	"github.com/aldenmoor/levelforge/internal/engine"
	"github.com/aldenmoor/levelforge/internal/entities/character"
	"github.com/aldenmoor/levelforge/internal/errors"
	"github.com/aldenmoor/levelforge/internal/pkg/idgen"
	characterrepo "github.com/aldenmoor/levelforge/internal/repositories/character"
	"github.com/aldenmoor/levelforge/internal/tier"
	"github.com/aldenmoor/levelforge/internal/validation"
)

// Config holds the dependencies for the character orchestrator
type Config struct {
	Repository  characterrepo.Repository
	Engine      *engine.Engine
	Validator   *validation.Validator
	Catalog     catalog.Catalog
	IDGenerator idgen.Generator
	Logger      *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Validator == nil {
		vb.RequiredField("Validator")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Orchestrator implements the Service interface
type Orchestrator struct {
	repo      characterrepo.Repository
	engine    *engine.Engine
	validator *validation.Validator
	catalog   catalog.Catalog
	idGen     idgen.Generator
	log       *slog.Logger
}

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	return &Orchestrator{
		repo:      cfg.Repository,
		engine:    cfg.Engine,
		validator: cfg.Validator,
		catalog:   cfg.Catalog,
		idGen:     cfg.IDGenerator,
		log:       log,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ Service = (*Orchestrator)(nil)

// Factories

// CreateCalculated creates a character whose ledger is seeded by replaying
// its progression history, then persists it
func (o *Orchestrator) CreateCalculated(ctx context.Context, input *CreateCalculatedInput) (*CreateCalculatedOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	if input.ClassLevel < 0 {
		vb.InvalidField("classLevel", "cannot be negative")
	}
	if input.ProfessionLevel < 0 {
		vb.InvalidField("professionLevel", "cannot be negative")
	}
	if input.ClassLevel > 0 && input.Class == "" {
		vb.RequiredField("class")
	}
	if input.ProfessionLevel > 0 && input.Profession == "" {
		vb.RequiredField("profession")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	c := character.New(o.idGen.Generate(), input.Name, character.TypeCharacter)
	if len(input.TierThresholds) > 0 {
		if err := c.SetTierThresholds(input.TierThresholds); err != nil {
			return nil, err
		}
	}
	if err := o.checkNames(input.Class, input.Profession, input.Race, c.TierThresholds); err != nil {
		return nil, err
	}

	base := input.BaseStats
	if input.RollBaseStats {
		rolled, err := rollBaseStats()
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll base stats")
		}
		base = rolled
	}
	seedBase(c, base)

	c.Class = input.Class
	c.ClassLevel = input.ClassLevel
	c.Profession = input.Profession
	c.ProfessionLevel = input.ProfessionLevel
	c.Race = input.Race
	seedHistories(c)

	o.engine.ApplyHistoricalGains(ctx, c)

	if err := o.persistNew(ctx, c); err != nil {
		return nil, err
	}
	return &CreateCalculatedOutput{Character: c}, nil
}

// CreateCustom creates a manual character with caller-supplied stats.
// Custom characters get minimal validation and no free-point
// reconciliation.
func (o *Orchestrator) CreateCustom(ctx context.Context, input *CreateCustomInput) (*CreateCustomOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	if input.FreePoints < 0 {
		vb.InvalidField("freePoints", "cannot be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	c := character.New(o.idGen.Generate(), input.Name, character.TypeCharacter)
	if err := o.checkNames(input.Class, input.Profession, input.Race, c.TierThresholds); err != nil {
		return nil, err
	}

	seedBase(c, input.Stats)

	c.Class = input.Class
	c.ClassLevel = input.ClassLevel
	c.Profession = input.Profession
	c.ProfessionLevel = input.ProfessionLevel
	c.Race = input.Race
	c.Manual = true
	c.FreePoints = input.FreePoints
	seedHistories(c)

	// Race gains are applied here so the stored stats already include
	// them; loads then rebuild the same race contributions.
	o.engine.RecalculateRaceLevels(ctx, c, false)
	c.CurrentHealth = c.MaxHealth

	if err := o.persistNew(ctx, c); err != nil {
		return nil, err
	}
	return &CreateCustomOutput{Character: c}, nil
}

// CreateReverseEngineered creates a manual character whose ledger is
// reconstructed from base and current stats: progression bonuses come from
// replaying the histories, and the leftover gap per stat is attributed to
// free points
func (o *Orchestrator) CreateReverseEngineered(ctx context.Context, input *CreateReverseEngineeredInput) (*CreateReverseEngineeredOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	if len(input.BaseStats) == 0 {
		vb.RequiredField("baseStats")
	}
	if len(input.CurrentStats) == 0 {
		vb.RequiredField("currentStats")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	c := character.New(o.idGen.Generate(), input.Name, character.TypeCharacter)
	if err := o.checkNames(input.Class, input.Profession, input.Race, c.TierThresholds); err != nil {
		return nil, err
	}

	seedBase(c, input.BaseStats)

	c.Class = input.Class
	c.ClassLevel = input.ClassLevel
	c.Profession = input.Profession
	c.ProfessionLevel = input.ProfessionLevel
	c.Race = input.Race
	c.Manual = true
	c.ManualBase = copyStats(input.BaseStats)
	c.ManualCurrent = copyStats(input.CurrentStats)
	seedHistories(c)

	c.SetRaceLevel(c.DerivedRaceLevel())
	if c.Race != "" && c.RaceLevel() > 0 {
		if rank, ok := o.catalog.RaceRank(c.Race, c.RaceLevel()); ok {
			c.SetRaceRank(rank)
		}
	}

	analysis := o.validator.Analyzer().Analyze(ctx, c, input.BaseStats, input.CurrentStats)
	for _, stat := range character.Stats() {
		alloc := analysis.Allocations[stat]
		if alloc.ClassBonus != 0 {
			if err := c.Ledger.SetContribution(stat, alloc.ClassBonus, character.SourceClass); err != nil {
				return nil, err
			}
		}
		if alloc.ProfessionBonus != 0 {
			if err := c.Ledger.SetContribution(stat, alloc.ProfessionBonus, character.SourceProfession); err != nil {
				return nil, err
			}
		}
		if alloc.RaceBonus != 0 {
			if err := c.Ledger.SetContribution(stat, alloc.RaceBonus, character.SourceRace); err != nil {
				return nil, err
			}
		}
		if alloc.FreePointsAllocated != 0 {
			if err := c.Ledger.SetContribution(stat, alloc.FreePointsAllocated, character.SourceFreePoints); err != nil {
				return nil, err
			}
		}
	}
	c.FreePoints = analysis.RemainingFreePoints
	c.RecomputeHealth()
	c.CurrentHealth = c.MaxHealth

	o.log.InfoContext(ctx, "reverse-engineered character",
		"character", c.Name,
		"free_points_used", analysis.TotalFreePointsUsed,
		"free_points_remaining", analysis.RemainingFreePoints,
	)

	if err := o.persistNew(ctx, c); err != nil {
		return nil, err
	}
	return &CreateReverseEngineeredOutput{Character: c}, nil
}

// CreateRaceLeveling creates a familiar or monster that advances through
// race levels only
func (o *Orchestrator) CreateRaceLeveling(ctx context.Context, input *CreateRaceLevelingInput) (*CreateRaceLevelingOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidateRequired("race", input.Race, vb)
	if input.Type != character.TypeFamiliar && input.Type != character.TypeMonster {
		vb.InvalidField("type", "must be familiar or monster")
	}
	if input.RaceLevel < 1 {
		vb.InvalidField("raceLevel", "must be at least 1")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if !o.catalog.HasRace(input.Race) {
		return nil, errors.InvalidArgumentf("unknown race %q", input.Race)
	}

	c := character.New(o.idGen.Generate(), input.Name, input.Type)
	seedBase(c, input.BaseStats)
	c.Race = input.Race
	c.RaceHistory = character.NewTrackWith(input.Race, 1)
	c.SetRaceLevel(input.RaceLevel)

	o.engine.ApplyHistoricalGains(ctx, c)

	if err := o.persistNew(ctx, c); err != nil {
		return nil, err
	}
	return &CreateRaceLevelingOutput{Character: c}, nil
}

// Lookup

// GetCharacter loads a character by name. Race-sourced contributions are
// rebuilt on load so stored drift self-heals without double-granting free
// points.
func (o *Orchestrator) GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.load(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	return &GetCharacterOutput{Character: c}, nil
}

// ListCharacters loads every stored character, skipping rows that fail to
// reconstruct
func (o *Orchestrator) ListCharacters(ctx context.Context, _ *ListCharactersInput) (*ListCharactersOutput, error) {
	out, err := o.repo.List(ctx, characterrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}

	characters := make([]*character.Character, 0, len(out.Characters))
	for _, data := range out.Characters {
		c, err := character.FromData(data)
		if err != nil {
			o.log.WarnContext(ctx, "skipping character that failed to reconstruct",
				"character", data.Name,
				"error", err.Error())
			continue
		}
		o.engine.RecalculateRaceLevels(ctx, c, true)
		characters = append(characters, c)
	}
	return &ListCharactersOutput{Characters: characters}, nil
}

// DeleteCharacter removes a character by name
func (o *Orchestrator) DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Name == "" {
		return nil, errors.InvalidArgument("name is required")
	}

	if _, err := o.repo.Delete(ctx, characterrepo.DeleteInput{Name: input.Name}); err != nil {
		return nil, err
	}
	return &DeleteCharacterOutput{}, nil
}

// GetCreationInfo summarizes how a character was created and whether it
// was converted from manual data
func (o *Orchestrator) GetCreationInfo(ctx context.Context, input *GetCreationInfoInput) (*GetCreationInfoOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.load(ctx, input.Name)
	if err != nil {
		return nil, err
	}

	out := &GetCreationInfoOutput{
		Classification: c.Classify(),
		Status:         c.Status,
		Creation:       c.Creation,
	}
	switch out.Classification {
	case character.ClassificationRaceLeveling:
		out.Summary = fmt.Sprintf("%s advancing through race levels", c.Type)
	case character.ClassificationCustomManual:
		out.Summary = "manually created, minimal validation only"
	case character.ClassificationReverseEngineered:
		out.Summary = "manual stats awaiting validation"
	default:
		if c.Creation != nil {
			out.Summary = fmt.Sprintf("converted from %s on %s",
				c.Creation.OriginalMethod, c.Creation.ConvertedAt.Format("2006-01-02"))
		} else {
			out.Summary = "created through calculated progression"
		}
	}
	return out, nil
}

// Progression

// LevelUp advances one progression track to a target level and persists
// the result
func (o *Orchestrator) LevelUp(ctx context.Context, input *LevelUpInput) (*LevelUpOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.mutate(ctx, input.Name, func(c *character.Character) error {
		return o.engine.LevelUp(ctx, c, input.Kind, input.TargetLevel)
	})
	if err != nil {
		return nil, err
	}
	return &LevelUpOutput{Character: c}, nil
}

// ChangeClass switches class at a given class level
func (o *Orchestrator) ChangeClass(ctx context.Context, input *ChangeClassInput) (*ChangeClassOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.mutate(ctx, input.Name, func(c *character.Character) error {
		return o.engine.ChangeClass(ctx, c, input.NewClass, input.AtLevel)
	})
	if err != nil {
		return nil, err
	}
	return &ChangeClassOutput{Character: c}, nil
}

// ChangeProfession switches profession at a given profession level
func (o *Orchestrator) ChangeProfession(ctx context.Context, input *ChangeProfessionInput) (*ChangeProfessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.mutate(ctx, input.Name, func(c *character.Character) error {
		return o.engine.ChangeProfession(ctx, c, input.NewProfession, input.AtLevel)
	})
	if err != nil {
		return nil, err
	}
	return &ChangeProfessionOutput{Character: c}, nil
}

// ChangeRace switches race and replays the race history
func (o *Orchestrator) ChangeRace(ctx context.Context, input *ChangeRaceInput) (*ChangeRaceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.mutate(ctx, input.Name, func(c *character.Character) error {
		return o.engine.ChangeRace(ctx, c, input.NewRace, input.AtRaceLevel)
	})
	if err != nil {
		return nil, err
	}
	return &ChangeRaceOutput{Character: c}, nil
}

// Free points

// AllocateFreePoints spends free points on one stat
func (o *Orchestrator) AllocateFreePoints(ctx context.Context, input *AllocateFreePointsInput) (*AllocateFreePointsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.mutate(ctx, input.Name, func(c *character.Character) error {
		return o.engine.AllocateFreePoints(ctx, c, input.Stat, input.Amount, input.AllowDebt)
	})
	if err != nil {
		return nil, err
	}
	return &AllocateFreePointsOutput{Character: c}, nil
}

// AllocateRandomly spends the entire free-point balance one point at a
// time on randomly chosen stats
func (o *Orchestrator) AllocateRandomly(ctx context.Context, input *AllocateRandomlyInput) (*AllocateRandomlyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	spent := make(map[character.Stat]int)
	c, err := o.mutate(ctx, input.Name, func(c *character.Character) error {
		if c.FreePoints <= 0 {
			return errors.FailedPreconditionf("no free points to allocate, have %d", c.FreePoints)
		}
		stats := character.Stats()
		for c.FreePoints > 0 {
			idx, err := rollDie(len(stats))
			if err != nil {
				return errors.Wrap(err, "failed to roll for stat")
			}
			stat := stats[idx-1]
			if err := o.engine.AllocateFreePoints(ctx, c, stat, 1, false); err != nil {
				return err
			}
			spent[stat]++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &AllocateRandomlyOutput{Character: c, Spent: spent}, nil
}

// Bonuses

// ApplyBlessing applies a stat-delta blessing
func (o *Orchestrator) ApplyBlessing(ctx context.Context, input *ApplyBlessingInput) (*ApplyBlessingOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if len(input.Bonuses) == 0 {
		return nil, errors.InvalidArgument("bonuses are required")
	}

	c, err := o.mutate(ctx, input.Name, func(c *character.Character) error {
		return c.ApplyBlessing(input.Bonuses)
	})
	if err != nil {
		return nil, err
	}
	return &ApplyBlessingOutput{Character: c}, nil
}

// RemoveBlessing removes the active blessing
func (o *Orchestrator) RemoveBlessing(ctx context.Context, input *RemoveBlessingInput) (*RemoveBlessingOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.mutate(ctx, input.Name, func(c *character.Character) error {
		return c.RemoveBlessing()
	})
	if err != nil {
		return nil, err
	}
	return &RemoveBlessingOutput{Character: c}, nil
}

// ApplyItemBonuses applies an item stat-delta map
func (o *Orchestrator) ApplyItemBonuses(ctx context.Context, input *ApplyItemBonusesInput) (*ApplyItemBonusesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if len(input.Bonuses) == 0 {
		return nil, errors.InvalidArgument("bonuses are required")
	}

	c, err := o.mutate(ctx, input.Name, func(c *character.Character) error {
		return c.ApplyItemBonuses(input.Bonuses)
	})
	if err != nil {
		return nil, err
	}
	return &ApplyItemBonusesOutput{Character: c}, nil
}

// RemoveItemBonuses reverses an item stat-delta map
func (o *Orchestrator) RemoveItemBonuses(ctx context.Context, input *RemoveItemBonusesInput) (*RemoveItemBonusesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if len(input.Bonuses) == 0 {
		return nil, errors.InvalidArgument("bonuses are required")
	}

	c, err := o.mutate(ctx, input.Name, func(c *character.Character) error {
		return c.RemoveItemBonuses(input.Bonuses)
	})
	if err != nil {
		return nil, err
	}
	return &RemoveItemBonusesOutput{Character: c}, nil
}

// Tier thresholds

// SetTierThresholds replaces the character's tier threshold list, warning
// when the replacement moves the character into a different tier
func (o *Orchestrator) SetTierThresholds(ctx context.Context, input *SetTierThresholdsInput) (*SetTierThresholdsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	tierChanged := false
	c, err := o.mutate(ctx, input.Name, func(c *character.Character) error {
		before := tier.ForLevel(c.HighestLevel(), c.TierThresholds)
		if err := c.SetTierThresholds(input.Thresholds); err != nil {
			return err
		}
		after := tier.ForLevel(c.HighestLevel(), c.TierThresholds)
		if before != after {
			tierChanged = true
			o.log.WarnContext(ctx, "tier threshold change moved character between tiers",
				"character", c.Name,
				"from_tier", before,
				"to_tier", after,
			)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &SetTierThresholdsOutput{Character: c, TierChanged: tierChanged}, nil
}

// AddTierThreshold inserts one tier threshold
func (o *Orchestrator) AddTierThreshold(ctx context.Context, input *AddTierThresholdInput) (*AddTierThresholdOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.mutate(ctx, input.Name, func(c *character.Character) error {
		return c.AddTierThreshold(input.Threshold)
	})
	if err != nil {
		return nil, err
	}
	return &AddTierThresholdOutput{Character: c}, nil
}

// RemoveTierThreshold removes one tier threshold the character has not
// reached
func (o *Orchestrator) RemoveTierThreshold(ctx context.Context, input *RemoveTierThresholdInput) (*RemoveTierThresholdOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.mutate(ctx, input.Name, func(c *character.Character) error {
		return c.RemoveTierThreshold(input.Threshold)
	})
	if err != nil {
		return nil, err
	}
	return &RemoveTierThresholdOutput{Character: c}, nil
}

// Validation

// ValidateCharacter validates a character, persists any auto-corrections,
// and returns the report
func (o *Orchestrator) ValidateCharacter(ctx context.Context, input *ValidateCharacterInput) (*ValidateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.load(ctx, input.Name)
	if err != nil {
		return nil, err
	}

	report := o.validator.Validate(ctx, c)
	if err := o.save(ctx, c); err != nil {
		return nil, err
	}

	o.log.InfoContext(ctx, "validated character",
		"character", c.Name,
		"valid", report.Valid,
		"type", string(report.Type),
		"auto_corrected", report.AutoCorrected,
	)
	return &ValidateCharacterOutput{Character: c, Report: report}, nil
}

// helpers

func (o *Orchestrator) load(ctx context.Context, name string) (*character.Character, error) {
	if name == "" {
		return nil, errors.InvalidArgument("name is required")
	}

	out, err := o.repo.Get(ctx, characterrepo.GetInput{Name: name})
	if err != nil {
		return nil, err
	}
	c, err := character.FromData(out.CharacterData)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to reconstruct character %q", name)
	}
	// Rebuild race contributions without re-granting banked free points
	o.engine.RecalculateRaceLevels(ctx, c, true)
	return c, nil
}

func (o *Orchestrator) save(ctx context.Context, c *character.Character) error {
	if _, err := o.repo.Update(ctx, characterrepo.UpdateInput{CharacterData: c.ToData()}); err != nil {
		return errors.Wrapf(err, "failed to save character %q", c.Name)
	}
	return nil
}

func (o *Orchestrator) persistNew(ctx context.Context, c *character.Character) error {
	if _, err := o.repo.Create(ctx, characterrepo.CreateInput{CharacterData: c.ToData()}); err != nil {
		return err
	}
	o.log.InfoContext(ctx, "created character",
		"character", c.Name,
		"type", string(c.Type),
		"classification", string(c.Classify()),
	)
	return nil
}

// mutate loads a character, applies fn, and persists only when fn
// succeeds
func (o *Orchestrator) mutate(ctx context.Context, name string, fn func(*character.Character) error) (*character.Character, error) {
	c, err := o.load(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := fn(c); err != nil {
		return nil, err
	}
	if err := o.save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// checkNames rejects class, profession, and race names the catalog does
// not know. Availability is checked against tier 1, where every history
// starts.
func (o *Orchestrator) checkNames(class, profession, race string, thresholds []int) error {
	startTier := tier.ForLevel(1, thresholds)
	if class != "" && !o.catalog.IsClassAvailable(class, startTier) {
		return errors.InvalidArgumentf("unknown class %q", class)
	}
	if profession != "" && !o.catalog.IsProfessionAvailable(profession, startTier) {
		return errors.InvalidArgumentf("unknown profession %q", profession)
	}
	if race != "" && !o.catalog.HasRace(race) {
		return errors.InvalidArgumentf("unknown race %q", race)
	}
	return nil
}

// seedBase sets every stat's base value, defaulting to 5 where the input
// map is silent
func seedBase(c *character.Character, base map[character.Stat]int) {
	seeded := make(map[character.Stat]int, len(character.Stats()))
	for _, stat := range character.Stats() {
		value, ok := base[stat]
		if !ok {
			value = 5
		}
		seeded[stat] = value
	}
	c.Ledger = character.NewLedgerFromBase(seeded)
	c.RecomputeHealth()
	c.CurrentHealth = c.MaxHealth
}

// seedHistories opens a track at level 1 for each named class,
// profession, and race
func seedHistories(c *character.Character) {
	if c.Class != "" {
		c.ClassHistory = character.NewTrackWith(c.Class, 1)
	}
	if c.Profession != "" {
		c.ProfessionHistory = character.NewTrackWith(c.Profession, 1)
	}
	if c.Race != "" {
		c.RaceHistory = character.NewTrackWith(c.Race, 1)
	}
}

func copyStats(in map[character.Stat]int) map[character.Stat]int {
	out := make(map[character.Stat]int, len(in))
	for stat, v := range in {
		out[stat] = v
	}
	return out
}
