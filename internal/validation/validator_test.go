package validation_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/aldenmoor/levelforge/internal/catalog"
	"github.com/aldenmoor/levelforge/internal/engine"
	"github.com/aldenmoor/levelforge/internal/entities/character"
	"github.com/aldenmoor/levelforge/internal/pkg/clock"
	"github.com/aldenmoor/levelforge/internal/validation"
)

var testTime = time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)

type ValidatorTestSuite struct {
	suite.Suite
	ctx       context.Context
	engine    *engine.Engine
	validator *validation.Validator
}

func (s *ValidatorTestSuite) SetupTest() {
	s.ctx = context.Background()

	content := catalog.New().
		AddClass("warrior", 1, catalog.Gains{
			Stats:      map[character.Stat]int{character.StatStrength: 1},
			FreePoints: 1,
		}).
		AddProfession("blacksmith", 1, catalog.Gains{
			Stats: map[character.Stat]int{character.StatEndurance: 1},
		}).
		AddRaceBand("human", catalog.RaceBand{
			MinLevel: 1, MaxLevel: 24, Rank: "G",
			Gains: catalog.Gains{
				Stats:      map[character.Stat]int{character.StatVitality: 1},
				FreePoints: 2,
			},
		}).
		AddRaceBand("fire drake", catalog.RaceBand{
			MinLevel: 1, MaxLevel: 24, Rank: "G",
			Gains: catalog.Gains{
				Stats:      map[character.Stat]int{character.StatStrength: 2},
				FreePoints: 1,
			},
		})

	eng, err := engine.New(&engine.Config{Catalog: content})
	s.Require().NoError(err)
	s.engine = eng

	analyzer, err := validation.NewAnalyzer(&validation.AnalyzerConfig{Catalog: content})
	s.Require().NoError(err)

	validator, err := validation.NewValidator(&validation.ValidatorConfig{
		Analyzer: analyzer,
		Clock:    clock.NewFixed(testTime),
	})
	s.Require().NoError(err)
	s.validator = validator
}

func (s *ValidatorTestSuite) newWarrior() *character.Character {
	c := character.New("char_1", "Aldric", character.TypeCharacter)
	for _, stat := range character.Stats() {
		s.Require().NoError(c.Ledger.SetBase(stat, 5))
	}
	c.Class = "warrior"
	c.ClassHistory = character.NewTrackWith("warrior", 1)
	c.Race = "human"
	c.RaceHistory = character.NewTrackWith("human", 1)
	return c
}

func (s *ValidatorTestSuite) TestForwardReverseRoundTrip() {
	c := s.newWarrior()
	s.Require().NoError(s.engine.LevelUp(s.ctx, c, engine.KindClass, 10))
	s.Require().NoError(s.engine.AllocateFreePoints(s.ctx, c, character.StatWisdom, 4, false))

	analysis := s.validator.Analyzer().Analyze(s.ctx, c, c.Ledger.BaseValues(), c.Ledger.CurrentValues())

	for _, stat := range character.Stats() {
		s.Equal(0, analysis.Allocations[stat].Discrepancy, "stat %s", stat)
	}
	s.Equal(4, analysis.Allocations[character.StatWisdom].FreePointsAllocated)
	s.Equal(c.FreePoints, analysis.RemainingFreePoints)

	report := s.validator.Validate(s.ctx, c)
	s.True(report.Valid)
	s.False(report.AutoCorrected)
	s.Equal(character.StatusValid, c.Status)
}

func (s *ValidatorTestSuite) TestImpossibleAllocation() {
	c := s.newWarrior()
	// Push strength below its own base with no progression to explain it
	s.Require().NoError(c.Ledger.AddContribution(character.StatStrength, -2, character.SourceFreePoints))

	analysis := s.validator.Analyzer().Analyze(s.ctx, c, c.Ledger.BaseValues(), c.Ledger.CurrentValues())
	s.Equal(-2, analysis.Allocations[character.StatStrength].Discrepancy)
	s.True(analysis.HasImpossibleAllocation())

	report := s.validator.Validate(s.ctx, c)
	s.False(report.Valid)
	s.Equal(character.StatusInvalid, c.Status)

	disc, ok := report.StatDiscrepancies[character.StatStrength]
	s.Require().True(ok)
	s.Equal(validation.StatusImpossible, disc.Status)
	s.Equal(-2, disc.Difference)
}

func (s *ValidatorTestSuite) TestAutoCorrectionOverwritesFreePoints() {
	c := s.newWarrior()
	s.Require().NoError(s.engine.LevelUp(s.ctx, c, engine.KindClass, 10))

	// Drop the counter below what progression granted
	expected := c.FreePoints
	c.FreePoints = 0

	report := s.validator.Validate(s.ctx, c)
	s.True(report.AutoCorrected)
	s.Equal(expected, report.PointsAdjusted)
	s.Equal(expected, c.FreePoints)
	s.True(report.Valid)
}

func (s *ValidatorTestSuite) TestAutoCorrectionIdempotent() {
	c := s.newWarrior()
	s.Require().NoError(s.engine.LevelUp(s.ctx, c, engine.KindClass, 10))
	c.FreePoints += 7

	first := s.validator.Validate(s.ctx, c)
	s.True(first.AutoCorrected)
	balance := c.FreePoints

	second := s.validator.Validate(s.ctx, c)
	s.False(second.AutoCorrected)
	s.Equal(first.Valid, second.Valid)
	s.Equal(balance, c.FreePoints)
}

func (s *ValidatorTestSuite) TestReverseEngineeredConversion() {
	c := s.newWarrior()
	c.ClassLevel = 5
	base := map[character.Stat]int{}
	current := map[character.Stat]int{}
	for _, stat := range character.Stats() {
		base[stat] = 5
		current[stat] = 5
	}
	// Levels 1..5 as warrior: +5 strength, +5 free points; 2 spent on wisdom
	current[character.StatStrength] = 10
	current[character.StatWisdom] = 7

	c.Manual = true
	c.ManualBase = base
	c.ManualCurrent = current
	// Ledger built the way the reverse-engineered factory builds it:
	// manual base, inferred progression bonuses, inferred free points
	s.Require().NoError(c.Ledger.SetContribution(character.StatStrength, 5, character.SourceClass))
	s.Require().NoError(c.Ledger.SetContribution(character.StatWisdom, 2, character.SourceFreePoints))
	c.FreePoints = 3

	report := s.validator.Validate(s.ctx, c)
	s.Require().True(report.Valid, "summary: %s", report.Summary)
	s.True(report.ConvertedToCalculated)
	s.Equal(character.ClassificationCalculated, c.Classify())
	s.False(c.Manual)
	s.Nil(c.ManualBase)

	s.Require().NotNil(c.Creation)
	s.Equal("manual_reverse_engineered", c.Creation.OriginalMethod)
	s.Equal(base, c.Creation.OriginalBase)
	s.Equal(current, c.Creation.OriginalCurrent)
	s.Equal(testTime, c.Creation.ConvertedAt)
}

func (s *ValidatorTestSuite) TestReverseEngineeredMismatchStaysManual() {
	c := s.newWarrior()
	c.ClassLevel = 5
	c.Manual = true
	c.ManualBase = map[character.Stat]int{character.StatStrength: 5}
	c.ManualCurrent = map[character.Stat]int{character.StatStrength: 9}
	// Ledger does not match the provided current stats

	report := s.validator.Validate(s.ctx, c)
	s.False(report.Valid)
	s.False(report.ConvertedToCalculated)
	s.Equal(character.ClassificationReverseEngineered, c.Classify())
	s.Equal(character.StatusInvalid, c.Status)
}

func (s *ValidatorTestSuite) TestCustomManualMinimalChecks() {
	c := s.newWarrior()
	c.Manual = true
	c.ClassLevel = 10
	c.SetRaceLevel(5)
	c.FreePoints = 3

	report := s.validator.Validate(s.ctx, c)
	s.True(report.Valid, "summary: %s", report.Summary)
	s.Nil(report.FreePoints)
	s.False(report.AutoCorrected)
	// No reconciliation for custom characters
	s.Equal(3, c.FreePoints)
}

func (s *ValidatorTestSuite) TestCustomManualRaceLevelMismatch() {
	c := s.newWarrior()
	c.Manual = true
	c.ClassLevel = 10
	c.SetRaceLevel(2)

	report := s.validator.Validate(s.ctx, c)
	s.False(report.Valid)
	s.NotEmpty(report.MetaIssues)
}

func (s *ValidatorTestSuite) TestCustomManualNegativeFreePoints() {
	c := s.newWarrior()
	c.Manual = true
	c.FreePoints = -4

	report := s.validator.Validate(s.ctx, c)
	s.False(report.Valid)
}

func (s *ValidatorTestSuite) TestRaceLevelingValidation() {
	familiar := character.New("char_2", "Ember", character.TypeFamiliar)
	for _, stat := range character.Stats() {
		s.Require().NoError(familiar.Ledger.SetBase(stat, 5))
	}
	familiar.Race = "fire drake"
	familiar.RaceHistory = character.NewTrackWith("fire drake", 1)
	s.Require().NoError(s.engine.LevelUp(s.ctx, familiar, engine.KindRace, 5))

	report := s.validator.Validate(s.ctx, familiar)
	s.True(report.Valid, "summary: %s", report.Summary)
	s.Equal(character.ClassificationRaceLeveling, report.Type)
	s.Equal(5, report.FreePoints.ExpectedTotal)
}

func (s *ValidatorTestSuite) TestRaceLevelingRejectsClassLevels() {
	familiar := character.New("char_2", "Ember", character.TypeFamiliar)
	familiar.Race = "fire drake"
	familiar.RaceHistory = character.NewTrackWith("fire drake", 1)
	familiar.SetRaceLevel(3)
	familiar.ClassLevel = 2

	report := s.validator.Validate(s.ctx, familiar)
	s.False(report.Valid)
	s.NotEmpty(report.MetaIssues)
}

func (s *ValidatorTestSuite) TestRaceLevelingRequiresRaceLevel() {
	familiar := character.New("char_2", "Ember", character.TypeFamiliar)
	familiar.Race = "fire drake"

	report := s.validator.Validate(s.ctx, familiar)
	s.False(report.Valid)
}

func TestValidatorSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}
