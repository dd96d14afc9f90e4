package character_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/aldenmoor/levelforge/internal/entities/character"
	"github.com/aldenmoor/levelforge/internal/errors"
)

type CharacterTestSuite struct {
	suite.Suite
	char *character.Character
}

func (s *CharacterTestSuite) SetupTest() {
	s.char = character.New("char_1", "Aldric", character.TypeCharacter)
	for _, stat := range character.Stats() {
		s.Require().NoError(s.char.Ledger.SetBase(stat, 5))
	}
	s.char.RecomputeHealth()
	s.char.CurrentHealth = s.char.MaxHealth
}

func (s *CharacterTestSuite) TestClassify() {
	s.Equal(character.ClassificationCalculated, s.char.Classify())

	s.char.Manual = true
	s.Equal(character.ClassificationCustomManual, s.char.Classify())

	s.char.ManualBase = map[character.Stat]int{character.StatStrength: 5}
	s.char.ManualCurrent = map[character.Stat]int{character.StatStrength: 8}
	s.Equal(character.ClassificationReverseEngineered, s.char.Classify())

	familiar := character.New("char_2", "Ember", character.TypeFamiliar)
	s.Equal(character.ClassificationRaceLeveling, familiar.Classify())
}

func (s *CharacterTestSuite) TestDerivedRaceLevel() {
	s.char.ClassLevel = 10
	s.char.ProfessionLevel = 7
	s.Equal(8, s.char.DerivedRaceLevel())

	s.char.ProfessionLevel = 0
	s.Equal(5, s.char.DerivedRaceLevel())
}

func (s *CharacterTestSuite) TestTierThresholds() {
	s.Run("defaults", func() {
		s.Equal([]int{25}, s.char.TierThresholds)
	})

	s.Run("set validates ordering", func() {
		err := s.char.SetTierThresholds([]int{50, 25})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))

		s.Require().NoError(s.char.SetTierThresholds([]int{25, 50}))
		s.Equal([]int{25, 50}, s.char.TierThresholds)
	})

	s.Run("set rejects non-positive and empty", func() {
		s.Error(s.char.SetTierThresholds(nil))
		s.Error(s.char.SetTierThresholds([]int{0, 25}))
	})

	s.Run("add keeps sorted and rejects duplicates", func() {
		s.Require().NoError(s.char.SetTierThresholds([]int{25, 50}))
		s.Require().NoError(s.char.AddTierThreshold(40))
		s.Equal([]int{25, 40, 50}, s.char.TierThresholds)

		err := s.char.AddTierThreshold(40)
		s.Require().Error(err)
		s.True(errors.IsAlreadyExists(err))
	})

	s.Run("remove rejects surpassed thresholds", func() {
		s.Require().NoError(s.char.SetTierThresholds([]int{25, 50}))
		s.char.ClassLevel = 30

		err := s.char.RemoveTierThreshold(25)
		s.Require().Error(err)
		s.True(errors.IsFailedPrecondition(err))

		s.Require().NoError(s.char.RemoveTierThreshold(50))
		s.Equal([]int{25}, s.char.TierThresholds)
	})
}

func (s *CharacterTestSuite) TestBlessingSingleActive() {
	blessing := map[character.Stat]int{character.StatStrength: 10, character.StatWillpower: 5}
	s.Require().NoError(s.char.ApplyBlessing(blessing))
	s.Equal(15, s.char.Ledger.Current(character.StatStrength))

	err := s.char.ApplyBlessing(map[character.Stat]int{character.StatWisdom: 3})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))

	s.Require().NoError(s.char.RemoveBlessing())
	s.Equal(5, s.char.Ledger.Current(character.StatStrength))
	s.Equal(0, s.char.Ledger.SourceAmount(character.StatStrength, character.SourceBlessing))

	err = s.char.RemoveBlessing()
	s.Error(err)
}

func (s *CharacterTestSuite) TestItemBonusesReverse() {
	bonuses := map[character.Stat]int{character.StatDexterity: 4}
	s.Require().NoError(s.char.ApplyItemBonuses(bonuses))
	s.Equal(9, s.char.Ledger.Current(character.StatDexterity))

	s.Require().NoError(s.char.RemoveItemBonuses(bonuses))
	s.Equal(5, s.char.Ledger.Current(character.StatDexterity))
}

func (s *CharacterTestSuite) TestHealthCarriesIncreaseAndClampsDecrease() {
	s.Equal(character.ModifierFor(5), s.char.MaxHealth)
	s.Equal(s.char.MaxHealth, s.char.CurrentHealth)

	s.char.CurrentHealth = s.char.MaxHealth - 2
	damaged := s.char.CurrentHealth

	s.Require().NoError(s.char.Ledger.AddContribution(character.StatVitality, 495, character.SourceFreePoints))
	s.char.RecomputeHealth()

	grown := character.ModifierFor(500)
	s.Equal(grown, s.char.MaxHealth)
	s.Equal(damaged+(grown-character.ModifierFor(5)), s.char.CurrentHealth)

	s.Require().NoError(s.char.Ledger.AddContribution(character.StatVitality, -495, character.SourceFreePoints))
	s.char.RecomputeHealth()
	s.Equal(character.ModifierFor(5), s.char.MaxHealth)
	s.LessOrEqual(s.char.CurrentHealth, s.char.MaxHealth)
}

func (s *CharacterTestSuite) TestDamageHealAndReset() {
	maxHealth := s.char.MaxHealth

	s.Require().NoError(s.char.Damage(3))
	s.Equal(maxHealth-3, s.char.CurrentHealth)

	s.Require().NoError(s.char.Heal(1))
	s.Equal(maxHealth-2, s.char.CurrentHealth)

	s.Require().NoError(s.char.Heal(100))
	s.Equal(maxHealth, s.char.CurrentHealth)

	s.Require().NoError(s.char.Damage(maxHealth + 10))
	s.Equal(0, s.char.CurrentHealth)

	s.char.ResetHealth()
	s.Equal(maxHealth, s.char.CurrentHealth)

	s.Error(s.char.Damage(-1))
	s.Error(s.char.Heal(-1))
}

func (s *CharacterTestSuite) TestDataRoundTrip() {
	s.char.Class = "warrior"
	s.char.ClassLevel = 12
	s.char.Profession = "smith"
	s.char.ProfessionLevel = 8
	s.char.Race = "human"
	s.char.SetRaceLevel(10)
	s.char.SetRaceRank("G")
	s.char.FreePoints = 7
	s.char.ClassHistory = character.NewTrackWith("warrior", 1)
	s.Require().NoError(s.char.ClassHistory.RecordChange("berserker", 10))
	s.char.ProfessionHistory = character.NewTrackWith("smith", 1)
	s.char.RaceHistory = character.NewTrackWith("human", 1)
	s.Require().NoError(s.char.Ledger.AddContribution(character.StatStrength, 11, character.SourceClass))
	s.Require().NoError(s.char.Ledger.AddContribution(character.StatEndurance, 6, character.SourceRace))
	s.Require().NoError(s.char.ApplyBlessing(map[character.Stat]int{character.StatWisdom: 5}))
	s.char.Status = character.StatusValid
	s.char.Creation = &character.CreationRecord{
		OriginalMethod:  "manual_entry",
		OriginalBase:    map[character.Stat]int{character.StatStrength: 5},
		OriginalCurrent: map[character.Stat]int{character.StatStrength: 16},
		ConvertedAt:     time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		Reason:          "validation passed",
	}

	loaded, err := character.FromData(s.char.ToData())
	s.Require().NoError(err)

	s.Equal(s.char.Name, loaded.Name)
	s.Equal(s.char.Type, loaded.Type)
	s.Equal(s.char.ClassLevel, loaded.ClassLevel)
	s.Equal(s.char.RaceLevel(), loaded.RaceLevel())
	s.Equal(s.char.RaceRank(), loaded.RaceRank())
	s.Equal(s.char.TierThresholds, loaded.TierThresholds)
	s.Equal(s.char.FreePoints, loaded.FreePoints)
	s.Equal(s.char.Status, loaded.Status)
	s.Equal(s.char.Creation, loaded.Creation)
	s.Equal(s.char.ClassHistory.Entries, loaded.ClassHistory.Entries)
	s.Equal(s.char.ActiveBlessing(), loaded.ActiveBlessing())
	s.Equal(s.char.MaxHealth, loaded.MaxHealth)
	s.Equal(s.char.CurrentHealth, loaded.CurrentHealth)
	for _, stat := range character.Stats() {
		s.Equal(s.char.Ledger.Current(stat), loaded.Ledger.Current(stat))
		s.Equal(s.char.Ledger.SourceBreakdown(stat), loaded.Ledger.SourceBreakdown(stat))
		s.Equal(s.char.Ledger.Modifier(stat), loaded.Ledger.Modifier(stat))
	}
}

func (s *CharacterTestSuite) TestFromDataRejectsUnknownType() {
	data := s.char.ToData()
	data.Type = "golem"

	_, err := character.FromData(data)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func TestCharacterSuite(t *testing.T) {
	suite.Run(t, new(CharacterTestSuite))
}
