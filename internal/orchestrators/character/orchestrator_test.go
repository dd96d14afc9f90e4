package character_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/aldenmoor/levelforge/internal/catalog"
	catalogmock "github.com/aldenmoor/levelforge/internal/catalog/mock"
	"github.com/aldenmoor/levelforge/internal/engine"
	"github.com/aldenmoor/levelforge/internal/entities/character"
	"github.com/aldenmoor/levelforge/internal/errors"
	charorch "github.com/aldenmoor/levelforge/internal/orchestrators/character"
	"github.com/aldenmoor/levelforge/internal/pkg/clock"
	"github.com/aldenmoor/levelforge/internal/pkg/idgen"
	characterrepo "github.com/aldenmoor/levelforge/internal/repositories/character"
	charrepomock "github.com/aldenmoor/levelforge/internal/repositories/character/mock"
	"github.com/aldenmoor/levelforge/internal/validation"
)

var testTime = time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)

type OrchestratorTestSuite struct {
	suite.Suite
	ctx     context.Context
	content *catalog.Static
	repo    characterrepo.Repository
	orch    *charorch.Orchestrator
}

func (s *OrchestratorTestSuite) SetupTest() {
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

	s.content = content

	repo, err := characterrepo.NewCSV(&characterrepo.CSVConfig{
		Path: filepath.Join(s.T().TempDir(), "characters.csv"),
	})
	s.Require().NoError(err)
	s.repo = repo

	s.orch = s.newOrchestrator(content, repo)
}

func (s *OrchestratorTestSuite) newOrchestrator(content catalog.Catalog, repo characterrepo.Repository) *charorch.Orchestrator {
	eng, err := engine.New(&engine.Config{Catalog: content})
	s.Require().NoError(err)

	analyzer, err := validation.NewAnalyzer(&validation.AnalyzerConfig{Catalog: content})
	s.Require().NoError(err)

	validator, err := validation.NewValidator(&validation.ValidatorConfig{
		Analyzer: analyzer,
		Clock:    clock.NewFixed(testTime),
	})
	s.Require().NoError(err)

	orch, err := charorch.New(&charorch.Config{
		Repository:  repo,
		Engine:      eng,
		Validator:   validator,
		Catalog:     content,
		IDGenerator: idgen.NewSequential("char"),
	})
	s.Require().NoError(err)
	return orch
}

func (s *OrchestratorTestSuite) TestCreateCalculatedAppliesHistory() {
	out, err := s.orch.CreateCalculated(s.ctx, &charorch.CreateCalculatedInput{
		Name:            "Aldric",
		Class:           "warrior",
		ClassLevel:      5,
		Profession:      "blacksmith",
		ProfessionLevel: 3,
		Race:            "human",
	})
	s.Require().NoError(err)

	c := out.Character
	s.Equal(10, c.Ledger.Current(character.StatStrength))
	s.Equal(8, c.Ledger.Current(character.StatEndurance))
	// Race level derives to (5+3)/2 = 4
	s.Equal(4, c.RaceLevel())
	s.Equal("G", c.RaceRank())
	s.Equal(9, c.Ledger.Current(character.StatVitality))
	// 5 class levels at 1 each plus 4 race levels at 2 each
	s.Equal(13, c.FreePoints)

	stored, err := s.repo.Get(s.ctx, characterrepo.GetInput{Name: "Aldric"})
	s.Require().NoError(err)
	s.Equal(13, stored.CharacterData.FreePoints)
}

func (s *OrchestratorTestSuite) TestCreateCalculatedRolledBase() {
	out, err := s.orch.CreateCalculated(s.ctx, &charorch.CreateCalculatedInput{
		Name:          "Brenna",
		RollBaseStats: true,
	})
	s.Require().NoError(err)

	for _, stat := range character.Stats() {
		value := out.Character.Ledger.Current(stat)
		s.GreaterOrEqual(value, 3, "stat %s", stat)
		s.LessOrEqual(value, 18, "stat %s", stat)
	}
}

func (s *OrchestratorTestSuite) TestCreateRejectsUnknownClass() {
	_, err := s.orch.CreateCalculated(s.ctx, &charorch.CreateCalculatedInput{
		Name:  "Aldric",
		Class: "necromancer",
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	// Nothing was persisted
	_, err = s.repo.Get(s.ctx, characterrepo.GetInput{Name: "Aldric"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestCreateDuplicateName() {
	input := &charorch.CreateCalculatedInput{Name: "Aldric", Class: "warrior", ClassLevel: 1}
	_, err := s.orch.CreateCalculated(s.ctx, input)
	s.Require().NoError(err)

	_, err = s.orch.CreateCalculated(s.ctx, input)
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *OrchestratorTestSuite) TestCreateRaceLeveling() {
	out, err := s.orch.CreateRaceLeveling(s.ctx, &charorch.CreateRaceLevelingInput{
		Name:      "Ember",
		Type:      character.TypeFamiliar,
		Race:      "fire drake",
		RaceLevel: 5,
	})
	s.Require().NoError(err)

	c := out.Character
	s.Equal(5, c.RaceLevel())
	s.Equal(15, c.Ledger.Current(character.StatStrength))
	s.Equal(5, c.FreePoints)
}

func (s *OrchestratorTestSuite) TestLevelUpPersists() {
	_, err := s.orch.CreateCalculated(s.ctx, &charorch.CreateCalculatedInput{
		Name:       "Aldric",
		Class:      "warrior",
		ClassLevel: 1,
	})
	s.Require().NoError(err)

	_, err = s.orch.LevelUp(s.ctx, &charorch.LevelUpInput{
		Name:        "Aldric",
		Kind:        engine.KindClass,
		TargetLevel: 4,
	})
	s.Require().NoError(err)

	out, err := s.orch.GetCharacter(s.ctx, &charorch.GetCharacterInput{Name: "Aldric"})
	s.Require().NoError(err)
	s.Equal(4, out.Character.ClassLevel)
	s.Equal(9, out.Character.Ledger.Current(character.StatStrength))
	s.Equal(4, out.Character.FreePoints)
}

func (s *OrchestratorTestSuite) TestLevelUpWatermarkRejected() {
	_, err := s.orch.CreateCalculated(s.ctx, &charorch.CreateCalculatedInput{
		Name:       "Aldric",
		Class:      "warrior",
		ClassLevel: 5,
	})
	s.Require().NoError(err)

	_, err = s.orch.LevelUp(s.ctx, &charorch.LevelUpInput{
		Name:        "Aldric",
		Kind:        engine.KindClass,
		TargetLevel: 5,
	})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestAllocateRandomlySpendsAll() {
	_, err := s.orch.CreateCalculated(s.ctx, &charorch.CreateCalculatedInput{
		Name:       "Aldric",
		Class:      "warrior",
		ClassLevel: 6,
		Race:       "human",
	})
	s.Require().NoError(err)

	out, err := s.orch.AllocateRandomly(s.ctx, &charorch.AllocateRandomlyInput{Name: "Aldric"})
	s.Require().NoError(err)

	s.Equal(0, out.Character.FreePoints)
	total := 0
	for stat, n := range out.Spent {
		s.Positive(n)
		s.Equal(n, out.Character.Ledger.SourceAmount(stat, character.SourceFreePoints))
		total += n
	}
	// Class levels 1..6 grant 6, race levels 1..3 grant 6
	s.Equal(12, total)
}

func (s *OrchestratorTestSuite) TestCreateCustomAppliesRaceGains() {
	out, err := s.orch.CreateCustom(s.ctx, &charorch.CreateCustomInput{
		Name:            "Aldric",
		Class:           "warrior",
		ClassLevel:      4,
		Profession:      "blacksmith",
		ProfessionLevel: 2,
		Race:            "human",
		Stats:           map[character.Stat]int{character.StatVitality: 20},
		FreePoints:      5,
	})
	s.Require().NoError(err)

	c := out.Character
	// Race level derives to (4+2)/2 = 3; supplied stats gain race bonuses
	// on top, never class or profession ones
	s.Equal(3, c.RaceLevel())
	s.Equal("G", c.RaceRank())
	s.Equal(23, c.Ledger.Current(character.StatVitality))
	s.Equal(5, c.Ledger.Current(character.StatStrength))
	s.Equal(5+3*2, c.FreePoints)
}

func (s *OrchestratorTestSuite) TestCreateCustomStableAcrossLoad() {
	created, err := s.orch.CreateCustom(s.ctx, &charorch.CreateCustomInput{
		Name:            "Aldric",
		Class:           "warrior",
		ClassLevel:      4,
		Profession:      "blacksmith",
		ProfessionLevel: 2,
		Race:            "human",
		Stats:           map[character.Stat]int{character.StatVitality: 20},
		FreePoints:      5,
	})
	s.Require().NoError(err)

	loaded, err := s.orch.GetCharacter(s.ctx, &charorch.GetCharacterInput{Name: "Aldric"})
	s.Require().NoError(err)

	for _, stat := range character.Stats() {
		s.Equal(created.Character.Ledger.Current(stat), loaded.Character.Ledger.Current(stat),
			"stat %s changed across save/load", stat)
	}
	s.Equal(created.Character.FreePoints, loaded.Character.FreePoints)
	s.Equal(created.Character.RaceLevel(), loaded.Character.RaceLevel())
	s.Equal(created.Character.RaceRank(), loaded.Character.RaceRank())
}

func (s *OrchestratorTestSuite) TestAllocateRandomlyWithoutPoints() {
	_, err := s.orch.CreateCustom(s.ctx, &charorch.CreateCustomInput{Name: "Aldric"})
	s.Require().NoError(err)

	_, err = s.orch.AllocateRandomly(s.ctx, &charorch.AllocateRandomlyInput{Name: "Aldric"})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestValidatePersistsCorrections() {
	_, err := s.orch.CreateCalculated(s.ctx, &charorch.CreateCalculatedInput{
		Name:            "Aldric",
		Class:           "warrior",
		ClassLevel:      5,
		Profession:      "blacksmith",
		ProfessionLevel: 3,
		Race:            "human",
	})
	s.Require().NoError(err)

	// Corrupt the stored free-point counter behind the orchestrator's back
	stored, err := s.repo.Get(s.ctx, characterrepo.GetInput{Name: "Aldric"})
	s.Require().NoError(err)
	stored.CharacterData.FreePoints = 0
	_, err = s.repo.Update(s.ctx, characterrepo.UpdateInput{CharacterData: stored.CharacterData})
	s.Require().NoError(err)

	out, err := s.orch.ValidateCharacter(s.ctx, &charorch.ValidateCharacterInput{Name: "Aldric"})
	s.Require().NoError(err)
	s.True(out.Report.AutoCorrected)
	s.True(out.Report.Valid)
	s.Equal(13, out.Character.FreePoints)

	reloaded, err := s.repo.Get(s.ctx, characterrepo.GetInput{Name: "Aldric"})
	s.Require().NoError(err)
	s.Equal(13, reloaded.CharacterData.FreePoints)
	s.Equal(string(character.StatusValid), reloaded.CharacterData.Status)
}

func (s *OrchestratorTestSuite) TestReverseEngineeredLifecycle() {
	base := map[character.Stat]int{}
	current := map[character.Stat]int{}
	for _, stat := range character.Stats() {
		base[stat] = 5
		current[stat] = 5
	}
	current[character.StatStrength] = 10
	current[character.StatWisdom] = 7

	out, err := s.orch.CreateReverseEngineered(s.ctx, &charorch.CreateReverseEngineeredInput{
		Name:         "Aldric",
		Class:        "warrior",
		ClassLevel:   5,
		BaseStats:    base,
		CurrentStats: current,
	})
	s.Require().NoError(err)

	c := out.Character
	s.Equal(character.ClassificationReverseEngineered, c.Classify())
	s.Equal(10, c.Ledger.Current(character.StatStrength))
	s.Equal(2, c.Ledger.SourceAmount(character.StatWisdom, character.SourceFreePoints))
	s.Equal(3, c.FreePoints)

	validated, err := s.orch.ValidateCharacter(s.ctx, &charorch.ValidateCharacterInput{Name: "Aldric"})
	s.Require().NoError(err)
	s.True(validated.Report.Valid, "summary: %s", validated.Report.Summary)
	s.True(validated.Report.ConvertedToCalculated)

	info, err := s.orch.GetCreationInfo(s.ctx, &charorch.GetCreationInfoInput{Name: "Aldric"})
	s.Require().NoError(err)
	s.Equal(character.ClassificationCalculated, info.Classification)
	s.Require().NotNil(info.Creation)
	s.Equal("manual_reverse_engineered", info.Creation.OriginalMethod)
	s.Equal(testTime, info.Creation.ConvertedAt)
}

func (s *OrchestratorTestSuite) TestChangeClassPersistsHistory() {
	_, err := s.orch.CreateCalculated(s.ctx, &charorch.CreateCalculatedInput{
		Name:       "Aldric",
		Class:      "warrior",
		ClassLevel: 3,
	})
	s.Require().NoError(err)

	content := catalog.New().
		AddClass("warrior", 1, catalog.Gains{FreePoints: 1}).
		AddClass("berserker", 1, catalog.Gains{FreePoints: 1})
	orch := s.newOrchestrator(content, s.repo)

	out, err := orch.ChangeClass(s.ctx, &charorch.ChangeClassInput{
		Name:     "Aldric",
		NewClass: "berserker",
		AtLevel:  4,
	})
	s.Require().NoError(err)
	s.Equal("berserker", out.Character.Class)

	reloaded, err := orch.GetCharacter(s.ctx, &charorch.GetCharacterInput{Name: "Aldric"})
	s.Require().NoError(err)
	s.Equal("warrior", reloaded.Character.ClassHistory.ActiveAt(3))
	s.Equal("berserker", reloaded.Character.ClassHistory.ActiveAt(4))
}

func (s *OrchestratorTestSuite) TestBlessingRoundTrip() {
	_, err := s.orch.CreateCalculated(s.ctx, &charorch.CreateCalculatedInput{Name: "Aldric"})
	s.Require().NoError(err)

	out, err := s.orch.ApplyBlessing(s.ctx, &charorch.ApplyBlessingInput{
		Name:    "Aldric",
		Bonuses: map[character.Stat]int{character.StatVitality: 495},
	})
	s.Require().NoError(err)
	s.Equal(500, out.Character.Ledger.Current(character.StatVitality))
	s.Equal(735, out.Character.MaxHealth)

	removed, err := s.orch.RemoveBlessing(s.ctx, &charorch.RemoveBlessingInput{Name: "Aldric"})
	s.Require().NoError(err)
	s.Equal(5, removed.Character.Ledger.Current(character.StatVitality))

	_, err = s.orch.RemoveBlessing(s.ctx, &charorch.RemoveBlessingInput{Name: "Aldric"})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestTierThresholdManagement() {
	_, err := s.orch.CreateCalculated(s.ctx, &charorch.CreateCalculatedInput{
		Name:       "Aldric",
		Class:      "warrior",
		ClassLevel: 10,
	})
	s.Require().NoError(err)

	added, err := s.orch.AddTierThreshold(s.ctx, &charorch.AddTierThresholdInput{
		Name:      "Aldric",
		Threshold: 50,
	})
	s.Require().NoError(err)
	s.Equal([]int{25, 50}, added.Character.TierThresholds)

	// Lowering the first threshold below the current level changes the tier
	out, err := s.orch.SetTierThresholds(s.ctx, &charorch.SetTierThresholdsInput{
		Name:       "Aldric",
		Thresholds: []int{5, 50},
	})
	s.Require().NoError(err)
	s.True(out.TierChanged)

	// A threshold the character already passed cannot be removed
	_, err = s.orch.RemoveTierThreshold(s.ctx, &charorch.RemoveTierThresholdInput{
		Name:      "Aldric",
		Threshold: 5,
	})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestListSkipsBrokenRows() {
	_, err := s.orch.CreateCalculated(s.ctx, &charorch.CreateCalculatedInput{Name: "Aldric"})
	s.Require().NoError(err)

	// Store a row with a type no reconstruction accepts
	broken := testBrokenData("char_x", "Brenna")
	_, err = s.repo.Create(s.ctx, characterrepo.CreateInput{CharacterData: broken})
	s.Require().NoError(err)

	out, err := s.orch.ListCharacters(s.ctx, &charorch.ListCharactersInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Characters, 1)
	s.Equal("Aldric", out.Characters[0].Name)
}

func (s *OrchestratorTestSuite) TestFailedMutationIsNotSaved() {
	ctrl := gomock.NewController(s.T())
	mockRepo := charrepomock.NewMockRepository(ctrl)

	c := character.New("char_9", "Aldric", character.TypeCharacter)
	c.Class = "warrior"
	c.ClassLevel = 5
	c.ClassHistory = character.NewTrackWith("warrior", 1)
	mockRepo.EXPECT().
		Get(gomock.Any(), characterrepo.GetInput{Name: "Aldric"}).
		Return(&characterrepo.GetOutput{CharacterData: c.ToData()}, nil)

	orch := s.newOrchestrator(s.content, mockRepo)

	// Target below the watermark fails; Update must never be called
	_, err := orch.LevelUp(s.ctx, &charorch.LevelUpInput{
		Name:        "Aldric",
		Kind:        engine.KindClass,
		TargetLevel: 3,
	})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestCatalogGateWithMock() {
	ctrl := gomock.NewController(s.T())
	mockCatalog := catalogmock.NewMockCatalog(ctrl)
	mockCatalog.EXPECT().IsClassAvailable("warrior", 1).Return(false)

	orch := s.newOrchestrator(mockCatalog, s.repo)

	_, err := orch.CreateCalculated(s.ctx, &charorch.CreateCalculatedInput{
		Name:  "Aldric",
		Class: "warrior",
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func testBrokenData(id, name string) *character.Data {
	c := character.New(id, name, character.TypeCharacter)
	data := c.ToData()
	data.Type = "dragon"
	return data
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
