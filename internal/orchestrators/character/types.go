package character

import (
	"context"

	"github.com/aldenmoor/levelforge/internal/engine"
	"github.com/aldenmoor/levelforge/internal/entities/character"
	"github.com/aldenmoor/levelforge/internal/validation"
)

// Service defines the character progression operations
type Service interface {
	// Factories
	CreateCalculated(ctx context.Context, input *CreateCalculatedInput) (*CreateCalculatedOutput, error)
	CreateCustom(ctx context.Context, input *CreateCustomInput) (*CreateCustomOutput, error)
	CreateReverseEngineered(ctx context.Context, input *CreateReverseEngineeredInput) (*CreateReverseEngineeredOutput, error)
	CreateRaceLeveling(ctx context.Context, input *CreateRaceLevelingInput) (*CreateRaceLevelingOutput, error)

	// Lookup
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)
	GetCreationInfo(ctx context.Context, input *GetCreationInfoInput) (*GetCreationInfoOutput, error)

	// Progression
	LevelUp(ctx context.Context, input *LevelUpInput) (*LevelUpOutput, error)
	ChangeClass(ctx context.Context, input *ChangeClassInput) (*ChangeClassOutput, error)
	ChangeProfession(ctx context.Context, input *ChangeProfessionInput) (*ChangeProfessionOutput, error)
	ChangeRace(ctx context.Context, input *ChangeRaceInput) (*ChangeRaceOutput, error)

	// Free points
	AllocateFreePoints(ctx context.Context, input *AllocateFreePointsInput) (*AllocateFreePointsOutput, error)
	AllocateRandomly(ctx context.Context, input *AllocateRandomlyInput) (*AllocateRandomlyOutput, error)

	// Bonuses
	ApplyBlessing(ctx context.Context, input *ApplyBlessingInput) (*ApplyBlessingOutput, error)
	RemoveBlessing(ctx context.Context, input *RemoveBlessingInput) (*RemoveBlessingOutput, error)
	ApplyItemBonuses(ctx context.Context, input *ApplyItemBonusesInput) (*ApplyItemBonusesOutput, error)
	RemoveItemBonuses(ctx context.Context, input *RemoveItemBonusesInput) (*RemoveItemBonusesOutput, error)

	// Tier thresholds
	SetTierThresholds(ctx context.Context, input *SetTierThresholdsInput) (*SetTierThresholdsOutput, error)
	AddTierThreshold(ctx context.Context, input *AddTierThresholdInput) (*AddTierThresholdOutput, error)
	RemoveTierThreshold(ctx context.Context, input *RemoveTierThresholdInput) (*RemoveTierThresholdOutput, error)

	// Validation
	ValidateCharacter(ctx context.Context, input *ValidateCharacterInput) (*ValidateCharacterOutput, error)
}

// CreateCalculatedInput creates a character whose stats are derived
// entirely from its progression history
type CreateCalculatedInput struct {
	Name            string
	Class           string
	ClassLevel      int
	Profession      string
	ProfessionLevel int
	Race            string

	// BaseStats overrides the default base of 5 per stat. Ignored when
	// RollBaseStats is set.
	BaseStats     map[character.Stat]int
	RollBaseStats bool

	TierThresholds []int
}

// CreateCalculatedOutput returns the persisted character
type CreateCalculatedOutput struct {
	Character *character.Character
}

// CreateCustomInput creates a manual character with caller-supplied stats
// and no progression audit trail
type CreateCustomInput struct {
	Name            string
	Class           string
	ClassLevel      int
	Profession      string
	ProfessionLevel int
	Race            string

	Stats      map[character.Stat]int
	FreePoints int
}

// CreateCustomOutput returns the persisted character
type CreateCustomOutput struct {
	Character *character.Character
}

// CreateReverseEngineeredInput creates a manual character whose free-point
// spending is inferred from the gap between base and current stats
type CreateReverseEngineeredInput struct {
	Name            string
	Class           string
	ClassLevel      int
	Profession      string
	ProfessionLevel int
	Race            string

	BaseStats    map[character.Stat]int
	CurrentStats map[character.Stat]int
}

// CreateReverseEngineeredOutput returns the persisted character
type CreateReverseEngineeredOutput struct {
	Character *character.Character
}

// CreateRaceLevelingInput creates a familiar or monster that advances
// through race levels only
type CreateRaceLevelingInput struct {
	Name      string
	Type      character.Type
	Race      string
	RaceLevel int

	BaseStats map[character.Stat]int
}

// CreateRaceLevelingOutput returns the persisted character
type CreateRaceLevelingOutput struct {
	Character *character.Character
}

// GetCharacterInput loads a character by name
type GetCharacterInput struct {
	Name string
}

// GetCharacterOutput returns the loaded character
type GetCharacterOutput struct {
	Character *character.Character
}

// ListCharactersInput lists every stored character
type ListCharactersInput struct{}

// ListCharactersOutput returns the loaded characters. Characters that fail
// to reconstruct are skipped, not fatal.
type ListCharactersOutput struct {
	Characters []*character.Character
}

// DeleteCharacterInput deletes a character by name
type DeleteCharacterInput struct {
	Name string
}

// DeleteCharacterOutput confirms the deletion
type DeleteCharacterOutput struct{}

// GetCreationInfoInput asks how a character was created
type GetCreationInfoInput struct {
	Name string
}

// GetCreationInfoOutput summarizes the character's creation mode and any
// manual-to-calculated conversion
type GetCreationInfoOutput struct {
	Classification character.Classification
	Status         character.ValidationStatus
	Creation       *character.CreationRecord
	Summary        string
}

// LevelUpInput advances one progression track to a target level
type LevelUpInput struct {
	Name        string
	Kind        engine.Kind
	TargetLevel int
}

// LevelUpOutput returns the updated character
type LevelUpOutput struct {
	Character *character.Character
}

// ChangeClassInput switches class at a given class level
type ChangeClassInput struct {
	Name     string
	NewClass string
	AtLevel  int
}

// ChangeClassOutput returns the updated character
type ChangeClassOutput struct {
	Character *character.Character
}

// ChangeProfessionInput switches profession at a given profession level
type ChangeProfessionInput struct {
	Name          string
	NewProfession string
	AtLevel       int
}

// ChangeProfessionOutput returns the updated character
type ChangeProfessionOutput struct {
	Character *character.Character
}

// ChangeRaceInput switches race at a given race level. AtRaceLevel of 0
// defaults to the current race level plus one.
type ChangeRaceInput struct {
	Name        string
	NewRace     string
	AtRaceLevel int
}

// ChangeRaceOutput returns the updated character
type ChangeRaceOutput struct {
	Character *character.Character
}

// AllocateFreePointsInput spends free points on one stat
type AllocateFreePointsInput struct {
	Name      string
	Stat      character.Stat
	Amount    int
	AllowDebt bool
}

// AllocateFreePointsOutput returns the updated character
type AllocateFreePointsOutput struct {
	Character *character.Character
}

// AllocateRandomlyInput spends the character's entire free-point balance
// one point at a time on randomly chosen stats
type AllocateRandomlyInput struct {
	Name string
}

// AllocateRandomlyOutput returns the updated character and how each stat
// fared
type AllocateRandomlyOutput struct {
	Character *character.Character
	Spent     map[character.Stat]int
}

// ApplyBlessingInput applies a stat-delta blessing
type ApplyBlessingInput struct {
	Name    string
	Bonuses map[character.Stat]int
}

// ApplyBlessingOutput returns the updated character
type ApplyBlessingOutput struct {
	Character *character.Character
}

// RemoveBlessingInput removes the active blessing
type RemoveBlessingInput struct {
	Name string
}

// RemoveBlessingOutput returns the updated character
type RemoveBlessingOutput struct {
	Character *character.Character
}

// ApplyItemBonusesInput applies an item stat-delta map
type ApplyItemBonusesInput struct {
	Name    string
	Bonuses map[character.Stat]int
}

// ApplyItemBonusesOutput returns the updated character
type ApplyItemBonusesOutput struct {
	Character *character.Character
}

// RemoveItemBonusesInput reverses an item stat-delta map
type RemoveItemBonusesInput struct {
	Name    string
	Bonuses map[character.Stat]int
}

// RemoveItemBonusesOutput returns the updated character
type RemoveItemBonusesOutput struct {
	Character *character.Character
}

// SetTierThresholdsInput replaces the tier threshold list
type SetTierThresholdsInput struct {
	Name       string
	Thresholds []int
}

// SetTierThresholdsOutput returns the updated character. TierChanged is
// set when the replacement moved the character into a different tier.
type SetTierThresholdsOutput struct {
	Character   *character.Character
	TierChanged bool
}

// AddTierThresholdInput inserts one tier threshold
type AddTierThresholdInput struct {
	Name      string
	Threshold int
}

// AddTierThresholdOutput returns the updated character
type AddTierThresholdOutput struct {
	Character *character.Character
}

// RemoveTierThresholdInput removes one tier threshold
type RemoveTierThresholdInput struct {
	Name      string
	Threshold int
}

// RemoveTierThresholdOutput returns the updated character
type RemoveTierThresholdOutput struct {
	Character *character.Character
}

// ValidateCharacterInput validates a character and persists any
// corrections
type ValidateCharacterInput struct {
	Name string
}

// ValidateCharacterOutput returns the validation report and the character
// in its post-validation state
type ValidateCharacterOutput struct {
	Character *character.Character
	Report    *validation.Report
}
