package character

import (
	"sort"
	"time"

	"github.com/aldenmoor/levelforge/internal/errors"
)

// Type fixes the leveling model for a character
type Type string

// Character types
const (
	TypeCharacter Type = "character"
	TypeFamiliar  Type = "familiar"
	TypeMonster   Type = "monster"
)

// ParseType converts a string to a Type
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeCharacter, TypeFamiliar, TypeMonster:
		return Type(s), nil
	}
	return "", errors.InvalidArgumentf("invalid character type: %s", s)
}

// ValidationStatus tracks whether a character has been validated
type ValidationStatus string

// Validation statuses
const (
	StatusUnvalidated ValidationStatus = "unvalidated"
	StatusValid       ValidationStatus = "valid"
	StatusInvalid     ValidationStatus = "invalid"
)

// Classification names the creation mode a character is in
type Classification string

// Classifications
const (
	ClassificationCalculated        Classification = "calculated"
	ClassificationCustomManual      Classification = "custom_manual"
	ClassificationReverseEngineered Classification = "reverse_engineered_manual"
	ClassificationRaceLeveling      Classification = "race_leveling"
)

// CreationRecord archives the manual data of a character that was
// converted to calculated after validating
type CreationRecord struct {
	OriginalMethod  string       `json:"original_method"`
	OriginalBase    map[Stat]int `json:"original_base_stats"`
	OriginalCurrent map[Stat]int `json:"original_current_stats"`
	ConvertedAt     time.Time    `json:"converted_at"`
	Reason          string       `json:"reason"`
}

// DefaultTierThresholds is the threshold list characters start with
func DefaultTierThresholds() []int {
	return []int{25}
}

// Character is the aggregate root. It owns one stat ledger, three history
// tracks, a free-point counter, tier thresholds, and derived health.
type Character struct {
	ID   string
	Name string
	Type Type

	Class           string
	ClassLevel      int
	Profession      string
	ProfessionLevel int
	Race            string

	raceLevel int
	raceRank  string

	TierThresholds []int

	Ledger *Ledger

	ClassHistory      *Track
	ProfessionHistory *Track
	RaceHistory       *Track

	FreePoints int

	Manual        bool
	ManualBase    map[Stat]int
	ManualCurrent map[Stat]int

	Status   ValidationStatus
	Creation *CreationRecord

	blessing map[Stat]int

	MaxHealth     int
	CurrentHealth int
}

// New creates a bare character shell with defaults in place. Factories in
// the orchestrator layer seed the ledger and histories.
func New(id, name string, charType Type) *Character {
	c := &Character{
		ID:                id,
		Name:              name,
		Type:              charType,
		TierThresholds:    DefaultTierThresholds(),
		Ledger:            NewLedger(0),
		ClassHistory:      NewTrack(),
		ProfessionHistory: NewTrack(),
		RaceHistory:       NewTrack(),
		Status:            StatusUnvalidated,
	}
	c.RecomputeHealth()
	c.CurrentHealth = c.MaxHealth
	return c
}

// IsRaceLeveling reports whether the character advances only via race level
func (c *Character) IsRaceLeveling() bool {
	return c.Type == TypeFamiliar || c.Type == TypeMonster
}

// Classify returns the character's current creation mode
func (c *Character) Classify() Classification {
	if c.IsRaceLeveling() {
		return ClassificationRaceLeveling
	}
	if c.Manual {
		if len(c.ManualBase) > 0 && len(c.ManualCurrent) > 0 {
			return ClassificationReverseEngineered
		}
		return ClassificationCustomManual
	}
	return ClassificationCalculated
}

// RaceLevel returns the derived race level
func (c *Character) RaceLevel() int {
	return c.raceLevel
}

// RaceRank returns the rank label for the current race level
func (c *Character) RaceRank() string {
	return c.raceRank
}

// SetRaceLevel is for the progression engine and persistence layer only.
// Race level is derived for regular characters and must not be set through
// a generic mutation path.
func (c *Character) SetRaceLevel(level int) {
	c.raceLevel = level
}

// SetRaceRank is for the progression engine and persistence layer only
func (c *Character) SetRaceRank(rank string) {
	c.raceRank = rank
}

// DerivedRaceLevel computes what the race level should be for a regular
// character: floor of the mean of class and profession level.
func (c *Character) DerivedRaceLevel() int {
	return (c.ClassLevel + c.ProfessionLevel) / 2
}

// SetTierThresholds replaces the threshold list after validating it is
// ascending, unique, and positive
func (c *Character) SetTierThresholds(thresholds []int) error {
	if len(thresholds) == 0 {
		return errors.InvalidArgument("tier thresholds cannot be empty")
	}
	for i, t := range thresholds {
		if t <= 0 {
			return errors.InvalidArgumentf("tier threshold must be positive, got %d", t)
		}
		if i > 0 && t <= thresholds[i-1] {
			return errors.InvalidArgumentf("tier thresholds must be strictly ascending, got %d after %d", t, thresholds[i-1])
		}
	}
	c.TierThresholds = append([]int(nil), thresholds...)
	return nil
}

// AddTierThreshold inserts a new threshold keeping the list sorted
func (c *Character) AddTierThreshold(threshold int) error {
	if threshold <= 0 {
		return errors.InvalidArgumentf("tier threshold must be positive, got %d", threshold)
	}
	for _, t := range c.TierThresholds {
		if t == threshold {
			return errors.AlreadyExistsf("tier threshold %d already set", threshold)
		}
	}
	c.TierThresholds = append(c.TierThresholds, threshold)
	sort.Ints(c.TierThresholds)
	return nil
}

// RemoveTierThreshold removes a threshold the character has not yet reached.
// Removing a surpassed threshold would retroactively change which tier past
// levels fell in, so it is rejected.
func (c *Character) RemoveTierThreshold(threshold int) error {
	idx := -1
	for i, t := range c.TierThresholds {
		if t == threshold {
			idx = i
			break
		}
	}
	if idx < 0 {
		return errors.NotFoundf("tier threshold %d not set", threshold)
	}
	if c.HighestLevel() >= threshold {
		return errors.FailedPreconditionf(
			"cannot remove tier threshold %d already reached at level %d", threshold, c.HighestLevel())
	}
	c.TierThresholds = append(c.TierThresholds[:idx], c.TierThresholds[idx+1:]...)
	return nil
}

// HighestLevel returns the highest progression level the character holds
// on any track
func (c *Character) HighestLevel() int {
	highest := c.ClassLevel
	if c.ProfessionLevel > highest {
		highest = c.ProfessionLevel
	}
	if c.raceLevel > highest {
		highest = c.raceLevel
	}
	return highest
}

// ApplyBlessing applies a stat-delta map under the blessing source. Only
// one blessing can be active at a time.
func (c *Character) ApplyBlessing(bonuses map[Stat]int) error {
	if c.blessing != nil {
		return errors.FailedPrecondition("a blessing is already active; remove it first")
	}
	for stat := range bonuses {
		if !IsValidStat(stat) {
			return errors.InvalidArgumentf("invalid stat: %s", stat)
		}
	}
	applied := make(map[Stat]int, len(bonuses))
	for stat, amt := range bonuses {
		if err := c.Ledger.AddContribution(stat, amt, SourceBlessing); err != nil {
			return err
		}
		applied[stat] = amt
	}
	c.blessing = applied
	c.RecomputeHealth()
	return nil
}

// RemoveBlessing fully reverses the active blessing
func (c *Character) RemoveBlessing() error {
	if c.blessing == nil {
		return errors.FailedPrecondition("no blessing is active")
	}
	for stat, amt := range c.blessing {
		if err := c.Ledger.AddContribution(stat, -amt, SourceBlessing); err != nil {
			return err
		}
	}
	c.blessing = nil
	c.RecomputeHealth()
	return nil
}

// ActiveBlessing returns a copy of the active blessing, or nil
func (c *Character) ActiveBlessing() map[Stat]int {
	if c.blessing == nil {
		return nil
	}
	out := make(map[Stat]int, len(c.blessing))
	for stat, amt := range c.blessing {
		out[stat] = amt
	}
	return out
}

// ApplyItemBonuses adds a stat-delta map under the item source
func (c *Character) ApplyItemBonuses(bonuses map[Stat]int) error {
	for stat := range bonuses {
		if !IsValidStat(stat) {
			return errors.InvalidArgumentf("invalid stat: %s", stat)
		}
	}
	for stat, amt := range bonuses {
		if err := c.Ledger.AddContribution(stat, amt, SourceItem); err != nil {
			return err
		}
	}
	c.RecomputeHealth()
	return nil
}

// RemoveItemBonuses reverses a previously applied item stat-delta map
func (c *Character) RemoveItemBonuses(bonuses map[Stat]int) error {
	for stat := range bonuses {
		if !IsValidStat(stat) {
			return errors.InvalidArgumentf("invalid stat: %s", stat)
		}
	}
	for stat, amt := range bonuses {
		if err := c.Ledger.AddContribution(stat, -amt, SourceItem); err != nil {
			return err
		}
	}
	c.RecomputeHealth()
	return nil
}

// RecomputeHealth derives max health from the vitality modifier. When the
// maximum rises, current health rises by the same amount; when it falls,
// current health is clamped to the new maximum.
func (c *Character) RecomputeHealth() {
	newMax := c.Ledger.Modifier(StatVitality)
	delta := newMax - c.MaxHealth
	c.MaxHealth = newMax
	if delta > 0 {
		c.CurrentHealth += delta
	}
	if c.CurrentHealth > c.MaxHealth {
		c.CurrentHealth = c.MaxHealth
	}
}

// Damage reduces current health, clamped at zero
func (c *Character) Damage(amount int) error {
	if amount < 0 {
		return errors.InvalidArgumentf("damage amount must be non-negative, got %d", amount)
	}
	c.CurrentHealth -= amount
	if c.CurrentHealth < 0 {
		c.CurrentHealth = 0
	}
	return nil
}

// Heal restores current health, clamped at the maximum
func (c *Character) Heal(amount int) error {
	if amount < 0 {
		return errors.InvalidArgumentf("heal amount must be non-negative, got %d", amount)
	}
	c.CurrentHealth += amount
	if c.CurrentHealth > c.MaxHealth {
		c.CurrentHealth = c.MaxHealth
	}
	return nil
}

// ResetHealth restores current health to the maximum
func (c *Character) ResetHealth() {
	c.CurrentHealth = c.MaxHealth
}
