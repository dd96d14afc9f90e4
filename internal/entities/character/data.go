package character

import (
	"github.com/aldenmoor/levelforge/internal/errors"
)

// Data is the flat persistence shape for a character. Repositories
// serialize the structured fields (histories, breakdowns, snapshots) as
// JSON sub-fields inside the backing row. Loading a Data previously
// produced by ToData reconstructs an equivalent character without
// recomputation.
type Data struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`

	Class           string `json:"class"`
	ClassLevel      int    `json:"class_level"`
	Profession      string `json:"profession"`
	ProfessionLevel int    `json:"profession_level"`
	Race            string `json:"race"`
	RaceLevel       int    `json:"race_level"`
	RaceRank        string `json:"race_rank"`

	TierThresholds []int `json:"tier_thresholds"`

	ClassHistory      *Track `json:"class_history"`
	ProfessionHistory *Track `json:"profession_history"`
	RaceHistory       *Track `json:"race_history"`

	// SourceBreakdown is the full stat-by-source cross-product. Current
	// values and modifiers are stored alongside for readability of the
	// backing rows, but reconstruction trusts the breakdown.
	SourceBreakdown map[Stat]map[Source]int `json:"source_breakdown"`
	CurrentStats    map[Stat]int            `json:"current_stats"`
	Modifiers       map[Stat]int            `json:"modifiers"`

	FreePoints int `json:"free_points"`

	Manual        bool         `json:"manual"`
	ManualBase    map[Stat]int `json:"manual_base_stats,omitempty"`
	ManualCurrent map[Stat]int `json:"manual_current_stats,omitempty"`

	Status   string          `json:"validation_status"`
	Creation *CreationRecord `json:"creation_record,omitempty"`

	Blessing map[Stat]int `json:"blessing,omitempty"`

	MaxHealth     int `json:"max_health"`
	CurrentHealth int `json:"current_health"`
}

// ToData snapshots the character into its persistence shape
func (c *Character) ToData() *Data {
	d := &Data{
		ID:                c.ID,
		Name:              c.Name,
		Type:              string(c.Type),
		Class:             c.Class,
		ClassLevel:        c.ClassLevel,
		Profession:        c.Profession,
		ProfessionLevel:   c.ProfessionLevel,
		Race:              c.Race,
		RaceLevel:         c.raceLevel,
		RaceRank:          c.raceRank,
		TierThresholds:    append([]int(nil), c.TierThresholds...),
		ClassHistory:      c.ClassHistory.Clone(),
		ProfessionHistory: c.ProfessionHistory.Clone(),
		RaceHistory:       c.RaceHistory.Clone(),
		SourceBreakdown:   make(map[Stat]map[Source]int, len(Stats())),
		CurrentStats:      c.Ledger.CurrentValues(),
		Modifiers:         make(map[Stat]int, len(Stats())),
		FreePoints:        c.FreePoints,
		Manual:            c.Manual,
		Status:            string(c.Status),
		Creation:          c.Creation,
		Blessing:          c.ActiveBlessing(),
		MaxHealth:         c.MaxHealth,
		CurrentHealth:     c.CurrentHealth,
	}
	for _, stat := range Stats() {
		d.SourceBreakdown[stat] = c.Ledger.SourceBreakdown(stat)
		d.Modifiers[stat] = c.Ledger.Modifier(stat)
	}
	if c.ManualBase != nil {
		d.ManualBase = copyStatMap(c.ManualBase)
	}
	if c.ManualCurrent != nil {
		d.ManualCurrent = copyStatMap(c.ManualCurrent)
	}
	return d
}

// FromData reconstructs a character from its persistence shape. The ledger
// is rebuilt from the stored source breakdown directly.
func FromData(d *Data) (*Character, error) {
	charType, err := ParseType(d.Type)
	if err != nil {
		return nil, err
	}

	c := New(d.ID, d.Name, charType)
	c.Class = d.Class
	c.ClassLevel = d.ClassLevel
	c.Profession = d.Profession
	c.ProfessionLevel = d.ProfessionLevel
	c.Race = d.Race
	c.raceLevel = d.RaceLevel
	c.raceRank = d.RaceRank

	if len(d.TierThresholds) > 0 {
		c.TierThresholds = append([]int(nil), d.TierThresholds...)
	}
	if d.ClassHistory != nil {
		c.ClassHistory = d.ClassHistory.Clone()
	}
	if d.ProfessionHistory != nil {
		c.ProfessionHistory = d.ProfessionHistory.Clone()
	}
	if d.RaceHistory != nil {
		c.RaceHistory = d.RaceHistory.Clone()
	}

	for stat, breakdown := range d.SourceBreakdown {
		if !IsValidStat(stat) {
			return nil, errors.InvalidArgumentf("invalid stat in stored breakdown: %s", stat)
		}
		for source, amt := range breakdown {
			if err := c.Ledger.SetContribution(stat, amt, source); err != nil {
				return nil, err
			}
		}
	}

	c.FreePoints = d.FreePoints
	c.Manual = d.Manual
	if d.ManualBase != nil {
		c.ManualBase = copyStatMap(d.ManualBase)
	}
	if d.ManualCurrent != nil {
		c.ManualCurrent = copyStatMap(d.ManualCurrent)
	}
	c.Status = ValidationStatus(d.Status)
	if c.Status == "" {
		c.Status = StatusUnvalidated
	}
	c.Creation = d.Creation
	if d.Blessing != nil {
		c.blessing = copyStatMap(d.Blessing)
	}
	c.MaxHealth = d.MaxHealth
	c.CurrentHealth = d.CurrentHealth
	return c, nil
}

func copyStatMap(in map[Stat]int) map[Stat]int {
	out := make(map[Stat]int, len(in))
	for stat, v := range in {
		out[stat] = v
	}
	return out
}

