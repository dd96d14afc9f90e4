package catalog

import "strings"

// RaceBand is one race level range: gains applied per level inside it and
// the rank label it carries
type RaceBand struct {
	MinLevel int
	MaxLevel int
	Rank     string
	Gains    Gains
}

// Static is an in-memory Catalog backed by plain maps. The zero value is
// empty; use New and the Add methods, or Default for the built-in content.
type Static struct {
	classes     map[string]map[int]Gains
	professions map[string]map[int]Gains
	races       map[string][]RaceBand
}

// New creates an empty static catalog
func New() *Static {
	return &Static{
		classes:     make(map[string]map[int]Gains),
		professions: make(map[string]map[int]Gains),
		races:       make(map[string][]RaceBand),
	}
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// AddClass registers per-level gains for a class at a tier
func (s *Static) AddClass(name string, tier int, gains Gains) *Static {
	key := normalize(name)
	if s.classes[key] == nil {
		s.classes[key] = make(map[int]Gains)
	}
	s.classes[key][tier] = gains.Clone()
	return s
}

// AddProfession registers per-level gains for a profession at a tier
func (s *Static) AddProfession(name string, tier int, gains Gains) *Static {
	key := normalize(name)
	if s.professions[key] == nil {
		s.professions[key] = make(map[int]Gains)
	}
	s.professions[key][tier] = gains.Clone()
	return s
}

// AddRaceBand registers one level band for a race
func (s *Static) AddRaceBand(name string, band RaceBand) *Static {
	key := normalize(name)
	band.Gains = band.Gains.Clone()
	s.races[key] = append(s.races[key], band)
	return s
}

// ClassGains implements Catalog
func (s *Static) ClassGains(name string, tier int) (Gains, bool) {
	tiers, ok := s.classes[normalize(name)]
	if !ok {
		return Gains{}, false
	}
	gains, ok := tiers[tier]
	if !ok {
		return Gains{}, false
	}
	return gains.Clone(), true
}

// ProfessionGains implements Catalog
func (s *Static) ProfessionGains(name string, tier int) (Gains, bool) {
	tiers, ok := s.professions[normalize(name)]
	if !ok {
		return Gains{}, false
	}
	gains, ok := tiers[tier]
	if !ok {
		return Gains{}, false
	}
	return gains.Clone(), true
}

func (s *Static) raceBand(name string, level int) (RaceBand, bool) {
	for _, band := range s.races[normalize(name)] {
		if level >= band.MinLevel && level <= band.MaxLevel {
			return band, true
		}
	}
	return RaceBand{}, false
}

// RaceGains implements Catalog
func (s *Static) RaceGains(name string, level int) (Gains, bool) {
	band, ok := s.raceBand(name, level)
	if !ok {
		return Gains{}, false
	}
	return band.Gains.Clone(), true
}

// RaceRank implements Catalog
func (s *Static) RaceRank(name string, level int) (string, bool) {
	band, ok := s.raceBand(name, level)
	if !ok {
		return "", false
	}
	return band.Rank, true
}

// IsClassAvailable implements Catalog
func (s *Static) IsClassAvailable(name string, tier int) bool {
	tiers, ok := s.classes[normalize(name)]
	if !ok {
		return false
	}
	_, ok = tiers[tier]
	return ok
}

// IsProfessionAvailable implements Catalog
func (s *Static) IsProfessionAvailable(name string, tier int) bool {
	tiers, ok := s.professions[normalize(name)]
	if !ok {
		return false
	}
	_, ok = tiers[tier]
	return ok
}

// HasRace implements Catalog
func (s *Static) HasRace(name string) bool {
	return len(s.races[normalize(name)]) > 0
}

// ClassNames returns the registered class names
func (s *Static) ClassNames() []string {
	return mapKeys(s.classes)
}

// ProfessionNames returns the registered profession names
func (s *Static) ProfessionNames() []string {
	return mapKeys(s.professions)
}

// RaceNames returns the registered race names
func (s *Static) RaceNames() []string {
	out := make([]string, 0, len(s.races))
	for name := range s.races {
		out = append(out, name)
	}
	return out
}

func mapKeys(m map[string]map[int]Gains) []string {
	out := make([]string, 0, len(m))
	for name := range m {
		out = append(out, name)
	}
	return out
}

var _ Catalog = (*Static)(nil)
