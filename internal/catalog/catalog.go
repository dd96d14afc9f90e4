// Package catalog provides the progression content lookup: per-level stat
// gains for classes and professions by tier, and for races by level range.
// Content is injected into the engine so tests can swap it out.
package catalog

//go:generate mockgen -destination=mock/mock_catalog.go -package=catalogmock github.com/aldenmoor/levelforge/internal/catalog Catalog

import (
	"github.com/aldenmoor/levelforge/internal/entities/character"
)

// Gains is what one level grants: per-stat points plus free points.
// FreePoints is progression currency, not a stat.
type Gains struct {
	Stats      map[character.Stat]int
	FreePoints int
}

// Clone returns a deep copy of the gains
func (g Gains) Clone() Gains {
	out := Gains{FreePoints: g.FreePoints}
	if g.Stats != nil {
		out.Stats = make(map[character.Stat]int, len(g.Stats))
		for stat, amt := range g.Stats {
			out.Stats[stat] = amt
		}
	}
	return out
}

// IsZero reports whether the gains grant nothing
func (g Gains) IsZero() bool {
	if g.FreePoints != 0 {
		return false
	}
	for _, amt := range g.Stats {
		if amt != 0 {
			return false
		}
	}
	return true
}

// Catalog is the read-only progression content interface. Lookups never
// fail hard: a missing entry returns ok=false and callers treat it as
// zero gains with a warning. Names are matched case-insensitively.
type Catalog interface {
	// ClassGains returns the per-level gains for a class at a tier
	ClassGains(name string, tier int) (Gains, bool)

	// ProfessionGains returns the per-level gains for a profession at a tier
	ProfessionGains(name string, tier int) (Gains, bool)

	// RaceGains returns the per-level gains for a race at a race level
	RaceGains(name string, level int) (Gains, bool)

	// RaceRank returns the rank label for a race at a race level
	RaceRank(name string, level int) (string, bool)

	// IsClassAvailable reports whether a class can be taken at a tier
	IsClassAvailable(name string, tier int) bool

	// IsProfessionAvailable reports whether a profession can be taken at a tier
	IsProfessionAvailable(name string, tier int) bool

	// HasRace reports whether the race is known at all
	HasRace(name string) bool
}
