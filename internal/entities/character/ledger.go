package character

import (
	"github.com/aldenmoor/levelforge/internal/errors"
)

// Ledger tracks, per stat, where every point came from. Current values and
// modifiers are cached and recomputed on every mutation.
type Ledger struct {
	sources   map[Stat]map[Source]int
	current   map[Stat]int
	modifiers map[Stat]int
}

// NewLedger creates a ledger with every stat at the given base value
func NewLedger(base int) *Ledger {
	l := &Ledger{
		sources:   make(map[Stat]map[Source]int, len(Stats())),
		current:   make(map[Stat]int, len(Stats())),
		modifiers: make(map[Stat]int, len(Stats())),
	}
	for _, stat := range Stats() {
		l.sources[stat] = map[Source]int{SourceBase: base}
	}
	l.recompute()
	return l
}

// NewLedgerFromBase creates a ledger seeded with per-stat base values.
// Stats missing from the map start at zero.
func NewLedgerFromBase(base map[Stat]int) *Ledger {
	l := NewLedger(0)
	for _, stat := range Stats() {
		if v, ok := base[stat]; ok {
			l.sources[stat][SourceBase] = v
		}
	}
	l.recompute()
	return l
}

// SetBase replaces the base contribution for a stat
func (l *Ledger) SetBase(stat Stat, value int) error {
	if !IsValidStat(stat) {
		return errors.InvalidArgumentf("invalid stat: %s", stat)
	}
	l.sources[stat][SourceBase] = value
	l.recompute()
	return nil
}

// AddContribution adds amount (possibly negative) to a source bucket
func (l *Ledger) AddContribution(stat Stat, amount int, source Source) error {
	if !IsValidStat(stat) {
		return errors.InvalidArgumentf("invalid stat: %s", stat)
	}
	l.sources[stat][source] += amount
	l.recompute()
	return nil
}

// SetContribution replaces a source bucket outright
func (l *Ledger) SetContribution(stat Stat, amount int, source Source) error {
	if !IsValidStat(stat) {
		return errors.InvalidArgumentf("invalid stat: %s", stat)
	}
	l.sources[stat][source] = amount
	l.recompute()
	return nil
}

// ResetSource zeroes one source bucket across all nine stats
func (l *Ledger) ResetSource(source Source) {
	for _, stat := range Stats() {
		delete(l.sources[stat], source)
	}
	l.recompute()
}

// SourceBreakdown returns a copy of the source map for a stat
func (l *Ledger) SourceBreakdown(stat Stat) map[Source]int {
	out := make(map[Source]int, len(l.sources[stat]))
	for src, amt := range l.sources[stat] {
		out[src] = amt
	}
	return out
}

// SourceAmount returns the accumulated amount for one stat and source
func (l *Ledger) SourceAmount(stat Stat, source Source) int {
	return l.sources[stat][source]
}

// Current returns the current value of a stat (sum over sources)
func (l *Ledger) Current(stat Stat) int {
	return l.current[stat]
}

// Modifier returns the cached modifier for a stat
func (l *Ledger) Modifier(stat Stat) int {
	return l.modifiers[stat]
}

// CurrentValues returns a snapshot of all nine current values
func (l *Ledger) CurrentValues() map[Stat]int {
	out := make(map[Stat]int, len(l.current))
	for stat, v := range l.current {
		out[stat] = v
	}
	return out
}

// BaseValues returns a snapshot of all nine base contributions
func (l *Ledger) BaseValues() map[Stat]int {
	out := make(map[Stat]int, len(Stats()))
	for _, stat := range Stats() {
		out[stat] = l.sources[stat][SourceBase]
	}
	return out
}

func (l *Ledger) recompute() {
	for _, stat := range Stats() {
		total := 0
		for _, amt := range l.sources[stat] {
			total += amt
		}
		l.current[stat] = total
		l.modifiers[stat] = ModifierFor(total)
	}
}
