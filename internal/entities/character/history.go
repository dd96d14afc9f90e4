package character

import (
	"github.com/aldenmoor/levelforge/internal/errors"
)

// Entry is one interval in a progression track. A nil To marks the
// currently active entry, which is always the last one.
type Entry struct {
	Value string `json:"value"`
	From  int    `json:"from_level"`
	To    *int   `json:"to_level"`
}

// Track is an append-only list of non-overlapping, contiguous intervals
// recording which class, profession, or race was active over which levels.
type Track struct {
	Entries []Entry `json:"entries"`
}

// NewTrack creates an empty track
func NewTrack() *Track {
	return &Track{}
}

// NewTrackWith creates a track with one open entry starting at fromLevel
func NewTrackWith(value string, fromLevel int) *Track {
	t := NewTrack()
	t.Entries = append(t.Entries, Entry{Value: value, From: fromLevel})
	return t
}

// ActiveAt returns the value active at the given level, or "" when no
// interval contains it. A gap is a data-integrity problem in the caller's
// history, not an error here.
func (t *Track) ActiveAt(level int) string {
	for _, e := range t.Entries {
		if level < e.From {
			continue
		}
		if e.To == nil || level <= *e.To {
			return e.Value
		}
	}
	return ""
}

// Current returns the open entry's value, or "" for an empty track
func (t *Track) Current() string {
	if len(t.Entries) == 0 {
		return ""
	}
	return t.Entries[len(t.Entries)-1].Value
}

// RecordChange closes the open entry at atLevel-1 and appends a new open
// entry starting at atLevel. A change dated before the open entry's start
// would rewrite history ambiguously and is rejected.
func (t *Track) RecordChange(newValue string, atLevel int) error {
	if atLevel < 1 {
		return errors.InvalidArgumentf("change level must be positive, got %d", atLevel)
	}
	if len(t.Entries) == 0 {
		t.Entries = append(t.Entries, Entry{Value: newValue, From: atLevel})
		return nil
	}

	open := &t.Entries[len(t.Entries)-1]
	if atLevel < open.From {
		return errors.FailedPreconditionf(
			"cannot record change at level %d before current entry start %d", atLevel, open.From)
	}
	if atLevel == open.From {
		// Same-level change replaces the open entry rather than leaving
		// a zero-width interval behind.
		open.Value = newValue
		return nil
	}

	end := atLevel - 1
	open.To = &end
	t.Entries = append(t.Entries, Entry{Value: newValue, From: atLevel})
	return nil
}

// Changes returns the distinct values in activation order
func (t *Track) Changes() []string {
	out := make([]string, 0, len(t.Entries))
	for _, e := range t.Entries {
		out = append(out, e.Value)
	}
	return out
}

// Clone returns a deep copy of the track
func (t *Track) Clone() *Track {
	out := NewTrack()
	out.Entries = make([]Entry, len(t.Entries))
	for i, e := range t.Entries {
		out.Entries[i] = Entry{Value: e.Value, From: e.From}
		if e.To != nil {
			end := *e.To
			out.Entries[i].To = &end
		}
	}
	return out
}
