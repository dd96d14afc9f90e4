package engine

import (
	"strings"

	"github.com/aldenmoor/levelforge/internal/errors"
)

// Kind is a progression track selector
type Kind string

// Progression kinds
const (
	KindClass      Kind = "class"
	KindProfession Kind = "profession"
	KindRace       Kind = "race"
)

// ParseKind converts free-form input to a Kind, case-insensitively
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindClass:
		return KindClass, nil
	case KindProfession:
		return KindProfession, nil
	case KindRace:
		return KindRace, nil
	}
	return "", errors.InvalidArgumentf("invalid level type %q: must be class, profession, or race", s)
}
