package keystroke

import (
	"fmt"
	"strings"

	"github.com/joshuapare/keyremap/pkg/types"
)

// Stroke is one parsed keystroke: a modifier set and the key it applies to.
type Stroke struct {
	Mods Modifier
	// Extra holds modifier tokens outside the recognized set. They are
	// never formatted.
	Extra []string
	Key   string
}

// Parse splits a keystroke string on whitespace. The last token is the key,
// everything before it is a modifier.
func Parse(s string) (Stroke, error) {
	tokens := strings.Fields(s)
	if len(tokens) == 0 {
		return Stroke{}, fmt.Errorf("%w: %q has no key token", types.ErrMalformedShortcut, s)
	}

	mods, extra := ParseModifiers(tokens[:len(tokens)-1])
	return Stroke{
		Mods:  mods,
		Extra: extra,
		Key:   tokens[len(tokens)-1],
	}, nil
}

// KeyOf returns the key token of a keystroke string.
func KeyOf(s string) (string, error) {
	tokens := strings.Fields(s)
	if len(tokens) == 0 {
		return "", fmt.Errorf("%w: %q has no key token", types.ErrMalformedShortcut, s)
	}
	return tokens[len(tokens)-1], nil
}

// WithKey returns a copy of s bound to key.
func (s Stroke) WithKey(key string) Stroke {
	s.Key = key
	return s
}

// String formats the stroke in canonical form.
func (s Stroke) String() string {
	if s.Mods.IsEmpty() {
		return s.Key
	}
	return s.Mods.String() + " " + s.Key
}
