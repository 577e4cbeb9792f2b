package keystroke

import (
	"slices"
	"strings"
)

// Modifier is a set of keymap modifier keys.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModMeta is the "meta" modifier (Cmd on macOS).
	ModMeta Modifier = 1 << (iota - 1)

	// ModControl is the "control" modifier.
	ModControl

	// ModShift is the "shift" modifier.
	ModShift

	// ModAlt is the "alt" modifier (Option on macOS).
	ModAlt
)

// canonical lists modifiers in output order.
var canonical = [...]struct {
	mod  Modifier
	name string
}{
	{ModMeta, "meta"},
	{ModControl, "control"},
	{ModShift, "shift"},
	{ModAlt, "alt"},
}

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// Names returns the modifier names in canonical order.
func (m Modifier) Names() []string {
	names := make([]string, 0, len(canonical))
	for _, c := range canonical {
		if m.Has(c.mod) {
			names = append(names, c.name)
		}
	}
	return names
}

// String returns the space-separated canonical names, e.g. "meta shift".
func (m Modifier) String() string {
	return strings.Join(m.Names(), " ")
}

// ModifierFromName returns the Modifier for a name, ignoring case.
// Returns ModNone if the name is not one of the four recognized modifiers.
func ModifierFromName(name string) Modifier {
	switch strings.ToLower(name) {
	case "meta":
		return ModMeta
	case "control":
		return ModControl
	case "shift":
		return ModShift
	case "alt":
		return ModAlt
	}
	return ModNone
}

// ParseModifiers folds tokens into a Modifier. Blank tokens are skipped;
// unrecognized tokens are returned in order of first appearance.
func ParseModifiers(tokens []string) (Modifier, []string) {
	var (
		mods    Modifier
		unknown []string
	)
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if mod := ModifierFromName(tok); mod != ModNone {
			mods = mods.With(mod)
			continue
		}
		if !slices.Contains(unknown, tok) {
			unknown = append(unknown, tok)
		}
	}
	return mods, unknown
}
