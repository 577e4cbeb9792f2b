package keystroke

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModifierHas(t *testing.T) {
	tests := []struct {
		mod    Modifier
		check  Modifier
		expect bool
	}{
		{ModNone, ModControl, false},
		{ModControl, ModControl, true},
		{ModControl | ModAlt, ModControl, true},
		{ModControl | ModAlt, ModAlt, true},
		{ModControl | ModAlt, ModShift, false},
		{ModControl | ModAlt | ModShift | ModMeta, ModMeta, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expect, tt.mod.Has(tt.check), "Modifier(%d).Has(%d)", tt.mod, tt.check)
	}
}

func TestModifierWith(t *testing.T) {
	assert.True(t, ModNone.IsEmpty())

	mod := ModNone.With(ModControl).With(ModAlt)
	assert.True(t, mod.Has(ModControl))
	assert.True(t, mod.Has(ModAlt))
	assert.False(t, mod.Has(ModShift))
	assert.False(t, mod.IsEmpty())
	assert.Equal(t, mod, mod.With(ModAlt))
}

func TestModifierCanonicalOrder(t *testing.T) {
	tests := []struct {
		mod  Modifier
		want string
	}{
		{ModNone, ""},
		{ModAlt, "alt"},
		{ModAlt | ModMeta, "meta alt"},
		{ModShift | ModControl, "control shift"},
		{ModAlt | ModShift | ModControl | ModMeta, "meta control shift alt"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.mod.String())
	}
	assert.Empty(t, ModNone.Names())
}

func TestModifierFromName(t *testing.T) {
	assert.Equal(t, ModMeta, ModifierFromName("meta"))
	assert.Equal(t, ModMeta, ModifierFromName("META"))
	assert.Equal(t, ModControl, ModifierFromName("Control"))
	assert.Equal(t, ModShift, ModifierFromName("shift"))
	assert.Equal(t, ModAlt, ModifierFromName("alt"))
	// Aliases used by other keymap formats are not recognized here.
	assert.Equal(t, ModNone, ModifierFromName("ctrl"))
	assert.Equal(t, ModNone, ModifierFromName("cmd"))
	assert.Equal(t, ModNone, ModifierFromName(""))
}

func TestParseModifiers(t *testing.T) {
	mods, unknown := ParseModifiers([]string{"shift", "", "  ", "ctrl", "SHIFT", "alt", "ctrl"})
	assert.Equal(t, ModShift|ModAlt, mods)
	assert.Equal(t, []string{"ctrl"}, unknown)

	mods, unknown = ParseModifiers(nil)
	assert.Equal(t, ModNone, mods)
	assert.Empty(t, unknown)
}
