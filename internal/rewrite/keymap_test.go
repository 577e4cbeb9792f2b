package rewrite

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/keyremap/internal/keymap"
	"github.com/joshuapare/keyremap/internal/rules"
	"github.com/joshuapare/keyremap/pkg/types"
)

const keymapDoc = `<keymap version="1" name="custom">
  <action id="EditorIncreaseFontSize">
    <keyboard-shortcut first-keystroke="meta control EQUALS"/>
    <mouse-shortcut keystroke="meta EQUALS"/>
  </action>
  <action id="GotoLine">
    <keyboard-shortcut first-keystroke="meta L" second-keystroke="shift MINUS"/>
  </action>
  <action id="Both">
    <keyboard-shortcut first-keystroke="alt EQUALS" second-keystroke="MINUS"/>
  </action>
  <action id="Untouched">
    <keyboard-shortcut first-keystroke="meta P"/>
  </action>
  <action id="SameValue">
    <keyboard-shortcut first-keystroke="control Q"/>
  </action>
</keymap>`

func sampleTable(t *testing.T) *rules.Table {
	t.Helper()
	table, err := rules.Build([]rules.Spec{
		{Key: "EQUALS", Replacement: "SEMICOLON", AddModifiers: "shift"},
		{Key: "MINUS", Replacement: "1"},
		{Key: "Q", Replacement: "Q"},
	})
	require.NoError(t, err)
	return table
}

func readDoc(t *testing.T, src string) *keymap.Document {
	t.Helper()
	doc, err := keymap.Read(strings.NewReader(src))
	require.NoError(t, err)
	return doc
}

func firstOf(t *testing.T, doc *keymap.Document, action int) (string, string, bool) {
	t.Helper()
	sc := doc.Actions()[action].Shortcuts()[0]
	first, _ := sc.First()
	second, ok := sc.Second()
	return first, second, ok
}

func TestKeymapUpdate(t *testing.T) {
	doc := readDoc(t, keymapDoc)

	var changes []Change
	stats, err := Keymap(doc, sampleTable(t), func(c Change) { changes = append(changes, c) })
	require.NoError(t, err)

	assert.Equal(t, 5, stats.Shortcuts)
	// SameValue matched but rewrote to the same string; it still counts.
	assert.Equal(t, 4, stats.Updated)
	assert.Equal(t, 5, stats.Keystrokes)

	first, _, _ := firstOf(t, doc, 0)
	assert.Equal(t, "meta control shift SEMICOLON", first)

	first, second, ok := firstOf(t, doc, 1)
	assert.Equal(t, "meta L", first)
	require.True(t, ok)
	assert.Equal(t, "shift 1", second)

	// Each keystroke uses its own rule.
	first, second, _ = firstOf(t, doc, 2)
	assert.Equal(t, "shift alt SEMICOLON", first)
	assert.Equal(t, "1", second)

	first, _, _ = firstOf(t, doc, 3)
	assert.Equal(t, "meta P", first)

	require.Len(t, changes, 5)
	assert.Equal(t, Change{
		Action:    "EditorIncreaseFontSize",
		Attribute: keymap.FirstKeystrokeAttr,
		Old:       "meta control EQUALS",
		New:       "meta control shift SEMICOLON",
	}, changes[0])
	assert.Equal(t, keymap.SecondKeystrokeAttr, changes[1].Attribute)

	out, err := doc.Bytes()
	require.NoError(t, err)
	assert.Contains(t, string(out), `<mouse-shortcut keystroke="meta EQUALS"/>`)
}

func TestKeymapNoMatches(t *testing.T) {
	doc := readDoc(t, keymapDoc)
	empty, err := rules.Build(nil)
	require.NoError(t, err)

	stats, err := Keymap(doc, empty, nil)
	require.NoError(t, err)
	assert.Equal(t, Stats{Shortcuts: 5}, stats)
}

func TestKeymapMalformedShortcuts(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing first keystroke", `<keyboard-shortcut second-keystroke="MINUS"/>`},
		{"empty first keystroke", `<keyboard-shortcut first-keystroke=""/>`},
		{"blank second keystroke", `<keyboard-shortcut first-keystroke="meta P" second-keystroke=" "/>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := readDoc(t, `<keymap><action id="Broken">`+tt.body+`</action></keymap>`)
			_, err := Keymap(doc, sampleTable(t), nil)
			require.ErrorIs(t, err, types.ErrMalformedShortcut)
			assert.Contains(t, err.Error(), `"Broken"`)
		})
	}
}
