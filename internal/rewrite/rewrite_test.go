package rewrite

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/keyremap/internal/logger"
	"github.com/joshuapare/keyremap/internal/rules"
	"github.com/joshuapare/keyremap/pkg/types"
)

func mustRule(t *testing.T, key, replacement, mods string) rules.Rule {
	t.Helper()
	r, err := rules.NewRule(rules.Spec{Key: key, Replacement: replacement, AddModifiers: mods})
	require.NoError(t, err)
	return r
}

func TestRewrite(t *testing.T) {
	tests := []struct {
		name     string
		shortcut string
		rule     rules.Rule
		want     string
	}{
		{
			name:     "adds shift",
			shortcut: "meta control EQUALS",
			rule:     mustRule(t, "EQUALS", "SEMICOLON", "shift"),
			want:     "meta control shift SEMICOLON",
		},
		{
			name:     "empty add_modifiers",
			shortcut: "meta control EQUALS",
			rule:     mustRule(t, "EQUALS", "1", ""),
			want:     "meta control 1",
		},
		{
			name:     "reorders to canonical",
			shortcut: "alt shift control X",
			rule:     mustRule(t, "X", "Y", "meta"),
			want:     "meta control shift alt Y",
		},
		{
			name:     "drops unknown modifier",
			shortcut: "unknownmod META X",
			rule:     mustRule(t, "X", "Z", ""),
			want:     "meta Z",
		},
		{
			name:     "no modifiers",
			shortcut: "F1",
			rule:     mustRule(t, "F1", "F2", ""),
			want:     "F2",
		},
		{
			name:     "added modifier already present",
			shortcut: "shift MINUS",
			rule:     mustRule(t, "MINUS", "1", "SHIFT"),
			want:     "shift 1",
		},
		{
			name:     "unknown added modifier dropped",
			shortcut: "control A",
			rule:     mustRule(t, "A", "B", "hyper alt"),
			want:     "control alt B",
		},
		{
			name:     "rule built without the constructor",
			shortcut: "control A",
			rule:     rules.Rule{Key: "A", Replacement: "B", AddModifiers: []string{"", " ", "shift"}},
			want:     "control shift B",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Rewrite(tt.shortcut, tt.rule)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRewriteMalformed(t *testing.T) {
	rule := mustRule(t, "X", "Y", "")
	for _, in := range []string{"", "  \t "} {
		_, err := Rewrite(in, rule)
		require.ErrorIs(t, err, types.ErrMalformedShortcut)
	}
}

// permutations returns every ordering of tokens.
func permutations(tokens []string) [][]string {
	if len(tokens) <= 1 {
		return [][]string{append([]string(nil), tokens...)}
	}
	var out [][]string
	for i := range tokens {
		rest := make([]string, 0, len(tokens)-1)
		rest = append(rest, tokens[:i]...)
		rest = append(rest, tokens[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, append([]string{tokens[i]}, p...))
		}
	}
	return out
}

func TestRewriteProperties(t *testing.T) {
	order := map[string]int{"meta": 0, "control": 1, "shift": 2, "alt": 3}
	inputs := permutations([]string{"alt", "shift", "control", "meta", "shift", "other"})
	addSets := []string{"", "meta", "alt shift", "control control", "bogus"}

	for _, mods := range inputs {
		for _, add := range addSets {
			shortcut := strings.Join(append(mods, "K"), " ")
			got, err := Rewrite(shortcut, mustRule(t, "K", "NEW", add))
			require.NoError(t, err)

			tokens := strings.Fields(got)
			require.NotEmpty(t, tokens)
			assert.Equal(t, "NEW", tokens[len(tokens)-1], "replacement must be last: %q", got)

			seen := map[string]bool{}
			last := -1
			for _, tok := range tokens[:len(tokens)-1] {
				pos, ok := order[tok]
				require.True(t, ok, "unexpected token %q in %q", tok, got)
				assert.False(t, seen[tok], "duplicate %q in %q", tok, got)
				assert.Greater(t, pos, last, "out of order %q", got)
				seen[tok] = true
				last = pos
			}
		}
	}
}

func TestRewriteTwiceWithDisjointRules(t *testing.T) {
	rule := mustRule(t, "EQUALS", "SEMICOLON", "shift")
	once, err := Rewrite("control meta EQUALS", rule)
	require.NoError(t, err)

	// The new key is not a rule source, so the keymap pass would not match
	// it again; rewriting with the same rule is still stable.
	twice, err := Rewrite(once, rule)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestRewriteLogsDroppedModifiers(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, logger.Init(logger.Options{Enabled: true, Writer: &buf, Level: slog.LevelDebug}))
	t.Cleanup(func() { _ = logger.Init(logger.Options{}) })

	got, err := Rewrite("unknownmod META X", mustRule(t, "X", "Z", "hyper"))
	require.NoError(t, err)
	assert.Equal(t, "meta Z", got)

	out := buf.String()
	assert.Contains(t, out, "dropping unknown modifiers")
	assert.Contains(t, out, "unknownmod")
	assert.Contains(t, out, "hyper")
}
