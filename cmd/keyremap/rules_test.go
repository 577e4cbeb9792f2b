package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/keyremap/internal/testutil"
)

func TestRulesCommand(t *testing.T) {
	tests := []struct {
		name           string
		file           string
		wantJSON       bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name:        "json rules as text",
			file:        testutil.RulesJSON,
			wantContain: []string{"EQUALS -> SEMICOLON (+shift)", "MINUS -> 1\n", "2 rules"},
		},
		{
			name:        "toml rules as text",
			file:        testutil.RulesTOML,
			wantContain: []string{"EQUALS -> SEMICOLON (+shift)", "MINUS -> 1\n"},
		},
		{
			name:           "yaml rules as JSON",
			file:           testutil.RulesYAML,
			wantJSON:       true,
			wantContain:    []string{`"key": "EQUALS"`, `"replacement": "SEMICOLON"`, `"shift"`},
			wantNotContain: []string{"2 rules"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := []string{"rules", "--no-color", testutil.Path(t, tt.file)}
			if tt.wantJSON {
				args = append(args, "--json")
			}

			output, err := runCLI(t, args...)
			require.NoError(t, err)
			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
			if tt.wantJSON {
				assertJSON(t, output)
			}
		})
	}
}

func TestRulesCommandErrors(t *testing.T) {
	_, err := runCLI(t, "rules")
	require.Error(t, err)

	bad := testutil.WriteFile(t, t.TempDir(), "bad.yaml", "- key: EQUALS\n  replacement: two words\n")
	_, err = runCLI(t, "rules", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "single token")
}

func TestVersionCommand(t *testing.T) {
	output, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Contains(t, output, "keyremap dev")
}
