package testutil

// Fixture paths relative to the repository root.
// These constants should be used instead of hardcoding paths in test files.
const (
	// KeymapDir holds a.xml (one EQUALS shortcut), b.xml (no matches) and notes.txt.
	KeymapDir = "testdata/keymaps"

	// RulesJSON maps EQUALS -> shift SEMICOLON and MINUS -> 1.
	RulesJSON = "testdata/replacements.json"

	// RulesYAML and RulesTOML hold the same rules as RulesJSON.
	RulesYAML = "testdata/replacements.yaml"
	RulesTOML = "testdata/replacements.toml"
)
