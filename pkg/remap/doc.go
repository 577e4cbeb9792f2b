/*
Package remap rewrites keyboard shortcuts in XML keymap files.

# Quick Start

Rewrite one keymap with a JSON replacement table:

	table, err := remap.LoadRules("replacements.json")
	if err != nil {
	    log.Fatal(err)
	}
	res, err := remap.RemapFile("Custom.xml", "Custom.out.xml", table, nil)
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Println(res.Updated, "shortcuts were updated")

# Replacement Tables

A replacement table maps a source key to a new key plus modifiers to add:

	[
	  {"key": "EQUALS", "replacement": "SEMICOLON", "add_modifiers": "shift"},
	  {"key": "MINUS", "replacement": "1"}
	]

With that table "meta control EQUALS" becomes "meta control shift SEMICOLON".
Modifiers are always written in the order meta, control, shift, alt; other
modifier names are dropped. YAML (.yaml, .yml) and TOML (.toml, [[rule]]
tables) files with the same fields are accepted too.

# Directories

RemapDir processes every *.xml file of a directory and writes each result
under the same name in the output directory, creating it if needed:

	opts := &remap.Options{
	    ContinueOnError: true,
	    OnProgress: func(current, total int) {
	        fmt.Printf("Progress: %d/%d\n", current, total)
	    },
	}
	res, err := remap.RemapDir("keymaps", "out", table, opts)

# Error Handling

Errors wrap the sentinels in pkg/types:

	if errors.Is(err, types.ErrNotDirectory) {
	    // --output names a file
	}
*/
package remap
