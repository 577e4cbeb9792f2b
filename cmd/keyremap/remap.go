package main

import (
	"fmt"
	"path/filepath"

	"github.com/joshuapare/keyremap/pkg/remap"
)

var (
	remapKeymap          string
	remapDirectory       string
	remapReplacements    string
	remapOutput          string
	remapDryRun          bool
	remapContinueOnError bool
)

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&remapKeymap, "keymap", "k", "", "Path to keymap to process")
	flags.StringVarP(&remapDirectory, "directory", "d", "", "Process every *.xml keymap in this directory")
	flags.StringVarP(&remapReplacements, "replacements", "r", "", "Path to replacements config (.json, .yaml, .toml)")
	flags.StringVarP(&remapOutput, "output", "o", "", "Output file (with --keymap) or directory (with --directory)")
	flags.BoolVar(&remapDryRun, "dry-run", false, "Report changes without writing output")
	flags.BoolVar(&remapContinueOnError, "continue-on-error", false, "Keep processing a directory after a keymap fails")

	rootCmd.MarkFlagsMutuallyExclusive("keymap", "directory")
	rootCmd.MarkFlagsOneRequired("keymap", "directory")
	_ = rootCmd.MarkFlagRequired("replacements")
	_ = rootCmd.MarkFlagRequired("output")
}

func runRemap() error {
	table, err := remap.LoadRules(remapReplacements)
	if err != nil {
		return fmt.Errorf("failed to load replacements: %w", err)
	}
	printVerbose("Loaded %d replacement rule%s from %s\n", table.Len(), plural(table.Len()), remapReplacements)

	opts := &remap.Options{
		DryRun:          remapDryRun,
		ContinueOnError: remapContinueOnError,
	}
	if !jsonOut {
		opts.OnChange = func(file string, c remap.Change) {
			printVerbose("  %s %s [%s]: %q -> %q\n",
				styled(dimStyle, filepath.Base(file)), c.Action, c.Attribute, c.Old, c.New)
		}
	}

	if remapKeymap != "" {
		return runRemapFile(table, opts)
	}
	return runRemapDir(table, opts)
}

func runRemapFile(table *remap.Table, opts *remap.Options) error {
	printVerbose("Processing keymap: %s\n", remapKeymap)

	res, err := remap.RemapFile(remapKeymap, remapOutput, table, opts)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(res)
	}

	printInfo("%s %d shortcut%s updated in %s\n",
		styled(okStyle, "✓"), res.Updated, plural(res.Updated), remapKeymap)
	if res.Written {
		printInfo("Wrote %s\n", res.Output)
	} else {
		printInfo("Dry run: %s not written\n", res.Output)
	}
	return nil
}

func runRemapDir(table *remap.Table, opts *remap.Options) error {
	printVerbose("Processing directory: %s\n", remapDirectory)

	opts.OnProgress = func(current, total int) {
		printVerbose("  [%d/%d]\n", current, total)
	}

	res, err := remap.RemapDir(remapDirectory, remapOutput, table, opts)
	if err != nil {
		return err
	}

	if jsonOut {
		out := struct {
			*remap.DirResult
			Updated int  `json:"updated"`
			DryRun  bool `json:"dry_run"`
		}{res, res.Updated(), remapDryRun}
		if err := printJSON(out); err != nil {
			return err
		}
	} else {
		printInfo("\nProcessed %s:\n", remapDirectory)
		for _, f := range res.Files {
			printInfo("  %s %s: %d shortcut%s updated\n",
				styled(okStyle, "✓"), filepath.Base(f.Input), f.Updated, plural(f.Updated))
		}
		for _, f := range res.Failed {
			printInfo("  %s %s: %v\n", styled(failStyle, "✗"), filepath.Base(f.Path), f.Err)
		}
		for _, name := range res.Skipped {
			printVerbose("  - %s skipped\n", name)
		}

		printInfo("\n%d keymap%s, %d shortcut%s updated\n",
			len(res.Files), plural(len(res.Files)), res.Updated(), plural(res.Updated()))
		if remapDryRun {
			printInfo("Dry run: nothing written to %s\n", remapOutput)
		} else {
			printInfo("Output: %s\n", remapOutput)
		}
	}

	if len(res.Failed) > 0 {
		return fmt.Errorf("%d keymap%s failed", len(res.Failed), plural(len(res.Failed)))
	}
	return nil
}
