package remap

import (
	"github.com/joshuapare/keyremap/internal/rewrite"
	"github.com/joshuapare/keyremap/internal/rules"
)

// Options controls remap behavior.
type Options struct {
	// DryRun computes every rewrite but writes nothing, and does not create
	// the output directory.
	DryRun bool

	// ContinueOnError keeps processing a directory after a file fails.
	// Failures are collected in DirResult.Failed. Without it the first
	// failure aborts RemapDir.
	ContinueOnError bool

	// OnChange is called for every rewritten keystroke.
	OnChange func(file string, c Change)

	// OnProgress is called after each keymap file of a directory.
	OnProgress func(current, total int)
}

// Rule is a validated replacement (re-exported for convenience).
type Rule = rules.Rule

// RuleSpec is a replacement entry as written in a config file (re-exported for convenience).
type RuleSpec = rules.Spec

// Table maps source keys to rules (re-exported for convenience).
type Table = rules.Table

// Change describes one rewritten keystroke (re-exported for convenience).
type Change = rewrite.Change

// Stats summarizes the update of one keymap (re-exported for convenience).
type Stats = rewrite.Stats
