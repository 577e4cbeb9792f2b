// Package rules builds the replacement table that drives keymap rewriting.
//
// A table maps a source key token ("EQUALS") to a Rule naming the key that
// replaces it and the modifiers to merge into the keystroke. Tables are built
// once from a list of Specs, usually read from a config file, and are never
// modified afterwards.
package rules

import (
	"fmt"
	"slices"
	"strings"

	"github.com/joshuapare/keyremap/internal/logger"
	"github.com/joshuapare/keyremap/pkg/types"
)

// Spec is one replacement entry as written in a config file.
type Spec struct {
	Key          string `json:"key"                     yaml:"key"           toml:"key"`
	Replacement  string `json:"replacement"             yaml:"replacement"   toml:"replacement"`
	AddModifiers string `json:"add_modifiers,omitempty" yaml:"add_modifiers" toml:"add_modifiers"`
}

// Rule is a validated replacement.
type Rule struct {
	Key         string
	Replacement string
	// AddModifiers are lower-case modifier tokens. Never contains blanks.
	AddModifiers []string
}

// NewRule validates a spec and normalizes its modifiers.
func NewRule(s Spec) (Rule, error) {
	if strings.TrimSpace(s.Key) == "" {
		return Rule{}, fmt.Errorf("%w: missing key", types.ErrInvalidConfig)
	}
	if s.Replacement == "" {
		return Rule{}, fmt.Errorf("%w: key %q: missing replacement", types.ErrInvalidConfig, s.Key)
	}
	if len(strings.Fields(s.Replacement)) != 1 || strings.TrimSpace(s.Replacement) != s.Replacement {
		return Rule{}, fmt.Errorf("%w: key %q: replacement %q must be a single token",
			types.ErrInvalidConfig, s.Key, s.Replacement)
	}

	return Rule{
		Key:          s.Key,
		Replacement:  s.Replacement,
		AddModifiers: strings.Fields(strings.ToLower(s.AddModifiers)),
	}, nil
}

// Table is an immutable key -> Rule mapping.
type Table struct {
	rules map[string]Rule
}

// Build validates specs and indexes them by key. When a key repeats, the
// later spec wins.
func Build(specs []Spec) (*Table, error) {
	t := &Table{rules: make(map[string]Rule, len(specs))}
	for i, s := range specs {
		r, err := NewRule(s)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		if prev, ok := t.rules[r.Key]; ok {
			logger.Debug("replacement key overridden",
				"key", r.Key, "previous", prev.Replacement, "replacement", r.Replacement)
		}
		t.rules[r.Key] = r
	}
	return t, nil
}

// Lookup returns the rule for key, if any.
func (t *Table) Lookup(key string) (Rule, bool) {
	if t == nil {
		return Rule{}, false
	}
	r, ok := t.rules[key]
	return r, ok
}

// Contains reports whether the table holds a rule for key.
func (t *Table) Contains(key string) bool {
	_, ok := t.Lookup(key)
	return ok
}

// Get returns the rule for key or an error wrapping types.ErrKeyNotFound.
func (t *Table) Get(key string) (Rule, error) {
	r, ok := t.Lookup(key)
	if !ok {
		return Rule{}, fmt.Errorf("%w: %q", types.ErrKeyNotFound, key)
	}
	return r, nil
}

// Len returns the number of rules.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rules)
}

// Keys returns the source keys in sorted order.
func (t *Table) Keys() []string {
	if t == nil {
		return nil
	}
	keys := make([]string, 0, len(t.rules))
	for k := range t.rules {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Rules returns a copy of every rule, sorted by key.
func (t *Table) Rules() []Rule {
	keys := t.Keys()
	out := make([]Rule, 0, len(keys))
	for _, k := range keys {
		r := t.rules[k]
		r.AddModifiers = slices.Clone(r.AddModifiers)
		out = append(out, r)
	}
	return out
}
