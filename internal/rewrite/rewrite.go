// Package rewrite applies replacement rules to keystroke strings and keymaps.
package rewrite

import (
	"github.com/joshuapare/keyremap/internal/keystroke"
	"github.com/joshuapare/keyremap/internal/logger"
	"github.com/joshuapare/keyremap/internal/rules"
)

// Rewrite replaces the key of shortcut with rule.Replacement and merges in
// rule.AddModifiers. The result lists meta, control, shift and alt in that
// order, each at most once; any other modifier is dropped.
//
// Rewrite does not check that the shortcut's key equals rule.Key.
func Rewrite(shortcut string, rule rules.Rule) (string, error) {
	s, err := keystroke.Parse(shortcut)
	if err != nil {
		return "", err
	}

	added, unknown := keystroke.ParseModifiers(rule.AddModifiers)
	if dropped := append(s.Extra, unknown...); len(dropped) > 0 {
		logger.Debug("dropping unknown modifiers", "shortcut", shortcut, "modifiers", dropped)
	}
	s.Mods = s.Mods.With(added)
	return s.WithKey(rule.Replacement).String(), nil
}
