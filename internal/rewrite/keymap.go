package rewrite

import (
	"fmt"

	"github.com/joshuapare/keyremap/internal/keymap"
	"github.com/joshuapare/keyremap/internal/keystroke"
	"github.com/joshuapare/keyremap/internal/logger"
	"github.com/joshuapare/keyremap/internal/rules"
	"github.com/joshuapare/keyremap/pkg/types"
)

// Change describes one rewritten keystroke attribute.
type Change struct {
	Action    string `json:"action"`
	Attribute string `json:"attribute"`
	Old       string `json:"old"`
	New       string `json:"new"`
}

// Stats summarizes a keymap update.
type Stats struct {
	// Shortcuts is the number of keyboard-shortcut elements visited.
	Shortcuts int `json:"shortcuts"`
	// Updated counts shortcuts with at least one matching keystroke, even
	// when the rewrite left the value unchanged.
	Updated int `json:"updated"`
	// Keystrokes counts rewritten keystroke attributes.
	Keystrokes int `json:"keystrokes"`
}

// Keymap rewrites every keyboard shortcut in doc whose first or second
// keystroke names a key in table. Each keystroke is matched against its own
// rule. onChange, if non-nil, is called for every rewritten keystroke.
//
// A shortcut without a first-keystroke, or with an empty keystroke, stops
// the update with an error wrapping types.ErrMalformedShortcut. Attributes
// already rewritten at that point stay rewritten.
func Keymap(doc *keymap.Document, table *rules.Table, onChange func(Change)) (Stats, error) {
	var stats Stats

	for _, action := range doc.Actions() {
		for _, sc := range action.Shortcuts() {
			stats.Shortcuts++

			n, err := updateShortcut(action.ID(), sc, table, onChange)
			if err != nil {
				return stats, err
			}
			if n > 0 {
				stats.Updated++
				stats.Keystrokes += n
			}
		}
	}

	logger.Info("keymap updated", "shortcuts", stats.Shortcuts, "updated", stats.Updated)
	return stats, nil
}

// updateShortcut returns the number of keystrokes that matched a rule.
func updateShortcut(actionID string, sc keymap.Shortcut, table *rules.Table, onChange func(Change)) (int, error) {
	first, ok := sc.First()
	if !ok {
		return 0, fmt.Errorf("action %q: %w: missing %s",
			actionID, types.ErrMalformedShortcut, keymap.FirstKeystrokeAttr)
	}

	matched := 0
	newFirst, hit, err := rewriteKeystroke(first, table)
	if err != nil {
		return 0, fmt.Errorf("action %q: %s: %w", actionID, keymap.FirstKeystrokeAttr, err)
	}
	if hit {
		matched++
		sc.SetFirst(newFirst)
		report(onChange, Change{actionID, keymap.FirstKeystrokeAttr, first, newFirst})
	}

	second, ok := sc.Second()
	if !ok {
		return matched, nil
	}
	newSecond, hit, err := rewriteKeystroke(second, table)
	if err != nil {
		return matched, fmt.Errorf("action %q: %s: %w", actionID, keymap.SecondKeystrokeAttr, err)
	}
	if hit {
		matched++
		sc.SetSecond(newSecond)
		report(onChange, Change{actionID, keymap.SecondKeystrokeAttr, second, newSecond})
	}
	return matched, nil
}

// rewriteKeystroke looks up the key of s and rewrites s when a rule exists.
func rewriteKeystroke(s string, table *rules.Table) (string, bool, error) {
	key, err := keystroke.KeyOf(s)
	if err != nil {
		return "", false, err
	}
	rule, ok := table.Lookup(key)
	if !ok {
		return s, false, nil
	}
	out, err := Rewrite(s, rule)
	if err != nil {
		return "", false, err
	}
	return out, true, nil
}

func report(fn func(Change), c Change) {
	logger.Debug("keystroke rewritten",
		"action", c.Action, "attribute", c.Attribute, "old", c.Old, "new", c.New)
	if fn != nil {
		fn(c)
	}
}
