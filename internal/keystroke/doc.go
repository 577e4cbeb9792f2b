// Package keystroke parses and formats keymap keystroke strings.
//
// A keystroke string is a whitespace-separated list of modifier names
// followed by one key identifier:
//
//	"meta control EQUALS"
//	"shift alt F4"
//	"ESCAPE"
//
// Only four modifiers are recognized: meta, control, shift and alt. Names are
// matched case-insensitively. Any other token before the key is carried in
// Stroke.Extra and never written back out.
//
// # Canonical Form
//
// Stroke.String always emits modifiers in the order meta, control, shift,
// alt, each at most once, followed by the key. Parsing a string and
// formatting it again therefore normalizes modifier order and drops
// duplicates and unknown modifiers.
package keystroke
