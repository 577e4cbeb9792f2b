package types

import "errors"

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindFormat   ErrKind = iota // malformed keystroke strings or keymap XML
	ErrKindNotFound                // missing replacement rule
	ErrKindConfig                  // unreadable or invalid replacement config
	ErrKindState                   // filesystem precondition not met (e.g., output is a file)
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindFormat:
		return "format"
	case ErrKindNotFound:
		return "not_found"
	case ErrKindConfig:
		return "config"
	case ErrKindState:
		return "state"
	default:
		return "unknown"
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels commonly returned by implementations.
var (
	// ErrKeyNotFound indicates a rule was requested for a key the table does not hold.
	ErrKeyNotFound = &Error{Kind: ErrKindNotFound, Msg: "replacement key not found"}
	// ErrMalformedShortcut indicates a keystroke string without a key token.
	ErrMalformedShortcut = &Error{Kind: ErrKindFormat, Msg: "malformed shortcut"}
	// ErrMalformedKeymap indicates the keymap document could not be parsed.
	ErrMalformedKeymap = &Error{Kind: ErrKindFormat, Msg: "malformed keymap"}
	// ErrInvalidConfig indicates a replacement config that cannot be turned into rules.
	ErrInvalidConfig = &Error{Kind: ErrKindConfig, Msg: "invalid replacement config"}
	// ErrNotDirectory indicates an output path that exists but is not a directory.
	ErrNotDirectory = &Error{Kind: ErrKindState, Msg: "not a directory"}
)

// KindOf reports the category of the first typed error in err's chain.
func KindOf(err error) (ErrKind, bool) {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind, true
	}
	return 0, false
}
