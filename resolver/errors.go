package resolver

import "errors"

// Kind is a stable category for programmatic error handling.
//
// Callers should branch on Kind/RuleID rather than matching error strings.
// Error() strings are intentionally human-readable and may evolve; use
// errors.As to extract *Error for structured handling.
type Kind string

const (
	// KindUnsupported marks a hint that is neither a recognized compliant
	// family member nor a fallback form (class, class name, tuple union).
	KindUnsupported Kind = "Unsupported"
	// KindUnsupportedPep marks a recognized compliant family member whose
	// particular shape has no check generation yet.
	KindUnsupportedPep Kind = "UnsupportedPep"
	// KindHashability marks a value that cannot participate in hash-based
	// memoization. Treated as malformed input, never silently coerced.
	KindHashability Kind = "Hashability"
)

// Error is the resolution core's structured error type.
//
// RuleID is a stable identifier (e.g., HINT-CLS-001, HINT-HSH-001) naming
// the violated invariant. Message is intended for humans; do not match on it.
type Error struct {
	Kind    Kind
	RuleID  string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func newError(kind Kind, ruleID, msg string) error {
	return &Error{Kind: kind, RuleID: ruleID, Message: msg}
}

func wrapError(kind Kind, ruleID, msg string, cause error) error {
	if cause == nil {
		return newError(kind, ruleID, msg)
	}
	return &Error{Kind: kind, RuleID: ruleID, Message: msg, Cause: cause}
}

// IsKind reports whether err is (or wraps) a *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// RuleID returns the stable RuleID for a structured error, or "" if unknown.
func RuleID(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.RuleID
}
