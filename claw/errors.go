package claw

import "errors"

// Kind is a stable category for programmatic error handling.
type Kind string

const (
	// KindRegistration marks an invalid package registration: malformed
	// package name or conflicting configuration re-registration.
	KindRegistration Kind = "Registration"
)

// Error is the registration layer's structured error type. RuleID is a
// stable identifier (e.g., CLAW-REG-001) naming the violated rule; Message
// is for humans.
type Error struct {
	Kind    Kind
	RuleID  string
	Message string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

func newError(kind Kind, ruleID, msg string) error {
	return &Error{Kind: kind, RuleID: ruleID, Message: msg}
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
