package automation

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownValue is returned when a string does not name a member of one
	// of the closed enumerations (Tab, ReliabilityTier, ConnectionStatus).
	ErrUnknownValue = errors.New("unknown value")

	// ErrInvalidAction is returned by DecodeAction for malformed actions.
	ErrInvalidAction = errors.New("invalid action")
)

// ActionError describes why an encoded action was rejected
type ActionError struct {
	Type    string // Action type as received (may be empty)
	Field   string // Offending field, if any
	Message string
	Err     error // Underlying error (if any)
}

// Error implements the error interface
func (e *ActionError) Error() string {
	prefix := "invalid action"
	if e.Type != "" {
		prefix = fmt.Sprintf("invalid %s action", e.Type)
	}
	if e.Field != "" {
		prefix += fmt.Sprintf(" (field %s)", e.Field)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

// Unwrap exposes both the sentinel and the cause to errors.Is/As
func (e *ActionError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidAction, e.Err}
	}
	return []error{ErrInvalidAction}
}

func unknownValue(kind, value string) error {
	return fmt.Errorf("%w: %s %q", ErrUnknownValue, kind, value)
}
