package analysis

import (
	"errors"
	"fmt"
)

// Kind classifies an analysis error for the delivery layer.
type Kind int

const (
	// KindRejected marks a precondition violation the caller can fix.
	KindRejected Kind = iota + 1
	// KindFault marks any other failure. Its message is echoed to the caller.
	KindFault
)

func (k Kind) String() string {
	switch k {
	case KindRejected:
		return "rejected"
	case KindFault:
		return "fault"
	}
	return "unknown"
}

// Error is the error type returned by the analysis operations.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

var (
	// ErrTextTooShort is returned by ScoreReadability for text shorter than
	// MinTextLength characters.
	ErrTextTooShort = &Error{
		Kind:    KindRejected,
		Message: fmt.Sprintf("Text too short for analysis (minimum %d chars)", MinTextLength),
	}

	// ErrEmptyText is returned by AnalyzeKeywords for empty text.
	ErrEmptyText = &Error{
		Kind:    KindRejected,
		Message: "No text provided",
	}
)

// Fault wraps an unexpected failure.
func Fault(message string, cause error) *Error {
	return &Error{Kind: KindFault, Message: message, Cause: cause}
}

// KindOf returns the Kind of err. Errors that are not *Error are faults.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindFault
}

// IsRejected reports whether err is a caller-visible precondition violation.
func IsRejected(err error) bool {
	return err != nil && KindOf(err) == KindRejected
}
