package model

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure. The classification decides what the user
// is shown and which exit code the process returns.
type ErrorKind string

const (
	// KindInvalidInput marks a failure fully attributable to caller-supplied
	// data: an unknown name, a wrong token count, a bad directory file.
	// Its message is safe to show to the user verbatim.
	KindInvalidInput ErrorKind = "invalid_input"

	// KindOther marks an unexpected lower-level failure. The user only sees
	// a generic notice; the message and cause go to the diagnostic log.
	KindOther ErrorKind = "other"
)

// GenericUserMessage is shown to the user for every KindOther failure.
const GenericUserMessage = "Something went wrong, please try again."

// String returns the string representation of ErrorKind.
func (k ErrorKind) String() string {
	return string(k)
}

// IsValid checks whether the ErrorKind value is one of the defined kinds.
func (k ErrorKind) IsValid() bool {
	switch k {
	case KindInvalidInput, KindOther:
		return true
	default:
		return false
	}
}

// ExitCode maps the kind to the process exit code.
func (k ErrorKind) ExitCode() ExitCode {
	if k == KindInvalidInput {
		return ExitInvalidInput
	}
	return ExitGeneralError
}

// Error is the classified error type used throughout cardinfo.
// It carries a discriminant, an optional human-readable message, and an
// optional wrapped cause, so diagnostics can walk the full chain while the
// user only sees UserMessage.
type Error struct {
	// Kind is the failure classification.
	Kind ErrorKind

	// Message is the human-readable description of this link in the chain.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

// Error satisfies the error interface. It returns the message followed by
// the underlying error, if present. This is the diagnostic rendering and
// must not be shown to the user for KindOther failures.
func (e *Error) Error() string {
	switch {
	case e.Err != nil && e.Message != "":
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case e.Message != "":
		return e.Message
	default:
		return e.Kind.String()
	}
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// UserMessage returns the text that is safe to show to the end user.
// InvalidInput failures show their own message; everything else shows
// GenericUserMessage.
func (e *Error) UserMessage() string {
	if e.Kind == KindInvalidInput && e.Message != "" {
		return e.Message
	}
	return GenericUserMessage
}

// NewError creates a new Error with the given kind and message.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// WrapError creates a new Error that wraps an existing error.
func WrapError(kind ErrorKind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// InvalidInputf creates a KindInvalidInput error with a formatted message.
func InvalidInputf(format string, args ...any) *Error {
	return NewError(KindInvalidInput, fmt.Sprintf(format, args...))
}

// KindOf returns the classification of err. Errors that are not (and do not
// wrap) an *Error are treated as KindOther. A nil error has no kind.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindOther
}

// UserMessage returns the user-facing text for any error, applying the same
// rules as (*Error).UserMessage. Unclassified errors get GenericUserMessage.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.UserMessage()
	}
	return GenericUserMessage
}

// Chain returns one entry per link of err's unwrap chain, outermost first.
// For an *Error the entry is its own message (not including the cause,
// which appears as the next entry); other errors contribute Error().
// Joined errors are not expanded.
func Chain(err error) []string {
	var chain []string
	for err != nil {
		if e, ok := err.(*Error); ok && e.Message != "" {
			chain = append(chain, e.Message)
		} else if !ok {
			chain = append(chain, err.Error())
		}
		err = errors.Unwrap(err)
	}
	return chain
}
