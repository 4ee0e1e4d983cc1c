package errors

import (
	"fmt"
)

// MailError is the structured error type for mailfind.
// It carries a stable code plus context for logging and user presentation.
type MailError struct {
	// Code is the unique error code (e.g., "ERR_301_MESSAGE_NOT_FOUND").
	Code string

	// Message is the human-readable error message.
	Message string

	// Category is the error category (Config, IO, Lookup, ...).
	Category Category

	// Severity is the error severity level.
	Severity Severity

	// Details contains additional context as key-value pairs.
	Details map[string]string

	// Cause is the underlying error that caused this error.
	Cause error
}

// Error implements the error interface.
func (e *MailError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *MailError) Unwrap() error {
	return e.Cause
}

// Is matches MailErrors by code, so errors.Is works against a bare
// New(code, ...) target.
func (e *MailError) Is(target error) bool {
	if t, ok := target.(*MailError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithDetail adds a key-value detail to the error.
// Returns the error for method chaining.
func (e *MailError) WithDetail(key, value string) *MailError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// New creates a new MailError with the given code and message.
// Category and severity are derived from the code.
func New(code string, message string, cause error) *MailError {
	return &MailError{
		Code:     code,
		Message:  message,
		Category: categoryFromCode(code),
		Severity: severityFromCode(code),
		Cause:    cause,
	}
}

// Wrap creates a MailError from an existing error, keeping its message.
func Wrap(code string, err error) *MailError {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}

// IsCode reports whether err is a MailError with the given code.
func IsCode(err error, code string) bool {
	me, ok := err.(*MailError)
	return ok && me.Code == code
}

// IsFatal checks if an error has fatal severity.
// Fatal errors should abort the current operation.
func IsFatal(err error) bool {
	if me, ok := err.(*MailError); ok {
		return me.Severity == SeverityFatal
	}
	return false
}

// GetCode extracts the error code from a MailError.
// Returns empty string if not a MailError.
func GetCode(err error) string {
	if me, ok := err.(*MailError); ok {
		return me.Code
	}
	return ""
}

// GetCategory extracts the category from a MailError.
// Returns empty string if not a MailError.
func GetCategory(err error) Category {
	if me, ok := err.(*MailError); ok {
		return me.Category
	}
	return ""
}
