// Package errors provides structured error handling for mailfind.
//
// Error codes follow the pattern ERR_XXX_DESCRIPTION where:
//   - 1XX: Configuration errors
//   - 2XX: IO errors (mailbox file)
//   - 3XX: Lookup errors (identifier misses)
//   - 4XX: Validation errors
//   - 5XX: Internal errors
//
// Empty query results are not errors: an unknown sender or keyword returns
// an empty sequence, never a 3XX code. Only identifier lookups miss hard.
package errors

// Category defines error categories for classification.
type Category string

const (
	// CategoryConfig indicates configuration-related errors.
	CategoryConfig Category = "CONFIG"
	// CategoryIO indicates mailbox file I/O errors.
	CategoryIO Category = "IO"
	// CategoryLookup indicates identifier lookup misses.
	CategoryLookup Category = "LOOKUP"
	// CategoryValidation indicates input validation errors.
	CategoryValidation Category = "VALIDATION"
	// CategoryInternal indicates unexpected internal errors.
	CategoryInternal Category = "INTERNAL"
)

// Severity defines error severity levels.
type Severity string

const (
	// SeverityFatal indicates unrecoverable error, must abort.
	SeverityFatal Severity = "FATAL"
	// SeverityError indicates operation failed but can continue.
	SeverityError Severity = "ERROR"
	// SeverityWarning indicates degraded operation, continuing.
	SeverityWarning Severity = "WARNING"
)

// Error codes organized by category.
const (
	// Config errors (100-199)
	ErrCodeConfigNotFound = "ERR_101_CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid  = "ERR_102_CONFIG_INVALID"

	// IO errors (200-299)
	ErrCodeMailboxNotFound = "ERR_201_MAILBOX_NOT_FOUND"
	ErrCodeMailboxRead     = "ERR_202_MAILBOX_READ"

	// Lookup errors (300-399)
	ErrCodeMessageNotFound = "ERR_301_MESSAGE_NOT_FOUND"

	// Validation errors (400-499)
	ErrCodeEmptySender  = "ERR_401_EMPTY_SENDER"
	ErrCodeInvalidInput = "ERR_402_INVALID_INPUT"

	// Internal errors (500-599)
	ErrCodeInternal          = "ERR_501_INTERNAL"
	ErrCodeIndexInconsistent = "ERR_502_INDEX_INCONSISTENT"
)

// categoryFromCode extracts category from error code.
func categoryFromCode(code string) Category {
	if len(code) < 7 {
		return CategoryInternal
	}

	switch code[4] {
	case '1':
		return CategoryConfig
	case '2':
		return CategoryIO
	case '3':
		return CategoryLookup
	case '4':
		return CategoryValidation
	default:
		return CategoryInternal
	}
}

// severityFromCode determines severity based on error code.
func severityFromCode(code string) Severity {
	// A partially updated index is the one condition that must abort:
	// the stores would otherwise disagree about what exists.
	if code == ErrCodeIndexInconsistent {
		return SeverityFatal
	}
	return SeverityError
}
