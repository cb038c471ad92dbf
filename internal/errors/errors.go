package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/cybertec-postgresql/tokscan/pkg/lexer"
	"github.com/jackc/pgx/v5/pgconn"
)

// ScanError represents a file that could not be tokenized
type ScanError struct {
	File string
	Err  error
}

func (e *ScanError) Error() string {
	var uerr *lexer.UnrecognizedInputError
	if stderrors.As(e.Err, &uerr) {
		return fmt.Sprintf("%s:%d:%d: unrecognized input %q", e.File, uerr.Line, uerr.Column, uerr.Excerpt)
	}
	var encErr *EncodingError
	if stderrors.As(e.Err, &encErr) {
		return fmt.Sprintf("%s:%d:%d: %s", e.File, encErr.Line, encErr.Column, encErr.Reason)
	}
	return fmt.Sprintf("%s: %v", e.File, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// NewScanError creates a new ScanError
func NewScanError(file string, err error) *ScanError {
	return &ScanError{
		File: file,
		Err:  err,
	}
}

// EncodingError reports bytes that cannot be kept as text: an invalid
// UTF-8 sequence or a NUL byte. Line is 1-based and Column is a 0-based
// byte offset within the line.
type EncodingError struct {
	Offset int
	Line   int
	Column int
	Reason string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s at line %d, column %d", e.Reason, e.Line, e.Column)
}

// CheckText returns an *EncodingError for the first byte of s that JSON
// and PostgreSQL text columns cannot round-trip, or nil.
func CheckText(s string) error {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		var reason string
		switch {
		case r == utf8.RuneError && size == 1:
			reason = fmt.Sprintf("invalid UTF-8 byte 0x%02x", s[i])
		case r == 0:
			reason = "NUL byte"
		}
		if reason != "" {
			return &EncodingError{
				Offset: i,
				Line:   strings.Count(s[:i], "\n") + 1,
				Column: i - (strings.LastIndexByte(s[:i], '\n') + 1),
				Reason: reason,
			}
		}
		i += size
	}
	return nil
}

// ConnectionError represents PostgreSQL connection failure
type ConnectionError struct {
	Message    string
	Suggestion string
}

func (e *ConnectionError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("database connection failed: %s (%s)", e.Message, e.Suggestion)
	}
	return fmt.Sprintf("database connection failed: %s", e.Message)
}

// StoreError represents a failure writing to or reading from the token store
type StoreError struct {
	Operation string
	Code      string // SQLSTATE when the server reported one
	Message   string
}

func (e *StoreError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s failed: [%s] %s", e.Operation, e.Code, e.Message)
	}
	return fmt.Sprintf("%s failed: %s", e.Operation, e.Message)
}

// NewStoreError creates a StoreError, taking code and message from a
// PostgreSQL error when err carries one.
func NewStoreError(operation string, err error) *StoreError {
	var pgErr *pgconn.PgError
	if stderrors.As(err, &pgErr) {
		return &StoreError{
			Operation: operation,
			Code:      pgErr.Code,
			Message:   pgErr.Message,
		}
	}
	return &StoreError{
		Operation: operation,
		Message:   err.Error(),
	}
}

// ProfileError represents a user profile file that could not be loaded
type ProfileError struct {
	File    string
	Message string
}

func (e *ProfileError) Error() string {
	return fmt.Sprintf("failed to load profile %s: %s", e.File, e.Message)
}

// NewProfileError creates a new ProfileError
func NewProfileError(file, message string) *ProfileError {
	return &ProfileError{
		File:    file,
		Message: message,
	}
}
