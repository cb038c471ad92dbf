package lexer

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrUnrecognizedInput is matched by errors.Is for every
// *UnrecognizedInputError.
var ErrUnrecognizedInput = errors.New("unrecognized input")

// excerptLen bounds the remainder quoted in an UnrecognizedInputError
const excerptLen = 32

// UnrecognizedInputError reports the position at which no rule of the
// active profile matched. Nothing before that position is returned.
type UnrecognizedInputError struct {
	Profile string
	Offset  int
	Line    int
	Column  int
	Excerpt string
}

func (e *UnrecognizedInputError) Error() string {
	if e.Profile != "" {
		return fmt.Sprintf("%s: %d:%d: unrecognized input at offset %d: %q", e.Profile, e.Line, e.Column, e.Offset, e.Excerpt)
	}
	return fmt.Sprintf("%d:%d: unrecognized input at offset %d: %q", e.Line, e.Column, e.Offset, e.Excerpt)
}

// Is reports whether target is ErrUnrecognizedInput
func (e *UnrecognizedInputError) Is(target error) bool {
	return target == ErrUnrecognizedInput
}

// PatternError represents a rule whose pattern cannot be used for matching
type PatternError struct {
	Category string
	Pattern  string
	Message  string
	Err      error
}

func (e *PatternError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("rule %q (%s): %s: %v", e.Category, e.Pattern, e.Message, e.Err)
	}
	return fmt.Sprintf("rule %q (%s): %s", e.Category, e.Pattern, e.Message)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// excerpt returns at most excerptLen bytes of s without splitting a rune.
func excerpt(s string) string {
	if len(s) <= excerptLen {
		return s
	}
	cut := excerptLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
