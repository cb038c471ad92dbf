package lexer

import (
	"io"
	"strings"
	"unicode/utf8"
)

// ScanOptions changes how a scan treats unrecognized input
type ScanOptions struct {
	// Tolerant emits a one-rune CategoryUnknown token where no rule
	// matches instead of failing.
	Tolerant bool
}

// Scanner tokenizes one input incrementally. Each Scanner owns its
// position counters; it is not safe for concurrent use.
type Scanner struct {
	profile *Profile
	rules   []Rule
	opts    ScanOptions

	rest   string
	offset int
	line   int
	column int
	err    error
}

// NewScanner creates a Scanner over src. Carriage returns are removed
// before scanning, so offsets refer to the normalized text.
func NewScanner(p *Profile, src string) *Scanner {
	return NewScannerWith(p, src, ScanOptions{})
}

// NewScannerWith creates a Scanner with explicit options
func NewScannerWith(p *Profile, src string, opts ScanOptions) *Scanner {
	return &Scanner{
		profile: p,
		rules:   p.matchOrder(),
		opts:    opts,
		rest:    strings.ReplaceAll(src, "\r", ""),
		line:    1,
	}
}

// Next returns the next token. It returns io.EOF once the input is
// consumed. After a scan error every call returns the same error.
func (s *Scanner) Next() (Token, error) {
	if s.err != nil {
		return Token{}, s.err
	}
	if s.rest == "" {
		return Token{}, io.EOF
	}

	for _, r := range s.rules {
		value, full, ok, err := r.match(s.rest)
		if err != nil {
			s.err = err
			return Token{}, err
		}
		if !ok {
			continue
		}
		return s.emit(r.category, value, full), nil
	}

	if s.opts.Tolerant {
		_, size := utf8.DecodeRuneInString(s.rest)
		v := s.rest[:size]
		return s.emit(CategoryUnknown, v, v), nil
	}

	s.err = &UnrecognizedInputError{
		Profile: s.profile.name,
		Offset:  s.offset,
		Line:    s.line,
		Column:  s.column,
		Excerpt: excerpt(s.rest),
	}
	return Token{}, s.err
}

// emit builds the token at the current position and advances past value.
// Only len(value) bytes are consumed; the rest of the full match (such as
// the "(" after a function name) stays in the input and is scanned next.
func (s *Scanner) emit(category, value, full string) Token {
	tok := Token{
		Category: category,
		Value:    value,
		Match:    full,
		Offset:   s.offset,
		Line:     s.line,
		Column:   s.column,
	}

	n := len(value)
	s.rest = s.rest[n:]
	s.offset += n
	if category == CategoryNewline {
		s.line += strings.Count(value, "\n")
		s.column = 0
	} else {
		s.column += n
	}
	return tok
}

// All scans the remaining input. On failure it returns no tokens.
func (s *Scanner) All() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := s.Next()
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
}

// Tokenize scans src with the profile. The result is either the complete
// token sequence or an error; partial output is never returned.
func (p *Profile) Tokenize(src string) ([]Token, error) {
	return NewScanner(p, src).All()
}

// TokenizeWith scans src with explicit options
func (p *Profile) TokenizeWith(src string, opts ScanOptions) ([]Token, error) {
	return NewScannerWith(p, src, opts).All()
}

// Tokenize scans src with profile p
func Tokenize(p *Profile, src string) ([]Token, error) {
	return p.Tokenize(src)
}
