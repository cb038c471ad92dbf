package lexer

import (
	"regexp"
	"strings"
	"sync"
)

// Rule pairs a token category with an anchored pattern and the capture
// group that yields the token value. A Rule is immutable once built.
type Rule struct {
	category string
	pattern  string
	group    int
	re       *compiledPattern
}

// compiledPattern compiles the pattern on first use so that an invalid
// pattern only surfaces when it is actually matched.
type compiledPattern struct {
	once sync.Once
	re   *regexp.Regexp
	err  error
}

// NewRule creates a Rule. The pattern is anchored to the start of the
// remaining input if it is not already. An optional group selects the
// capture group used as the token value (0, the whole match, by default).
func NewRule(category, pattern string, group ...int) Rule {
	if !strings.HasPrefix(pattern, "^") {
		pattern = "^" + pattern
	}
	g := 0
	if len(group) > 0 {
		g = group[0]
	}
	return Rule{
		category: category,
		pattern:  pattern,
		group:    g,
		re:       &compiledPattern{},
	}
}

// Category returns the token category produced by this rule
func (r Rule) Category() string { return r.category }

// Pattern returns the anchored pattern source
func (r Rule) Pattern() string { return r.pattern }

// Group returns the capture group used as the token value
func (r Rule) Group() int { return r.group }

// Compile compiles the pattern and checks that the capture group exists.
func (r Rule) Compile() error {
	_, err := r.compiled()
	return err
}

func (r Rule) compiled() (*regexp.Regexp, error) {
	if r.re == nil {
		// zero Rule
		return nil, &PatternError{Category: r.category, Pattern: r.pattern, Message: "rule was not created with NewRule"}
	}
	r.re.once.Do(func() {
		re, err := regexp.Compile(r.pattern)
		if err != nil {
			r.re.err = &PatternError{Category: r.category, Pattern: r.pattern, Message: "invalid pattern", Err: err}
			return
		}
		if r.group < 0 || r.group > re.NumSubexp() {
			r.re.err = &PatternError{
				Category: r.category,
				Pattern:  r.pattern,
				Message:  "capture group out of range",
			}
			return
		}
		r.re.re = re
	})
	return r.re.re, r.re.err
}

// match tests the rule against the head of text. It returns the token
// value and the full match; ok is false when the rule does not apply.
func (r Rule) match(text string) (value, full string, ok bool, err error) {
	re, err := r.compiled()
	if err != nil {
		return "", "", false, err
	}
	loc := re.FindStringSubmatchIndex(text)
	if loc == nil {
		return "", "", false, nil
	}
	full = text[loc[0]:loc[1]]
	start, end := loc[2*r.group], loc[2*r.group+1]
	if start < 0 {
		// group did not participate in the match
		return "", full, false, nil
	}
	value = text[start:end]
	if value == "" {
		return "", full, false, nil
	}
	return value, full, true, nil
}
