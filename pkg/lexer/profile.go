package lexer

import (
	"fmt"
	"strings"
)

// Profile is the resolved, category-unique rule list for one language.
// It is immutable and safe for concurrent use.
type Profile struct {
	name       string
	extensions []string
	rules      []Rule
	// fallback holds the default set tried again after rules; nil unless
	// WithFallback was used.
	fallback []Rule
}

// ProfileOption configures a Profile at construction
type ProfileOption func(*Profile)

// WithExtensions sets the file extensions associated with the profile.
// Extensions are lowercased and given a leading dot.
func WithExtensions(exts ...string) ProfileOption {
	return func(p *Profile) {
		for _, ext := range exts {
			ext = strings.ToLower(strings.TrimSpace(ext))
			if ext == "" {
				continue
			}
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			p.extensions = append(p.extensions, ext)
		}
	}
}

// NewProfile builds a profile from the shared default rules and the given
// overrides.
func NewProfile(name string, overrides []Rule, opts ...ProfileOption) *Profile {
	return NewProfileWithDefaults(name, defaultRules, overrides, opts...)
}

// NewProfileWithDefaults builds a profile from an explicit default set.
//
// Overrides come first, in the order supplied; a category repeated in the
// overrides keeps its first position and takes the last rule given for it.
// Defaults whose category is not overridden follow in their own order.
func NewProfileWithDefaults(name string, defaults, overrides []Rule, opts ...ProfileOption) *Profile {
	p := &Profile{
		name:  name,
		rules: resolve(defaults, overrides),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func resolve(defaults, overrides []Rule) []Rule {
	rules := make([]Rule, 0, len(defaults)+len(overrides))
	index := make(map[string]int, len(defaults)+len(overrides))

	for _, r := range overrides {
		if i, ok := index[r.category]; ok {
			rules[i] = r
			continue
		}
		index[r.category] = len(rules)
		rules = append(rules, r)
	}
	for _, r := range defaults {
		if _, ok := index[r.category]; ok {
			continue
		}
		index[r.category] = len(rules)
		rules = append(rules, r)
	}
	return rules
}

// Extend derives a new profile that uses p's resolved rules as its
// defaults. Extensions are not inherited unless given again.
func (p *Profile) Extend(name string, overrides []Rule, opts ...ProfileOption) *Profile {
	child := NewProfileWithDefaults(name, p.rules, overrides, opts...)
	child.fallback = p.fallback
	return child
}

// WithFallback returns a copy of p that, after its own rules, tries the
// shared default set once more. Older callers relied on this second pass
// letting a default rule fire where an override of the same category did
// not match.
func (p *Profile) WithFallback() *Profile {
	cp := *p
	cp.fallback = defaultRules
	return &cp
}

// Name returns the profile name
func (p *Profile) Name() string { return p.name }

// Extensions returns a copy of the file extensions
func (p *Profile) Extensions() []string {
	return append([]string(nil), p.extensions...)
}

// Rules returns a copy of the resolved rules in matching order.
func (p *Profile) Rules() []Rule {
	return append([]Rule(nil), p.rules...)
}

// Categories returns the resolved categories in matching order
func (p *Profile) Categories() []string {
	cats := make([]string, len(p.rules))
	for i, r := range p.rules {
		cats[i] = r.category
	}
	return cats
}

// Rule looks up the resolved rule for a category.
func (p *Profile) Rule(category string) (Rule, bool) {
	for _, r := range p.rules {
		if r.category == category {
			return r, true
		}
	}
	return Rule{}, false
}

// Compile compiles every rule so that pattern errors are reported before
// the first scan.
func (p *Profile) Compile() error {
	for _, r := range p.rules {
		if err := r.Compile(); err != nil {
			return fmt.Errorf("profile %s: %w", p.name, err)
		}
	}
	return nil
}

// matchOrder is the full list tried at every position.
func (p *Profile) matchOrder() []Rule {
	if len(p.fallback) == 0 {
		return p.rules
	}
	order := make([]Rule, 0, len(p.rules)+len(p.fallback))
	order = append(order, p.rules...)
	return append(order, p.fallback...)
}
