package lexer

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// BaseLookup resolves the profile named by an "extends" directive
type BaseLookup func(name string) (*Profile, bool)

// ProfileFileError points at the offending line of a profile file
type ProfileFileError struct {
	Line    int
	Message string
}

func (e *ProfileFileError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// ParseProfile reads a profile definition. The format is line based:
//
//	# comment
//	name      pyx
//	extends   python
//	extensions .pyx .pxd
//	rule keyword 0 (cdef|cpdef|cimport)\b
//	rule "keyword literal" 0 (NULL)\b
//
// A category containing spaces must be double quoted. The pattern is the
// rest of the line after the group number, without surrounding blanks. Without
// "extends" the shared default rules are used.
func ParseProfile(r io.Reader, lookup BaseLookup) (*Profile, error) {
	var (
		name    string
		base    string
		exts    []string
		rules   []Rule
		lineNum int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNum++
		line := strings.TrimRight(sc.Text(), "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		directive, rest := splitField(trimmed)
		switch directive {
		case "name":
			name = strings.TrimSpace(rest)
		case "extends":
			base = strings.TrimSpace(rest)
		case "extensions":
			exts = append(exts, strings.Fields(rest)...)
		case "rule":
			rule, err := parseRuleLine(rest)
			if err != nil {
				return nil, &ProfileFileError{Line: lineNum, Message: err.Error()}
			}
			rules = append(rules, rule)
		default:
			return nil, &ProfileFileError{Line: lineNum, Message: fmt.Sprintf("unknown directive %q", directive)}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	if name == "" {
		return nil, &ProfileFileError{Line: lineNum, Message: "missing name directive"}
	}

	var p *Profile
	if base != "" {
		if lookup == nil {
			return nil, fmt.Errorf("profile %s extends %s but no base profiles are available", name, base)
		}
		parent, ok := lookup(base)
		if !ok {
			return nil, fmt.Errorf("profile %s extends unknown profile %s", name, base)
		}
		p = parent.Extend(name, rules, WithExtensions(exts...))
	} else {
		p = NewProfile(name, rules, WithExtensions(exts...))
	}

	if err := p.Compile(); err != nil {
		return nil, err
	}
	return p, nil
}

// parseRuleLine parses `<category> <group> <pattern>`.
func parseRuleLine(s string) (Rule, error) {
	var category string
	if strings.HasPrefix(s, `"`) {
		quoted, err := strconv.QuotedPrefix(s)
		if err != nil {
			return Rule{}, fmt.Errorf("bad quoted category: %w", err)
		}
		category, _ = strconv.Unquote(quoted)
		s = s[len(quoted):]
	} else {
		category, s = splitField(s)
		if s == "" {
			return Rule{}, fmt.Errorf("rule needs a category, a group and a pattern")
		}
	}

	groupStr, pattern := splitField(strings.TrimLeft(s, " \t"))
	if pattern == "" {
		return Rule{}, fmt.Errorf("rule %q needs a group and a pattern", category)
	}
	group, err := strconv.Atoi(groupStr)
	if err != nil || group < 0 {
		return Rule{}, fmt.Errorf("rule %q: invalid group %q", category, groupStr)
	}
	return NewRule(category, pattern, group), nil
}

// splitField splits off the first blank-separated field of s.
func splitField(s string) (field, rest string) {
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimLeft(s[i:], " \t")
}
