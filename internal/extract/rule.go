package extract

import (
	"fmt"
	"regexp"
)

// Match holds the named captures of one rule match.
type Match map[string]string

// Rule is a match-and-capture rule applied to raw text.
type Rule struct {
	// name identifies the rule in error messages.
	name string

	// pattern is the compiled expression. Capture groups must be named.
	pattern *regexp.Regexp

	// keep filters matches. A nil keep accepts every match.
	keep func(Match) bool
}

// NewRule compiles pattern into a Rule.
// keep may be nil, in which case every match is accepted.
func NewRule(name, pattern string, keep func(Match) bool) (*Rule, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile rule %s: %w", name, err)
	}

	for i, n := range re.SubexpNames() {
		if i > 0 && n == "" {
			return nil, fmt.Errorf("rule %s: %w", name, ErrUnnamedCapture)
		}
	}

	return &Rule{name: name, pattern: re, keep: keep}, nil
}

// MustRule is like NewRule but panics if the rule cannot be compiled.
// It is meant for package-level rules built from constant patterns.
func MustRule(name, pattern string, keep func(Match) bool) *Rule {
	r, err := NewRule(name, pattern, keep)
	if err != nil {
		panic(err)
	}
	return r
}

// Name returns the rule name.
func (r *Rule) Name() string {
	return r.name
}

// Apply returns every accepted, non-overlapping match in text, in the
// order the matches appear.
func (r *Rule) Apply(text string) []Match {
	matches := make([]Match, 0)
	if text == "" {
		return matches
	}

	names := r.pattern.SubexpNames()
	for _, sub := range r.pattern.FindAllStringSubmatch(text, -1) {
		m := make(Match, len(names)-1)
		for i := 1; i < len(names); i++ {
			m[names[i]] = sub[i]
		}
		if r.keep != nil && !r.keep(m) {
			continue
		}
		matches = append(matches, m)
	}

	return matches
}
