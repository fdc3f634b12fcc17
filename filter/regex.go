package filter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/0xalexb/hjarta-config/property"
)

// Regex suppresses every key matching one of its expressions.
type Regex struct {
	patterns []*regexp.Regexp
}

// NewRegex compiles the given expressions. Each must match the whole key.
func NewRegex(expressions ...string) (*Regex, error) {
	patterns := make([]*regexp.Regexp, 0, len(expressions))

	for _, expr := range expressions {
		re, err := regexp.Compile("^(?:" + expr + ")$")
		if err != nil {
			return nil, fmt.Errorf("compiling %q: %w", expr, err)
		}

		patterns = append(patterns, re)
	}

	return &Regex{patterns: patterns}, nil
}

// MustRegex is like NewRegex but panics on an invalid expression.
func MustRegex(expressions ...string) *Regex {
	f, err := NewRegex(expressions...)
	if err != nil {
		panic(err)
	}

	return f
}

// Filter returns nil for matching keys.
func (f *Regex) Filter(value *property.Value, _ *Context) (*property.Value, error) {
	for _, re := range f.patterns {
		if re.MatchString(value.Key()) {
			return nil, nil //nolint:nilnil // suppressed
		}
	}

	return value, nil
}

// Name implements Named.
func (f *Regex) Name() string {
	return "regex-exclude"
}

// Description implements Described.
func (f *Regex) Description() string {
	exprs := make([]string, 0, len(f.patterns))
	for _, re := range f.patterns {
		exprs = append(exprs, strings.TrimSuffix(strings.TrimPrefix(re.String(), "^(?:"), ")$"))
	}

	return "excludes keys matching " + strings.Join(exprs, ", ")
}
