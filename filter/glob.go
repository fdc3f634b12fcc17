package filter

import (
	"fmt"
	"strings"

	"github.com/0xalexb/hjarta-config/property"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultMask replaces the values of masked keys.
const DefaultMask = "*****"

// matchKey matches a dotted key against a glob where "*" spans one key segment
// and "**" any number of segments, e.g. "db.**.password".
func matchKey(patterns []string, key string) bool {
	name := strings.ReplaceAll(key, ".", "/")

	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, name)
		if err == nil && matched {
			return true
		}
	}

	return false
}

func toGlobs(patterns []string) ([]string, error) {
	globs := make([]string, 0, len(patterns))

	for _, pattern := range patterns {
		glob := strings.ReplaceAll(pattern, ".", "/")
		if !doublestar.ValidatePattern(glob) {
			return nil, fmt.Errorf("%w: %q", doublestar.ErrBadPattern, pattern)
		}

		globs = append(globs, glob)
	}

	return globs, nil
}

// GlobExclude suppresses every key matching one of its glob patterns.
type GlobExclude struct {
	patterns []string
	raw      []string
}

// NewGlobExclude validates the patterns and creates the filter.
func NewGlobExclude(patterns ...string) (*GlobExclude, error) {
	globs, err := toGlobs(patterns)
	if err != nil {
		return nil, err
	}

	return &GlobExclude{patterns: globs, raw: patterns}, nil
}

// Filter returns nil for matching keys.
func (f *GlobExclude) Filter(value *property.Value, _ *Context) (*property.Value, error) {
	if matchKey(f.patterns, value.Key()) {
		return nil, nil //nolint:nilnil // suppressed
	}

	return value, nil
}

// Name implements Named.
func (f *GlobExclude) Name() string {
	return "glob-exclude"
}

// Description implements Described.
func (f *GlobExclude) Description() string {
	return "excludes keys matching " + strings.Join(f.raw, ", ")
}

// Mask replaces the values of matching keys with a fixed string. With BulkOnly set,
// single-key lookups still return the real value and only enumerations are masked.
type Mask struct {
	patterns []string
	raw      []string
	mask     string
	bulkOnly bool
}

// MaskOption configures a Mask filter.
type MaskOption func(*Mask)

// WithMask sets the replacement string.
func WithMask(mask string) MaskOption {
	return func(m *Mask) {
		m.mask = mask
	}
}

// BulkOnly limits masking to bulk enumerations.
func BulkOnly() MaskOption {
	return func(m *Mask) {
		m.bulkOnly = true
	}
}

// NewMask validates the patterns and creates the filter.
func NewMask(patterns []string, opts ...MaskOption) (*Mask, error) {
	globs, err := toGlobs(patterns)
	if err != nil {
		return nil, err
	}

	m := &Mask{
		patterns: globs,
		raw:      patterns,
		mask:     DefaultMask,
		bulkOnly: false,
	}

	for _, apply := range opts {
		apply(m)
	}

	return m, nil
}

// Filter masks matching keys.
func (f *Mask) Filter(value *property.Value, fc *Context) (*property.Value, error) {
	if f.bulkOnly && fc.SinglePropertyScoped() {
		return value, nil
	}

	if !matchKey(f.patterns, value.Key()) {
		return value, nil
	}

	return value.WithValue(f.mask), nil
}

// Name implements Named.
func (f *Mask) Name() string {
	return "mask"
}

// Description implements Described.
func (f *Mask) Description() string {
	scope := "all lookups"
	if f.bulkOnly {
		scope = "enumerations"
	}

	return fmt.Sprintf("masks %s in %s", strings.Join(f.raw, ", "), scope)
}
