package filter

import (
	"regexp"
	"strings"

	"github.com/0xalexb/hjarta-config/property"
)

// placeholderPattern matches innermost ${key} and ${key:default} references.
var placeholderPattern = regexp.MustCompile(`\$\{([^${}]+)\}`)

// Placeholder resolves ${key} and ${key:default} references inside values.
//
// References are looked up in the context snapshot first and then, when an owning
// configuration is attached, in its raw (unfiltered) values. Each pass resolves
// one level; nested references resolve over the following passes of the Manager.
// Unresolvable references without a default are left in place.
type Placeholder struct{}

// NewPlaceholder creates the filter.
func NewPlaceholder() Placeholder {
	return Placeholder{}
}

// Filter implements Filter.
func (Placeholder) Filter(value *property.Value, fc *Context) (*property.Value, error) {
	raw := value.Value()
	if !strings.Contains(raw, "${") {
		return value, nil
	}

	resolved := placeholderPattern.ReplaceAllStringFunc(raw, func(match string) string {
		ref := match[2 : len(match)-1]

		key, def, hasDefault := strings.Cut(ref, ":")
		key = strings.TrimSpace(key)

		if found, ok := lookup(fc, key); ok {
			return found
		}

		if hasDefault {
			return def
		}

		return match
	})

	if resolved == raw {
		return value, nil
	}

	return value.WithValue(resolved), nil
}

// Name implements Named.
func (Placeholder) Name() string {
	return "placeholder"
}

// Description implements Described.
func (Placeholder) Description() string {
	return "resolves ${key} and ${key:default} references"
}

func lookup(fc *Context, key string) (string, bool) {
	if value, ok := fc.Entry(key); ok && key != fc.Property().Key() {
		return value, true
	}

	if fc.Config() == nil {
		return "", false
	}

	raw, ok := fc.Config().Raw(key)
	if !ok {
		return "", false
	}

	return raw.Value(), true
}
