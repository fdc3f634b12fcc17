package property

import (
	"cmp"
	"errors"
	"slices"
)

// ErrKeyNotFound is returned by a Reader when a key is absent or was suppressed by a filter.
var ErrKeyNotFound = errors.New("key not found")

// Reader is the owning configuration as seen by filters and converters.
// Get returns a filtered value, Raw the combined value before filtering.
type Reader interface {
	Get(key string) (string, error)
	Raw(key string) (*Value, bool)
}

// Source provides raw key/value entries.
type Source interface {
	// Name identifies the source in metadata and diagnostics.
	Name() string
	// Ordinal orders sources; a higher ordinal takes precedence under Override.
	Ordinal() int
	// Properties returns a snapshot of all entries.
	Properties() (map[string]string, error)
}

// SortSources returns a copy of sources ordered by ascending ordinal.
// Sources with the same ordinal keep their relative order.
func SortSources(sources []Source) []Source {
	sorted := slices.Clone(sources)
	slices.SortStableFunc(sorted, func(a, b Source) int {
		return cmp.Compare(a.Ordinal(), b.Ordinal())
	})

	return sorted
}
