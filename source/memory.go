package source

import "maps"

// Map is a source backed by fixed entries.
type Map struct {
	name    string
	ordinal int
	entries map[string]string
}

// NewMap creates a Map source. The entries are copied.
func NewMap(name string, ordinal int, entries map[string]string) *Map {
	return &Map{
		name:    name,
		ordinal: ordinal,
		entries: maps.Clone(entries),
	}
}

// Name implements property.Source.
func (m *Map) Name() string {
	return m.name
}

// Ordinal implements property.Source.
func (m *Map) Ordinal() int {
	return m.ordinal
}

// Properties implements property.Source.
func (m *Map) Properties() (map[string]string, error) {
	if m.entries == nil {
		return map[string]string{}, nil
	}

	return maps.Clone(m.entries), nil
}
