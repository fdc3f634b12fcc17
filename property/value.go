package property

import (
	"fmt"
	"maps"
	"sort"
	"strings"
)

// MetaPrefix marks metadata entries in flattened property maps.
const MetaPrefix = "_"

// MetaSource is the metadata entry holding the name of the source a value came from.
const MetaSource = "source"

// Value is an immutable configuration entry: a key, its resolved string value and
// an arbitrary set of metadata entries. All With* methods return modified copies.
type Value struct {
	key      string
	value    string
	metadata map[string]string
}

// New creates a value without metadata.
func New(key, value string) *Value {
	return &Value{
		key:      key,
		value:    value,
		metadata: nil,
	}
}

// Key returns the property key.
func (v *Value) Key() string {
	return v.key
}

// Value returns the property value.
func (v *Value) Value() string {
	return v.value
}

// Source returns the name of the source the value was read from, or "" if unknown.
func (v *Value) Source() string {
	return v.metadata[MetaSource]
}

// Meta returns a single metadata entry.
func (v *Value) Meta(name string) (string, bool) {
	m, ok := v.metadata[name]

	return m, ok
}

// Metadata returns a copy of all metadata entries.
func (v *Value) Metadata() map[string]string {
	if v.metadata == nil {
		return map[string]string{}
	}

	return maps.Clone(v.metadata)
}

// WithValue returns a copy of v carrying the given value.
func (v *Value) WithValue(value string) *Value {
	c := v.clone()
	c.value = value

	return c
}

// WithKey returns a copy of v carrying the given key.
func (v *Value) WithKey(key string) *Value {
	c := v.clone()
	c.key = key

	return c
}

// WithSource returns a copy of v with the source metadata entry set.
func (v *Value) WithSource(name string) *Value {
	return v.WithMetadata(MetaSource, name)
}

// WithMetadata returns a copy of v with one metadata entry added or replaced.
func (v *Value) WithMetadata(name, value string) *Value {
	c := v.clone()
	if c.metadata == nil {
		c.metadata = make(map[string]string, 1)
	}

	c.metadata[name] = value

	return c
}

// Equal reports whether both values have the same key and value.
// Metadata does not participate.
func (v *Value) Equal(other *Value) bool {
	if v == nil || other == nil {
		return v == other
	}

	return v.key == other.key && v.value == other.value
}

// ToMap flattens the value and its metadata into a key/value map.
func (v *Value) ToMap() map[string]string {
	result := make(map[string]string, len(v.metadata)+1)
	result[v.key] = v.value

	for name, meta := range v.metadata {
		result[MetaKey(v.key, name)] = meta
	}

	return result
}

func (v *Value) String() string {
	if len(v.metadata) == 0 {
		return fmt.Sprintf("%s=%s", v.key, v.value)
	}

	names := make([]string, 0, len(v.metadata))
	for name := range v.metadata {
		names = append(names, name)
	}

	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+"="+v.metadata[name])
	}

	return fmt.Sprintf("%s=%s [%s]", v.key, v.value, strings.Join(parts, ", "))
}

func (v *Value) clone() *Value {
	return &Value{
		key:      v.key,
		value:    v.value,
		metadata: maps.Clone(v.metadata),
	}
}

// MetaKey returns the flattened key of a metadata entry, e.g. "_db.host.source".
func MetaKey(key, name string) string {
	return MetaPrefix + key + "." + name
}

// IsMetaKey reports whether key names a flattened metadata entry.
func IsMetaKey(key string) bool {
	return strings.HasPrefix(key, MetaPrefix)
}

// Values flattens a key/value map into values, attaching no metadata.
func Values(entries map[string]string) map[string]*Value {
	result := make(map[string]*Value, len(entries))
	for key, value := range entries {
		result[key] = New(key, value)
	}

	return result
}
