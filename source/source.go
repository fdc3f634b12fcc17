package source

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Default ordinals of the built-in sources.
const (
	DefaultsOrdinal = 0
	FileOrdinal     = 100
	EnvOrdinal      = 300
	MapOrdinal      = 1000
)

// Parser converts raw document bytes into flattened properties.
//
// The path parameter selects a section of the document using colon (:) as the
// separator, e.g. "api:permissions". The section's entries are returned relative
// to it. An empty path selects the whole document.
type Parser interface {
	Parse(data []byte, path string) (map[string]string, error)
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Flatten converts a nested document into dotted keys. Lists of scalars are joined
// with commas; lists containing maps or lists are indexed ("servers.0.host").
// Nil values are dropped.
func Flatten(doc map[string]any) map[string]string {
	result := make(map[string]string)
	flattenInto(result, "", doc)

	return result
}

func flattenInto(result map[string]string, key string, value any) {
	switch v := value.(type) {
	case nil:
		return
	case map[string]any:
		for name, child := range v {
			flattenInto(result, join(key, name), child)
		}
	case map[any]any:
		for name, child := range v {
			flattenInto(result, join(key, fmt.Sprint(name)), child)
		}
	case []any:
		if isScalarList(v) {
			items := make([]string, 0, len(v))
			for _, item := range v {
				items = append(items, scalar(item))
			}

			result[key] = strings.Join(items, ",")

			return
		}

		for i, child := range v {
			flattenInto(result, join(key, strconv.Itoa(i)), child)
		}
	default:
		result[key] = scalar(v)
	}
}

func isScalarList(items []any) bool {
	for _, item := range items {
		switch item.(type) {
		case map[string]any, map[any]any, []any:
			return false
		}
	}

	return true
}

func scalar(value any) string {
	if value == nil {
		return ""
	}

	return fmt.Sprint(value)
}

func join(prefix, name string) string {
	if prefix == "" {
		return name
	}

	return prefix + "." + name
}

// SplitPath splits a colon separated section path.
func SplitPath(path string) []string {
	if path == "" {
		return nil
	}

	return strings.Split(path, ":")
}

// Keys returns the keys of entries in sorted order.
func Keys(entries map[string]string) []string {
	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
