package toml

import (
	"errors"
	"fmt"
	"time"

	"github.com/0xalexb/hjarta-config/source"

	"github.com/BurntSushi/toml"
)

var (
	// ErrEmptyData is returned when the input data is empty.
	ErrEmptyData = errors.New("empty data")
	// ErrPathNotFound is returned when the specified path is not found in the TOML document.
	ErrPathNotFound = errors.New("path not found")
	// ErrNotTable is returned when the selected node is not a table.
	ErrNotTable = errors.New("not a table")
)

// Parser implements source.Parser for TOML data.
type Parser struct{}

// NewParser creates a new TOML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes TOML data and flattens the table found at path.
func (p *Parser) Parse(data []byte, path string) (map[string]string, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	var doc map[string]any

	err := toml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	var node any = doc

	for _, part := range source.SplitPath(path) {
		table, ok := node.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrNotTable, path)
		}

		node, ok = table[part]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}
	}

	table, ok := node.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q holds %T", ErrNotTable, path, node)
	}

	return source.Flatten(normalize(table).(map[string]any)), nil
}

// normalize turns TOML specific values into forms Flatten renders the way the
// converters read them back.
func normalize(node any) any {
	switch v := node.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, child := range v {
			out[key] = normalize(child)
		}

		return out
	case []map[string]any:
		out := make([]any, 0, len(v))
		for _, child := range v {
			out = append(out, normalize(child))
		}

		return out
	case []any:
		out := make([]any, 0, len(v))
		for _, child := range v {
			out = append(out, normalize(child))
		}

		return out
	case time.Time:
		return v.Format(time.RFC3339Nano)
	case toml.LocalDate, toml.LocalTime, toml.LocalDateTime:
		return fmt.Sprint(v)
	default:
		return v
	}
}
