package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/0xalexb/hjarta-config/source"

	"github.com/goccy/go-yaml"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrPathNotFound is returned when the specified path is not found in the YAML document.
var ErrPathNotFound = errors.New("path not found")

// ErrNotMapping is returned when the selected node is not a mapping.
var ErrNotMapping = errors.New("not a mapping")

// Parser implements source.Parser for YAML data.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses YAML data and flattens the mapping found at path. An empty path
// selects the whole document; an empty document yields no properties.
func (p *Parser) Parse(data []byte, path string) (map[string]string, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	var node any

	if path == "" {
		err := yaml.Unmarshal(data, &node)
		if err != nil {
			return nil, fmt.Errorf("unmarshal error: %w", err)
		}
	} else {
		err := readPath(data, path, &node)
		if err != nil {
			return nil, err
		}
	}

	switch doc := node.(type) {
	case nil:
		return map[string]string{}, nil
	case map[string]any:
		return source.Flatten(doc), nil
	default:
		return nil, fmt.Errorf("%w: %q holds %T", ErrNotMapping, path, node)
	}
}

func readPath(data []byte, path string, target any) error {
	pathObj, err := yaml.PathString(convertToYAMLPath(path))
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}

	err = pathObj.Read(bytes.NewReader(data), target)
	if err != nil {
		if yaml.IsNotFoundNodeError(err) {
			return fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		return fmt.Errorf("reading path %q: %w", path, err)
	}

	return nil
}

// convertToYAMLPath converts a colon-separated path to goccy/go-yaml PathString format.
// Examples:
//   - "key" -> "$.key"
//   - "api:permissions" -> "$.api.permissions"
func convertToYAMLPath(path string) string {
	return "$." + strings.Join(source.SplitPath(path), ".")
}
