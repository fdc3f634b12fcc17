// Package yaml provides a YAML source.Parser.
//
// This package uses github.com/goccy/go-yaml for YAML parsing with native
// PathString support for efficient path navigation. The parser converts
// colon-separated paths (e.g., "api:permissions") to YAML path format
// (e.g., "$.api.permissions") internally and flattens the selected mapping
// into dotted property keys.
//
// Usage:
//
//	parser := yaml.NewParser()
//	props, err := parser.Parse(data, "api:permissions")
//	// props["admin.read"] == "true"
//
// Path Conversion:
//   - Empty path "" -> entire document
//   - Single key "key" -> "$.key"
//   - Nested path "api:permissions" -> "$.api.permissions"
package yaml
