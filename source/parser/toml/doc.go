// Package toml provides a TOML source.Parser backed by github.com/BurntSushi/toml.
//
// Sections are selected with the same colon-separated paths as the YAML parser,
// e.g. "servers:alpha" selects the [servers.alpha] table.
package toml
