// Package source provides property sources for the configuration pipeline.
//
// A source yields a flat snapshot of string keys and values. Nested documents are
// flattened with dots ("database.connection.timeout") and lists of scalars are
// joined with commas so that the slice conversion of package convert can split
// them again.
//
// Available sources:
//   - Map: fixed in-memory entries
//   - Env: environment variables, read flat through the koanf env provider
//   - File: a DataFetcher (e.g. source/fetcher/file) combined with a Parser
//     (source/parser/yaml, source/parser/toml)
//
// Default ordinals follow the usual precedence: defaults < files < environment.
package source
