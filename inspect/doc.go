// Package inspect serves a read-only HTTP view of a config.Configuration.
//
// Endpoints, relative to Config.Prefix:
//
//	GET /properties          filtered properties (bulk evaluation, masks apply)
//	GET /properties/{key...} one filtered property with its metadata, 404 when missing or suppressed
//	GET /filters             the filter chain
//	GET /converters          the converter chains per target type
//
// The server is meant for local diagnostics and binds to the loopback interface by default.
package inspect
