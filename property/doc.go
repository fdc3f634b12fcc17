// Package property holds the raw material of the configuration pipeline:
// immutable key/value entries with metadata, the Source interface implemented by
// property sources, and the Combiner policies that resolve several raw values for
// the same key into one before filtering.
//
// Metadata attached to a value is flattened by Value.ToMap into entries prefixed
// with MetaPrefix:
//
//	db.host              -> "localhost"
//	_db.host.source      -> "env"
package property
