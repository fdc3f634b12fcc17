// Package convert turns filtered string values into typed Go values.
//
// A Registry keeps, per target type, an ordered chain of converters. Conversion
// walks the chain and commits to the first converter that reports success; later
// converters are never consulted. Converters describe the input formats they
// understand on the Context as they run, and when the whole chain fails those
// descriptions end up in the returned ConversionError.
//
// Types without a chain of their own are still handled when they are a pointer
// or slice of a supported type, or a named type over a supported basic kind:
//
//	type Port uint16        // uses the uint16 chain
//	[]time.Duration         // "1s, 5m" -> two durations
//	*big.Int                // registered directly
//
// Registration publishes a new immutable table; conversions in flight keep using
// the table they started with.
package convert
