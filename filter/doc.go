// Package filter implements the filter chain that sits between raw property
// sources and the value handed to an application.
//
// A Manager owns an ordered list of filters and applies all of them to a value
// repeatedly until one full pass changes nothing (a fixed point) or MaxIterations
// passes have run. A filter returning nil vetoes the value: the chain stops and the
// key is treated as absent.
//
// Every invocation receives a Context describing the evaluation: the value being
// filtered, the complete unfiltered snapshot of entries (bulk evaluation) and the
// owning configuration. The snapshot never changes during a pass, so filters that
// look at other keys see the same raw data regardless of filter order.
//
// # Example
//
//	manager := filter.NewManager().AddFilters(
//	    filter.MustRegex(`secret\..*`),
//	    filter.NewPlaceholder(),
//	)
//	value, err := manager.FilterValue(property.New("url", "http://${host}"))
package filter
