package property

import "strings"

// MetaSources lists every source that contributed to a collected value.
const MetaSources = "sources"

// Combiner resolves several raw values for the same key into one.
// Combine is called once per source in ascending ordinal order; current is nil
// for the first value found.
type Combiner interface {
	Combine(current, next *Value) *Value
}

// CombinerFunc adapts a function to the Combiner interface.
type CombinerFunc func(current, next *Value) *Value

// Combine calls f(current, next).
func (f CombinerFunc) Combine(current, next *Value) *Value {
	return f(current, next)
}

// Override keeps the value of the source with the highest ordinal.
type Override struct{}

// Combine returns next.
func (Override) Combine(_, next *Value) *Value {
	return next
}

// Collect joins the values of all sources with Separator, lowest ordinal first.
type Collect struct {
	Separator string
}

// Combine appends next to current.
func (c Collect) Combine(current, next *Value) *Value {
	if current == nil {
		return next.WithMetadata(MetaSources, next.Source())
	}

	sep := c.Separator
	if sep == "" {
		sep = ","
	}

	sources, _ := current.Meta(MetaSources)

	return next.
		WithValue(current.Value()+sep+next.Value()).
		WithMetadata(MetaSources, strings.TrimPrefix(sources+sep+next.Source(), sep))
}
