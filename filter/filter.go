package filter

import (
	"cmp"
	"reflect"

	"github.com/0xalexb/hjarta-config/property"
)

// Filter transforms or suppresses a single value.
//
// Returning the value unchanged (or an Equal copy) leaves it as is, returning nil
// removes the key. Filters should converge: applying a filter to its own output
// must eventually stop changing it. A returned error aborts the lookup.
type Filter interface {
	Filter(value *property.Value, fc *Context) (*property.Value, error)
}

// Func adapts a function to the Filter interface. Functions have no identity in Go,
// so a Func is never recognized as already registered and can only be removed by
// ClearFilters; use a named type when that matters.
type Func func(value *property.Value, fc *Context) (*property.Value, error)

// Filter calls f(value, fc).
func (f Func) Filter(value *property.Value, fc *Context) (*property.Value, error) {
	return f(value, fc)
}

// Named is implemented by filters that report a display name.
type Named interface {
	Name() string
}

// Described is implemented by filters that describe what they do.
type Described interface {
	Description() string
}

// Prioritized is implemented by filters that carry an ordering priority.
// Filters without one have priority 0.
type Prioritized interface {
	Priority() int
}

// ByPriority orders filters by descending priority. Use with Manager.SortFilters.
func ByPriority(a, b Filter) int {
	return cmp.Compare(priorityOf(b), priorityOf(a))
}

// Info describes a registered filter.
type Info struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Priority    int    `json:"priority"`
}

// Describe returns the display information of f.
func Describe(f Filter) Info {
	return Info{
		Name:        nameOf(f),
		Description: descriptionOf(f),
		Priority:    priorityOf(f),
	}
}

func priorityOf(f Filter) int {
	if p, ok := f.(Prioritized); ok {
		return p.Priority()
	}

	return 0
}

func nameOf(f Filter) string {
	if n, ok := f.(Named); ok {
		return n.Name()
	}

	return reflect.TypeOf(f).String()
}

func descriptionOf(f Filter) string {
	if d, ok := f.(Described); ok {
		return d.Description()
	}

	return ""
}

// sameFilter compares filter instances. Function-backed and other non-comparable
// filters never match, including comparable structs holding such a filter.
func sameFilter(a, b Filter) bool {
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !va.Comparable() || !vb.Comparable() {
		return false
	}

	return va.Equal(vb)
}
