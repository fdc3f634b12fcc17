package filter

import (
	"errors"
	"fmt"
	"maps"

	"github.com/0xalexb/hjarta-config/property"
)

// ErrNilValue is returned when a context is created without a value.
var ErrNilValue = errors.New("filter context requires a value")

// ErrNilEntries is returned when a bulk context is created without a snapshot.
var ErrNilEntries = errors.New("filter context requires config entries")

// Context describes one filter evaluation. It is created per key and discarded
// once the chain has finished for that key.
type Context struct {
	property *property.Value
	entries  map[string]string
	config   property.Reader
	single   bool
}

// NewContext creates a context for a single-key lookup. The visible entries are the
// value's own flattened map. config may be nil.
func NewContext(value *property.Value, config property.Reader) (*Context, error) {
	if value == nil {
		return nil, ErrNilValue
	}

	return &Context{
		property: value,
		entries:  value.ToMap(),
		config:   config,
		single:   true,
	}, nil
}

// NewBulkContext creates a context for one key of a bulk enumeration.
// entries is copied; filters only ever read the copy.
func NewBulkContext(value *property.Value, entries map[string]string, config property.Reader) (*Context, error) {
	if entries == nil {
		return nil, ErrNilEntries
	}

	return newBulkContext(value, maps.Clone(entries), config)
}

// newBulkContext shares an already private snapshot between the contexts of one pass.
func newBulkContext(value *property.Value, entries map[string]string, config property.Reader) (*Context, error) {
	if value == nil {
		return nil, ErrNilValue
	}

	return &Context{
		property: value,
		entries:  entries,
		config:   config,
		single:   false,
	}, nil
}

// Property returns the value the evaluation was started for.
func (c *Context) Property() *property.Value {
	return c.property
}

// Entry returns one raw entry of the snapshot.
func (c *Context) Entry(key string) (string, bool) {
	value, ok := c.entries[key]

	return value, ok
}

// Entries returns a copy of the raw snapshot.
func (c *Context) Entries() map[string]string {
	return maps.Clone(c.entries)
}

// Config returns the owning configuration; nil when none was attached.
func (c *Context) Config() property.Reader {
	return c.config
}

// SinglePropertyScoped reports whether a single key is being looked up, as opposed
// to a bulk enumeration of all properties.
func (c *Context) SinglePropertyScoped() bool {
	return c.single
}

func (c *Context) String() string {
	return fmt.Sprintf("FilterContext{property=%s, entries=%d, single=%t}", c.property, len(c.entries), c.single)
}
