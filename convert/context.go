package convert

import (
	"errors"
	"fmt"
	"reflect"
	"slices"

	"github.com/0xalexb/hjarta-config/property"
)

// ErrNilTarget is returned when a context is built without a target type.
var ErrNilTarget = errors.New("conversion context requires a target type")

// Context carries one conversion attempt: the key, the requested type, the owning
// configuration and, when binding struct fields, the field conversion was requested
// for. Apart from the supported-format diagnostics it is read-only.
//
// A Context is not safe for concurrent use; build a new one per attempt.
type Context struct {
	key     string
	target  reflect.Type
	config  property.Reader
	field   *reflect.StructField
	formats *[]string
}

// Key returns the key being converted.
func (c *Context) Key() string {
	return c.key
}

// Target returns the requested type.
func (c *Context) Target() reflect.Type {
	return c.target
}

// Config returns the owning configuration, or nil.
func (c *Context) Config() property.Reader {
	return c.config
}

// Field returns the struct field conversion was requested for.
func (c *Context) Field() (reflect.StructField, bool) {
	if c.field == nil {
		return reflect.StructField{}, false //nolint:exhaustruct // zero value
	}

	return *c.field, true
}

// SupportedFormats returns the formats reported so far.
func (c *Context) SupportedFormats() []string {
	return slices.Clone(*c.formats)
}

// AddSupportedFormats records input formats understood by converter. Entries are
// rendered as "<format> (<converter>)" and kept unique in reporting order.
func (c *Context) AddSupportedFormats(converter any, formats ...string) {
	name := converterName(converter)

	for _, format := range formats {
		entry := fmt.Sprintf("%s (%s)", format, name)
		if !slices.Contains(*c.formats, entry) {
			*c.formats = append(*c.formats, entry)
		}
	}
}

// derive returns a context for a component type that reports into the same diagnostics.
func (c *Context) derive(target reflect.Type) *Context {
	return &Context{
		key:     c.key,
		target:  target,
		config:  c.config,
		field:   c.field,
		formats: c.formats,
	}
}

func (c *Context) String() string {
	return fmt.Sprintf("ConversionContext{key=%s, target=%v, formats=%v}", c.key, c.target, *c.formats)
}

// Builder assembles a Context.
type Builder struct {
	key    string
	target reflect.Type
	config property.Reader
	field  *reflect.StructField
}

// NewBuilder starts a context for key and target.
func NewBuilder(key string, target reflect.Type) *Builder {
	return &Builder{
		key:    key,
		target: target,
		config: nil,
		field:  nil,
	}
}

// BuilderFor starts a context for key with T as target.
func BuilderFor[T any](key string) *Builder {
	return NewBuilder(key, reflect.TypeFor[T]())
}

// WithConfig attaches the owning configuration.
func (b *Builder) WithConfig(config property.Reader) *Builder {
	b.config = config

	return b
}

// WithField attaches the struct field conversion is requested for.
func (b *Builder) WithField(field reflect.StructField) *Builder {
	b.field = &field

	return b
}

// Build returns the context.
func (b *Builder) Build() (*Context, error) {
	if b.target == nil {
		return nil, ErrNilTarget
	}

	formats := make([]string, 0)

	return &Context{
		key:     b.key,
		target:  b.target,
		config:  b.config,
		field:   b.field,
		formats: &formats,
	}, nil
}
