package config

import (
	"fmt"
	"log/slog"

	"github.com/0xalexb/hjarta-config/convert"
	"github.com/0xalexb/hjarta-config/filter"
	"github.com/0xalexb/hjarta-config/property"
)

// ErrKeyNotFound is returned when a key is absent from every source or was suppressed by a filter.
var ErrKeyNotFound = property.ErrKeyNotFound

// Configuration combines sources, filters and converters. It is safe for concurrent use.
type Configuration struct {
	sources  []property.Source
	filters  *filter.Manager
	registry *convert.Registry
	combiner property.Combiner

	extraFilters   []filter.Filter
	defaultFilters bool
}

// Option configures a Configuration.
type Option func(*Configuration)

// WithSources adds property sources.
func WithSources(sources ...property.Source) Option {
	return func(c *Configuration) {
		for _, src := range sources {
			if src != nil {
				c.sources = append(c.sources, src)
			}
		}
	}
}

// WithFilters adds filters to the filter chain.
func WithFilters(filters ...filter.Filter) Option {
	return func(c *Configuration) {
		c.extraFilters = append(c.extraFilters, filters...)
	}
}

// WithDefaultFilters loads the default filters of the filter manager.
func WithDefaultFilters() Option {
	return func(c *Configuration) {
		c.defaultFilters = true
	}
}

// WithFilterManager replaces the filter manager. Filters added with WithFilters and
// WithDefaultFilters are added to it.
func WithFilterManager(m *filter.Manager) Option {
	return func(c *Configuration) {
		if m != nil {
			c.filters = m
		}
	}
}

// WithConverters replaces the default converter registry.
func WithConverters(r *convert.Registry) Option {
	return func(c *Configuration) {
		if r != nil {
			c.registry = r
		}
	}
}

// WithCombiner replaces property.Override as the combination policy.
func WithCombiner(combiner property.Combiner) Option {
	return func(c *Configuration) {
		if combiner != nil {
			c.combiner = combiner
		}
	}
}

// New creates a Configuration. Without options it has no sources, no filters and
// the default converters.
func New(opts ...Option) *Configuration {
	c := &Configuration{
		sources:        nil,
		filters:        nil,
		registry:       nil,
		combiner:       property.Override{},
		extraFilters:   nil,
		defaultFilters: false,
	}

	for _, apply := range opts {
		apply(c)
	}

	if c.filters == nil {
		c.filters = filter.NewManager()
	}

	if c.registry == nil {
		c.registry = convert.NewDefaultRegistry()
	}

	if c.defaultFilters {
		c.filters.AddDefaultFilters()
	}

	c.filters.AddFilters(c.extraFilters...)
	c.sources = property.SortSources(c.sources)
	c.extraFilters = nil

	return c
}

// Sources returns the sources in ascending ordinal order.
func (c *Configuration) Sources() []property.Source {
	return append([]property.Source(nil), c.sources...)
}

// Filters returns the filter manager.
func (c *Configuration) Filters() *filter.Manager {
	return c.filters
}

// Converters returns the converter registry.
func (c *Configuration) Converters() *convert.Registry {
	return c.registry
}

// Snapshot returns the combined raw values of all keys before filtering.
func (c *Configuration) Snapshot() (map[string]*property.Value, error) {
	result := make(map[string]*property.Value)

	for _, src := range c.sources {
		props, err := src.Properties()
		if err != nil {
			return nil, fmt.Errorf("source %q: %w", src.Name(), err)
		}

		for key, raw := range props {
			next := property.New(key, raw).WithSource(src.Name())

			combined := c.combiner.Combine(result[key], next)
			if combined == nil {
				delete(result, key)

				continue
			}

			result[key] = combined
		}
	}

	return result, nil
}

func (c *Configuration) raw(key string) (*property.Value, error) {
	var current *property.Value

	for _, src := range c.sources {
		props, err := src.Properties()
		if err != nil {
			return nil, fmt.Errorf("source %q: %w", src.Name(), err)
		}

		raw, ok := props[key]
		if !ok {
			continue
		}

		current = c.combiner.Combine(current, property.New(key, raw).WithSource(src.Name()))
	}

	return current, nil
}

// Raw implements property.Reader. It returns the combined value of key before
// filtering. Source errors are logged and reported as a missing key.
func (c *Configuration) Raw(key string) (*property.Value, bool) {
	value, err := c.raw(key)
	if err != nil {
		slog.Warn("reading raw property failed", "key", key, "error", err)

		return nil, false
	}

	return value, value != nil
}

// Value returns the filtered value of key.
func (c *Configuration) Value(key string) (*property.Value, error) {
	raw, err := c.raw(key)
	if err != nil {
		return nil, err
	}

	if raw == nil {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}

	filtered, err := c.filters.FilterValueWith(raw, c)
	if err != nil {
		return nil, fmt.Errorf("filtering key %q: %w", key, err)
	}

	if filtered == nil {
		slog.Debug("property suppressed by filter", "key", key)

		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}

	return filtered, nil
}

// Get implements property.Reader. It returns the filtered value of key.
func (c *Configuration) Get(key string) (string, error) {
	value, err := c.Value(key)
	if err != nil {
		return "", err
	}

	return value.Value(), nil
}

// GetOrDefault returns def when key is missing or suppressed. Other errors are returned.
func (c *Configuration) GetOrDefault(key, def string) (string, error) {
	value, err := c.Get(key)
	if isNotFound(err) {
		return def, nil
	}

	return value, err
}

// Entries returns every filtered value. Each filter sees the complete raw snapshot.
func (c *Configuration) Entries() (map[string]*property.Value, error) {
	snapshot, err := c.Snapshot()
	if err != nil {
		return nil, err
	}

	entries, err := c.filters.ApplyFilters(snapshot, c)
	if err != nil {
		return nil, fmt.Errorf("filtering properties: %w", err)
	}

	return entries, nil
}

// Properties returns every filtered key and value.
func (c *Configuration) Properties() (map[string]string, error) {
	entries, err := c.Entries()
	if err != nil {
		return nil, err
	}

	result := make(map[string]string, len(entries))
	for key, value := range entries {
		result[key] = value.Value()
	}

	return result, nil
}
