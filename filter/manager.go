package filter

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/0xalexb/hjarta-config/property"
)

// MaxIterations bounds the number of full chain passes per value.
const MaxIterations = 10

// Manager applies an ordered list of filters until values reach a fixed point.
//
// Mutations are serialized and publish a new immutable filter list; filtering
// always reads one consistent list without locking, so filters may be changed
// while lookups are in flight.
type Manager struct {
	mu            sync.Mutex
	filters       atomic.Pointer[[]Filter]
	maxIterations int
	defaults      func() []Filter
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithMaxIterations overrides MaxIterations. Values below 1 are ignored.
func WithMaxIterations(n int) ManagerOption {
	return func(m *Manager) {
		if n > 0 {
			m.maxIterations = n
		}
	}
}

// WithDefaults sets the discovery function used by AddDefaultFilters.
func WithDefaults(discover func() []Filter) ManagerOption {
	return func(m *Manager) {
		if discover != nil {
			m.defaults = discover
		}
	}
}

// NewManager creates a Manager without filters.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		mu:            sync.Mutex{},
		filters:       atomic.Pointer[[]Filter]{},
		maxIterations: MaxIterations,
		defaults:      Defaults,
	}

	for _, apply := range opts {
		apply(m)
	}

	m.filters.Store(&[]Filter{})

	return m
}

// Filters returns the current filter list.
func (m *Manager) Filters() []Filter {
	return slices.Clone(*m.filters.Load())
}

// AddFilters appends filters not already present.
func (m *Manager) AddFilters(filters ...Filter) *Manager {
	return m.update(func(current []Filter) []Filter {
		for _, f := range filters {
			if f == nil || contains(current, f) {
				continue
			}

			current = append(current, f)
		}

		return current
	})
}

// RemoveFilters removes the given filter instances.
func (m *Manager) RemoveFilters(filters ...Filter) *Manager {
	return m.update(func(current []Filter) []Filter {
		return slices.DeleteFunc(current, func(f Filter) bool {
			return contains(filters, f)
		})
	})
}

// SortFilters reorders the filters with a comparator such as ByPriority.
// The sort is stable.
func (m *Manager) SortFilters(compare func(a, b Filter) int) *Manager {
	return m.update(func(current []Filter) []Filter {
		slices.SortStableFunc(current, compare)

		return current
	})
}

// ClearFilters removes all filters.
func (m *Manager) ClearFilters() *Manager {
	return m.update(func([]Filter) []Filter {
		return []Filter{}
	})
}

// AddDefaultFilters adds the filters returned by the discovery function
// (Defaults unless WithDefaults was given).
func (m *Manager) AddDefaultFilters() *Manager {
	return m.AddFilters(m.defaults()...)
}

func (m *Manager) update(mutate func([]Filter) []Filter) *Manager {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := mutate(slices.Clone(*m.filters.Load()))
	m.filters.Store(&next)

	return m
}

// FilterValue filters a single value without an owning configuration.
// A nil result means a filter suppressed the value.
func (m *Manager) FilterValue(value *property.Value) (*property.Value, error) {
	return m.FilterValueWith(value, nil)
}

// FilterValueWith filters a single value on behalf of config.
func (m *Manager) FilterValueWith(value *property.Value, config property.Reader) (*property.Value, error) {
	fc, err := NewContext(value, config)
	if err != nil {
		return nil, err
	}

	return m.run(*m.filters.Load(), fc)
}

// ApplyFilters filters every entry of raw. Each filter sees the complete unfiltered
// raw map through its Context, whichever key is being processed. Suppressed entries
// are left out of the result.
//
// A filter may rename a key. The rename is dropped, keeping the original key, when
// the new key belongs to another raw entry or was already taken by an earlier
// rename in key order.
func (m *Manager) ApplyFilters(raw map[string]*property.Value, config property.Reader) (map[string]*property.Value, error) {
	filters := *m.filters.Load()

	entries := make(map[string]string, len(raw))
	for key, value := range raw {
		if value != nil {
			entries[key] = value.Value()
		}
	}

	result := make(map[string]*property.Value, len(raw))

	for _, key := range slices.Sorted(maps.Keys(raw)) {
		value := raw[key]

		fc, err := newBulkContext(value, entries, config)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}

		filtered, err := m.run(filters, fc)
		if err != nil {
			return nil, err
		}

		if filtered == nil {
			continue
		}

		if renamed := filtered.Key(); renamed != key {
			_, isRaw := raw[renamed]
			_, taken := result[renamed]

			if isRaw || taken {
				slog.Debug("filter rename collides with another key", "key", key, "renamed", renamed)

				filtered = filtered.WithKey(key)
			}
		}

		result[filtered.Key()] = filtered
	}

	return result, nil
}

func (m *Manager) run(filters []Filter, fc *Context) (*property.Value, error) {
	current := fc.Property()

	for iteration := range m.maxIterations {
		changed := 0

		for _, f := range filters {
			next, err := f.Filter(current, fc)
			if err != nil {
				return nil, fmt.Errorf("filter %s on key %q: %w", nameOf(f), current.Key(), err)
			}

			if next == nil {
				slog.Debug("value suppressed by filter", "key", current.Key(), "filter", nameOf(f))

				return nil, nil //nolint:nilnil // a nil value is the suppression result
			}

			if !next.Equal(current) {
				changed++
			}

			current = next
		}

		if changed == 0 {
			break
		}

		if iteration == m.maxIterations-1 {
			slog.Warn("max filter loop count reached",
				"key", fc.Property().Key(),
				"iterations", m.maxIterations,
			)
		}
	}

	return current, nil
}

// String renders the registered filters with their descriptions.
func (m *Manager) String() string {
	filters := *m.filters.Load()

	var b strings.Builder

	b.WriteString("FilterManager[\n")

	for _, f := range filters {
		b.WriteString("  ")
		b.WriteString(nameOf(f))

		if desc := descriptionOf(f); desc != "" {
			b.WriteString(": ")
			b.WriteString(desc)
		}

		b.WriteString("\n")
	}

	b.WriteString("]")

	return b.String()
}

func contains(filters []Filter, f Filter) bool {
	return slices.ContainsFunc(filters, func(candidate Filter) bool {
		return sameFilter(candidate, f)
	})
}
