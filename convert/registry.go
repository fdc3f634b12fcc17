package convert

import (
	"cmp"
	"log/slog"
	"maps"
	"reflect"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
)

// Info describes a registered converter.
type Info struct {
	Name     string
	Target   reflect.Type
	Priority int
}

type entry struct {
	info Info
	id   any
	call func(value string, cc *Context) (any, bool)
}

type table map[reflect.Type][]entry

// Registry maps target types to ordered converter chains.
//
// Registration is serialized and publishes a fresh table; Convert reads the current
// table without locking.
type Registry struct {
	mu    sync.Mutex
	table atomic.Pointer[table]
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	r := &Registry{
		mu:    sync.Mutex{},
		table: atomic.Pointer[table]{},
	}
	r.table.Store(&table{})

	return r
}

// RegisterOption configures a registration.
type RegisterOption func(*Info)

// WithPriority sets the priority; chains run in descending priority, ties in
// registration order. The default is 0.
func WithPriority(priority int) RegisterOption {
	return func(info *Info) {
		info.Priority = priority
	}
}

// WithName overrides the display name.
func WithName(name string) RegisterOption {
	return func(info *Info) {
		info.Name = name
	}
}

// Register adds converter to the chain of T. Registering the same converter type
// twice is a no-op.
func Register[T any](r *Registry, converter Converter[T], opts ...RegisterOption) *Registry {
	target := reflect.TypeFor[T]()
	info := Info{
		Name:     converterName(converter),
		Target:   target,
		Priority: 0,
	}

	for _, apply := range opts {
		apply(&info)
	}

	id := identity(converter)

	return r.update(func(t table) {
		chain := t[target]
		if slices.ContainsFunc(chain, func(e entry) bool { return e.id == id }) {
			return
		}

		chain = append(slices.Clone(chain), entry{
			info: info,
			id:   id,
			call: func(value string, cc *Context) (any, bool) {
				return converter.Convert(value, cc)
			},
		})
		slices.SortStableFunc(chain, func(a, b entry) int {
			return cmp.Compare(b.info.Priority, a.info.Priority)
		})

		t[target] = chain
	})
}

// Unregister removes converter from the chain of T.
func Unregister[T any](r *Registry, converter Converter[T]) *Registry {
	target := reflect.TypeFor[T]()
	id := identity(converter)

	return r.update(func(t table) {
		chain := slices.DeleteFunc(slices.Clone(t[target]), func(e entry) bool { return e.id == id })
		if len(chain) == 0 {
			delete(t, target)

			return
		}

		t[target] = chain
	})
}

// Sort reorders every chain with compare. The sort is stable.
func (r *Registry) Sort(compare func(a, b Info) int) *Registry {
	return r.update(func(t table) {
		for target, chain := range t {
			chain = slices.Clone(chain)
			slices.SortStableFunc(chain, func(a, b entry) int {
				return compare(a.info, b.info)
			})
			t[target] = chain
		}
	})
}

// Clear removes all converters.
func (r *Registry) Clear() *Registry {
	return r.update(func(t table) {
		clear(t)
	})
}

func (r *Registry) update(mutate func(table)) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := maps.Clone(*r.table.Load())
	mutate(next)
	r.table.Store(&next)

	return r
}

// Converters lists the chain registered for target.
func (r *Registry) Converters(target reflect.Type) []Info {
	chain := (*r.table.Load())[target]

	infos := make([]Info, 0, len(chain))
	for _, e := range chain {
		infos = append(infos, e.info)
	}

	return infos
}

// Types lists all types with a chain, ordered by name.
func (r *Registry) Types() []reflect.Type {
	types := slices.Collect(maps.Keys(*r.table.Load()))
	slices.SortFunc(types, func(a, b reflect.Type) int {
		return strings.Compare(a.String(), b.String())
	})

	return types
}

// Supports reports whether values of target can be converted, directly or through
// a compatible form.
func (r *Registry) Supports(target reflect.Type) bool {
	return r.supports(*r.table.Load(), target)
}

func (r *Registry) supports(t table, target reflect.Type) bool {
	if len(t[target]) > 0 {
		return true
	}

	switch target.Kind() { //nolint:exhaustive // other kinds have no compatible form
	case reflect.Pointer, reflect.Slice:
		return r.supports(t, target.Elem())
	default:
		base, ok := basicTypes[target.Kind()]

		return ok && base != target && len(t[base]) > 0
	}
}

// Convert converts value into cc.Target(). It returns a *ConversionError when no
// converter handled the value.
func (r *Registry) Convert(value string, cc *Context) (any, error) {
	result, ok := r.convert(*r.table.Load(), value, cc)
	if !ok {
		var cause error
		if !r.supports(*r.table.Load(), cc.Target()) {
			cause = ErrNoConverter
		}

		return nil, &ConversionError{
			Key:              cc.Key(),
			Target:           cc.Target(),
			Value:            value,
			SupportedFormats: cc.SupportedFormats(),
			Err:              cause,
		}
	}

	return result, nil
}

func (r *Registry) convert(t table, value string, cc *Context) (any, bool) {
	target := cc.Target()

	if chain := t[target]; len(chain) > 0 {
		for _, e := range chain {
			result, ok := e.call(value, cc)
			if ok {
				return result, true
			}

			slog.Debug("converter could not handle value",
				"key", cc.Key(),
				"target", target.String(),
				"converter", e.info.Name,
			)
		}

		return nil, false
	}

	switch target.Kind() { //nolint:exhaustive // other kinds have no compatible form
	case reflect.Pointer:
		return r.convertPointer(t, value, cc)
	case reflect.Slice:
		return r.convertSlice(t, value, cc)
	default:
		base, ok := basicTypes[target.Kind()]
		if !ok || base == target {
			return nil, false
		}

		result, ok := r.convert(t, value, cc.derive(base))
		if !ok {
			return nil, false
		}

		return reflect.ValueOf(result).Convert(target).Interface(), true
	}
}

func (r *Registry) convertPointer(t table, value string, cc *Context) (any, bool) {
	elem := cc.Target().Elem()

	result, ok := r.convert(t, value, cc.derive(elem))
	if !ok {
		return nil, false
	}

	ptr := reflect.New(elem)
	ptr.Elem().Set(reflect.ValueOf(result))

	return ptr.Interface(), true
}

func (r *Registry) convertSlice(t table, value string, cc *Context) (any, bool) {
	target := cc.Target()
	elemCtx := cc.derive(target.Elem())

	cc.AddSupportedFormats(sliceConverter{}, "<item>,<item>,...")

	parts := SplitList(value)
	result := reflect.MakeSlice(target, 0, len(parts))

	for _, part := range parts {
		item, ok := r.convert(t, part, elemCtx)
		if !ok {
			return nil, false
		}

		result = reflect.Append(result, reflect.ValueOf(item))
	}

	return result.Interface(), true
}

type sliceConverter struct{}

// SplitList splits a comma separated list, trimming items. An empty or blank
// value yields no items.
func SplitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return []string{}
	}

	parts := strings.Split(value, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}

	return parts
}

//nolint:gochecknoglobals // read-only lookup table
var basicTypes = map[reflect.Kind]reflect.Type{
	reflect.Bool:    reflect.TypeFor[bool](),
	reflect.Int:     reflect.TypeFor[int](),
	reflect.Int8:    reflect.TypeFor[int8](),
	reflect.Int16:   reflect.TypeFor[int16](),
	reflect.Int32:   reflect.TypeFor[int32](),
	reflect.Int64:   reflect.TypeFor[int64](),
	reflect.Uint:    reflect.TypeFor[uint](),
	reflect.Uint8:   reflect.TypeFor[uint8](),
	reflect.Uint16:  reflect.TypeFor[uint16](),
	reflect.Uint32:  reflect.TypeFor[uint32](),
	reflect.Uint64:  reflect.TypeFor[uint64](),
	reflect.Float32: reflect.TypeFor[float32](),
	reflect.Float64: reflect.TypeFor[float64](),
	reflect.String:  reflect.TypeFor[string](),
}

// To converts value into T using r.
func To[T any](r *Registry, key, value string) (T, error) {
	var zero T

	cc, err := BuilderFor[T](key).Build()
	if err != nil {
		return zero, err
	}

	result, err := r.Convert(value, cc)
	if err != nil {
		return zero, err
	}

	typed, ok := result.(T)
	if !ok {
		return zero, &ConversionError{
			Key:              key,
			Target:           cc.Target(),
			Value:            value,
			SupportedFormats: cc.SupportedFormats(),
			Err:              nil,
		}
	}

	return typed, nil
}
