package convert

import (
	"reflect"
)

// Converter converts a string into T. It returns false when it cannot handle the
// value; parse failures are never reported as errors or panics.
type Converter[T any] interface {
	Convert(value string, cc *Context) (T, bool)
}

// Func adapts a function to the Converter interface. Each registration of a Func
// adds a new chain entry; Unregister cannot match it.
type Func[T any] func(value string, cc *Context) (T, bool)

// Convert calls f(value, cc).
func (f Func[T]) Convert(value string, cc *Context) (T, bool) {
	return f(value, cc)
}

// Named is implemented by converters that report a display name.
type Named interface {
	Name() string
}

func converterName(converter any) string {
	if n, ok := converter.(Named); ok {
		return n.Name()
	}

	t := reflect.TypeOf(converter)
	if t == nil {
		return "<nil>"
	}

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.Name() != "" {
		return t.Name()
	}

	return t.String()
}

// identity returns the registration identity of a converter. Converters are expected
// to be stateless, so they are identified by concrete type. Functions have no
// usable identity and get a unique one.
func identity(converter any) any {
	t := reflect.TypeOf(converter)
	if t.Kind() == reflect.Func {
		return new(funcIdentity)
	}

	return t
}

type funcIdentity struct{ _ byte }
