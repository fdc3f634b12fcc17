package convert

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrConversionFailed matches every ConversionError.
var ErrConversionFailed = errors.New("conversion failed")

// ErrNoConverter is wrapped by a ConversionError when the target type has no converters.
var ErrNoConverter = errors.New("no converter registered")

// ConversionError reports that no converter could handle a value.
// The value itself is kept out of Error() as it may be a secret.
type ConversionError struct {
	Key              string
	Target           reflect.Type
	Value            string
	SupportedFormats []string
	Err              error
}

func (e *ConversionError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "unable to convert key %q to %v", e.Key, e.Target)

	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}

	if len(e.SupportedFormats) > 0 {
		b.WriteString("; supported formats: ")
		b.WriteString(strings.Join(e.SupportedFormats, ", "))
	}

	return b.String()
}

// Unwrap exposes ErrConversionFailed and the cause, if any.
func (e *ConversionError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrConversionFailed}
	}

	return []error{ErrConversionFailed, e.Err}
}
