package config

import (
	"errors"
	"fmt"

	"github.com/0xalexb/hjarta-config/convert"
)

// Get returns the filtered value of key converted into T.
// Conversion failures are reported as *convert.ConversionError.
func Get[T any](c *Configuration, key string) (T, error) {
	var zero T

	value, err := c.Get(key)
	if err != nil {
		return zero, err
	}

	return convertTo[T](c, key, value)
}

// GetOrDefault returns def when key is missing or suppressed. A present value that
// cannot be converted is still an error.
func GetOrDefault[T any](c *Configuration, key string, def T) (T, error) {
	value, err := c.Get(key)
	if isNotFound(err) {
		return def, nil
	}

	if err != nil {
		var zero T

		return zero, err
	}

	return convertTo[T](c, key, value)
}

func convertTo[T any](c *Configuration, key, value string) (T, error) {
	var zero T

	cc, err := convert.BuilderFor[T](key).WithConfig(c).Build()
	if err != nil {
		return zero, err
	}

	result, err := c.registry.Convert(value, cc)
	if err != nil {
		return zero, err
	}

	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("%w: key %q produced %T", convert.ErrConversionFailed, key, result)
	}

	return typed, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrKeyNotFound)
}
