package config

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/0xalexb/hjarta-config/convert"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
)

// TagName is the struct tag read by Bind.
const TagName = "config"

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

//nolint:gochecknoglobals // validator caches struct metadata and is safe for concurrent use
var structValidator = sync.OnceValue(func() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
})

// Bind returns a function that decodes the filtered properties below prefix into
// target, sets defaults and validates it. An empty prefix binds every property.
//
// Keys are split on dots into nested sections; a key that is both a value and a
// section ("db" and "db.host") binds as the section.
func Bind[T any](target *T, prefix string) func(*Configuration) (*T, error) {
	return func(c *Configuration) (*T, error) {
		props, err := c.Properties()
		if err != nil {
			return nil, fmt.Errorf("reading properties: %w", err)
		}

		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			DecodeHook:       c.decodeHook(),
			Result:           target,
			TagName:          TagName,
			WeaklyTypedInput: true,
		})
		if err != nil {
			return nil, fmt.Errorf("creating decoder: %w", err)
		}

		err = decoder.Decode(nest(section(props, prefix), prefix))
		if err != nil {
			return nil, fmt.Errorf("decoding %q: %w", prefix, err)
		}

		targetDefaulter, isDefaulter := any(target).(Defaulter)
		if isDefaulter {
			changed := targetDefaulter.SetDefaults()
			if changed {
				slog.Info("defaults applied", slog.String("prefix", prefix))
			}
		}

		targetValidatable, isValidatable := any(target).(Validator)
		if isValidatable {
			err := targetValidatable.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating error: %w", err)
			}
		}

		if reflect.Indirect(reflect.ValueOf(target)).Kind() == reflect.Struct {
			err := structValidator().Struct(target)
			if err != nil {
				return nil, fmt.Errorf("validating error: %w", err)
			}
		}

		return target, nil
	}
}

// keyedValue is a nested leaf that remembers its full property key, so conversion
// errors name the property rather than the bound section.
type keyedValue struct {
	key   string
	value string
}

// decodeHook converts leaves with the registry. Types without a converter get the
// plain string and are left to mapstructure.
func (c *Configuration) decodeHook() mapstructure.DecodeHookFuncType {
	return func(_, to reflect.Type, data any) (any, error) {
		leaf, ok := data.(keyedValue)
		if !ok {
			if to.Kind() == reflect.Interface {
				return plain(data), nil
			}

			return data, nil
		}

		if to.Kind() == reflect.Interface || to == reflect.TypeFor[string]() {
			return leaf.value, nil
		}

		cc, err := convert.NewBuilder(leaf.key, to).WithConfig(c).Build()
		if err != nil {
			return nil, err
		}

		result, err := c.registry.Convert(leaf.value, cc)
		if errors.Is(err, convert.ErrNoConverter) {
			return leaf.value, nil
		}

		if err != nil {
			return nil, err
		}

		return result, nil
	}
}

// plain strips keyedValue leaves from sections decoded into interface values.
func plain(data any) any {
	switch v := data.(type) {
	case keyedValue:
		return v.value
	case map[string]any:
		result := make(map[string]any, len(v))
		for key, child := range v {
			result[key] = plain(child)
		}

		return result
	default:
		return data
	}
}

func section(props map[string]string, prefix string) map[string]string {
	if prefix == "" {
		return props
	}

	result := make(map[string]string)

	for key, value := range props {
		rest, ok := strings.CutPrefix(key, prefix+".")
		if ok && rest != "" {
			result[rest] = value
		}
	}

	return result
}

func nest(props map[string]string, prefix string) map[string]any {
	keys := make([]string, 0, len(props))
	for key := range props {
		keys = append(keys, key)
	}

	// Shorter keys first, so sections replace the plain values they shadow.
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) < len(keys[j])
		}

		return keys[i] < keys[j]
	})

	root := make(map[string]any)

	for _, key := range keys {
		parts := strings.Split(key, ".")
		node := root

		for _, part := range parts[:len(parts)-1] {
			child, ok := node[part].(map[string]any)
			if !ok {
				child = make(map[string]any)
				node[part] = child
			}

			node = child
		}

		leaf := parts[len(parts)-1]
		if _, isSection := node[leaf].(map[string]any); isSection {
			continue
		}

		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		node[leaf] = keyedValue{key: fullKey, value: props[key]}
	}

	return root
}
