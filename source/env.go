package source

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/providers/env/v2"
)

// EnvName is the source name of Env.
const EnvName = "env"

// Env reads environment variables. Only variables starting with the prefix are
// visible; keys are derived by KeyMapper, by default stripping the prefix,
// lowercasing and turning underscores into dots (APP_DB_HOST -> db.host).
type Env struct {
	prefix  string
	ordinal int
	mapper  func(name string) string
	environ func() []string
}

// EnvOption configures an Env source.
type EnvOption func(*Env)

// WithEnvOrdinal overrides EnvOrdinal.
func WithEnvOrdinal(ordinal int) EnvOption {
	return func(e *Env) {
		e.ordinal = ordinal
	}
}

// WithKeyMapper replaces the variable name to key mapping. The mapper receives the
// name with the prefix removed; returning "" skips the variable.
func WithKeyMapper(mapper func(name string) string) EnvOption {
	return func(e *Env) {
		e.mapper = mapper
	}
}

// WithEnviron replaces os.Environ as the variable provider.
func WithEnviron(environ func() []string) EnvOption {
	return func(e *Env) {
		e.environ = environ
	}
}

// NewEnv creates an environment source for variables starting with prefix.
func NewEnv(prefix string, opts ...EnvOption) *Env {
	e := &Env{
		prefix:  prefix,
		ordinal: EnvOrdinal,
		mapper:  DefaultKeyMapper,
		environ: os.Environ,
	}

	for _, apply := range opts {
		apply(e)
	}

	return e
}

// DefaultKeyMapper lowercases name and replaces underscores with dots.
func DefaultKeyMapper(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), "_", ".")
}

// Name implements property.Source.
func (e *Env) Name() string {
	return EnvName
}

// Ordinal implements property.Source.
func (e *Env) Ordinal() int {
	return e.ordinal
}

// Properties implements property.Source. Keys stay flat, so APP_DB and APP_DB_HOST
// yield both db and db.host.
func (e *Env) Properties() (map[string]string, error) {
	vars, err := env.Provider("", env.Opt{
		Prefix: e.prefix,
		TransformFunc: func(name, value string) (string, any) {
			return e.mapper(strings.TrimPrefix(name, e.prefix)), value
		},
		EnvironFunc: e.environ,
	}).Read()
	if err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	result := make(map[string]string, len(vars))
	for key, value := range vars {
		result[key] = fmt.Sprint(value)
	}

	return result, nil
}
