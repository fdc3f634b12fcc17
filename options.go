package hjarta

import (
	"io"

	"github.com/0xalexb/hjarta-config/config"
	"github.com/0xalexb/hjarta-config/inspect"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules   []fx.Option
	LogLevel  string
	LogFormat string
	LogOutput io.Writer
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithConfiguration adds the config module, supplying *config.Configuration and
// property.Reader built from opts. Use it once per application.
func WithConfiguration(opts ...config.Option) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, config.NewModule(opts...))
	}
}

// WithInspector adds the read-only HTTP inspection server for the configuration.
// Without options its Config must be provided to the container, e.g. with
// WithModules(fx.Provide(config.Bind(&inspect.Config{}, "inspect"))).
func WithInspector(opts ...inspect.Option) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, inspect.NewModule(opts...))
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat selects "json" (default) or "text" log output.
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}

// WithLogOutput replaces os.Stderr as the log destination.
func WithLogOutput(w io.Writer) Option {
	return func(opts *Options) {
		opts.LogOutput = w
	}
}
