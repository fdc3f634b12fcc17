package config

import (
	"github.com/0xalexb/hjarta-config/property"

	"go.uber.org/fx"
)

// NewModule creates an Fx module supplying a *Configuration built from opts, also
// exposed as property.Reader. Sections are bound with fx.Provide(config.Bind(...)).
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(opts ...Option) fx.Option {
	return fx.Module("config",
		fx.Provide(
			func() *Configuration {
				return New(opts...)
			},
			fx.Annotate(
				func(c *Configuration) *Configuration { return c },
				fx.As(new(property.Reader)),
			),
		),
	)
}
