package inspect

import (
	"log/slog"

	"github.com/0xalexb/hjarta-config/config"

	"go.uber.org/fx"
)

// NewModule creates an Fx module serving the inspection endpoints for the
// *config.Configuration found in the container. If any options are passed, the
// module supplies Config from them; otherwise Config must be provided externally,
// e.g. with fx.Provide(config.Bind(&inspect.Config{}, "inspect")).
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(opts ...Option) fx.Option {
	var cfg Config

	for _, apply := range opts {
		apply(&cfg)
	}

	var moduleOpts []fx.Option

	if len(opts) > 0 {
		moduleOpts = append(moduleOpts, fx.Supply(&cfg))
	}

	moduleOpts = append(moduleOpts, fx.Invoke(
		func(lifecycle fx.Lifecycle, shutdowner fx.Shutdowner, configuration *config.Configuration, inspectCfg *Config) error {
			serverCfg := *inspectCfg
			serverCfg.SetDefaults()

			handler, err := NewHandler(configuration, serverCfg.Prefix)
			if err != nil {
				return err
			}

			srv, err := NewServer(handler, serverCfg, func() {
				shutdownErr := shutdowner.Shutdown()
				if shutdownErr != nil {
					slog.Error("failed to trigger shutdown", "error", shutdownErr)
				}
			})
			if err != nil {
				return err
			}

			lifecycle.Append(fx.Hook{
				OnStart: srv.Start,
				OnStop:  srv.Stop,
			})

			return nil
		},
	))

	return fx.Module("inspect", moduleOpts...)
}
