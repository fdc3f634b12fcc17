// Package hjarta wires a filtered, typed configuration into an Fx application.
//
//	app := hjarta.NewApp(
//	    hjarta.WithLogLevel("info"),
//	    hjarta.WithConfiguration(
//	        config.WithSources(source.NewEnv("APP_")),
//	        config.WithDefaultFilters(),
//	    ),
//	    hjarta.WithInspector(inspect.WithAddress("127.0.0.1:8686")),
//	    hjarta.WithModules(fx.Provide(config.Bind(&DBConfig{}, "db"))),
//	)
//	app.Run()
//
// The packages below do the actual work: property (values and sources), filter
// (the bounded filter chain), convert (typed conversion), config (the
// Configuration combining them) and source (environment, file and map sources).
package hjarta
