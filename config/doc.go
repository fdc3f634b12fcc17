// Package config ties property sources, the filter chain and the converter registry
// together into a Configuration.
//
// A lookup combines the raw values of all sources for a key (ascending ordinal, the
// Combiner decides), runs the result through the filter.Manager and, for typed
// access, converts the filtered string with the convert.Registry:
//
//	cfg := config.New(
//	    config.WithSources(
//	        source.NewMap("defaults", source.DefaultsOrdinal, map[string]string{"db.port": "5432"}),
//	        source.NewEnv("APP_"),
//	    ),
//	    config.WithDefaultFilters(),
//	    config.WithFilters(filter.MustRegex(`secrets\..*`)),
//	)
//
//	port, err := config.Get[uint16](cfg, "db.port")
//
// # Binding
//
// Bind decodes every property below a prefix into a struct using mapstructure with
// the "config" tag. String values are converted with the Configuration's registry,
// so every registered type can be used as a field type. After decoding, Defaulter
// and Validator hooks run, followed by `validate:"..."` struct tags:
//
//	type DBConfig struct {
//	    Host    string        `config:"host" validate:"required"`
//	    Port    uint16        `config:"port"`
//	    Timeout time.Duration `config:"timeout"`
//	}
//
//	db, err := config.Bind(&DBConfig{}, "db")(cfg)
//
// Bind returns an Fx-friendly constructor, so it can be passed to fx.Provide as is.
package config
