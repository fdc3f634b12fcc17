package main

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	hjarta "github.com/0xalexb/hjarta-config"
	"github.com/0xalexb/hjarta-config/config"
	"github.com/0xalexb/hjarta-config/filter"
	"github.com/0xalexb/hjarta-config/logging"
	"github.com/0xalexb/hjarta-config/property"
	"github.com/0xalexb/hjarta-config/source"
	filefetcher "github.com/0xalexb/hjarta-config/source/fetcher/file"
	tomlparser "github.com/0xalexb/hjarta-config/source/parser/toml"
	yamlparser "github.com/0xalexb/hjarta-config/source/parser/yaml"

	"github.com/spf13/cobra"
)

var errUnsupportedFormat = errors.New("unsupported file format")

type rootOptions struct {
	files          []string
	section        string
	envPrefix      string
	masks          []string
	excludes       []string
	noPlaceholders bool
	logLevel       string
	logFormat      string

	cfg *config.Configuration
}

// NewRootCmd returns the hjarta-config command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "hjarta-config",
		Short:         "Inspect filtered and converted configuration",
		Long:          "Load configuration files and environment variables and show them the way an application sees them",
		Version:       fmt.Sprintf("%s (config %s, compiled %s)", hjarta.Version, hjarta.ConfigVersion, hjarta.CompiledAt),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			slog.SetDefault(logging.NewLogger(logging.LoggerConfig{
				Level:     opts.logLevel,
				Format:    opts.logFormat,
				AddSource: false,
			}, cmd.ErrOrStderr()))

			cfg, err := opts.build()
			if err != nil {
				return err
			}

			opts.cfg = cfg

			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringArrayVarP(&opts.files, "file", "f", nil, "YAML or TOML file to load, later files take precedence")
	flags.StringVar(&opts.section, "section", "", "colon separated section of every file to load, e.g. services:api")
	flags.StringVar(&opts.envPrefix, "env-prefix", "", "load environment variables with this prefix")
	flags.StringArrayVar(&opts.masks, "mask", nil, "glob of keys whose values are masked, e.g. **.password")
	flags.StringArrayVar(&opts.excludes, "exclude", nil, "regular expression of keys to hide")
	flags.BoolVar(&opts.noPlaceholders, "no-placeholders", false, "do not resolve ${key} references")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	flags.StringVar(&opts.logFormat, "log-format", logging.FormatText, "log format: json or text")

	cmd.AddCommand(
		newGetCmd(opts),
		newListCmd(opts),
		newFiltersCmd(opts),
		newConvertersCmd(opts),
	)

	return cmd
}

func (o *rootOptions) build() (*config.Configuration, error) {
	var sources []property.Source

	for i, path := range o.files {
		src, err := o.fileSource(path, i)
		if err != nil {
			return nil, err
		}

		sources = append(sources, src)
	}

	if o.envPrefix != "" {
		sources = append(sources, source.NewEnv(o.envPrefix))
	}

	var filters []filter.Filter

	if len(o.excludes) > 0 {
		exclude, err := filter.NewRegex(o.excludes...)
		if err != nil {
			return nil, fmt.Errorf("--exclude: %w", err)
		}

		filters = append(filters, exclude)
	}

	if len(o.masks) > 0 {
		mask, err := filter.NewMask(o.masks)
		if err != nil {
			return nil, fmt.Errorf("--mask: %w", err)
		}

		filters = append(filters, mask)
	}

	opts := []config.Option{
		config.WithSources(sources...),
		config.WithFilters(filters...),
	}

	if !o.noPlaceholders {
		opts = append(opts, config.WithDefaultFilters())
	}

	return config.New(opts...), nil
}

// fileSource gives later files a higher ordinal so they override earlier ones.
func (o *rootOptions) fileSource(path string, index int) (property.Source, error) {
	var parser source.Parser

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yamlparser.NewParser()
	case ".toml":
		parser = tomlparser.NewParser()
	default:
		return nil, fmt.Errorf("%w: %s", errUnsupportedFormat, path)
	}

	fetcher, err := filefetcher.NewFetcher(path)()
	if err != nil {
		return nil, err
	}

	return source.NewFile(filepath.Base(path), fetcher, parser,
		source.WithSection(o.section),
		source.WithFileOrdinal(source.FileOrdinal+index),
	), nil
}
