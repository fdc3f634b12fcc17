package main

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/0xalexb/hjarta-config/convert"
	"github.com/0xalexb/hjarta-config/filter"
	"github.com/0xalexb/hjarta-config/source"

	"github.com/spf13/cobra"
)

func newGetCmd(opts *rootOptions) *cobra.Command {
	var typeName string

	cmd := &cobra.Command{
		Use:   "get KEY",
		Short: "Print the filtered value of a key",
		Long:  "Print the filtered value of a key, optionally converted to a type listed by the converters command",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			value, err := opts.cfg.Get(key)
			if err != nil {
				return err
			}

			if typeName == "" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), value)

				return err
			}

			target, err := lookupType(opts.cfg.Converters(), typeName)
			if err != nil {
				return err
			}

			cc, err := convert.NewBuilder(key, target).WithConfig(opts.cfg).Build()
			if err != nil {
				return err
			}

			converted, err := opts.cfg.Converters().Convert(value, cc)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%v\n", converted)

			return err
		},
	}

	cmd.Flags().StringVarP(&typeName, "type", "t", "", "convert to this type, e.g. time.Duration or []int")

	return cmd
}

func lookupType(registry *convert.Registry, name string) (reflect.Type, error) {
	if elem, ok := strings.CutPrefix(name, "[]"); ok {
		t, err := lookupType(registry, elem)
		if err != nil {
			return nil, err
		}

		return reflect.SliceOf(t), nil
	}

	for _, t := range registry.Types() {
		if t.String() == name {
			return t, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", convert.ErrNoConverter, name)
}

func newListCmd(opts *rootOptions) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print all filtered properties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries := make(map[string]string)

			if raw {
				snapshot, err := opts.cfg.Snapshot()
				if err != nil {
					return err
				}

				for key, value := range snapshot {
					entries[key] = value.Value()
				}
			} else {
				props, err := opts.cfg.Properties()
				if err != nil {
					return err
				}

				entries = props
			}

			for _, key := range source.Keys(entries) {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", key, entries[key])
				if err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print combined values before filtering")

	return cmd
}

func newFiltersCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "filters",
		Short: "Print the filter chain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, f := range opts.cfg.Filters().Filters() {
				info := filter.Describe(f)

				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%-16s %s\n", info.Name, info.Description)
				if err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func newConvertersCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "converters",
		Short: "Print the converter chains per type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry := opts.cfg.Converters()

			for _, target := range registry.Types() {
				names := make([]string, 0)
				for _, info := range registry.Converters(target) {
					names = append(names, info.Name)
				}

				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", target, strings.Join(names, ", "))
				if err != nil {
					return err
				}
			}

			return nil
		},
	}
}
