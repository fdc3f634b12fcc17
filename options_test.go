package hjarta_test

import (
	"bytes"
	"testing"

	hjarta "github.com/0xalexb/hjarta-config"
	"github.com/0xalexb/hjarta-config/config"
	"github.com/0xalexb/hjarta-config/inspect"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestWithLogLevel(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		level    string
		expected string
	}{
		{name: "debug level", level: "debug", expected: "debug"},
		{name: "error level", level: "error", expected: "error"},
		{name: "empty level", level: "", expected: ""},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var opts hjarta.Options

			hjarta.WithLogLevel(testCase.level)(&opts)

			require.Equal(t, testCase.expected, opts.LogLevel)
		})
	}
}

func TestWithLogFormatAndOutput(t *testing.T) {
	t.Parallel()

	var (
		opts hjarta.Options
		buf  bytes.Buffer
	)

	hjarta.WithLogFormat("text")(&opts)
	hjarta.WithLogOutput(&buf)(&opts)

	require.Equal(t, "text", opts.LogFormat)
	require.Same(t, &buf, opts.LogOutput)
}

func TestWithModules(t *testing.T) {
	t.Parallel()

	var opts hjarta.Options

	hjarta.WithModules(fx.Module("test1"))(&opts)
	require.Len(t, opts.Modules, 1)

	hjarta.WithModules(fx.Module("test2"), fx.Module("test3"))(&opts)
	require.Len(t, opts.Modules, 3)
}

func TestWithConfigurationAndInspector(t *testing.T) {
	t.Parallel()

	var opts hjarta.Options

	hjarta.WithConfiguration(config.WithDefaultFilters())(&opts)
	hjarta.WithInspector(inspect.WithAddress("127.0.0.1:0"))(&opts)

	require.Len(t, opts.Modules, 2)
}
