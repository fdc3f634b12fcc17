package config

import (
	"errors"
	"testing"
	"time"

	"github.com/0xalexb/hjarta-config/convert"
	"github.com/0xalexb/hjarta-config/filter"
	"github.com/0xalexb/hjarta-config/property"
	"github.com/0xalexb/hjarta-config/source"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingSource struct{}

func (failingSource) Name() string { return "broken" }

func (failingSource) Ordinal() int { return 50 }

func (failingSource) Properties() (map[string]string, error) {
	return nil, errors.New("unavailable")
}

func newTestConfig(t *testing.T, opts ...Option) *Configuration {
	t.Helper()

	base := []Option{
		WithSources(
			source.NewMap("defaults", source.DefaultsOrdinal, map[string]string{
				"db.host":    "localhost",
				"db.port":    "5432",
				"db.timeout": "5s",
				"log.level":  "info",
			}),
			source.NewMap("overrides", source.MapOrdinal, map[string]string{
				"db.host":     "db.internal",
				"db.password": "s3cr3t",
				"db.url":      "postgres://${db.host}:${db.port}",
			}),
		),
	}

	return New(append(base, opts...)...)
}

func TestConfiguration_Get(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig(t)

	host, err := cfg.Get("db.host")
	require.NoError(t, err)
	assert.Equal(t, "db.internal", host)

	value, err := cfg.Value("db.host")
	require.NoError(t, err)
	assert.Equal(t, "overrides", value.Source())

	_, err = cfg.Get("missing")
	require.ErrorIs(t, err, ErrKeyNotFound)
	require.ErrorIs(t, err, property.ErrKeyNotFound)
}

func TestConfiguration_GetOrDefault(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig(t, WithFilters(filter.MustRegex(`db\.password`)))

	value, err := cfg.GetOrDefault("missing", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "fallback", value)

	value, err = cfg.GetOrDefault("db.password", "hidden")
	require.NoError(t, err)
	assert.Equal(t, "hidden", value, "suppressed keys count as missing")

	value, err = cfg.GetOrDefault("db.port", "0")
	require.NoError(t, err)
	assert.Equal(t, "5432", value)
}

func TestConfiguration_DefaultFilters(t *testing.T) {
	t.Parallel()

	plain := newTestConfig(t)

	url, err := plain.Get("db.url")
	require.NoError(t, err)
	assert.Equal(t, "postgres://${db.host}:${db.port}", url)

	resolved := newTestConfig(t, WithDefaultFilters())

	url, err = resolved.Get("db.url")
	require.NoError(t, err)
	assert.Equal(t, "postgres://db.internal:5432", url)

	props, err := resolved.Properties()
	require.NoError(t, err)
	assert.Equal(t, "postgres://db.internal:5432", props["db.url"])
}

func TestConfiguration_Properties(t *testing.T) {
	t.Parallel()

	mask, err := filter.NewMask([]string{"**.password"}, filter.BulkOnly())
	require.NoError(t, err)

	cfg := newTestConfig(t, WithFilters(mask, filter.MustRegex(`log\..*`)))

	props, err := cfg.Properties()
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"db.host":     "db.internal",
		"db.port":     "5432",
		"db.timeout":  "5s",
		"db.password": filter.DefaultMask,
		"db.url":      "postgres://${db.host}:${db.port}",
	}, props)

	password, err := cfg.Get("db.password")
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t", password, "bulk-only mask keeps direct lookups")

	snapshot, err := cfg.Snapshot()
	require.NoError(t, err)
	assert.Len(t, snapshot, 6)
	assert.Equal(t, "info", snapshot["log.level"].Value())
}

func TestConfiguration_Raw(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig(t, WithFilters(filter.MustRegex(`db\.password`)))

	raw, ok := cfg.Raw("db.password")
	require.True(t, ok)
	assert.Equal(t, "s3cr3t", raw.Value())

	_, ok = cfg.Raw("missing")
	assert.False(t, ok)
}

func TestConfiguration_Collect(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig(t, WithCombiner(property.Collect{Separator: ";"}))

	value, err := cfg.Value("db.host")
	require.NoError(t, err)
	assert.Equal(t, "localhost;db.internal", value.Value())

	sources, ok := value.Meta(property.MetaSources)
	require.True(t, ok)
	assert.Equal(t, "defaults;overrides", sources)
}

func TestConfiguration_SourceOrdering(t *testing.T) {
	t.Parallel()

	cfg := New(WithSources(
		source.NewMap("high", 500, map[string]string{"k": "high"}),
		source.NewMap("low", 10, map[string]string{"k": "low"}),
	))

	value, err := cfg.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "high", value)

	sources := cfg.Sources()
	require.Len(t, sources, 2)
	assert.Equal(t, "low", sources[0].Name())
}

func TestConfiguration_SourceError(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig(t, WithSources(failingSource{}))

	_, err := cfg.Get("db.host")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `source "broken"`)

	_, err = cfg.Properties()
	require.Error(t, err)

	_, ok := cfg.Raw("db.host")
	assert.False(t, ok)
}

func TestConfiguration_FilterError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	cfg := newTestConfig(t, WithFilters(filter.Func(func(*property.Value, *filter.Context) (*property.Value, error) {
		return nil, boom
	})))

	_, err := cfg.Get("db.host")
	require.ErrorIs(t, err, boom)

	_, err = cfg.Properties()
	require.ErrorIs(t, err, boom)
}

func TestConfiguration_FilterManager(t *testing.T) {
	t.Parallel()

	manager := filter.NewManager(filter.WithMaxIterations(3))
	registry := convert.NewRegistry()

	cfg := newTestConfig(t,
		WithFilterManager(manager),
		WithFilters(filter.HideMetadata{}),
		WithConverters(registry),
	)

	assert.Same(t, manager, cfg.Filters())
	assert.Same(t, registry, cfg.Converters())
	assert.Len(t, manager.Filters(), 1)
}

func TestGet_Typed(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig(t)

	port, err := Get[uint16](cfg, "db.port")
	require.NoError(t, err)
	assert.Equal(t, uint16(5432), port)

	timeout, err := Get[time.Duration](cfg, "db.timeout")
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, timeout)

	_, err = Get[int](cfg, "db.host")
	require.ErrorIs(t, err, convert.ErrConversionFailed)

	var convErr *convert.ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, "db.host", convErr.Key)
	assert.NotEmpty(t, convErr.SupportedFormats)

	_, err = Get[int](cfg, "missing")
	require.ErrorIs(t, err, ErrKeyNotFound)
}

func TestGetOrDefault_Typed(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig(t)

	retries, err := GetOrDefault(cfg, "db.retries", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, retries)

	port, err := GetOrDefault(cfg, "db.port", 1)
	require.NoError(t, err)
	assert.Equal(t, 5432, port)

	_, err = GetOrDefault(cfg, "db.host", 1)
	require.ErrorIs(t, err, convert.ErrConversionFailed, "conversion failures are never defaulted")
}
