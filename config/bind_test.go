package config

import (
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/0xalexb/hjarta-config/convert"
	"github.com/0xalexb/hjarta-config/property"
	"github.com/0xalexb/hjarta-config/source"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

type dbConfig struct {
	Host     string        `config:"host"     validate:"required"`
	Port     uint16        `config:"port"`
	Timeout  time.Duration `config:"timeout"`
	Replicas []string      `config:"replicas"`
	URL      *url.URL      `config:"url"`
	Pool     poolConfig    `config:"pool"`
}

type poolConfig struct {
	Size int `config:"size" validate:"gte=1"`
}

type serviceConfig struct {
	Name    string `config:"name"`
	Retries int    `config:"retries"`
}

func (c *serviceConfig) SetDefaults() bool {
	if c.Retries != 0 {
		return false
	}

	c.Retries = 3

	return true
}

func (c *serviceConfig) Validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}

	return nil
}

func bindConfig(entries map[string]string) *Configuration {
	return New(WithSources(source.NewMap("test", source.MapOrdinal, entries)))
}

func TestBind(t *testing.T) {
	t.Parallel()

	cfg := bindConfig(map[string]string{
		"db.host":      "localhost",
		"db.port":      "5432",
		"db.timeout":   "1m30s",
		"db.replicas":  "r1, r2",
		"db.url":       "postgres://localhost/app",
		"db.pool.size": "0x10",
		"other.key":    "ignored",
	})

	db, err := Bind(&dbConfig{}, "db")(cfg)
	require.NoError(t, err)

	assert.Equal(t, "localhost", db.Host)
	assert.Equal(t, uint16(5432), db.Port)
	assert.Equal(t, 90*time.Second, db.Timeout)
	assert.Equal(t, []string{"r1", "r2"}, db.Replicas)
	require.NotNil(t, db.URL)
	assert.Equal(t, "/app", db.URL.Path)
	assert.Equal(t, 16, db.Pool.Size)
}

func TestBind_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		entries map[string]string
		wantErr string
	}{
		{
			name:    "conversion failure",
			entries: map[string]string{"db.host": "h", "db.port": "not-a-port", "db.pool.size": "1"},
			wantErr: "decoding",
		},
		{
			name:    "required tag",
			entries: map[string]string{"db.port": "1", "db.pool.size": "1"},
			wantErr: "validating error",
		},
		{
			name:    "range tag",
			entries: map[string]string{"db.host": "h", "db.pool.size": "0"},
			wantErr: "validating error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Bind(&dbConfig{}, "db")(bindConfig(tc.entries))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestBind_ConversionErrorNamesProperty(t *testing.T) {
	t.Parallel()

	cfg := bindConfig(map[string]string{
		"db.host":      "h",
		"db.port":      "not-a-port",
		"db.pool.size": "1",
	})

	_, err := Bind(&dbConfig{}, "db")(cfg)
	require.ErrorIs(t, err, convert.ErrConversionFailed)

	var convErr *convert.ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, "db.port", convErr.Key)

	_, err = Bind(&dbConfig{}, "db")(bindConfig(map[string]string{
		"db.host":      "h",
		"db.pool.size": "many",
	}))
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, "db.pool.size", convErr.Key)
}

func TestBind_Interface(t *testing.T) {
	t.Parallel()

	cfg := bindConfig(map[string]string{"app.name": "api", "app.db.host": "h"})

	app, err := Bind(&map[string]any{}, "app")(cfg)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"name": "api",
		"db":   map[string]any{"host": "h"},
	}, *app)
}

func TestBind_DefaultsAndValidator(t *testing.T) {
	t.Parallel()

	svc, err := Bind(&serviceConfig{}, "svc")(bindConfig(map[string]string{"svc.name": "api"}))
	require.NoError(t, err)
	assert.Equal(t, 3, svc.Retries)

	svc, err = Bind(&serviceConfig{}, "svc")(bindConfig(map[string]string{"svc.name": "api", "svc.retries": "5"}))
	require.NoError(t, err)
	assert.Equal(t, 5, svc.Retries)

	_, err = Bind(&serviceConfig{}, "svc")(bindConfig(map[string]string{"svc.retries": "5"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}

func TestBind_Map(t *testing.T) {
	t.Parallel()

	cfg := bindConfig(map[string]string{"limits.a": "1", "limits.b": "2"})

	limits, err := Bind(&map[string]int{}, "limits")(cfg)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, *limits)
}

func TestNest(t *testing.T) {
	t.Parallel()

	props := map[string]string{
		"db":           "shadowed",
		"db.host":      "h",
		"db.pool.size": "1",
		"name":         "n",
	}

	assert.Equal(t, map[string]any{
		"db": map[string]any{
			"host": keyedValue{key: "db.host", value: "h"},
			"pool": map[string]any{"size": keyedValue{key: "db.pool.size", value: "1"}},
		},
		"name": keyedValue{key: "name", value: "n"},
	}, nest(props, ""))

	assert.Equal(t, map[string]any{
		"name": keyedValue{key: "app.name", value: "n"},
	}, nest(map[string]string{"name": "n"}, "app"))
}

func TestNewModule(t *testing.T) {
	t.Parallel()

	var (
		cfg    *Configuration
		reader property.Reader
		svc    *serviceConfig
	)

	app := fx.New(
		fx.NopLogger,
		NewModule(WithSources(source.NewMap("test", source.MapOrdinal, map[string]string{"svc.name": "api"}))),
		fx.Provide(Bind(&serviceConfig{}, "svc")),
		fx.Populate(&cfg, &reader, &svc),
	)
	require.NoError(t, app.Err())

	assert.Same(t, cfg, reader)
	assert.Equal(t, "api", svc.Name)
	assert.Equal(t, 3, svc.Retries)
}
