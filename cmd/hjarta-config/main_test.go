package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/0xalexb/hjarta-config/convert"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestGet(t *testing.T) {
	t.Parallel()

	base := writeFile(t, "base.yaml", `
db:
  host: localhost
  port: 5432
  timeout: 1m
  url: postgres://${db.host}:${db.port}
`)
	override := writeFile(t, "override.toml", `
[db]
host = "db.internal"
`)

	testCases := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "later file wins", args: []string{"get", "db.host"}, expected: "db.internal\n"},
		{name: "placeholders resolved", args: []string{"get", "db.url"}, expected: "postgres://db.internal:5432\n"},
		{name: "placeholders off", args: []string{"get", "db.url", "--no-placeholders"}, expected: "postgres://${db.host}:${db.port}\n"},
		{name: "typed", args: []string{"get", "db.timeout", "--type", "time.Duration"}, expected: "1m0s\n"},
		{name: "slice", args: []string{"get", "db.port", "-t", "[]uint16"}, expected: "[5432]\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			out, err := run(t, append(tc.args, "-f", base, "-f", override)...)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, out)
		})
	}
}

func TestGet_Errors(t *testing.T) {
	t.Parallel()

	file := writeFile(t, "app.yaml", "name: demo\n")

	_, err := run(t, "get", "missing", "-f", file)
	require.ErrorContains(t, err, "key not found")

	_, err = run(t, "get", "name", "-f", file, "--type", "int")
	require.ErrorIs(t, err, convert.ErrConversionFailed)

	_, err = run(t, "get", "name", "-f", file, "--type", "complex128")
	require.ErrorIs(t, err, convert.ErrNoConverter)

	_, err = run(t, "get", "name", "-f", writeFile(t, "app.ini", "name=demo"))
	require.ErrorIs(t, err, errUnsupportedFormat)

	_, err = run(t, "get", "name", "-f", file, "--exclude", "(")
	require.ErrorContains(t, err, "--exclude")
}

func TestList(t *testing.T) {
	t.Parallel()

	file := writeFile(t, "app.yaml", `
db:
  user: app
  password: s3cr3t
internal:
  token: abc
`)

	out, err := run(t, "list", "-f", file, "--mask", "**.password", "--exclude", `internal\..*`)
	require.NoError(t, err)
	assert.Equal(t, "db.password=*****\ndb.user=app\n", out)

	out, err = run(t, "list", "--raw", "-f", file, "--mask", "**.password")
	require.NoError(t, err)
	assert.Equal(t, "db.password=s3cr3t\ndb.user=app\ninternal.token=abc\n", out)
}

func TestSection(t *testing.T) {
	t.Parallel()

	file := writeFile(t, "app.yaml", `
services:
  api:
    port: 8080
`)

	out, err := run(t, "get", "port", "-f", file, "--section", "services:api")
	require.NoError(t, err)
	assert.Equal(t, "8080\n", out)
}

func TestFiltersAndConverters(t *testing.T) {
	t.Parallel()

	out, err := run(t, "filters", "--mask", "**.secret")
	require.NoError(t, err)
	assert.Contains(t, out, "placeholder")
	assert.Contains(t, out, "mask")

	out, err = run(t, "converters")
	require.NoError(t, err)
	assert.Contains(t, out, "time.Duration: DurationConverter\n")
	assert.Contains(t, out, "int32: IntConverter[int32], RuneConverter\n")
}
