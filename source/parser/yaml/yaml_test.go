package yaml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const document = `
name: test-app
version: "1.0"
api:
  host: localhost
  port: 8080
  ratio: 3.5
  hosts:
    - host1.example.com
    - host2.example.com
  permissions:
    admin:
      read: true
      write: true
    user:
      read: true
      write: false
database:
  replicas:
    - host: replica1.db.com
    - host: replica2.db.com
`

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		path     string
		expected map[string]string
	}{
		{
			name: "single level path",
			path: "api:permissions:admin",
			expected: map[string]string{
				"read":  "true",
				"write": "true",
			},
		},
		{
			name: "nested mapping",
			path: "api:permissions",
			expected: map[string]string{
				"admin.read":  "true",
				"admin.write": "true",
				"user.read":   "true",
				"user.write":  "false",
			},
		},
		{
			name: "indexed list of mappings",
			path: "database",
			expected: map[string]string{
				"replicas.0.host": "replica1.db.com",
				"replicas.1.host": "replica2.db.com",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			props, err := NewParser().Parse([]byte(document), tc.path)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, props)
		})
	}
}

func TestParser_Parse_EmptyPath(t *testing.T) {
	t.Parallel()

	props, err := NewParser().Parse([]byte(document), "")

	require.NoError(t, err)
	assert.Equal(t, "test-app", props["name"])
	assert.Equal(t, "1.0", props["version"])
	assert.Equal(t, "8080", props["api.port"])
	assert.Equal(t, "3.5", props["api.ratio"])
	assert.Equal(t, "host1.example.com,host2.example.com", props["api.hosts"])
	assert.Equal(t, "false", props["api.permissions.user.write"])
}

func TestParser_Parse_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		data    string
		path    string
		wantErr error
	}{
		{name: "empty data", data: "", wantErr: ErrEmptyData},
		{name: "missing key", data: document, path: "nonexistent", wantErr: ErrPathNotFound},
		{name: "scalar section", data: document, path: "api:host", wantErr: ErrNotMapping},
		{name: "scalar document", data: "just a string", wantErr: ErrNotMapping},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewParser().Parse([]byte(tc.data), tc.path)

			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestParser_Parse_InvalidYAML(t *testing.T) {
	t.Parallel()

	_, err := NewParser().Parse([]byte("invalid: yaml: content: [\n"), "")

	require.Error(t, err)
}

func TestParser_Parse_NullDocument(t *testing.T) {
	t.Parallel()

	props, err := NewParser().Parse([]byte("# only a comment\n"), "")

	require.NoError(t, err)
	assert.Empty(t, props)
}

func TestConvertToYAMLPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "single key", input: "key", expected: "$.key"},
		{name: "two level path", input: "api:permissions", expected: "$.api.permissions"},
		{name: "three level path", input: "database:connection:timeout", expected: "$.database.connection.timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, convertToYAMLPath(tt.input))
		})
	}
}
