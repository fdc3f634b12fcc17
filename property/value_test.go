package property

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_WithMethodsReturnCopies(t *testing.T) {
	t.Parallel()

	original := New("db.host", "localhost").WithSource("env")
	changed := original.WithValue("db.example.com").WithMetadata("origin", "test")

	assert.Equal(t, "localhost", original.Value())
	assert.Equal(t, "db.example.com", changed.Value())
	assert.Equal(t, "env", changed.Source())

	_, ok := original.Meta("origin")
	assert.False(t, ok)

	meta, ok := changed.Meta("origin")
	require.True(t, ok)
	assert.Equal(t, "test", meta)
}

func TestValue_MetadataIsCopied(t *testing.T) {
	t.Parallel()

	value := New("key", "value").WithSource("memory")

	meta := value.Metadata()
	meta[MetaSource] = "tampered"

	assert.Equal(t, "memory", value.Source())
}

func TestValue_Equal(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		a     *Value
		b     *Value
		equal bool
	}{
		{"same key and value", New("k", "v"), New("k", "v"), true},
		{"metadata ignored", New("k", "v").WithSource("a"), New("k", "v").WithSource("b"), true},
		{"different value", New("k", "v"), New("k", "w"), false},
		{"different key", New("k", "v"), New("j", "v"), false},
		{"nil against value", nil, New("k", "v"), false},
		{"both nil", nil, nil, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.equal, tc.a.Equal(tc.b))
		})
	}
}

func TestValue_ToMap(t *testing.T) {
	t.Parallel()

	value := New("db.host", "localhost").WithSource("env")

	assert.Equal(t, map[string]string{
		"db.host":         "localhost",
		"_db.host.source": "env",
	}, value.ToMap())
	assert.True(t, IsMetaKey("_db.host.source"))
	assert.False(t, IsMetaKey("db.host"))
}

func TestValue_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a=b", New("a", "b").String())
	assert.Equal(t, "a=b [origin=x, source=y]", New("a", "b").WithSource("y").WithMetadata("origin", "x").String())
}
