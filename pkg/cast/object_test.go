package cast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/envkit/pkg/cast"
	"github.com/dmitrymomot/envkit/pkg/kind"
)

type dbConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

const dbSchema = `{
	"type": "object",
	"required": ["host", "port"],
	"properties": {
		"host": {"type": "string"},
		"port": {"type": "integer", "minimum": 1}
	}
}`

func TestCast_Object_DefaultWrapper(t *testing.T) {
	t.Parallel()

	v, err := cast.Cast(`{"db": {"host": "localhost", "port": 5432}, "tags": [{"k": "v"}]}`, kind.Object)
	require.NoError(t, err)

	obj, ok := v.(cast.Object)
	require.True(t, ok, "expected cast.Object, got %T", v)

	assert.True(t, obj.Has("db"))
	assert.False(t, obj.Has("cache"))
	assert.Equal(t, "localhost", obj.GetString("db.host"))

	port, ok := obj.Get("db.port")
	require.True(t, ok)
	assert.Equal(t, 5432.0, port)

	db, ok := obj.Object("db")
	require.True(t, ok)
	assert.Equal(t, "localhost", db.GetString("host"))

	tags, ok := obj.Get("tags")
	require.True(t, ok)
	require.Len(t, tags, 1)
	assert.IsType(t, cast.Object{}, tags.([]any)[0])

	_, ok = obj.Get("db.host.name")
	assert.False(t, ok)
	assert.Equal(t, "", obj.GetString("missing"))
}

func TestCast_Object_InvalidJSON(t *testing.T) {
	t.Parallel()

	_, err := cast.Cast("not json", kind.Object)
	require.ErrorIs(t, err, cast.ErrFormat)
}

func TestCast_Object_NonObjectPayload(t *testing.T) {
	t.Parallel()

	_, err := cast.Cast(`[1, 2]`, kind.Object)
	require.ErrorIs(t, err, cast.ErrFormat)
	assert.Contains(t, err.Error(), "array")
}

func TestCast_Object_Factory(t *testing.T) {
	t.Parallel()

	v, err := cast.To[dbConfig](`{"host": "db.internal", "port": 5433}`, kind.Object,
		cast.WithObjectFactory(cast.DecodeInto[dbConfig]()))
	require.NoError(t, err)
	assert.Equal(t, dbConfig{Host: "db.internal", Port: 5433}, v)

	var received any
	_, err = cast.Cast(`[1, "two"]`, kind.Object, cast.WithObjectFactory(func(payload any) (any, error) {
		received = payload
		return len(payload.([]any)), nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []any{1.0, "two"}, received)
}

func TestCast_Object_GoDefault(t *testing.T) {
	t.Parallel()

	v, err := cast.Cast(map[string]any{"enabled": true}, kind.Object)
	require.NoError(t, err)
	assert.Equal(t, cast.Object{"enabled": true}, v)
}

func TestCast_Object_Schema(t *testing.T) {
	t.Parallel()

	schema := cast.WithSchema([]byte(dbSchema))

	v, err := cast.Cast(`{"host": "localhost", "port": 5432}`, kind.Object, schema)
	require.NoError(t, err)
	assert.Equal(t, "localhost", v.(cast.Object).GetString("host"))

	_, err = cast.Cast(`{"host": 1, "port": 0}`, kind.Object, schema)
	require.ErrorIs(t, err, cast.ErrFormat)
	assert.Contains(t, err.Error(), "schema validation failed with 2 errors")

	_, err = cast.Cast(`{"port": 5432}`, kind.Object, schema)
	require.ErrorIs(t, err, cast.ErrFormat)
	assert.Contains(t, err.Error(), "host")

	_, err = cast.Cast(`{}`, kind.Object, cast.WithSchema([]byte("{not a schema")))
	require.ErrorIs(t, err, cast.ErrInvalidArgument)
}

func TestFormat_ObjectRoundTrip(t *testing.T) {
	t.Parallel()

	original := cast.Object{"name": "svc", "nested": cast.Object{"n": 1.0}}
	v, err := cast.Cast(cast.Format(original), kind.Object)
	require.NoError(t, err)
	assert.Equal(t, original, v)
}
