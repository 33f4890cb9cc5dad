package kind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/envkit/pkg/kind"
)

func TestKind_IsValid(t *testing.T) {
	t.Parallel()

	assert.False(t, kind.Invalid.IsValid())
	assert.False(t, kind.Kind(200).IsValid())

	for _, k := range kind.All() {
		assert.True(t, k.IsValid(), "kind %s should be valid", k)
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    kind.Kind
		wantErr bool
	}{
		{name: "canonical", input: "integer", want: kind.Integer},
		{name: "upper case", input: "INTEGER", want: kind.Integer},
		{name: "surrounding spaces", input: "  list ", want: kind.List},
		{name: "alias", input: "bool", want: kind.Boolean},
		{name: "email alias", input: "email", want: kind.EmailAddress},
		{name: "underscore name", input: "email_address", want: kind.EmailAddress},
		{name: "invalid name is not a member", input: "invalid", wantErr: true},
		{name: "unknown", input: "matrix", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := kind.Parse(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, kind.ErrUnknownKind)
				assert.Equal(t, kind.Invalid, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKind_TextRoundTrip(t *testing.T) {
	t.Parallel()

	for _, k := range kind.All() {
		text, err := k.MarshalText()
		require.NoError(t, err)

		var decoded kind.Kind
		require.NoError(t, decoded.UnmarshalText(text))
		assert.Equal(t, k, decoded)
	}

	_, err := kind.Invalid.MarshalText()
	require.ErrorIs(t, err, kind.ErrUnknownKind)
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "enumeration", kind.Enumeration.String())
	assert.Equal(t, "kind(99)", kind.Kind(99).String())
}

func TestKind_IsScalar(t *testing.T) {
	t.Parallel()

	assert.True(t, kind.Integer.IsScalar())
	assert.False(t, kind.List.IsScalar())
	assert.False(t, kind.Object.IsScalar())
	assert.False(t, kind.Invalid.IsScalar())
}
