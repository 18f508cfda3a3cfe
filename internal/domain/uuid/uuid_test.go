package uuid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mittr/linkup/internal/domain/uuid"
)

func TestNewUUID(t *testing.T) {
	id := uuid.NewUUID()

	assert.False(t, id.IsZero())
	assert.NotEmpty(t, id.String())
}

func TestNewUUID_Unique(t *testing.T) {
	first := uuid.NewUUID()
	second := uuid.NewUUID()

	assert.NotEqual(t, first, second)
}

func TestParseUUID_Valid(t *testing.T) {
	original := uuid.NewUUID()

	parsed, err := uuid.ParseUUID(original.String())

	require.NoError(t, err)
	assert.Equal(t, original, parsed)
}

func TestParseUUID_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty string", input: ""},
		{name: "not a uuid", input: "not-a-uuid"},
		{name: "truncated", input: "123e4567-e89b-12d3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := uuid.ParseUUID(tt.input)

			require.Error(t, err)
			assert.True(t, parsed.IsZero())
		})
	}
}

func TestMustParseUUID_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() {
		uuid.MustParseUUID("definitely-invalid")
	})
}

func TestIsZero(t *testing.T) {
	var zero uuid.UUID

	assert.True(t, zero.IsZero())
	assert.False(t, uuid.NewUUID().IsZero())
}
