package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "regsuite/pkg/domain-errors"
)

func TestCitizenID_IsNominal(t *testing.T) {
	tests := []struct {
		name string
		id   CitizenID
		want bool
	}{
		{name: "13 digits", id: "1101402211111", want: true},
		{name: "11 digits", id: "11014022111", want: false},
		{name: "17 digits", id: "11014022111111111", want: false},
		{name: "text", id: "citizen_id data", want: false},
		{name: "13 symbols", id: "☺☺☺☺☺☺☺☺☺☺☺☺☺", want: false},
		{name: "empty", id: "", want: false},
		{name: "digits with trailing space", id: "110140221111 ", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.id.IsNominal())
		})
	}
}

func TestCitizenID_Truncate(t *testing.T) {
	id := CitizenID("1101402211111")

	assert.Equal(t, CitizenID("11014022111"), id.Truncate(11))
	assert.Equal(t, id, id.Truncate(13))
	assert.Equal(t, id, id.Truncate(20))
	assert.Equal(t, CitizenID(""), id.Truncate(-1))
}

func TestParseCitizenID(t *testing.T) {
	t.Run("accepts nominal IDs", func(t *testing.T) {
		id, err := ParseCitizenID("1101402211111")
		require.NoError(t, err)
		assert.Equal(t, "1101402211111", id.String())
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, err := ParseCitizenID("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects malformed", func(t *testing.T) {
		_, err := ParseCitizenID("11014022111")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "13 digits")
	})
}
