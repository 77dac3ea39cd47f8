package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTempPassword(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		pw, err := GenerateTempPassword(12)
		require.NoError(t, err)
		assert.Len(t, pw, 12)
		assert.False(t, seen[pw], "passwords should not repeat")
		seen[pw] = true
	}
}

func TestGenerateTempPasswordDefaultsLength(t *testing.T) {
	pw, err := GenerateTempPassword(0)
	require.NoError(t, err)
	assert.Len(t, pw, 12)
}

func TestUsernameBase(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  string
	}{
		{
			name:  "plain address",
			email: "jane.doe@example.com",
			want:  "jane.doe",
		},
		{
			name:  "uppercase is folded",
			email: "Jane.Doe@Example.com",
			want:  "jane.doe",
		},
		{
			name:  "plus tag stripped with other symbols",
			email: "jane+hr@example.com",
			want:  "janehr",
		},
		{
			name:  "no at sign uses whole string",
			email: "standalone",
			want:  "standalone",
		},
		{
			name:  "all symbols falls back",
			email: "+++@example.com",
			want:  "user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UsernameBase(tt.email))
		})
	}
}
