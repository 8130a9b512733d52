package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecureRandomInt(t *testing.T) {
	t.Run("errors when min exceeds max", func(t *testing.T) {
		_, err := SecureRandomInt(3, 1)
		require.Error(t, err)
	})

	t.Run("single value range", func(t *testing.T) {
		v, err := SecureRandomInt(7, 7)
		require.NoError(t, err)
		assert.Equal(t, 7, v)
	})
}

func TestSecureIntn(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{"roulette wheel", 37},
		{"die", 6},
		{"deck position", 52},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen := make(map[int]bool)
			for i := 0; i < 2000; i++ {
				v := SecureIntn(tt.n)
				require.GreaterOrEqual(t, v, 0)
				require.Less(t, v, tt.n)
				seen[v] = true
			}
			assert.Len(t, seen, tt.n, "every value should appear over many draws")
		})
	}

	t.Run("degenerate sizes return zero", func(t *testing.T) {
		assert.Equal(t, 0, SecureIntn(1))
		assert.Equal(t, 0, SecureIntn(0))
	})
}
