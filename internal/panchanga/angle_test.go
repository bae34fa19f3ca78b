package panchanga

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"inside range", 123.25, 123.25},
		{"full turn", 360, 0},
		{"two turns", 720, 0},
		{"above range", 725.5, 5.5},
		{"negative", -10, 350},
		{"negative full turn", -360, 0},
		{"negative several turns", -725.5, 354.5},
		{"tiny negative", -1e-15, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Normalize(tt.in), 1e-9)
		})
	}
}

func TestNormalize_RangeAndIdempotence(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 10000; i++ {
		x := (rng.Float64() - 0.5) * 1e7
		got := Normalize(x)

		assert.GreaterOrEqual(t, got, 0.0, "Normalize(%v)", x)
		assert.Less(t, got, 360.0, "Normalize(%v)", x)
		assert.Equal(t, got, Normalize(got), "Normalize not idempotent for %v", x)
	}
}

func TestNormalize_NegativeIsFloorBased(t *testing.T) {
	// Truncation would leave -90 unchanged.
	assert.Equal(t, 270.0, Normalize(-90))
	assert.Equal(t, math.Mod(-90, 360)+360, Normalize(-90))
}
