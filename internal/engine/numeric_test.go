package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToDecimal(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.35, ToDecimal(35), 1e-9)
	assert.InDelta(t, 0, ToDecimal(0), 1e-9)
	assert.InDelta(t, -0.3, ToDecimal(-30), 1e-9)
	assert.InDelta(t, 1.0, ToDecimal(100), 1e-9)
}

func TestFloorZero(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"positive passes through", 42.5, 42.5},
		{"zero passes through", 0, 0},
		{"negative clamps to zero", -7.2, 0},
		{"NaN collapses to zero", math.NaN(), 0},
		{"+Inf collapses to zero", math.Inf(1), 0},
		{"-Inf collapses to zero", math.Inf(-1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FloorZero(tt.in))
		})
	}
}

func TestClamp01(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, clamp01(-0.5))
	assert.Equal(t, 1.0, clamp01(1.8))
	assert.Equal(t, 0.34, clamp01(0.34))
}
