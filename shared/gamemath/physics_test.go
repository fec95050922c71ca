package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampDt(t *testing.T) {
	tests := []struct {
		name string
		ms   float64
		want float64
	}{
		{"normal frame", 16, 0.016},
		{"capped", 500, 0.05},
		{"zero", 0, 0},
		{"negative", -5, 0},
		{"nan", math.NaN(), 0},
		{"inf", math.Inf(1), 0.05},
		{"negative inf", math.Inf(-1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ClampDt(tt.ms, 1.0/20), 1e-12)
		})
	}
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(1, -2, 0))
	assert.False(t, IsFinite(1, math.NaN()))
	assert.False(t, IsFinite(math.Inf(-1)))
}

func TestClampFall(t *testing.T) {
	assert.Equal(t, 600.0, ClampFall(900, 600))
	assert.Equal(t, -900.0, ClampFall(-900, 600))
	assert.Equal(t, 900.0, ClampFall(900, 0))
}

func TestRectHelpers(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 18, H: 26}
	assert.Equal(t, Vec{X: 19, Y: 33}, r.Center())
	x, y := r.FootAnchor(Vec{Y: 14})
	assert.Equal(t, 19, x)
	assert.Equal(t, 60, y)

	// Flush against a boundary does not reach the next tile.
	span := TileRange(Rect{X: 0, Y: 0, W: 32, H: 32}, 32)
	assert.Equal(t, TileSpan{Left: 0, Right: 0, Top: 0, Bottom: 0}, span)
}
