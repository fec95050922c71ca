package leveldata

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTileGrid(t *testing.T) {
	t.Run("rejects empty", func(t *testing.T) {
		_, err := NewTileGrid(nil)
		assert.True(t, errors.Is(err, ErrEmptyGrid))

		_, err = NewTileGrid([][]int{{}})
		assert.True(t, errors.Is(err, ErrEmptyGrid))
	})

	t.Run("rejects ragged", func(t *testing.T) {
		_, err := NewTileGrid([][]int{{1, 2}, {3}})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrRaggedGrid))
	})

	t.Run("copies input", func(t *testing.T) {
		rows := [][]int{{1, 2}, {3, 4}}
		g, err := NewTileGrid(rows)
		require.NoError(t, err)
		rows[0][0] = 99
		assert.Equal(t, 1, g.At(0, 0))
		assert.Equal(t, 2, g.Width())
		assert.Equal(t, 2, g.Height())
	})
}

func TestIsSolidAt(t *testing.T) {
	g := MustTileGrid([][]int{
		{5, Empty, 7},
		{Empty, 127, 5},
	})
	solid := NewSolidSet(5, 7)

	tests := []struct {
		name   string
		tx, ty int
		want   bool
	}{
		{"solid id", 0, 0, true},
		{"empty cell", 1, 0, false},
		{"non-solid id", 1, 1, false},
		{"left of grid", -1, 0, true},
		{"right of grid", 3, 1, true},
		{"above grid", 1, -1, true},
		{"below grid", 1, 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.IsSolidAt(solid, tt.tx, tt.ty))
		})
	}
}

func TestMakeSolidSet(t *testing.T) {
	s := MakeSolidSet(DefaultWallTiles)
	assert.Equal(t, 12, s.Len())
	for _, id := range []int{6, 37, 7, 20, 18, 24, 1, 25, 0, 2, 36, 38} {
		assert.True(t, s.Has(id), "id %d", id)
	}
	assert.False(t, s.Has(DefaultFloor))
	assert.False(t, s.Has(Empty))
}
