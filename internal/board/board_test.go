package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		fill   Terrain
	}{
		{"small board", 5, 5, TerrainWall},
		{"rectangular board", 10, 20, TerrainFloor},
		{"minimum board", 1, 1, TerrainVoid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(tt.width, tt.height, tt.fill)

			assert.Equal(t, tt.width, b.W)
			assert.Equal(t, tt.height, b.H)
			assert.Len(t, b.T, tt.width*tt.height)

			for i, cell := range b.T {
				assert.Equal(t, tt.fill, cell, "cell %d should be %v", i, tt.fill)
			}
		})
	}
}

func TestBoard_TerrainAt_OutOfBounds(t *testing.T) {
	b := New(4, 4, TerrainFloor)

	tests := []struct {
		x, y int
	}{
		{-1, 0},
		{0, -1},
		{4, 0},
		{0, 4},
		{-1, -1},
		{100, 100},
	}

	for _, tt := range tests {
		assert.Equal(t, TerrainVoid, b.TerrainAt(tt.x, tt.y),
			"TerrainAt(%d,%d) past the edge must read as void", tt.x, tt.y)
	}
}

func TestBoard_SetAndFillRect(t *testing.T) {
	b := New(10, 10, TerrainWall)

	b.FillRect(2, 2, 6, 6, TerrainFloor)
	b.Set(3, 3, TerrainImportant)

	assert.Equal(t, TerrainFloor, b.TerrainAt(2, 2))
	assert.Equal(t, TerrainFloor, b.TerrainAt(5, 5))
	assert.Equal(t, TerrainWall, b.TerrainAt(6, 6), "FillRect upper bound is exclusive")
	assert.Equal(t, TerrainImportant, b.TerrainAt(3, 3))

	// Out-of-bounds writes are dropped, not wrapped.
	b.Set(-1, 0, TerrainImportant)
	assert.Equal(t, TerrainVoid, b.TerrainAt(-1, 0))
}

func TestTerrain_Blocking(t *testing.T) {
	assert.True(t, TerrainWall.Blocking())
	assert.True(t, TerrainVoid.Blocking())
	assert.False(t, TerrainFloor.Blocking())
	assert.False(t, TerrainImportant.Blocking())
}
