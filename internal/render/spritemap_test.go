package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ruin0x11/autotile/internal/atlas"
)

func TestSpriteMap_PassInstances(t *testing.T) {
	b := atlas.NewBuilder(atlas.DefaultConfig())
	require.NoError(t, b.AddTileImage("hero", solidImage(34, 34, color.White), 100, atlas.AtlasTile{}))
	m, err := b.Build()
	require.NoError(t, err)

	sm := NewSpriteMap(m, 48)
	sm.Add(Sprite{Index: 100, X: 6, Y: 6})
	sm.Add(Sprite{Index: 100, X: 3, Y: 2})

	instances, err := sm.passInstances(0, 0)
	require.NoError(t, err)
	require.Len(t, instances, 2)

	assert.Equal(t, 6, instances[0].X)
	assert.Equal(t, 6, instances[0].Y)
	assert.Equal(t, 34, instances[0].W)
	assert.Equal(t, 34, instances[0].H)
	assert.Equal(t, 0, instances[0].SrcX)
	assert.Equal(t, 0, instances[0].SrcY)
}

func TestSpriteMap_AnimatedFrameWidth(t *testing.T) {
	b := atlas.NewBuilder(atlas.DefaultConfig())
	// 4-frame strip, each frame 32px wide.
	require.NoError(t, b.AddTileImage("torch", solidImage(128, 32, color.White), 0,
		atlas.AtlasTile{Anim: &atlas.Anim{Frames: 4, DelayMs: 100}}))
	m, err := b.Build()
	require.NoError(t, err)

	sm := NewSpriteMap(m, 48)
	sm.Add(Sprite{Index: 0, X: 0, Y: 0})

	instances, err := sm.passInstances(0, 0)
	require.NoError(t, err)
	require.Len(t, instances, 1)
	assert.Equal(t, 32, instances[0].W, "animated sprite width is one frame of the strip")
	assert.Equal(t, 32, instances[0].H)
}

func TestSpriteMap_UnknownIndex(t *testing.T) {
	b := atlas.NewBuilder(atlas.DefaultConfig())
	require.NoError(t, b.AddTileImage("hero", solidImage(34, 34, color.White), 100, atlas.AtlasTile{}))
	m, err := b.Build()
	require.NoError(t, err)

	sm := NewSpriteMap(m, 48)
	sm.Add(Sprite{Index: 7})

	_, err = sm.passInstances(0, 0)
	var unknown *atlas.UnknownTileError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, atlas.TileIndex(7), unknown.Index)
}

func TestSpriteMap_Clear(t *testing.T) {
	b := atlas.NewBuilder(atlas.DefaultConfig())
	require.NoError(t, b.AddTileImage("hero", solidImage(34, 34, color.White), 100, atlas.AtlasTile{}))
	m, err := b.Build()
	require.NoError(t, err)

	sm := NewSpriteMap(m, 48)
	sm.Add(Sprite{Index: 100})
	sm.Clear()

	instances, err := sm.passInstances(0, 0)
	require.NoError(t, err)
	assert.Empty(t, instances)
}
