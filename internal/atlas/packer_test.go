package atlas

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rectsOverlap(a, b Rect) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

func TestSkylinePacker_NoOverlap(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	p := NewSkylinePacker(512, 512, 0)

	var placed []Rect
	for i := 0; i < 200; i++ {
		w := 8 + rng.Intn(64)
		h := 8 + rng.Intn(64)
		if !p.CanPack(w, h) {
			continue
		}
		rect, err := p.Pack(w, h)
		require.NoError(t, err)
		placed = append(placed, rect)
	}
	require.NotEmpty(t, placed)

	for i := 0; i < len(placed); i++ {
		for j := i + 1; j < len(placed); j++ {
			assert.False(t, rectsOverlap(placed[i], placed[j]),
				"rects %v and %v overlap", placed[i], placed[j])
		}
	}
}

func TestSkylinePacker_Bounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	p := NewSkylinePacker(256, 128, 0)

	for i := 0; i < 100; i++ {
		w := 4 + rng.Intn(48)
		h := 4 + rng.Intn(48)
		rect, err := p.Pack(w, h)
		if err != nil {
			assert.ErrorIs(t, err, ErrDoesNotFit)
			continue
		}
		assert.GreaterOrEqual(t, rect.X, 0)
		assert.GreaterOrEqual(t, rect.Y, 0)
		assert.LessOrEqual(t, rect.X+rect.W, 256)
		assert.LessOrEqual(t, rect.Y+rect.H, 128)
	}
}

func TestSkylinePacker_Deterministic(t *testing.T) {
	sizes := [][2]int{{30, 20}, {64, 64}, {10, 100}, {100, 10}, {48, 48}, {7, 13}, {200, 40}}

	pack := func() []Rect {
		p := NewSkylinePacker(256, 256, 0)
		var placed []Rect
		for _, s := range sizes {
			rect, err := p.Pack(s[0], s[1])
			require.NoError(t, err)
			placed = append(placed, rect)
		}
		return placed
	}

	first := pack()
	second := pack()
	assert.Equal(t, first, second, "same input sequence must produce identical placement")
}

// Two 32x32 images on a 64x64 page: the first lands at the origin; the
// second is placed by scanning skyline spans in order, and the leftmost
// span (under the first image) has room at height 32, so it goes to (0,32).
func TestSkylinePacker_FirstFitOrder(t *testing.T) {
	p := NewSkylinePacker(64, 64, 0)

	grass, err := p.Pack(32, 32)
	require.NoError(t, err)
	assert.Equal(t, Rect{X: 0, Y: 0, W: 32, H: 32}, grass)

	wall, err := p.Pack(32, 32)
	require.NoError(t, err)
	assert.Equal(t, Rect{X: 0, Y: 32, W: 32, H: 32}, wall)
}

func TestSkylinePacker_DoesNotFit(t *testing.T) {
	p := NewSkylinePacker(64, 64, 0)

	_, err := p.Pack(65, 10)
	assert.ErrorIs(t, err, ErrDoesNotFit)

	_, err = p.Pack(10, 65)
	assert.ErrorIs(t, err, ErrDoesNotFit)

	// Exact fit is still a fit.
	rect, err := p.Pack(64, 64)
	require.NoError(t, err)
	assert.Equal(t, Rect{X: 0, Y: 0, W: 64, H: 64}, rect)

	// Page is now full.
	assert.False(t, p.CanPack(1, 1))
}

func TestSkylinePacker_SkylineMerge(t *testing.T) {
	p := NewSkylinePacker(96, 96, 0)

	// Three 32-wide columns of equal height; the skyline should merge back
	// into a single span, leaving room for a full-width image below.
	for i := 0; i < 3; i++ {
		rect, err := p.Pack(32, 16)
		require.NoError(t, err)
		assert.Equal(t, Rect{X: 32 * i, Y: 0, W: 32, H: 16}, rect)
	}

	wide, err := p.Pack(96, 80)
	require.NoError(t, err)
	assert.Equal(t, Rect{X: 0, Y: 16, W: 96, H: 80}, wide)
}

func TestSkylinePacker_Padding(t *testing.T) {
	p := NewSkylinePacker(70, 70, 2)

	a, err := p.Pack(32, 32)
	require.NoError(t, err)
	assert.Equal(t, Rect{X: 0, Y: 0, W: 32, H: 32}, a)

	b, err := p.Pack(32, 32)
	require.NoError(t, err)
	assert.Equal(t, 34, b.Y, "padding should push the second placement down")

	// 32+2 padded twice exceeds 70, so a third column cannot open beside them.
	assert.False(t, p.CanPack(36, 32))
}
