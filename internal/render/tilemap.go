package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Ruin0x11/autotile/internal/atlas"
	"github.com/Ruin0x11/autotile/internal/autotile"
	"github.com/Ruin0x11/autotile/internal/board"
)

// drawTile is the per-cell draw descriptor: which logical tile the cell
// shows and its neighbor adjacency.
type drawTile struct {
	index atlas.TileIndex
	edges autotile.Mask
	x, y  int
}

// QuadInstance is one quarter-tile blit: a destination cell and quadrant
// plus the pixel source rect on the page the instance is batched under.
type QuadInstance struct {
	X, Y       int
	Quadrant   autotile.Quadrant
	SrcX, SrcY int
	Page       int
}

// TileMap renders the board's terrain through the tile atlas. Draw
// batches instances by atlas page: one pass per page, since a draw group
// cannot span textures.
type TileMap struct {
	manager  *atlas.TileManager
	tileSize int

	tiles    []drawTile
	textures []*ebiten.Image
}

func NewTileMap(m *atlas.TileManager, tileSize int) *TileMap {
	return &TileMap{
		manager:  m,
		tileSize: tileSize,
		textures: make([]*ebiten.Image, m.Passes()),
	}
}

// Update rebuilds the draw descriptors from the board. The whole table is
// recomputed on every call; boards are small enough that incremental
// patching is not worth the bookkeeping.
func (t *TileMap) Update(b *board.Board) {
	tiles := make([]drawTile, 0, b.W*b.H)
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			tiles = append(tiles, drawTile{
				index: atlas.TileIndex(b.TerrainAt(x, y).TileIndex()),
				edges: autotile.Edges[board.Terrain](b, x, y),
				x:     x,
				y:     y,
			})
		}
	}
	t.tiles = tiles
}

// passInstances assembles the instance list for one pass. Kept free of
// GPU state so it can be exercised headless.
func (t *TileMap) passInstances(pass int, elapsedMs int64) ([]QuadInstance, error) {
	half := t.tileSize / 2

	var instances []QuadInstance
	for _, dt := range t.tiles {
		page, err := t.manager.TilePage(dt.index)
		if err != nil {
			return nil, err
		}
		if page != pass {
			continue
		}

		tile, err := t.manager.Tile(dt.index)
		if err != nil {
			return nil, err
		}
		baseX, baseY, err := t.manager.PixelOffset(dt.index, elapsedMs)
		if err != nil {
			return nil, err
		}

		for _, q := range autotile.Quadrants {
			var srcX, srcY int
			if tile.Autotile {
				col, row := autotile.VariantCell(autotile.ResolveVariant(dt.edges, q))
				srcX, srcY = baseX+col*half, baseY+row*half
			} else {
				dx, dy := q.ScreenOffset(t.tileSize)
				srcX, srcY = baseX+dx, baseY+dy
			}
			instances = append(instances, QuadInstance{
				X:        dt.x,
				Y:        dt.y,
				Quadrant: q,
				SrcX:     srcX,
				SrcY:     srcY,
				Page:     pass,
			})
		}
	}
	return instances, nil
}

// Draw blits every visible quarter-tile, one pass per atlas page.
func (t *TileMap) Draw(screen *ebiten.Image, vp *Viewport, elapsedMs int64) error {
	half := t.tileSize / 2

	for pass := 0; pass < t.manager.Passes(); pass++ {
		tex := t.texture(pass)
		instances, err := t.passInstances(pass, elapsedMs)
		if err != nil {
			return err
		}

		for _, in := range instances {
			qx, qy := in.Quadrant.ScreenOffset(t.tileSize)
			wx := in.X*t.tileSize + qx
			wy := in.Y*t.tileSize + qy
			if !vp.Visible(wx, wy, half, half) {
				continue
			}

			src := tex.SubImage(image.Rect(in.SrcX, in.SrcY, in.SrcX+half, in.SrcY+half)).(*ebiten.Image)
			op := &ebiten.DrawImageOptions{}
			sx, sy := vp.ToScreen(wx, wy)
			op.GeoM.Translate(float64(sx), float64(sy))
			screen.DrawImage(src, op)
		}
	}
	return nil
}

// texture uploads the page buffer on first use.
func (t *TileMap) texture(pass int) *ebiten.Image {
	if t.textures[pass] == nil {
		t.textures[pass] = ebiten.NewImageFromImage(t.manager.PageImage(pass))
	}
	return t.textures[pass]
}
