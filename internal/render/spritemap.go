package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Ruin0x11/autotile/internal/atlas"
)

// Sprite is one drawable placed on the grid.
type Sprite struct {
	Index atlas.TileIndex
	X, Y  int
}

// SpriteInstance is a resolved sprite blit for one pass.
type SpriteInstance struct {
	X, Y       int
	SrcX, SrcY int
	W, H       int
	Page       int
}

// SpriteMap renders free-standing sprites (actors, items) from the same
// atlas the tilemap uses, batched per page like the tilemap passes.
type SpriteMap struct {
	manager  *atlas.TileManager
	tileSize int

	sprites  []Sprite
	textures []*ebiten.Image
}

func NewSpriteMap(m *atlas.TileManager, tileSize int) *SpriteMap {
	return &SpriteMap{
		manager:  m,
		tileSize: tileSize,
		textures: make([]*ebiten.Image, m.Passes()),
	}
}

// Add places a sprite. Sprites persist until Clear.
func (s *SpriteMap) Add(sp Sprite) {
	s.sprites = append(s.sprites, sp)
}

// Clear removes every sprite.
func (s *SpriteMap) Clear() {
	s.sprites = s.sprites[:0]
}

// passInstances resolves sprite source rects for one pass; pure, headless.
func (s *SpriteMap) passInstances(pass int, elapsedMs int64) ([]SpriteInstance, error) {
	var instances []SpriteInstance
	for _, sp := range s.sprites {
		page, err := s.manager.TilePage(sp.Index)
		if err != nil {
			return nil, err
		}
		if page != pass {
			continue
		}

		frame, err := s.manager.Frame(sp.Index)
		if err != nil {
			return nil, err
		}
		tile := frame.Offsets[sp.Index]

		srcX, srcY, err := s.manager.PixelOffset(sp.Index, elapsedMs)
		if err != nil {
			return nil, err
		}

		w, h := frame.Rect.W, frame.Rect.H
		if tile.Anim != nil && tile.Anim.Frames > 0 {
			w = frame.Rect.W / tile.Anim.Frames
		}

		instances = append(instances, SpriteInstance{
			X:    sp.X,
			Y:    sp.Y,
			SrcX: srcX,
			SrcY: srcY,
			W:    w,
			H:    h,
			Page: pass,
		})
	}
	return instances, nil
}

// Draw blits every visible sprite, one pass per atlas page.
func (s *SpriteMap) Draw(screen *ebiten.Image, vp *Viewport, elapsedMs int64) error {
	for pass := 0; pass < s.manager.Passes(); pass++ {
		tex := s.texture(pass)
		instances, err := s.passInstances(pass, elapsedMs)
		if err != nil {
			return err
		}

		for _, in := range instances {
			wx, wy := in.X*s.tileSize, in.Y*s.tileSize
			if !vp.Visible(wx, wy, in.W, in.H) {
				continue
			}

			src := tex.SubImage(image.Rect(in.SrcX, in.SrcY, in.SrcX+in.W, in.SrcY+in.H)).(*ebiten.Image)
			op := &ebiten.DrawImageOptions{}
			sx, sy := vp.ToScreen(wx, wy)
			op.GeoM.Translate(float64(sx), float64(sy))
			screen.DrawImage(src, op)
		}
	}
	return nil
}

func (s *SpriteMap) texture(pass int) *ebiten.Image {
	if s.textures[pass] == nil {
		s.textures[pass] = ebiten.NewImageFromImage(s.manager.PageImage(pass))
	}
	return s.textures[pass]
}
