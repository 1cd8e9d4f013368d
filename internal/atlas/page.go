package atlas

import (
	"image"
	"image/draw"
)

// Page is one atlas texture in the making: a skyline packer plus the
// composited pixel buffer the packed images are blitted into. After the
// builder finalizes, the buffer is the texture uploaded by renderers.
type Page struct {
	packer *SkylinePacker
	rects  []Rect
	buf    *image.NRGBA
}

func newPage(width, height, padding int) *Page {
	return &Page{
		packer: NewSkylinePacker(width, height, padding),
		buf:    image.NewNRGBA(image.Rect(0, 0, width, height)),
	}
}

// CanPack reports whether img currently fits on this page.
func (p *Page) CanPack(img image.Image) bool {
	b := img.Bounds()
	return p.packer.CanPack(b.Dx(), b.Dy())
}

// Insert packs img and composites its pixels into the page buffer.
func (p *Page) Insert(img image.Image) (Rect, error) {
	b := img.Bounds()
	rect, err := p.packer.Pack(b.Dx(), b.Dy())
	if err != nil {
		return Rect{}, err
	}

	dst := image.Rect(rect.X, rect.Y, rect.X+rect.W, rect.Y+rect.H)
	draw.Draw(p.buf, dst, img, b.Min, draw.Src)

	p.rects = append(p.rects, rect)
	return rect, nil
}

// Image returns the composited page buffer.
func (p *Page) Image() *image.NRGBA { return p.buf }

// Rects returns every placement on the page, in insertion order.
func (p *Page) Rects() []Rect { return p.rects }

// Size returns the fixed page dimensions in pixels.
func (p *Page) Size() (int, int) {
	b := p.buf.Bounds()
	return b.Dx(), b.Dy()
}
