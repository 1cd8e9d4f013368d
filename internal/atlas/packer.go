package atlas

// Rect is the placement of a packed image within a page, in pixels.
type Rect struct {
	X, Y, W, H int
}

// skylineNode is one horizontal span of the packing skyline. y is the top
// of the occupied region under the span; free space starts at y.
type skylineNode struct {
	x, y, w int
}

// SkylinePacker packs rectangles into a fixed-size page using a skyline
// first-fit heuristic: candidates are scanned left to right and the first
// span that fits wins. No rotation, no trimming. Placement is fully
// deterministic for a given insertion order.
type SkylinePacker struct {
	width, height int
	padding       int
	skyline       []skylineNode
}

// NewSkylinePacker returns an empty packer for a width x height page.
// padding is dead space added to the right and bottom of every placement.
func NewSkylinePacker(width, height, padding int) *SkylinePacker {
	return &SkylinePacker{
		width:   width,
		height:  height,
		padding: padding,
		skyline: []skylineNode{{x: 0, y: 0, w: width}},
	}
}

// CanPack reports whether a w x h image currently fits somewhere on the page.
func (p *SkylinePacker) CanPack(w, h int) bool {
	_, _, ok := p.find(w+p.padding, h+p.padding)
	return ok
}

// Pack places a w x h image and returns its rect. The same scan that
// CanPack uses decides placement, so CanPack followed by Pack never
// disagrees. Returns ErrDoesNotFit when no skyline span accommodates the
// image.
func (p *SkylinePacker) Pack(w, h int) (Rect, error) {
	pw, ph := w+p.padding, h+p.padding
	i, y, ok := p.find(pw, ph)
	if !ok {
		return Rect{}, ErrDoesNotFit
	}

	x := p.skyline[i].x
	p.place(i, x, y+ph, pw)
	return Rect{X: x, Y: y, W: w, H: h}, nil
}

// find scans skyline spans in order and returns the index of the first
// node whose span fits a pw x ph placement, along with the placement y.
func (p *SkylinePacker) find(pw, ph int) (idx, y int, ok bool) {
	for i := range p.skyline {
		x := p.skyline[i].x
		if x+pw > p.width {
			continue
		}

		// Placement height is the max skyline height over the span.
		top := 0
		for j := i; j < len(p.skyline) && p.skyline[j].x < x+pw; j++ {
			if p.skyline[j].y > top {
				top = p.skyline[j].y
			}
		}
		if top+ph > p.height {
			continue
		}
		return i, top, true
	}
	return 0, 0, false
}

// place inserts a new node of height top over [x, x+w) at position i and
// clips or drops the nodes it shadows.
func (p *SkylinePacker) place(i, x, top, w int) {
	node := skylineNode{x: x, y: top, w: w}
	p.skyline = append(p.skyline, skylineNode{})
	copy(p.skyline[i+1:], p.skyline[i:])
	p.skyline[i] = node

	end := x + w
	for j := i + 1; j < len(p.skyline); {
		n := &p.skyline[j]
		if n.x >= end {
			break
		}
		shrink := end - n.x
		if n.w <= shrink {
			p.skyline = append(p.skyline[:j], p.skyline[j+1:]...)
			continue
		}
		n.x += shrink
		n.w -= shrink
		break
	}

	p.mergeSkyline()
}

// mergeSkyline collapses adjacent equal-height nodes.
func (p *SkylinePacker) mergeSkyline() {
	for j := 0; j < len(p.skyline)-1; {
		if p.skyline[j].y == p.skyline[j+1].y {
			p.skyline[j].w += p.skyline[j+1].w
			p.skyline = append(p.skyline[:j+1], p.skyline[j+2:]...)
			continue
		}
		j++
	}
}
