package autotile

// Grid is the board contract edge computation samples from. TerrainAt
// must be defined for out-of-range coordinates; the expected behavior is
// to return a dedicated void terrain there, so border cells never connect
// off-map. Wrapping or clamping grids would change border rendering and
// are not supported.
type Grid[T comparable] interface {
	Width() int
	Height() int
	TerrainAt(x, y int) T
}

// Edges computes the adjacency mask for the cell at (x, y): one bit per
// compass neighbor whose terrain equals the cell's own.
func Edges[T comparable](g Grid[T], x, y int) Mask {
	self := g.TerrainAt(x, y)

	var m Mask
	for _, dir := range Directions {
		dx, dy := dir.Offset()
		if g.TerrainAt(x+dx, y+dy) == self {
			m = m.With(dir)
		}
	}
	return m
}

// EdgeMap recomputes the mask for every cell, row-major. Boards are small
// enough that a full rebuild per mutation stays well inside frame budget;
// this does not scale to large maps and would need incremental updates
// there.
func EdgeMap[T comparable](g Grid[T]) []Mask {
	w, h := g.Width(), g.Height()
	masks := make([]Mask, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			masks[y*w+x] = Edges(g, x, y)
		}
	}
	return masks
}
