package board

// Board is a rectangular grid of terrain cells, row-major.
type Board struct {
	W, H int
	T    []Terrain // length = W*H (row-major)
}

// New returns a board with every cell set to fill.
func New(w, h int, fill Terrain) *Board {
	b := &Board{W: w, H: h, T: make([]Terrain, w*h)}
	for i := range b.T {
		b.T[i] = fill
	}
	return b
}

func (b *Board) Idx(x, y int) int      { return y*b.W + x }
func (b *Board) XY(idx int) (int, int) { return idx % b.W, idx / b.W }

func (b *Board) Width() int  { return b.W }
func (b *Board) Height() int { return b.H }

// InBounds checks if coordinates are within board boundaries.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// TerrainAt returns the terrain at (x, y). Out-of-bounds coordinates read
// as TerrainVoid; adjacency computations rely on this.
func (b *Board) TerrainAt(x, y int) Terrain {
	if !b.InBounds(x, y) {
		return TerrainVoid
	}
	return b.T[b.Idx(x, y)]
}

// Set writes the terrain at (x, y). Out-of-bounds writes are ignored.
func (b *Board) Set(x, y int, t Terrain) {
	if !b.InBounds(x, y) {
		return
	}
	b.T[b.Idx(x, y)] = t
}

// FillRect sets every cell in the half-open rectangle [x0,x1) x [y0,y1).
func (b *Board) FillRect(x0, y0, x1, y1 int, t Terrain) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			b.Set(x, y, t)
		}
	}
}
