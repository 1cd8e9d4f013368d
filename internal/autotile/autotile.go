// Package autotile resolves which sub-tile variant each corner of a map
// cell should draw, based on same-terrain adjacency with its neighbors.
// Splitting the cell into four independently resolved quadrants lets 24
// pre-authored sub-images cover all 256 adjacency combinations.
package autotile

// Direction is one of the 8 compass neighbors of a cell. The constant
// order fixes the bit layout of Mask.
type Direction int

const (
	NE Direction = iota
	N
	NW
	E
	W
	SE
	S
	SW
)

// Directions lists every compass direction in bit order.
var Directions = [8]Direction{NE, N, NW, E, W, SE, S, SW}

// Offset returns the grid delta for the direction, y growing downward.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case NE:
		return 1, -1
	case N:
		return 0, -1
	case NW:
		return -1, -1
	case E:
		return 1, 0
	case W:
		return -1, 0
	case SE:
		return 1, 1
	case S:
		return 0, 1
	default: // SW
		return -1, 1
	}
}

func (d Direction) String() string {
	return [...]string{"NE", "N", "NW", "E", "W", "SE", "S", "SW"}[d]
}

// Mask is the 8-bit adjacency of a cell: bit d is set when the neighbor
// in direction d has the same terrain as the cell itself.
type Mask uint8

// Connected reports whether the neighbor in direction d matches.
func (m Mask) Connected(d Direction) bool { return m&(1<<uint(d)) != 0 }

// With returns the mask with direction d set.
func (m Mask) With(d Direction) Mask { return m | (1 << uint(d)) }

// Isolated reports whether the cell has no orthogonal same-type neighbor.
// Isolated cells draw a dedicated tile set regardless of diagonals.
func (m Mask) Isolated() bool {
	return !m.Connected(N) && !m.Connected(W) && !m.Connected(E) && !m.Connected(S)
}

// Quadrant is one corner sub-region of a tile.
type Quadrant int

const (
	QuadNW Quadrant = iota
	QuadNE
	QuadSW
	QuadSE
)

// Quadrants lists the four quadrants in draw order.
var Quadrants = [4]Quadrant{QuadNW, QuadNE, QuadSW, QuadSE}

// ScreenOffset returns the quadrant's pixel offset within a cell of the
// given tile size.
func (q Quadrant) ScreenOffset(tileSize int) (dx, dy int) {
	half := tileSize / 2
	return int(q&1) * half, int(q>>1) * half
}

// quadrantRule is the decision table for one quadrant: the two edge
// neighbors, the diagonal between them, the four ordinary variants from
// the corner inward, and the concave corner piece used when both edges
// connect but the diagonal does not.
type quadrantRule struct {
	horiz, vert, corner Direction
	tiles               [4]int
	cornerPiece         int
	isolated            int
}

// The variant sheet is 4 columns by 6 rows of quarter-tiles; the tables
// index into it in order from the corner inside.
var quadrantRules = [4]quadrantRule{
	QuadNW: {horiz: N, vert: W, corner: NW, tiles: [4]int{8, 9, 12, 13}, cornerPiece: 2, isolated: 0},
	QuadNE: {horiz: N, vert: E, corner: NE, tiles: [4]int{11, 10, 15, 14}, cornerPiece: 3, isolated: 1},
	QuadSW: {horiz: S, vert: W, corner: SW, tiles: [4]int{20, 21, 16, 17}, cornerPiece: 6, isolated: 4},
	QuadSE: {horiz: S, vert: E, corner: SE, tiles: [4]int{23, 22, 19, 18}, cornerPiece: 7, isolated: 5},
}

// ResolveVariant returns the variant index (0..23) the quadrant of a cell
// with the given adjacency should draw. Pure and total over all masks and
// quadrants.
func ResolveVariant(m Mask, q Quadrant) int {
	rule := quadrantRules[q]

	if m.Isolated() {
		return rule.isolated
	}

	switch {
	case !m.Connected(rule.horiz) && !m.Connected(rule.vert):
		return rule.tiles[0]
	case !m.Connected(rule.horiz) && m.Connected(rule.vert):
		return rule.tiles[1]
	case m.Connected(rule.horiz) && !m.Connected(rule.vert):
		return rule.tiles[2]
	case !m.Connected(rule.corner):
		return rule.cornerPiece
	default:
		return rule.tiles[3]
	}
}

// VariantCell converts a variant index to its (col, row) cell within the
// 4-column variant sheet.
func VariantCell(variant int) (col, row int) {
	return variant % 4, variant / 4
}
