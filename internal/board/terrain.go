package board

// Terrain identifies the kind of ground occupying a cell.
// TerrainVoid doubles as the out-of-bounds value: sampling past the board
// edge always reads as void, so border cells never connect off-map.
type Terrain int

const (
	TerrainFloor Terrain = iota
	TerrainWall
	TerrainImportant
	TerrainVoid
)

// TileIndex maps a terrain to the logical tile registered with the atlas.
func (t Terrain) TileIndex() int {
	switch t {
	case TerrainWall:
		return 12
	case TerrainFloor:
		return 4
	case TerrainImportant:
		return 29
	default:
		return 31
	}
}

// Blocking reports whether the terrain blocks movement.
func (t Terrain) Blocking() bool {
	return t == TerrainWall || t == TerrainVoid
}

func (t Terrain) String() string {
	switch t {
	case TerrainFloor:
		return "floor"
	case TerrainWall:
		return "wall"
	case TerrainImportant:
		return "important"
	default:
		return "void"
	}
}
