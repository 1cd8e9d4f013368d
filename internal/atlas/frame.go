package atlas

// TileIndex is an application-defined identifier for a logical tile type.
// Many indices may share one source image; each carries its own offset and
// animation metadata.
type TileIndex int

// Offset addresses a cell within a packed frame, in tile-size units.
type Offset struct {
	Col, Row int
}

// Anim describes a looping animation: Frames cells sampled every DelayMs.
// A nil *Anim on an AtlasTile means the tile is static.
type Anim struct {
	Frames  int
	DelayMs int64
}

// AtlasTile is the per-index metadata stored inside an AtlasFrame.
// Autotile tiles address a 24-variant sheet; their animation frames are
// laid out every 4th column slot to interleave with the quadrant variants.
type AtlasTile struct {
	Offset   Offset
	Autotile bool
	Anim     *Anim
}

// AtlasFrame is the placement of one distinct source image: which page it
// landed on, where, and every tile registered against it.
type AtlasFrame struct {
	PageIndex int
	Rect      Rect
	TileSize  int
	Offsets   map[TileIndex]AtlasTile
}

func newAtlasFrame(pageIndex int, rect Rect, tileSize int) *AtlasFrame {
	return &AtlasFrame{
		PageIndex: pageIndex,
		Rect:      rect,
		TileSize:  tileSize,
		Offsets:   make(map[TileIndex]AtlasTile),
	}
}
