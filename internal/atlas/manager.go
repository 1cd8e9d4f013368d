package atlas

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultTileSize is the edge length of one logical tile cell, in pixels.
	DefaultTileSize = 48
	// uvCell is the granularity UV coordinates are expressed in. One tile
	// cell spans two uv cells per axis, which is why offsets are doubled
	// when converted to UV space.
	uvCell = 24
)

// Config holds the recognized packing options. Rotation is deliberately
// not an option: autotile sheets are orientation-sensitive.
type Config struct {
	MaxPageWidth  int
	MaxPageHeight int
	Padding       int
	TileSize      int
}

// DefaultConfig returns the packing defaults (2048x2048 pages, no padding).
func DefaultConfig() Config {
	return Config{
		MaxPageWidth:  2048,
		MaxPageHeight: 2048,
		Padding:       0,
		TileSize:      DefaultTileSize,
	}
}

// Builder accumulates tile registrations during the load phase. Build
// consumes it; registration after Build fails with ErrBuilderConsumed.
type Builder struct {
	cfg       Config
	pages     []*Page
	locations map[TileIndex]string
	frames    map[string]*AtlasFrame
	logger    zerolog.Logger
	consumed  bool
}

// NewBuilder returns a builder with one empty page already open.
func NewBuilder(cfg Config) *Builder {
	if cfg.MaxPageWidth <= 0 || cfg.MaxPageHeight <= 0 {
		cfg.MaxPageWidth = 2048
		cfg.MaxPageHeight = 2048
	}
	if cfg.TileSize <= 0 {
		cfg.TileSize = DefaultTileSize
	}

	b := &Builder{
		cfg:       cfg,
		locations: make(map[TileIndex]string),
		frames:    make(map[string]*AtlasFrame),
		logger:    log.With().Str("component", "atlas").Logger(),
	}
	b.addPage()
	return b
}

// AddTile associates index with an AtlasTile inside the frame for the image
// at path. The image is decoded and packed on first reference to path; any
// decode or pack failure aborts the build (there is no partial atlas).
func (b *Builder) AddTile(path string, index TileIndex, tile AtlasTile) error {
	if b.consumed {
		return ErrBuilderConsumed
	}

	if _, ok := b.frames[path]; !ok {
		img, err := decodeImage(path)
		if err != nil {
			return fmt.Errorf("atlas: loading %q: %w", path, err)
		}
		if err := b.addImage(path, img); err != nil {
			return err
		}
	}

	b.frames[path].Offsets[index] = tile
	b.locations[index] = path
	return nil
}

// AddTileImage is AddTile for an already-decoded image, keyed by name.
func (b *Builder) AddTileImage(key string, img image.Image, index TileIndex, tile AtlasTile) error {
	if b.consumed {
		return ErrBuilderConsumed
	}

	if _, ok := b.frames[key]; !ok {
		if err := b.addImage(key, img); err != nil {
			return err
		}
	}

	b.frames[key].Offsets[index] = tile
	b.locations[index] = key
	return nil
}

// addImage packs img onto the first existing page with room, in page
// creation order, opening a new page only after every page refuses it.
func (b *Builder) addImage(key string, img image.Image) error {
	bounds := img.Bounds()
	if bounds.Dx() > b.cfg.MaxPageWidth || bounds.Dy() > b.cfg.MaxPageHeight {
		return fmt.Errorf("atlas: image %q is %dx%d, larger than a %dx%d page: %w",
			key, bounds.Dx(), bounds.Dy(), b.cfg.MaxPageWidth, b.cfg.MaxPageHeight, ErrDoesNotFit)
	}

	for idx, page := range b.pages {
		if !page.CanPack(img) {
			continue
		}
		rect, err := page.Insert(img)
		if err != nil {
			return fmt.Errorf("atlas: packing %q: %w", key, err)
		}
		b.frames[key] = newAtlasFrame(idx, rect, b.cfg.TileSize)
		return nil
	}

	b.addPage()

	idx := len(b.pages) - 1
	rect, err := b.pages[idx].Insert(img)
	if err != nil {
		return fmt.Errorf("atlas: packing %q on a fresh page: %w", key, err)
	}
	b.frames[key] = newAtlasFrame(idx, rect, b.cfg.TileSize)

	b.logger.Debug().
		Int("page", idx).
		Str("image", key).
		Msg("Opened new atlas page")
	return nil
}

func (b *Builder) addPage() {
	b.pages = append(b.pages, newPage(b.cfg.MaxPageWidth, b.cfg.MaxPageHeight, b.cfg.Padding))
}

// Build finalizes every page and consumes the builder. The returned
// TileManager is immutable; no further images may be added.
func (b *Builder) Build() (*TileManager, error) {
	if b.consumed {
		return nil, ErrBuilderConsumed
	}
	b.consumed = true

	m := &TileManager{
		buildID:   uuid.New(),
		locations: b.locations,
		frames:    b.frames,
		pages:     b.pages,
	}
	b.locations = nil
	b.frames = nil
	b.pages = nil

	log.Info().
		Str("build_id", m.buildID.String()).
		Int("passes", len(m.pages)).
		Int("tiles", len(m.locations)).
		Msg("Built tile atlas")
	return m, nil
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// TileManager resolves logical tile indices to texture pages and UV
// offsets. It is read-only after Build; safe to share by value of pointer
// for the lifetime of the frame loop.
type TileManager struct {
	buildID   uuid.UUID
	locations map[TileIndex]string
	frames    map[string]*AtlasFrame
	pages     []*Page
}

// BuildID identifies this atlas build in logs and debug artifacts.
func (m *TileManager) BuildID() uuid.UUID { return m.buildID }

// Passes returns the number of pages, i.e. how many draw-call groups a
// renderer needs per frame.
func (m *TileManager) Passes() int { return len(m.pages) }

// PageImage returns the composited pixel buffer for one page.
func (m *TileManager) PageImage(pass int) *image.NRGBA {
	return m.pages[pass].Image()
}

// Frame returns the atlas frame holding index.
func (m *TileManager) Frame(index TileIndex) (*AtlasFrame, error) {
	key, ok := m.locations[index]
	if !ok {
		return nil, &UnknownTileError{Index: index}
	}
	return m.frames[key], nil
}

// Tile returns the per-index tile metadata.
func (m *TileManager) Tile(index TileIndex) (AtlasTile, error) {
	frame, err := m.Frame(index)
	if err != nil {
		return AtlasTile{}, err
	}
	return frame.Offsets[index], nil
}

// TilePage returns which page/pass a tile's draw instances must be
// batched under.
func (m *TileManager) TilePage(index TileIndex) (int, error) {
	frame, err := m.Frame(index)
	if err != nil {
		return 0, err
	}
	return frame.PageIndex, nil
}

// TexRatio returns the per-axis UV size of one uv cell on the given page.
func (m *TileManager) TexRatio(pass int) [2]float64 {
	w, h := m.pages[pass].Size()
	cols := w / uvCell
	rows := h / uvCell
	return [2]float64{1.0 / float64(cols), 1.0 / float64(rows)}
}

// TextureOffset returns the normalized UV top-left for index at the given
// elapsed time. elapsedMs is wall-clock time since some epoch, never
// reset per animation.
func (m *TileManager) TextureOffset(index TileIndex, elapsedMs int64) (float64, float64, error) {
	frame, err := m.Frame(index)
	if err != nil {
		return 0, 0, err
	}
	tile := frame.Offsets[index]

	ratio := m.TexRatio(frame.PageIndex)
	addCol := frame.Rect.X/frame.TileSize + animAdvance(tile, elapsedMs)
	addRow := frame.Rect.Y / frame.TileSize

	u := float64((tile.Offset.Col+addCol)*2) * ratio[0]
	v := float64((tile.Offset.Row+addRow)*2) * ratio[1]
	return u, v, nil
}

// PixelOffset returns the pixel-space top-left of the tile's current cell
// on its page. Same cell selection as TextureOffset, without the UV
// quantization, for renderers that address the page buffer directly.
func (m *TileManager) PixelOffset(index TileIndex, elapsedMs int64) (int, int, error) {
	frame, err := m.Frame(index)
	if err != nil {
		return 0, 0, err
	}
	tile := frame.Offsets[index]

	addCol := frame.Rect.X/frame.TileSize + animAdvance(tile, elapsedMs)
	addRow := frame.Rect.Y / frame.TileSize

	return (tile.Offset.Col + addCol) * frame.TileSize, (tile.Offset.Row + addRow) * frame.TileSize, nil
}

// animAdvance is the column advance of an animated tile at the given
// elapsed time, in tile cells. Autotile frames sit every 4th column slot,
// interleaved with the quadrant variants. Animations loop forever.
func animAdvance(tile AtlasTile, elapsedMs int64) int {
	if tile.Anim == nil {
		return 0
	}
	current := elapsedMs / tile.Anim.DelayMs
	if tile.Autotile {
		return int((4 * current) % int64(tile.Anim.Frames))
	}
	return int(current % int64(tile.Anim.Frames))
}

// DumpPages writes each page buffer as pack-<n>.png under dir, for visual
// inspection of the packing. Diagnostic only.
func (m *TileManager) DumpPages(dir string) error {
	for i, page := range m.pages {
		path := filepath.Join(dir, fmt.Sprintf("pack-%d.png", i))
		if err := writePNG(path, page.Image()); err != nil {
			return fmt.Errorf("atlas: dumping page %d: %w", i, err)
		}
		log.Debug().
			Str("build_id", m.buildID.String()).
			Str("path", path).
			Msg("Dumped atlas page")
	}
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
