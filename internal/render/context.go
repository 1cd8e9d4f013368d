package render

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"

	"github.com/Ruin0x11/autotile/internal/atlas"
	"github.com/Ruin0x11/autotile/internal/board"
	"github.com/Ruin0x11/autotile/internal/config"
	"github.com/Ruin0x11/autotile/internal/ui"
)

// Context owns every render subsystem: background, tilemap, spritemap and
// the UI layer stack. There is exactly one; it is passed explicitly, never
// reached through globals. Implements ebiten.Game.
type Context struct {
	cfg *config.Config

	background *Background
	tilemap    *TileMap
	spritemap  *SpriteMap
	layers     ui.Stack

	Viewport Viewport

	watcher *ShaderWatcher
	start   time.Time
}

// NewContext builds the render context for a finalized atlas.
func NewContext(cfg *config.Config, manager *atlas.TileManager, b *board.Board) (*Context, error) {
	bg, err := NewBackground(cfg.Render.BackgroundShader)
	if err != nil {
		return nil, err
	}

	c := &Context{
		cfg:        cfg,
		background: bg,
		tilemap:    NewTileMap(manager, cfg.Atlas.TileSize),
		spritemap:  NewSpriteMap(manager, cfg.Atlas.TileSize),
		Viewport: Viewport{
			Width:  cfg.UI.Window.Width,
			Height: cfg.UI.Window.Height,
		},
		start: time.Now(),
	}
	c.tilemap.Update(b)

	if cfg.Render.WatchShaders && cfg.Render.BackgroundShader != "" {
		watcher, err := WatchShader(cfg.Render.BackgroundShader)
		if err != nil {
			log.Warn().Err(err).Msg("Shader watching disabled")
		} else {
			c.watcher = watcher
		}
	}

	return c, nil
}

// SetBoard rebuilds the tilemap's draw descriptors after a board change.
func (c *Context) SetBoard(b *board.Board) {
	c.tilemap.Update(b)
}

// Sprites exposes the sprite layer for placement.
func (c *Context) Sprites() *SpriteMap { return c.spritemap }

// Layers exposes the UI layer stack.
func (c *Context) Layers() *ui.Stack { return &c.layers }

// RefreshShaders recompiles hot-reloadable shaders; failed compiles keep
// the previous program.
func (c *Context) RefreshShaders() {
	if err := c.background.Refresh(); err != nil {
		log.Error().Err(err).Msg("Shader refresh failed, keeping previous program")
	}
}

func (c *Context) elapsedMs() int64 {
	return time.Since(c.start).Milliseconds()
}

// Update handles input and applies pending shader reloads.
func (c *Context) Update() error {
	if c.watcher != nil && c.watcher.Changed() {
		c.RefreshShaders()
	}

	if c.layers.Active() {
		for _, key := range inpututil.AppendJustPressedKeys(nil) {
			if c.layers.HandleKey(key) {
				break
			}
		}
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		if c.watcher != nil {
			c.watcher.Close()
		}
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		c.RefreshShaders()
	}

	step := c.cfg.Render.CameraStep
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		c.Viewport.Scroll(-step, 0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		c.Viewport.Scroll(step, 0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		c.Viewport.Scroll(0, -step)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		c.Viewport.Scroll(0, step)
	}

	return nil
}

// Draw renders one frame: background, tiles, sprites, then UI overlays.
func (c *Context) Draw(screen *ebiten.Image) {
	elapsed := c.elapsedMs()

	c.background.Draw(screen, elapsed)

	if err := c.tilemap.Draw(screen, &c.Viewport, elapsed); err != nil {
		log.Error().Err(err).Msg("Tilemap draw failed")
	}
	if err := c.spritemap.Draw(screen, &c.Viewport, elapsed); err != nil {
		log.Error().Err(err).Msg("Spritemap draw failed")
	}

	c.layers.Draw(screen)
}

// Layout reports the logical screen size to Ebitengine.
func (c *Context) Layout(outsideWidth, outsideHeight int) (int, int) {
	return c.cfg.UI.Window.Width, c.cfg.UI.Window.Height
}
