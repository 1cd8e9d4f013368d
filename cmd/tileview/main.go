package main

import (
	"flag"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Ruin0x11/autotile/internal/atlas"
	"github.com/Ruin0x11/autotile/internal/board"
	"github.com/Ruin0x11/autotile/internal/config"
	"github.com/Ruin0x11/autotile/internal/render"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	cfg := config.Get()

	b := demoBoard()

	manager, err := buildAtlas(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build tile atlas")
	}

	if cfg.Atlas.DumpPages {
		if err := manager.DumpPages(cfg.Atlas.DumpDir); err != nil {
			log.Error().Err(err).Msg("Failed to dump atlas pages")
		}
	}

	ctx, err := render.NewContext(cfg, manager, b)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create render context")
	}
	ctx.Sprites().Add(render.Sprite{Index: 100, X: 6, Y: 6})

	ebiten.SetWindowSize(cfg.UI.Window.Width, cfg.UI.Window.Height)
	ebiten.SetWindowTitle(cfg.UI.Window.Title)

	if err := ebiten.RunGame(ctx); err != nil {
		log.Fatal().Err(err).Msg("Game loop exited with error")
	}
}

// demoBoard reproduces the demo scene: a walled map with two overlapping
// floor rooms and a few wall pillars.
func demoBoard() *board.Board {
	b := board.New(20, 20, board.TerrainWall)

	b.FillRect(2, 2, 8, 8, board.TerrainFloor)
	b.FillRect(6, 6, 10, 10, board.TerrainImportant)

	b.Set(6, 6, board.TerrainWall)
	b.Set(6, 5, board.TerrainWall)
	b.Set(6, 7, board.TerrainWall)

	return b
}

// buildAtlas registers every terrain's variant sheet plus the demo
// sprite. Sheets load from the configured texture directory when present;
// otherwise a generated placeholder sheet stands in so the demo runs
// without assets.
func buildAtlas(cfg *config.Config) (*atlas.TileManager, error) {
	builder := atlas.NewBuilder(atlas.Config{
		MaxPageWidth:  cfg.Atlas.MaxPageWidth,
		MaxPageHeight: cfg.Atlas.MaxPageHeight,
		Padding:       cfg.Atlas.Padding,
		TileSize:      cfg.Atlas.TileSize,
	})

	terrains := []struct {
		t    board.Terrain
		name string
		base color.NRGBA
	}{
		{board.TerrainFloor, "floor", color.NRGBA{90, 140, 70, 255}},
		{board.TerrainWall, "wall", color.NRGBA{110, 110, 120, 255}},
		{board.TerrainImportant, "important", color.NRGBA{170, 140, 60, 255}},
		{board.TerrainVoid, "void", color.NRGBA{20, 20, 25, 255}},
	}

	half := cfg.Atlas.TileSize / 2
	for _, tr := range terrains {
		idx := atlas.TileIndex(tr.t.TileIndex())
		tile := atlas.AtlasTile{Autotile: true}

		path := filepath.Join(cfg.Assets.TextureDir, tr.name+".png")
		if _, err := os.Stat(path); err == nil {
			if err := builder.AddTile(path, idx, tile); err != nil {
				return nil, err
			}
			continue
		}

		log.Warn().Str("terrain", tr.name).Str("path", path).
			Msg("Texture missing, generating placeholder sheet")
		if err := builder.AddTileImage(tr.name, variantSheet(tr.base, half), idx, tile); err != nil {
			return nil, err
		}
	}

	// Demo sprite on index 100.
	spritePath := filepath.Join(cfg.Assets.TextureDir, "sprite.png")
	if _, err := os.Stat(spritePath); err == nil {
		if err := builder.AddTile(spritePath, 100, atlas.AtlasTile{}); err != nil {
			return nil, err
		}
	} else {
		hero := solidSheet(cfg.Atlas.TileSize, cfg.Atlas.TileSize, color.NRGBA{220, 60, 60, 255})
		if err := builder.AddTileImage("sprite", hero, 100, atlas.AtlasTile{}); err != nil {
			return nil, err
		}
	}

	return builder.Build()
}

// variantSheet generates a 4x6 autotile variant sheet of half-tile cells,
// shading each variant slightly so edges are visible without real art.
func variantSheet(base color.NRGBA, half int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4*half, 6*half))
	for variant := 0; variant < 24; variant++ {
		col, row := variant%4, variant/4
		shade := uint8(variant * 5)
		c := color.NRGBA{
			R: clamp8(int(base.R) + int(shade)),
			G: clamp8(int(base.G) + int(shade)),
			B: clamp8(int(base.B) + int(shade)),
			A: 255,
		}
		for y := row * half; y < (row+1)*half; y++ {
			for x := col * half; x < (col+1)*half; x++ {
				img.SetNRGBA(x, y, c)
			}
		}
	}
	return img
}

func solidSheet(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func clamp8(v int) uint8 {
	if v > 255 {
		return 255
	}
	return uint8(v)
}
