package render

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
)

// defaultShaderSrc is the built-in background used when no shader file is
// configured or the file is missing at startup.
const defaultShaderSrc = `//kage:unit pixels

package main

var Time float
var Resolution vec2

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	uv := dstPos.xy / Resolution
	wave := 0.5 + 0.5*sin(Time*0.5+uv.x*4.0)
	return vec4(0.04+0.03*wave, 0.05, 0.09+0.04*uv.y, 1.0)
}
`

// Background fills the screen with a full-viewport Kage shader. The
// shader source can be hot-reloaded; a failed compile keeps the previous
// program running and reports the error instead of crashing the frame
// loop.
type Background struct {
	shader *ebiten.Shader
	path   string
}

// NewBackground compiles the shader at path, or the built-in source when
// path is empty or unreadable.
func NewBackground(path string) (*Background, error) {
	b := &Background{path: path}

	src := []byte(defaultShaderSrc)
	if path != "" {
		if data, err := os.ReadFile(path); err == nil {
			src = data
		} else {
			log.Warn().Err(err).Str("path", path).Msg("Background shader missing, using built-in")
		}
	}

	shader, err := ebiten.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("render: compiling background shader: %w", err)
	}
	b.shader = shader
	return b, nil
}

// Refresh recompiles the shader from its file. On any failure the current
// shader stays in place and the error is returned for reporting.
func (b *Background) Refresh() error {
	if b.path == "" {
		return nil
	}

	src, err := os.ReadFile(b.path)
	if err != nil {
		return fmt.Errorf("render: reading background shader: %w", err)
	}

	shader, err := ebiten.NewShader(src)
	if err != nil {
		return fmt.Errorf("render: recompiling background shader: %w", err)
	}

	b.shader.Deallocate()
	b.shader = shader
	log.Info().Str("path", b.path).Msg("Reloaded background shader")
	return nil
}

// Draw fills the viewport with the shader output.
func (b *Background) Draw(screen *ebiten.Image, elapsedMs int64) {
	bounds := screen.Bounds()
	op := &ebiten.DrawRectShaderOptions{}
	op.Uniforms = map[string]any{
		"Time":       float32(elapsedMs) / 1000.0,
		"Resolution": []float32{float32(bounds.Dx()), float32(bounds.Dy())},
	}
	screen.DrawRectShader(bounds.Dx(), bounds.Dy(), b.shader, op)
}
