// Package ui implements the chessboard viewer UI using Ebitengine.
package ui

import (
	"bytes"
	"embed"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed assets/pieces/*.svg
var pieceAssets embed.FS

// SpriteManager rasterizes and caches piece sprites, keyed by the sprite
// keys the projector emits (FEN piece letters: "P".."K" white, "p".."k"
// black).
type SpriteManager struct {
	pieces      map[string]*ebiten.Image
	size        int     // Display size (e.g., 80)
	renderScale float64 // Render at higher resolution for quality (e.g., 3.0)
	scale       float64 // HiDPI scale factor
}

// spriteFiles maps sprite keys to their asset file paths.
var spriteFiles = map[string]string{
	"P": "assets/pieces/wP.svg",
	"N": "assets/pieces/wN.svg",
	"B": "assets/pieces/wB.svg",
	"R": "assets/pieces/wR.svg",
	"Q": "assets/pieces/wQ.svg",
	"K": "assets/pieces/wK.svg",
	"p": "assets/pieces/bP.svg",
	"n": "assets/pieces/bN.svg",
	"b": "assets/pieces/bB.svg",
	"r": "assets/pieces/bR.svg",
	"q": "assets/pieces/bQ.svg",
	"k": "assets/pieces/bK.svg",
}

// NewSpriteManager creates a sprite manager with pieces of the given display
// size. A sprite that fails to load makes the board unrenderable, so loading
// fails fast.
func NewSpriteManager(size int) *SpriteManager {
	sm := &SpriteManager{
		pieces:      make(map[string]*ebiten.Image),
		size:        size,
		renderScale: 3.0, // Render at 3x resolution for sharp scaling
		scale:       1.0,
	}
	sm.loadPieces()
	return sm
}

// loadPieces rasterizes every embedded SVG sprite.
func (sm *SpriteManager) loadPieces() {
	renderSize := int(float64(sm.size) * sm.renderScale)

	for key, path := range spriteFiles {
		data, err := pieceAssets.ReadFile(path)
		if err != nil {
			log.Fatalf("Failed to read piece asset %s: %v", path, err)
		}

		icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
		if err != nil {
			log.Fatalf("Failed to parse SVG %s: %v", path, err)
		}

		icon.SetTarget(0, 0, float64(renderSize), float64(renderSize))

		rgba := image.NewRGBA(image.Rect(0, 0, renderSize, renderSize))
		scanner := rasterx.NewScannerGV(renderSize, renderSize, rgba, rgba.Bounds())
		raster := rasterx.NewDasher(renderSize, renderSize, scanner)
		icon.Draw(raster, 1.0)

		sm.pieces[key] = ebiten.NewImageFromImage(rgba)
	}
}

// SetScale sets the HiDPI scale factor for drawing.
func (sm *SpriteManager) SetScale(scale float64) {
	sm.scale = scale
}

// DrawSpriteAt draws the sprite for the given key at scaled pixel
// coordinates. An empty key means an empty square and draws nothing.
func (sm *SpriteManager) DrawSpriteAt(screen *ebiten.Image, key string, x, y int) {
	if key == "" {
		return
	}
	sprite, ok := sm.pieces[key]
	if !ok {
		log.Panicf("ui: no sprite for key %q", key)
	}

	op := &ebiten.DrawImageOptions{}
	// Scale down from render resolution to display size, then up for HiDPI.
	op.GeoM.Scale(sm.scale/sm.renderScale, sm.scale/sm.renderScale)
	op.GeoM.Translate(float64(x), float64(y))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}

// Size returns the display size of piece sprites.
func (sm *SpriteManager) Size() int {
	return sm.size
}
