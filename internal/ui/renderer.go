package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/adriannic/chessview/internal/board"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	SelectedSquare color.RGBA
	CheckColor     color.RGBA
	Background     color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare:    color.RGBA{240, 217, 181, 255}, // Tan
		DarkSquare:     color.RGBA{181, 136, 99, 255},  // Brown
		SelectedSquare: color.RGBA{247, 247, 105, 180}, // Yellow highlight
		CheckColor:     color.RGBA{255, 100, 100, 180}, // Red
		Background:     color.RGBA{40, 44, 52, 255},    // Dark gray
	}
}

// Renderer draws the board and the projected tile state. It consumes the
// display-ordered records from the projector read-only; all orientation
// handling already happened upstream.
type Renderer struct {
	sprites    *SpriteManager
	theme      *Theme
	boardSize  int
	squareSize int
	scale      float64 // HiDPI scale factor
}

// NewRenderer creates a new renderer.
func NewRenderer(boardSize, squareSize int) *Renderer {
	return &Renderer{
		sprites:    NewSpriteManager(squareSize),
		theme:      DefaultTheme(),
		boardSize:  boardSize,
		squareSize: squareSize,
		scale:      1.0,
	}
}

// SetScale sets the HiDPI scale factor for rendering.
func (r *Renderer) SetScale(scale float64) {
	r.scale = scale
	r.sprites.SetScale(scale)
}

// s returns the scaled value for rendering.
func (r *Renderer) s(v int) float32 {
	return float32(float64(v) * r.scale)
}

// DrawBoard draws the checkered board squares in display order.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			x := r.s(col * r.squareSize)
			y := r.s(row * r.squareSize)

			c := r.theme.LightSquare
			if (row+col)%2 == 1 {
				c = r.theme.DarkSquare
			}
			vector.DrawFilledRect(screen, x, y, r.s(r.squareSize), r.s(r.squareSize), c, false)
		}
	}
}

// DrawTiles draws the highlight overlays and piece sprites for the projected
// view state.
func (r *Renderer) DrawTiles(screen *ebiten.Image, tiles [board.NumSquares]board.Tile) {
	for d, tile := range tiles {
		x, y := r.displayToPixels(d)

		if tile.InCheck {
			r.fillSquare(screen, x, y, r.theme.CheckColor)
		}
		if tile.Selected {
			r.fillSquare(screen, x, y, r.theme.SelectedSquare)
		}
		r.sprites.DrawSpriteAt(screen, tile.Sprite, int(r.s(x)), int(r.s(y)))
	}
}

// fillSquare draws a colored overlay on a square.
func (r *Renderer) fillSquare(screen *ebiten.Image, x, y int, c color.RGBA) {
	vector.DrawFilledRect(screen, r.s(x), r.s(y), r.s(r.squareSize), r.s(r.squareSize), c, false)
}

// displayToPixels converts a display index to unscaled pixel coordinates of
// the square's top-left corner.
func (r *Renderer) displayToPixels(d int) (int, int) {
	return (d % 8) * r.squareSize, (d / 8) * r.squareSize
}

// PixelsToDisplay converts unscaled pixel coordinates to a display index, or
// -1 when outside the board.
func (r *Renderer) PixelsToDisplay(x, y int) int {
	if x < 0 || x >= r.boardSize || y < 0 || y >= r.boardSize {
		return -1
	}
	return (y/r.squareSize)*8 + x/r.squareSize
}

// BoardSize returns the board size in pixels.
func (r *Renderer) BoardSize() int {
	return r.boardSize
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}
