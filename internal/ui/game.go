package ui

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/adriannic/chessview/internal/board"
	"github.com/adriannic/chessview/internal/rules"
	"github.com/adriannic/chessview/internal/storage"
)

// UI Constants
const (
	ScreenWidth  = 960
	ScreenHeight = 640
	BoardSize    = 640
	SquareSize   = BoardSize / 8
	PanelWidth   = ScreenWidth - BoardSize
)

// UIScale is the global HiDPI scale factor for all UI drawing.
// Set by Game.Layout() and used by the widgets and the panel.
var UIScale float64 = 1.0

func scaleF(v int) float32 { return float32(float64(v) * UIScale) }
func scaleD(v int) float64 { return float64(v) * UIScale }

// Game implements ebiten.Game. It owns the board controller and routes the
// raw input events (tile clicks, the flip checkbox, the reset button) into
// it; every frame draws the controller's projected view state.
type Game struct {
	ctrl *board.Controller

	// Components
	renderer *Renderer
	input    *InputHandler
	panel    *Panel

	// Storage
	store *storage.Storage
	prefs *storage.Preferences

	// Set once the current game's result has been recorded.
	resultRecorded bool

	// HiDPI scaling
	scale float64
}

// NewGame creates the viewer at the starting position.
func NewGame() *Game {
	g := &Game{
		ctrl:     board.NewController(),
		renderer: NewRenderer(BoardSize, SquareSize),
		input:    NewInputHandler(),
		scale:    1.0,
	}

	var err error
	g.store, err = storage.NewStorage()
	if err != nil {
		log.Printf("Warning: Failed to initialize storage: %v", err)
	}

	g.loadPreferences()
	g.panel = NewPanel(g)

	return g
}

// loadPreferences loads user preferences and applies the flip setting.
func (g *Game) loadPreferences() {
	if g.store == nil {
		g.prefs = storage.DefaultPreferences()
	} else {
		var err error
		g.prefs, err = g.store.LoadPreferences()
		if err != nil {
			log.Printf("Warning: Failed to load preferences: %v", err)
			g.prefs = storage.DefaultPreferences()
		}
	}

	g.ctrl.SetFlip(g.prefs.Flipped)
}

// savePreferences persists the current settings.
func (g *Game) savePreferences() {
	if g.store == nil {
		return
	}
	g.prefs.Flipped = g.ctrl.ShouldFlip()
	if err := g.store.SavePreferences(g.prefs); err != nil {
		log.Printf("Warning: Failed to save preferences: %v", err)
	}
}

// Update handles one frame of input.
func (g *Game) Update() error {
	g.input.Update()

	if g.panel.HandleInput(g.input) {
		g.updateCursor()
		return nil
	}

	g.handleBoardInput()
	g.updateCursor()
	return nil
}

// handleBoardInput decodes a click on the board into a tile event. The pixel
// position maps to a display index, which is translated to the logical tile
// the controller expects; orientation decoding happens inside the controller.
func (g *Game) handleBoardInput() {
	if !g.input.IsLeftJustPressed() {
		return
	}

	mx, my := g.input.MousePosition()
	d := g.renderer.PixelsToDisplay(mx, my)
	if d < 0 {
		return
	}

	g.ctrl.HandleTileClick(int(board.DisplayToLogical(d)))
	g.maybeRecordResult()
}

// maybeRecordResult records the game once it reaches a terminal status.
func (g *Game) maybeRecordResult() {
	status := g.ctrl.Board().Status()
	if status == rules.Ongoing || g.resultRecorded {
		return
	}
	g.resultRecorded = true

	if g.store == nil {
		return
	}

	winner := storage.WinnerNone
	if status == rules.Checkmate {
		// The side to move is the one that was mated.
		if g.ctrl.Board().SideToMove() == rules.White {
			winner = storage.WinnerBlack
		} else {
			winner = storage.WinnerWhite
		}
	}

	if err := g.store.RecordGame(winner); err != nil {
		log.Printf("Warning: Failed to record game: %v", err)
		return
	}
	g.panel.RefreshStats()
}

// ToggleFlipAction toggles board flipping and persists the setting.
func (g *Game) ToggleFlipAction() {
	g.ctrl.ToggleFlip()
	g.savePreferences()
}

// ResetAction starts a fresh game. The flip setting survives.
func (g *Game) ResetAction() {
	g.ctrl.Reset()
	g.resultRecorded = false
}

// updateCursor sets the cursor shape based on what is being hovered.
func (g *Game) updateCursor() {
	if g.panel.AnyButtonHovered() {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

// Draw renders one frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.SetScale(g.scale)

	screen.Fill(g.renderer.Theme().Background)

	g.renderer.DrawBoard(screen)
	g.renderer.DrawTiles(screen, g.ctrl.Tiles())
	g.panel.Draw(screen)
}

// Layout returns the screen dimensions, scaled by the device scale factor
// for crisp rendering on HiDPI displays.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scale = ebiten.Monitor().DeviceScaleFactor()
	if g.scale < 1.0 {
		g.scale = 1.0
	}
	UIScale = g.scale

	return int(float64(ScreenWidth) * g.scale), int(float64(ScreenHeight) * g.scale)
}

// Close releases game resources.
func (g *Game) Close() {
	if g.store != nil {
		g.store.Close()
	}
}
