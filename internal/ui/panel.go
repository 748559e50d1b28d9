package ui

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/adriannic/chessview/internal/storage"
)

// Panel dimensions
const (
	PanelPadding   = 20
	SectionSpacing = 28
	ButtonHeight   = 40
	SectionLabelH  = 20
)

// Panel colors
var (
	panelBg         = color.RGBA{38, 40, 45, 255}    // Dark background
	buttonBg        = color.RGBA{50, 54, 60, 255}    // Button background (darker)
	buttonHoverBg   = color.RGBA{65, 70, 78, 255}    // Button hover (brighter)
	buttonPressedBg = color.RGBA{40, 44, 50, 255}    // Button pressed (darker)
	buttonBorder    = color.RGBA{70, 75, 82, 255}    // Subtle button border
	accentColor     = color.RGBA{76, 175, 120, 255}  // Green accent
	textPrimary     = color.RGBA{240, 240, 245, 255} // Primary text
	textSecondary   = color.RGBA{160, 165, 175, 255} // Secondary text
	textMuted       = color.RGBA{120, 125, 135, 255} // Muted text
	dividerColor    = color.RGBA{60, 65, 72, 255}    // Divider line
	statusGameOver  = color.RGBA{255, 200, 80, 255}  // Yellow for finished games
)

// Panel is the side strip with the game status, the reset button, the board
// flipping checkbox and the aggregate statistics.
type Panel struct {
	game *Game

	resetBtn *Button
	flipBox  *Checkbox

	stats *storage.GameStats
}

// NewPanel creates the panel for the given game.
func NewPanel(g *Game) *Panel {
	p := &Panel{game: g}

	x := BoardSize + PanelPadding
	w := PanelWidth - PanelPadding*2

	btnY := 150
	p.resetBtn = NewButton(x, btnY, w, ButtonHeight, "Reset", func() {
		g.ResetAction()
	})

	p.flipBox = NewCheckbox(x, btnY+ButtonHeight+16, "Board flipping", g.ctrl.ShouldFlip())

	p.RefreshStats()
	return p
}

// RefreshStats reloads the aggregate statistics from storage.
func (p *Panel) RefreshStats() {
	if p.game.store == nil {
		return
	}
	stats, err := p.game.store.LoadStats()
	if err != nil {
		log.Printf("Warning: Failed to load stats: %v", err)
		return
	}
	p.stats = stats
}

// HandleInput processes panel interactions. Returns true when the panel
// consumed the input.
func (p *Panel) HandleInput(input *InputHandler) bool {
	if p.resetBtn.Update(input) {
		return true
	}
	if p.flipBox.Update(input) {
		p.game.ToggleFlipAction()
		// The controller owns the setting; mirror it back.
		p.flipBox.Checked = p.game.ctrl.ShouldFlip()
		return true
	}

	// Swallow clicks that land anywhere else on the panel.
	return input.ClickedInBounds(BoardSize, 0, PanelWidth, ScreenHeight)
}

// AnyButtonHovered reports whether a panel control is hovered, for the
// pointer cursor.
func (p *Panel) AnyButtonHovered() bool {
	return p.resetBtn.IsHovered() || p.flipBox.IsHovered()
}

// Draw renders the panel.
func (p *Panel) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, scaleF(BoardSize), 0, scaleF(PanelWidth), scaleF(ScreenHeight), panelBg, false)

	x := BoardSize + PanelPadding
	y := PanelPadding + 8

	p.drawText(screen, "ChessView", x, y, textPrimary, GetBoldFace())
	y += SectionSpacing

	DrawDivider(screen, x, y, PanelWidth-PanelPadding*2)
	y += SectionSpacing - 8

	statusColor := textSecondary
	status := p.game.ctrl.StatusText()
	if status != "Ongoing" {
		statusColor = statusGameOver
	}
	p.drawText(screen, "Status", x, y, textMuted, GetRegularFace())
	p.drawText(screen, status, x+110, y, statusColor, GetRegularFace())
	y += SectionLabelH

	p.drawText(screen, "Turn", x, y, textMuted, GetRegularFace())
	p.drawText(screen, p.game.ctrl.TurnText(), x+110, y, textSecondary, GetRegularFace())

	p.resetBtn.Draw(screen)
	p.flipBox.Draw(screen)

	p.drawStats(screen, x, p.flipBox.Y+60)
}

// drawStats renders the aggregate statistics section.
func (p *Panel) drawStats(screen *ebiten.Image, x, y int) {
	DrawDivider(screen, x, y, PanelWidth-PanelPadding*2)
	y += SectionSpacing - 8

	p.drawText(screen, "Statistics", x, y, textMuted, GetRegularFace())
	y += SectionLabelH

	if p.stats == nil {
		p.drawText(screen, "Unavailable", x, y, textMuted, GetRegularFace())
		return
	}

	rows := []struct {
		label string
		value int
	}{
		{"Games", p.stats.GamesPlayed},
		{"White wins", p.stats.WhiteWins},
		{"Black wins", p.stats.BlackWins},
		{"Draws", p.stats.Draws},
	}
	for _, row := range rows {
		p.drawText(screen, row.label, x, y, textSecondary, GetRegularFace())
		p.drawText(screen, fmt.Sprintf("%d", row.value), x+110, y, textPrimary, GetRegularFace())
		y += SectionLabelH
	}
}

// drawText draws a string at unscaled panel coordinates.
func (p *Panel) drawText(screen *ebiten.Image, s string, x, y int, c color.RGBA, face *text.GoTextFace) {
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(scaleD(x), scaleD(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}
