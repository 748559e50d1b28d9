package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Widget colors (shared palette lives in panel.go)
var (
	widgetBg      = color.RGBA{48, 52, 58, 255}
	widgetBorder  = color.RGBA{68, 72, 78, 255}
	widgetHoverBg = color.RGBA{65, 70, 78, 255}
	checkboxCheck = color.RGBA{76, 175, 120, 255}
)

// Button is a clickable labelled rectangle.
type Button struct {
	X, Y, W, H int
	Label      string
	OnClick    func()
	hovered    bool
	pressed    bool
}

// NewButton creates a new button.
func NewButton(x, y, w, h int, label string, onClick func()) *Button {
	return &Button{X: x, Y: y, W: w, H: h, Label: label, OnClick: onClick}
}

// Update handles button input. Returns true when the button was clicked.
func (b *Button) Update(input *InputHandler) bool {
	b.hovered = input.IsInBounds(b.X, b.Y, b.W, b.H)
	b.pressed = b.hovered && input.IsLeftPressed()

	if b.hovered && input.IsLeftJustPressed() {
		if b.OnClick != nil {
			b.OnClick()
		}
		return true
	}
	return false
}

// IsHovered reports whether the pointer is over the button.
func (b *Button) IsHovered() bool {
	return b.hovered
}

// Draw renders the button.
func (b *Button) Draw(screen *ebiten.Image) {
	face := GetRegularFace()
	if face == nil {
		return
	}

	bgColor := buttonBg
	borderC := buttonBorder
	if b.pressed {
		bgColor = buttonPressedBg
	} else if b.hovered {
		bgColor = buttonHoverBg
		borderC = accentColor
	}

	vector.DrawFilledRect(screen, scaleF(b.X), scaleF(b.Y), scaleF(b.W), scaleF(b.H), bgColor, false)
	vector.StrokeRect(screen, scaleF(b.X), scaleF(b.Y), scaleF(b.W), scaleF(b.H), float32(UIScale), borderC, false)

	w, h := MeasureText(b.Label, face)
	op := &text.DrawOptions{}
	op.GeoM.Translate(scaleD(b.X)+scaleD(b.W)/2-w/2, scaleD(b.Y)+scaleD(b.H)/2-h/2)
	op.ColorScale.ScaleWithColor(textPrimary)
	text.Draw(screen, b.Label, face, op)
}

// Checkbox is a toggleable checkbox widget.
type Checkbox struct {
	X, Y    int
	Label   string
	Checked bool
	hovered bool
}

// NewCheckbox creates a new checkbox.
func NewCheckbox(x, y int, label string, checked bool) *Checkbox {
	return &Checkbox{X: x, Y: y, Label: label, Checked: checked}
}

// Update handles checkbox input. Returns true when the box was toggled.
func (cb *Checkbox) Update(input *InputHandler) bool {
	cb.hovered = input.IsInBounds(cb.X, cb.Y, 200, 24)

	if cb.hovered && input.IsLeftJustPressed() {
		cb.Checked = !cb.Checked
		return true
	}
	return false
}

// IsHovered reports whether the pointer is over the checkbox.
func (cb *Checkbox) IsHovered() bool {
	return cb.hovered
}

// Draw renders the checkbox.
func (cb *Checkbox) Draw(screen *ebiten.Image) {
	face := GetRegularFace()
	if face == nil {
		return
	}

	boxX := scaleF(cb.X)
	boxY := scaleF(cb.Y)
	boxSize := scaleF(20)

	bgColor := widgetBg
	if cb.hovered {
		bgColor = widgetHoverBg
	}
	vector.DrawFilledRect(screen, boxX, boxY, boxSize, boxSize, bgColor, false)

	borderC := widgetBorder
	if cb.hovered {
		borderC = accentColor
	} else if cb.Checked {
		borderC = checkboxCheck
	}
	vector.StrokeRect(screen, boxX, boxY, boxSize, boxSize, float32(UIScale*2), borderC, false)

	if cb.Checked {
		vector.StrokeLine(screen, boxX+scaleF(4), boxY+scaleF(10), boxX+scaleF(8), boxY+scaleF(14), float32(UIScale*2), checkboxCheck, false)
		vector.StrokeLine(screen, boxX+scaleF(8), boxY+scaleF(14), boxX+scaleF(16), boxY+scaleF(6), float32(UIScale*2), checkboxCheck, false)
	}

	op := &text.DrawOptions{}
	_, h := MeasureText(cb.Label, face)
	op.GeoM.Translate(scaleD(cb.X+30), scaleD(cb.Y+10)-h/2)
	textColor := textSecondary
	if cb.Checked {
		textColor = textPrimary
	}
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(screen, cb.Label, face, op)
}

// DrawDivider draws a horizontal divider line.
func DrawDivider(screen *ebiten.Image, x, y, w int) {
	vector.DrawFilledRect(screen, scaleF(x), scaleF(y), scaleF(w), float32(UIScale), dividerColor, false)
}
