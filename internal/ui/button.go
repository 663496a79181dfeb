// internal/ui/button.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	X, Y          float32
	Width, Height float32
	Text          string
	TextColor     color.RGBA
	BgColor       color.RGBA
	HoverColor    color.RGBA
}

// NewButton создает новую кнопку.
func NewButton(x, y, width, height float32, label string) *Button {
	return &Button{
		X:          x,
		Y:          y,
		Width:      width,
		Height:     height,
		Text:       label,
		TextColor:  color.RGBA{0, 0, 0, 255},
		BgColor:    color.RGBA{200, 200, 200, 255},
		HoverColor: color.RGBA{130, 130, 130, 255},
	}
}

// Contains: точка внутри кнопки.
func (b *Button) Contains(x, y float32) bool {
	return x >= b.X && x <= b.X+b.Width && y >= b.Y && y <= b.Y+b.Height
}

// Draw отрисовывает кнопку; cursor: позиция мыши для подсветки.
func (b *Button) Draw(screen *ebiten.Image, cursorX, cursorY float32) {
	bg := b.BgColor
	if b.Contains(cursorX, cursorY) {
		bg = b.HoverColor
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.Width, b.Height, bg, true)
	vector.StrokeRect(screen, b.X, b.Y, b.Width, b.Height, 2, color.RGBA{80, 80, 80, 255}, true)

	textY := b.Y + (b.Height-float32(DefaultFace.Metrics().Height.Ceil()))/2
	drawTextCentered(screen, b.Text, b.X+b.Width/2, textY, b.TextColor)
}
