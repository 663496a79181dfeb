// internal/ui/text.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-space-arcade/internal/config"
)

// DefaultFace: моноширинный шрифт HUD.
var DefaultFace font.Face = basicfont.Face7x13

// TextWidth: ширина строки моноширинного шрифта.
func TextWidth(s string) float32 {
	return float32(len([]rune(s)) * config.TextCharWidth)
}

// drawText рисует строку; y: верх строки.
func drawText(screen *ebiten.Image, s string, x, y float32, clr color.Color) {
	text.Draw(screen, s, DefaultFace, int(x), int(y)+DefaultFace.Metrics().Ascent.Ceil(), clr)
}

// drawTextCentered центрирует строку по x.
func drawTextCentered(screen *ebiten.Image, s string, cx, y float32, clr color.Color) {
	drawText(screen, s, cx-TextWidth(s)/2, y, clr)
}

// drawTextOutlined: текст с обводкой толщиной thickness.
func drawTextOutlined(screen *ebiten.Image, s string, x, y float32, thickness int, clr, outline color.Color) {
	for dy := -thickness; dy <= thickness; dy++ {
		for dx := -thickness; dx <= thickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			drawText(screen, s, x+float32(dx), y+float32(dy), outline)
		}
	}
	drawText(screen, s, x, y, clr)
}
