// internal/ui/player_level_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// LevelProgressIndicator: доля разрушенных планет уровня и серия (комбо).
type LevelProgressIndicator struct {
	X, Y float32
}

const (
	progressBarWidth  = 118
	progressBarHeight = 12
	comboRectWidth    = 16
	comboRectHeight   = 12
	comboRectGap      = 9
	maxComboPips      = 5
	borderWidth       = 1
)

var (
	progressFillColor = color.RGBA{70, 100, 120, 220}
	comboFillColor    = color.RGBA{255, 170, 40, 230}
	borderColor       = color.White
)

func NewLevelProgressIndicator(x, y float32) *LevelProgressIndicator {
	return &LevelProgressIndicator{X: x, Y: y}
}

// Draw: destroyed из total планет, combo заполняет до пяти ячеек.
func (i *LevelProgressIndicator) Draw(screen *ebiten.Image, destroyed, total, combo int) {
	vector.StrokeRect(screen, i.X, i.Y, progressBarWidth, progressBarHeight, borderWidth, borderColor, true)

	w := fillWidth(float64(destroyed), float64(total), progressBarWidth-borderWidth*2)
	if w > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, w, progressBarHeight-borderWidth*2, progressFillColor, true)
	}

	rectY := i.Y + progressBarHeight + 10
	for j := 0; j < maxComboPips; j++ {
		rectX := i.X + float32(j)*(comboRectWidth+comboRectGap)
		vector.StrokeRect(screen, rectX, rectY, comboRectWidth, comboRectHeight, borderWidth, borderColor, true)
		if j < combo {
			vector.DrawFilledRect(screen, rectX+borderWidth, rectY+borderWidth, comboRectWidth-borderWidth*2, comboRectHeight-borderWidth*2, comboFillColor, true)
		}
	}
}
