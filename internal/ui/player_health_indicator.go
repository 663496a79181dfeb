// internal/ui/player_health_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-space-arcade/internal/config"
)

const (
	barWidth         = 200
	barHeight        = 14
	barGap           = 6
	lifeCircleRadius = 8.0
	lifeSpacing      = 4.0
)

// ShipStatusIndicator: полосы здоровья и щита и жизни кружками.
type ShipStatusIndicator struct {
	X, Y float32
}

// NewShipStatusIndicator создает новый индикатор состояния корабля.
func NewShipStatusIndicator(x, y float32) *ShipStatusIndicator {
	return &ShipStatusIndicator{X: x, Y: y}
}

// fillWidth: длина заполненной части полосы.
func fillWidth(value, max float64, width float32) float32 {
	if max <= 0 || value <= 0 {
		return 0
	}
	if value >= max {
		return width
	}
	return float32(value/max) * width
}

func (i *ShipStatusIndicator) drawBar(screen *ebiten.Image, y float32, value, max float64, fill color.RGBA, label string) {
	vector.DrawFilledRect(screen, i.X, y, barWidth, barHeight, config.BarBackColor, true)
	if w := fillWidth(value, max, barWidth-2); w > 0 {
		vector.DrawFilledRect(screen, i.X+1, y+1, w, barHeight-2, fill, true)
	}
	vector.StrokeRect(screen, i.X, y, barWidth, barHeight, 1, color.White, true)
	drawText(screen, label, i.X+barWidth+8, y, config.TextLightColor)
}

// Draw рисует здоровье, щит (подсвечен, когда активен) и оставшиеся жизни.
func (i *ShipStatusIndicator) Draw(screen *ebiten.Image, health, shield float64, shieldActive bool, lives int) {
	i.drawBar(screen, i.Y, health, config.ShipMaxHealth, config.HealthBarColor, fmt.Sprintf("%.0f", health))

	shieldFill := config.ShieldBarColor
	if shieldActive {
		shieldFill = config.ShieldColor
		shieldFill.A = 255
	}
	i.drawBar(screen, i.Y+barHeight+barGap, shield, config.ShipMaxShield, shieldFill, fmt.Sprintf("%.0f", shield))

	y := i.Y + 2*(barHeight+barGap) + lifeCircleRadius
	for j := 0; j < lives; j++ {
		x := i.X + lifeCircleRadius + float32(j)*(lifeCircleRadius*2+lifeSpacing)
		vector.DrawFilledCircle(screen, x, y, lifeCircleRadius, config.ShipColor, true)
		vector.StrokeCircle(screen, x, y, lifeCircleRadius, 1, color.White, true)
	}
}

// Height: общая высота индикатора.
func (i *ShipStatusIndicator) Height() float32 {
	return 2*(barHeight+barGap) + lifeCircleRadius*2
}
