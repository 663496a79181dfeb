// internal/ui/u_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-space-arcade/internal/config"
)

// ShieldIndicator рисует букву «S»: яркая, когда щит активен, перечёркнута, когда заряда не хватает.
type ShieldIndicator struct {
	X, Y float32
}

func NewShieldIndicator(x, y float32) *ShieldIndicator {
	return &ShieldIndicator{X: x, Y: y}
}

var (
	shieldReadyColor    = color.RGBA{200, 200, 200, 255}
	shieldStrikeColor   = color.RGBA{220, 60, 60, 255}
	shieldInactiveColor = color.RGBA{100, 100, 100, 255}
)

// ShieldReady: щит можно включить прямо сейчас.
func ShieldReady(shield float64, active bool) bool {
	return !active && shield >= config.ShieldActivationCost
}

func (i *ShieldIndicator) Draw(screen *ebiten.Image, shield float64, active bool) {
	const label = "S"
	clr := shieldInactiveColor
	switch {
	case active:
		clr = config.ShieldColor
		clr.A = 255
	case ShieldReady(shield, active):
		clr = shieldReadyColor
	}
	w := TextWidth(label)
	h := float32(DefaultFace.Metrics().Height.Ceil())
	drawText(screen, label, i.X-w/2, i.Y-h/2, clr)

	if !active && !ShieldReady(shield, active) {
		vector.StrokeLine(screen, i.X-w, i.Y+h/2, i.X+w, i.Y-h/2, config.StrokeWidth, shieldStrikeColor, true)
	}
}
