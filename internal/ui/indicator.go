// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PowerUpIndicator: кружок временного бонуса. Пульсирует при получении, тускнеет к концу действия.
type PowerUpIndicator struct {
	X, Y      float32
	Radius    float32
	Label     string
	Color     color.RGBA
	sinceShow float64
	shown     bool
}

func NewPowerUpIndicator(x, y, radius float32, label string, clr color.RGBA) *PowerUpIndicator {
	return &PowerUpIndicator{X: x, Y: y, Radius: radius, Label: label, Color: clr}
}

// Update продвигает анимацию; active: бонус сейчас действует.
func (i *PowerUpIndicator) Update(active bool, deltaTime float64) {
	if active && !i.shown {
		i.sinceShow = 0
	}
	i.shown = active
	i.sinceShow += deltaTime
}

// Draw отрисовывает индикатор; ratio: оставшаяся доля действия.
func (i *PowerUpIndicator) Draw(screen *ebiten.Image, ratio float64) {
	if !i.shown {
		return
	}
	scale := 1.0 + 0.3*math.Exp(-i.sinceShow*8)
	r := i.Radius * float32(scale)
	clr := i.Color
	clr.A = uint8(80 + 175*math.Max(0, math.Min(1, ratio)))

	vector.DrawFilledCircle(screen, i.X, i.Y, r, clr, true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, color.White, true)
	drawTextCentered(screen, i.Label, i.X, i.Y-6, color.White)
}
