// internal/ui/joystick.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-space-arcade/internal/config"
	"go-space-arcade/internal/input"
	"go-space-arcade/pkg/render"
)

// DrawJoystick рисует основание и ручку виртуального джойстика.
func DrawJoystick(screen *ebiten.Image, j *input.VirtualJoystick) {
	if j.Activation <= 0 {
		return
	}
	base := render.FadeAlpha(config.JoystickColor, j.Activation)
	handle := render.FadeAlpha(render.WithAlpha(config.JoystickColor, 140), j.Activation)

	cx, cy := float32(j.Center.X), float32(j.Center.Y)
	vector.DrawFilledCircle(screen, cx, cy, float32(j.BaseRadius), base, true)
	vector.StrokeCircle(screen, cx, cy, float32(j.BaseRadius), config.StrokeWidth, handle, true)
	vector.DrawFilledCircle(screen, float32(j.Handle.X), float32(j.Handle.Y), float32(j.BaseRadius*0.4), handle, true)
}
