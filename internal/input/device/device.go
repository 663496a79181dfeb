// internal/input/device/device.go
// Package device читает клавиатуру, мышь и касания через ebiten.
package device

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-space-arcade/internal/input"
	"go-space-arcade/pkg/physics"
)

// Keyboard: WASD и стрелки. Диагональ нормализуется.
type Keyboard struct{}

func (Keyboard) Force() physics.Vec2 {
	var f physics.Vec2
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		f.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		f.X++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		f.Y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		f.Y++
	}
	if unit, _, ok := f.Normalize(); ok {
		return unit
	}
	return f
}

func (k Keyboard) Active() bool {
	f := k.Force()
	return f.X != 0 || f.Y != 0
}

// ShieldPressed: пробел нажат в этом кадре.
func ShieldPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeySpace)
}

// PausePressed: Escape или P нажаты в этом кадре.
func PausePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP)
}

// PollPointer двигает джойстик по касанию или левой кнопке мыши.
func PollPointer(j *input.VirtualJoystick) {
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		j.Press(physics.V(float64(x), float64(y)))
		return
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		j.Press(physics.V(float64(x), float64(y)))
		return
	}
	if j.Active() {
		j.Release()
	}
}
