// internal/input/joystick.go
package input

import (
	"math"

	"go-space-arcade/internal/config"
	"go-space-arcade/pkg/physics"
	"go-space-arcade/pkg/utils"
)

// VirtualJoystick переводит положение пальца или курсора в силу.
type VirtualJoystick struct {
	Center     physics.Vec2
	Handle     physics.Vec2
	BaseRadius float64
	deadZone   float64
	active     bool
	// Activation: 0..1, анимация появления ручки.
	Activation float64
}

func NewVirtualJoystick(center physics.Vec2, baseRadius float64) *VirtualJoystick {
	return &VirtualJoystick{
		Center:     center,
		Handle:     center,
		BaseRadius: baseRadius,
		deadZone:   config.JoystickDeadZone,
	}
}

// SetDeadZone ограничивает мёртвую зону диапазоном [0, 0.5].
func (j *VirtualJoystick) SetDeadZone(dz float64) {
	j.deadZone = utils.Clamp(dz, 0, 0.5)
}

func (j *VirtualJoystick) DeadZone() float64 { return j.deadZone }

// Press ставит ручку в точку касания, не дальше BaseRadius от центра.
func (j *VirtualJoystick) Press(at physics.Vec2) {
	j.active = true
	offset := at.Sub(j.Center)
	if dir, dist, ok := offset.Normalize(); ok && dist > j.BaseRadius {
		offset = dir.Scale(j.BaseRadius)
	}
	j.Handle = j.Center.Add(offset)
}

// Release возвращает ручку в центр.
func (j *VirtualJoystick) Release() {
	j.active = false
	j.Handle = j.Center
}

func (j *VirtualJoystick) Update(deltaTime float64) {
	if j.active {
		j.Activation = math.Min(1, j.Activation+deltaTime*5)
	} else {
		j.Activation = math.Max(0, j.Activation-deltaTime*3)
	}
}

func (j *VirtualJoystick) Active() bool { return j.active }

// Force: сила по осям с мёртвой зоной и кривой отклика.
func (j *VirtualJoystick) Force() physics.Vec2 {
	if !j.active || j.BaseRadius <= 0 {
		return physics.Vec2{}
	}
	raw := j.Handle.Sub(j.Center).Scale(1 / j.BaseRadius)
	return physics.V(j.axis(raw.X), j.axis(raw.Y))
}

func (j *VirtualJoystick) axis(raw float64) float64 {
	if math.Abs(raw) < j.deadZone {
		return 0
	}
	return ResponseCurve(raw)
}

// ResponseCurve: линейно до 0.5, дальше степенная кривая с показателем 1.5.
func ResponseCurve(raw float64) float64 {
	raw = utils.Clamp(raw, -1, 1)
	a := math.Abs(raw)
	if a < 0.5 {
		return raw
	}
	curved := math.Pow((a-0.5)*2, 1.5)
	return math.Copysign(0.5+curved*0.5, raw)
}
