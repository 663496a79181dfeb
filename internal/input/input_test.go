package input

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-space-arcade/internal/component"
	"go-space-arcade/internal/defs"
	"go-space-arcade/internal/entity"
	"go-space-arcade/pkg/physics"
)

func TestJoystickDeadZoneAndCurve(t *testing.T) {
	j := NewVirtualJoystick(physics.V(100, 100), 80)
	assert.Equal(t, physics.Vec2{}, j.Force())

	j.Press(physics.V(110, 100)) // 0.125 < 0.2
	assert.True(t, j.Active())
	assert.Zero(t, j.Force().X)

	j.Press(physics.V(132, 100)) // 0.4, линейный участок
	assert.InDelta(t, 0.4, j.Force().X, 1e-9)

	j.Press(physics.V(160, 100)) // 0.75 -> 0.5 + 0.5^1.5*0.5
	assert.InDelta(t, 0.5+math.Pow(0.5, 1.5)*0.5, j.Force().X, 1e-9)

	j.Press(physics.V(100, 0)) // за пределами базы: ручка на окружности
	assert.InDelta(t, -1.0, j.Force().Y, 1e-9)
	assert.InDelta(t, 80.0, j.Handle.Distance(j.Center), 1e-9)

	j.Release()
	assert.False(t, j.Active())
	assert.Equal(t, j.Center, j.Handle)
}

func TestJoystickDeadZoneClamped(t *testing.T) {
	j := NewVirtualJoystick(physics.Vec2{}, 80)
	j.SetDeadZone(0.9)
	assert.Equal(t, 0.5, j.DeadZone())
	j.SetDeadZone(-1)
	assert.Zero(t, j.DeadZone())
}

func TestResponseCurveIsOddAndBounded(t *testing.T) {
	for _, v := range []float64{0, 0.1, 0.49, 0.5, 0.8, 1, 3} {
		assert.InDelta(t, -ResponseCurve(v), ResponseCurve(-v), 1e-12)
		assert.LessOrEqual(t, math.Abs(ResponseCurve(v)), 1.0)
	}
	assert.InDelta(t, 1.0, ResponseCurve(1), 1e-12)
}

func TestAutoPilotSeeksNearestPlanet(t *testing.T) {
	w := entity.NewWorld(physics.V(0, 0), component.NewGameState("t"))
	ap := NewAutoPilot(w)
	assert.False(t, ap.Active())

	w.Planets = append(w.Planets,
		component.NewPlanet(1, defs.PlanetIce, 1, physics.V(0, 500)),
		component.NewPlanet(2, defs.PlanetIce, 1, physics.V(300, 0)),
	)
	assert.True(t, ap.Active())
	f := ap.Force()
	assert.InDelta(t, 1.0, f.X, 1e-9)
	assert.InDelta(t, 0.0, f.Y, 1e-9)
}

func TestStaticAndMerge(t *testing.T) {
	idle := NewStatic(physics.V(1, 0), false)
	push := NewStatic(physics.V(0, -1), true)
	m := Merge{idle, push}
	assert.True(t, m.Active())
	assert.Equal(t, physics.V(0, -1), m.Force())

	push.Set(physics.Vec2{}, false)
	assert.False(t, m.Active())
	assert.Equal(t, physics.Vec2{}, m.Force())
}
