package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeZero(t *testing.T) {
	_, length, ok := Vec2{}.Normalize()
	assert.False(t, ok)
	assert.Zero(t, length)

	unit, length, ok := V(3, 4).Normalize()
	require.True(t, ok)
	assert.InDelta(t, 5.0, length, 1e-9)
	assert.InDelta(t, 1.0, unit.Length(), 1e-9)
}

func TestClampSpeed(t *testing.T) {
	v := ClampSpeed(V(30, 40), 10)
	assert.InDelta(t, 10.0, v.Length(), 1e-9)
	assert.InDelta(t, 0.6, v.X/10, 1e-9)

	slow := V(1, 1)
	assert.Equal(t, slow, ClampSpeed(slow, 10))
}

func TestBodyStepOrder(t *testing.T) {
	// Разгон до предела, затем трение: итоговая скорость maxSpeed*friction.
	b := Body{}
	b.Step(V(1, 0), 100, 15, 0.92, 1.0/60)
	assert.InDelta(t, 15*0.92, b.Velocity.X, 1e-9)
	assert.InDelta(t, 15*0.92, b.Position.X, 1e-9)

	// Без тяги трение действует всё равно.
	b.Step(Vec2{}, 100, 15, 0.92, 1.0/60)
	assert.InDelta(t, 15*0.92*0.92, b.Velocity.X, 1e-9)
}

func TestSteerZeroDirection(t *testing.T) {
	v := V(1, 2)
	assert.Equal(t, v, Steer(v, Vec2{}, 0.1, 1.0/60))
	steered := Steer(v, V(0, 10), 0.1, 1.0/60)
	assert.InDelta(t, 2.1, steered.Y, 1e-9)
}

func TestCirclesOverlap(t *testing.T) {
	assert.True(t, CirclesOverlap(V(0, 0), 40, V(50, 0), 30))
	assert.False(t, CirclesOverlap(V(0, 0), 40, V(70, 0), 30))
	assert.False(t, CirclesOverlap(V(0, 0), 40, V(71, 0), 30))
}

func TestFromAngle(t *testing.T) {
	v := FromAngle(90, 2)
	assert.InDelta(t, 0, v.X, 1e-9)
	assert.InDelta(t, 2, v.Y, 1e-9)
	assert.InDelta(t, 90, v.Angle(), 1e-9)
	assert.False(t, math.IsNaN(FromAngle(0, 0).Angle()))
}

func TestRect(t *testing.T) {
	r := Rect{MinX: 0, MinY: 0, MaxX: 100, MaxY: 50}.Expand(200)
	assert.True(t, r.Contains(V(-200, -200)))
	assert.False(t, r.Contains(V(-201, 0)))
	assert.InDelta(t, 500.0, r.Width(), 1e-9)
	assert.InDelta(t, 450.0, r.Height(), 1e-9)
}

func TestDot(t *testing.T) {
	assert.Equal(t, 11.0, V(1, 2).Dot(V(3, 4)))
	assert.Zero(t, V(1, 0).Dot(V(0, 5)))
}
