package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-space-arcade/internal/component"
	"go-space-arcade/internal/utils"
	"go-space-arcade/pkg/physics"
)

func TestCameraTransformRoundTrip(t *testing.T) {
	c := component.NewCamera(1200, 900)
	c.Position = physics.V(1000, -300)
	c.Shake = physics.V(2, -3)
	c.Zoom = 0.8

	for _, p := range []physics.Vec2{{X: 1234, Y: 56}, {X: -40, Y: 0}, c.Position} {
		back := c.ScreenToWorld(c.WorldToScreen(p))
		assert.InDelta(t, p.X, back.X, 1e-9)
		assert.InDelta(t, p.Y, back.Y, 1e-9)
	}

	c.Shake = physics.Vec2{}
	assert.Equal(t, c.Center(), c.WorldToScreen(c.Position))
}

func TestCameraFollowsWithEasing(t *testing.T) {
	c := component.NewCamera(1200, 900)
	s := NewCameraSystem(c, utils.NewPRNGService(1))
	start := c.Position

	s.Update(start.Add(physics.V(100, 0)), physics.Vec2{}, tick)

	assert.InDelta(t, start.X+10, c.Position.X, 1e-9)
	assert.Equal(t, physics.Vec2{}, c.Shake)
	assert.Equal(t, 1.0, c.Zoom)
}

func TestCameraZoomAndShakeFromSpeed(t *testing.T) {
	c := component.NewCamera(1200, 900)
	s := NewCameraSystem(c, utils.NewPRNGService(1))

	s.Update(c.Position, physics.V(20, 0), 0.1)
	assert.InDelta(t, 0.9, c.Zoom, 1e-9)
	assert.NotEqual(t, physics.Vec2{}, c.Shake)
	assert.LessOrEqual(t, c.Shake.Length(), 2.0*1.5)

	s.Update(c.Position, physics.V(100, 0), 0.1)
	assert.InDelta(t, 0.7, c.Zoom, 1e-9)

	s.Snap(physics.V(5, 5))
	assert.Equal(t, physics.V(5, 5), c.Position)
	assert.Equal(t, physics.Vec2{}, c.Shake)
}

func TestViewportTracksCamera(t *testing.T) {
	c := component.NewCamera(1200, 900)
	c.Position = physics.V(0, 0)
	vp := c.Viewport()
	assert.Equal(t, physics.Rect{MinX: -600, MinY: -450, MaxX: 600, MaxY: 450}, vp)
	assert.Equal(t, 1200.0, vp.Width())
}
