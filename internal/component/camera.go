// internal/component/camera.go
package component

import "go-space-arcade/pkg/physics"

// Camera: сглаженная камера с тряской и зумом.
type Camera struct {
	Position physics.Vec2
	Shake    physics.Vec2
	Zoom     float64
	Screen   physics.Vec2 // ширина и высота экрана
	// ShakeTimer: время с последнего пересчёта тряски.
	ShakeTimer float64
}

func NewCamera(screenWidth, screenHeight float64) *Camera {
	return &Camera{
		Position: physics.V(screenWidth/2, screenHeight/2),
		Zoom:     1,
		Screen:   physics.V(screenWidth, screenHeight),
	}
}

func (c *Camera) Center() physics.Vec2 { return c.Screen.Scale(0.5) }

// WorldToScreen: сдвиг на -камера + центр + тряска, затем масштаб вокруг центра экрана.
func (c *Camera) WorldToScreen(p physics.Vec2) physics.Vec2 {
	center := c.Center()
	translated := p.Sub(c.Position).Add(center).Add(c.Shake)
	return translated.Sub(center).Scale(c.Zoom).Add(center)
}

// ScreenToWorld: обратное преобразование.
func (c *Camera) ScreenToWorld(s physics.Vec2) physics.Vec2 {
	center := c.Center()
	zoom := c.Zoom
	if zoom == 0 {
		zoom = 1
	}
	translated := s.Sub(center).Scale(1 / zoom).Add(center)
	return translated.Sub(center).Sub(c.Shake).Add(c.Position)
}

// Viewport: видимая область мира без учёта зума.
func (c *Camera) Viewport() physics.Rect {
	half := c.Center()
	return physics.Rect{
		MinX: c.Position.X - half.X,
		MinY: c.Position.Y - half.Y,
		MaxX: c.Position.X + half.X,
		MaxY: c.Position.Y + half.Y,
	}
}
