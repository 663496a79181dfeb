// internal/component/power_up.go
package component

import (
	"math"

	"go-space-arcade/internal/defs"
	"go-space-arcade/internal/types"
	"go-space-arcade/pkg/physics"
)

type PowerUp struct {
	ID        types.EntityID
	Position  physics.Vec2
	Type      defs.PowerUpType
	Collected bool
	Age       float64 // секунды с момента появления
	Rotation  float64
}

func (p *PowerUp) Pos() physics.Vec2 { return p.Position }
func (p *PowerUp) Radius() float64   { return defs.PowerUpRadius }

// Update покачивает бонус по вертикали.
func (p *PowerUp) Update(deltaTime float64) {
	p.Age += deltaTime
	frames := physics.Frames(deltaTime)
	p.Position.Y += math.Sin(p.Age*physics.ReferenceFPS*0.1) * 0.5 * frames
	p.Rotation += 2 * frames
}
