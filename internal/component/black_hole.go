// internal/component/black_hole.go
package component

import (
	"go-space-arcade/internal/types"
	"go-space-arcade/pkg/physics"
)

// BlackHole: неподвижная ловушка для врагов. Корабль и планеты не затрагивает.
type BlackHole struct {
	ID            types.EntityID
	Position      physics.Vec2
	Size          float64
	Rotation      float64
	RotationSpeed float64
	Pulse         float64 // 0..1
}

func (b *BlackHole) Pos() physics.Vec2 { return b.Position }
func (b *BlackHole) Radius() float64   { return b.Size }

func (b *BlackHole) Update(deltaTime float64) {
	b.Rotation += b.RotationSpeed * physics.Frames(deltaTime)
	b.Pulse += deltaTime * 2
	if b.Pulse > 1 {
		b.Pulse = 0
	}
}
