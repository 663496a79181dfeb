// internal/system/movement.go
package system

import "go-space-arcade/internal/entity"

// MovementSystem интегрирует позиции всех подвижных сущностей, кроме корабля.
// Запускается после ИИ и до столкновений, чтобы проверки видели позиции одного тика.
type MovementSystem struct {
	world *entity.World
}

func NewMovementSystem(world *entity.World) *MovementSystem {
	return &MovementSystem{world: world}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for _, e := range s.world.Enemies {
		e.Move(deltaTime)
	}
	for _, p := range s.world.Planets {
		p.Update(deltaTime)
	}
	for _, p := range s.world.PowerUps {
		p.Update(deltaTime)
	}
}
