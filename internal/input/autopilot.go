// internal/input/autopilot.go
package input

import (
	"go-space-arcade/internal/entity"
	"go-space-arcade/pkg/physics"
)

// AutoPilot ведёт корабль к ближайшей планете и уходит от близких врагов.
// Читает мир напрямую, поэтому вызывается только из потока симуляции.
type AutoPilot struct {
	world *entity.World
	// DangerRadius: враги ближе этой дистанции отталкивают курс.
	DangerRadius float64
}

func NewAutoPilot(world *entity.World) *AutoPilot {
	return &AutoPilot{world: world, DangerRadius: 160}
}

func (a *AutoPilot) Active() bool {
	return len(a.world.Planets) > 0
}

func (a *AutoPilot) Force() physics.Vec2 {
	ship := a.world.Ship
	var target physics.Vec2
	best := -1.0
	for _, p := range a.world.Planets {
		d := p.Position.Distance(ship.Position)
		if best < 0 || d < best {
			best, target = d, p.Position
		}
	}
	if best < 0 {
		return physics.Vec2{}
	}

	steer, _, _ := target.Sub(ship.Position).Normalize()
	for _, e := range a.world.Enemies {
		away := ship.Position.Sub(e.Position)
		if dir, d, ok := away.Normalize(); ok && d < a.DangerRadius {
			steer = steer.Add(dir.Scale(1.5 * (1 - d/a.DangerRadius)))
		}
	}
	unit, _, ok := steer.Normalize()
	if !ok {
		return physics.Vec2{}
	}
	return unit
}
