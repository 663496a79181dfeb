// internal/entity/world.go
package entity

import (
	"slices"

	"go-space-arcade/internal/component"
	"go-space-arcade/internal/types"
	"go-space-arcade/pkg/physics"
)

// World: все коллекции сущностей одной сессии. Меняется только потоком симуляции.
type World struct {
	GameTime   float64
	NextID     types.EntityID
	Ship       *component.Ship
	Enemies    []*component.Enemy
	Planets    []*component.Planet
	BlackHoles []*component.BlackHole
	PowerUps   []*component.PowerUp
	Stars      []component.Star
	Nebulae    []component.Nebula
	GameState  *component.GameState
	Phase      component.Phase
	// Spawn: точка появления корабля.
	Spawn physics.Vec2
}

func NewWorld(spawn physics.Vec2, gs *component.GameState) *World {
	return &World{
		NextID:    1,
		Ship:      component.NewShip(spawn),
		GameState: gs,
		Phase:     component.PhaseRunning,
		Spawn:     spawn,
	}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// RemoveEnemyAt удаляет врага по индексу, сохраняя порядок остальных.
// При удалении в цикле индексы нужно обходить с конца.
func (w *World) RemoveEnemyAt(i int) *component.Enemy {
	e := w.Enemies[i]
	w.Enemies = slices.Delete(w.Enemies, i, i+1)
	return e
}

func (w *World) RemovePlanetAt(i int) *component.Planet {
	p := w.Planets[i]
	w.Planets = slices.Delete(w.Planets, i, i+1)
	return p
}

func (w *World) RemovePowerUpAt(i int) *component.PowerUp {
	p := w.PowerUps[i]
	w.PowerUps = slices.Delete(w.PowerUps, i, i+1)
	return p
}

// RemoveEnemies удаляет всех врагов, для которых drop вернул true, за один проход.
// Возвращает число удалённых.
func (w *World) RemoveEnemies(drop func(e *component.Enemy) bool) int {
	before := len(w.Enemies)
	w.Enemies = slices.DeleteFunc(w.Enemies, drop)
	return before - len(w.Enemies)
}

// ClearLevel убирает планеты, врагов и бонусы. Чёрные дыры и фон остаются.
func (w *World) ClearLevel() {
	clear(w.Enemies)
	w.Enemies = w.Enemies[:0]
	clear(w.Planets)
	w.Planets = w.Planets[:0]
	clear(w.PowerUps)
	w.PowerUps = w.PowerUps[:0]
}

func (w *World) EnemyByID(id types.EntityID) *component.Enemy {
	for _, e := range w.Enemies {
		if e.ID == id {
			return e
		}
	}
	return nil
}
