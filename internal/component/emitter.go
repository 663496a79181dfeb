// internal/component/emitter.go
package component

import (
	"go-space-arcade/pkg/physics"
	"go-space-arcade/pkg/render"
)

// Emitter порождает частицы с заданной частотой, пока не истечёт Duration.
type Emitter struct {
	Position physics.Vec2
	Kind     ParticleKind
	Palette  render.Palette
	Rate     float64 // частиц в секунду
	Duration float64 // секунды
	elapsed  float64
	timer    float64
}

// Update возвращает, сколько частиц нужно выпустить за этот тик.
func (e *Emitter) Update(deltaTime float64) int {
	if e.Finished() || e.Rate <= 0 {
		return 0
	}
	e.elapsed += deltaTime
	e.timer += deltaTime
	interval := 1 / e.Rate
	n := 0
	for e.timer >= interval {
		e.timer -= interval
		n++
	}
	return n
}

func (e *Emitter) Finished() bool { return e.elapsed >= e.Duration }
