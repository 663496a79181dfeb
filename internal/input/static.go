// internal/input/static.go
package input

import (
	"sync"

	"go-space-arcade/internal/interfaces"
	"go-space-arcade/pkg/physics"
)

// Static: постоянная сила. Используется в тестах и как «нейтральный» ввод.
type Static struct {
	mu     sync.RWMutex
	force  physics.Vec2
	active bool
}

func NewStatic(force physics.Vec2, active bool) *Static {
	return &Static{force: force, active: active}
}

func (s *Static) Set(force physics.Vec2, active bool) {
	s.mu.Lock()
	s.force, s.active = force, active
	s.mu.Unlock()
}

func (s *Static) Force() physics.Vec2 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.force
}

func (s *Static) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// Merge отдаёт силу первого активного источника.
type Merge []interfaces.ForceProvider

func (m Merge) Active() bool {
	for _, p := range m {
		if p.Active() {
			return true
		}
	}
	return false
}

func (m Merge) Force() physics.Vec2 {
	for _, p := range m {
		if p.Active() {
			return p.Force()
		}
	}
	return physics.Vec2{}
}
