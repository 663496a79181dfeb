// internal/interfaces/input.go
package interfaces

import "go-space-arcade/pkg/physics"

// ForceProvider: источник управляющей силы корабля (джойстик, клавиатура, автопилот).
// Каждая ось силы лежит в [-1, 1].
type ForceProvider interface {
	Force() physics.Vec2
	Active() bool
}
