// internal/component/spatial.go
package component

import "go-space-arcade/pkg/physics"

// Spatial: всё, что участвует в проверках столкновений по окружностям.
type Spatial interface {
	Pos() physics.Vec2
	Radius() float64
}

// Overlaps: проверка пересечения двух окружностей.
func Overlaps(a, b Spatial) bool {
	return physics.CirclesOverlap(a.Pos(), a.Radius(), b.Pos(), b.Radius())
}
