// pkg/physics/collision.go
package physics

// CirclesOverlap: строгая проверка пересечения двух окружностей.
func CirclesOverlap(a Vec2, ra float64, b Vec2, rb float64) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	r := ra + rb
	return dx*dx+dy*dy < r*r
}

// Rect: прямоугольник в мировых координатах.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Expand расширяет прямоугольник на margin во все стороны.
func (r Rect) Expand(margin float64) Rect {
	return Rect{MinX: r.MinX - margin, MinY: r.MinY - margin, MaxX: r.MaxX + margin, MaxY: r.MaxY + margin}
}

// Contains проверяет, лежит ли точка внутри (границы включительно).
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

func (r Rect) Width() float64  { return r.MaxX - r.MinX }
func (r Rect) Height() float64 { return r.MaxY - r.MinY }
