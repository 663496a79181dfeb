// pkg/physics/vec2.go
package physics

import "math"

// Vec2: двумерный вектор (позиция, скорость, сила).
type Vec2 struct {
	X, Y float64
}

// V: короткий конструктор вектора.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Length возвращает длину вектора.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize возвращает единичный вектор и исходную длину.
// Для нулевого вектора возвращает ok=false: направление не определено.
func (v Vec2) Normalize() (unit Vec2, length float64, ok bool) {
	length = v.Length()
	if length == 0 {
		return Vec2{}, 0, false
	}
	return Vec2{X: v.X / length, Y: v.Y / length}, length, true
}

// Distance: евклидово расстояние между двумя точками.
func (v Vec2) Distance(o Vec2) float64 {
	return v.Sub(o).Length()
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Angle возвращает угол вектора в градусах.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X) * 180 / math.Pi
}

// FromAngle строит вектор длины length под углом degrees.
func FromAngle(degrees, length float64) Vec2 {
	rad := degrees * math.Pi / 180
	return Vec2{X: math.Cos(rad) * length, Y: math.Sin(rad) * length}
}
