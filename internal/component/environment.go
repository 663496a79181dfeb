// internal/component/environment.go
package component

import (
	"image/color"

	"go-space-arcade/pkg/physics"
)

// Star: фоновая звезда с параллаксом. Координаты экранные.
type Star struct {
	Position     physics.Vec2
	Size         float64
	Speed        float64 // коэффициент параллакса
	Brightness   float64
	Twinkle      float64 // фаза 0..1
	TwinkleSpeed float64
	Color        color.RGBA
}

// Nebula: декоративное облако в мировых координатах.
type Nebula struct {
	Position      physics.Vec2
	Size          float64
	Kind          int
	Rotation      float64
	RotationSpeed float64
}
