// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Approach сдвигает value к target не больше чем на step.
func Approach(value, target, step float64) float64 {
	if value < target {
		return math.Min(value+step, target)
	}
	return math.Max(value-step, target)
}

// NormalizeDegrees приводит угол к диапазону [0, 360).
func NormalizeDegrees(angle float64) float64 {
	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	return angle
}
