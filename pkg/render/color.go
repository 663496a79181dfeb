// pkg/render/color.go
package render

import "image/color"

// Palette: набор цветов, из которого случайно выбираются цвета частиц.
type Palette []color.RGBA

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha возвращает цвет с заменённой прозрачностью.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}

// FadeAlpha масштабирует прозрачность на ratio из [0, 1].
// Значения вне диапазона обрезаются, чтобы альфа не "переворачивалась".
func FadeAlpha(c color.RGBA, ratio float64) color.RGBA {
	if ratio < 0 {
		ratio = 0
	} else if ratio > 1 {
		ratio = 1
	}
	c.A = uint8(float64(c.A) * ratio)
	return c
}

// Premultiply переводит цвет в premultiplied-форму для ebiten/vector.
func Premultiply(c color.RGBA) color.RGBA {
	a := float64(c.A) / 255
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: c.A,
	}
}
