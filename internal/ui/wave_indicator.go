// internal/ui/wave_indicator.go
package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"go-space-arcade/internal/config"
)

// LevelIndicator отображает номер уровня римскими цифрами.
type LevelIndicator struct {
	X, Y             float32
	Color            color.RGBA
	BonusColor       color.RGBA
	OutlineColor     color.RGBA
	OutlineThickness int
}

// NewLevelIndicator создает новый индикатор уровня, X: центр надписи.
func NewLevelIndicator(x, y float32) *LevelIndicator {
	return &LevelIndicator{
		X:                x,
		Y:                y,
		Color:            config.TextLightColor,
		BonusColor:       color.RGBA{255, 215, 0, 255},
		OutlineColor:     config.TextDarkColor,
		OutlineThickness: 1,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает индикатор. Каждый пятый уровень (дополнительная жизнь) выделен цветом.
func (i *LevelIndicator) Draw(screen *ebiten.Image, level int) {
	if level <= 0 {
		return
	}
	label := toRoman(level)
	textColor := i.Color
	if level%5 == 0 {
		textColor = i.BonusColor
	}
	x := i.X - TextWidth(label)/2
	drawTextOutlined(screen, label, x, i.Y, i.OutlineThickness, textColor, i.OutlineColor)
}
