package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFadeAlphaClamps(t *testing.T) {
	c := color.RGBA{R: 10, G: 20, B: 30, A: 200}
	assert.Equal(t, uint8(100), FadeAlpha(c, 0.5).A)
	assert.Equal(t, uint8(0), FadeAlpha(c, -1).A)
	assert.Equal(t, uint8(200), FadeAlpha(c, 2).A)
}

func TestDarkenAndPremultiply(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	assert.Equal(t, color.RGBA{R: 100, G: 50, B: 25, A: 255}, DarkenColor(c))
	assert.Equal(t, c, Premultiply(c))
	half := Premultiply(WithAlpha(c, 0))
	assert.Equal(t, uint8(0), half.R)
}
