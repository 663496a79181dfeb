// internal/ui/shapes.go
package ui

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whitePixelOnce sync.Once
	whitePixel     *ebiten.Image
)

func solidSource() *ebiten.Image {
	whitePixelOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whitePixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whitePixel
}

// fillPath заливает замкнутый контур одним цветом.
func fillPath(screen *ebiten.Image, path *vector.Path, clr color.RGBA) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = r*a, g*a, b*a, a
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(vs, is, solidSource(), op)
}

// strokeTriangle: контур треугольника.
func strokeTriangle(screen *ebiten.Image, x1, y1, x2, y2, x3, y3, width float32, clr color.RGBA) {
	vector.StrokeLine(screen, x1, y1, x2, y2, width, clr, true)
	vector.StrokeLine(screen, x2, y2, x3, y3, width, clr, true)
	vector.StrokeLine(screen, x3, y3, x1, y1, width, clr, true)
}
