// internal/tui/view.go
package tui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"go-space-arcade/internal/app"
	"go-space-arcade/internal/component"
	"go-space-arcade/internal/defs"
	"go-space-arcade/pkg/physics"
)

// statusRows: строки под сценой для текста.
const statusRows = 2

var enemyRunes = [defs.EnemyTypeCount]rune{
	defs.EnemyScout:   's',
	defs.EnemyFighter: 'f',
	defs.EnemyBomber:  'b',
	defs.EnemyElite:   'E',
}

// View рисует снимок в терминале: экран камеры сжимается до сетки символов.
type View struct {
	screen tcell.Screen
}

func NewView(screen tcell.Screen) *View {
	return &View{screen: screen}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// grid переводит экранные пиксели камеры в ячейки терминала.
type grid struct {
	cols, rows int
	cam        *component.Camera
}

func (g grid) cell(world physics.Vec2) (int, int, bool) {
	s := g.cam.WorldToScreen(world)
	if g.cam.Screen.X <= 0 || g.cam.Screen.Y <= 0 {
		return 0, 0, false
	}
	x := int(s.X / g.cam.Screen.X * float64(g.cols))
	y := int(s.Y / g.cam.Screen.Y * float64(g.rows))
	return x, y, x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// cellSize: размер ячейки в мировых единицах по осям.
func (g grid) cellSize() physics.Vec2 {
	zoom := g.cam.Zoom
	if zoom == 0 {
		zoom = 1
	}
	return physics.V(g.cam.Screen.X/float64(g.cols)/zoom, g.cam.Screen.Y/float64(g.rows)/zoom)
}

func (v *View) Draw(snap *app.Snapshot) {
	v.screen.Clear()
	defer v.screen.Show()
	if snap == nil {
		return
	}
	cols, rows := v.screen.Size()
	rows -= statusRows
	if cols <= 0 || rows <= 0 {
		return
	}
	g := grid{cols: cols, rows: rows, cam: &snap.Camera}

	for _, b := range snap.BlackHoles {
		v.disc(g, b.Position, b.Size*0.4, '@', tcell.StyleDefault.Foreground(rgb(defs.BlackHolePalette[0])))
	}
	for _, p := range snap.Planets {
		palette := defs.PlanetPalette(p.Type)
		v.disc(g, p.Position, p.Radius, 'O', tcell.StyleDefault.Foreground(rgb(palette[0])))
	}
	for _, p := range snap.PowerUps {
		if x, y, ok := g.cell(p.Position); ok && p.Type.Valid() {
			v.screen.SetContent(x, y, '+', nil, tcell.StyleDefault.Foreground(rgb(defs.PowerUp(p.Type).Palette[0])).Bold(true))
		}
	}
	for _, e := range snap.Enemies {
		if x, y, ok := g.cell(e.Position); ok && e.Type.Valid() {
			style := tcell.StyleDefault.Foreground(rgb(defs.Enemy(e.Type).Color))
			if e.Attacking {
				style = style.Reverse(true)
			}
			v.screen.SetContent(x, y, enemyRunes[e.Type], nil, style)
		}
	}
	if snap.PhaseValue() != component.PhaseGameOver {
		if x, y, ok := g.cell(snap.Ship.Position); ok {
			style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
			if snap.Ship.ShieldActive {
				style = style.Background(tcell.ColorNavy)
			}
			v.screen.SetContent(x, y, shipRune(snap.Ship.Rotation), nil, style)
		}
	}
	v.status(snap, cols, rows)
}

// disc закрашивает круг; маленький круг занимает хотя бы одну ячейку.
func (v *View) disc(g grid, center physics.Vec2, radius float64, r rune, style tcell.Style) {
	cx, cy, _ := g.cell(center)
	size := g.cellSize()
	rx := int(radius / size.X)
	ry := int(radius / size.Y)
	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			x, y := cx+dx, cy+dy
			if x < 0 || x >= g.cols || y < 0 || y >= g.rows {
				continue
			}
			nx, ny := float64(dx)*size.X, float64(dy)*size.Y
			if nx*nx+ny*ny <= radius*radius {
				v.screen.SetContent(x, y, r, nil, style)
			}
		}
	}
}

// shipRune: стрелка по ближайшему из четырёх направлений.
func shipRune(rotation float64) rune {
	a := math.Mod(rotation+45, 360)
	if a < 0 {
		a += 360
	}
	return [4]rune{'>', 'v', '<', '^'}[int(a/90)%4]
}

func (v *View) status(snap *app.Snapshot, cols, top int) {
	p := snap.Progress
	line1 := fmt.Sprintf(" LVL %d  SCORE %d  COINS %d  LIVES %d  COMBO %d  [%s]",
		p.Level, p.Score, p.Coins, p.Lives, p.Combo, snap.Phase)
	shield := ""
	if snap.Ship.ShieldActive {
		shield = "*"
	}
	line2 := fmt.Sprintf(" HP %3.0f  SHIELD %3.0f%s  PLANETS %d  ENEMIES %d  PARTICLES %d",
		snap.Ship.Health, snap.Ship.Shield, shield,
		len(snap.Planets), len(snap.Enemies), len(snap.Particles))
	v.text(0, top, cols, line1, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	v.text(0, top+1, cols, line2, tcell.StyleDefault.Foreground(tcell.ColorSilver))
}

func (v *View) text(x, y, maxWidth int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		if i >= maxWidth {
			return
		}
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}
