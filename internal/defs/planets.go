// internal/defs/planets.go
package defs

import (
	"image/color"

	"go-space-arcade/pkg/render"
)

// PlanetDefinition: статические данные материала планеты.
type PlanetDefinition struct {
	Type       PlanetType
	BaseRadius float64
	ScoreBonus int
	Palette    render.Palette
}

var planetDefs = [PlanetTypeCount]PlanetDefinition{
	PlanetEarth: {
		Type: PlanetEarth, BaseRadius: 65, ScoreBonus: 50,
		Palette: render.Palette{{100, 200, 100, 255}, {150, 150, 100, 255}, {80, 120, 80, 255}},
	},
	PlanetLava: {
		Type: PlanetLava, BaseRadius: 70, ScoreBonus: 100,
		Palette: render.Palette{{255, 100, 0, 255}, {255, 50, 0, 255}, {200, 30, 0, 255}},
	},
	PlanetIce: {
		Type: PlanetIce, BaseRadius: 60, ScoreBonus: 75,
		Palette: render.Palette{{200, 230, 255, 255}, {150, 200, 240, 255}, {100, 170, 220, 255}},
	},
	PlanetGas: {
		Type: PlanetGas, BaseRadius: 80, ScoreBonus: 150,
		Palette: render.Palette{{255, 200, 100, 255}, {255, 150, 50, 255}, {200, 100, 30, 255}},
	},
	PlanetToxic: {
		Type: PlanetToxic, BaseRadius: 75, ScoreBonus: 125,
		Palette: render.Palette{{100, 255, 100, 255}, {50, 200, 50, 255}, {0, 150, 0, 255}},
	},
}

// PlanetRadiusPerLevel: прирост радиуса планеты с уровнем.
const PlanetRadiusPerLevel = 3

func Planet(t PlanetType) PlanetDefinition {
	return planetDefs[t]
}

// PlanetRadius: радиус планеты по типу и уровню.
func PlanetRadius(t PlanetType, level int) float64 {
	return planetDefs[t].BaseRadius + PlanetRadiusPerLevel*float64(level)
}

// PlanetHealth возвращает здоровье планеты на уровне: 15*level + 50.
func PlanetHealth(level int) int {
	return 15*level + 50
}

// PlanetCount возвращает число планет на уровне: 20 + 2*(level-1).
func PlanetCount(level int) int {
	return 20 + 2*(level-1)
}

// EnemyCount возвращает целевую численность врагов: 10 + 3*(level-1).
func EnemyCount(level int) int {
	return 10 + 3*(level-1)
}

// EnemySpawnChance: шанс (в процентах) появления врага за тик.
func EnemySpawnChance(level int) int {
	return 5 + 2*level
}

var white = color.RGBA{255, 255, 255, 255}

// PlanetPalette возвращает палитру материала или белый цвет для чужих значений.
func PlanetPalette(t PlanetType) render.Palette {
	if !t.Valid() {
		return render.Palette{white}
	}
	return planetDefs[t].Palette
}
