// internal/defs/powerups.go
package defs

import (
	"image/color"
	"time"

	"go-space-arcade/pkg/render"
)

// PowerUpDefinition описывает эффект бонуса.
type PowerUpDefinition struct {
	Type     PowerUpType
	Duration time.Duration // 0: мгновенный эффект
	Amount   float64
	Palette  render.Palette
}

const PowerUpRadius = 20.0

var powerUpDefs = [PowerUpTypeCount]PowerUpDefinition{
	PowerUpHealth: {Type: PowerUpHealth, Amount: 30,
		Palette: render.Palette{{255, 50, 50, 255}, {200, 30, 30, 255}, {150, 20, 20, 255}}},
	PowerUpShield: {Type: PowerUpShield,
		Palette: render.Palette{{50, 150, 255, 255}, {30, 100, 200, 255}, {20, 70, 150, 255}}},
	PowerUpSpeed: {Type: PowerUpSpeed, Duration: 5 * time.Second, Amount: 1.5,
		Palette: render.Palette{{50, 255, 50, 255}, {30, 200, 30, 255}, {20, 150, 20, 255}}},
	PowerUpWeapon: {Type: PowerUpWeapon, Duration: 10 * time.Second, Amount: 2,
		Palette: render.Palette{{255, 255, 50, 255}, {200, 200, 30, 255}, {150, 150, 20, 255}}},
	PowerUpCoin: {Type: PowerUpCoin, Amount: 100000,
		Palette: render.Palette{{255, 215, 0, 255}, {255, 200, 0, 255}, {255, 180, 0, 255}}},
	PowerUpMultiplier: {Type: PowerUpMultiplier, Duration: 10 * time.Second, Amount: 2,
		Palette: render.Palette{{255, 100, 255, 255}, {220, 70, 220, 255}, {180, 50, 180, 255}}},
}

func PowerUp(t PowerUpType) PowerUpDefinition {
	return powerUpDefs[t]
}

// Палитры эффектов, не привязанных к материалу.
var (
	ShipExplosionPalette = render.Palette{{255, 0, 0, 255}, {255, 165, 0, 255}, {255, 255, 0, 255}}
	BlackHolePalette     = render.Palette{{100, 50, 200, 255}}
	RespawnPalette       = render.Palette{{0, 200, 255, 255}}
	ShockwaveColor       = color.RGBA{255, 100, 0, 150}
	RingColor            = color.RGBA{255, 200, 0, 255}
	EnergyRingColor      = color.RGBA{0, 150, 255, 200}
	SmokePalette         = render.Palette{{90, 90, 100, 180}, {60, 60, 70, 160}}
)
