// internal/ui/hud.go
package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"go-space-arcade/internal/app"
	"go-space-arcade/internal/config"
	"go-space-arcade/internal/defs"
)

// HUD: все индикаторы поверх сцены.
type HUD struct {
	Width, Height float32

	status     *ShipStatusIndicator
	level      *LevelIndicator
	progress   *LevelProgressIndicator
	shield     *ShieldIndicator
	Pause      *PauseButton
	speed      *PowerUpIndicator
	weapon     *PowerUpIndicator
	multiplier *PowerUpIndicator
}

func NewHUD(width, height float32) *HUD {
	return &HUD{
		Width:      width,
		Height:     height,
		status:     NewShipStatusIndicator(20, 20),
		level:      NewLevelIndicator(width/2, 16),
		progress:   NewLevelProgressIndicator(width/2-59, 40),
		shield:     NewShieldIndicator(260, 27),
		Pause:      NewPauseButton(width-30, 30, 12, config.TextLightColor, config.TextLightColor),
		speed:      NewPowerUpIndicator(width-150, 80, 14, "SPD", defs.PowerUp(defs.PowerUpSpeed).Palette[0]),
		weapon:     NewPowerUpIndicator(width-105, 80, 14, "DMG", defs.PowerUp(defs.PowerUpWeapon).Palette[0]),
		multiplier: NewPowerUpIndicator(width-60, 80, 14, "x2", defs.PowerUp(defs.PowerUpMultiplier).Palette[0]),
	}
}

// Update продвигает анимации индикаторов.
func (h *HUD) Update(snap *app.Snapshot, deltaTime float64) {
	h.Pause.Update(deltaTime)
	if snap == nil {
		return
	}
	h.speed.Update(snap.Progress.SpeedBoost > 0, deltaTime)
	h.weapon.Update(snap.Progress.WeaponBoost > 0, deltaTime)
	h.multiplier.Update(snap.Progress.Multiplier > 1, deltaTime)
}

func (h *HUD) Draw(screen *ebiten.Image, snap *app.Snapshot) {
	if snap == nil {
		return
	}
	prog := snap.Progress
	ship := snap.Ship

	h.status.Draw(screen, ship.Health, ship.Shield, ship.ShieldActive, prog.Lives)
	h.shield.Draw(screen, ship.Shield, ship.ShieldActive)

	h.level.Draw(screen, prog.Level)
	total := defs.PlanetCount(prog.Level)
	h.progress.Draw(screen, total-len(snap.Planets), total, prog.Combo)

	h.speed.Draw(screen, prog.SpeedBoost/defs.PowerUp(defs.PowerUpSpeed).Duration.Seconds())
	h.weapon.Draw(screen, prog.WeaponBoost/defs.PowerUp(defs.PowerUpWeapon).Duration.Seconds())
	h.multiplier.Draw(screen, 1)
	h.Pause.Draw(screen)

	x := h.Width - 220
	drawText(screen, "SCORE "+FormatNumber(int64(prog.Score)), x, 110, config.TextLightColor)
	drawText(screen, "COINS "+FormatNumber(prog.Coins), x, 126, config.TextLightColor)
	if prog.Combo > 1 {
		drawText(screen, fmt.Sprintf("COMBO x%d", prog.Combo), x, 142, config.TextLightColor)
	}
	if len(prog.Missions) > 0 {
		drawText(screen, "MISSIONS: "+strings.Join(prog.Missions, ", "), 20, h.Height-24, config.TextLightColor)
	}
}

// DrawCentered: крупная подпись по центру (пауза, конец игры).
func (h *HUD) DrawCentered(screen *ebiten.Image, lines ...string) {
	lineHeight := float32(DefaultFace.Metrics().Height.Ceil() + config.TextOffsetY)
	y := h.Height/2 - lineHeight*float32(len(lines))/2
	for _, l := range lines {
		drawTextOutlined(screen, l, h.Width/2-TextWidth(l)/2, y, 1, config.TextLightColor, config.TextDarkColor)
		y += lineHeight
	}
}

// FormatNumber группирует разряды пробелами: 1 054 000.
func FormatNumber(n int64) string {
	sign := ""
	if n < 0 {
		sign, n = "-", -n
	}
	digits := strconv.FormatInt(n, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(d)
	}
	return sign + b.String()
}
