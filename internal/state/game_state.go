// internal/state/game_state.go
package state

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-space-arcade/internal/app"
	"go-space-arcade/internal/config"
	"go-space-arcade/internal/input"
	"go-space-arcade/internal/input/device"
	"go-space-arcade/internal/logger"
	"go-space-arcade/internal/storage"
	"go-space-arcade/internal/ui"
	"go-space-arcade/pkg/physics"
)

var _ State = (*PlayState)(nil)

// PlayState: идёт игра.
type PlayState struct {
	sm       *StateMachine
	deps     Deps
	game     *app.Game
	log      logger.Log
	joystick *input.VirtualJoystick
	scene    *ui.SceneRenderer
	hud      *ui.HUD
	saved    bool
}

func NewPlayState(sm *StateMachine, deps Deps) *PlayState {
	w, h := float64(deps.Settings.ScreenWidth), float64(deps.Settings.ScreenHeight)
	joystick := input.NewVirtualJoystick(physics.V(config.JoystickBaseRadius*1.5, h-config.JoystickBaseRadius*1.5), config.JoystickBaseRadius)
	joystick.SetDeadZone(deps.Settings.JoystickDeadZone)

	g := &PlayState{
		sm:       sm,
		deps:     deps,
		joystick: joystick,
		scene:    ui.NewSceneRenderer(),
		hud:      ui.NewHUD(float32(w), float32(h)),
	}
	g.game, g.log = deps.newSession(input.Merge{device.Keyboard{}, joystick})
	return g
}

func (g *PlayState) Enter() {
	g.hud.Pause.SetPaused(false)
	if g.deps.Sound != nil {
		g.deps.Sound.SetPaused(false)
	}
}

func (g *PlayState) Update(deltaTime float64) {
	if device.PausePressed() || g.pauseClicked() {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	if device.ShieldPressed() || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.game.RequestShield()
	}
	device.PollPointer(g.joystick)
	g.joystick.Update(deltaTime)

	g.game.Update(deltaTime)

	snap := g.game.Snapshot()
	if g.deps.Sound != nil {
		g.deps.Sound.UpdateEngine(snap.Ship.Velocity.Length(), snap.Ship.EngineGlow, deltaTime)
	}
	g.hud.Update(snap, deltaTime)

	if g.game.IsGameOver() {
		g.Save()
		g.sm.SetState(NewMenuState(g.sm, g.deps, snap))
	}
}

// pauseClicked: клик по кнопке паузы; такой клик не двигает джойстик.
func (g *PlayState) pauseClicked() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	x, y := ebiten.CursorPosition()
	return g.hud.Pause.Contains(float32(x), float32(y))
}

func (g *PlayState) Draw(screen *ebiten.Image) {
	snap := g.game.Snapshot()
	g.scene.Draw(screen, snap)
	g.hud.Draw(screen, snap)
	ui.DrawJoystick(screen, g.joystick)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.0f", ebiten.ActualFPS()))
}

func (g *PlayState) Exit() {}

// Save пишет прогресс один раз за сессию.
func (g *PlayState) Save() {
	if g.saved || g.deps.Store == nil {
		return
	}
	g.saved = true
	if err := g.deps.Store.Save(storage.Capture(g.game.World.GameState, time.Now())); err != nil {
		g.log.Error("failed to save progress", logger.Err(err))
		return
	}
	g.log.Info("progress saved", logger.String("path", g.deps.Store.Path()))
}

func (g *PlayState) Game() *app.Game { return g.game }
