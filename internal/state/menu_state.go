// internal/state/menu_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-space-arcade/internal/app"
	"go-space-arcade/internal/ui"
)

// MenuState: заставка перед игрой и экран итогов после неё.
type MenuState struct {
	sm      *StateMachine
	deps    Deps
	final   *app.Snapshot // nil: первая заставка
	scene   *ui.SceneRenderer
	hud     *ui.HUD
	restart *ui.Button
}

func NewMenuState(sm *StateMachine, deps Deps, final *app.Snapshot) *MenuState {
	w, h := float32(deps.Settings.ScreenWidth), float32(deps.Settings.ScreenHeight)
	label := "START"
	if final != nil {
		label = "RESTART"
	}
	return &MenuState{
		sm:      sm,
		deps:    deps,
		final:   final,
		scene:   ui.NewSceneRenderer(),
		hud:     ui.NewHUD(w, h),
		restart: ui.NewButton(w/2-70, h/2+60, 140, 36, label),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	start := inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		start = start || m.restart.Contains(float32(x), float32(y))
	}
	if start {
		m.sm.SetState(NewPlayState(m.sm, m.deps))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	m.scene.Draw(screen, m.final)
	if m.final == nil {
		m.hud.DrawCentered(screen, "SPACE ARCADE", "SPACE to start")
	} else {
		p := m.final.Progress
		m.hud.DrawCentered(screen,
			"GAME OVER",
			"SCORE "+ui.FormatNumber(int64(p.Score)),
			fmt.Sprintf("LEVEL %d   MAX COMBO %d", p.Level, p.MaxCombo),
		)
	}
	x, y := ebiten.CursorPosition()
	m.restart.Draw(screen, float32(x), float32(y))
}

func (m *MenuState) Exit() {}
