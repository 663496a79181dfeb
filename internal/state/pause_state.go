// internal/state/pause_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-space-arcade/internal/input/device"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState останавливает симуляцию и рисует поверх замершего кадра.
type PauseState struct {
	stateMachine *StateMachine
	play         *PlayState
}

func NewPauseState(sm *StateMachine, play *PlayState) *PauseState {
	return &PauseState{stateMachine: sm, play: play}
}

func (s *PauseState) Enter() {
	s.play.hud.Pause.SetPaused(true)
	if s.play.deps.Sound != nil {
		s.play.deps.Sound.SetPaused(true)
	}
}

func (s *PauseState) Update(deltaTime float64) {
	s.play.hud.Pause.Update(deltaTime)

	unpause := device.PausePressed()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		unpause = unpause || s.play.hud.Pause.Contains(float32(x), float32(y))
	}
	if unpause {
		s.stateMachine.SetState(s.play)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.play.Draw(screen)
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), color.RGBA{0, 0, 0, 128}, false)
	s.play.hud.DrawCentered(screen, "PAUSED", "P / ESC to resume")
	s.play.hud.Pause.Draw(screen)
}

func (s *PauseState) Exit() {}

// Save: сохранение из паузы (закрытие окна во время паузы).
func (s *PauseState) Save() { s.play.Save() }
