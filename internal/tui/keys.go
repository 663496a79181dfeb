// internal/tui/keys.go
package tui

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-space-arcade/pkg/physics"
)

// holdTime: сколько держится направление после нажатия, так как терминал не присылает отпускание клавиш.
const holdTime = 200 * time.Millisecond

// KeyInput превращает нажатия стрелок в силу. Читается из потока симуляции,
// пишется из цикла событий терминала.
type KeyInput struct {
	mu      sync.Mutex
	force   physics.Vec2
	pressed time.Time
	now     func() time.Time
}

func NewKeyInput() *KeyInput {
	return &KeyInput{now: time.Now}
}

// Action: что цикл терминала должен сделать после клавиши.
type Action int

const (
	ActionNone Action = iota
	ActionSteer
	ActionShield
	ActionPause
	ActionQuit
)

// Handle разбирает одну клавишу.
func (k *KeyInput) Handle(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyUp:
		k.steer(physics.V(0, -1))
		return ActionSteer
	case tcell.KeyDown:
		k.steer(physics.V(0, 1))
		return ActionSteer
	case tcell.KeyLeft:
		k.steer(physics.V(-1, 0))
		return ActionSteer
	case tcell.KeyRight:
		k.steer(physics.V(1, 0))
		return ActionSteer
	case tcell.KeyRune:
	default:
		return ActionNone
	}
	switch ev.Rune() {
	case 'q', 'Q':
		return ActionQuit
	case ' ':
		return ActionShield
	case 'p', 'P':
		return ActionPause
	case 'w', 'W':
		k.steer(physics.V(0, -1))
	case 's', 'S':
		k.steer(physics.V(0, 1))
	case 'a', 'A':
		k.steer(physics.V(-1, 0))
	case 'd', 'D':
		k.steer(physics.V(1, 0))
	default:
		return ActionNone
	}
	return ActionSteer
}

func (k *KeyInput) steer(dir physics.Vec2) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.force = dir
	k.pressed = k.now()
}

func (k *KeyInput) Active() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return !k.pressed.IsZero() && k.now().Sub(k.pressed) < holdTime
}

func (k *KeyInput) Force() physics.Vec2 {
	if !k.Active() {
		return physics.Vec2{}
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.force
}
