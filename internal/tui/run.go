// internal/tui/run.go
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-space-arcade/internal/app"
	"go-space-arcade/internal/logger"
)

// ErrQuit возвращается, когда игрок вышел из терминала сам.
var ErrQuit = errors.New("tui: quit requested")

// Controls: действия над симуляцией, доступные из терминала.
type Controls interface {
	Snapshot() *app.Snapshot
	RequestShield()
}

// Pauser: необязательная пауза (app.Runner).
type Pauser interface {
	Pause()
	Resume()
	Paused() bool
}

// Terminal связывает экран, клавиши и симуляцию.
type Terminal struct {
	screen   tcell.Screen
	view     *View
	keys     *KeyInput
	controls Controls
	pauser   Pauser
	interval time.Duration
	log      logger.Log
}

func NewTerminal(screen tcell.Screen, keys *KeyInput, controls Controls, pauser Pauser, interval time.Duration, log logger.Log) *Terminal {
	if interval <= 0 {
		interval = time.Second / 30
	}
	return &Terminal{
		screen:   screen,
		view:     NewView(screen),
		keys:     keys,
		controls: controls,
		pauser:   pauser,
		interval: interval,
		log:      log,
	}
}

// Run перерисовывает экран до отмены контекста или выхода игрока.
// Экран должен быть уже инициализирован; Fini остаётся вызывающему.
func (t *Terminal) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			// После Fini PollEvent возвращает nil.
			ev := t.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	t.view.Draw(t.controls.Snapshot())
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := t.handle(ev); err != nil {
				return err
			}
		case <-ticker.C:
			t.view.Draw(t.controls.Snapshot())
		}
	}
}

func (t *Terminal) handle(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
	case *tcell.EventKey:
		switch t.keys.Handle(ev) {
		case ActionQuit:
			t.log.Info("terminal quit requested")
			return ErrQuit
		case ActionShield:
			t.controls.RequestShield()
		case ActionPause:
			if t.pauser == nil {
				break
			}
			if t.pauser.Paused() {
				t.pauser.Resume()
			} else {
				t.pauser.Pause()
			}
		}
	}
	return nil
}
