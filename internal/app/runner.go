// internal/app/runner.go
package app

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"go-space-arcade/internal/logger"
)

// Runner крутит Game с фиксированной частотой вне ebiten (безголовый режим).
type Runner struct {
	game     *Game
	interval time.Duration
	log      logger.Log
	paused   atomic.Bool
	now      func() time.Time
}

func NewRunner(game *Game, interval time.Duration, log logger.Log) *Runner {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &Runner{game: game, interval: interval, log: log, now: time.Now}
}

// Run тикает до отмены контекста или конца игры. Отмена проверяется только
// между тиками, так что мир всегда остаётся согласованным.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	last := r.now()
	r.log.Info("runner started", logger.Duration("interval", r.interval))
	for {
		select {
		case <-ctx.Done():
			r.log.Info("runner stopped", logger.Any("tick", r.game.Tick()))
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		case <-ticker.C:
		}

		now := r.now()
		if r.paused.Load() {
			last = now
			continue
		}
		deltaTime := now.Sub(last).Seconds()
		last = now

		r.game.Update(deltaTime)
		if r.game.IsGameOver() {
			r.log.Info("runner finished: game over", logger.Any("tick", r.game.Tick()))
			return nil
		}
	}
}

// Pause останавливает часы симуляции. Тики продолжают приходить, но мир не меняется.
func (r *Runner) Pause() { r.paused.Store(true) }

// Resume возобновляет симуляцию без догоняющего большого шага.
func (r *Runner) Resume() { r.paused.Store(false) }

func (r *Runner) Paused() bool { return r.paused.Load() }
