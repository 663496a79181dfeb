package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-space-arcade/internal/component"
	"go-space-arcade/internal/defs"
	"go-space-arcade/internal/logger"
	"go-space-arcade/pkg/physics"
)

func TestRunnerStopsOnCancel(t *testing.T) {
	g := newTestGame(physics.Vec2{}, false)
	g.Start()
	r := NewRunner(g, time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	require.Eventually(t, func() bool { return g.Snapshot().Tick >= 5 }, 2*time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("runner did not stop")
	}
}

func TestRunnerDeadlineIsReported(t *testing.T) {
	g := newTestGame(physics.Vec2{}, false)
	r := NewRunner(g, time.Millisecond, logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, r.Run(ctx), context.DeadlineExceeded)
}

func TestRunnerPauseFreezesClock(t *testing.T) {
	g := newTestGame(physics.Vec2{}, false)
	r := NewRunner(g, time.Millisecond, logger.Nop())

	// Часы двигаются вручную: каждый вызов now прибавляет 10 мс.
	var clock time.Time
	r.now = func() time.Time {
		clock = clock.Add(10 * time.Millisecond)
		return clock
	}
	r.Pause()
	require.True(t, r.Paused())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()
	require.NoError(t, <-done)
	assert.Zero(t, g.Tick())
	assert.Zero(t, g.Snapshot().Tick)
}

func TestRunnerReturnsOnGameOver(t *testing.T) {
	g := newTestGame(physics.Vec2{}, false)
	g.World.GameState.Lives = 1
	e := component.NewEnemy(g.World.NewEntity(), defs.EnemyScout, 1, g.World.Ship.Position, physics.Vec2{})
	g.World.Enemies = append(g.World.Enemies, e)
	r := NewRunner(g, time.Millisecond, logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, r.Run(ctx))
	assert.True(t, g.IsGameOver())
	assert.Equal(t, uint64(1), g.Tick())
}
