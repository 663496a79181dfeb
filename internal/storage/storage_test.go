package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"go-space-arcade/internal/component"
	"go-space-arcade/internal/config"
	"go-space-arcade/internal/defs"
	"go-space-arcade/internal/logger"
)

func TestLoadMissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "save.json"))
	_, err := s.Load()
	assert.ErrorIs(t, err, ErrNoSave)
}

func TestSaveAndRestore(t *testing.T) {
	gs := component.NewGameState(uuid.NewString())
	gs.PlanetDestroyed(defs.PlanetGas)
	gs.NextLevel()
	gs.AddDistance(1234)
	require.True(t, gs.Upgrade(component.UpgradeSpeed))

	s := NewFileStore(filepath.Join(t.TempDir(), "save.json"))
	require.NoError(t, s.Save(Capture(gs, time.Unix(100, 0))))

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, gs.SessionID, loaded.SessionID)
	assert.Contains(t, loaded.Achievements, "planet_1")

	restored := component.NewGameState("next")
	loaded.Apply(restored)
	assert.Equal(t, gs.Coins, restored.Coins)
	assert.Equal(t, gs.Score, restored.Score)
	assert.Equal(t, 2, restored.CurrentLevel)
	assert.Equal(t, 2, restored.Upgrades.Speed)
	assert.InDelta(t, 1234, restored.DistanceTravel, 1e-9)
	assert.True(t, restored.Achievements[0].Unlocked)
	assert.Equal(t, "next", restored.SessionID)
}

func TestFinishedRunRestartsAtLevelOne(t *testing.T) {
	p := Progress{Coins: 5_000_000, Score: 900, Level: 7, Lives: 0}
	gs := component.NewGameState("s")
	p.Apply(gs)
	assert.Equal(t, 1, gs.CurrentLevel)
	assert.Equal(t, config.StartingLives, gs.Lives)
	assert.Zero(t, gs.Score)
	assert.Equal(t, int64(5_000_000), gs.Coins)
	assert.Equal(t, 1, gs.Upgrades.Weapon)
}

func TestCorruptSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err := NewFileStore(path).Load()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoSave)
}

func TestRestoreLogsOutcome(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := logger.FromZap(zap.New(core))
	store := NewFileStore(filepath.Join(t.TempDir(), "save.json"))

	gs := component.NewGameState("s")
	assert.False(t, store.Restore(gs, log))
	assert.Equal(t, 1, logs.FilterMessage("no saved progress").Len())

	require.NoError(t, store.Save(Progress{Coins: 10, Level: 4, Lives: 2}))
	assert.True(t, store.Restore(gs, log))
	assert.Equal(t, 4, gs.CurrentLevel)
	assert.Equal(t, 1, logs.FilterMessage("progress loaded").Len())

	require.NoError(t, os.WriteFile(store.Path(), []byte("[]"), 0o644))
	assert.False(t, store.Restore(component.NewGameState("s"), log))
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}
