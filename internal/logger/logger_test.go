package logger

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, LevelDebug, lvl)

	lvl, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, LevelInfo, lvl)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestWithAttachesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := FromZap(zap.New(core)).With(String("session_id", "abc"))

	l.Info("level started", Int("level", 2), Float64("dt", 0.016), Err(errors.New("boom")))

	entries := logs.All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "abc", ctx["session_id"])
	assert.EqualValues(t, 2, ctx["level"])
	assert.Equal(t, "boom", ctx["error"])
}

func TestNopDoesNotPanic(t *testing.T) {
	l := Nop()
	l.Warn("ignored", Bool("x", true), Any("y", []int{1}))
	assert.NoError(t, l.Sync())
}

func TestNewWithPathsWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	l, err := NewWithPaths(LevelInfo, path)
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("visible", String("k", "v"))
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"visible"`)
	assert.Contains(t, string(data), `"k":"v"`)
	assert.NotContains(t, string(data), "hidden")
}
