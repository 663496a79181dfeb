// internal/storage/storage.go
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go-space-arcade/internal/component"
	"go-space-arcade/internal/config"
	"go-space-arcade/internal/logger"
)

// ErrNoSave: файла сохранения ещё нет.
var ErrNoSave = errors.New("no saved progress")

// Progress: то, что переживает перезапуск.
type Progress struct {
	SessionID     string             `json:"session_id"`
	SavedAt       time.Time          `json:"saved_at"`
	Coins         int64              `json:"coins"`
	Score         int                `json:"score"`
	Level         int                `json:"level"`
	Lives         int                `json:"lives"`
	PlayTime      float64            `json:"total_play_time"`
	MaxCombo      int                `json:"max_combo"`
	TotalDistance float64            `json:"total_distance"`
	Upgrades      component.Upgrades `json:"upgrades"`
	Achievements  []string           `json:"achievements,omitempty"`
}

// Capture снимает прогресс с состояния игры.
func Capture(gs *component.GameState, now time.Time) Progress {
	p := Progress{
		SessionID:     gs.SessionID,
		SavedAt:       now.UTC(),
		Coins:         gs.Coins,
		Score:         gs.Score,
		Level:         gs.CurrentLevel,
		Lives:         gs.Lives,
		PlayTime:      gs.PlayTime,
		MaxCombo:      gs.MaxCombo,
		TotalDistance: gs.DistanceTravel,
		Upgrades:      gs.Upgrades,
	}
	for _, a := range gs.Achievements {
		if a.Unlocked {
			p.Achievements = append(p.Achievements, a.ID)
		}
	}
	return p
}

// Apply восстанавливает прогресс. Законченный забег (жизней не осталось)
// начинается заново с первого уровня, экономика и улучшения сохраняются.
func (p Progress) Apply(gs *component.GameState) {
	gs.Coins = max(p.Coins, 0)
	gs.PlayTime = p.PlayTime
	gs.MaxCombo = p.MaxCombo
	gs.DistanceTravel = p.TotalDistance
	gs.Upgrades = normalizeUpgrades(p.Upgrades)

	if p.Lives > 0 && p.Level > 0 {
		gs.Score = p.Score
		gs.CurrentLevel = p.Level
		gs.Lives = p.Lives
	} else {
		gs.Score = 0
		gs.CurrentLevel = 1
		gs.Lives = config.StartingLives
	}

	unlocked := make(map[string]bool, len(p.Achievements))
	for _, id := range p.Achievements {
		unlocked[id] = true
	}
	for i := range gs.Achievements {
		if unlocked[gs.Achievements[i].ID] {
			gs.Achievements[i].Unlocked = true
		}
	}
}

func normalizeUpgrades(u component.Upgrades) component.Upgrades {
	u.Speed = max(u.Speed, 1)
	u.Health = max(u.Health, 1)
	u.Weapon = max(u.Weapon, 1)
	u.ShieldCapacity = max(u.ShieldCapacity, 1)
	return u
}

// FileStore хранит прогресс одним JSON-файлом.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string { return s.path }

// Load читает сохранение. Если файла нет, возвращает ErrNoSave.
func (s *FileStore) Load() (Progress, error) {
	var p Progress
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return p, ErrNoSave
	}
	if err != nil {
		return p, fmt.Errorf("read save %s: %w", s.path, err)
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("decode save %s: %w", s.path, err)
	}
	return p, nil
}

// Save пишет во временный файл и переименовывает, чтобы не оставить полузаписанный JSON.
func (s *FileStore) Save(p Progress) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encode save: %w", err)
	}
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".save-*.json")
	if err != nil {
		return fmt.Errorf("create temp save in %s: %w", dir, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close save: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace save %s: %w", s.path, err)
	}
	return nil
}

// Restore накладывает сохранённый прогресс на gs. Отсутствие или порча файла
// не мешают начать игру: об этом только пишется в лог.
func (s *FileStore) Restore(gs *component.GameState, log logger.Log) bool {
	progress, err := s.Load()
	switch {
	case errors.Is(err, ErrNoSave):
		log.Info("no saved progress", logger.String("path", s.path))
		return false
	case err != nil:
		log.Warn("failed to load progress", logger.Err(err))
		return false
	}
	progress.Apply(gs)
	log.Info("progress loaded", logger.Int("level", gs.CurrentLevel), logger.Int("lives", gs.Lives))
	return true
}
