// Package settings persists client preferences between runs.
package settings

import (
	"encoding/json"
	"fmt"

	cfg "github.com/automoto/tilebrawl/config"
	"github.com/automoto/tilebrawl/logger"
	"github.com/quasilyte/gdata"
)

const itemKey = "settings"

// Store is the slice of gdata.Manager used here.
type Store interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Saved is the settings record stored on disk.
type Saved struct {
	EnemyAI      bool   `json:"enemyAI"`
	DrawHitboxes bool   `json:"drawHitboxes"`
	LastRoom     string `json:"lastRoom"`
}

// Current reads the live values from config.
func Current(lastRoom string) Saved {
	return Saved{
		EnemyAI:      cfg.EnemyAI.Enabled,
		DrawHitboxes: cfg.Debug.DrawHitboxes,
		LastRoom:     lastRoom,
	}
}

// Apply pushes saved values into config.
func (s Saved) Apply() {
	cfg.EnemyAI.Enabled = s.EnemyAI
	cfg.Debug.DrawHitboxes = s.DrawHitboxes
}

// Manager loads and saves settings. A Manager without a store does
// nothing, so the game runs where no data directory is available.
type Manager struct {
	store Store
}

// Open uses gdata's per-user data directory for appName.
func Open(appName string) *Manager {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		logger.For("settings").WithError(err).Warn("could not initialize persistence")
		return &Manager{}
	}
	return &Manager{store: m}
}

func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// Load returns the saved settings, or nil when none exist yet.
func (m *Manager) Load() (*Saved, error) {
	if m.store == nil {
		return nil, nil
	}
	data, err := m.store.LoadItem(itemKey)
	if err != nil {
		logger.For("settings").WithError(err).Warn("could not load settings")
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var s Saved
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse saved settings: %w", err)
	}
	return &s, nil
}

func (m *Manager) Save(s Saved) error {
	if m.store == nil {
		return nil
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := m.store.SaveItem(itemKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
