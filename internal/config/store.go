package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

const (
	configDir  = ".fdinspect"
	configFile = "config.json"
)

type sharedStore struct {
	path string
	mu   sync.RWMutex
}

// NewSharedStore creates a config store at ~/.fdinspect/config.json
func NewSharedStore() (Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return NewFileStore(filepath.Join(home, configDir, configFile)), nil
}

// NewFileStore creates a config store backed by the JSON file at path
func NewFileStore(path string) Store {
	return &sharedStore{path: path}
}

func (s *sharedStore) Load() (*Config, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cfg := &Config{
		Columns: []string{},
		Presets: []Preset{},
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (s *sharedStore) Save(cfg *Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := *cfg

	// Ensure non-nil slices for clean JSON
	if out.Columns == nil {
		out.Columns = []string{}
	}
	if out.Presets == nil {
		out.Presets = []Preset{}
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}
