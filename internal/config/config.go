package config

import (
	"crypto/rand"
	"fmt"
	"strings"
)

// Preset is a saved, named column list
type Preset struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
}

// Config holds persisted CLI defaults
type Config struct {
	Columns []string `json:"columns"`
	Presets []Preset `json:"presets"`
}

// Store interface for config persistence
type Store interface {
	Load() (*Config, error)
	Save(cfg *Config) error
}

// NewStore returns the shared config store
func NewStore() Store {
	store, err := NewSharedStore()
	if err != nil {
		// Fallback: return a store that will return empty config
		return &fallbackStore{}
	}
	return store
}

type fallbackStore struct{}

func (f *fallbackStore) Load() (*Config, error) {
	return &Config{Columns: []string{}, Presets: []Preset{}}, nil
}

func (f *fallbackStore) Save(cfg *Config) error {
	return nil
}

// FindPreset looks a preset up by name, ignoring case
func (c *Config) FindPreset(name string) (Preset, bool) {
	for _, p := range c.Presets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Preset{}, false
}

// AddPreset adds a preset, replacing the columns of an existing one with the same name
func (c *Config) AddPreset(name string, columns []string) Preset {
	for i, p := range c.Presets {
		if strings.EqualFold(p.Name, name) {
			c.Presets[i].Columns = columns
			return c.Presets[i]
		}
	}
	p := Preset{ID: generateID(), Name: name, Columns: columns}
	c.Presets = append(c.Presets, p)
	return p
}

// RemovePreset removes a preset by name and reports whether it existed
func (c *Config) RemovePreset(name string) bool {
	var filtered []Preset
	removed := false
	for _, p := range c.Presets {
		if strings.EqualFold(p.Name, name) {
			removed = true
			continue
		}
		filtered = append(filtered, p)
	}
	c.Presets = filtered
	return removed
}

// generateID creates a UUID v4
func generateID() string {
	uuid := make([]byte, 16)
	rand.Read(uuid)
	// Set version 4 and variant bits
	uuid[6] = (uuid[6] & 0x0f) | 0x40
	uuid[8] = (uuid[8] & 0x3f) | 0x80
	return fmt.Sprintf("%08X-%04X-%04X-%04X-%012X",
		uuid[0:4], uuid[4:6], uuid[6:8], uuid[8:10], uuid[10:16])
}
