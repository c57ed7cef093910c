package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Preferences is a flat key/value store persisted as YAML.
// Set only changes memory; Save makes every pending value durable at once.
type Preferences struct {
	path   string
	values map[string]string
	logger *log.Logger
}

// NewPreferences creates an empty store backed by path
func NewPreferences(path string) *Preferences {
	return &Preferences{
		path:   path,
		values: make(map[string]string),
		logger: log.New(os.Stderr),
	}
}

// LoadPreferences opens the store at path. A missing file yields an empty store.
func LoadPreferences(path string) (*Preferences, error) {
	p := NewPreferences(path)
	if err := p.Load(); err != nil {
		return nil, err
	}
	return p, nil
}

// SetLogger replaces the store's logger
func (p *Preferences) SetLogger(logger *log.Logger) {
	p.logger = logger
}

// Path returns the backing file
func (p *Preferences) Path() string {
	return p.path
}

// Load replaces the in-memory values with the file contents
func (p *Preferences) Load() error {
	data, err := os.ReadFile(p.path)
	if os.IsNotExist(err) {
		p.values = make(map[string]string)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read preferences: %w", err)
	}

	values := make(map[string]string)
	if err := yaml.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("failed to parse preferences: %w", err)
	}
	// A null document leaves the map nil
	if values == nil {
		values = make(map[string]string)
	}

	p.values = values
	p.logger.Debug("Loaded preferences", "path", p.path, "keys", len(values))
	return nil
}

// Get returns the value stored under key
func (p *Preferences) Get(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Set stores value under key in memory
func (p *Preferences) Set(key, value string) {
	p.values[key] = value
}

// Delete removes key in memory
func (p *Preferences) Delete(key string) {
	delete(p.values, key)
}

// Keys returns the stored keys in sorted order
func (p *Preferences) Keys() []string {
	keys := make([]string, 0, len(p.values))
	for k := range p.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Save writes all values to a temp file next to the target and renames it
// into place, so readers only ever see a complete file.
func (p *Preferences) Save() error {
	data, err := yaml.Marshal(p.values)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	dir := filepath.Dir(p.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".preferences-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync preferences: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close preferences: %w", err)
	}
	if err := os.Chmod(tmpName, 0600); err != nil {
		return fmt.Errorf("failed to set preferences permissions: %w", err)
	}
	if err := os.Rename(tmpName, p.path); err != nil {
		return fmt.Errorf("failed to replace preferences: %w", err)
	}

	p.logger.Debug("Saved preferences", "path", p.path, "keys", len(p.values))
	return nil
}
