package storage

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

// Storage is the main storage manager that coordinates all storage components
type Storage struct {
	ConfigManager *ConfigManager
	Config        *Config
	Preferences   *Preferences
	History       *ChangeLog
	logger        *log.Logger
}

// New creates a new Storage instance with all components initialized
func New() (*Storage, error) {
	logger := log.New(os.Stderr)

	configManager, err := NewConfigManager()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config manager: %w", err)
	}
	configManager.SetLogger(logger)

	config, err := configManager.LoadConfig()
	if err != nil {
		logger.Warn("Failed to load config, using defaults", "error", err)
		config = configManager.getDefaultConfig()
	}

	prefs, err := LoadPreferences(config.PreferencesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize preferences: %w", err)
	}
	prefs.SetLogger(logger)

	var history *ChangeLog
	if config.HistoryEnabled {
		history = NewChangeLog(config.HistoryFile)
		history.SetLogger(logger)
	}

	return &Storage{
		ConfigManager: configManager,
		Config:        config,
		Preferences:   prefs,
		History:       history,
		logger:        logger,
	}, nil
}

// SetLogger routes every component's logs to logger
func (s *Storage) SetLogger(logger *log.Logger) {
	s.logger = logger
	s.ConfigManager.SetLogger(logger)
	s.Preferences.SetLogger(logger)
	if s.History != nil {
		s.History.SetLogger(logger)
	}
}

// Initialize performs initial setup and validation
func (s *Storage) Initialize() error {
	if err := s.ConfigManager.Validate(s.Config); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	s.logger.Info("Storage system initialized successfully")
	return nil
}

// RecordChange appends to the change history when it is enabled
func (s *Storage) RecordChange(zone, background, foreground string, saved bool) {
	if s.History == nil {
		return
	}
	if _, err := s.History.Record(zone, background, foreground, saved); err != nil {
		s.logger.Warn("Failed to record change", "error", err)
	}
}
