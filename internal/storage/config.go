package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Theme    string `json:"theme" mapstructure:"theme"`
	LogLevel string `json:"log_level" mapstructure:"log_level"`
	LogFile  string `json:"log_file" mapstructure:"log_file"`

	PreferencesFile string `json:"preferences_file" mapstructure:"preferences_file"`
	HistoryFile     string `json:"history_file" mapstructure:"history_file"`
	HistoryEnabled  bool   `json:"history_enabled" mapstructure:"history_enabled"`

	// Editor shell settings
	DebuggerArmed    bool   `json:"debugger_armed" mapstructure:"debugger_armed"`
	EnableAnimations bool   `json:"enable_animations" mapstructure:"enable_animations"`
	CodeLanguage     string `json:"code_language" mapstructure:"code_language"`
	SketchFile       string `json:"sketch_file" mapstructure:"sketch_file"`
}

// ConfigManager handles configuration storage and retrieval
type ConfigManager struct {
	configDir  string
	configFile string
	logger     *log.Logger
}

// NewConfigManager creates a new ConfigManager instance
func NewConfigManager() (*ConfigManager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}

	return &ConfigManager{
		configDir:  configDir,
		configFile: filepath.Join(configDir, "config.json"),
		logger:     log.New(os.Stderr),
	}, nil
}

// GetConfigDir returns the configuration directory path
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".tinter")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigDir returns the directory holding config.json
func (cm *ConfigManager) ConfigDir() string {
	return cm.configDir
}

// SetLogger replaces the manager's logger
func (cm *ConfigManager) SetLogger(logger *log.Logger) {
	cm.logger = logger
}

// LoadConfig loads the configuration file, writing defaults on first run.
// TINTER_* environment variables override file values.
func (cm *ConfigManager) LoadConfig() (*Config, error) {
	return cm.load(true)
}

// loadFile loads the configuration file alone, for updates written back to it
func (cm *ConfigManager) loadFile() (*Config, error) {
	return cm.load(false)
}

func (cm *ConfigManager) load(withEnv bool) (*Config, error) {
	if _, err := os.Stat(cm.configFile); os.IsNotExist(err) {
		if err := cm.SaveConfig(cm.getDefaultConfig()); err != nil {
			cm.logger.Warn("Failed to save default config", "error", err)
		}
	}

	v := viper.New()
	v.SetConfigFile(cm.configFile)
	v.SetConfigType("json")
	cm.setViperDefaults(v)

	if withEnv {
		v.SetEnvPrefix("TINTER")
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()
	}

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cm.applyDefaults(&config)
	return &config, nil
}

// SaveConfig saves the application configuration
func (cm *ConfigManager) SaveConfig(config *Config) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(cm.configFile, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// getDefaultConfig returns a configuration with default values
func (cm *ConfigManager) getDefaultConfig() *Config {
	return &Config{
		Theme:            "auto",
		LogLevel:         "info",
		LogFile:          filepath.Join(cm.configDir, "tinter.log"),
		PreferencesFile:  filepath.Join(cm.configDir, "preferences.yaml"),
		HistoryFile:      filepath.Join(cm.configDir, "history.jsonl"),
		HistoryEnabled:   true,
		DebuggerArmed:    false,
		EnableAnimations: true,
		CodeLanguage:     "java",
	}
}

func (cm *ConfigManager) setViperDefaults(v *viper.Viper) {
	d := cm.getDefaultConfig()
	v.SetDefault("theme", d.Theme)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("preferences_file", d.PreferencesFile)
	v.SetDefault("history_file", d.HistoryFile)
	v.SetDefault("history_enabled", d.HistoryEnabled)
	v.SetDefault("debugger_armed", d.DebuggerArmed)
	v.SetDefault("enable_animations", d.EnableAnimations)
	v.SetDefault("code_language", d.CodeLanguage)
	v.SetDefault("sketch_file", d.SketchFile)
}

// applyDefaults fills fields left empty by an older or hand-edited file
func (cm *ConfigManager) applyDefaults(config *Config) {
	d := cm.getDefaultConfig()

	if config.Theme == "" {
		config.Theme = d.Theme
	}
	if config.LogLevel == "" {
		config.LogLevel = d.LogLevel
	}
	if config.LogFile == "" {
		config.LogFile = d.LogFile
	}
	if config.PreferencesFile == "" {
		config.PreferencesFile = d.PreferencesFile
	}
	if config.HistoryFile == "" {
		config.HistoryFile = d.HistoryFile
	}
	if config.CodeLanguage == "" {
		config.CodeLanguage = d.CodeLanguage
	}
}

// UpdateTheme updates the configured theme name
func (cm *ConfigManager) UpdateTheme(theme string) error {
	config, err := cm.loadFile()
	if err != nil {
		return err
	}

	config.Theme = theme
	return cm.SaveConfig(config)
}

// UpdateDebuggerArmed persists the debugger toggle
func (cm *ConfigManager) UpdateDebuggerArmed(armed bool) error {
	config, err := cm.loadFile()
	if err != nil {
		return err
	}

	config.DebuggerArmed = armed
	return cm.SaveConfig(config)
}

// Validate validates the configuration
func (cm *ConfigManager) Validate(config *Config) error {
	if config.Theme == "" {
		return fmt.Errorf("theme cannot be empty")
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	validLevel := false
	for _, level := range validLogLevels {
		if config.LogLevel == level {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid log level: %s", config.LogLevel)
	}

	if config.PreferencesFile == "" {
		return fmt.Errorf("preferences file cannot be empty")
	}
	if config.HistoryEnabled && config.HistoryFile == "" {
		return fmt.Errorf("history file cannot be empty when history is enabled")
	}

	return nil
}
