// Package config loads and watches the selsearch configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"

	"github.com/bnema/selsearch/internal/domain/menu"
	"github.com/bnema/selsearch/internal/logging"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	configDir string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a configuration manager reading from the XDG config directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerAt(configDir)
}

// NewManagerAt creates a configuration manager reading config.toml from configDir.
func NewManagerAt(configDir string) (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	// SELSEARCH_STORAGE_DATABASE_PATH, SELSEARCH_EDITOR_DEBOUNCE_MS, ...
	v.SetEnvPrefix("SELSEARCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Logging environment variable bindings
	if err := v.BindEnv("logging.level", "SELSEARCH_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind SELSEARCH_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "SELSEARCH_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind SELSEARCH_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		configDir: configDir,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables. A
// missing file is created with the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return fmt.Errorf("failed to ensure config directory: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.decode()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configFilePath(), err)
		}
		if createErr := m.createDefaultConfig(); createErr != nil {
			return fmt.Errorf(
				"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
				m.configDir,
				createErr,
			)
		}
		if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
			return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
		}
	}
	return nil
}

// decode unmarshals, fills paths, normalizes and validates. Must be called
// with the lock held.
func (m *Manager) decode() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	if err := resolvePaths(config); err != nil {
		return nil, err
	}
	normalizeConfig(config)
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

func resolvePaths(config *Config) error {
	resolvers := []struct {
		target *string
		get    func() (string, error)
		name   string
	}{
		{&config.Storage.DatabasePath, GetDatabaseFile, "database path"},
		{&config.Storage.SyncDir, GetSyncDir, "sync directory"},
		{&config.Daemon.SocketPath, GetSocketFile, "socket path"},
		{&config.Logging.LogDir, GetLogDir, "log directory"},
	}
	for _, r := range resolvers {
		if *r.target != "" {
			*r.target = expandHome(*r.target)
			continue
		}
		path, err := r.get()
		if err != nil {
			return fmt.Errorf("failed to get %s: %w", r.name, err)
		}
		*r.target = path
	}
	return nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func normalizeConfig(config *Config) {
	level := strings.ToLower(strings.TrimSpace(config.Logging.Level))
	switch level {
	case "warning":
		level = "warn"
	case "off":
		level = "disabled"
	case "":
		level = defaultLogLevel
	}
	config.Logging.Level = level
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))

	config.Picker.Launcher = strings.ToLower(strings.TrimSpace(config.Picker.Launcher))
	if config.Picker.Launcher == "" {
		config.Picker.Launcher = defaultPickerLauncher
	}
	if config.Menu.RootTitle == "" {
		config.Menu.RootTitle = defaultRootTitle
	}
	if config.Menu.OptionsTitle == "" {
		config.Menu.OptionsTitle = defaultOptionsTitle
	}
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return m.configFilePath()
}

func (m *Manager) configFilePath() string {
	return filepath.Join(m.configDir, "config.toml")
}

// createDefaultConfig writes the defaults to config.toml.
func (m *Manager) createDefaultConfig() error {
	configFile := m.configFilePath()
	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}
	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}

	logger := logging.NewFromEnv()
	logger.Info().Str("path", configFile).Msg("created default configuration file")
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("storage.database_path", defaults.Storage.DatabasePath)
	m.viper.SetDefault("storage.sync_dir", defaults.Storage.SyncDir)
	m.viper.SetDefault("storage.poll_interval_ms", defaults.Storage.PollIntervalMs)

	m.viper.SetDefault("daemon.socket_path", defaults.Daemon.SocketPath)
	m.viper.SetDefault("daemon.click_timeout_ms", defaults.Daemon.ClickTimeoutMs)

	m.viper.SetDefault("editor.debounce_ms", defaults.Editor.DebounceMs)
	m.viper.SetDefault("errors.repeat_threshold", defaults.Errors.RepeatThreshold)

	m.viper.SetDefault("menu.root_title", defaults.Menu.RootTitle)
	m.viper.SetDefault("menu.options_title", defaults.Menu.OptionsTitle)

	m.viper.SetDefault("dispatch.browser_command", defaults.Dispatch.BrowserCommand)
	m.viper.SetDefault("settings.launcher_command", defaults.Settings.LauncherCommand)

	m.viper.SetDefault("picker.launcher", defaults.Picker.Launcher)
	m.viper.SetDefault("picker.command", defaults.Picker.Command)
	m.viper.SetDefault("picker.group_separator", defaults.Picker.GroupSeparator)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age", defaults.Logging.MaxAge)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)
}

// Labels returns the fixed menu titles.
func (c *Config) Labels() menu.Labels {
	return menu.Labels{RootTitle: c.Menu.RootTitle, OptionsTitle: c.Menu.OptionsTitle}
}

// Debounce returns the editor debounce delay.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.Editor.DebounceMs) * time.Millisecond
}

// ClickTimeout returns how long a click may wait for the initial load.
func (c *Config) ClickTimeout() time.Duration {
	return time.Duration(c.Daemon.ClickTimeoutMs) * time.Millisecond
}

// PollInterval returns the storage polling interval, or 0.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Storage.PollIntervalMs) * time.Millisecond
}
