package config

// Config represents the complete configuration for selsearch.
type Config struct {
	Storage  StorageConfig  `mapstructure:"storage" yaml:"storage" toml:"storage"`
	Daemon   DaemonConfig   `mapstructure:"daemon" yaml:"daemon" toml:"daemon"`
	Editor   EditorConfig   `mapstructure:"editor" yaml:"editor" toml:"editor"`
	Errors   ErrorsConfig   `mapstructure:"errors" yaml:"errors" toml:"errors"`
	Menu     MenuConfig     `mapstructure:"menu" yaml:"menu" toml:"menu"`
	Dispatch DispatchConfig `mapstructure:"dispatch" yaml:"dispatch" toml:"dispatch"`
	Settings SettingsConfig `mapstructure:"settings" yaml:"settings" toml:"settings"`
	Picker   PickerConfig   `mapstructure:"picker" yaml:"picker" toml:"picker"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging" toml:"logging"`
}

// StorageConfig locates the two storage areas.
type StorageConfig struct {
	// DatabasePath is the SQLite file of the local area. Empty uses the XDG data dir.
	DatabasePath string `mapstructure:"database_path" yaml:"database_path" toml:"database_path"`
	// SyncDir holds the sync document. Point it at a synchronized folder.
	SyncDir string `mapstructure:"sync_dir" yaml:"sync_dir" toml:"sync_dir"`
	// PollIntervalMs re-reads the database periodically in addition to fsnotify. 0 disables polling.
	PollIntervalMs int `mapstructure:"poll_interval_ms" yaml:"poll_interval_ms" toml:"poll_interval_ms"`
}

// DaemonConfig configures the background process.
type DaemonConfig struct {
	// SocketPath is the IPC unix socket. Empty uses $XDG_RUNTIME_DIR/selsearch/daemon.sock.
	SocketPath string `mapstructure:"socket_path" yaml:"socket_path" toml:"socket_path"`
	// ClickTimeoutMs bounds how long a click waits for the initial menu load.
	ClickTimeoutMs int `mapstructure:"click_timeout_ms" yaml:"click_timeout_ms" toml:"click_timeout_ms"`
}

// EditorConfig configures the settings editor.
type EditorConfig struct {
	// DebounceMs is the quiet period before text edits are saved.
	DebounceMs int `mapstructure:"debounce_ms" yaml:"debounce_ms" toml:"debounce_ms"`
}

// ErrorsConfig controls error log throttling.
type ErrorsConfig struct {
	// RepeatThreshold is how many times an identical error must occur before it is logged.
	RepeatThreshold int `mapstructure:"repeat_threshold" yaml:"repeat_threshold" toml:"repeat_threshold"`
}

// MenuConfig holds the titles of the fixed menu entries.
type MenuConfig struct {
	// RootTitle may contain %s, replaced by the selection.
	RootTitle    string `mapstructure:"root_title" yaml:"root_title" toml:"root_title"`
	OptionsTitle string `mapstructure:"options_title" yaml:"options_title" toml:"options_title"`
}

// DispatchConfig controls how search tabs are opened.
type DispatchConfig struct {
	// BrowserCommand opens a URL; "{url}" is replaced, or the URL is appended.
	// Empty uses the system default browser.
	BrowserCommand []string `mapstructure:"browser_command" yaml:"browser_command" toml:"browser_command"`
}

// SettingsConfig controls how the daemon brings up the settings editor.
type SettingsConfig struct {
	// LauncherCommand starts the editor. Empty runs "selsearch settings" in $TERMINAL.
	LauncherCommand []string `mapstructure:"launcher_command" yaml:"launcher_command" toml:"launcher_command"`
}

// PickerConfig configures "selsearch pick".
type PickerConfig struct {
	// Launcher is auto, rofi, fuzzel, wofi or dmenu.
	Launcher string `mapstructure:"launcher" yaml:"launcher" toml:"launcher"`
	// Command overrides the launcher invocation entirely.
	Command []string `mapstructure:"command" yaml:"command" toml:"command"`
	// GroupSeparator joins a group name and an item name in the flat list.
	GroupSeparator string `mapstructure:"group_separator" yaml:"group_separator" toml:"group_separator"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level"`
	Format string `mapstructure:"format" yaml:"format" toml:"format"`

	// File output configuration
	EnableFileLog bool   `mapstructure:"enable_file_log" yaml:"enable_file_log" toml:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" yaml:"max_size_mb" toml:"max_size_mb"`
	MaxBackups    int    `mapstructure:"max_backups" yaml:"max_backups" toml:"max_backups"`
	MaxAge        int    `mapstructure:"max_age" yaml:"max_age" toml:"max_age"`
	Compress      bool   `mapstructure:"compress" yaml:"compress" toml:"compress"`
}
