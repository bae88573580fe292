package config

// Default configuration constants
const (
	defaultDebounceMs      = 500
	defaultRepeatThreshold = 3
	defaultClickTimeoutMs  = 5000

	defaultRootTitle    = "Search '%s' on"
	defaultOptionsTitle = "Options"

	defaultPickerLauncher = "auto"
	defaultGroupSeparator = " › "

	defaultMaxLogSizeMB  = 10
	defaultMaxLogBackups = 3
	defaultMaxLogAgeDays = 7
	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
)

// DefaultConfig returns the default configuration. Paths are left empty and
// resolved against the XDG directories on load.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{},
		Daemon: DaemonConfig{
			ClickTimeoutMs: defaultClickTimeoutMs,
		},
		Editor: EditorConfig{
			DebounceMs: defaultDebounceMs,
		},
		Errors: ErrorsConfig{
			RepeatThreshold: defaultRepeatThreshold,
		},
		Menu: MenuConfig{
			RootTitle:    defaultRootTitle,
			OptionsTitle: defaultOptionsTitle,
		},
		Dispatch: DispatchConfig{
			BrowserCommand: []string{},
		},
		Settings: SettingsConfig{
			LauncherCommand: []string{},
		},
		Picker: PickerConfig{
			Launcher:       defaultPickerLauncher,
			Command:        []string{},
			GroupSeparator: defaultGroupSeparator,
		},
		Logging: LoggingConfig{
			Level:         defaultLogLevel,
			Format:        defaultLogFormat,
			EnableFileLog: false,
			MaxSizeMB:     defaultMaxLogSizeMB,
			MaxBackups:    defaultMaxLogBackups,
			MaxAge:        defaultMaxLogAgeDays,
			Compress:      true,
		},
	}
}
