package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

// PickerLaunchers lists the accepted picker.launcher values.
var PickerLaunchers = []string{"auto", "rofi", "fuzzel", "wofi", "dmenu"}

// validateConfig performs validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateStorage(config)...)
	validationErrors = append(validationErrors, validateDaemon(config)...)
	validationErrors = append(validationErrors, validateEditor(config)...)
	validationErrors = append(validationErrors, validateMenu(config)...)
	validationErrors = append(validationErrors, validatePicker(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateStorage(config *Config) []string {
	if config.Storage.PollIntervalMs < 0 {
		return []string{"storage.poll_interval_ms must be non-negative"}
	}
	return nil
}

func validateDaemon(config *Config) []string {
	if config.Daemon.ClickTimeoutMs < 0 {
		return []string{"daemon.click_timeout_ms must be non-negative"}
	}
	return nil
}

func validateEditor(config *Config) []string {
	var validationErrors []string
	if config.Editor.DebounceMs < 0 {
		validationErrors = append(validationErrors, "editor.debounce_ms must be non-negative")
	}
	if config.Errors.RepeatThreshold < 1 {
		validationErrors = append(validationErrors, "errors.repeat_threshold must be at least 1")
	}
	return validationErrors
}

func validateMenu(config *Config) []string {
	var validationErrors []string
	if strings.Count(config.Menu.RootTitle, "%s") > 1 {
		validationErrors = append(validationErrors, "menu.root_title may contain %s at most once")
	}
	if strings.TrimSpace(config.Menu.OptionsTitle) == "" {
		validationErrors = append(validationErrors, "menu.options_title cannot be empty")
	}
	return validationErrors
}

func validatePicker(config *Config) []string {
	if !slices.Contains(PickerLaunchers, config.Picker.Launcher) {
		return []string{fmt.Sprintf("picker.launcher must be one of %s", strings.Join(PickerLaunchers, ", "))}
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if _, err := zerolog.ParseLevel(config.Logging.Level); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level %q is not a valid level", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json", "text":
	default:
		validationErrors = append(validationErrors, "logging.format must be console, json or text")
	}
	if config.Logging.MaxSizeMB < 0 || config.Logging.MaxBackups < 0 || config.Logging.MaxAge < 0 {
		validationErrors = append(validationErrors, "logging rotation limits must be non-negative")
	}
	return validationErrors
}
