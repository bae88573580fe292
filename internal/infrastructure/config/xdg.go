package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants
const (
	dirPerm  = 0755 // Standard directory permissions (rwxr-xr-x)
	filePerm = 0644 // Standard file permissions (rw-r--r--)
)

const (
	appName      = "selsearch"
	databaseName = "selsearch.sqlite"
	socketName   = "daemon.sock"
	lockName     = "daemon.lock"
)

// XDGDirs holds the XDG Base Directory paths for the application.
type XDGDirs struct {
	ConfigHome  string
	DataHome    string
	StateHome   string
	RuntimeHome string
	// Applications is the shared desktop entry directory, not a selsearch one.
	Applications string
}

// GetXDGDirs returns the XDG Base Directory paths for selsearch:
// - $XDG_CONFIG_HOME/selsearch (default: ~/.config/selsearch)
// - $XDG_DATA_HOME/selsearch (default: ~/.local/share/selsearch)
// - $XDG_STATE_HOME/selsearch (default: ~/.local/state/selsearch)
// - $XDG_RUNTIME_DIR/selsearch (default: the system temp dir, per user)
func GetXDGDirs() (*XDGDirs, error) {
	// Development mode: use .dev directory in current working directory
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		devDir := filepath.Join(cwd, ".dev", appName)
		return &XDGDirs{
			ConfigHome:   devDir,
			DataHome:     devDir,
			StateHome:    devDir,
			RuntimeHome:  devDir,
			Applications: filepath.Join(devDir, "applications"),
		}, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(homeDir, ".config")
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = filepath.Join(homeDir, ".local", "share")
	}

	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		stateHome = filepath.Join(homeDir, ".local", "state")
	}

	runtimeHome := os.Getenv("XDG_RUNTIME_DIR")
	if runtimeHome == "" {
		runtimeHome = filepath.Join(os.TempDir(), fmt.Sprintf("%s-%d", appName, os.Getuid()))
	} else {
		runtimeHome = filepath.Join(runtimeHome, appName)
	}

	return &XDGDirs{
		ConfigHome:   filepath.Join(configHome, appName),
		DataHome:     filepath.Join(dataHome, appName),
		StateHome:    filepath.Join(stateHome, appName),
		RuntimeHome:  runtimeHome,
		Applications: filepath.Join(dataHome, "applications"),
	}, nil
}

// GetConfigDir returns the XDG config directory for selsearch.
func GetConfigDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.ConfigHome, nil
}

// GetDataDir returns the XDG data directory for selsearch.
func GetDataDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.DataHome, nil
}

// GetStateDir returns the XDG state directory for selsearch.
func GetStateDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.StateHome, nil
}

// GetRuntimeDir returns the per-session runtime directory for selsearch.
func GetRuntimeDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.RuntimeHome, nil
}

// GetLogDir returns the log directory. Logs are stored in XDG_STATE_HOME.
func GetLogDir() (string, error) {
	stateDir, err := GetStateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(stateDir, "logs"), nil
}

// GetConfigFile returns the path to the main configuration file.
func GetConfigFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// GetDatabaseFile returns the path of the local storage database.
func GetDatabaseFile() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, databaseName), nil
}

// GetSyncDir returns the default directory of the sync document.
func GetSyncDir() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "sync"), nil
}

// GetSocketFile returns the default daemon socket path.
func GetSocketFile() (string, error) {
	runtimeDir, err := GetRuntimeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(runtimeDir, socketName), nil
}

// GetLockFile returns the path of the single-daemon lock.
func GetLockFile() (string, error) {
	runtimeDir, err := GetRuntimeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(runtimeDir, lockName), nil
}

// EnsureDirectories creates the XDG directories if they don't exist.
func EnsureDirectories() error {
	dirs, err := GetXDGDirs()
	if err != nil {
		return err
	}

	for _, dir := range []string{dirs.ConfigHome, dirs.DataHome, dirs.StateHome} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return err
		}
	}
	// The runtime dir may hold a socket; keep it private.
	return os.MkdirAll(dirs.RuntimeHome, 0o700)
}
