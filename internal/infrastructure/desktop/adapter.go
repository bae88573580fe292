// Package desktop provides desktop environment integration for Linux (XDG).
package desktop

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/bnema/selsearch/internal/application/port"
	"github.com/bnema/selsearch/internal/logging"
)

const (
	appName  = "selsearch"
	filePerm = 0644
	dirPerm  = 0755
)

// Entry is one desktop file shipped by selsearch.
type Entry struct {
	FileName string
	Name     string
	Comment  string
	Args     string
	Terminal bool
}

// Entries are the desktop files installed by Install.
var Entries = []Entry{
	{
		FileName: "selsearch-settings.desktop",
		Name:     "Selection Search Settings",
		Comment:  "Edit the search engines offered for selected text",
		Args:     "settings",
		Terminal: true,
	},
	{
		FileName: "selsearch-pick.desktop",
		Name:     "Search Selection",
		Comment:  "Search the selected text with one of your engines",
		Args:     "pick",
	},
}

// desktopFileTemplate is the freedesktop.org desktop entry format.
const desktopFileTemplate = `[Desktop Entry]
Version=1.1
Type=Application
Name=%s
Comment=%s
Exec=%s %s
Icon=system-search
Terminal=%t
Categories=Utility;
NoDisplay=false
`

// Render returns the desktop file content for e launching execPath.
func (e Entry) Render(execPath string) string {
	return fmt.Sprintf(desktopFileTemplate, e.Name, e.Comment, execPath, e.Args, e.Terminal)
}

// Status describes the installed desktop files.
type Status struct {
	ApplicationsDir string
	ExecutablePath  string
	Installed       map[string]bool
}

// Adapter installs and removes the desktop entries.
type Adapter struct {
	paths           port.XDGPaths
	execPath        func() (string, error)
	updateDesktopDB string
}

// New creates a new desktop integration adapter.
func New(paths port.XDGPaths) *Adapter {
	a := &Adapter{paths: paths, execPath: ExecutablePath}

	// Detect update-desktop-database (optional)
	if path, err := exec.LookPath("update-desktop-database"); err == nil {
		a.updateDesktopDB = path
	}

	return a
}

// ExecutablePath returns the path to the selsearch executable.
func ExecutablePath() (string, error) {
	execPath, err := os.Executable()
	if err == nil {
		if resolved, symlinkErr := filepath.EvalSymlinks(execPath); symlinkErr == nil {
			execPath = resolved
		}
		return execPath, nil
	}

	path, err := exec.LookPath(appName)
	if err != nil {
		return "", fmt.Errorf("cannot find %s executable: %w", appName, err)
	}
	return path, nil
}

// GetStatus checks which desktop files are present.
func (a *Adapter) GetStatus(ctx context.Context) (*Status, error) {
	appDir, err := a.paths.ApplicationsDir()
	if err != nil {
		return nil, err
	}

	status := &Status{ApplicationsDir: appDir, Installed: make(map[string]bool, len(Entries))}
	if execPath, err := a.execPath(); err == nil {
		status.ExecutablePath = execPath
	}
	for _, e := range Entries {
		_, statErr := os.Stat(filepath.Join(appDir, e.FileName))
		status.Installed[e.FileName] = statErr == nil
	}

	logging.FromContext(ctx).Debug().
		Str("applications_dir", appDir).
		Str("exec_path", status.ExecutablePath).
		Interface("installed", status.Installed).
		Msg("desktop integration status")
	return status, nil
}

// InstalledFiles returns the paths of the desktop entries present on disk.
func (a *Adapter) InstalledFiles(ctx context.Context) ([]string, error) {
	status, err := a.GetStatus(ctx)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range Entries {
		if status.Installed[e.FileName] {
			paths = append(paths, filepath.Join(status.ApplicationsDir, e.FileName))
		}
	}
	return paths, nil
}

// Install writes every desktop entry and returns their paths.
func (a *Adapter) Install(ctx context.Context) ([]string, error) {
	log := logging.FromContext(ctx)

	execPath, err := a.execPath()
	if err != nil {
		return nil, err
	}
	appDir, err := a.paths.ApplicationsDir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(appDir, dirPerm); err != nil {
		return nil, fmt.Errorf("create applications dir: %w", err)
	}

	paths := make([]string, 0, len(Entries))
	for _, e := range Entries {
		path := filepath.Join(appDir, e.FileName)
		if err := os.WriteFile(path, []byte(e.Render(execPath)), filePerm); err != nil {
			return paths, fmt.Errorf("write desktop file: %w", err)
		}
		log.Info().Str("path", path).Msg("desktop file installed")
		paths = append(paths, path)
	}

	a.updateDatabase(ctx, appDir)
	return paths, nil
}

// Remove deletes the desktop entries. Missing files are ignored.
func (a *Adapter) Remove(ctx context.Context) error {
	log := logging.FromContext(ctx)

	appDir, err := a.paths.ApplicationsDir()
	if err != nil {
		return err
	}

	for _, e := range Entries {
		path := filepath.Join(appDir, e.FileName)
		if err := os.Remove(path); err != nil {
			if os.IsNotExist(err) {
				log.Debug().Str("path", path).Msg("desktop file not found (already removed)")
				continue
			}
			return fmt.Errorf("remove desktop file: %w", err)
		}
		log.Info().Str("path", path).Msg("desktop file removed")
	}

	a.updateDatabase(ctx, appDir)
	return nil
}

func (a *Adapter) updateDatabase(ctx context.Context, appDir string) {
	if a.updateDesktopDB == "" {
		return
	}
	if err := exec.CommandContext(ctx, a.updateDesktopDB, appDir).Run(); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("update-desktop-database failed (non-fatal)")
	}
}

var _ port.DesktopIntegration = (*Adapter)(nil)
