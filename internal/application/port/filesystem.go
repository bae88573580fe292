package port

import "context"

// FileSystem is the slice of file operations the purge flow needs.
type FileSystem interface {
	Exists(ctx context.Context, path string) (bool, error)
	GetSize(ctx context.Context, path string) (int64, error)
	RemoveAll(ctx context.Context, path string) error
}

// DesktopIntegration manages the launcher entries installed for selsearch.
type DesktopIntegration interface {
	// InstalledFiles returns the paths of the desktop files currently present.
	InstalledFiles(ctx context.Context) ([]string, error)
	Remove(ctx context.Context) error
}
