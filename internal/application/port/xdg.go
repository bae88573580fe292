package port

// XDGPaths provides XDG Base Directory paths.
type XDGPaths interface {
	ConfigDir() (string, error)
	DataDir() (string, error)
	StateDir() (string, error)
	RuntimeDir() (string, error)
	// ApplicationsDir is the shared desktop entry directory, not an app-specific one.
	ApplicationsDir() (string, error)
}
