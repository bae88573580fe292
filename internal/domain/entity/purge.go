package entity

// PurgeTargetType identifies what kind of purgeable item this is.
type PurgeTargetType int

const (
	PurgeTargetConfig PurgeTargetType = iota
	PurgeTargetData
	PurgeTargetState
	PurgeTargetSync
	PurgeTargetDesktopFile
)

// String returns the short name used in logs and CLI output.
func (t PurgeTargetType) String() string {
	switch t {
	case PurgeTargetConfig:
		return "config"
	case PurgeTargetData:
		return "data"
	case PurgeTargetState:
		return "state"
	case PurgeTargetSync:
		return "sync"
	case PurgeTargetDesktopFile:
		return "desktop"
	default:
		return "unknown"
	}
}

// PurgeTarget represents something that can be purged.
type PurgeTarget struct {
	Type        PurgeTargetType
	Path        string
	Description string
	Size        int64
	Exists      bool
}

// PurgeResult represents the outcome of purging a single target.
type PurgeResult struct {
	Target  PurgeTarget
	Success bool
	Error   error
}
