// Package xdg exposes the selsearch directories through port.XDGPaths.
package xdg

import (
	"github.com/bnema/selsearch/internal/application/port"
	"github.com/bnema/selsearch/internal/infrastructure/config"
)

// Adapter resolves the directories on every call so environment changes
// are picked up.
type Adapter struct {
	resolve func() (*config.XDGDirs, error)
}

// New creates an adapter backed by config.GetXDGDirs.
func New() *Adapter {
	return &Adapter{resolve: config.GetXDGDirs}
}

func (a *Adapter) dir(pick func(*config.XDGDirs) string) (string, error) {
	dirs, err := a.resolve()
	if err != nil {
		return "", err
	}
	return pick(dirs), nil
}

func (a *Adapter) ConfigDir() (string, error) {
	return a.dir(func(d *config.XDGDirs) string { return d.ConfigHome })
}

func (a *Adapter) DataDir() (string, error) {
	return a.dir(func(d *config.XDGDirs) string { return d.DataHome })
}

func (a *Adapter) StateDir() (string, error) {
	return a.dir(func(d *config.XDGDirs) string { return d.StateHome })
}

func (a *Adapter) RuntimeDir() (string, error) {
	return a.dir(func(d *config.XDGDirs) string { return d.RuntimeHome })
}

func (a *Adapter) ApplicationsDir() (string, error) {
	return a.dir(func(d *config.XDGDirs) string { return d.Applications })
}

var _ port.XDGPaths = (*Adapter)(nil)
