package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bnema/selsearch/internal/application/port"
	"github.com/bnema/selsearch/internal/domain/entity"
	"github.com/bnema/selsearch/internal/logging"
)

// PurgeDataUseCase discovers and removes everything selsearch writes to disk.
type PurgeDataUseCase struct {
	fs      port.FileSystem
	xdg     port.XDGPaths
	desktop port.DesktopIntegration
	syncDir string
}

// NewPurgeDataUseCase creates a new PurgeDataUseCase. syncDir is the
// configured sync document directory; it is listed as its own target only
// when it lives outside the data directory.
func NewPurgeDataUseCase(fs port.FileSystem, xdg port.XDGPaths, desktop port.DesktopIntegration, syncDir string) *PurgeDataUseCase {
	return &PurgeDataUseCase{fs: fs, xdg: xdg, desktop: desktop, syncDir: syncDir}
}

// GetPurgeTargets returns all purge targets with their current state.
func (uc *PurgeDataUseCase) GetPurgeTargets(ctx context.Context) ([]entity.PurgeTarget, error) {
	configDir, err := uc.xdg.ConfigDir()
	if err != nil {
		return nil, err
	}
	dataDir, err := uc.xdg.DataDir()
	if err != nil {
		return nil, err
	}
	stateDir, err := uc.xdg.StateDir()
	if err != nil {
		return nil, err
	}

	baseTargets := []entity.PurgeTarget{
		{Type: entity.PurgeTargetConfig, Path: configDir, Description: "config"},
		{Type: entity.PurgeTargetData, Path: dataDir, Description: "menu database"},
		{Type: entity.PurgeTargetState, Path: stateDir, Description: "logs and state"},
	}
	if uc.syncDir != "" && !within(dataDir, uc.syncDir) {
		baseTargets = append(baseTargets,
			entity.PurgeTarget{Type: entity.PurgeTargetSync, Path: uc.syncDir, Description: "sync document"})
	}

	files, filesErr := uc.desktop.InstalledFiles(ctx)
	if filesErr != nil {
		// Desktop status should not block purge target discovery.
		logging.FromContext(ctx).Warn().Err(filesErr).Msg("failed to get desktop integration status")
	}
	for _, f := range files {
		baseTargets = append(baseTargets,
			entity.PurgeTarget{Type: entity.PurgeTargetDesktopFile, Path: f, Description: "desktop file"})
	}

	targets := make([]entity.PurgeTarget, 0, len(baseTargets))
	for _, t := range baseTargets {
		if t.Path == "" {
			targets = append(targets, t)
			continue
		}
		exists, err := uc.fs.Exists(ctx, t.Path)
		if err != nil {
			return nil, err
		}
		t.Exists = exists
		if exists {
			size, err := uc.fs.GetSize(ctx, t.Path)
			if err != nil {
				return nil, err
			}
			t.Size = size
		}
		targets = append(targets, t)
	}

	return targets, nil
}

// PurgeInput specifies which target types to purge.
type PurgeInput struct {
	TargetTypes []entity.PurgeTargetType
}

// PurgeOutput contains the results of the purge operation.
type PurgeOutput struct {
	Results      []entity.PurgeResult
	TotalSize    int64
	SuccessCount int
	FailureCount int
}

// Execute purges the selected target types.
// Continues on errors, collecting all results.
func (uc *PurgeDataUseCase) Execute(ctx context.Context, input PurgeInput) (*PurgeOutput, error) {
	log := logging.FromContext(ctx)

	targets, err := uc.GetPurgeTargets(ctx)
	if err != nil {
		return nil, err
	}

	selected := make(map[entity.PurgeTargetType]struct{}, len(input.TargetTypes))
	for _, tt := range input.TargetTypes {
		selected[tt] = struct{}{}
	}

	// Desktop entries are removed together so the desktop database is
	// refreshed once; every entry shares the outcome.
	var desktopErr error
	desktopDone := false

	out := &PurgeOutput{}
	for _, t := range targets {
		if _, ok := selected[t.Type]; !ok || !t.Exists {
			continue
		}

		res := entity.PurgeResult{Target: t}
		out.TotalSize += t.Size

		if t.Type == entity.PurgeTargetDesktopFile {
			if !desktopDone {
				desktopErr = uc.desktop.Remove(ctx)
				desktopDone = true
			}
			err = desktopErr
		} else {
			err = uc.fs.RemoveAll(ctx, t.Path)
		}

		if err != nil {
			res.Error = err
			out.FailureCount++
			log.Warn().Err(err).Str("path", t.Path).Stringer("type", t.Type).Msg("purge target failed")
		} else {
			res.Success = true
			out.SuccessCount++
			log.Info().Str("path", t.Path).Stringer("type", t.Type).Msg("purge target removed")
		}

		out.Results = append(out.Results, res)
	}

	if out.FailureCount > 0 {
		return out, fmt.Errorf("failed to remove %d items", out.FailureCount)
	}
	return out, nil
}

// PurgeAll purges every existing target. The external sync directory is
// only included when includeSync is set, since other machines may share it.
func (uc *PurgeDataUseCase) PurgeAll(ctx context.Context, includeSync bool) (*PurgeOutput, error) {
	types := []entity.PurgeTargetType{
		entity.PurgeTargetConfig,
		entity.PurgeTargetData,
		entity.PurgeTargetState,
		entity.PurgeTargetDesktopFile,
	}
	if includeSync {
		types = append(types, entity.PurgeTargetSync)
	}
	return uc.Execute(ctx, PurgeInput{TargetTypes: types})
}

func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
