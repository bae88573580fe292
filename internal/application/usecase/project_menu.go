package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/samber/lo"

	"github.com/bnema/selsearch/internal/application/port"
	"github.com/bnema/selsearch/internal/domain/entity"
	"github.com/bnema/selsearch/internal/domain/menu"
	"github.com/bnema/selsearch/internal/logging"
)

// ProjectionFailure is one surface call that failed during a projection.
type ProjectionFailure struct {
	EntryID string
	Err     error
}

// ProjectionReport summarizes a projection. Failures never abort it: the
// surface ends up with every entry that could be created.
type ProjectionReport struct {
	Planned   int
	Created   int
	RemoveErr error
	Failures  []ProjectionFailure
}

// OK reports whether every call succeeded.
func (r ProjectionReport) OK() bool {
	return r.RemoveErr == nil && len(r.Failures) == 0
}

// Err joins every failure, or returns nil.
func (r ProjectionReport) Err() error {
	errs := lo.Map(r.Failures, func(f ProjectionFailure, _ int) error {
		return fmt.Errorf("create %s: %w", f.EntryID, f.Err)
	})
	if r.RemoveErr != nil {
		errs = append([]error{fmt.Errorf("remove all: %w", r.RemoveErr)}, errs...)
	}
	return errors.Join(errs...)
}

// ProjectMenuUseCase rebuilds the native menu from a tree.
type ProjectMenuUseCase struct {
	surface  port.MenuSurface
	throttle *logging.ErrorThrottle

	mu sync.Mutex
}

// NewProjectMenuUseCase creates a projector. throttle may be nil.
func NewProjectMenuUseCase(surface port.MenuSurface, throttle *logging.ErrorThrottle) *ProjectMenuUseCase {
	if throttle == nil {
		throttle = logging.NewErrorThrottle(logging.DefaultRepeatThreshold)
	}
	return &ProjectMenuUseCase{surface: surface, throttle: throttle}
}

// Execute removes every native entry then creates the planned entries in
// order. Projections are serialized so two of them never interleave.
func (uc *ProjectMenuUseCase) Execute(ctx context.Context, tree entity.Tree, labels menu.Labels) ProjectionReport {
	log := logging.FromContext(ctx)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	entries := menu.Plan(tree, labels)
	report := ProjectionReport{Planned: len(entries)}

	if err := uc.surface.RemoveAll(ctx); err != nil {
		report.RemoveErr = err
		uc.throttle.Error(log, err, "failed to remove context menus")
	}

	for _, entry := range entries {
		if err := uc.surface.Create(ctx, entry); err != nil {
			report.Failures = append(report.Failures, ProjectionFailure{EntryID: entry.ID, Err: err})
			uc.throttle.Error(log, err, "failed to create context menu entry")
			continue
		}
		report.Created++
	}

	log.Debug().
		Int("planned", report.Planned).
		Int("created", report.Created).
		Int("failed", len(report.Failures)).
		Msg("context menus projected")
	return report
}
