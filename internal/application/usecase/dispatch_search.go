package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/bnema/selsearch/internal/application/port"
	"github.com/bnema/selsearch/internal/domain/entity"
	"github.com/bnema/selsearch/internal/domain/menu"
	"github.com/bnema/selsearch/internal/domain/url"
	"github.com/bnema/selsearch/internal/logging"
)

// DispatchResult describes what a click did.
type DispatchResult struct {
	OpenedSettings bool
	Requests       []entity.NavigationRequest
}

// DispatchSearchUseCase turns a menu click into tab navigations.
type DispatchSearchUseCase struct {
	tabs     port.TabOpener
	settings port.SettingsOpener
	throttle *logging.ErrorThrottle
}

// NewDispatchSearchUseCase creates a dispatcher. throttle may be nil.
func NewDispatchSearchUseCase(tabs port.TabOpener, settings port.SettingsOpener, throttle *logging.ErrorThrottle) *DispatchSearchUseCase {
	if throttle == nil {
		throttle = logging.NewErrorThrottle(logging.DefaultRepeatThreshold)
	}
	return &DispatchSearchUseCase{tabs: tabs, settings: settings, throttle: throttle}
}

// Plan resolves a click against tree without side effects. The options
// entry yields a result with OpenedSettings set.
func (uc *DispatchSearchUseCase) Plan(tree entity.Tree, click entity.MenuClick) (DispatchResult, error) {
	if click.MenuItemID == menu.OptionsMenuID {
		return DispatchResult{OpenedSettings: true}, nil
	}

	search, ok := menu.FindSearch(tree, click.MenuItemID)
	if !ok {
		return DispatchResult{}, fmt.Errorf("%w: %s", menu.ErrNodeNotFound, click.MenuItemID)
	}

	targets := []*entity.Search{search}
	if search.IsSearchEverywhere() {
		targets = nil
		if group, ok := menu.FindParentGroup(tree, search.ID); ok {
			targets = lo.FilterMap(group.Items, func(item entity.Leaf, _ int) (*entity.Search, bool) {
				s, ok := item.(*entity.Search)
				return s, ok && s.URL != ""
			})
		}
	}

	requests := lo.Map(targets, func(s *entity.Search, _ int) entity.NavigationRequest {
		return entity.NavigationRequest{
			URL:         url.BuildSearchURL(s.URL, url.FormatQuery(click.SelectionText, s.QueryEncoding)),
			Index:       click.Tab.Index + 1,
			OpenerTabID: click.Tab.ID,
		}
	})
	return DispatchResult{Requests: requests}, nil
}

// HandleClick performs the click: it opens the settings editor for the
// options entry, one tab for a search, or one tab per sibling search with a
// URL for a "Search everywhere" entry. An unresolved id opens nothing and
// returns an error matching menu.ErrNodeNotFound.
func (uc *DispatchSearchUseCase) HandleClick(ctx context.Context, tree entity.Tree, click entity.MenuClick) (DispatchResult, error) {
	log := logging.FromContext(ctx).With().Str("menu_item_id", click.MenuItemID).Logger()
	log.Debug().Msg("context menu clicked")

	result, err := uc.Plan(tree, click)
	if err != nil {
		log.Error().Err(err).Msg("no matching search engine")
		return result, err
	}

	if result.OpenedSettings {
		if err := uc.settings.OpenSettings(ctx); err != nil {
			uc.throttle.Error(&log, err, "failed to open settings")
			return result, fmt.Errorf("failed to open settings: %w", err)
		}
		return result, nil
	}

	var errs []error
	for _, req := range result.Requests {
		if err := uc.tabs.OpenTab(ctx, req); err != nil {
			uc.throttle.Error(&log, err, "failed to open tab")
			errs = append(errs, fmt.Errorf("failed to open %s: %w", req.URL, err))
		}
	}
	log.Info().Int("tabs", len(result.Requests)).Msg("search dispatched")
	return result, errors.Join(errs...)
}
