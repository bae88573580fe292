package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portmocks "github.com/bnema/selsearch/internal/application/port/mocks"
	"github.com/bnema/selsearch/internal/application/usecase"
	"github.com/bnema/selsearch/internal/domain/entity"
	"github.com/bnema/selsearch/internal/domain/menu"
	repomocks "github.com/bnema/selsearch/internal/domain/repository/mocks"
)

type coordinatorFixture struct {
	menus       *repomocks.MockMenuRepository
	versions    *repomocks.MockVersionRepository
	tabs        *portmocks.MockTabOpener
	settings    *portmocks.MockSettingsOpener
	surface     *recordingSurface
	coordinator *usecase.BackgroundCoordinator
}

func newCoordinatorFixture(t *testing.T, version string) *coordinatorFixture {
	t.Helper()
	f := &coordinatorFixture{
		menus:    repomocks.NewMockMenuRepository(t),
		versions: repomocks.NewMockVersionRepository(t),
		tabs:     portmocks.NewMockTabOpener(t),
		settings: portmocks.NewMockSettingsOpener(t),
		surface:  &recordingSurface{},
	}
	f.coordinator = usecase.NewBackgroundCoordinator(
		f.menus,
		f.versions,
		usecase.NewProjectMenuUseCase(f.surface, nil),
		usecase.NewDispatchSearchUseCase(f.tabs, f.settings, nil),
		f.settings,
		nil,
		usecase.CoordinatorConfig{Version: version, NewID: sequentialIDs("id-")},
	)
	return f
}

// startReady runs a plain startup with tree stored and the same version.
func (f *coordinatorFixture) startReady(t *testing.T, tree entity.Tree) {
	t.Helper()
	f.versions.EXPECT().LastVersion(mock.Anything).Return("1.0.0", nil).Once()
	f.menus.EXPECT().Load(mock.Anything).Return(tree, true, nil).Once()

	lifecycle, err := f.coordinator.Start(testContext())
	require.NoError(t, err)
	require.Equal(t, usecase.LifecycleStartup, lifecycle)
}

func TestDetectLifecycle(t *testing.T) {
	tests := []struct {
		name    string
		last    string
		current string
		want    usecase.Lifecycle
	}{
		{name: "first run", last: "", current: "1.0.0", want: usecase.LifecycleInstall},
		{name: "same version", last: "1.0.0", current: "1.0.0", want: usecase.LifecycleStartup},
		{name: "same version with prefix", last: "v1.2.0", current: "1.2.0", want: usecase.LifecycleStartup},
		{name: "upgrade", last: "1.0.0", current: "1.1.0", want: usecase.LifecycleUpdate},
		{name: "downgrade", last: "2.0.0", current: "1.1.0", want: usecase.LifecycleUpdate},
		{name: "unparsable equal", last: "dev", current: "dev", want: usecase.LifecycleStartup},
		{name: "unparsable different", last: "dev", current: "1.0.0", want: usecase.LifecycleUpdate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, usecase.DetectLifecycle(tt.last, tt.current))
		})
	}
}

func TestBackgroundCoordinator_Start_Install(t *testing.T) {
	ctx := testContext()
	f := newCoordinatorFixture(t, "1.0.0")

	var saved entity.Tree
	f.versions.EXPECT().LastVersion(mock.Anything).Return("", nil).Once()
	f.menus.EXPECT().Clear(mock.Anything).Return(nil).Once()
	f.menus.EXPECT().Save(mock.Anything, mock.Anything).
		Run(func(_ context.Context, tree entity.Tree) { saved = tree }).
		Return(nil).Once()
	f.settings.EXPECT().OpenSettings(mock.Anything).Return(nil).Once()
	f.versions.EXPECT().SetLastVersion(mock.Anything, "1.0.0").Return(nil).Once()

	lifecycle, err := f.coordinator.Start(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.LifecycleInstall, lifecycle)
	assert.Equal(t, usecase.StateReady, f.coordinator.State())

	require.NotEmpty(t, saved)
	assert.Equal(t, "Simkl in TV Shows", saved[0].NodeName())
	require.NoError(t, menu.Validate(saved))

	ids := f.surface.ids()
	assert.Equal(t, menu.RootMenuID, ids[0])
	assert.Equal(t, saved[0].NodeID(), ids[1])
	assert.Equal(t, menu.OptionsMenuID, ids[len(ids)-1])

	select {
	case <-f.coordinator.Ready():
	default:
		t.Fatal("coordinator not ready after start")
	}
}

func TestBackgroundCoordinator_Start_RepairsAndPersists(t *testing.T) {
	ctx := testContext()
	f := newCoordinatorFixture(t, "1.0.0")

	stored := entity.Tree{
		entity.NewSearch("", "A", "https://a.example/?q=%s"),
		entity.NewSearch("dup", "B", "https://b.example/?q=%s"),
		entity.NewSearch("dup", "C", "https://c.example/?q=%s"),
	}

	f.versions.EXPECT().LastVersion(mock.Anything).Return("1.0.0", nil).Once()
	f.menus.EXPECT().Load(mock.Anything).Return(stored, true, nil).Once()
	f.menus.EXPECT().Save(mock.Anything, mock.Anything).
		Run(func(_ context.Context, tree entity.Tree) {
			assert.NoError(t, menu.Validate(tree))
		}).
		Return(nil).Once()

	lifecycle, err := f.coordinator.Start(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.LifecycleStartup, lifecycle)
	assert.Equal(t, []string{"id-1", "dup", "id-2"}, f.coordinator.Tree().IDs())
	assert.Equal(t, 1, f.surface.removeCount())
}

func TestBackgroundCoordinator_Start_UpdateNeverReseeds(t *testing.T) {
	ctx := testContext()
	f := newCoordinatorFixture(t, "1.1.0")

	f.versions.EXPECT().LastVersion(mock.Anything).Return("1.0.0", nil).Once()
	f.menus.EXPECT().Load(mock.Anything).Return(sampleTree(), true, nil).Once()
	f.versions.EXPECT().SetLastVersion(mock.Anything, "1.1.0").Return(nil).Once()

	lifecycle, err := f.coordinator.Start(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.LifecycleUpdate, lifecycle)
	assert.Equal(t, sampleTree().IDs(), f.coordinator.Tree().IDs())
}

func TestBackgroundCoordinator_Start_LoadFailureStillReleasesClicks(t *testing.T) {
	ctx := testContext()
	f := newCoordinatorFixture(t, "1.0.0")

	f.versions.EXPECT().LastVersion(mock.Anything).Return("1.0.0", nil).Once()
	f.menus.EXPECT().Load(mock.Anything).Return(nil, false, errors.New("disk I/O error")).Once()

	_, err := f.coordinator.Start(ctx)
	require.Error(t, err)

	_, err = f.coordinator.HandleClick(ctx, entity.MenuClick{MenuItemID: "a"})
	assert.ErrorIs(t, err, menu.ErrNodeNotFound)
}

func TestBackgroundCoordinator_HandleClick_WaitsForInitialLoad(t *testing.T) {
	f := newCoordinatorFixture(t, "1.0.0")

	ctx, cancel := context.WithTimeout(testContext(), 20*time.Millisecond)
	defer cancel()

	_, err := f.coordinator.HandleClick(ctx, entity.MenuClick{MenuItemID: "a"})
	assert.ErrorIs(t, err, usecase.ErrNotReady)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestBackgroundCoordinator_HandleClick_DispatchesAfterReady(t *testing.T) {
	f := newCoordinatorFixture(t, "1.0.0")
	f.startReady(t, sampleTree())

	f.tabs.EXPECT().OpenTab(mock.Anything, mock.MatchedBy(func(req entity.NavigationRequest) bool {
		return req.URL == "https://d.example/?q=x%26y"
	})).Return(nil).Once()

	result, err := f.coordinator.HandleClick(testContext(), entity.MenuClick{MenuItemID: "d", SelectionText: "x&y"})
	require.NoError(t, err)
	assert.Len(t, result.Requests, 1)
}

func TestBackgroundCoordinator_HandleMessage(t *testing.T) {
	ctx := testContext()
	f := newCoordinatorFixture(t, "1.0.0")
	f.startReady(t, sampleTree())

	f.menus.EXPECT().Load(mock.Anything).Return(sampleTree(), true, nil).Once()
	resp := f.coordinator.HandleMessage(ctx, entity.Message{Action: entity.ActionUpdateContextMenus})
	assert.Equal(t, entity.MessageResponse{Status: entity.StatusMenusUpdated}, resp)

	f.menus.EXPECT().Load(mock.Anything).Return(nil, false, errors.New("locked")).Once()
	resp = f.coordinator.HandleMessage(ctx, entity.Message{Action: entity.ActionUpdateContextMenus})
	assert.Equal(t, entity.StatusMenusUpdateFailed, resp.Status)
	assert.Contains(t, resp.Error, "locked")

	resp = f.coordinator.HandleMessage(ctx, entity.Message{Action: "bogus"})
	assert.Equal(t, entity.StatusUnknownAction, resp.Status)
}

func TestBackgroundCoordinator_HandleStorageChange(t *testing.T) {
	ctx := testContext()

	t.Run("adopts a local change", func(t *testing.T) {
		f := newCoordinatorFixture(t, "1.0.0")
		f.startReady(t, sampleTree())

		f.coordinator.HandleStorageChange(ctx, entity.StorageChange{
			Key:      entity.KeyMenuItems,
			NewValue: []byte(`[{"id":"z","name":"Z","type":"search","url":"https://z.example/?q=%s"}]`),
			Area:     entity.StorageLocal,
		})

		assert.Equal(t, []string{"z"}, f.coordinator.Tree().IDs())
		assert.Equal(t, []string{menu.RootMenuID, "z", menu.OptionsSeparatorID, menu.OptionsMenuID}, f.surface.ids())
	})

	t.Run("repairs and persists", func(t *testing.T) {
		f := newCoordinatorFixture(t, "1.0.0")
		f.startReady(t, sampleTree())

		f.menus.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()
		f.coordinator.HandleStorageChange(ctx, entity.StorageChange{
			Key:      entity.KeyMenuItems,
			NewValue: []byte(`[{"name":"No id"}]`),
			Area:     entity.StorageLocal,
		})

		assert.Equal(t, []string{"id-1"}, f.coordinator.Tree().IDs())
	})

	t.Run("sync change is written to local storage", func(t *testing.T) {
		f := newCoordinatorFixture(t, "1.0.0")
		f.startReady(t, sampleTree())

		f.menus.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()
		f.coordinator.HandleStorageChange(ctx, entity.StorageChange{
			Key:      entity.KeyMenuItems,
			NewValue: []byte(`[{"id":"s","name":"S","type":"separator"}]`),
			Area:     entity.StorageSync,
		})

		assert.Equal(t, []string{"s"}, f.coordinator.Tree().IDs())
	})

	t.Run("sync removal keeps the local menu", func(t *testing.T) {
		f := newCoordinatorFixture(t, "1.0.0")
		f.startReady(t, sampleTree())

		f.coordinator.HandleStorageChange(ctx, entity.StorageChange{
			Key:      entity.KeyMenuItems,
			OldValue: []byte(`[]`),
			Area:     entity.StorageSync,
		})

		f.menus.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		assert.Equal(t, sampleTree().IDs(), f.coordinator.Tree().IDs())
		assert.Equal(t, 2, f.surface.removeCount())
		assert.Contains(t, f.surface.ids(), "d")
	})

	t.Run("removal adopts an empty tree", func(t *testing.T) {
		f := newCoordinatorFixture(t, "1.0.0")
		f.startReady(t, sampleTree())

		f.coordinator.HandleStorageChange(ctx, entity.StorageChange{
			Key:      entity.KeyMenuItems,
			OldValue: []byte(`[]`),
			Area:     entity.StorageLocal,
		})

		f.menus.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		assert.Empty(t, f.coordinator.Tree())
		assert.Equal(t, []string{menu.RootMenuID, menu.OptionsSeparatorID, menu.OptionsMenuID}, f.surface.ids())
	})

	t.Run("identical value is ignored", func(t *testing.T) {
		f := newCoordinatorFixture(t, "1.0.0")
		f.startReady(t, sampleTree())

		value, err := menu.Marshal(sampleTree())
		require.NoError(t, err)

		f.coordinator.HandleStorageChange(ctx, entity.StorageChange{Key: entity.KeyMenuItems, NewValue: value, Area: entity.StorageLocal})
		assert.Equal(t, 1, f.surface.removeCount())
	})

	t.Run("other keys and invalid values are ignored", func(t *testing.T) {
		f := newCoordinatorFixture(t, "1.0.0")
		f.startReady(t, sampleTree())

		f.coordinator.HandleStorageChange(ctx, entity.StorageChange{Key: entity.KeyLastVersion, NewValue: []byte(`2.0.0`)})
		f.coordinator.HandleStorageChange(ctx, entity.StorageChange{Key: entity.KeyMenuItems, NewValue: []byte(`{"oops":1}`)})

		assert.Equal(t, sampleTree().IDs(), f.coordinator.Tree().IDs())
		assert.Equal(t, 1, f.surface.removeCount())
	})
}

func TestBackgroundCoordinator_Reload_SurvivesCallerCancellation(t *testing.T) {
	f := newCoordinatorFixture(t, "1.0.0")
	f.startReady(t, sampleTree())

	ctx, cancel := context.WithCancel(testContext())
	cancel()

	f.menus.EXPECT().Load(mock.Anything).Return(sampleTree(), true, nil).Once()
	require.NoError(t, f.coordinator.Reload(ctx))

	assert.Equal(t, []string{
		menu.RootMenuID, "a", "sep1", "g", "b", "sep2", "c", "empty", "all", "d",
		menu.OptionsSeparatorID, menu.OptionsMenuID,
	}, f.surface.ids())
}

func TestBackgroundCoordinator_SetLabels(t *testing.T) {
	ctx := testContext()
	f := newCoordinatorFixture(t, "1.0.0")
	f.startReady(t, sampleTree())

	f.coordinator.SetLabels(ctx, menu.Labels{RootTitle: "Look up '%s'", OptionsTitle: "Settings"})

	entries, err := f.surface.Entries(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Look up '%s'", entries[0].Title)
	assert.Equal(t, "Settings", entries[len(entries)-1].Title)
	assert.Equal(t, 2, f.surface.removeCount())
}
