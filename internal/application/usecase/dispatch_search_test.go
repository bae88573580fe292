package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portmocks "github.com/bnema/selsearch/internal/application/port/mocks"
	"github.com/bnema/selsearch/internal/application/usecase"
	"github.com/bnema/selsearch/internal/domain/entity"
	"github.com/bnema/selsearch/internal/domain/menu"
)

func TestDispatchSearchUseCase_HandleClick_SingleSearch(t *testing.T) {
	ctx := testContext()
	tabs := portmocks.NewMockTabOpener(t)
	settings := portmocks.NewMockSettingsOpener(t)

	tabs.EXPECT().OpenTab(mock.Anything, entity.NavigationRequest{
		URL:         "https://b.example/?q=hello+world",
		Index:       4,
		OpenerTabID: 9,
	}).Return(nil).Once()

	uc := usecase.NewDispatchSearchUseCase(tabs, settings, nil)
	result, err := uc.HandleClick(ctx, sampleTree(), entity.MenuClick{
		MenuItemID:    "b",
		SelectionText: "  hello   world ",
		Tab:           entity.TabRef{ID: 9, Index: 3},
	})

	require.NoError(t, err)
	assert.False(t, result.OpenedSettings)
	assert.Len(t, result.Requests, 1)
}

func TestDispatchSearchUseCase_HandleClick_SearchEverywhere(t *testing.T) {
	ctx := testContext()
	tabs := portmocks.NewMockTabOpener(t)
	settings := portmocks.NewMockSettingsOpener(t)

	var opened []string
	tabs.EXPECT().OpenTab(mock.Anything, mock.Anything).
		Run(func(_ context.Context, req entity.NavigationRequest) {
			assert.Equal(t, 1, req.Index)
			assert.Equal(t, 7, req.OpenerTabID)
			opened = append(opened, req.URL)
		}).
		Return(nil).Times(2)

	uc := usecase.NewDispatchSearchUseCase(tabs, settings, nil)
	result, err := uc.HandleClick(ctx, sampleTree(), entity.MenuClick{
		MenuItemID:    "all",
		SelectionText: "a b",
		Tab:           entity.TabRef{ID: 7, Index: 0},
	})

	require.NoError(t, err)
	assert.Len(t, result.Requests, 2)
	assert.Equal(t, []string{"https://b.example/?q=a+b", "https://c.example/a%20b"}, opened)
}

func TestDispatchSearchUseCase_HandleClick_OptionsOpensSettings(t *testing.T) {
	ctx := testContext()
	tabs := portmocks.NewMockTabOpener(t)
	settings := portmocks.NewMockSettingsOpener(t)

	settings.EXPECT().OpenSettings(mock.Anything).Return(nil).Once()

	uc := usecase.NewDispatchSearchUseCase(tabs, settings, nil)
	result, err := uc.HandleClick(ctx, sampleTree(), entity.MenuClick{MenuItemID: menu.OptionsMenuID})

	require.NoError(t, err)
	assert.True(t, result.OpenedSettings)
	assert.Empty(t, result.Requests)
}

func TestDispatchSearchUseCase_HandleClick_UnknownID(t *testing.T) {
	ctx := testContext()
	tabs := portmocks.NewMockTabOpener(t)
	settings := portmocks.NewMockSettingsOpener(t)

	uc := usecase.NewDispatchSearchUseCase(tabs, settings, nil)

	for _, id := range []string{"missing", "sep1", "g"} {
		_, err := uc.HandleClick(ctx, sampleTree(), entity.MenuClick{MenuItemID: id, SelectionText: "x"})
		assert.ErrorIs(t, err, menu.ErrNodeNotFound, id)
	}
}

func TestDispatchSearchUseCase_HandleClick_TopLevelSearchEverywhereOpensNothing(t *testing.T) {
	ctx := testContext()
	tabs := portmocks.NewMockTabOpener(t)
	settings := portmocks.NewMockSettingsOpener(t)

	tree := entity.Tree{
		&entity.Search{ID: "all", Name: entity.SearchEverywhereName, QueryEncoding: entity.EncodeURIComponent},
		entity.NewSearch("a", "A", "https://a.example/?q=%s"),
	}

	uc := usecase.NewDispatchSearchUseCase(tabs, settings, nil)
	result, err := uc.HandleClick(ctx, tree, entity.MenuClick{MenuItemID: "all", SelectionText: "x"})

	require.NoError(t, err)
	assert.Empty(t, result.Requests)
}

func TestDispatchSearchUseCase_HandleClick_JoinsTabErrors(t *testing.T) {
	ctx := testContext()
	tabs := portmocks.NewMockTabOpener(t)
	settings := portmocks.NewMockSettingsOpener(t)

	openErr := errors.New("browser not found")
	tabs.EXPECT().OpenTab(mock.Anything, mock.Anything).Return(openErr).Times(2)

	uc := usecase.NewDispatchSearchUseCase(tabs, settings, nil)
	_, err := uc.HandleClick(ctx, sampleTree(), entity.MenuClick{MenuItemID: "all", SelectionText: "x"})

	require.Error(t, err)
	assert.ErrorIs(t, err, openErr)
}
