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

func TestProjectMenuUseCase_Execute_CreatesEntriesInOrder(t *testing.T) {
	ctx := testContext()
	surface := portmocks.NewMockMenuSurface(t)

	tree := entity.Tree{
		entity.NewSearch("a", "A", "https://a.example/?q=%s"),
		&entity.Group{ID: "g", Name: "G", Items: []entity.Leaf{entity.NewSeparator("s")}},
	}

	var created []string
	surface.EXPECT().RemoveAll(mock.Anything).Return(nil).Once()
	surface.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, entry entity.MenuEntry) { created = append(created, entry.ID) }).
		Return(nil)

	uc := usecase.NewProjectMenuUseCase(surface, nil)
	report := uc.Execute(ctx, tree, menu.DefaultLabels())

	assert.True(t, report.OK())
	assert.NoError(t, report.Err())
	assert.Equal(t, 6, report.Planned)
	assert.Equal(t, 6, report.Created)
	assert.Equal(t, []string{menu.RootMenuID, "a", "g", "s", menu.OptionsSeparatorID, menu.OptionsMenuID}, created)
}

func TestProjectMenuUseCase_Execute_ContinuesAfterFailures(t *testing.T) {
	ctx := testContext()
	surface := portmocks.NewMockMenuSurface(t)

	tree := entity.Tree{
		entity.NewSearch("a", "A", "https://a.example/?q=%s"),
		entity.NewSearch("b", "B", "https://b.example/?q=%s"),
	}

	removeErr := errors.New("remove failed")
	createErr := errors.New("duplicate id")
	surface.EXPECT().RemoveAll(mock.Anything).Return(removeErr)
	surface.EXPECT().Create(mock.Anything, mock.MatchedBy(func(e entity.MenuEntry) bool { return e.ID == "a" })).Return(createErr)
	surface.EXPECT().Create(mock.Anything, mock.MatchedBy(func(e entity.MenuEntry) bool { return e.ID != "a" })).Return(nil)

	uc := usecase.NewProjectMenuUseCase(surface, nil)
	report := uc.Execute(ctx, tree, menu.Labels{})

	assert.False(t, report.OK())
	assert.Equal(t, 5, report.Planned)
	assert.Equal(t, 4, report.Created)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "a", report.Failures[0].EntryID)
	assert.ErrorIs(t, report.Err(), createErr)
	assert.ErrorIs(t, report.Err(), removeErr)
}

func TestProjectMenuUseCase_Execute_Idempotent(t *testing.T) {
	ctx := testContext()
	surface := &recordingSurface{}
	uc := usecase.NewProjectMenuUseCase(surface, nil)

	uc.Execute(ctx, sampleTree(), menu.DefaultLabels())
	first, _ := surface.Entries(ctx)
	uc.Execute(ctx, sampleTree(), menu.DefaultLabels())
	second, _ := surface.Entries(ctx)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, surface.removeCount())
}
