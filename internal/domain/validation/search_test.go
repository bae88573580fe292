package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/selsearch/internal/domain/entity"
)

func TestSearchURLWarnings(t *testing.T) {
	tests := []struct {
		name     string
		itemName string
		template string
		want     int
	}{
		{name: "valid", itemName: "IMDB", template: "https://www.imdb.com/find?q=%s", want: 0},
		{name: "search everywhere sentinel", itemName: entity.SearchEverywhereName, template: "", want: 0},
		{name: "empty url", itemName: "X", template: "", want: 1},
		{name: "missing scheme", itemName: "X", template: "imdb.com/find?q=%s", want: 1},
		{name: "missing placeholder", itemName: "X", template: "https://imdb.com/", want: 1},
		{name: "both", itemName: "X", template: "imdb.com", want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, SearchURLWarnings(tt.itemName, tt.template), tt.want)
		})
	}
}

func TestNameWarnings(t *testing.T) {
	assert.Empty(t, NameWarnings(entity.NewSearch("a", "A", "")))
	assert.Len(t, NameWarnings(entity.NewGroup("g", " ")), 1)
	assert.Empty(t, NameWarnings(&entity.Separator{ID: "s"}))
}
