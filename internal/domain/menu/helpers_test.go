package menu

import (
	"fmt"

	"github.com/bnema/selsearch/internal/domain/entity"
)

func sequentialIDs(prefix string) IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s%d", prefix, n)
	}
}

func sampleTree() entity.Tree {
	return entity.Tree{
		entity.NewSearch("a", "A", "https://a.example/?q=%s"),
		entity.NewSeparator("sep1"),
		&entity.Group{ID: "g", Name: "G", Items: []entity.Leaf{
			entity.NewSearch("b", "B", "https://b.example/?q=%s"),
			entity.NewSeparator("sep2"),
			entity.NewSearch("c", "C", "https://c.example/?q=%s"),
		}},
		entity.NewSearch("d", "D", "https://d.example/?q=%s"),
	}
}
