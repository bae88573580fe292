package usecase_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/selsearch/internal/domain/entity"
	"github.com/bnema/selsearch/internal/domain/menu"
	"github.com/bnema/selsearch/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func sequentialIDs(prefix string) menu.IDGenerator {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("%s%d", prefix, n)
	}
}

func sampleTree() entity.Tree {
	everywhere := &entity.Search{ID: "all", Name: entity.SearchEverywhereName, URL: "", QueryEncoding: entity.EncodeURIComponent}
	return entity.Tree{
		entity.NewSearch("a", "A", "https://a.example/?q=%s"),
		entity.NewSeparator("sep1"),
		&entity.Group{ID: "g", Name: "G", Items: []entity.Leaf{
			&entity.Search{ID: "b", Name: "B", URL: "https://b.example/?q=%s", QueryEncoding: entity.EncodePlus},
			entity.NewSeparator("sep2"),
			entity.NewSearch("c", "C", "https://c.example/%s"),
			&entity.Search{ID: "empty", Name: "Empty", URL: "", QueryEncoding: entity.EncodeURIComponent},
			everywhere,
		}},
		entity.NewSearch("d", "D", "https://d.example/?q=%s"),
	}
}

// recordingSurface is an in-memory menu surface that remembers every call.
type recordingSurface struct {
	mu       sync.Mutex
	entries  []entity.MenuEntry
	removals int
	failIDs  map[string]error
}

func (s *recordingSurface) RemoveAll(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removals++
	s.entries = nil
	return nil
}

func (s *recordingSurface) Create(ctx context.Context, entry entity.MenuEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failIDs[entry.ID]; err != nil {
		return err
	}
	s.entries = append(s.entries, entry)
	return nil
}

func (s *recordingSurface) Entries(context.Context) ([]entity.MenuEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.MenuEntry(nil), s.entries...), nil
}

func (s *recordingSurface) ids() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.entries))
	for _, e := range s.entries {
		ids = append(ids, e.ID)
	}
	return ids
}

func (s *recordingSurface) removeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removals
}
