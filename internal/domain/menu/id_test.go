package menu

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var uuidV4 = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func TestNewID(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := NewID()
		assert.Regexp(t, uuidV4, id)
		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestFallbackID(t *testing.T) {
	for i := 0; i < 100; i++ {
		assert.Regexp(t, uuidV4, fallbackID())
	}
}
