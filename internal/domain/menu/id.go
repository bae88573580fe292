// Package menu holds the pure operations on the menu tree: identifier
// generation, repair, lookups, editing, import/export and projection planning.
package menu

import (
	"crypto/rand"
	"fmt"
	mathrand "math/rand/v2"

	"github.com/google/uuid"
)

// IDGenerator returns a fresh identifier on each call.
type IDGenerator func() string

// NewID returns a random RFC 4122 version 4 identifier in 8-4-4-4-12 form.
func NewID() string {
	id, err := uuid.NewRandom()
	if err == nil {
		return id.String()
	}
	return fallbackID()
}

// fallbackID builds the same shape byte by byte when the uuid source fails.
func fallbackID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		for i := range b {
			b[i] = byte(mathrand.IntN(256))
		}
	}
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:16])
}
