package logging

import (
	"sync"

	"github.com/rs/zerolog"
)

// DefaultRepeatThreshold is the number of occurrences after which a
// repeated error message starts being logged.
const DefaultRepeatThreshold = 3

// ErrorThrottle counts identical error messages and only lets them through
// once they have recurred threshold times. Single transient failures stay
// out of the log while persistent ones surface.
type ErrorThrottle struct {
	mu        sync.Mutex
	threshold int
	counts    map[string]int
}

// NewErrorThrottle creates a throttle. A threshold below 1 logs every error.
func NewErrorThrottle(threshold int) *ErrorThrottle {
	if threshold < 1 {
		threshold = 1
	}
	return &ErrorThrottle{threshold: threshold, counts: make(map[string]int)}
}

// Observe records one occurrence of key and reports whether it should be logged.
func (t *ErrorThrottle) Observe(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.counts[key]++
	return t.counts[key] >= t.threshold
}

// Count returns how many times key has been observed.
func (t *ErrorThrottle) Count(key string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.counts[key]
}

// Reset forgets every recorded occurrence.
func (t *ErrorThrottle) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	clear(t.counts)
}

// Error logs err with msg on logger once err's message crossed the threshold.
func (t *ErrorThrottle) Error(logger *zerolog.Logger, err error, msg string) {
	if err == nil || !t.Observe(err.Error()) {
		return
	}
	logger.Error().Err(err).Int("occurrences", t.Count(err.Error())).Msg(msg)
}
