package logging

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Milestone is a timing checkpoint during daemon startup.
type Milestone struct {
	Name    string
	Elapsed time.Duration
	Delta   time.Duration
}

// StartupTrace records startup milestones and logs them at debug level.
type StartupTrace struct {
	mu         sync.Mutex
	t0         time.Time
	logger     *zerolog.Logger
	milestones []Milestone
	finished   bool
}

// NewStartupTrace starts a trace at the current time.
func NewStartupTrace(logger *zerolog.Logger) *StartupTrace {
	return &StartupTrace{t0: time.Now(), logger: logger}
}

// Mark records a milestone.
func (st *StartupTrace) Mark(name string) {
	if st == nil {
		return
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.finished {
		return
	}

	elapsed := time.Since(st.t0)
	m := Milestone{Name: name, Elapsed: elapsed}
	if n := len(st.milestones); n > 0 {
		m.Delta = elapsed - st.milestones[n-1].Elapsed
	}
	st.milestones = append(st.milestones, m)

	if st.logger != nil {
		st.logger.Debug().
			Str("milestone", m.Name).
			Int64("t_ms", m.Elapsed.Milliseconds()).
			Int64("delta_ms", m.Delta.Milliseconds()).
			Msg("startup_trace")
	}
}

// Milestones returns a copy of the recorded milestones.
func (st *StartupTrace) Milestones() []Milestone {
	st.mu.Lock()
	defer st.mu.Unlock()
	return append([]Milestone(nil), st.milestones...)
}

// Finish logs a one-line summary. Later marks are ignored.
func (st *StartupTrace) Finish() {
	if st == nil {
		return
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.finished {
		return
	}
	st.finished = true

	parts := make([]string, 0, len(st.milestones))
	for _, m := range st.milestones {
		parts = append(parts, fmt.Sprintf("%s:%d", m.Name, m.Elapsed.Milliseconds()))
	}
	if st.logger != nil {
		st.logger.Info().
			Int64("total_ms", time.Since(st.t0).Milliseconds()).
			Str("milestones", strings.Join(parts, ",")).
			Msg("daemon ready")
	}
}
