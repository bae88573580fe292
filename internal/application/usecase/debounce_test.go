package usecase_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/selsearch/internal/application/usecase"
)

func TestDebouncer_RunsOnlyLastScheduled(t *testing.T) {
	d := usecase.NewDebouncer(30 * time.Millisecond)

	var calls atomic.Int32
	var last atomic.Int32
	for i := 1; i <= 5; i++ {
		d.Schedule(func() {
			calls.Add(1)
			last.Store(int32(i))
		})
	}

	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, int32(5), last.Load())
	assert.False(t, d.Pending())
}

func TestDebouncer_Flush(t *testing.T) {
	d := usecase.NewDebouncer(time.Hour)

	assert.False(t, d.Flush())

	var calls atomic.Int32
	d.Schedule(func() { calls.Add(1) })
	assert.True(t, d.Pending())
	assert.True(t, d.Flush())
	assert.Equal(t, int32(1), calls.Load())
	assert.False(t, d.Pending())
	assert.False(t, d.Flush())
}

func TestDebouncer_Cancel(t *testing.T) {
	d := usecase.NewDebouncer(20 * time.Millisecond)

	var calls atomic.Int32
	d.Schedule(func() { calls.Add(1) })
	d.Cancel()

	time.Sleep(60 * time.Millisecond)
	assert.Zero(t, calls.Load())
}

func TestDebouncer_DefaultDelay(t *testing.T) {
	assert.Equal(t, usecase.DefaultDebounceDelay, usecase.NewDebouncer(0).Delay())
}
