package tui

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncScheduler runs scheduled work on the caller's goroutine, serialized
type syncScheduler struct {
	mu sync.Mutex
}

func (s *syncScheduler) schedule(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

func TestPlaybackStopsWhenStepReturnsFalse(t *testing.T) {
	var sched syncScheduler
	var mu sync.Mutex
	steps := 0
	done := make(chan struct{})

	p := NewPlayback(time.Millisecond, sched.schedule, func() bool {
		mu.Lock()
		defer mu.Unlock()
		steps++
		if steps == 3 {
			close(done)
			return false
		}
		return true
	})
	p.Start()
	assert.True(t, p.Playing())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("playback never finished")
	}

	require.Eventually(t, func() bool { return !p.Playing() }, time.Second, time.Millisecond)
	time.Sleep(10 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 3, steps, "no step may run after the last one returned false")
}

func TestPlaybackStopDropsPendingTicks(t *testing.T) {
	var pending []func()
	var mu sync.Mutex
	schedule := func(fn func()) {
		mu.Lock()
		defer mu.Unlock()
		pending = append(pending, fn)
	}

	steps := 0
	p := NewPlayback(time.Millisecond, schedule, func() bool {
		steps++
		return true
	})
	p.Start()
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(pending) > 0
	}, time.Second, time.Millisecond)
	p.Stop()

	mu.Lock()
	queued := append([]func(){}, pending...)
	mu.Unlock()
	for _, fn := range queued {
		fn()
	}
	assert.Zero(t, steps, "ticks queued before Stop must be ignored")
	assert.False(t, p.Playing())
}

func TestPlaybackToggle(t *testing.T) {
	p := NewPlayback(time.Hour, func(func()) {}, func() bool { return true })

	assert.True(t, p.Toggle())
	assert.True(t, p.Playing())
	p.Start()
	assert.True(t, p.Playing())

	assert.False(t, p.Toggle())
	assert.False(t, p.Playing())
	p.Stop()
	assert.False(t, p.Playing())
}
