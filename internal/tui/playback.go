package tui

import (
	"context"
	"sync"
	"time"

	"crease/internal/log"
)

// Playback drives automatic advancing. The ticker goroutine never touches
// the replay itself: every tick is handed to schedule, which in the
// application is QueueUpdateDraw, so step always runs on the UI goroutine.
type Playback struct {
	interval time.Duration
	schedule func(func())
	step     func() bool

	mu      sync.Mutex
	cancel  context.CancelFunc
	playing bool
	run     uint64
}

// NewPlayback creates a stopped playback. step returns false to stop playing.
func NewPlayback(interval time.Duration, schedule func(func()), step func() bool) *Playback {
	if interval <= 0 {
		interval = time.Second
	}
	return &Playback{
		interval: interval,
		schedule: schedule,
		step:     step,
	}
}

// Start begins ticking. Starting while playing does nothing.
func (p *Playback) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.playing {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.playing = true
	p.run++
	go p.loop(ctx, p.run)

	log.Debug("playback started", "interval", p.interval)
}

// Stop cancels the ticker. Ticks already scheduled are dropped.
func (p *Playback) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

// Toggle starts a stopped playback and stops a running one
func (p *Playback) Toggle() bool {
	p.mu.Lock()
	playing := p.playing
	p.mu.Unlock()

	if playing {
		p.Stop()
		return false
	}
	p.Start()
	return true
}

// Playing reports whether the ticker is running
func (p *Playback) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

func (p *Playback) stopLocked() {
	if !p.playing {
		return
	}
	p.cancel()
	p.cancel = nil
	p.playing = false
	log.Debug("playback stopped")
}

func (p *Playback) loop(ctx context.Context, run uint64) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.schedule(func() { p.tick(run) })
		}
	}
}

// tick runs on the UI goroutine. A tick from a cancelled run is ignored, so
// a stop or a manual seek is never followed by a stale advance.
func (p *Playback) tick(run uint64) {
	p.mu.Lock()
	current := p.playing && p.run == run
	p.mu.Unlock()
	if !current {
		return
	}

	if !p.step() {
		p.Stop()
	}
}
