// SPDX-License-Identifier: MIT

package player

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/katalvlaran/bellmanford/bellmanford"
	"github.com/katalvlaran/bellmanford/logging"
)

// Player drives bellmanford.Step from a cancellable timer loop.
//
// After every step the next one is scheduled Delay later. Pause, Reset and
// StepOnce cancel the pending step: each scheduled call carries the generation
// it was armed in and does nothing unless that generation is still current,
// checked under the same lock that guards the state.
type Player struct {
	mu sync.Mutex

	state   bellmanford.State
	delay   time.Duration
	playing bool
	gen     uint64      // bumped on every stop; stale timers compare against it
	timer   *time.Timer // pending step, nil when idle
	done    chan struct{}
	seq     uint64

	observers []Observer
	log       *slog.Logger
}

// New returns a paused Player positioned at state.
func New(state bellmanford.State, opts ...Option) *Player {
	done := make(chan struct{})
	close(done)
	p := &Player{
		state: state,
		delay: DefaultDelay,
		done:  done,
		log:   logging.New("player"),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Play starts automatic stepping. It returns false if the Player is already
// playing or the state is terminal.
func (p *Player) Play() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.playing || p.state.Status().Terminal() {
		return false
	}
	p.playing = true
	p.done = make(chan struct{})
	p.scheduleLocked(p.gen)
	p.log.Debug("play", slog.Duration("delay", p.delay))

	return true
}

// Pause stops automatic stepping. Once Pause returns, no previously scheduled
// step will mutate the state.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.playing {
		p.log.Debug("pause", slog.Int("cursor", p.state.Cursor()))
	}
	p.stopLocked()
}

// StepOnce pauses playback, advances exactly one step and returns the new state.
// On a terminal state it returns that state without notifying observers again.
func (p *Player) StepOnce() bellmanford.State {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
	if p.state.Status().Terminal() {
		return p.state
	}
	p.advanceLocked()

	return p.state
}

// Reset pauses playback and replaces the state, e.g. with a fresh
// bellmanford.Reset or a restored snapshot. Observers receive the new state.
func (p *Player) Reset(state bellmanford.State) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
	p.state = state
	p.emitLocked(Event{Kind: EventReset, State: state})
}

// SetDelay changes the pause between steps; it applies from the next scheduled step.
func (p *Player) SetDelay(d time.Duration) {
	if d < 0 {
		d = 0
	}
	p.mu.Lock()
	p.delay = d
	p.mu.Unlock()
}

// State returns the current state.
func (p *Player) State() bellmanford.State {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.state
}

// Playing reports whether automatic stepping is active.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.playing
}

// Wait blocks until playback stops (terminal state or Pause) or ctx is done.
// On ctx expiry the Player is paused and ctx.Err() is returned.
func (p *Player) Wait(ctx context.Context) error {
	p.mu.Lock()
	done := p.done
	p.mu.Unlock()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		p.Pause()
		return ctx.Err()
	}
}

// scheduleLocked arms the next step for generation gen.
func (p *Player) scheduleLocked(gen uint64) {
	p.timer = time.AfterFunc(p.delay, func() { p.fire(gen) })
}

// fire is the timer callback.
func (p *Player) fire(gen uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.playing || gen != p.gen {
		return // cancelled
	}
	p.advanceLocked()
	if p.state.Status().Terminal() {
		p.stopLocked()
		return
	}
	p.scheduleLocked(gen)
}

// advanceLocked performs one engine step and notifies observers.
func (p *Player) advanceLocked() {
	before := p.state.HistoryLen()
	p.state = bellmanford.Step(p.state)
	ev := Event{Kind: EventStep, State: p.state, Relaxed: p.state.HistoryLen() > before}

	idx, _ := p.state.LastEdge()
	p.log.Debug("step",
		slog.Int("edge", idx),
		slog.Int("iteration", p.state.Iteration()),
		slog.Bool("relaxed", ev.Relaxed),
		slog.String("action", p.state.Action()),
	)
	if st := p.state.Status(); st.Terminal() {
		ev.Kind = EventFinished
		p.log.Info("finished", slog.String("status", st.String()), slog.Int("iteration", p.state.Iteration()))
	}
	p.emitLocked(ev)
}

func (p *Player) emitLocked(ev Event) {
	p.seq++
	ev.Seq = p.seq
	for _, fn := range p.observers {
		fn(ev)
	}
}

// stopLocked cancels any pending step and releases Wait.
func (p *Player) stopLocked() {
	p.gen++
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	if p.playing {
		p.playing = false
		close(p.done)
	}
}
