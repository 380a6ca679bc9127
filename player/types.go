// SPDX-License-Identifier: MIT

package player

import (
	"log/slog"
	"time"

	"github.com/katalvlaran/bellmanford/bellmanford"
)

// DefaultDelay is the pause between automatic steps.
const DefaultDelay = time.Second

// EventKind classifies an Event.
type EventKind int

const (
	// EventStep follows a non-terminal step.
	EventStep EventKind = iota
	// EventFinished follows the step that made the state terminal.
	EventFinished
	// EventReset follows Reset.
	EventReset
)

// Event is delivered to observers after every state change.
type Event struct {
	Kind    EventKind
	Seq     uint64 // strictly increasing per Player
	State   bellmanford.State
	Relaxed bool // the step lowered a distance
}

// Observer receives events on the stepping goroutine while the Player is
// locked: events arrive strictly in order, and an observer must not call
// back into the Player.
type Observer func(Event)

// Option configures a Player.
type Option func(*Player)

// WithDelay sets the pause between automatic steps. Negative values mean zero.
func WithDelay(d time.Duration) Option {
	return func(p *Player) {
		if d < 0 {
			d = 0
		}
		p.delay = d
	}
}

// WithLogger replaces the component logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Player) {
		if l != nil {
			p.log = l
		}
	}
}

// WithObserver registers fn for every Event.
func WithObserver(fn Observer) Option {
	return func(p *Player) {
		if fn != nil {
			p.observers = append(p.observers, fn)
		}
	}
}
