// Package player is the cooperative playback loop around the relaxation
// engine: it steps a bellmanford.State on a timer so a view can animate it.
//
// A Player owns exactly one State. Play schedules the next Step after Delay;
// after each step the following one is scheduled, until the state becomes
// terminal or playback is paused. Pause, Reset and StepOnce cancel the
// pending step, and a cancelled step never mutates the state even if its
// timer already fired.
//
// The delay is presentation only: the sequence of states is identical for
// every delay, zero included.
//
// Observers (WithObserver) see an Event per step, in order, carrying the
// full State, so a view never needs to call back into the Player.
package player
