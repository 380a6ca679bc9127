// SPDX-License-Identifier: MIT
package player_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/bellmanford/bellmanford"
	"github.com/katalvlaran/bellmanford/logging"
	"github.com/katalvlaran/bellmanford/player"
)

var stateOpts = cmp.AllowUnexported(bellmanford.State{}, bellmanford.Distance{})

type PlayerSuite struct {
	suite.Suite
	start bellmanford.State
}

func (s *PlayerSuite) SetupTest() {
	st, err := bellmanford.Reset(4, []bellmanford.Edge{
		{From: 0, To: 1, Weight: 4},
		{From: 0, To: 2, Weight: 5},
		{From: 1, To: 2, Weight: -3},
		{From: 2, To: 3, Weight: 2},
	}, 0)
	s.Require().NoError(err)
	s.start = st
}

func (s *PlayerSuite) newPlayer(d time.Duration, opts ...player.Option) *player.Player {
	opts = append([]player.Option{player.WithDelay(d), player.WithLogger(logging.Discard())}, opts...)
	return player.New(s.start, opts...)
}

func (s *PlayerSuite) waitCtx() context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	s.T().Cleanup(cancel)

	return ctx
}

// The delay never changes the outcome.
func (s *PlayerSuite) TestZeroDelayMatchesDirectRun() {
	want := bellmanford.Run(s.start, 0)
	for _, d := range []time.Duration{0, time.Millisecond} {
		p := s.newPlayer(d)
		s.Require().True(p.Play())
		s.Require().NoError(p.Wait(s.waitCtx()))
		s.Require().False(p.Playing())
		s.Require().Empty(cmp.Diff(want, p.State(), stateOpts), "delay %v", d)
	}
}

func (s *PlayerSuite) TestObserverSeesEveryStepInOrder() {
	var events []player.Event
	p := s.newPlayer(0, player.WithObserver(func(ev player.Event) { events = append(events, ev) }))
	s.Require().True(p.Play())
	s.Require().NoError(p.Wait(s.waitCtx()))

	// 3 relaxation passes and 1 verification pass over 4 edges, plus the completing step.
	s.Require().Len(events, 17)
	relaxed := 0
	for i, ev := range events {
		s.Require().Equal(uint64(i+1), ev.Seq)
		if ev.Relaxed {
			relaxed++
		}
	}
	last := events[len(events)-1]
	s.Require().Equal(player.EventFinished, last.Kind)
	s.Require().Equal(bellmanford.Completed, last.State.Status())
	s.Require().Equal(last.State.HistoryLen()-1, relaxed)
}

// A paused player never steps again, even with a timer already armed.
func (s *PlayerSuite) TestPauseCancelsPendingStep() {
	p := s.newPlayer(20 * time.Millisecond)
	s.Require().True(p.Play())
	p.Pause()
	time.Sleep(80 * time.Millisecond)

	s.Require().False(p.Playing())
	s.Require().Empty(cmp.Diff(s.start, p.State(), stateOpts))
	s.Require().NoError(p.Wait(s.waitCtx()))
}

func (s *PlayerSuite) TestResetDuringPlayback() {
	p := s.newPlayer(5 * time.Millisecond)
	s.Require().True(p.Play())
	time.Sleep(12 * time.Millisecond)

	fresh, err := bellmanford.Reset(2, []bellmanford.Edge{{From: 0, To: 1, Weight: 7}}, 0)
	s.Require().NoError(err)
	p.Reset(fresh)
	time.Sleep(40 * time.Millisecond)

	s.Require().False(p.Playing())
	s.Require().Empty(cmp.Diff(fresh, p.State(), stateOpts))
}

func (s *PlayerSuite) TestStepOncePausesAndAdvances() {
	p := s.newPlayer(time.Hour)
	s.Require().True(p.Play())
	st := p.StepOnce()
	s.Require().False(p.Playing())
	s.Require().Equal(0, st.Cursor())
	s.Require().Equal(bellmanford.Step(s.start).Distances(), st.Distances())
}

// Once finished, StepOnce neither steps nor reports a second finish.
func (s *PlayerSuite) TestStepOnceOnFinishedIsSilent() {
	var events []player.Event
	p := s.newPlayer(0, player.WithObserver(func(ev player.Event) { events = append(events, ev) }))
	s.Require().True(p.Play())
	s.Require().NoError(p.Wait(s.waitCtx()))
	s.Require().Len(events, 17)
	done := p.State()

	for i := 0; i < 2; i++ {
		st := p.StepOnce()
		s.Require().Empty(cmp.Diff(done, st, stateOpts))
	}
	s.Require().Len(events, 17)
	s.Require().Equal(player.EventFinished, events[len(events)-1].Kind)
}

func (s *PlayerSuite) TestWaitHonoursContext() {
	p := s.newPlayer(time.Hour)
	s.Require().True(p.Play())
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	s.Require().ErrorIs(p.Wait(ctx), context.DeadlineExceeded)
	s.Require().False(p.Playing())
}

func (s *PlayerSuite) TestPlayRefusedWhenTerminalOrPlaying() {
	p := s.newPlayer(time.Hour)
	s.Require().True(p.Play())
	s.Require().False(p.Play())
	p.Pause()

	p.Reset(bellmanford.Run(s.start, 0))
	s.Require().False(p.Play())
}

func (s *PlayerSuite) TestSetDelayAppliesToNextStep() {
	p := s.newPlayer(time.Hour)
	p.SetDelay(0)
	s.Require().True(p.Play())
	s.Require().NoError(p.Wait(s.waitCtx()))
	s.Require().True(p.State().Status().Terminal())
}

func TestPlayerSuite(t *testing.T) {
	suite.Run(t, new(PlayerSuite))
}

func TestNewIsPaused(t *testing.T) {
	st, err := bellmanford.Reset(2, nil, 0)
	require.NoError(t, err)
	p := player.New(st, player.WithLogger(logging.Discard()))
	require.False(t, p.Playing())
	require.NoError(t, p.Wait(context.Background()))
}
