// Package loop drives a tetris.Game in time. It owns the game, serializes
// player commands and timer ticks onto a single goroutine and hands each
// resulting frame to the registered systems.
package loop

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/plus3/blockfall/tetris"
)

// Scheduler applies commands and drop ticks to a game and runs systems after
// every frame. Submit is safe from any goroutine; everything else belongs to
// the goroutine calling Once or Run.
type Scheduler struct {
	game     *tetris.Game
	clock    Clock
	commands *Commands
	wake     chan struct{}

	systems     []System
	systemStats []*systemStatsInternal
	counters    *commandCounters
	frames      int64

	// sinceDrop accumulates frame time toward the next tick in Once.
	sinceDrop time.Duration
	// rearm is set when a command restarts the drop timer.
	rearm bool
}

// Option customizes a Scheduler.
type Option func(*Scheduler)

// WithClock replaces the real clock used by Run.
func WithClock(clock Clock) Option {
	return func(s *Scheduler) {
		s.clock = clock
	}
}

// NewScheduler creates a scheduler for game.
func NewScheduler(game *tetris.Game, opts ...Option) *Scheduler {
	s := &Scheduler{
		game:     game,
		clock:    RealClock{},
		commands: newCommands(),
		wake:     make(chan struct{}, 1),
		systems:  make([]System, 0),
		counters: newCommandCounters(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register adds a system. Systems run in registration order.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)
	s.systemStats = append(s.systemStats, newSystemStats(systemName(system)))
}

func systemName(system System) string {
	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}
	if name := systemType.Name(); name != "" {
		return name
	}
	return fmt.Sprintf("%T", system)
}

// Submit queues a command for the next frame and wakes Run if it is waiting.
func (s *Scheduler) Submit(cmd tetris.Command) {
	s.commands.Push(cmd)
	s.Refresh()
}

// Refresh asks Run for a frame without applying anything, so systems can
// redraw after a terminal resize. It is a no-op for Once.
func (s *Scheduler) Refresh() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Once runs a single frame: queued commands are applied in order, then dt
// seconds are added to the drop timer and one Tick is applied for every
// full drop interval that has elapsed. Time does not accumulate while the
// game is paused or over.
func (s *Scheduler) Once(dt float64) {
	frame := newFrame(dt)
	s.commands.Flush(func(cmd tetris.Command) {
		s.apply(frame, cmd)
	})

	if s.rearm {
		s.sinceDrop = 0
		s.rearm = false
	}

	if s.running() {
		s.sinceDrop += time.Duration(dt * float64(time.Second))
		for s.running() && s.sinceDrop >= s.game.DropInterval() {
			s.sinceDrop -= s.game.DropInterval()
			s.apply(frame, tetris.Tick)
		}
	}

	s.finish(frame)
}

// Run drives the game in real time until ctx is cancelled. A ticker fires at
// the current drop interval and is re-armed whenever the interval changes or
// a Reset or pause toggle restarts it. Submitted commands are applied as
// soon as they arrive.
func (s *Scheduler) Run(ctx context.Context) {
	interval := s.game.DropInterval()
	ticker := s.clock.NewTicker(interval)
	defer ticker.Stop()

	lastTime := s.clock.Now()

	for {
		tick := false
		select {
		case <-ctx.Done():
			return
		case <-s.wake:
		case <-ticker.C():
			tick = true
		}

		now := s.clock.Now()
		frame := newFrame(now.Sub(lastTime).Seconds())
		lastTime = now

		s.commands.Flush(func(cmd tetris.Command) {
			s.apply(frame, cmd)
		})

		// A tick that raced with a timer restart belongs to the old period.
		if tick && !s.rearm && s.running() {
			s.apply(frame, tetris.Tick)
		}

		if next := s.game.DropInterval(); s.rearm || next != interval {
			interval = next
			ticker.Reset(interval)
			s.rearm = false
		}

		s.finish(frame)
	}
}

func (s *Scheduler) running() bool {
	return !s.game.Paused() && !s.game.Over()
}

func (s *Scheduler) apply(frame *Frame, cmd tetris.Command) {
	res := s.game.Apply(cmd)
	frame.Results = append(frame.Results, res)
	s.counters.record(res)

	if res.Accepted && (cmd == tetris.Reset || cmd == tetris.TogglePause) {
		s.rearm = true
	}
}

func (s *Scheduler) finish(frame *Frame) {
	frame.Snapshot = s.game.Snapshot()

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		s.systemStats[i].record(time.Since(start))
	}

	s.frames++
}

// GetStats returns statistics about frames, systems and commands.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		Frames:      s.frames,
		SystemCount: len(s.systems),
		Systems:     make([]SystemStats, len(s.systemStats)),
		Commands:    s.counters.snapshot(),
	}

	for i, internal := range s.systemStats {
		stats.Systems[i] = internal.snapshot()
	}

	return stats
}
