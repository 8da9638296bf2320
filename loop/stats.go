package loop

import (
	"time"

	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/tetris"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	Frames      int64
	SystemCount int
	Systems     []SystemStats
	Commands    []CommandStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

// CommandStats counts how often a command reached the game and how often the
// game rejected it.
type CommandStats struct {
	Command  tetris.Command
	Accepted int64
	Rejected int64
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

func newSystemStats(name string) *systemStatsInternal {
	return &systemStatsInternal{
		name:        name,
		minDuration: time.Duration(1<<63 - 1),
	}
}

func (s *systemStatsInternal) record(d time.Duration) {
	s.executionCount++
	s.lastDuration = d
	s.totalDuration += d

	if d < s.minDuration {
		s.minDuration = d
	}
	if d > s.maxDuration {
		s.maxDuration = d
	}
}

func (s *systemStatsInternal) snapshot() SystemStats {
	avg := time.Duration(0)
	minDuration := time.Duration(0)
	if s.executionCount > 0 {
		avg = s.totalDuration / time.Duration(s.executionCount)
		minDuration = s.minDuration
	}

	return SystemStats{
		Name:           s.name,
		ExecutionCount: s.executionCount,
		MinDuration:    minDuration,
		MaxDuration:    s.maxDuration,
		AvgDuration:    avg,
		LastDuration:   s.lastDuration,
		TotalDuration:  s.totalDuration,
	}
}

type commandCounters struct {
	accepted *intmap.Map[tetris.Command, int64]
	rejected *intmap.Map[tetris.Command, int64]
}

func newCommandCounters() *commandCounters {
	return &commandCounters{
		accepted: intmap.New[tetris.Command, int64](len(tetris.Commands)),
		rejected: intmap.New[tetris.Command, int64](len(tetris.Commands)),
	}
}

func (c *commandCounters) record(res tetris.Result) {
	counts := c.rejected
	if res.Accepted {
		counts = c.accepted
	}
	n, _ := counts.Get(res.Command)
	counts.Put(res.Command, n+1)
}

func (c *commandCounters) snapshot() []CommandStats {
	stats := make([]CommandStats, 0, len(tetris.Commands))
	for _, cmd := range tetris.Commands {
		accepted, _ := c.accepted.Get(cmd)
		rejected, _ := c.rejected.Get(cmd)
		if accepted == 0 && rejected == 0 {
			continue
		}
		stats = append(stats, CommandStats{Command: cmd, Accepted: accepted, Rejected: rejected})
	}
	return stats
}
