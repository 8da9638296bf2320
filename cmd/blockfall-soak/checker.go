package main

import (
	"fmt"

	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

const maxRecordedViolations = 10

// Checker is a system that verifies the game's invariants after every frame.
type Checker struct {
	prev       *tetris.Snapshot
	violations []string
	count      int

	GamesOver    int
	PiecesLocked int
	LinesCleared int
	BestScore    int
	BestLevel    int
}

func (c *Checker) Execute(frame *loop.Frame) {
	s := frame.Snapshot
	reset := false
	for _, res := range frame.Results {
		if res.Locked {
			c.PiecesLocked++
		}
		if res.GameOver {
			c.GamesOver++
		}
		if res.Command == tetris.Reset && res.Accepted {
			reset = true
		}
		c.LinesCleared += res.Cleared
	}
	c.BestScore = max(c.BestScore, s.Score)
	c.BestLevel = max(c.BestLevel, s.Level)

	c.check(s, reset)
	c.prev = &s
}

func (c *Checker) check(s tetris.Snapshot, reset bool) {
	if c.prev != nil && !reset {
		if s.Score < c.prev.Score {
			c.fail("score fell from %d to %d", c.prev.Score, s.Score)
		}
		if s.Lines < c.prev.Lines {
			c.fail("lines fell from %d to %d", c.prev.Lines, s.Lines)
		}
	}
	if want := tetris.LevelFor(s.Lines); s.Level != want {
		c.fail("level %d with %d lines, want %d", s.Level, s.Lines, want)
	}
	if want := tetris.DropInterval(s.Level); s.DropInterval != want {
		c.fail("drop interval %v at level %d, want %v", s.DropInterval, s.Level, want)
	}

	if s.GameOver {
		if s.Active != nil {
			c.fail("active piece present after game over")
		}
		if !s.Paused {
			c.fail("game over without pause")
		}
		return
	}
	if s.Active == nil {
		c.fail("no active piece while playing")
		return
	}

	for _, b := range s.Active.Shape.Blocks() {
		x, y := s.Active.Anchor.X+b.X, s.Active.Anchor.Y+b.Y
		if x < 0 || x >= s.Width || y >= s.Height {
			c.fail("active cell (%d, %d) outside %dx%d board", x, y, s.Width, s.Height)
			continue
		}
		if y >= 0 && s.Cells[y][x] != tetris.ColorNone {
			c.fail("active cell (%d, %d) overlaps the stack", x, y)
		}
	}
	if s.Active.Ghost.Y < s.Active.Anchor.Y || s.Active.Ghost.X != s.Active.Anchor.X {
		c.fail("ghost %v above or beside anchor %v", s.Active.Ghost, s.Active.Anchor)
	}
}

func (c *Checker) fail(format string, args ...any) {
	c.count++
	if len(c.violations) < maxRecordedViolations {
		c.violations = append(c.violations, fmt.Sprintf(format, args...))
	}
}

// Violations returns the total count and the first few messages.
func (c *Checker) Violations() (int, []string) {
	return c.count, c.violations
}
