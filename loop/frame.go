package loop

import "github.com/plus3/blockfall/tetris"

// Frame is what systems see after the scheduler has applied a batch of
// commands and ticks.
type Frame struct {
	// DeltaTime is the elapsed time in seconds since the previous frame.
	DeltaTime float64
	// Results holds one entry per command applied this frame, in order.
	Results  []tetris.Result
	Snapshot tetris.Snapshot
}

func newFrame(dt float64) *Frame {
	return &Frame{DeltaTime: dt}
}

// Cleared sums the rows removed during the frame.
func (f *Frame) Cleared() int {
	n := 0
	for _, res := range f.Results {
		n += res.Cleared
	}
	return n
}

// Locked reports whether any piece locked during the frame.
func (f *Frame) Locked() bool {
	for _, res := range f.Results {
		if res.Locked {
			return true
		}
	}
	return false
}

// GameOver reports whether the game ended during the frame.
func (f *Frame) GameOver() bool {
	for _, res := range f.Results {
		if res.GameOver {
			return true
		}
	}
	return false
}
