package terminal

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/plus3/blockfall/loop"
)

const sampleRate = beep.SampleRate(44100)

type tone struct {
	freq     float64
	duration time.Duration
}

// Audio is a system that plays a short cue when a frame locked a piece,
// cleared lines or ended the game.
type Audio struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewAudio() *Audio {
	return &Audio{mixer: &beep.Mixer{}}
}

// Init opens the output device. Execute is silent until Init succeeds.
func (a *Audio) Init() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(a.mixer)
	a.initialized = true
	return nil
}

// Close stops playback and releases the device.
func (a *Audio) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	a.initialized = false
}

func (a *Audio) Execute(frame *loop.Frame) {
	cue := cueFor(frame)
	if len(cue) == 0 {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.initialized {
		return
	}

	streamer, err := synthesize(cue)
	if err != nil {
		return
	}
	speaker.Lock()
	a.mixer.Add(streamer)
	speaker.Unlock()
}

// cueFor picks the most significant event of the frame: game over, then a
// line clear (one rising note per line), then a plain lock.
func cueFor(frame *loop.Frame) []tone {
	switch {
	case frame.GameOver():
		return []tone{{440, 150 * time.Millisecond}, {330, 150 * time.Millisecond}, {220, 300 * time.Millisecond}}
	case frame.Cleared() > 0:
		notes := make([]tone, frame.Cleared())
		freq := 523.25
		for i := range notes {
			notes[i] = tone{freq, 80 * time.Millisecond}
			freq *= 1.25
		}
		return notes
	case frame.Locked():
		return []tone{{110, 40 * time.Millisecond}}
	}
	return nil
}

func synthesize(cue []tone) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(cue))
	for _, t := range cue {
		sine, err := generators.SineTone(sampleRate, t.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(sampleRate.N(t.duration), sine))
	}
	return &effects.Volume{Streamer: beep.Seq(parts...), Base: 2, Volume: -2}, nil
}
