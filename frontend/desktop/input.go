package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/tetris"
)

const (
	repeatDelay = 0.2
	repeatRate  = 0.05
)

// Binding maps a key to a command. Repeating bindings fire again while the
// key is held.
type Binding struct {
	Key     ebiten.Key
	Command tetris.Command
	Repeat  bool
}

// DefaultBindings are the arrow-key controls.
var DefaultBindings = []Binding{
	{Key: ebiten.KeyLeft, Command: tetris.MoveLeft, Repeat: true},
	{Key: ebiten.KeyRight, Command: tetris.MoveRight, Repeat: true},
	{Key: ebiten.KeyDown, Command: tetris.SoftDrop, Repeat: true},
	{Key: ebiten.KeyUp, Command: tetris.RotateCW},
	{Key: ebiten.KeyX, Command: tetris.RotateCW},
	{Key: ebiten.KeySpace, Command: tetris.HardDrop},
	{Key: ebiten.KeyP, Command: tetris.TogglePause},
	{Key: ebiten.KeyR, Command: tetris.Reset},
}

// repeater turns key state into discrete presses: one on the initial press,
// then one every repeatRate seconds once the key has been held for
// repeatDelay.
type repeater struct {
	held float64
}

func (r *repeater) update(justPressed, down bool, dt float64) bool {
	switch {
	case justPressed:
		r.held = 0
		return true
	case down:
		r.held += dt
		if r.held > repeatDelay {
			r.held -= repeatRate
			return true
		}
		return false
	default:
		r.held = 0
		return false
	}
}

// Input polls the keyboard once per update and reports commands.
type Input struct {
	bindings  []Binding
	repeaters []repeater
}

func NewInput(bindings []Binding) *Input {
	return &Input{
		bindings:  bindings,
		repeaters: make([]repeater, len(bindings)),
	}
}

// Poll calls emit for every command triggered since the previous poll.
func (in *Input) Poll(dt float64, emit func(tetris.Command)) {
	for i, b := range in.bindings {
		justPressed := inpututil.IsKeyJustPressed(b.Key)
		if !b.Repeat {
			if justPressed {
				emit(b.Command)
			}
			continue
		}
		if in.repeaters[i].update(justPressed, ebiten.IsKeyPressed(b.Key), dt) {
			emit(b.Command)
		}
	}
}
