package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestCommandFor(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want tetris.Command
		ok   bool
	}{
		{"left arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), tetris.MoveLeft, true},
		{"right arrow", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), tetris.MoveRight, true},
		{"down arrow", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), tetris.SoftDrop, true},
		{"up arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), tetris.RotateCW, true},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), tetris.HardDrop, true},
		{"x", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), tetris.RotateCW, true},
		{"p", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), tetris.TogglePause, true},
		{"shifted P", tcell.NewEventKey(tcell.KeyRune, 'P', tcell.ModShift), tetris.TogglePause, true},
		{"r", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), tetris.Reset, true},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), 0, false},
		{"unbound key", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, ok := CommandFor(tt.ev)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, cmd)
			}
		})
	}
}

func TestIsQuit(t *testing.T) {
	assert.True(t, IsQuit(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.True(t, IsQuit(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
	assert.True(t, IsQuit(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.True(t, IsQuit(tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModShift)))
	assert.False(t, IsQuit(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone)))
	assert.False(t, IsQuit(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)))
}
