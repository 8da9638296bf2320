package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/tetris"
)

var keyCommands = map[tcell.Key]tetris.Command{
	tcell.KeyLeft:  tetris.MoveLeft,
	tcell.KeyRight: tetris.MoveRight,
	tcell.KeyDown:  tetris.SoftDrop,
	tcell.KeyUp:    tetris.RotateCW,
}

var runeCommands = map[rune]tetris.Command{
	' ': tetris.HardDrop,
	'x': tetris.RotateCW,
	'p': tetris.TogglePause,
	'r': tetris.Reset,
}

// CommandFor maps a key event to the command it triggers.
func CommandFor(ev *tcell.EventKey) (tetris.Command, bool) {
	if ev.Key() == tcell.KeyRune {
		cmd, ok := runeCommands[toLower(ev.Rune())]
		return cmd, ok
	}
	cmd, ok := keyCommands[ev.Key()]
	return cmd, ok
}

// IsQuit reports whether the event should end the program.
func IsQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return toLower(ev.Rune()) == 'q'
	}
	return false
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + 'a' - 'A'
	}
	return r
}
