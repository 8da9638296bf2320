package tetris

import (
	"errors"
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Command

// Command is an abstract input consumed by Game.Apply. Keyboard bindings and
// timers live outside the package and translate into commands.
type Command uint8

const (
	MoveLeft Command = iota
	MoveRight
	RotateCW
	SoftDrop
	HardDrop
	TogglePause
	Reset
	// Tick is the timer-driven fall; it has the same effect as SoftDrop.
	Tick
)

// Commands lists every command in declaration order.
var Commands = []Command{MoveLeft, MoveRight, RotateCW, SoftDrop, HardDrop, TogglePause, Reset, Tick}

// ErrUnknownCommand is returned by ParseCommand for unrecognized names.
var ErrUnknownCommand = errors.New("unknown command")

// ParseCommand looks up a command by its String name, ignoring case.
func ParseCommand(name string) (Command, error) {
	for _, cmd := range Commands {
		if strings.EqualFold(cmd.String(), name) {
			return cmd, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
}

// Result describes what a single Apply did. A command that was rejected
// (illegal move, paused, game over) returns a Result with Accepted unset and
// leaves the game untouched.
type Result struct {
	Command  Command
	Accepted bool
	// Locked is set when the active piece merged into the board.
	Locked bool
	// Cleared is the number of rows removed by the lock.
	Cleared  int
	LevelUp  bool
	GameOver bool
}
