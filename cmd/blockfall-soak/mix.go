package main

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/plus3/blockfall/tetris"
)

const defaultMix = "MoveLeft=4,MoveRight=4,RotateCW=3,SoftDrop=2,HardDrop=1,TogglePause=0,Reset=0"

var errBadMix = errors.New("bad command mix")

// Mix draws commands with probability proportional to their weight.
type Mix struct {
	commands []tetris.Command
	weights  []int
	total    int
}

// ParseMix reads a comma separated list of Command=weight pairs.
func ParseMix(s string) (*Mix, error) {
	m := &Mix{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, value, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("%w: %q is not Command=weight", errBadMix, part)
		}
		cmd, err := tetris.ParseCommand(strings.TrimSpace(name))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errBadMix, err)
		}
		if cmd == tetris.Tick {
			return nil, fmt.Errorf("%w: ticks come from the scheduler", errBadMix)
		}
		weight, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || weight < 0 {
			return nil, fmt.Errorf("%w: weight %q for %s", errBadMix, value, cmd)
		}
		if weight == 0 {
			continue
		}
		m.commands = append(m.commands, cmd)
		m.weights = append(m.weights, weight)
		m.total += weight
	}
	if m.total == 0 {
		return nil, fmt.Errorf("%w: no command has a positive weight", errBadMix)
	}
	return m, nil
}

// Pick returns a random command.
func (m *Mix) Pick(r *rand.Rand) tetris.Command {
	n := r.IntN(m.total)
	for i, w := range m.weights {
		if n < w {
			return m.commands[i]
		}
		n -= w
	}
	return m.commands[len(m.commands)-1]
}

func (m *Mix) String() string {
	parts := make([]string, len(m.commands))
	for i, cmd := range m.commands {
		parts[i] = fmt.Sprintf("%s=%d", cmd, m.weights[i])
	}
	return strings.Join(parts, ",")
}
