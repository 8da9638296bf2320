package tetris

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by New when the configuration cannot hold a game.
var ErrInvalidConfig = errors.New("invalid config")

// minDimension is large enough for every catalog shape in every rotation.
const minDimension = 4

// Config holds the parameters fixed for the lifetime of a game.
type Config struct {
	Width  int
	Height int
	// Seed feeds the default RandomGenerator. Ignored when WithGenerator is used.
	Seed uint64
}

// DefaultConfig returns the standard 10x20 board.
func DefaultConfig() Config {
	return Config{
		Width:  DefaultWidth,
		Height: DefaultHeight,
	}
}

func (c Config) Validate() error {
	if c.Width < minDimension || c.Height < minDimension {
		return fmt.Errorf("%w: board %dx%d is smaller than %dx%d",
			ErrInvalidConfig, c.Width, c.Height, minDimension, minDimension)
	}
	return nil
}

// Option customizes a Game at construction.
type Option func(*Game)

// WithGenerator replaces the seeded random generator.
func WithGenerator(gen Generator) Option {
	return func(g *Game) {
		g.gen = gen
	}
}
