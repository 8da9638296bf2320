package tetris_test

import (
	"testing"
	"time"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		lines int
		level int
	}{
		{0, 1},
		{9, 1},
		{10, 2},
		{19, 2},
		{20, 3},
		{95, 10},
		{-3, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.level, tetris.LevelFor(tt.lines), "lines=%d", tt.lines)
	}
}

func TestDropInterval(t *testing.T) {
	tests := []struct {
		level int
		ms    int
	}{
		{1, 1000},
		{2, 900},
		{5, 600},
		{9, 200},
		{10, 100},
		{11, 100},
		{50, 100},
		{0, 1000},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.ms, tetris.DropIntervalMs(tt.level), "level=%d", tt.level)
		assert.Equal(t, time.Duration(tt.ms)*time.Millisecond, tetris.DropInterval(tt.level))
	}

	t.Run("non-increasing and bounded", func(t *testing.T) {
		previous := tetris.DropIntervalMs(1)
		for level := 2; level <= 100; level++ {
			current := tetris.DropIntervalMs(level)
			assert.LessOrEqual(t, current, previous)
			assert.GreaterOrEqual(t, current, 100)
			previous = current
		}
	})
}
