package tetris

import "time"

const (
	linesPerLevel    = 10
	baseDropMs       = 1000
	dropStepMs       = 100
	minDropMs        = 100
	pointsPerLineRow = 100
)

// LevelFor derives the level from the total number of cleared lines.
func LevelFor(lines int) int {
	if lines < 0 {
		lines = 0
	}
	return lines/linesPerLevel + 1
}

// DropIntervalMs returns the automatic fall period for level in milliseconds:
// 1000ms at level 1, 100ms faster per level, never below 100ms.
func DropIntervalMs(level int) int {
	if level < 1 {
		level = 1
	}
	return max(minDropMs, baseDropMs-(level-1)*dropStepMs)
}

// DropInterval is DropIntervalMs as a time.Duration.
func DropInterval(level int) time.Duration {
	return time.Duration(DropIntervalMs(level)) * time.Millisecond
}

// clearScore is the score awarded for clearing lines at level. The level is
// the one in effect before the clear is counted.
func clearScore(lines, level int) int {
	return lines * pointsPerLineRow * level
}
