package tetris

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// boardFromRows builds a board from a picture of it, top row first. '.' is an
// empty cell and any other byte is a locked block. Missing rows at the top
// are empty, so a test only needs to draw the bottom of the well.
func boardFromRows(t *testing.T, width, height int, rows ...string) *Board {
	t.Helper()
	require.LessOrEqual(t, len(rows), height)

	b := NewBoard(width, height)
	offset := height - len(rows)
	for r, row := range rows {
		require.Len(t, row, width, "row %d", r)
		for x := range row {
			if row[x] != '.' {
				b.cells[offset+r][x] = ColorBlue
			}
		}
	}
	return b
}

// picture renders the board in the format accepted by boardFromRows.
func picture(b *Board) []string {
	rows := make([]string, b.height)
	for y := range b.cells {
		line := make([]byte, b.width)
		for x, c := range b.cells[y] {
			if c == ColorNone {
				line[x] = '.'
			} else {
				line[x] = '#'
			}
		}
		rows[y] = string(line)
	}
	return rows
}

// newTestGame returns an unpaused default-size game that spawns kinds in order.
func newTestGame(t *testing.T, kinds ...Kind) *Game {
	t.Helper()
	g, err := New(DefaultConfig(), WithGenerator(NewSequenceGenerator(kinds...)))
	require.NoError(t, err)
	require.True(t, g.Apply(TogglePause).Accepted)
	return g
}

func occupiedCount(b *Board) int {
	n := 0
	for y := range b.cells {
		for _, c := range b.cells[y] {
			if c != ColorNone {
				n++
			}
		}
	}
	return n
}
