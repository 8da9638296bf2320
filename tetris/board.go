package tetris

import (
	"errors"
	"fmt"
)

const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

// ErrOutOfRange is returned when a board coordinate lies outside the grid.
var ErrOutOfRange = errors.New("coordinate out of range")

// Board is the fixed-size occupancy grid. Each cell holds the color of the
// piece that locked there, or ColorNone when empty. The falling piece is
// never stored here; it is tracked separately and only composited for display.
type Board struct {
	width  int
	height int
	cells  [][]Color
}

// NewBoard creates an empty board. Dimensions never change afterwards.
func NewBoard(width, height int) *Board {
	b := &Board{width: width, height: height}
	b.cells = make([][]Color, height)
	for y := range b.cells {
		b.cells[y] = make([]Color, width)
	}
	return b
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// IsOccupied reports whether the cell at x, y holds a locked block.
func (b *Board) IsOccupied(x, y int) (bool, error) {
	if !b.inBounds(x, y) {
		return false, fmt.Errorf("%w: (%d,%d) on %dx%d board", ErrOutOfRange, x, y, b.width, b.height)
	}
	return b.cells[y][x] != ColorNone, nil
}

// At returns the color stored at x, y, or ColorNone outside the grid.
func (b *Board) At(x, y int) Color {
	if !b.inBounds(x, y) {
		return ColorNone
	}
	return b.cells[y][x]
}

// Lock writes color into every cell covered by shape at anchor. Cells above
// the top row are skipped so pieces that spawned partially hidden can lock.
// Any other cell outside the grid means the placement was never validated,
// and Lock panics rather than corrupt the board.
func (b *Board) Lock(shape Shape, anchor Point, color Color) {
	for _, block := range shape.Blocks() {
		x, y := anchor.X+block.X, anchor.Y+block.Y
		if y < 0 {
			continue
		}
		if !b.inBounds(x, y) {
			panic(fmt.Sprintf("tetris: lock of %s at (%d,%d) writes outside the board at (%d,%d)",
				shape.Kind(), anchor.X, anchor.Y, x, y))
		}
		b.cells[y][x] = color
	}
}

func (b *Board) rowFull(y int) bool {
	for _, c := range b.cells[y] {
		if c == ColorNone {
			return false
		}
	}
	return true
}

// ClearFullRows removes every fully occupied row, shifts the rows above it
// down and refills the top with empty rows. It returns the number of rows
// removed.
func (b *Board) ClearFullRows() int {
	kept := make([][]Color, 0, b.height)
	for y := range b.cells {
		if !b.rowFull(y) {
			kept = append(kept, b.cells[y])
		}
	}

	cleared := b.height - len(kept)
	if cleared == 0 {
		return 0
	}

	rows := make([][]Color, 0, b.height)
	for range cleared {
		rows = append(rows, make([]Color, b.width))
	}
	b.cells = append(rows, kept...)
	return cleared
}

// Rows returns a deep copy of the grid, indexed [y][x].
func (b *Board) Rows() [][]Color {
	rows := make([][]Color, b.height)
	for y := range b.cells {
		rows[y] = make([]Color, b.width)
		copy(rows[y], b.cells[y])
	}
	return rows
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	return &Board{width: b.width, height: b.height, cells: b.Rows()}
}
