package tetris

// IsValidMove reports whether shape can sit at pos on board. Every filled
// cell must lie within the side walls and above the floor, and must not
// overlap a locked block. Cells above the top row are exempt from the
// occupancy check, which lets tall pieces spawn without a hidden buffer, but
// they are still bounded by the walls.
func IsValidMove(shape Shape, pos Point, board *Board) bool {
	for _, block := range shape.Blocks() {
		x := pos.X + block.X
		y := pos.Y + block.Y

		if x < 0 || x >= board.width || y >= board.height {
			return false
		}

		if y >= 0 && board.cells[y][x] != ColorNone {
			return false
		}
	}

	return true
}
