package tetris

// ActivePiece is the falling piece: a shape and the board position of the
// top-left corner of its bounding box.
type ActivePiece struct {
	Shape  Shape
	Anchor Point
}

// Cells returns the absolute board coordinates covered by the piece. Rows
// above the board are included with negative Y.
func (p ActivePiece) Cells() []Point {
	blocks := p.Shape.Blocks()
	for i := range blocks {
		blocks[i].X += p.Anchor.X
		blocks[i].Y += p.Anchor.Y
	}
	return blocks
}

func (g *Game) shift(dx int) bool {
	next := Point{X: g.active.Anchor.X + dx, Y: g.active.Anchor.Y}
	if !IsValidMove(g.active.Shape, next, g.board) {
		return false
	}
	g.active.Anchor = next
	return true
}

// rotate turns the piece clockwise in place. There are no wall kicks: if the
// rotated shape does not fit at the current anchor the command is rejected.
func (g *Game) rotate() bool {
	rotated := g.active.Shape.Rotate()
	if !IsValidMove(rotated, g.active.Anchor, g.board) {
		return false
	}
	g.active.Shape = rotated
	return true
}

// landing returns the lowest anchor the active piece can reach by falling
// straight down.
func (g *Game) landing() Point {
	pos := g.active.Anchor
	for IsValidMove(g.active.Shape, Point{X: pos.X, Y: pos.Y + 1}, g.board) {
		pos.Y++
	}
	return pos
}

// fall makes one downward attempt. A blocked attempt runs the lock pipeline.
func (g *Game) fall(res *Result) {
	next := Point{X: g.active.Anchor.X, Y: g.active.Anchor.Y + 1}
	res.Accepted = true
	if IsValidMove(g.active.Shape, next, g.board) {
		g.active.Anchor = next
		return
	}
	g.lockActive(res)
}

// hardDrop falls until blocked and then locks through the same pipeline as a
// failed fall.
func (g *Game) hardDrop(res *Result) {
	g.active.Anchor = g.landing()
	g.fall(res)
}
