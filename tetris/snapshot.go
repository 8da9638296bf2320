package tetris

import "time"

// PieceView describes the falling piece for renderers.
type PieceView struct {
	Shape  Shape
	Anchor Point
	// Ghost is the anchor the piece would lock at after a hard drop.
	Ghost Point
}

// Snapshot is a read-only copy of everything a renderer needs. It shares no
// memory with the Game it was taken from.
type Snapshot struct {
	Width  int
	Height int
	// Cells holds the locked blocks indexed [y][x]; the active piece is not included.
	Cells [][]Color
	// Active is nil once the game is over.
	Active *PieceView

	Score        int
	Lines        int
	Level        int
	Paused       bool
	GameOver     bool
	Phase        Phase
	DropInterval time.Duration
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Width:        g.board.width,
		Height:       g.board.height,
		Cells:        g.board.Rows(),
		Score:        g.score,
		Lines:        g.lines,
		Level:        g.level,
		Paused:       g.paused,
		GameOver:     g.over,
		Phase:        g.phase,
		DropInterval: g.DropInterval(),
	}

	if g.active != nil {
		s.Active = &PieceView{
			Shape:  g.active.Shape,
			Anchor: g.active.Anchor,
			Ghost:  g.landing(),
		}
	}

	return s
}

// Composite returns the locked cells with the active piece painted on top.
// Piece cells outside the grid are clipped. The snapshot itself is not modified.
func (s Snapshot) Composite() [][]Color {
	grid := make([][]Color, len(s.Cells))
	for y := range s.Cells {
		grid[y] = make([]Color, len(s.Cells[y]))
		copy(grid[y], s.Cells[y])
	}

	if s.Active == nil {
		return grid
	}

	piece := ActivePiece{Shape: s.Active.Shape, Anchor: s.Active.Anchor}
	for _, p := range piece.Cells() {
		if p.Y < 0 || p.Y >= s.Height || p.X < 0 || p.X >= s.Width {
			continue
		}
		grid[p.Y][p.X] = s.Active.Shape.Color()
	}
	return grid
}
