package tetris

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("rejects tiny boards", func(t *testing.T) {
		_, err := New(Config{Width: 3, Height: 20})
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("starts paused with a piece", func(t *testing.T) {
		g, err := New(DefaultConfig())
		require.NoError(t, err)

		s := g.Snapshot()
		assert.True(t, s.Paused)
		assert.False(t, s.GameOver)
		assert.Equal(t, PhaseFalling, s.Phase)
		assert.Equal(t, 1, s.Level)
		assert.NotNil(t, s.Active)
		assert.Equal(t, time.Second, s.DropInterval)
	})
}

func TestResetSpawnsCenteredPiece(t *testing.T) {
	for _, kind := range []Kind{KindI, KindO, KindT, KindS, KindZ, KindL, KindJ} {
		t.Run(kind.String(), func(t *testing.T) {
			g := newTestGame(t, kind)
			g.Apply(Reset)

			piece, ok := g.Active()
			require.True(t, ok)
			assert.Equal(t, 0, piece.Anchor.Y)
			assert.Equal(t, (DefaultWidth-piece.Shape.Cols())/2, piece.Anchor.X)
			for _, p := range piece.Cells() {
				assert.GreaterOrEqual(t, p.X, 0)
				assert.Less(t, p.X, DefaultWidth)
				assert.GreaterOrEqual(t, p.Y, 0)
			}
			assert.True(t, IsValidMove(piece.Shape, piece.Anchor, g.board))
			assert.True(t, g.Paused())
		})
	}
}

func TestResetDiscardsState(t *testing.T) {
	g := newTestGame(t, KindO)
	g.Apply(HardDrop)
	g.score, g.lines, g.level = 500, 12, 2

	res := g.Apply(Reset)
	assert.True(t, res.Accepted)
	assert.Equal(t, 0, g.Score())
	assert.Equal(t, 0, g.Lines())
	assert.Equal(t, 1, g.Level())
	assert.Equal(t, 0, occupiedCount(g.board))
	assert.True(t, g.Paused())
}

func TestPausedRejectsGameplay(t *testing.T) {
	g := newTestGame(t, KindT)
	g.Apply(TogglePause)
	require.True(t, g.Paused())

	before := g.Snapshot()
	for _, cmd := range []Command{MoveLeft, MoveRight, RotateCW, SoftDrop, HardDrop, Tick} {
		res := g.Apply(cmd)
		assert.False(t, res.Accepted, cmd.String())
	}
	assert.Equal(t, before, g.Snapshot())

	assert.True(t, g.Apply(TogglePause).Accepted)
	assert.False(t, g.Paused())
	assert.True(t, g.Apply(MoveLeft).Accepted)
}

func TestMoveLeftAtWall(t *testing.T) {
	g := newTestGame(t, KindI)

	for range 3 {
		require.True(t, g.Apply(MoveLeft).Accepted)
	}
	piece, _ := g.Active()
	require.Equal(t, 0, piece.Anchor.X)

	for range 10 {
		res := g.Apply(MoveLeft)
		assert.False(t, res.Accepted)
		piece, _ := g.Active()
		assert.Equal(t, Point{X: 0, Y: 0}, piece.Anchor)
	}
}

func TestMoveRightAtWall(t *testing.T) {
	g := newTestGame(t, KindO)
	for range 4 {
		require.True(t, g.Apply(MoveRight).Accepted)
	}
	assert.False(t, g.Apply(MoveRight).Accepted)
	piece, _ := g.Active()
	assert.Equal(t, 8, piece.Anchor.X)
}

func TestRotateSquare(t *testing.T) {
	g := newTestGame(t, KindO)
	original, _ := g.Active()

	for i := range 8 {
		res := g.Apply(RotateCW)
		assert.True(t, res.Accepted, "rotation %d", i)
		piece, _ := g.Active()
		assert.True(t, original.Shape.Equal(piece.Shape), "rotation %d", i)
		assert.Equal(t, original.Anchor, piece.Anchor)
		assert.True(t, IsValidMove(piece.Shape, piece.Anchor, g.board))
	}
}

func TestRotateWithoutWallKick(t *testing.T) {
	g := newTestGame(t, KindI)
	require.True(t, g.Apply(RotateCW).Accepted)
	for range 6 {
		g.Apply(MoveRight)
	}
	piece, _ := g.Active()
	require.Equal(t, 9, piece.Anchor.X)

	// Horizontal I would need columns 9..12.
	res := g.Apply(RotateCW)
	assert.False(t, res.Accepted)
	after, _ := g.Active()
	assert.Equal(t, piece.Anchor, after.Anchor)
	assert.True(t, piece.Shape.Equal(after.Shape))
}

func TestSoftDropAndTickAreEquivalent(t *testing.T) {
	a := newTestGame(t, KindT, KindS)
	b := newTestGame(t, KindT, KindS)

	for range 30 {
		ra := a.Apply(SoftDrop)
		rb := b.Apply(Tick)
		ra.Command, rb.Command = 0, 0
		assert.Equal(t, ra, rb)
		assert.Equal(t, a.Snapshot(), b.Snapshot())
	}
}

func TestHardDropLocksAtLanding(t *testing.T) {
	g := newTestGame(t, KindT, KindO)
	ghost := g.Snapshot().Active.Ghost
	assert.Equal(t, Point{X: 3, Y: 18}, ghost)

	res := g.Apply(HardDrop)
	assert.True(t, res.Accepted)
	assert.True(t, res.Locked)
	assert.Equal(t, 0, res.Cleared)

	assert.Equal(t, ColorPurple, g.board.At(4, 18))
	assert.Equal(t, ColorPurple, g.board.At(3, 19))
	assert.Equal(t, 4, occupiedCount(g.board))

	piece, ok := g.Active()
	require.True(t, ok)
	assert.Equal(t, KindO, piece.Shape.Kind())
	assert.Equal(t, Point{X: 4, Y: 0}, piece.Anchor)
	assert.Equal(t, PhaseFalling, g.Phase())
}

func TestLineClearScoring(t *testing.T) {
	g := newTestGame(t, KindI)
	g.board = boardFromRows(t, DefaultWidth, DefaultHeight,
		"####.#####",
	)
	g.board.cells[10][0] = ColorRed

	require.True(t, g.Apply(RotateCW).Accepted)
	require.True(t, g.Apply(MoveRight).Accepted)

	res := g.Apply(HardDrop)
	assert.True(t, res.Locked)
	assert.Equal(t, 1, res.Cleared)
	assert.False(t, res.LevelUp)
	assert.Equal(t, 1, g.Lines())
	assert.Equal(t, 100, g.Score())

	// The vertical I filled column 4 on rows 16..19; after the clear its
	// remaining three cells sit on rows 17..19 and nothing else is left
	// on the bottom row.
	for x := range DefaultWidth {
		if x == 4 {
			assert.Equal(t, ColorCyan, g.board.At(x, 19))
		} else {
			assert.Equal(t, ColorNone, g.board.At(x, 19), "x=%d", x)
		}
	}
	assert.Equal(t, ColorCyan, g.board.At(4, 17))
	assert.Equal(t, ColorNone, g.board.At(4, 16))
	assert.Equal(t, ColorNone, g.board.At(0, 10))
	assert.Equal(t, ColorRed, g.board.At(0, 11))
}

func TestScoreUsesLevelBeforeClear(t *testing.T) {
	g := newTestGame(t, KindI)
	g.lines, g.level, g.score = 9, 1, 900
	g.board = boardFromRows(t, DefaultWidth, DefaultHeight,
		"###....###",
	)

	res := g.Apply(HardDrop)
	assert.Equal(t, 1, res.Cleared)
	assert.True(t, res.LevelUp)
	assert.Equal(t, 1000, g.Score())
	assert.Equal(t, 10, g.Lines())
	assert.Equal(t, 2, g.Level())
	assert.Equal(t, 900*time.Millisecond, g.DropInterval())
}

func TestMultiLineClear(t *testing.T) {
	g := newTestGame(t, KindI)
	g.lines, g.level = 20, 3
	g.board = boardFromRows(t, DefaultWidth, DefaultHeight,
		"#########.",
		"#########.",
		"#########.",
		"#########.",
	)

	require.True(t, g.Apply(RotateCW).Accepted)
	for range 6 {
		g.Apply(MoveRight)
	}

	res := g.Apply(HardDrop)
	assert.Equal(t, 4, res.Cleared)
	assert.Equal(t, 4*100*3, g.Score())
	assert.Equal(t, 24, g.Lines())
	assert.Equal(t, 0, occupiedCount(g.board))
}

func TestLevelAdvancesOnceAtTenLines(t *testing.T) {
	g := newTestGame(t, KindI)

	intervals := []time.Duration{g.DropInterval()}
	changes := 0
	for i := range 12 {
		for x := range DefaultWidth {
			if x < 3 || x > 6 {
				g.board.cells[DefaultHeight-1][x] = ColorRed
			}
		}

		res := g.Apply(HardDrop)
		require.Equal(t, 1, res.Cleared, "clear %d", i)

		interval := g.DropInterval()
		if interval != intervals[len(intervals)-1] {
			changes++
			assert.Equal(t, 10, g.Lines())
			assert.Equal(t, 2, g.Level())
			assert.True(t, res.LevelUp)
		} else {
			assert.False(t, res.LevelUp)
		}
		intervals = append(intervals, interval)
	}

	assert.Equal(t, 1, changes)
	assert.Equal(t, time.Second, intervals[9])
	assert.Equal(t, 900*time.Millisecond, intervals[10])
	assert.Equal(t, 12, g.Lines())
}

func TestSpawnCollisionEndsGame(t *testing.T) {
	g := newTestGame(t, KindO)
	g.board.cells[2][4] = ColorRed
	g.board.cells[2][5] = ColorRed

	res := g.Apply(Tick)
	assert.True(t, res.Locked)
	assert.True(t, res.GameOver)

	s := g.Snapshot()
	assert.True(t, s.GameOver)
	assert.True(t, s.Paused)
	assert.Equal(t, PhaseGameOver, s.Phase)
	assert.Nil(t, s.Active)

	for _, cmd := range []Command{MoveLeft, RotateCW, MoveRight, SoftDrop, HardDrop, Tick, TogglePause} {
		res := g.Apply(cmd)
		assert.False(t, res.Accepted, cmd.String())
		assert.Equal(t, s, g.Snapshot(), cmd.String())
	}

	assert.True(t, g.Apply(Reset).Accepted)
	assert.False(t, g.Over())
	assert.Equal(t, PhaseFalling, g.Phase())
}

func TestActivePieceNeverOverlapsBoard(t *testing.T) {
	g := newTestGame(t, KindT, KindL, KindI, KindS, KindO, KindZ, KindJ)
	rng := rand.New(rand.NewPCG(1, 2))
	commands := []Command{MoveLeft, MoveRight, RotateCW, SoftDrop, HardDrop, Tick}

	for range 3000 {
		g.Apply(commands[rng.IntN(len(commands))])

		piece, ok := g.Active()
		if !ok {
			require.True(t, g.Over())
			break
		}
		for _, p := range piece.Cells() {
			if p.Y < 0 {
				continue
			}
			occupied, err := g.board.IsOccupied(p.X, p.Y)
			require.NoError(t, err)
			require.False(t, occupied, "piece overlaps locked cell at %v", p)
		}
	}
}

func TestScoreAndLinesNeverDecrease(t *testing.T) {
	g, err := New(Config{Width: DefaultWidth, Height: DefaultHeight, Seed: 99})
	require.NoError(t, err)
	g.Apply(TogglePause)

	rng := rand.New(rand.NewPCG(4, 4))
	commands := []Command{MoveLeft, MoveRight, RotateCW, SoftDrop, HardDrop, Tick, Tick, Tick}
	score, lines := 0, 0
	games := 0

	for range 20000 {
		res := g.Apply(commands[rng.IntN(len(commands))])

		assert.GreaterOrEqual(t, g.Score(), score)
		assert.GreaterOrEqual(t, g.Lines(), lines)
		if res.Locked {
			assert.Equal(t, LevelFor(g.Lines()), g.Level())
		}
		score, lines = g.Score(), g.Lines()

		if g.Over() {
			games++
			g.Apply(Reset)
			g.Apply(TogglePause)
			score, lines = 0, 0
		}
	}

	assert.Greater(t, games, 0)
}

func TestSnapshotIsDetached(t *testing.T) {
	g := newTestGame(t, KindT)
	s := g.Snapshot()
	s.Cells[19][0] = ColorRed

	assert.Equal(t, ColorNone, g.board.At(0, 19))

	composite := s.Composite()
	assert.Equal(t, ColorPurple, composite[0][4])
	assert.Equal(t, ColorPurple, composite[1][3])
	assert.Equal(t, ColorNone, s.Cells[0][4], "composite must not write into the snapshot")
	assert.Equal(t, ColorNone, g.board.At(4, 0), "composite must not write into the board")
}
