// Package tetris implements the rules of a single-player falling-block game:
// piece spawning, movement, rotation, collision, locking, line clearing and
// level-driven timing.
//
// A Game is advanced only through Apply. It is not safe for concurrent use;
// the loop package serializes commands and timer ticks onto one goroutine.
package tetris

import "time"

//go:generate go tool stringer -type=Phase -trimprefix=Phase

// Phase is the position of the game in the lock and clear pipeline. Between
// commands a game is always Falling or GameOver; Locking and Spawning are
// only observed while a fall is being resolved.
type Phase uint8

const (
	PhaseFalling Phase = iota
	PhaseLocking
	PhaseSpawning
	PhaseGameOver
)

// Game owns the board, the active piece and the scoring state.
type Game struct {
	cfg   Config
	gen   Generator
	board *Board

	active *ActivePiece
	phase  Phase

	score  int
	lines  int
	level  int
	paused bool
	over   bool
}

// New creates a game and spawns its first piece. The game starts paused.
func New(cfg Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{cfg: cfg}
	for _, opt := range opts {
		opt(g)
	}
	if g.gen == nil {
		g.gen = NewRandomGenerator(cfg.Seed)
	}

	g.Reset()
	return g, nil
}

// Reset discards the board and all scoring state, spawns a new piece and
// leaves the game paused. The generator is not rewound.
func (g *Game) Reset() {
	g.board = NewBoard(g.cfg.Width, g.cfg.Height)
	g.active = nil
	g.score = 0
	g.lines = 0
	g.level = 1
	g.over = false
	g.paused = true
	g.phase = PhaseSpawning
	g.spawn()
}

// Apply processes one command to completion, including any lock, clear,
// spawn and game over it triggers.
func (g *Game) Apply(cmd Command) Result {
	res := Result{Command: cmd}

	switch cmd {
	case Reset:
		g.Reset()
		res.Accepted = true
		return res
	case TogglePause:
		if g.over {
			g.paused = true
			return res
		}
		g.paused = !g.paused
		res.Accepted = true
		return res
	}

	if g.paused || g.over || g.active == nil {
		return res
	}

	switch cmd {
	case MoveLeft:
		res.Accepted = g.shift(-1)
	case MoveRight:
		res.Accepted = g.shift(1)
	case RotateCW:
		res.Accepted = g.rotate()
	case SoftDrop, Tick:
		g.fall(&res)
	case HardDrop:
		g.hardDrop(&res)
	}

	return res
}

// lockActive merges the active piece into the board, clears full rows,
// updates score and lines, recomputes the level and spawns the next piece.
func (g *Game) lockActive(res *Result) {
	g.phase = PhaseLocking
	piece := g.active
	g.active = nil

	g.board.Lock(piece.Shape, piece.Anchor, piece.Shape.Color())
	cleared := g.board.ClearFullRows()

	// Score with the level in effect before these lines are counted.
	g.score += clearScore(cleared, g.level)
	g.lines += cleared
	res.Locked = true
	res.Cleared = cleared

	g.phase = PhaseSpawning
	previous := g.level
	g.level = LevelFor(g.lines)
	res.LevelUp = g.level > previous

	if !g.spawn() {
		res.GameOver = true
	}
}

// spawn draws the next shape, centers it on the top row and checks that it
// fits. A spawn that does not fit ends the game.
func (g *Game) spawn() bool {
	shape := g.gen.Next()
	anchor := Point{X: (g.board.width - shape.Cols()) / 2, Y: 0}

	if !IsValidMove(shape, anchor, g.board) {
		g.over = true
		g.paused = true
		g.phase = PhaseGameOver
		return false
	}

	g.active = &ActivePiece{Shape: shape, Anchor: anchor}
	g.phase = PhaseFalling
	return true
}

func (g *Game) Score() int     { return g.score }
func (g *Game) Lines() int     { return g.lines }
func (g *Game) Level() int     { return g.level }
func (g *Game) Paused() bool   { return g.paused }
func (g *Game) Over() bool     { return g.over }
func (g *Game) Phase() Phase   { return g.phase }
func (g *Game) Config() Config { return g.cfg }

// DropInterval is the current automatic fall period. Schedulers re-arm their
// timer whenever it changes.
func (g *Game) DropInterval() time.Duration {
	return DropInterval(g.level)
}

// Active returns a copy of the falling piece. ok is false after game over.
func (g *Game) Active() (piece ActivePiece, ok bool) {
	if g.active == nil {
		return ActivePiece{}, false
	}
	return *g.active, true
}

// Board returns a copy of the locked cells.
func (g *Game) Board() *Board {
	return g.board.Clone()
}
