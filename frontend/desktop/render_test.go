package desktop

import (
	"testing"
	"time"

	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreenSizeFitsBoardAndHUD(t *testing.T) {
	l := Layout{CellSize: 10, Margin: 5}
	w, h := l.ScreenSize(10, 20)
	assert.Equal(t, 5*3+100+hudWidth, w)
	assert.Equal(t, 5*2+200, h)

	x, y := l.cellOrigin(2, 3)
	assert.Equal(t, float32(25), x)
	assert.Equal(t, float32(35), y)

	hx, hy := l.hudOrigin(10)
	assert.Equal(t, 110, hx)
	assert.Equal(t, 5, hy)
}

func TestPaletteIsDistinct(t *testing.T) {
	seen := make(map[[4]uint8]tetris.Color)
	for _, shape := range tetris.Shapes() {
		c := colorOf(shape.Color())
		key := [4]uint8{c.R, c.G, c.B, c.A}
		prev, dup := seen[key]
		assert.False(t, dup, "%s and %s share a color", prev, shape.Color())
		seen[key] = shape.Color()
	}
}

func TestHUDText(t *testing.T) {
	s := tetris.Snapshot{Score: 300, Lines: 12, Level: 2, DropInterval: 900 * time.Millisecond}
	text := hudText(s)
	assert.Contains(t, text, "SCORE  300")
	assert.Contains(t, text, "LINES  12")
	assert.Contains(t, text, "LEVEL  2")
	assert.Contains(t, text, "SPEED  900ms")
	assert.NotContains(t, text, "PAUSED")

	s.Paused = true
	assert.Contains(t, hudText(s), "PAUSED")

	s.GameOver = true
	text = hudText(s)
	assert.Contains(t, text, "GAME OVER")
	assert.NotContains(t, text, "PAUSED")
}

func TestViewKeepsLatestSnapshot(t *testing.T) {
	game, err := tetris.New(tetris.DefaultConfig(), tetris.WithGenerator(tetris.NewSequenceGenerator(tetris.KindT)))
	require.NoError(t, err)

	scheduler := loop.NewScheduler(game)
	view := &View{}
	scheduler.Register(view)

	scheduler.Submit(tetris.TogglePause)
	scheduler.Submit(tetris.HardDrop)
	scheduler.Once(0)

	s := view.Snapshot()
	assert.False(t, s.Paused)
	require.NotNil(t, s.Active)
	assert.Equal(t, tetris.KindT, s.Active.Shape.Kind())
	assert.Equal(t, 4, countFilled(s.Cells))
}

func countFilled(cells [][]tetris.Color) int {
	n := 0
	for _, row := range cells {
		for _, c := range row {
			if c != tetris.ColorNone {
				n++
			}
		}
	}
	return n
}
