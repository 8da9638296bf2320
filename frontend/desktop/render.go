package desktop

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/tetris"
)

const (
	defaultCellSize = 24
	defaultMargin   = 20
	hudWidth        = 200
)

// Layout places the well and the HUD on screen.
type Layout struct {
	CellSize int
	Margin   int
}

// DefaultLayout is used by NewApp.
var DefaultLayout = Layout{CellSize: defaultCellSize, Margin: defaultMargin}

// ScreenSize returns the window size needed for a board of the given
// dimensions.
func (l Layout) ScreenSize(boardWidth, boardHeight int) (int, int) {
	w := l.Margin*3 + boardWidth*l.CellSize + hudWidth
	h := l.Margin*2 + boardHeight*l.CellSize
	return w, h
}

func (l Layout) cellOrigin(x, y int) (float32, float32) {
	return float32(l.Margin + x*l.CellSize), float32(l.Margin + y*l.CellSize)
}

func (l Layout) hudOrigin(boardWidth int) (int, int) {
	return l.Margin*2 + boardWidth*l.CellSize, l.Margin
}

// Draw renders a snapshot: the well, locked cells, ghost, active piece and HUD.
func (l Layout) Draw(screen *ebiten.Image, s tetris.Snapshot) {
	screen.Fill(backgroundColor)

	wx, wy := l.cellOrigin(0, 0)
	ww := float32(s.Width * l.CellSize)
	wh := float32(s.Height * l.CellSize)
	vector.DrawFilledRect(screen, wx, wy, ww, wh, wellColor, false)
	vector.StrokeRect(screen, wx-1, wy-1, ww+2, wh+2, 2, borderColor, false)

	for y, row := range s.Cells {
		for x, c := range row {
			if c != tetris.ColorNone {
				l.drawBlock(screen, x, y, colorOf(c))
			}
		}
	}

	if s.Active != nil {
		l.drawGhost(screen, s.Active)
		for _, b := range s.Active.Shape.Blocks() {
			x, y := s.Active.Anchor.X+b.X, s.Active.Anchor.Y+b.Y
			if y >= 0 {
				l.drawBlock(screen, x, y, colorOf(s.Active.Shape.Color()))
			}
		}
	}

	l.drawHUD(screen, s)
}

func (l Layout) drawBlock(screen *ebiten.Image, x, y int, fill color.RGBA) {
	px, py := l.cellOrigin(x, y)
	size := float32(l.CellSize)
	vector.DrawFilledRect(screen, px, py, size, size, fill, false)
	vector.StrokeRect(screen, px, py, size, size, 1, outlineColor, false)
}

func (l Layout) drawGhost(screen *ebiten.Image, p *tetris.PieceView) {
	if p.Ghost == p.Anchor {
		return
	}
	size := float32(l.CellSize)
	for _, b := range p.Shape.Blocks() {
		x, y := p.Ghost.X+b.X, p.Ghost.Y+b.Y
		if y < 0 {
			continue
		}
		px, py := l.cellOrigin(x, y)
		vector.DrawFilledRect(screen, px, py, size, size, ghostColor, false)
	}
}

func (l Layout) drawHUD(screen *ebiten.Image, s tetris.Snapshot) {
	x, y := l.hudOrigin(s.Width)
	ebitenutil.DebugPrintAt(screen, hudText(s), x, y)
}

// hudText is the status panel shown next to the well.
func hudText(s tetris.Snapshot) string {
	text := fmt.Sprintf("SCORE  %d\nLINES  %d\nLEVEL  %d\nSPEED  %dms\n\n",
		s.Score, s.Lines, s.Level, s.DropInterval.Milliseconds())
	switch {
	case s.GameOver:
		text += "GAME OVER\nPress R to restart\n"
	case s.Paused:
		text += "PAUSED\nPress P to play\n"
	}
	text += "\n<- -> move\nUP/X  rotate\nDOWN  soft drop\nSPACE hard drop\nP pause  R reset\nESC quit"
	return text
}
