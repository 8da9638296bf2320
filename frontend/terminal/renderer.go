// Package terminal renders a loop.Scheduler's frames with tcell and plays
// audio cues with beep.
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// Surface is the part of tcell.Screen the renderer draws on.
type Surface interface {
	Clear()
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

var cellColors = map[tetris.Color]tcell.Color{
	tetris.ColorCyan:   tcell.ColorDarkCyan,
	tetris.ColorYellow: tcell.ColorYellow,
	tetris.ColorPurple: tcell.ColorPurple,
	tetris.ColorRed:    tcell.ColorRed,
	tetris.ColorGreen:  tcell.ColorGreen,
	tetris.ColorOrange: tcell.ColorOrange,
	tetris.ColorBlue:   tcell.ColorBlue,
}

var (
	wallStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	emptyStyle = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	ghostStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	alertStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// Each board cell is two columns wide so blocks look square.
const cellWidth = 2

// Renderer is a system that redraws the whole board every frame.
type Renderer struct {
	surface Surface
}

func NewRenderer(surface Surface) *Renderer {
	return &Renderer{surface: surface}
}

func (r *Renderer) Execute(frame *loop.Frame) {
	s := frame.Snapshot
	r.surface.Clear()

	r.drawWell(s.Width, s.Height)

	for y, row := range s.Cells {
		for x, c := range row {
			if c != tetris.ColorNone {
				r.drawCell(x, y, '█', styleFor(c))
			}
		}
	}

	if s.Active != nil {
		for _, b := range s.Active.Shape.Blocks() {
			x, y := s.Active.Ghost.X+b.X, s.Active.Ghost.Y+b.Y
			if y >= 0 {
				r.drawCell(x, y, '░', ghostStyle)
			}
		}
		style := styleFor(s.Active.Shape.Color())
		for _, b := range s.Active.Shape.Blocks() {
			x, y := s.Active.Anchor.X+b.X, s.Active.Anchor.Y+b.Y
			if y >= 0 {
				r.drawCell(x, y, '█', style)
			}
		}
	}

	r.drawHUD(s)
	r.surface.Show()
}

func styleFor(c tetris.Color) tcell.Style {
	if tc, ok := cellColors[c]; ok {
		return tcell.StyleDefault.Foreground(tc)
	}
	return tcell.StyleDefault
}

func (r *Renderer) drawCell(x, y int, ch rune, style tcell.Style) {
	col := 1 + x*cellWidth
	for i := range cellWidth {
		r.surface.SetContent(col+i, y, ch, nil, style)
	}
}

func (r *Renderer) drawWell(width, height int) {
	right := 1 + width*cellWidth
	for y := range height {
		r.surface.SetContent(0, y, '│', nil, wallStyle)
		r.surface.SetContent(right, y, '│', nil, wallStyle)
		for x := range width {
			r.surface.SetContent(1+x*cellWidth, y, ' ', nil, emptyStyle)
			r.surface.SetContent(2+x*cellWidth, y, '.', nil, emptyStyle)
		}
	}
	r.surface.SetContent(0, height, '└', nil, wallStyle)
	for x := 1; x < right; x++ {
		r.surface.SetContent(x, height, '─', nil, wallStyle)
	}
	r.surface.SetContent(right, height, '┘', nil, wallStyle)
}

func (r *Renderer) drawHUD(s tetris.Snapshot) {
	x := 4 + s.Width*cellWidth
	lines := []string{
		fmt.Sprintf("SCORE  %d", s.Score),
		fmt.Sprintf("LINES  %d", s.Lines),
		fmt.Sprintf("LEVEL  %d", s.Level),
		fmt.Sprintf("SPEED  %dms", s.DropInterval.Milliseconds()),
	}
	for i, line := range lines {
		r.drawText(x, i, line, textStyle)
	}

	switch {
	case s.GameOver:
		r.drawText(x, len(lines)+1, "GAME OVER  (r to restart)", alertStyle)
	case s.Paused:
		r.drawText(x, len(lines)+1, "PAUSED  (p to play)", alertStyle)
	}

	help := []string{"←/→ move  ↑/x rotate", "↓ soft drop  space hard drop", "p pause  r reset  q quit"}
	for i, line := range help {
		r.drawText(x, len(lines)+3+i, line, emptyStyle)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		r.surface.SetContent(x, y, ch, nil, style)
		x++
	}
}
