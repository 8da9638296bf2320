package desktop

import (
	"image/color"

	"github.com/plus3/blockfall/tetris"
)

var palette = map[tetris.Color]color.RGBA{
	tetris.ColorCyan:   {6, 182, 212, 255},
	tetris.ColorYellow: {234, 179, 8, 255},
	tetris.ColorPurple: {168, 85, 247, 255},
	tetris.ColorRed:    {239, 68, 68, 255},
	tetris.ColorGreen:  {34, 197, 94, 255},
	tetris.ColorOrange: {249, 115, 22, 255},
	tetris.ColorBlue:   {59, 130, 246, 255},
}

var (
	backgroundColor = color.RGBA{17, 24, 39, 255}
	wellColor       = color.RGBA{31, 41, 55, 255}
	borderColor     = color.RGBA{75, 85, 99, 255}
	ghostColor      = color.RGBA{255, 255, 255, 60}
	outlineColor    = color.RGBA{0, 0, 0, 255}
)

// colorOf returns the fill for a cell token. Unknown tokens draw as gray so a
// missing palette entry is visible rather than invisible.
func colorOf(c tetris.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return color.RGBA{128, 128, 128, 255}
}
