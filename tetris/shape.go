package tetris

//go:generate go tool stringer -type=Kind -trimprefix=Kind
//go:generate go tool stringer -type=Color -trimprefix=Color

// Kind identifies one of the seven catalog tetrominoes.
type Kind uint8

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindL
	KindJ
)

// Color is an opaque token written into board cells when a piece locks.
// Frontends decide how each token is drawn.
type Color uint8

const (
	ColorNone Color = iota
	ColorCyan
	ColorYellow
	ColorPurple
	ColorRed
	ColorGreen
	ColorOrange
	ColorBlue
)

// Point is a board coordinate. X grows to the right, Y grows downwards.
type Point struct {
	X, Y int
}

// Shape is an immutable piece geometry paired with its color.
// The zero value is an empty shape with no cells.
type Shape struct {
	kind  Kind
	color Color
	cells [][]bool
}

var catalog = [...]Shape{
	{kind: KindI, color: ColorCyan, cells: parseCells("1111")},
	{kind: KindO, color: ColorYellow, cells: parseCells("11", "11")},
	{kind: KindT, color: ColorPurple, cells: parseCells("010", "111")},
	{kind: KindS, color: ColorRed, cells: parseCells("110", "011")},
	{kind: KindZ, color: ColorGreen, cells: parseCells("011", "110")},
	{kind: KindL, color: ColorOrange, cells: parseCells("100", "111")},
	{kind: KindJ, color: ColorBlue, cells: parseCells("001", "111")},
}

func parseCells(rows ...string) [][]bool {
	cells := make([][]bool, len(rows))
	for r, row := range rows {
		cells[r] = make([]bool, len(row))
		for c, ch := range row {
			cells[r][c] = ch == '1'
		}
	}
	return cells
}

// Shapes returns the seven catalog shapes in Kind order.
func Shapes() []Shape {
	shapes := make([]Shape, len(catalog))
	copy(shapes, catalog[:])
	return shapes
}

// ShapeOf returns the catalog shape for kind in its spawn orientation.
// It panics if kind is not a catalog kind.
func ShapeOf(kind Kind) Shape {
	if int(kind) >= len(catalog) {
		panic("unknown shape kind " + kind.String())
	}
	return catalog[kind]
}

func (s Shape) Kind() Kind   { return s.kind }
func (s Shape) Color() Color { return s.color }

// Rows returns the height of the shape's bounding box.
func (s Shape) Rows() int { return len(s.cells) }

// Cols returns the width of the shape's bounding box.
func (s Shape) Cols() int {
	if len(s.cells) == 0 {
		return 0
	}
	return len(s.cells[0])
}

// At reports whether the cell at row, col of the bounding box is filled.
// Coordinates outside the bounding box are reported as empty.
func (s Shape) At(row, col int) bool {
	if row < 0 || row >= len(s.cells) || col < 0 || col >= len(s.cells[row]) {
		return false
	}
	return s.cells[row][col]
}

// Blocks returns the offsets of every filled cell relative to the anchor,
// in row-major order.
func (s Shape) Blocks() []Point {
	blocks := make([]Point, 0, 4)
	for row := range s.cells {
		for col, filled := range s.cells[row] {
			if filled {
				blocks = append(blocks, Point{X: col, Y: row})
			}
		}
	}
	return blocks
}

// Rotate returns the shape turned 90 degrees clockwise: the matrix is
// transposed and every resulting row reversed. No positional adjustment is
// made; callers validate the result at the unchanged anchor.
func (s Shape) Rotate() Shape {
	rows, cols := s.Rows(), s.Cols()
	rotated := make([][]bool, cols)
	for i := range cols {
		rotated[i] = make([]bool, rows)
		for j := range rows {
			rotated[i][j] = s.cells[rows-1-j][i]
		}
	}
	return Shape{kind: s.kind, color: s.color, cells: rotated}
}

// Equal reports whether both shapes have the same kind, color and cells.
func (s Shape) Equal(other Shape) bool {
	if s.kind != other.kind || s.color != other.color {
		return false
	}
	if s.Rows() != other.Rows() || s.Cols() != other.Cols() {
		return false
	}
	for row := range s.cells {
		for col := range s.cells[row] {
			if s.cells[row][col] != other.cells[row][col] {
				return false
			}
		}
	}
	return true
}

// String renders the matrix with '#' for filled and '.' for empty cells,
// one row per line.
func (s Shape) String() string {
	buf := make([]byte, 0, s.Rows()*(s.Cols()+1))
	for row := range s.cells {
		if row > 0 {
			buf = append(buf, '\n')
		}
		for _, filled := range s.cells[row] {
			if filled {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
	}
	return string(buf)
}
