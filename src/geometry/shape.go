package geometry

import (
	"errors"
	"fmt"
	"strings"

	"blokus/src/base"
)

var (
	ErrRaggedShape = errors.New("shape rows have different lengths")
	ErrEmptyShape  = errors.New("shape has no rows")
	ErrNotSquare   = errors.New("shape is not square")
	ErrBadCell     = errors.New("shape cell is not one of 0 1 . #")
)

// ShapeGrid is a rectangular row-major occupancy grid, origin top-left.
// Transforms never mutate the receiver.
type ShapeGrid struct {
	rows [][]bool
}

// NewShapeGrid copies rows into a new grid.
func NewShapeGrid(rows [][]bool) (ShapeGrid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return ShapeGrid{}, ErrEmptyShape
	}
	w := len(rows[0])
	cp := make([][]bool, len(rows))
	for i, r := range rows {
		if len(r) != w {
			return ShapeGrid{}, ErrRaggedShape
		}
		cp[i] = append([]bool(nil), r...)
	}
	return ShapeGrid{rows: cp}, nil
}

// ParseShapeGrid reads rows of '0'/'1' (also '.'/'#').
func ParseShapeGrid(rows ...string) (ShapeGrid, error) {
	grid := make([][]bool, 0, len(rows))
	for _, r := range rows {
		line := make([]bool, 0, len(r))
		for _, c := range strings.TrimSpace(r) {
			switch c {
			case '1', '#':
				line = append(line, true)
			case '0', '.':
				line = append(line, false)
			default:
				return ShapeGrid{}, fmt.Errorf("%w: %q in row %q", ErrBadCell, c, r)
			}
		}
		grid = append(grid, line)
	}
	return NewShapeGrid(grid)
}

func (s ShapeGrid) Width() int {
	if len(s.rows) == 0 {
		return 0
	}
	return len(s.rows[0])
}

func (s ShapeGrid) Height() int {
	return len(s.rows)
}

func (s ShapeGrid) IsSquare() bool {
	return s.Width() == s.Height()
}

// At reports false for coordinates outside the grid.
func (s ShapeGrid) At(col, row int) bool {
	if row < 0 || row >= len(s.rows) || col < 0 || col >= len(s.rows[row]) {
		return false
	}
	return s.rows[row][col]
}

func (s ShapeGrid) Count() int {
	n := 0
	for _, r := range s.rows {
		for _, c := range r {
			if c {
				n++
			}
		}
	}
	return n
}

// Cells returns the filled cells as (col,row) pairs in row-major order.
func (s ShapeGrid) Cells() []base.Point {
	out := make([]base.Point, 0, s.Count())
	for row, r := range s.rows {
		for col, c := range r {
			if c {
				out = append(out, base.Point{X: col, Y: row})
			}
		}
	}
	return out
}

// Extent is the width and height of the bounding box of the filled cells.
func (s ShapeGrid) Extent() (w, h int) {
	minC, minR := s.Width(), s.Height()
	maxC, maxR := -1, -1
	for _, p := range s.Cells() {
		minC = min(minC, p.X)
		maxC = max(maxC, p.X)
		minR = min(minR, p.Y)
		maxR = max(maxR, p.Y)
	}
	if maxC < 0 {
		return 0, 0
	}
	return maxC - minC + 1, maxR - minR + 1
}

func (s ShapeGrid) Rows() [][]bool {
	out := make([][]bool, len(s.rows))
	for i, r := range s.rows {
		out[i] = append([]bool(nil), r...)
	}
	return out
}

func (s ShapeGrid) Equal(o ShapeGrid) bool {
	if s.Width() != o.Width() || s.Height() != o.Height() {
		return false
	}
	for i, r := range s.rows {
		for j, c := range r {
			if o.rows[i][j] != c {
				return false
			}
		}
	}
	return true
}

// Square pads the grid with empty cells on the right and bottom until it is
// square. A square grid is returned unchanged.
func (s ShapeGrid) Square() ShapeGrid {
	n := max(s.Width(), s.Height())
	if s.IsSquare() {
		return s
	}
	out := make([][]bool, n)
	for i := range out {
		out[i] = make([]bool, n)
		if i < len(s.rows) {
			copy(out[i], s.rows[i])
		}
	}
	return ShapeGrid{rows: out}
}

// Rotate turns a square grid by 90 degrees.
func (s ShapeGrid) Rotate(dir base.Rotation) (ShapeGrid, error) {
	if !s.IsSquare() {
		return ShapeGrid{}, ErrNotSquare
	}
	n := len(s.rows)
	out := make([][]bool, n)
	for i := range out {
		out[i] = make([]bool, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if dir == base.Clockwise {
				out[j][n-1-i] = s.rows[i][j]
			} else {
				out[n-1-j][i] = s.rows[i][j]
			}
		}
	}
	return ShapeGrid{rows: out}, nil
}

// Flip mirrors the grid across axis.
func (s ShapeGrid) Flip(axis base.Axis) ShapeGrid {
	h, w := s.Height(), s.Width()
	out := make([][]bool, h)
	for i := 0; i < h; i++ {
		out[i] = make([]bool, w)
		for j := 0; j < w; j++ {
			if axis == base.AxisHorizontal {
				out[i][j] = s.rows[h-1-i][j]
			} else {
				out[i][j] = s.rows[i][w-1-j]
			}
		}
	}
	return ShapeGrid{rows: out}
}

func (s ShapeGrid) String() string {
	var sb strings.Builder
	for i, r := range s.rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range r {
			if c {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
