package hitgrid

import (
	"image"
	"math"
)

// NoHit is returned by CheckPos when the pointer selects no cell.
const NoHit uint32 = math.MaxUint32

// HitGrid splits a rectangle into rows x cols cells and maps a pointer to the
// flattened index row*cols+col. Both corners of the rectangle are part of it.
type HitGrid struct {
	rect       image.Rectangle
	rows, cols int
	cellW      float64
	cellH      float64
}

func NewHitGrid(x1, y1, x2, y2, rows, cols int) *HitGrid {
	g := &HitGrid{rect: image.Rect(x1, y1, x2, y2)}
	g.SetRows(rows)
	g.SetCols(cols)
	return g
}

func (g *HitGrid) Rect() image.Rectangle {
	return g.rect
}

func (g *HitGrid) Rows() int {
	return g.rows
}

func (g *HitGrid) Cols() int {
	return g.cols
}

func (g *HitGrid) CellSize() (w, h float64) {
	return g.cellW, g.cellH
}

// SetRows clamps rows to the rectangle's pixel height; it returns the old
// value.
func (g *HitGrid) SetRows(rows int) int {
	old := g.rows
	g.rows = clampCount(rows, g.rect.Dy())
	g.cellH = cellSize(g.rect.Dy(), g.rows)
	return old
}

func (g *HitGrid) SetCols(cols int) int {
	old := g.cols
	g.cols = clampCount(cols, g.rect.Dx())
	g.cellW = cellSize(g.rect.Dx(), g.cols)
	return old
}

// SetRect moves the zone and recomputes the cell size for the current
// row and column counts.
func (g *HitGrid) SetRect(x1, y1, x2, y2 int) {
	g.rect = image.Rect(x1, y1, x2, y2)
	g.SetRows(g.rows)
	g.SetCols(g.cols)
}

func (g *HitGrid) Contains(p image.Point) bool {
	return p.X >= g.rect.Min.X && p.X <= g.rect.Max.X &&
		p.Y >= g.rect.Min.Y && p.Y <= g.rect.Max.Y
}

// CheckPos returns the index of the cell containing p. A pointer on a shared
// boundary belongs to the higher-indexed cell; the far edges of the zone and
// the truncation remainder clamp into the last row and column.
func (g *HitGrid) CheckPos(p image.Point) uint32 {
	if g.rows == 0 || g.cols == 0 || g.rect.Dx() == 0 || g.rect.Dy() == 0 {
		return NoHit
	}
	if !g.Contains(p) {
		return NoHit
	}
	col := int(float64(p.X-g.rect.Min.X) / g.cellW)
	row := int(float64(p.Y-g.rect.Min.Y) / g.cellH)
	col = min(col, g.cols-1)
	row = min(row, g.rows-1)

	pos := uint32(row*g.cols + col)
	if pos >= uint32(g.rows*g.cols) {
		return NoHit
	}
	return pos
}

// Cell splits a flattened index back into (col, row).
func (g *HitGrid) Cell(pos uint32) (col, row int, ok bool) {
	if pos == NoHit || g.cols == 0 || pos >= uint32(g.rows*g.cols) {
		return 0, 0, false
	}
	return int(pos) % g.cols, int(pos) / g.cols, true
}

// CellRect is the pixel rectangle drawn for a cell.
func (g *HitGrid) CellRect(col, row int) image.Rectangle {
	x := g.rect.Min.X + int(float64(col)*g.cellW)
	y := g.rect.Min.Y + int(float64(row)*g.cellH)
	return image.Rect(x, y, x+int(g.cellW), y+int(g.cellH))
}

func clampCount(n, pixels int) int {
	if n < 0 {
		return 0
	}
	return min(n, pixels)
}

// cellSize truncates to whole pixels.
func cellSize(pixels, n int) float64 {
	if n == 0 {
		return float64(pixels)
	}
	return float64(pixels / n)
}
