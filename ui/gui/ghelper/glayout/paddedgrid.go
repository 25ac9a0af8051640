package glayout

import "image"

// Alignment of a padded grid inside its zone, row-major from top-left.
type Alignment uint8

const (
	AlignTopLeft Alignment = iota
	AlignTopCenter
	AlignTopRight
	AlignCenterLeft
	AlignCenter
	AlignCenterRight
	AlignBottomLeft
	AlignBottomCenter
	AlignBottomRight
)

// PaddedGrid splits a zone into cols x rows cells separated by fixed gaps.
type PaddedGrid struct {
	zone   image.Rectangle
	cols   int
	rows   int
	gapW   int
	gapH   int
	align  Alignment
	square bool
	cellW  int
	cellH  int
	offX   int
	offY   int
}

func NewPaddedGrid(zone image.Rectangle, cols, rows, gapW, gapH int, align Alignment) *PaddedGrid {
	g := &PaddedGrid{zone: zone, cols: max(cols, 1), rows: max(rows, 1), gapW: max(gapW, 0), gapH: max(gapH, 0)}
	g.SetAlignment(align)
	return g
}

// SetAlignment returns the previous alignment. Unknown values centre the grid.
func (g *PaddedGrid) SetAlignment(a Alignment) Alignment {
	old := g.align
	if a > AlignBottomRight {
		a = AlignCenter
	}
	g.align = a
	g.update()
	return old
}

func (g *PaddedGrid) SetSquareCells(square bool) {
	g.square = square
	g.update()
}

func (g *PaddedGrid) Cols() int {
	return g.cols
}

func (g *PaddedGrid) Rows() int {
	return g.rows
}

func (g *PaddedGrid) CellSize() (w, h int) {
	return g.cellW, g.cellH
}

// Offset of the top-left cell from the zone corner.
func (g *PaddedGrid) Offset() (x, y int) {
	return g.offX, g.offY
}

func (g *PaddedGrid) update() {
	usableW := g.zone.Dx() - g.gapW*(g.cols-1)
	usableH := g.zone.Dy() - g.gapH*(g.rows-1)
	g.cellW = max(usableW/g.cols, 0)
	g.cellH = max(usableH/g.rows, 0)
	if g.square {
		g.cellW = min(g.cellW, g.cellH)
		g.cellH = g.cellW
	}

	restW := usableW - g.cellW*g.cols
	restH := usableH - g.cellH*g.rows
	switch g.align % 3 {
	case 0:
		g.offX = 0
	case 1:
		g.offX = restW / 2
	default:
		g.offX = restW
	}
	switch {
	case g.align <= AlignTopRight:
		g.offY = 0
	case g.align <= AlignCenterRight:
		g.offY = restH / 2
	default:
		g.offY = restH
	}
}

// Cell returns the absolute rectangle of cell (col, row).
func (g *PaddedGrid) Cell(col, row int) image.Rectangle {
	x := g.zone.Min.X + g.offX + col*(g.cellW+g.gapW)
	y := g.zone.Min.Y + g.offY + row*(g.cellH+g.gapH)
	return image.Rect(x, y, x+g.cellW, y+g.cellH)
}

// Index returns the cell under p in row-major order, or -1.
func (g *PaddedGrid) Index(p image.Point) int {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if p.In(g.Cell(col, row)) {
				return row*g.cols + col
			}
		}
	}
	return -1
}
