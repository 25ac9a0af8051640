package sprites

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"blokus/src/autotile"
	"blokus/src/base"
	"blokus/src/logic/board"

	"github.com/fogleman/gg"
)

const MinCell = 8

var (
	ErrCellSize = errors.New("cell size too small")
	ErrFrame    = errors.New("frame index outside the sheet")
)

// Sheet is a procedurally drawn sprite sheet for one tiler mode and colour.
// Frame i sits at column i%Cols, row i/Cols.
type Sheet struct {
	Mode  base.TilerMode
	Cell  int
	Cols  int
	Rows  int
	Image image.Image
}

func layout(mode base.TilerMode) (cols, rows int) {
	if mode == base.EightBit {
		return 8, 6
	}
	return 4, 4
}

// NewSheet draws every frame of mode at cell x cell pixels in fill.
func NewSheet(mode base.TilerMode, cell int, fill color.RGBA) (*Sheet, error) {
	if cell < MinCell {
		return nil, fmt.Errorf("%w: %d", ErrCellSize, cell)
	}
	cols, rows := layout(mode)
	dc := gg.NewContext(cols*cell, rows*cell)
	for i := 0; i < mode.Frames(); i++ {
		mask, ok := sides(mode, i)
		if !ok {
			continue
		}
		drawFrame(dc, float64((i%cols)*cell), float64((i/cols)*cell), float64(cell), mask, fill)
	}
	return &Sheet{Mode: mode, Cell: cell, Cols: cols, Rows: rows, Image: dc.Image()}, nil
}

// sides converts a frame index into an 8-bit neighbour mask.
func sides(mode base.TilerMode, index int) (uint8, bool) {
	if mode == base.EightBit {
		return autotile.BlobMask(index)
	}
	var m uint8
	if index&autotile.Top != 0 {
		m |= autotile.TopSide
	}
	if index&autotile.Left != 0 {
		m |= autotile.LeftSide
	}
	if index&autotile.Right != 0 {
		m |= autotile.RightSide
	}
	if index&autotile.Bottom != 0 {
		m |= autotile.BottomSide
	}
	return m, true
}

func shade(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{R: uint8(float64(c.R) * f), G: uint8(float64(c.G) * f), B: uint8(float64(c.B) * f), A: c.A}
}

// drawFrame fills a rounded tile and bridges it to every connected side.
// Corners are only bridged when the mask carries the corner bit.
func drawFrame(dc *gg.Context, x, y, cell float64, mask uint8, fill color.RGBA) {
	pad := cell / 8
	half := cell / 2

	dc.SetColor(shade(fill, 0.7))
	dc.DrawRoundedRectangle(x+pad, y+pad, cell-2*pad, cell-2*pad, pad)
	bridge := func(bit uint8, bx, by, bw, bh float64) {
		if mask&bit != 0 {
			dc.DrawRectangle(x+bx, y+by, bw, bh)
		}
	}
	bridge(autotile.TopSide, pad, 0, cell-2*pad, half)
	bridge(autotile.BottomSide, pad, half, cell-2*pad, half)
	bridge(autotile.LeftSide, 0, pad, half, cell-2*pad)
	bridge(autotile.RightSide, half, pad, half, cell-2*pad)
	bridge(autotile.TopLeft, 0, 0, half, half)
	bridge(autotile.TopRight, half, 0, half, half)
	bridge(autotile.BottomLeft, 0, half, half, half)
	bridge(autotile.BottomRight, half, half, half, half)
	dc.Fill()

	// lighter face: core, a band per joined side, a quadrant per joined corner
	in := 2 * pad
	dc.SetColor(fill)
	dc.DrawRoundedRectangle(x+in, y+in, cell-2*in, cell-2*in, pad/2)
	face := func(bit uint8, bx, by, bw, bh float64) {
		if mask&bit != 0 {
			dc.DrawRectangle(x+bx, y+by, bw, bh)
		}
	}
	face(autotile.TopSide, in, 0, cell-2*in, in)
	face(autotile.BottomSide, in, cell-in, cell-2*in, in)
	face(autotile.LeftSide, 0, in, in, cell-2*in)
	face(autotile.RightSide, cell-in, in, in, cell-2*in)
	face(autotile.TopLeft, 0, 0, in, in)
	face(autotile.TopRight, cell-in, 0, in, in)
	face(autotile.BottomLeft, 0, cell-in, in, in)
	face(autotile.BottomRight, cell-in, cell-in, in, in)
	dc.Fill()
}

// FrameRect returns the pixel rectangle of frame index.
func (s *Sheet) FrameRect(index int) (image.Rectangle, error) {
	if index < 0 || index >= s.Mode.Frames() {
		return image.Rectangle{}, fmt.Errorf("%w: %d", ErrFrame, index)
	}
	x, y := (index%s.Cols)*s.Cell, (index/s.Cols)*s.Cell
	return image.Rect(x, y, x+s.Cell, y+s.Cell), nil
}

// Frame returns the sub image of frame index.
func (s *Sheet) Frame(index int) (image.Image, error) {
	r, err := s.FrameRect(index)
	if err != nil {
		return nil, err
	}
	sub, ok := s.Image.(interface {
		SubImage(image.Rectangle) image.Image
	})
	if !ok {
		return nil, errors.New("sheet image has no sub images")
	}
	return sub.SubImage(r), nil
}

func (s *Sheet) SavePNG(path string) error {
	return SavePNG(path, s.Image)
}

func SavePNG(path string, img image.Image) error {
	return gg.SavePNG(path, img)
}

// RenderBoard draws b with one sheet per owner colour.
func RenderBoard(b *board.Board, cell int, colours []color.RGBA, bg color.RGBA) (image.Image, error) {
	if len(colours) < b.Players() {
		return nil, fmt.Errorf("need %d colours, got %d", b.Players(), len(colours))
	}
	sheets := make([]*Sheet, b.Players())
	for i := range sheets {
		s, err := NewSheet(b.Mode(), cell, colours[i])
		if err != nil {
			return nil, err
		}
		sheets[i] = s
	}

	px := b.Size() * cell
	dc := gg.NewContext(px, px)
	dc.SetColor(bg)
	dc.Clear()
	dc.SetColor(shade(bg, 0.85))
	dc.SetLineWidth(1)
	for i := 0; i <= b.Size(); i++ {
		v := float64(i * cell)
		dc.DrawLine(v, 0, v, float64(px))
		dc.DrawLine(0, v, float64(px), v)
	}
	dc.Stroke()

	for y := 0; y < b.Size(); y++ {
		for x := 0; x < b.Size(); x++ {
			owner, variant, ok := b.Cell(x, y)
			if !ok {
				continue
			}
			frame, err := sheets[owner].Frame(variant)
			if err != nil {
				return nil, fmt.Errorf("error render (%d,%d): %w", x, y, err)
			}
			dc.DrawImage(frame, x*cell-frame.Bounds().Min.X, y*cell-frame.Bounds().Min.Y)
		}
	}
	return dc.Image(), nil
}
