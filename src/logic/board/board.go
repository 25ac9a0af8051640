package board

import (
	"errors"
	"fmt"

	"blokus/src/autotile"
	"blokus/src/base"
	"blokus/src/geometry"
)

var (
	ErrOutOfBoard   = errors.New("cell outside the board")
	ErrCellOccupied = errors.New("cell already occupied")
	ErrBadOwner     = errors.New("owner outside player range")
)

type Options struct {
	Size            int
	Players         int
	Mode            base.TilerMode
	SolidBoundaries bool
}

// Board keeps one variant grid per player and a packed cell per square.
// x is the column and y the row, row 0 on top.
type Board struct {
	size   int
	mode   base.TilerMode
	solid  bool
	codec  base.CellCodec
	cells  []uint32
	layers []*autotile.MaskGrid
	counts []int
	placed int
}

func NewBoard(opts Options) *Board {
	size := base.ClampBoardSize(opts.Size)
	players := base.ClampPlayers(opts.Players)
	b := &Board{
		size:   size,
		mode:   opts.Mode,
		solid:  opts.SolidBoundaries,
		codec:  base.CodecFor(opts.Mode),
		cells:  make([]uint32, size*size),
		layers: make([]*autotile.MaskGrid, players),
		counts: make([]int, players),
	}
	for i := range b.layers {
		b.layers[i] = autotile.NewMaskGrid(size, size)
	}
	return b
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) Players() int {
	return len(b.layers)
}

func (b *Board) Mode() base.TilerMode {
	return b.mode
}

func (b *Board) SolidBoundaries() bool {
	return b.solid
}

// Placed counts the pieces put down since the last Clear.
func (b *Board) Placed() int {
	return b.placed
}

// Tiles counts the cells owned by a player.
func (b *Board) Tiles(owner int) int {
	if owner < 0 || owner >= len(b.counts) {
		return 0
	}
	return b.counts[owner]
}

func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.size && y < b.size
}

// Raw returns the packed value at (x, y), EmptyCell outside the board.
func (b *Board) Raw(x, y int) uint32 {
	if !b.InBounds(x, y) {
		return base.EmptyCell
	}
	return b.cells[y*b.size+x]
}

// Cell decodes the owner and sprite variant at (x, y).
func (b *Board) Cell(x, y int) (owner, variant int, ok bool) {
	return b.codec.Decode(b.Raw(x, y))
}

// Layer exposes a player's variant grid.
func (b *Board) Layer(owner int) *autotile.MaskGrid {
	if owner < 0 || owner >= len(b.layers) {
		return nil
	}
	return b.layers[owner]
}

// CanPlace checks that every filled cell of p lands on an empty square.
func (b *Board) CanPlace(p *geometry.Piece) error {
	return b.CanPlaceCells(p.Cells())
}

func (b *Board) CanPlaceCells(cells []base.Point) error {
	for _, c := range cells {
		if !b.InBounds(c.X, c.Y) {
			return fmt.Errorf("%w: (%d,%d)", ErrOutOfBoard, c.X, c.Y)
		}
		if b.Raw(c.X, c.Y) != base.EmptyCell {
			return fmt.Errorf("%w: (%d,%d)", ErrCellOccupied, c.X, c.Y)
		}
	}
	return nil
}

// Place stamps p for owner and retiles around every stamped cell.
func (b *Board) Place(owner int, p *geometry.Piece) error {
	return b.PlaceCells(owner, p.Cells())
}

// PlaceCells stamps a set of cells as one piece.
func (b *Board) PlaceCells(owner int, cells []base.Point) error {
	if owner < 0 || owner >= len(b.layers) {
		return ErrBadOwner
	}
	if err := b.CanPlaceCells(cells); err != nil {
		return err
	}
	for _, c := range cells {
		if err := b.set(owner, c.X, c.Y, true); err != nil {
			return err
		}
	}
	b.placed++
	return nil
}

// Lift removes a placed piece by its cells.
func (b *Board) Lift(cells []base.Point) error {
	for _, c := range cells {
		if err := b.Remove(c.X, c.Y); err != nil {
			return err
		}
	}
	if b.placed > 0 {
		b.placed--
	}
	return nil
}

// AddTile sets a single cell for owner.
func (b *Board) AddTile(owner, x, y int) error {
	if owner < 0 || owner >= len(b.layers) {
		return ErrBadOwner
	}
	if !b.InBounds(x, y) {
		return ErrOutOfBoard
	}
	if b.Raw(x, y) != base.EmptyCell {
		return ErrCellOccupied
	}
	return b.set(owner, x, y, true)
}

// Remove clears (x, y) and retiles the owner's neighbourhood.
func (b *Board) Remove(x, y int) error {
	owner, _, ok := b.Cell(x, y)
	if !ok {
		return nil
	}
	return b.set(owner, x, y, false)
}

func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i] = base.EmptyCell
	}
	for i, l := range b.layers {
		l.Reset()
		b.counts[i] = 0
	}
	b.placed = 0
}

func (b *Board) set(owner, x, y int, add bool) error {
	layer := b.layers[owner]
	switch b.mode {
	case base.EightBit:
		if _, err := autotile.EightBit(layer, x, y, add, b.solid); err != nil {
			return err
		}
	default:
		autotile.FourBit(layer, x, y, add, b.solid)
	}
	if add {
		b.counts[owner]++
	} else {
		b.counts[owner]--
	}
	return b.refresh(owner, x, y)
}

// refresh re-encodes the packed cells of the 3x3 block around (x, y).
func (b *Board) refresh(owner, x, y int) error {
	layer := b.layers[owner]
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			cx, cy := x+dx, y+dy
			if !b.InBounds(cx, cy) {
				continue
			}
			v := layer.At(cx, cy)
			idx := cy*b.size + cx
			if v < 0 {
				if o, _, ok := b.codec.Decode(b.cells[idx]); ok && o == owner {
					b.cells[idx] = base.EmptyCell
				}
				continue
			}
			packed, err := b.codec.Encode(owner, v)
			if err != nil {
				return fmt.Errorf("error encode (%d,%d): %w", cx, cy, err)
			}
			b.cells[idx] = packed
		}
	}
	return nil
}
