package geometry

import (
	"errors"
	"fmt"

	"blokus/src/base"
)

var (
	ErrPieceTooLarge = errors.New("piece does not fit on the board")
	ErrTileCount     = errors.New("tile count does not match shape")
)

// ShapeSource supplies the canonical shape for a piece id.
type ShapeSource interface {
	Shape(id uint16) (ShapeGrid, int, error)
}

// Piece is one physical polyomino in a player's inventory. The anchor is the
// board coordinate of the grid's top-left cell and may sit off the board
// until FixPos runs.
type Piece struct {
	id    uint16
	tiles int
	x, y  int
	grid  ShapeGrid
}

func NewPiece(src ShapeSource, id uint16, boardSize int) (*Piece, error) {
	grid, tiles, err := src.Shape(id)
	if err != nil {
		return nil, fmt.Errorf("error load shape %d: %w", id, err)
	}
	if grid.Count() != tiles {
		return nil, fmt.Errorf("error load shape %d: %w", id, ErrTileCount)
	}
	if w, h := grid.Extent(); w > boardSize || h > boardSize {
		return nil, fmt.Errorf("error load shape %d: %w", id, ErrPieceTooLarge)
	}
	return &Piece{id: id, tiles: tiles, grid: grid.Square()}, nil
}

func (p *Piece) ID() uint16 {
	return p.id
}

// Tiles is the filled-cell count of the untransformed shape.
func (p *Piece) Tiles() int {
	return p.tiles
}

func (p *Piece) X() int {
	return p.x
}

func (p *Piece) Y() int {
	return p.y
}

func (p *Piece) Grid() ShapeGrid {
	return p.grid
}

func (p *Piece) SetPos(x, y int) {
	p.x, p.y = x, y
}

// Cells returns the board coordinates of every filled cell.
func (p *Piece) Cells() []base.Point {
	cells := p.grid.Cells()
	for i := range cells {
		cells[i].X += p.x
		cells[i].Y += p.y
	}
	return cells
}

// Rotate turns the grid times%4 quarter turns. The anchor stays put.
func (p *Piece) Rotate(dir base.Rotation, times int) error {
	for i := ((times % 4) + 4) % 4; i > 0; i-- {
		g, err := p.grid.Rotate(dir)
		if err != nil {
			return err
		}
		p.grid = g
	}
	return nil
}

func (p *Piece) Flip(axis base.Axis, times int) {
	if times%2 != 0 {
		p.grid = p.grid.Flip(axis)
	}
}

func (p *Piece) Move(dir base.Direction) {
	dx, dy := dir.Delta()
	p.x += dx
	p.y += dy
}

// FixPos nudges the anchor one unit at a time until every filled cell lies
// inside [0, boardSize) on both axes. The scan restarts after each nudge.
func (p *Piece) FixPos(boardSize int) error {
	if w, h := p.grid.Extent(); w > boardSize || h > boardSize {
		return ErrPieceTooLarge
	}
	for p.nudge(boardSize) {
	}
	return nil
}

func (p *Piece) nudge(boardSize int) bool {
	for _, c := range p.grid.Cells() {
		col, row := p.x+c.X, p.y+c.Y
		switch {
		case col < 0:
			p.x++
		case col >= boardSize:
			p.x--
		case row < 0:
			p.y++
		case row >= boardSize:
			p.y--
		default:
			continue
		}
		return true
	}
	return false
}

// InBounds reports whether FixPos would leave the anchor unchanged.
func (p *Piece) InBounds(boardSize int) bool {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= boardSize || c.Y < 0 || c.Y >= boardSize {
			return false
		}
	}
	return true
}

func (p *Piece) Clone() *Piece {
	cp := *p
	return &cp
}
