package board_test

import (
	"testing"

	"blokus/src/autotile"
	"blokus/src/base"
	"blokus/src/geometry"
	"blokus/src/logic/board"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shapes map[uint16]geometry.ShapeGrid

func (s shapes) Shape(id uint16) (geometry.ShapeGrid, int, error) {
	g := s[id]
	return g, g.Count(), nil
}

func piece(t *testing.T, rows ...string) *geometry.Piece {
	t.Helper()
	g, err := geometry.ParseShapeGrid(rows...)
	require.NoError(t, err)
	p, err := geometry.NewPiece(shapes{1: g}, 1, 20)
	require.NoError(t, err)
	return p
}

func TestNewBoardClamps(t *testing.T) {
	b := board.NewBoard(board.Options{Size: 5, Players: 9})
	assert.Equal(t, base.MinBoardSize, b.Size())
	assert.Equal(t, base.MaxPlayers, b.Players())
	assert.Nil(t, b.Layer(9))
	assert.Equal(t, base.EmptyCell, b.Raw(-1, 0))
}

func TestPlaceFourBit(t *testing.T) {
	b := board.NewBoard(board.Options{Size: 20, Players: 2, Mode: base.FourBit})
	p := piece(t, "111")
	p.SetPos(2, 3)
	require.NoError(t, b.Place(1, p))

	assert.Equal(t, 1, b.Placed())
	assert.Equal(t, 3, b.Tiles(1))
	assert.Equal(t, 0, b.Tiles(0))

	want := map[int]int{2: autotile.Right, 3: autotile.Left | autotile.Right, 4: autotile.Left}
	for x, mask := range want {
		owner, variant, ok := b.Cell(x, 3)
		require.True(t, ok)
		assert.Equal(t, 1, owner)
		assert.Equal(t, mask, variant, "x=%d", x)
		assert.Equal(t, variant, b.Layer(1).At(x, 3))
	}
	_, _, ok := b.Cell(5, 3)
	assert.False(t, ok)
}

func TestPlaceRejects(t *testing.T) {
	b := board.NewBoard(board.Options{Size: 20, Players: 2})
	p := piece(t, "11")
	p.SetPos(19, 0)
	assert.ErrorIs(t, b.Place(0, p), board.ErrOutOfBoard)

	p.SetPos(0, 0)
	require.NoError(t, b.Place(0, p))
	q := piece(t, "1", "1")
	q.SetPos(1, 0)
	assert.ErrorIs(t, b.Place(1, q), board.ErrCellOccupied)
	assert.ErrorIs(t, b.Place(2, q), board.ErrBadOwner)
	assert.Equal(t, 1, b.Placed())
	assert.Equal(t, 0, b.Tiles(1))
}

func TestPlayersDoNotJoin(t *testing.T) {
	b := board.NewBoard(board.Options{Size: 20, Players: 2})
	require.NoError(t, b.AddTile(0, 5, 5))
	require.NoError(t, b.AddTile(1, 6, 5))

	_, v, _ := b.Cell(5, 5)
	assert.Equal(t, 0, v)
	o, v, _ := b.Cell(6, 5)
	assert.Equal(t, 1, o)
	assert.Equal(t, 0, v)
}

func TestEightBitPacked(t *testing.T) {
	b := board.NewBoard(board.Options{Size: 20, Players: 4, Mode: base.EightBit})
	p := piece(t, "11", "11")
	p.SetPos(0, 0)
	require.NoError(t, b.Place(3, p))

	for _, c := range p.Cells() {
		owner, variant, ok := b.Cell(c.X, c.Y)
		require.True(t, ok)
		assert.Equal(t, 3, owner)
		assert.Equal(t, b.Layer(3).At(c.X, c.Y), variant)
		assert.Less(t, variant, autotile.Variants)
	}
	// top-left of a 2x2 block sees right, bottom and the corner between them
	mask, ok := autotile.BlobMask(b.Layer(3).At(0, 0))
	require.True(t, ok)
	assert.Equal(t, uint8(autotile.RightSide|autotile.BottomSide|autotile.BottomRight), mask)
}

func TestRemoveRetiles(t *testing.T) {
	b := board.NewBoard(board.Options{Size: 20, Players: 2})
	p := piece(t, "111")
	p.SetPos(0, 0)
	require.NoError(t, b.Place(0, p))

	require.NoError(t, b.Remove(1, 0))
	assert.Equal(t, 2, b.Tiles(0))
	_, _, ok := b.Cell(1, 0)
	assert.False(t, ok)
	_, v, _ := b.Cell(0, 0)
	assert.Equal(t, 0, v)
	_, v, _ = b.Cell(2, 0)
	assert.Equal(t, 0, v)

	require.NoError(t, b.Remove(10, 10))
}

func TestSolidBoundaries(t *testing.T) {
	b := board.NewBoard(board.Options{Size: 20, Players: 2, SolidBoundaries: true})
	require.NoError(t, b.AddTile(0, 0, 0))
	_, v, _ := b.Cell(0, 0)
	assert.Equal(t, autotile.Top|autotile.Left, v)
}

func TestClear(t *testing.T) {
	b := board.NewBoard(board.Options{Size: 20, Players: 2})
	p := piece(t, "11")
	require.NoError(t, b.Place(1, p))
	b.Clear()
	assert.Equal(t, 0, b.Placed())
	assert.Equal(t, 0, b.Tiles(1))
	assert.Equal(t, base.EmptyCell, b.Raw(0, 0))
	assert.False(t, b.Layer(1).Occupied(0, 0))
}

func TestLiftRestores(t *testing.T) {
	b := board.NewBoard(board.Options{Size: 20, Players: 2, Mode: base.EightBit})
	p := piece(t, "11", "1.")
	p.SetPos(4, 4)
	require.NoError(t, b.AddTile(0, 6, 4))
	before := b.Raw(6, 4)

	require.NoError(t, b.Place(0, p))
	assert.NotEqual(t, before, b.Raw(6, 4))

	require.NoError(t, b.Lift(p.Cells()))
	assert.Equal(t, 0, b.Placed())
	assert.Equal(t, 1, b.Tiles(0))
	assert.Equal(t, before, b.Raw(6, 4))
	for _, c := range p.Cells() {
		assert.Equal(t, base.EmptyCell, b.Raw(c.X, c.Y))
	}
}
