package history_test

import (
	"testing"

	"blokus/src/base"
	"blokus/src/logic/history"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(owner int, piece uint16, x, y int) history.Entry {
	return history.Entry{Owner: owner, Piece: piece, Anchor: base.Point{X: x, Y: y}, Cells: []base.Point{{X: x, Y: y}}}
}

func TestUndoRedo(t *testing.T) {
	h := history.NewHistory()
	_, err := h.Undo()
	assert.ErrorIs(t, err, history.ErrNothingToUndo)

	h.Push(entry(0, 7, 3, 4))
	h.Push(entry(1, 0, 16, 16))
	assert.Equal(t, "1. P0:#7@(3,4) 2. P1:#0@(16,16)", h.Log())

	e, err := h.Undo()
	require.NoError(t, err)
	assert.Equal(t, 1, e.Owner)
	assert.Equal(t, 1, h.Current())
	assert.Equal(t, 2, h.Len())

	e, err = h.Redo()
	require.NoError(t, err)
	assert.Equal(t, uint16(0), e.Piece)
	_, err = h.Redo()
	assert.ErrorIs(t, err, history.ErrNothingToRedo)
}

func TestPushTruncates(t *testing.T) {
	h := history.NewHistory()
	h.Push(entry(0, 1, 0, 0))
	h.Push(entry(0, 2, 5, 0))
	_, err := h.Undo()
	require.NoError(t, err)

	h.Push(entry(1, 3, 9, 9))
	assert.Equal(t, 2, h.Len())
	assert.Equal(t, "1. P0:#1@(0,0) 2. P1:#3@(9,9)", h.Log())
	_, err = h.Redo()
	assert.ErrorIs(t, err, history.ErrNothingToRedo)
}

func TestEntriesCopy(t *testing.T) {
	h := history.NewHistory()
	cells := []base.Point{{X: 1, Y: 1}}
	h.Push(history.Entry{Cells: cells})
	cells[0].X = 9
	assert.Equal(t, 1, h.Entries()[0].Cells[0].X)

	h.Clear()
	assert.Empty(t, h.Log())
	assert.Zero(t, h.Len())
}

func TestPeekKeepsCursor(t *testing.T) {
	h := history.NewHistory()
	_, err := h.PeekUndo()
	assert.ErrorIs(t, err, history.ErrNothingToUndo)

	h.Push(entry(0, 7, 3, 4))
	e, err := h.PeekUndo()
	require.NoError(t, err)
	assert.Equal(t, uint16(7), e.Piece)
	assert.Equal(t, 1, h.Current())
	_, err = h.PeekRedo()
	assert.ErrorIs(t, err, history.ErrNothingToRedo)

	_, err = h.Undo()
	require.NoError(t, err)
	e, err = h.PeekRedo()
	require.NoError(t, err)
	assert.Equal(t, uint16(7), e.Piece)
	assert.Zero(t, h.Current())
}
