package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"blokus/src"
	"blokus/src/autotile"
	"blokus/src/base"
	"blokus/src/logic/board"
	"blokus/src/logx"
	"blokus/ui/cli"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGame(t *testing.T) *src.GameBuilder {
	t.Helper()
	gb := src.NewBuilderGame(logx.NewNop())
	require.NoError(t, gb.Create(src.GameOptions{Board: board.Options{Size: 20, Players: 2}}))
	return gb
}

func TestLineMode(t *testing.T) {
	gb := newGame(t)
	var out bytes.Buffer
	c := cli.NewCLI(gb, cli.PrintBoard)
	c.SetIO(strings.NewReader("at 5 5\nplace\nbogus\nlog\nq\nplace\n"), &out)

	require.NoError(t, c.RunLineMode())
	assert.Equal(t, 1, gb.Board().Placed())
	assert.Contains(t, out.String(), "Invalid command \"bogus\"")
	assert.Contains(t, out.String(), "1. P0:#0@(5,5)")
}

func TestCommands(t *testing.T) {
	gb := newGame(t)
	c := cli.NewCLI(gb, nil)
	c.SetIO(strings.NewReader(""), &bytes.Buffer{})

	require.NoError(t, c.Command("at 3 3"))
	require.NoError(t, c.Command("n"))
	assert.Equal(t, 4, gb.Piece().Y())
	require.NoError(t, c.Command("w"))
	assert.Equal(t, 2, gb.Piece().X())

	require.NoError(t, c.Command("player 2"))
	assert.Equal(t, 1, gb.Current())
	assert.Error(t, c.Command("player 7"))
	assert.Error(t, c.Command("at 1"))
	require.NoError(t, c.Command("select 4"))
	assert.Equal(t, uint16(4), gb.Piece().ID())
}

func TestKeys(t *testing.T) {
	gb := newGame(t)
	c := cli.NewCLI(gb, nil)
	c.SetIO(strings.NewReader(""), &bytes.Buffer{})

	require.NoError(t, c.Key('\t'))
	assert.Equal(t, uint16(1), gb.Piece().ID())
	require.NoError(t, c.Key(' '))
	assert.Equal(t, 1, gb.Board().Placed())
	require.NoError(t, c.Key('u'))
	assert.Equal(t, 0, gb.Board().Placed())
	require.NoError(t, c.Key('y'))
	assert.Equal(t, 1, gb.Board().Placed())
	require.NoError(t, c.Key('2'))
	assert.Equal(t, 1, gb.Current())
	assert.Error(t, c.Key('q'))
}

func TestGlyphs(t *testing.T) {
	assert.Equal(t, "·", cli.Glyph(0))
	assert.Equal(t, "┼", cli.Glyph(15))
	assert.Equal(t, "?", cli.Glyph(16))

	v, err := autotile.BlobVariant(autotile.TopSide | autotile.RightSide | autotile.TopRight)
	require.NoError(t, err)
	assert.Equal(t, autotile.Top|autotile.Right, cli.SideMask(base.EightBit, v))
	assert.Equal(t, 9, cli.SideMask(base.FourBit, 9))
}

func TestPrintBoard(t *testing.T) {
	gb := newGame(t)
	require.NoError(t, gb.MoveTo(0, 0))
	require.NoError(t, gb.Place())

	var out bytes.Buffer
	cli.PrintBoard(&out, gb)
	cli.PrintStatus(&out, gb)
	assert.Contains(t, out.String(), "Player 1")
	assert.Contains(t, out.String(), "20 pieces, 88 tiles")
}
