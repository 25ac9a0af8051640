package sprites_test

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"blokus/src/autotile"
	"blokus/src/base"
	"blokus/src/geometry"
	"blokus/src/logic/board"
	"blokus/ui/sprites"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var blue = color.RGBA{R: 0x1e, G: 0x5a, B: 0xd6, A: 0xff}

func alphaAt(t *testing.T, s *sprites.Sheet, frame, dx, dy int) uint32 {
	t.Helper()
	r, err := s.FrameRect(frame)
	require.NoError(t, err)
	_, _, _, a := s.Image.At(r.Min.X+dx, r.Min.Y+dy).RGBA()
	return a
}

func TestSheetLayout(t *testing.T) {
	tests := []struct {
		mode       base.TilerMode
		cols, rows int
	}{
		{base.FourBit, 4, 4},
		{base.EightBit, 8, 6},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			s, err := sprites.NewSheet(tt.mode, 16, blue)
			require.NoError(t, err)
			assert.Equal(t, tt.cols*16, s.Image.Bounds().Dx())
			assert.Equal(t, tt.rows*16, s.Image.Bounds().Dy())

			last := tt.mode.Frames() - 1
			r, err := s.FrameRect(last)
			require.NoError(t, err)
			assert.Equal(t, 16, r.Dx())
			_, err = s.FrameRect(last + 1)
			assert.ErrorIs(t, err, sprites.ErrFrame)
			_, err = s.FrameRect(-1)
			assert.ErrorIs(t, err, sprites.ErrFrame)
		})
	}
}

func TestSheetCellSize(t *testing.T) {
	_, err := sprites.NewSheet(base.FourBit, 2, blue)
	assert.ErrorIs(t, err, sprites.ErrCellSize)
}

func TestFramesBridgeSides(t *testing.T) {
	s, err := sprites.NewSheet(base.FourBit, 32, blue)
	require.NoError(t, err)

	// centre is always painted in the fill colour
	r, _ := s.FrameRect(0)
	assert.Equal(t, blue, s.Image.At(r.Min.X+16, r.Min.Y+16))

	// left edge midpoint only painted when joined on the left
	assert.Zero(t, alphaAt(t, s, 0, 0, 16))
	assert.NotZero(t, alphaAt(t, s, autotile.Left|autotile.Right, 0, 16))
	assert.NotZero(t, alphaAt(t, s, autotile.Top, 16, 0))
	assert.Zero(t, alphaAt(t, s, autotile.Top, 16, 31))
}

func TestFourBitNeverFillsCorners(t *testing.T) {
	s, err := sprites.NewSheet(base.FourBit, 32, blue)
	require.NoError(t, err)
	joined := autotile.Right | autotile.Bottom
	assert.Zero(t, alphaAt(t, s, joined, 31, 31))
	assert.NotZero(t, alphaAt(t, s, joined, 31, 16))
	assert.NotZero(t, alphaAt(t, s, joined, 16, 31))
}

func TestEightBitCorners(t *testing.T) {
	s, err := sprites.NewSheet(base.EightBit, 32, blue)
	require.NoError(t, err)

	sidesOnly, err := autotile.BlobVariant(autotile.RightSide | autotile.BottomSide)
	require.NoError(t, err)
	filled, err := autotile.BlobVariant(autotile.RightSide | autotile.BottomSide | autotile.BottomRight)
	require.NoError(t, err)

	assert.Zero(t, alphaAt(t, s, sidesOnly, 31, 31))
	assert.Zero(t, alphaAt(t, s, sidesOnly, 28, 28))
	assert.NotZero(t, alphaAt(t, s, filled, 31, 31))
	assert.NotZero(t, alphaAt(t, s, filled, 28, 28))

	cross, err := autotile.BlobVariant(autotile.TopSide | autotile.LeftSide | autotile.RightSide | autotile.BottomSide)
	require.NoError(t, err)
	for _, c := range [][2]int{{0, 0}, {31, 0}, {0, 31}, {31, 31}} {
		assert.Zero(t, alphaAt(t, s, cross, c[0], c[1]), "corner %v", c)
	}
	assert.NotZero(t, alphaAt(t, s, cross, 0, 16))
	// the unused last frame stays blank
	assert.Zero(t, alphaAt(t, s, autotile.Variants, 16, 16))
}

func TestRenderBoard(t *testing.T) {
	b := board.NewBoard(board.Options{Size: 20, Players: 2})
	require.NoError(t, b.AddTile(1, 3, 2))

	white := color.RGBA{0xff, 0xff, 0xff, 0xff}
	red := color.RGBA{R: 0xd6, G: 0x2b, B: 0x2b, A: 0xff}
	img, err := sprites.RenderBoard(b, 16, []color.RGBA{blue, red}, white)
	require.NoError(t, err)
	assert.Equal(t, 320, img.Bounds().Dx())
	assert.Equal(t, red, img.At(3*16+8, 2*16+8))
	assert.Equal(t, white, img.At(10*16+8, 10*16+8))

	_, err = sprites.RenderBoard(b, 16, []color.RGBA{blue}, white)
	assert.Error(t, err)
}

func TestSavePNG(t *testing.T) {
	s, err := sprites.NewSheet(base.FourBit, 8, blue)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "sheet.png")
	require.NoError(t, s.SavePNG(path))
	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, fi.Size())
}

func TestTileShape(t *testing.T) {
	s, err := geometry.ParseShapeGrid("110", "011")
	require.NoError(t, err)

	g, err := sprites.TileShape(base.FourBit, s)
	require.NoError(t, err)
	assert.Equal(t, autotile.Right, g.At(0, 0))
	assert.Equal(t, autotile.Left|autotile.Bottom, g.At(1, 0))
	assert.Equal(t, autotile.Empty, g.At(2, 0))
	assert.Equal(t, autotile.Top|autotile.Right, g.At(1, 1))

	g, err = sprites.TileShape(base.EightBit, s)
	require.NoError(t, err)
	want, err := autotile.BlobVariant(autotile.LeftSide)
	require.NoError(t, err)
	assert.Equal(t, want, g.At(2, 1))
}
