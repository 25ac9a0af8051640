package autotile_test

import (
	"fmt"
	"testing"

	"blokus/src/autotile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFourBitIsolatedCenter(t *testing.T) {
	g := autotile.NewMaskGrid(3, 3)
	v := autotile.FourBit(g, 1, 1, true, false)
	assert.Equal(t, 0, v)

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x == 1 && y == 1 {
				continue
			}
			assert.Less(t, g.At(x, y), 0, "(%d,%d)", x, y)
		}
	}
}

func TestFourBitVerticalPair(t *testing.T) {
	g := autotile.NewMaskGrid(3, 3)
	autotile.FourBit(g, 1, 0, true, false)
	v := autotile.FourBit(g, 1, 1, true, false)

	assert.Equal(t, autotile.Top, v&autotile.Top)
	assert.Equal(t, autotile.Top, v)
	assert.Equal(t, autotile.Bottom, g.At(1, 0)&autotile.Bottom)
	assert.Equal(t, autotile.Bottom, g.At(1, 0))
}

func TestFourBitRemove(t *testing.T) {
	g := autotile.NewMaskGrid(3, 3)
	autotile.FourBit(g, 1, 0, true, false)
	autotile.FourBit(g, 1, 1, true, false)

	v := autotile.FourBit(g, 1, 1, false, false)
	assert.Equal(t, autotile.Empty, v)
	assert.Equal(t, 0, g.At(1, 0))
}

func TestFourBitSolidBoundaries(t *testing.T) {
	g := autotile.NewMaskGrid(3, 3)
	v := autotile.FourBit(g, 0, 0, true, true)
	assert.Equal(t, autotile.Top|autotile.Left, v)

	v = autotile.FourBit(g, 2, 2, true, true)
	assert.Equal(t, autotile.Right|autotile.Bottom, v)
}

func TestFourBitPlus(t *testing.T) {
	g := autotile.NewMaskGrid(3, 3)
	for _, p := range [][2]int{{1, 0}, {0, 1}, {2, 1}, {1, 2}} {
		autotile.FourBit(g, p[0], p[1], true, false)
	}
	v := autotile.FourBit(g, 1, 1, true, false)
	assert.Equal(t, 15, v)
	assert.Equal(t, autotile.Bottom, g.At(1, 0))
	assert.Equal(t, autotile.Right, g.At(0, 1))
	assert.Equal(t, autotile.Left, g.At(2, 1))
	assert.Equal(t, autotile.Top, g.At(1, 2))
	assert.Equal(t, autotile.Empty, g.At(0, 0))
}

func TestFourBitOutOfBounds(t *testing.T) {
	g := autotile.NewMaskGrid(3, 3)
	assert.Equal(t, autotile.OutOfBounds, autotile.FourBit(g, 3, 0, true, false))
	assert.Equal(t, autotile.OutOfBounds, autotile.FourBit(g, 0, -1, true, false))
}

func TestFourBitRange(t *testing.T) {
	g := autotile.NewMaskGrid(5, 5)
	for i := 0; i < 25; i += 2 {
		autotile.FourBit(g, i%5, i/5, true, i%3 == 0)
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			v := g.At(x, y)
			assert.True(t, v == autotile.Empty || (v >= 0 && v < 16))
		}
	}
}

func TestEightBitIsolated(t *testing.T) {
	g := autotile.NewMaskGrid(3, 3)
	v, err := autotile.EightBit(g, 1, 1, true, false)
	require.NoError(t, err)
	assert.Equal(t, autotile.Isolated, v)
	assert.Equal(t, 0, v)
}

func TestEightBitCornerSuppression(t *testing.T) {
	g := autotile.NewMaskGrid(3, 3)
	_, err := autotile.EightBit(g, 0, 0, true, false)
	require.NoError(t, err)
	v, err := autotile.EightBit(g, 1, 1, true, false)
	require.NoError(t, err)

	assert.Equal(t, uint8(0), autotile.EightBitMask(g, 1, 1, false)&autotile.TopLeft)
	assert.Equal(t, autotile.Isolated, v)
	assert.Equal(t, autotile.Isolated, g.At(0, 0))
}

func TestEightBitCornerCounts(t *testing.T) {
	g := autotile.NewMaskGrid(2, 2)
	for _, p := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		_, err := autotile.EightBit(g, p[0], p[1], true, false)
		require.NoError(t, err)
	}
	mask := autotile.EightBitMask(g, 1, 1, false)
	assert.Equal(t, uint8(autotile.TopLeft|autotile.TopSide|autotile.LeftSide), mask)

	want, err := autotile.BlobVariant(mask)
	require.NoError(t, err)
	assert.Equal(t, want, g.At(1, 1))
}

func TestEightBitDiagonalNeighbourRetiled(t *testing.T) {
	g := autotile.NewMaskGrid(3, 3)
	for _, p := range [][2]int{{0, 0}, {1, 0}, {0, 1}} {
		_, err := autotile.EightBit(g, p[0], p[1], true, false)
		require.NoError(t, err)
	}
	before := g.At(0, 0)
	_, err := autotile.EightBit(g, 1, 1, true, false)
	require.NoError(t, err)
	assert.NotEqual(t, before, g.At(0, 0))

	mask := autotile.EightBitMask(g, 0, 0, false)
	assert.Equal(t, uint8(autotile.RightSide|autotile.BottomSide|autotile.BottomRight), mask)
}

func TestEightBitSolidFull(t *testing.T) {
	g := autotile.NewMaskGrid(1, 1)
	v, err := autotile.EightBit(g, 0, 0, true, true)
	require.NoError(t, err)
	last, err := autotile.BlobVariant(255)
	require.NoError(t, err)
	assert.Equal(t, last, v)
	assert.Equal(t, 46, v)
}

func TestEightBitOutOfBounds(t *testing.T) {
	g := autotile.NewMaskGrid(3, 3)
	v, err := autotile.EightBit(g, 5, 5, true, false)
	require.NoError(t, err)
	assert.Equal(t, autotile.OutOfBounds, v)
}

func TestBlobVariantTable(t *testing.T) {
	seen := map[int]bool{}
	for m := 0; m < 256; m++ {
		mask := uint8(m)
		t.Run(fmt.Sprintf("mask%d", m), func(t *testing.T) {
			v, err := autotile.BlobVariant(mask)
			if !realizable(mask) {
				assert.ErrorIs(t, err, autotile.ErrUnrealizableMask)
				return
			}
			require.NoError(t, err)
			assert.False(t, seen[v])
			seen[v] = true
			assert.GreaterOrEqual(t, v, 0)
			assert.Less(t, v, 48)

			back, ok := autotile.BlobMask(v)
			require.True(t, ok)
			assert.Equal(t, mask, back)
		})
	}
	assert.Len(t, seen, autotile.Variants)
	assert.Equal(t, 47, autotile.Variants)

	_, ok := autotile.BlobMask(47)
	assert.False(t, ok)
}

func realizable(m uint8) bool {
	corner := func(c, a, b uint8) bool { return m&c == 0 || (m&a != 0 && m&b != 0) }
	return corner(autotile.TopLeft, autotile.TopSide, autotile.LeftSide) &&
		corner(autotile.TopRight, autotile.TopSide, autotile.RightSide) &&
		corner(autotile.BottomLeft, autotile.BottomSide, autotile.LeftSide) &&
		corner(autotile.BottomRight, autotile.BottomSide, autotile.RightSide)
}

// Every cell the incremental update touches must agree with a full recompute.
func TestIncrementalMatchesFull(t *testing.T) {
	g4 := autotile.NewMaskGrid(6, 6)
	g8 := autotile.NewMaskGrid(6, 6)
	order := []int{7, 8, 14, 20, 21, 22, 0, 35, 28, 29, 15, 9, 8, 3, 4, 10}
	for n, i := range order {
		add := n != 12
		autotile.FourBit(g4, i%6, i/6, add, false)
		_, err := autotile.EightBit(g8, i%6, i/6, add, false)
		require.NoError(t, err)
	}
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			if !g4.Occupied(x, y) {
				assert.False(t, g8.Occupied(x, y))
				continue
			}
			assert.Equal(t, autotile.FourBitMask(g4, x, y, false), g4.At(x, y))
			want, err := autotile.BlobVariant(autotile.EightBitMask(g8, x, y, false))
			require.NoError(t, err)
			assert.Equal(t, want, g8.At(x, y))
		}
	}
}
