package autotile

import (
	"errors"
	"fmt"
)

// 4-bit mask bits.
const (
	Top    = 1
	Left   = 2
	Right  = 4
	Bottom = 8
)

// 8-bit mask bits. A corner bit is only set when both sides it joins are set.
const (
	TopLeft     = 1
	TopSide     = 2
	TopRight    = 4
	LeftSide    = 8
	RightSide   = 16
	BottomLeft  = 32
	BottomSide  = 64
	BottomRight = 128
)

const (
	// OutOfBounds is returned when the changed cell is off the grid.
	OutOfBounds = -1
	// Isolated is the stored 8-bit variant of a tile with no neighbours.
	Isolated = 0
	// Variants is the number of distinct 8-bit variants.
	Variants = len(blobKey) + 1
)

var ErrUnrealizableMask = errors.New("unrealizable 8-bit mask")

// blobKey lists every realizable nonzero 8-bit mask; the stored variant of a
// mask is its position here plus one.
var blobKey = [...]uint8{
	2, 8, 10, 11, 16, 18, 22, 24, 26, 27, 30, 31,
	64, 66, 72, 74, 75, 80, 82, 86, 88, 90, 91, 94, 95,
	104, 106, 107, 120, 122, 123, 126, 127,
	208, 210, 214, 216, 218, 219, 222, 223,
	248, 250, 251, 254, 255,
}

var blobIndex = func() map[uint8]int {
	m := make(map[uint8]int, len(blobKey))
	for i, k := range blobKey {
		m[k] = i
	}
	return m
}()

// FourBit adds or removes the tile at (x, y) and recomputes the 4-bit mask of
// it and its orthogonal neighbours. It returns the new value of (x, y), which
// is Empty after a removal.
func FourBit(g *MaskGrid, x, y int, addTile, solidBoundaries bool) int {
	if !g.InBounds(x, y) {
		return OutOfBounds
	}
	touch(g, x, y, addTile)

	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx != 0 && dy != 0 {
				continue
			}
			cx, cy := x+dx, y+dy
			if !g.Occupied(cx, cy) {
				continue
			}
			g.Set(cx, cy, FourBitMask(g, cx, cy, solidBoundaries))
		}
	}
	return g.At(x, y)
}

// FourBitMask computes the mask of (x, y) without storing it.
func FourBitMask(g *MaskGrid, x, y int, solidBoundaries bool) int {
	mask := 0
	if g.probe(x, y-1, solidBoundaries) {
		mask |= Top
	}
	if g.probe(x-1, y, solidBoundaries) {
		mask |= Left
	}
	if g.probe(x+1, y, solidBoundaries) {
		mask |= Right
	}
	if g.probe(x, y+1, solidBoundaries) {
		mask |= Bottom
	}
	return mask
}

// EightBit adds or removes the tile at (x, y) and recomputes the variant of
// every occupied cell in its 3x3 neighbourhood.
func EightBit(g *MaskGrid, x, y int, addTile, solidBoundaries bool) (int, error) {
	if !g.InBounds(x, y) {
		return OutOfBounds, nil
	}
	touch(g, x, y, addTile)

	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			cx, cy := x+dx, y+dy
			if !g.Occupied(cx, cy) {
				continue
			}
			v, err := BlobVariant(EightBitMask(g, cx, cy, solidBoundaries))
			if err != nil {
				return OutOfBounds, fmt.Errorf("error retile (%d,%d): %w", cx, cy, err)
			}
			g.Set(cx, cy, v)
		}
	}
	return g.At(x, y), nil
}

// EightBitMask computes the raw corner-suppressed mask of (x, y).
func EightBitMask(g *MaskGrid, x, y int, solidBoundaries bool) uint8 {
	t := g.probe(x, y-1, solidBoundaries)
	l := g.probe(x-1, y, solidBoundaries)
	r := g.probe(x+1, y, solidBoundaries)
	b := g.probe(x, y+1, solidBoundaries)

	var mask uint8
	if t && l && g.probe(x-1, y-1, solidBoundaries) {
		mask |= TopLeft
	}
	if t {
		mask |= TopSide
	}
	if t && r && g.probe(x+1, y-1, solidBoundaries) {
		mask |= TopRight
	}
	if l {
		mask |= LeftSide
	}
	if r {
		mask |= RightSide
	}
	if b && l && g.probe(x-1, y+1, solidBoundaries) {
		mask |= BottomLeft
	}
	if b {
		mask |= BottomSide
	}
	if b && r && g.probe(x+1, y+1, solidBoundaries) {
		mask |= BottomRight
	}
	return mask
}

// BlobVariant maps a raw 8-bit mask to its stored variant.
func BlobVariant(mask uint8) (int, error) {
	if mask == 0 {
		return Isolated, nil
	}
	i, ok := blobIndex[mask]
	if !ok {
		return OutOfBounds, fmt.Errorf("%w: %d", ErrUnrealizableMask, mask)
	}
	return i + 1, nil
}

// BlobMask is the inverse of BlobVariant.
func BlobMask(variant int) (uint8, bool) {
	if variant == Isolated {
		return 0, true
	}
	if variant < 1 || variant > len(blobKey) {
		return 0, false
	}
	return blobKey[variant-1], true
}

func touch(g *MaskGrid, x, y int, addTile bool) {
	if addTile {
		g.Set(x, y, 0)
	} else {
		g.Set(x, y, Empty)
	}
}
