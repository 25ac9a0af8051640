package sprites

import (
	"blokus/src/autotile"
	"blokus/src/base"
	"blokus/src/geometry"
)

// TileShape autotiles a lone shape so previews join up like placed pieces.
// Empty cells hold autotile.Empty.
func TileShape(mode base.TilerMode, s geometry.ShapeGrid) (*autotile.MaskGrid, error) {
	g := autotile.NewMaskGrid(s.Width(), s.Height())
	for _, c := range s.Cells() {
		if mode == base.EightBit {
			if _, err := autotile.EightBit(g, c.X, c.Y, true, false); err != nil {
				return nil, err
			}
			continue
		}
		autotile.FourBit(g, c.X, c.Y, true, false)
	}
	return g, nil
}
