package autotile

// Empty marks a cell that draws nothing. Occupied cells hold their variant,
// which is always >= 0.
const Empty = -1

// MaskGrid is a row-major grid of tile variants for one owner.
type MaskGrid struct {
	width  int
	height int
	cells  []int8
}

func NewMaskGrid(width, height int) *MaskGrid {
	g := &MaskGrid{width: width, height: height, cells: make([]int8, width*height)}
	g.Reset()
	return g
}

func (g *MaskGrid) Width() int {
	return g.width
}

func (g *MaskGrid) Height() int {
	return g.height
}

func (g *MaskGrid) Reset() {
	for i := range g.cells {
		g.cells[i] = Empty
	}
}

func (g *MaskGrid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// At returns Empty outside the grid.
func (g *MaskGrid) At(x, y int) int {
	if !g.InBounds(x, y) {
		return Empty
	}
	return int(g.cells[y*g.width+x])
}

func (g *MaskGrid) Set(x, y, v int) {
	if g.InBounds(x, y) {
		g.cells[y*g.width+x] = int8(v)
	}
}

func (g *MaskGrid) Occupied(x, y int) bool {
	return g.At(x, y) >= 0
}

// probe reports occupancy, substituting solid for neighbours off the grid.
func (g *MaskGrid) probe(x, y int, solid bool) bool {
	if !g.InBounds(x, y) {
		return solid
	}
	return g.cells[y*g.width+x] >= 0
}
