package polyomino

type SetType int

const (
	SetBase SetType = iota
	SetHexomino
	SetHeptomino
	SetOctomino
	SetNonomino
	SetDecomino

	SetCount = 6
)

var (
	amounts    = [SetCount]int{21, 35, 108, 369, 1285, 4655}
	tilesEach  = [SetCount]int{0, 6, 7, 8, 9, 10}
	tileTotals = [SetCount]int{89, 210, 756, 2952, 11565, 46550}
	setMins    = [SetCount]int{1, 0, 0, 0, 0, 0}
	setMaxes   = [SetCount]int{12, 4, 2, 1, 0, 0}
	setNames   = [SetCount]string{"base", "hexominoes", "heptominoes", "octominoes", "nonominoes", "decominoes"}
)

func (s SetType) Valid() bool {
	return s >= SetBase && s < SetCount
}

func (s SetType) String() string {
	if !s.Valid() {
		return "invalid"
	}
	return setNames[s]
}

// Amount is the number of distinct shapes in one copy of the set.
func (s SetType) Amount() int {
	if !s.Valid() {
		return 0
	}
	return amounts[s]
}

// TilesPerPiece is 0 for the base set, whose pieces have mixed sizes.
func (s SetType) TilesPerPiece() int {
	if !s.Valid() {
		return 0
	}
	return tilesEach[s]
}

func (s SetType) TileTotal() int {
	if !s.Valid() {
		return 0
	}
	return tileTotals[s]
}

// FirstID is the global id of the set's first shape.
func (s SetType) FirstID() uint16 {
	id := 0
	for t := SetBase; t < s && t.Valid(); t++ {
		id += amounts[t]
	}
	return uint16(id)
}

// ClampSets bounds the number of copies of a set allowed in one game.
func ClampSets(s SetType, n int) int {
	if !s.Valid() {
		return 0
	}
	if n > setMaxes[s] {
		return setMaxes[s]
	}
	if n < setMins[s] {
		return setMins[s]
	}
	return n
}

// SetOf splits a global shape id into its set and index within the set.
func SetOf(id uint16) (SetType, int, bool) {
	rest := int(id)
	for t := SetBase; t < SetCount; t++ {
		if rest < amounts[t] {
			return t, rest, true
		}
		rest -= amounts[t]
	}
	return 0, 0, false
}

func SetFromString(name string) (SetType, bool) {
	for t := SetBase; t < SetCount; t++ {
		if setNames[t] == name {
			return t, true
		}
	}
	return 0, false
}

// SetForTiles maps a uniform piece size to its set; sizes 1..5 are base.
func SetForTiles(n int) (SetType, bool) {
	if n >= 1 && n <= 5 {
		return SetBase, true
	}
	for t := SetHexomino; t < SetCount; t++ {
		if tilesEach[t] == n {
			return t, true
		}
	}
	return 0, false
}
