package polyomino

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"blokus/src/geometry"
)

var (
	ErrUnknownShape = errors.New("unknown shape")
	ErrSetTooLarge  = errors.New("set has more shapes than allowed")
	ErrWrongTiles   = errors.New("shape has wrong tile count")
)

//go:embed shapes/base.txt
var baseShapes []byte

// Library holds the loaded shape sets. It implements geometry.ShapeSource.
type Library struct {
	sets [SetCount][]geometry.ShapeGrid
}

func NewLibrary() *Library {
	return &Library{}
}

// Default returns a library holding the embedded base set.
func Default() *Library {
	l := NewLibrary()
	if err := l.Load(SetBase, bytes.NewReader(baseShapes)); err != nil {
		panic(fmt.Sprintf("embedded base set: %v", err))
	}
	return l
}

// Load parses r in either file format and installs it as set s.
func (l *Library) Load(s SetType, r io.Reader) error {
	if !s.Valid() {
		return ErrUnknownShape
	}
	shapes, err := Read(r)
	if err != nil {
		return fmt.Errorf("error read %s: %w", s, err)
	}
	if len(shapes) > s.Amount() {
		return fmt.Errorf("error read %s: %w", s, ErrSetTooLarge)
	}
	if n := s.TilesPerPiece(); n > 0 {
		for i, sh := range shapes {
			if sh.Count() != n {
				return fmt.Errorf("error read %s shape %d: %w", s, i, ErrWrongTiles)
			}
		}
	}
	l.sets[s] = shapes
	return nil
}

func (l *Library) LoadFile(s SetType, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return l.Load(s, f)
}

// Loaded reports how many shapes of set s are available.
func (l *Library) Loaded(s SetType) int {
	if !s.Valid() {
		return 0
	}
	return len(l.sets[s])
}

// Shape returns the grid for a global id and its tile count.
func (l *Library) Shape(id uint16) (geometry.ShapeGrid, int, error) {
	s, idx, ok := SetOf(id)
	if !ok || idx >= len(l.sets[s]) {
		return geometry.ShapeGrid{}, 0, fmt.Errorf("%w: %d", ErrUnknownShape, id)
	}
	g := l.sets[s][idx]
	return g, g.Count(), nil
}

// IDs lists the global ids of every loaded shape of set s.
func (l *Library) IDs(s SetType) []uint16 {
	if !s.Valid() {
		return nil
	}
	first := s.FirstID()
	out := make([]uint16, len(l.sets[s]))
	for i := range out {
		out[i] = first + uint16(i)
	}
	return out
}
