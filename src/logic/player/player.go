package player

import (
	"errors"
	"fmt"
	"image/color"

	"blokus/src/polyomino"

	"github.com/kamstrup/intmap"
)

var ErrNoPiece = errors.New("piece not in inventory")

type Player struct {
	name   string
	colour color.RGBA
	copies [polyomino.SetCount]int
	ids    []uint16                 // every id ever held, ascending
	counts *intmap.Map[uint16, int] // instances left per shape id
	tiles  *intmap.Map[uint16, int] // tile count per shape id
}

// New gives the player copies[s] instances of every loaded shape of set s.
// Copy counts are clamped per set.
func New(name string, colour color.RGBA, lib *polyomino.Library, copies [polyomino.SetCount]int) (*Player, error) {
	p := &Player{
		name:   name,
		colour: colour,
		counts: intmap.New[uint16, int](32),
		tiles:  intmap.New[uint16, int](32),
	}
	for s := polyomino.SetBase; s < polyomino.SetCount; s++ {
		n := polyomino.ClampSets(s, copies[s])
		p.copies[s] = n
		if n == 0 {
			continue
		}
		for _, id := range lib.IDs(s) {
			_, tiles, err := lib.Shape(id)
			if err != nil {
				return nil, fmt.Errorf("error build inventory of %s: %w", name, err)
			}
			p.ids = append(p.ids, id)
			p.counts.Put(id, n)
			p.tiles.Put(id, tiles)
		}
	}
	return p, nil
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) Colour() color.RGBA {
	return p.colour
}

// Copies is the clamped number of copies of set s this player holds.
func (p *Player) Copies(s polyomino.SetType) int {
	if !s.Valid() {
		return 0
	}
	return p.copies[s]
}

func (p *Player) Count(id uint16) int {
	n, _ := p.counts.Get(id)
	return n
}

func (p *Player) Has(id uint16) bool {
	return p.Count(id) > 0
}

// Take removes one instance of id.
func (p *Player) Take(id uint16) error {
	n, ok := p.counts.Get(id)
	if !ok || n == 0 {
		return fmt.Errorf("%w: %d", ErrNoPiece, id)
	}
	if n == 1 {
		p.counts.Del(id)
	} else {
		p.counts.Put(id, n-1)
	}
	return nil
}

// Return puts one instance of id back, e.g. after an undo.
func (p *Player) Return(id uint16) {
	if _, ok := p.tiles.Get(id); !ok {
		return
	}
	p.counts.Put(id, p.Count(id)+1)
}

// Pieces lists the distinct ids still available, ascending.
func (p *Player) Pieces() []uint16 {
	out := make([]uint16, 0, p.counts.Len())
	for _, id := range p.ids {
		if p.Has(id) {
			out = append(out, id)
		}
	}
	return out
}

// Next returns the first available id after cur, wrapping around.
func (p *Player) Next(cur uint16) (uint16, bool) {
	ids := p.Pieces()
	if len(ids) == 0 {
		return 0, false
	}
	for _, id := range ids {
		if id > cur {
			return id, true
		}
	}
	return ids[0], true
}

func (p *Player) RemainingPieces(s polyomino.SetType) int {
	n := 0
	for _, id := range p.Pieces() {
		if set, _, _ := polyomino.SetOf(id); set == s {
			n += p.Count(id)
		}
	}
	return n
}

func (p *Player) RemainingTiles(s polyomino.SetType) int {
	n := 0
	for _, id := range p.Pieces() {
		if set, _, _ := polyomino.SetOf(id); set == s {
			t, _ := p.tiles.Get(id)
			n += p.Count(id) * t
		}
	}
	return n
}

func (p *Player) TotalPieces() int {
	n := 0
	for s := polyomino.SetBase; s < polyomino.SetCount; s++ {
		n += p.RemainingPieces(s)
	}
	return n
}

func (p *Player) TotalTiles() int {
	n := 0
	for s := polyomino.SetBase; s < polyomino.SetCount; s++ {
		n += p.RemainingTiles(s)
	}
	return n
}
