package history

import (
	"errors"
	"fmt"
	"strings"

	"blokus/src/base"
)

var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// truncating history of placements
type History struct {
	entries []Entry
	current int // entries[:current] are applied
}

type Entry struct {
	Owner  int
	Piece  uint16
	Anchor base.Point
	Cells  []base.Point // board cells stamped by the placement
}

func NewHistory() *History {
	return &History{entries: make([]Entry, 0)}
}

func (h *History) Len() int     { return len(h.entries) }
func (h *History) Current() int { return h.current }

func (h *History) Entries() []Entry {
	out := make([]Entry, h.current)
	copy(out, h.entries[:h.current])
	return out
}

// Push records a placement and drops any undone entries after it.
func (h *History) Push(e Entry) {
	if h.current < len(h.entries) {
		h.entries = h.entries[:h.current]
	}
	e.Cells = append([]base.Point(nil), e.Cells...)
	h.entries = append(h.entries, e)
	h.current++
}

// PeekUndo returns the entry Undo would revert without moving the cursor.
func (h *History) PeekUndo() (Entry, error) {
	if h.current == 0 {
		return Entry{}, ErrNothingToUndo
	}
	return h.entries[h.current-1], nil
}

// PeekRedo returns the entry Redo would reapply without moving the cursor.
func (h *History) PeekRedo() (Entry, error) {
	if h.current >= len(h.entries) {
		return Entry{}, ErrNothingToRedo
	}
	return h.entries[h.current], nil
}

// Undo steps back and returns the entry to revert.
func (h *History) Undo() (Entry, error) {
	e, err := h.PeekUndo()
	if err != nil {
		return e, err
	}
	h.current--
	return e, nil
}

// Redo steps forward and returns the entry to reapply.
func (h *History) Redo() (Entry, error) {
	e, err := h.PeekRedo()
	if err != nil {
		return e, err
	}
	h.current++
	return e, nil
}

func (h *History) Clear() {
	h.entries = h.entries[:0]
	h.current = 0
}

// Log returns the applied placements
// example: "1. P0:#7@(3,4) 2. P1:#0@(16,16)"
func (h *History) Log() string {
	var b strings.Builder
	for i, e := range h.entries[:h.current] {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(fmt.Sprintf("%d. P%d:#%d@(%d,%d)", i+1, e.Owner, e.Piece, e.Anchor.X, e.Anchor.Y))
	}
	return b.String()
}
