package cli

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"blokus/src"
	"blokus/src/autotile"
	"blokus/src/base"
	"blokus/src/logic/board"
)

// ANSI-code
const (
	reset   = "\033[0m"
	emptyBg = "\033[100m"
	dimF    = "\033[90m"
	badBg   = "\033[41m"
)

// box glyph per 4-bit mask, bits top=1 left=2 right=4 bottom=8
var glyphs = [16]string{
	"·", "╵", "╴", "┘", "╶", "└", "─", "┴",
	"╷", "│", "┐", "┤", "┌", "├", "┬", "┼",
}

func Glyph(mask int) string {
	if mask < 0 || mask >= len(glyphs) {
		return "?"
	}
	return glyphs[mask]
}

// SideMask folds a stored variant of either tiler into its 4-bit sides.
func SideMask(mode base.TilerMode, variant int) int {
	if mode != base.EightBit {
		return variant
	}
	m, ok := autotile.BlobMask(variant)
	if !ok {
		return 0
	}
	side := 0
	if m&autotile.TopSide != 0 {
		side |= autotile.Top
	}
	if m&autotile.LeftSide != 0 {
		side |= autotile.Left
	}
	if m&autotile.RightSide != 0 {
		side |= autotile.Right
	}
	if m&autotile.BottomSide != 0 {
		side |= autotile.Bottom
	}
	return side
}

func bg(c color.RGBA) string {
	return fmt.Sprintf("\033[48;2;%d;%d;%dm", c.R, c.G, c.B)
}

func fg(c color.RGBA) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

// PrintBoard draws the board with the current selection laid over it.
func PrintBoard(w io.Writer, gb *src.GameBuilder) {
	b := gb.Board()
	if b == nil {
		return
	}
	colours := make([]color.RGBA, 0, len(gb.Players()))
	for _, p := range gb.Players() {
		colours = append(colours, p.Colour())
	}

	overlay := map[base.Point]bool{}
	legal := gb.CanPlace()
	if p := gb.Piece(); p != nil {
		for _, c := range p.Cells() {
			overlay[c] = true
		}
	}

	var sb strings.Builder
	sb.WriteString("\n   ")
	for x := 0; x < b.Size(); x++ {
		sb.WriteString(fmt.Sprintf("%-2d", x%100))
	}
	sb.WriteString("\n")
	for y := 0; y < b.Size(); y++ {
		sb.WriteString(fmt.Sprintf("%2d ", y))
		for x := 0; x < b.Size(); x++ {
			sb.WriteString(cellString(b, colours, x, y, overlay[base.Point{X: x, Y: y}], legal, gb.Current()))
		}
		sb.WriteString(reset + "\n")
	}
	fmt.Fprint(w, sb.String())
}

func cellString(b *board.Board, colours []color.RGBA, x, y int, over, legal bool, active int) string {
	if over {
		if !legal {
			return badBg + "▒▒" + reset
		}
		return fg(colours[active]) + emptyBg + "▓▓" + reset
	}
	owner, variant, ok := b.Cell(x, y)
	if !ok {
		return emptyBg + dimF + "· " + reset
	}
	mask := SideMask(b.Mode(), variant)
	tail := " "
	if mask&autotile.Right != 0 {
		tail = "─"
	}
	return bg(colours[owner]) + "\033[30m" + Glyph(mask) + tail + reset
}

// PrintStatus writes the active player, their remaining inventory and the
// placement log.
func PrintStatus(w io.Writer, gb *src.GameBuilder) {
	fmt.Fprintln(w)
	for i, p := range gb.Players() {
		mark := " "
		if i == gb.Current() {
			mark = ">"
		}
		fmt.Fprintf(w, "%s %d %s%s%s: %d pieces, %d tiles\n", mark, i+1, fg(p.Colour()), p.Name(), reset, p.TotalPieces(), p.TotalTiles())
	}
	if p := gb.Piece(); p != nil {
		fmt.Fprintf(w, "Piece #%d at (%d,%d)\n%s\n", p.ID(), p.X(), p.Y(), p.Grid())
	} else {
		fmt.Fprintln(w, "No piece left")
	}
	fmt.Fprintf(w, "Log: %s\n", gb.Log())
}
