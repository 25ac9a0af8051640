package polyomino

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"blokus/src/geometry"
)

var ErrFormat = errors.New("invalid polyomino file")

// Read parses a shape file. Two layouts are accepted:
//
// records:
//
//	d      (rows per shape)
//	c      (shape count)
//	       (blank separator)
//	row 1 .. row d
//	...
//
// lines: one shape per line, rows split by ':', shapes may also be split by
// ';'. The first line must contain ':' or ';' for this layout to be picked.
func Read(r io.Reader) ([]geometry.ShapeGrid, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	first := firstNonBlank(lines)
	if first < 0 {
		return nil, nil
	}
	if strings.ContainsAny(lines[first], ":;") {
		return readLines(lines[first:])
	}
	return readRecords(lines[first:])
}

func readRecords(lines []string) ([]geometry.ShapeGrid, error) {
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: missing header", ErrFormat)
	}
	dims, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil || dims <= 0 {
		return nil, fmt.Errorf("%w: bad dimension %q", ErrFormat, lines[0])
	}
	count, err := strconv.Atoi(strings.TrimSpace(lines[1]))
	if err != nil || count < 0 {
		return nil, fmt.Errorf("%w: bad count %q", ErrFormat, lines[1])
	}

	out := make([]geometry.ShapeGrid, 0, count)
	i := 2
	for n := 0; n < count; n++ {
		for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
			i++
		}
		if i+dims > len(lines) {
			return nil, fmt.Errorf("%w: shape %d truncated", ErrFormat, n)
		}
		g, err := geometry.ParseShapeGrid(lines[i : i+dims]...)
		if err != nil {
			return nil, fmt.Errorf("%w: shape %d: %w", ErrFormat, n, err)
		}
		out = append(out, g)
		i += dims
	}
	return out, nil
}

func readLines(lines []string) ([]geometry.ShapeGrid, error) {
	var out []geometry.ShapeGrid
	for _, line := range lines {
		for _, rec := range strings.Split(line, ";") {
			rec = strings.TrimSpace(rec)
			if rec == "" {
				continue
			}
			g, err := geometry.ParseShapeGrid(strings.Split(rec, ":")...)
			if err != nil {
				return nil, fmt.Errorf("%w: shape %d: %w", ErrFormat, len(out), err)
			}
			out = append(out, g)
		}
	}
	return out, nil
}

// Write emits shapes in the records layout with d = the largest grid side.
func Write(w io.Writer, shapes []geometry.ShapeGrid) error {
	dims := 0
	for _, s := range shapes {
		dims = max(dims, s.Width(), s.Height())
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n%d\n", dims, len(shapes))
	for _, s := range shapes {
		bw.WriteString("\n")
		for row := 0; row < dims; row++ {
			for col := 0; col < dims; col++ {
				if s.At(col, row) {
					bw.WriteByte('1')
				} else {
					bw.WriteByte('0')
				}
			}
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}

func firstNonBlank(lines []string) int {
	for i, l := range lines {
		if strings.TrimSpace(l) != "" {
			return i
		}
	}
	return -1
}
