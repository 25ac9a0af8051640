package cli

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"blokus/src"
	"blokus/src/base"

	"golang.org/x/term"
)

var errQuit = errors.New("quit")

type DrawFunc func(w io.Writer, gb *src.GameBuilder)

type CLIProcessing struct {
	builder *src.GameBuilder
	draw    DrawFunc
	in      io.Reader
	out     io.Writer
}

func NewCLI(b *src.GameBuilder, draw DrawFunc) *CLIProcessing {
	return &CLIProcessing{builder: b, draw: draw, in: os.Stdin, out: os.Stdout}
}

func (c *CLIProcessing) SetIO(in io.Reader, out io.Writer) {
	c.in, c.out = in, out
}

// raw processing
// - arrows move the piece, r/R rotate, f/F flip
// - Tab next piece, 1..4 active player
// - Enter or space places, u/y undo/redo, l log
// - q or Ctrl+C to exit
func (c *CLIProcessing) Run() error {
	f, ok := c.in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return c.RunLineMode()
	}
	fd := int(f.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return c.RunLineMode()
	}
	defer term.Restore(fd, oldState) //nolint:errcheck

	out := c.out
	c.out = crlf{out}
	defer func() { c.out = out }()

	r := bufio.NewReader(f)
	c.redraw()
	fmt.Fprint(c.out, "\nArrows move, r/R rotate, f/F flip, Tab next piece, 1-4 player, Enter place, u/y undo/redo, q quit.\n")

	for {
		b, err := r.ReadByte()
		if err != nil {
			return err
		}
		if b == 0x1b { // escape sequence, possible arrow
			b1, err := r.ReadByte()
			if err != nil {
				continue
			}
			b2, err := r.ReadByte()
			if err != nil || b1 != '[' {
				continue
			}
			b = arrowKey(b2)
		}
		err = c.Key(b)
		if errors.Is(err, errQuit) {
			fmt.Fprintln(c.out, "\nQuitting")
			return nil
		}
		c.redraw()
		if err != nil {
			fmt.Fprintf(c.out, "\n%v\n", err)
		}
	}
}

// pseudo keys for arrows
const (
	keyUp byte = 0x80 + iota
	keyDown
	keyRight
	keyLeft
)

func arrowKey(b byte) byte {
	switch b {
	case 'A':
		return keyUp
	case 'B':
		return keyDown
	case 'C':
		return keyRight
	case 'D':
		return keyLeft
	}
	return 0
}

// Key applies a single raw key.
func (c *CLIProcessing) Key(k byte) error {
	gb := c.builder
	switch k {
	case 3, 'q', 'Q':
		return errQuit
	case keyUp: // rows grow downward on screen
		return gb.Move(base.MoveSouth)
	case keyDown:
		return gb.Move(base.MoveNorth)
	case keyRight:
		return gb.Move(base.MoveEast)
	case keyLeft:
		return gb.Move(base.MoveWest)
	case 'r':
		return gb.Rotate(base.Clockwise)
	case 'R':
		return gb.Rotate(base.CounterClockwise)
	case 'f':
		return gb.Flip(base.AxisVertical)
	case 'F':
		return gb.Flip(base.AxisHorizontal)
	case '\t':
		return gb.NextPiece()
	case '\r', '\n', ' ':
		return gb.Place()
	case 'u':
		return gb.Undo()
	case 'y':
		return gb.Redo()
	case 'l':
		fmt.Fprintf(c.out, "\nLog: %s\n", gb.Log())
		return nil
	}
	if k >= '1' && k <= '9' {
		return gb.SetActive(int(k - '1'))
	}
	return nil
}

func (c *CLIProcessing) RunLineMode() error {
	scanner := bufio.NewScanner(c.in)
	c.redraw()
	fmt.Fprintln(c.out, "Commands: n/s/e/w, at X Y, rot [cw|ccw], flip [v|h], next, select ID, player N, place, undo, redo, log, q.")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		err := c.Command(line)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(c.out, "Invalid command %q: %v\n", line, err)
			continue
		}
		c.redraw()
	}
	return scanner.Err()
}

// Command applies one line-mode command.
func (c *CLIProcessing) Command(line string) error {
	gb := c.builder
	fields := strings.Fields(line)
	args := fields[1:]
	switch strings.ToLower(fields[0]) {
	case "q", "quit":
		return errQuit
	case "n", "north":
		return gb.Move(base.MoveNorth)
	case "s", "south":
		return gb.Move(base.MoveSouth)
	case "e", "east":
		return gb.Move(base.MoveEast)
	case "w", "west":
		return gb.Move(base.MoveWest)
	case "at":
		nums, err := ints(args, 2)
		if err != nil {
			return err
		}
		return gb.MoveTo(nums[0], nums[1])
	case "rot", "rotate":
		if len(args) > 0 && args[0] == "ccw" {
			return gb.Rotate(base.CounterClockwise)
		}
		return gb.Rotate(base.Clockwise)
	case "flip":
		if len(args) > 0 && args[0] == "h" {
			return gb.Flip(base.AxisHorizontal)
		}
		return gb.Flip(base.AxisVertical)
	case "next":
		return gb.NextPiece()
	case "select":
		nums, err := ints(args, 1)
		if err != nil {
			return err
		}
		return gb.SelectPiece(uint16(nums[0]))
	case "player":
		nums, err := ints(args, 1)
		if err != nil {
			return err
		}
		return gb.SetActive(nums[0] - 1)
	case "place":
		return gb.Place()
	case "undo":
		return gb.Undo()
	case "redo":
		return gb.Redo()
	case "log":
		fmt.Fprintln(c.out, gb.Log())
		return nil
	}
	return errors.New("unknown command")
}

func ints(args []string, n int) ([]int, error) {
	if len(args) < n {
		return nil, fmt.Errorf("want %d numbers", n)
	}
	out := make([]int, n)
	for i := range out {
		v, err := strconv.Atoi(args[i])
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (c *CLIProcessing) redraw() {
	if c.draw != nil {
		c.draw(c.out, c.builder)
	}
	PrintStatus(c.out, c.builder)
}

// crlf turns \n into \r\n while the terminal is raw.
type crlf struct {
	w io.Writer
}

func (c crlf) Write(p []byte) (int, error) {
	if _, err := c.w.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
		return 0, err
	}
	return len(p), nil
}
