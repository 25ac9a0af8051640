package base

import "errors"

const (
	MinBoardSize = 20
	MaxBoardSize = 100
	MinPlayers   = 2
	MaxPlayers   = 4

	DefaultBoardSize = 20
	DefaultPlayers   = 4
)

// Direction of a single anchor step. North increases y.
type Direction uint8

const (
	MoveEast Direction = iota
	MoveNorth
	MoveWest
	MoveSouth
)

func (d Direction) String() string {
	switch d {
	case MoveEast:
		return "east"
	case MoveNorth:
		return "north"
	case MoveWest:
		return "west"
	case MoveSouth:
		return "south"
	default:
		return "invalid"
	}
}

// Delta returns the anchor change for one step in d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case MoveNorth:
		return 0, 1
	case MoveWest:
		return -1, 0
	case MoveSouth:
		return 0, -1
	default:
		return 1, 0
	}
}

type Rotation uint8

const (
	CounterClockwise Rotation = iota
	Clockwise
)

func (r Rotation) String() string {
	if r == Clockwise {
		return "cw"
	}
	return "ccw"
}

// Axis a shape is mirrored across.
type Axis uint8

const (
	// AxisVertical swaps left and right columns.
	AxisVertical Axis = iota
	// AxisHorizontal swaps top and bottom rows.
	AxisHorizontal
)

func (a Axis) String() string {
	if a == AxisHorizontal {
		return "horizontal"
	}
	return "vertical"
}

type TilerMode uint8

const (
	FourBit TilerMode = iota
	EightBit
)

func (m TilerMode) String() string {
	switch m {
	case FourBit:
		return "4bit"
	case EightBit:
		return "8bit"
	default:
		return "invalid"
	}
}

// Frames is the size of the sprite sheet the mode indexes into.
func (m TilerMode) Frames() int {
	if m == EightBit {
		return 48
	}
	return 16
}

func TilerModeFromString(s string) (TilerMode, error) {
	switch s {
	case "4", "4bit", "four":
		return FourBit, nil
	case "8", "8bit", "eight":
		return EightBit, nil
	default:
		return FourBit, errors.New("invalid tiler mode")
	}
}

type Point struct {
	X int
	Y int
}

func ClampBoardSize(size int) int {
	return clamp(size, MinBoardSize, MaxBoardSize)
}

func ClampPlayers(n int) int {
	return clamp(n, MinPlayers, MaxPlayers)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
