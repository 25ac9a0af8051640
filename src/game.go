package src

import (
	"errors"
	"fmt"
	"image/color"

	"blokus/src/base"
	"blokus/src/geometry"
	"blokus/src/logic/board"
	"blokus/src/logic/history"
	"blokus/src/logic/player"
	"blokus/src/logx"
	"blokus/src/polyomino"
)

var (
	ErrNoGame      = errors.New("game not created")
	ErrNoSelection = errors.New("no piece selected")
	ErrBadPlayer   = errors.New("player index out of range")
)

// Blue, yellow, red, green.
var DefaultColours = [base.MaxPlayers]color.RGBA{
	{R: 0x1e, G: 0x5a, B: 0xd6, A: 0xff},
	{R: 0xf2, G: 0xc2, B: 0x1b, A: 0xff},
	{R: 0xd6, G: 0x2b, B: 0x2b, A: 0xff},
	{R: 0x2e, G: 0xa0, B: 0x43, A: 0xff},
}

type GameOptions struct {
	Board   board.Options
	Names   []string // optional, "Player N" by default
	Copies  [polyomino.SetCount]int
	Library *polyomino.Library // embedded base set when nil
}

// at first use Create
type GameBuilder struct {
	board   *board.Board
	lib     *polyomino.Library
	players []*player.Player
	history *history.History
	active  int
	piece   *geometry.Piece
	logger  logx.Logger
}

func NewBuilderGame(logger logx.Logger) *GameBuilder {
	return &GameBuilder{history: history.NewHistory(), logger: logger}
}

func (gb *GameBuilder) Create(opts GameOptions) error {
	gb.board = board.NewBoard(opts.Board)
	gb.logger.Debugf("create game: board %d, %d players, %s", gb.board.Size(), gb.board.Players(), gb.board.Mode())

	gb.lib = opts.Library
	if gb.lib == nil {
		gb.lib = polyomino.Default()
	}
	gb.players = make([]*player.Player, gb.board.Players())
	for i := range gb.players {
		name := fmt.Sprintf("Player %d", i+1)
		if i < len(opts.Names) && opts.Names[i] != "" {
			name = opts.Names[i]
		}
		p, err := player.New(name, DefaultColours[i], gb.lib, opts.Copies)
		if err != nil {
			return fmt.Errorf("error create player %d: %v", i, err)
		}
		gb.players[i] = p
	}
	gb.history.Clear()
	gb.active = 0
	gb.piece = nil
	return gb.selectFirst()
}

func (gb *GameBuilder) Board() *board.Board {
	return gb.board
}

func (gb *GameBuilder) Library() *polyomino.Library {
	return gb.lib
}

func (gb *GameBuilder) Players() []*player.Player {
	return gb.players
}

func (gb *GameBuilder) Current() int {
	return gb.active
}

func (gb *GameBuilder) CurrentPlayer() *player.Player {
	if gb.active >= len(gb.players) {
		return nil
	}
	return gb.players[gb.active]
}

// SetActive switches the player whose inventory the selection comes from.
func (gb *GameBuilder) SetActive(i int) error {
	if i < 0 || i >= len(gb.players) {
		return ErrBadPlayer
	}
	gb.logger.Debugf("set active player: %d", i)
	gb.active = i
	if gb.piece != nil && gb.players[i].Has(gb.piece.ID()) {
		return nil
	}
	return gb.selectFirst()
}

// Piece is the current selection, nil when the active player has none left.
func (gb *GameBuilder) Piece() *geometry.Piece {
	return gb.piece
}

// SelectPiece picks id from the active player's inventory. The new piece
// keeps the anchor of the previous selection.
func (gb *GameBuilder) SelectPiece(id uint16) error {
	if gb.board == nil {
		return ErrNoGame
	}
	gb.logger.Debugf("select piece %d for player %d", id, gb.active)
	if !gb.players[gb.active].Has(id) {
		return fmt.Errorf("error select piece: %w: %d", player.ErrNoPiece, id)
	}
	p, err := geometry.NewPiece(gb.lib, id, gb.board.Size())
	if err != nil {
		return fmt.Errorf("error select piece: %v", err)
	}
	if gb.piece != nil {
		p.SetPos(gb.piece.X(), gb.piece.Y())
	}
	if err := p.FixPos(gb.board.Size()); err != nil {
		return err
	}
	gb.piece = p
	return nil
}

// NextPiece cycles the selection through the active player's inventory.
func (gb *GameBuilder) NextPiece() error {
	if gb.piece == nil {
		return gb.selectFirst()
	}
	id, ok := gb.players[gb.active].Next(gb.piece.ID())
	if !ok {
		gb.piece = nil
		return ErrNoSelection
	}
	return gb.SelectPiece(id)
}

func (gb *GameBuilder) Rotate(dir base.Rotation) error {
	if gb.piece == nil {
		return ErrNoSelection
	}
	gb.logger.Debugf("rotate %v", dir)
	if err := gb.piece.Rotate(dir, 1); err != nil {
		return err
	}
	return gb.piece.FixPos(gb.board.Size())
}

func (gb *GameBuilder) Flip(axis base.Axis) error {
	if gb.piece == nil {
		return ErrNoSelection
	}
	gb.logger.Debugf("flip %v", axis)
	gb.piece.Flip(axis, 1)
	return gb.piece.FixPos(gb.board.Size())
}

// Move shifts the selection one cell. North increases the row.
func (gb *GameBuilder) Move(dir base.Direction) error {
	if gb.piece == nil {
		return ErrNoSelection
	}
	gb.piece.Move(dir)
	return gb.piece.FixPos(gb.board.Size())
}

// MoveTo puts the anchor at (x, y) and pulls the piece back onto the board.
func (gb *GameBuilder) MoveTo(x, y int) error {
	if gb.piece == nil {
		return ErrNoSelection
	}
	gb.piece.SetPos(x, y)
	return gb.piece.FixPos(gb.board.Size())
}

// CanPlace reports whether the selection fits where it is.
func (gb *GameBuilder) CanPlace() bool {
	return gb.piece != nil && gb.board.CanPlace(gb.piece) == nil
}

// Place stamps the selection for the active player and selects the next
// piece of the same player.
func (gb *GameBuilder) Place() error {
	if gb.piece == nil {
		return ErrNoSelection
	}
	p := gb.piece
	gb.logger.Infof("place piece %d for player %d at (%d,%d)", p.ID(), gb.active, p.X(), p.Y())
	if err := gb.board.Place(gb.active, p); err != nil {
		gb.logger.Warnf("error place piece %d: %v", p.ID(), err)
		return err
	}
	if err := gb.players[gb.active].Take(p.ID()); err != nil {
		return err
	}
	gb.history.Push(history.Entry{
		Owner:  gb.active,
		Piece:  p.ID(),
		Anchor: base.Point{X: p.X(), Y: p.Y()},
		Cells:  p.Cells(),
	})

	return gb.reselect()
}

// Undo lifts the last placement and hands the piece back.
func (gb *GameBuilder) Undo() error {
	gb.logger.Debug("call undo")
	e, err := gb.history.PeekUndo()
	if err != nil {
		return err
	}
	if err := gb.board.Lift(e.Cells); err != nil {
		return fmt.Errorf("error undo: %w", err)
	}
	if _, err := gb.history.Undo(); err != nil {
		return err
	}
	gb.players[e.Owner].Return(e.Piece)
	if e.Owner == gb.active && gb.piece == nil {
		return gb.selectFirst()
	}
	return nil
}

// Redo restamps the next undone placement.
func (gb *GameBuilder) Redo() error {
	gb.logger.Debug("call redo")
	e, err := gb.history.PeekRedo()
	if err != nil {
		return err
	}
	if !gb.players[e.Owner].Has(e.Piece) {
		return fmt.Errorf("error redo: %w: %d", player.ErrNoPiece, e.Piece)
	}
	if err := gb.board.PlaceCells(e.Owner, e.Cells); err != nil {
		return fmt.Errorf("error redo: %w", err)
	}
	if _, err := gb.history.Redo(); err != nil {
		return err
	}
	if err := gb.players[e.Owner].Take(e.Piece); err != nil {
		return err
	}
	if e.Owner == gb.active {
		return gb.reselect()
	}
	return nil
}

// Log lists the applied placements, e.g. "1. P0:#7@(3,4)".
func (gb *GameBuilder) Log() string {
	return gb.history.Log()
}

// reselect moves on when the selected id ran out.
func (gb *GameBuilder) reselect() error {
	if gb.piece == nil {
		return gb.selectFirst()
	}
	owner := gb.players[gb.active]
	if owner.Has(gb.piece.ID()) {
		return nil
	}
	if id, ok := owner.Next(gb.piece.ID()); ok {
		return gb.SelectPiece(id)
	}
	gb.piece = nil
	return nil
}

func (gb *GameBuilder) selectFirst() error {
	gb.piece = nil
	ids := gb.players[gb.active].Pieces()
	if len(ids) == 0 {
		return nil
	}
	return gb.SelectPiece(ids[0])
}
