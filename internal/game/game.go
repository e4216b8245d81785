package game

import (
	"errors"
	"fmt"
	"iter"

	"minichess/internal/board"
	"minichess/internal/core"
	"minichess/internal/movegen"
)

var ErrInvalidMove = errors.New("invalid move")

// MoveResult describes an accepted move.
type MoveResult struct {
	Piece    board.Piece
	From     board.Coord
	To       board.Coord
	Captured *board.Piece // nil when the destination was empty
}

// Game owns one board and the side to move. It is not safe for concurrent
// use; callers serialize access.
type Game struct {
	board    *board.Board
	turn     core.Side
	finished bool
}

// New starts a game from the standard position with white to move.
func New() *Game {
	return &Game{board: board.New(), turn: core.White}
}

// NewFromBoard starts a game from a copy of b with turn to move.
func NewFromBoard(b *board.Board, turn core.Side) *Game {
	return &Game{board: b.Clone(), turn: turn}
}

func (g *Game) Turn() core.Side {
	return g.turn
}

// Finished is never set by the current rules.
func (g *Game) Finished() bool {
	return g.finished
}

func (g *Game) State() core.State {
	if g.finished {
		return core.StateFinished
	}
	return core.StateFor(g.turn)
}

// PossibleMoves returns the legal destinations of the piece on c for the side
// to move. The piece need not belong to the mover; an opposing piece simply
// yields no destinations.
func (g *Game) PossibleMoves(c board.Coord) movegen.Set {
	p, ok := g.board.Get(c)
	if !ok {
		return movegen.Set{}
	}
	return movegen.Legal(p, g.board, c, g.turn)
}

// IsFriendly reports whether the piece on c belongs to the side to move.
// occupied is false for an empty square, in which case friendly is meaningless.
func (g *Game) IsFriendly(c board.Coord) (friendly, occupied bool) {
	p, ok := g.board.Get(c)
	if !ok {
		return false, false
	}
	return p.Side == g.turn, true
}

// AttemptMove validates and applies a move for the side to move, then passes
// the turn. On error the game is unchanged.
func (g *Game) AttemptMove(start, end board.Coord) (MoveResult, error) {
	p, ok := g.board.Get(start)
	if !ok {
		return MoveResult{}, fmt.Errorf("%w: no piece on %s", ErrInvalidMove, start)
	}
	if p.Side != g.turn {
		return MoveResult{}, fmt.Errorf("%w: %s belongs to %s, %s to move", ErrInvalidMove, start, p.Side, g.turn)
	}
	if !movegen.Legal(p, g.board, start, g.turn).Has(end) {
		return MoveResult{}, fmt.Errorf("%w: %s cannot reach %s", ErrInvalidMove, p, end)
	}

	result := MoveResult{Piece: p, From: start, To: end}
	if target, ok := g.board.Get(end); ok {
		if target.Kind == board.King {
			return MoveResult{}, fmt.Errorf("%w: kings cannot be captured", ErrInvalidMove)
		}
		result.Captured = &target
	}

	if err := g.board.Move(start, end); err != nil {
		return MoveResult{}, fmt.Errorf("%w: %w", ErrInvalidMove, err)
	}
	g.turn = g.turn.Opposite()
	return result, nil
}

// Pieces enumerates the current occupancy.
func (g *Game) Pieces() iter.Seq2[board.Coord, board.Piece] {
	return g.board.All()
}

// Piece reports the occupant of c without copying the board.
func (g *Game) Piece(c board.Coord) (board.Piece, bool) {
	return g.board.Get(c)
}

// Board returns a copy of the board.
func (g *Game) Board() *board.Board {
	return g.board.Clone()
}

func (g *Game) Placement() string {
	return g.board.Placement()
}

func (g *Game) ASCII() string {
	return g.board.ASCII()
}
