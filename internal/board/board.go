package board

import (
	"errors"
	"fmt"
	"iter"

	"minichess/internal/core"
)

var (
	ErrNotFound    = errors.New("no piece on square")
	ErrInvalidMove = errors.New("invalid move")
)

var backRank = [Size]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Board is a sparse map from square to occupant. Every key is in range.
type Board struct {
	squares map[Coord]Piece
}

// Empty returns a board with no pieces.
func Empty() *Board {
	return &Board{squares: make(map[Coord]Piece, 32)}
}

// New returns a board in the standard starting position.
func New() *Board {
	b := Empty()
	for file, kind := range backRank {
		b.squares[Coord{file, 0}] = Piece{Kind: kind, Side: core.White}
		b.squares[Coord{file, 1}] = Piece{Kind: Pawn, Side: core.White}
		b.squares[Coord{file, Size - 2}] = Piece{Kind: Pawn, Side: core.Black}
		b.squares[Coord{file, Size - 1}] = Piece{Kind: kind, Side: core.Black}
	}
	return b
}

// Get returns the occupant of c. Absence is not an error.
func (b *Board) Get(c Coord) (Piece, bool) {
	p, ok := b.squares[c]
	return p, ok
}

// Occupied reports whether c holds a piece.
func (b *Board) Occupied(c Coord) bool {
	_, ok := b.squares[c]
	return ok
}

// Set overwrites the slot at c.
func (b *Board) Set(c Coord, p Piece) error {
	if !c.InBounds() {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfRange, c.File, c.Rank)
	}
	b.squares[c] = p
	return nil
}

// Remove takes the piece off c. Callers are expected to have checked occupancy.
func (b *Board) Remove(c Coord) (Piece, error) {
	p, ok := b.squares[c]
	if !ok {
		return Piece{}, fmt.Errorf("%w: %s", ErrNotFound, c)
	}
	delete(b.squares, c)
	return p, nil
}

// Move relocates the piece on start to end, replacing any occupant of end.
// It performs no legality checks.
func (b *Board) Move(start, end Coord) error {
	if !end.InBounds() {
		return fmt.Errorf("%w: destination %s", ErrInvalidMove, end)
	}
	p, err := b.Remove(start)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMove, err)
	}
	b.squares[end] = p
	return nil
}

// All enumerates the occupied squares in no particular order.
func (b *Board) All() iter.Seq2[Coord, Piece] {
	return func(yield func(Coord, Piece) bool) {
		for c, p := range b.squares {
			if !yield(c, p) {
				return
			}
		}
	}
}

// Len returns the number of pieces on the board.
func (b *Board) Len() int {
	return len(b.squares)
}

// Clone returns an independent copy.
func (b *Board) Clone() *Board {
	c := &Board{squares: make(map[Coord]Piece, len(b.squares))}
	for k, v := range b.squares {
		c.squares[k] = v
	}
	return c
}
