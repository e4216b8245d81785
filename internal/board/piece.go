package board

import (
	"fmt"
	"unicode"

	"minichess/internal/core"
)

// Kind is the movement class of a piece.
type Kind uint8

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King

	numKinds
)

// NumKinds is the number of distinct piece kinds.
const NumKinds = int(numKinds)

// Kinds lists every kind in declaration order.
var Kinds = [NumKinds]Kind{Pawn, Knight, Bishop, Rook, Queen, King}

var kindSymbols = [NumKinds]byte{'p', 'n', 'b', 'r', 'q', 'k'}

var kindNames = [NumKinds]string{"pawn", "knight", "bishop", "rook", "queen", "king"}

func (k Kind) String() string {
	if int(k) < NumKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Piece is an immutable (kind, side) pair.
type Piece struct {
	Kind Kind
	Side core.Side
}

// Symbol is the FEN letter: uppercase for white, lowercase for black.
func (p Piece) Symbol() byte {
	s := kindSymbols[p.Kind]
	if p.Side == core.White {
		return byte(unicode.ToUpper(rune(s)))
	}
	return s
}

func (p Piece) String() string {
	return p.Side.String() + " " + p.Kind.String()
}

// PieceFromSymbol parses a FEN letter.
func PieceFromSymbol(r rune) (Piece, bool) {
	side := core.Black
	if unicode.IsUpper(r) {
		side = core.White
	}
	lower := byte(unicode.ToLower(r))
	for i, s := range kindSymbols {
		if s == lower {
			return Piece{Kind: Kind(i), Side: side}, true
		}
	}
	return Piece{}, false
}
