package board

import (
	"fmt"
	"strings"
)

const StartingPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// ParsePlacement builds a board from the piece placement field of a FEN
// string. Ranks are listed from the top (rank 8) down.
func ParsePlacement(placement string) (*Board, error) {
	ranks := strings.Split(placement, "/")
	if len(ranks) != Size {
		return nil, fmt.Errorf("invalid placement: expected %d ranks, got %d", Size, len(ranks))
	}

	b := Empty()
	for i, row := range ranks {
		rank := Size - 1 - i
		file := 0
		for _, ch := range row {
			if ch >= '1' && ch <= '0'+Size {
				file += int(ch - '0')
				continue
			}
			if file >= Size {
				return nil, fmt.Errorf("invalid placement: too many pieces in rank %d", rank+1)
			}
			p, ok := PieceFromSymbol(ch)
			if !ok {
				return nil, fmt.Errorf("invalid placement: unknown piece %q", ch)
			}
			b.squares[Coord{file, rank}] = p
			file++
		}
		if file != Size {
			return nil, fmt.Errorf("invalid placement: rank %d has %d files", rank+1, file)
		}
	}
	return b, nil
}

// MustParsePlacement panics on malformed input. Intended for tests.
func MustParsePlacement(placement string) *Board {
	b, err := ParsePlacement(placement)
	if err != nil {
		panic(err)
	}
	return b
}

// Placement renders the board as a FEN piece placement field.
func (b *Board) Placement() string {
	var sb strings.Builder
	for rank := Size - 1; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < Size; file++ {
			p, ok := b.squares[Coord{file, rank}]
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Symbol())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// ASCII creates a text diagram of the board, white at the bottom.
func (b *Board) ASCII() string {
	var sb strings.Builder
	files := "  " + strings.Join(strings.Split(Files[:Size], ""), " ")
	sb.WriteString(files + "\n")

	for rank := Size - 1; rank >= 0; rank-- {
		sb.WriteString(fmt.Sprintf("%d ", rank+1))
		for file := 0; file < Size; file++ {
			if p, ok := b.squares[Coord{file, rank}]; ok {
				sb.WriteString(fmt.Sprintf("%c ", p.Symbol()))
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteString(fmt.Sprintf(" %d\n", rank+1))
	}
	sb.WriteString(files)

	return sb.String()
}
