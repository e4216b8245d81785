package board

import (
	"errors"
	"fmt"
	"strings"
)

// Size is the number of files and ranks.
const Size = 8

// Files maps a file index to its label letter.
const Files = "abcdefgh"

var (
	ErrOutOfRange   = errors.New("coordinate out of range")
	ErrInvalidLabel = errors.New("invalid square label")
)

// Coord addresses a square by 0-based file and rank. Rank 0 is white's back rank.
type Coord struct {
	File int
	Rank int
}

func (c Coord) InBounds() bool {
	return c.File >= 0 && c.File < Size && c.Rank >= 0 && c.Rank < Size
}

// Add offsets c by (df, dr). The result may be out of range.
func (c Coord) Add(df, dr int) Coord {
	return Coord{File: c.File + df, Rank: c.Rank + dr}
}

// Label returns the two-character name of the square, e.g. "b2".
func (c Coord) Label() (string, error) {
	if !c.InBounds() {
		return "", fmt.Errorf("%w: (%d,%d)", ErrOutOfRange, c.File, c.Rank)
	}
	return string([]byte{Files[c.File], byte('1' + c.Rank)}), nil
}

func (c Coord) String() string {
	label, err := c.Label()
	if err != nil {
		return "-"
	}
	return label
}

// ParseLabel is the inverse of Label.
func ParseLabel(s string) (Coord, error) {
	if len(s) != 2 {
		return Coord{}, fmt.Errorf("%w: %q must be 2 characters", ErrInvalidLabel, s)
	}
	file := strings.IndexByte(Files, s[0])
	if file < 0 {
		return Coord{}, fmt.Errorf("%w: unknown file %q", ErrInvalidLabel, s[0])
	}
	if s[1] < '1' || s[1] > byte('0'+Size) {
		return Coord{}, fmt.Errorf("%w: rank %q outside 1-%d", ErrInvalidLabel, s[1], Size)
	}
	return Coord{File: file, Rank: int(s[1] - '1')}, nil
}

// MustParseLabel panics on a malformed label. Intended for tables and tests.
func MustParseLabel(s string) Coord {
	c, err := ParseLabel(s)
	if err != nil {
		panic(err)
	}
	return c
}
