package movegen

import (
	"slices"

	"minichess/internal/board"
)

// Set is an unordered collection of destination squares.
type Set map[board.Coord]struct{}

func (s Set) Has(c board.Coord) bool {
	_, ok := s[c]
	return ok
}

func (s Set) add(c board.Coord) {
	s[c] = struct{}{}
}

// Sorted returns the squares ordered by rank, then file.
func (s Set) Sorted() []board.Coord {
	out := make([]board.Coord, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b board.Coord) int {
		if a.Rank != b.Rank {
			return a.Rank - b.Rank
		}
		return a.File - b.File
	})
	return out
}

// Labels returns the sorted square names.
func (s Set) Labels() []string {
	coords := s.Sorted()
	labels := make([]string, len(coords))
	for i, c := range coords {
		labels[i] = c.String()
	}
	return labels
}
