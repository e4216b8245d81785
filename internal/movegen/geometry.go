package movegen

import "minichess/internal/board"

type offset struct{ df, dr int }

var (
	orthogonal = []offset{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	diagonal   = []offset{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}
	allRays    = append(append([]offset{}, orthogonal...), diagonal...)

	knightJumps = []offset{
		{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
		{2, 1}, {-2, 1}, {2, -1}, {-2, -1},
	}
)

// kingSteps holds the eight neighbours {-1,0,1}x{-1,0,1} minus the origin.
var kingSteps = func() []offset {
	steps := make([]offset, 0, 8)
	for df := -1; df <= 1; df++ {
		for dr := -1; dr <= 1; dr++ {
			if df == 0 && dr == 0 {
				continue
			}
			steps = append(steps, offset{df, dr})
		}
	}
	return steps
}()

// rays walks each direction from origin to the board edge.
func rays(origin board.Coord, dirs []offset) []board.Coord {
	var out []board.Coord
	for _, d := range dirs {
		for c := origin.Add(d.df, d.dr); c.InBounds(); c = c.Add(d.df, d.dr) {
			out = append(out, c)
		}
	}
	return out
}

// steps applies each offset once and drops off-board results.
func steps(origin board.Coord, offsets []offset) []board.Coord {
	out := make([]board.Coord, 0, len(offsets))
	for _, o := range offsets {
		if c := origin.Add(o.df, o.dr); c.InBounds() {
			out = append(out, c)
		}
	}
	return out
}

// Between returns the squares strictly between a and b when they share a
// rank, file or diagonal. Adjacent or unaligned pairs yield nil.
func Between(a, b board.Coord) []board.Coord {
	df, dr := b.File-a.File, b.Rank-a.Rank
	switch {
	case df == 0 && dr == 0:
		return nil
	case df != 0 && dr != 0 && abs(df) != abs(dr):
		return nil
	}

	sf, sr := sign(df), sign(dr)
	n := max(abs(df), abs(dr)) - 1
	if n <= 0 {
		return nil
	}
	out := make([]board.Coord, 0, n)
	c := a
	for i := 0; i < n; i++ {
		c = c.Add(sf, sr)
		out = append(out, c)
	}
	return out
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
