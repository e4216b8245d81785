// Package movegen computes where a piece may go. It has two layers: geometric
// reachability, which only respects the board edge (pawns excepted), and an
// occupancy filter that removes friendly-occupied and blocked destinations.
package movegen

import (
	"minichess/internal/board"
	"minichess/internal/core"
)

type generator func(p board.Piece, b *board.Board, origin board.Coord) []board.Coord

var generators = [...]generator{
	board.Pawn:   pawnTargets,
	board.Knight: knightTargets,
	board.Bishop: bishopTargets,
	board.Rook:   rookTargets,
	board.Queen:  queenTargets,
	board.King:   kingTargets,
}

// A new kind without a generator changes the table length and fails here.
var _ [board.NumKinds]generator = generators

// Reachable returns the geometric destinations of p standing on origin.
// Only pawns consult occupancy at this layer.
func Reachable(p board.Piece, b *board.Board, origin board.Coord) []board.Coord {
	if int(p.Kind) >= len(generators) || !origin.InBounds() {
		return nil
	}
	return generators[p.Kind](p, b, origin)
}

// Legal returns the destinations p may move to on b when side is acting.
// A piece that does not belong to side has no legal destinations.
func Legal(p board.Piece, b *board.Board, origin board.Coord, side core.Side) Set {
	out := Set{}
	if p.Side != side {
		return out
	}
	for _, dest := range Reachable(p, b, origin) {
		if occupant, ok := b.Get(dest); ok && occupant.Side == p.Side {
			continue
		}
		if needsLineOfSight(p.Kind) && !clearPath(b, origin, dest) {
			continue
		}
		out.add(dest)
	}
	return out
}

func needsLineOfSight(k board.Kind) bool {
	switch k {
	case board.Bishop, board.Rook, board.Queen:
		return true
	default:
		// knights jump and kings step; pawn targets are already occupancy-correct
		return false
	}
}

func clearPath(b *board.Board, from, to board.Coord) bool {
	for _, c := range Between(from, to) {
		if b.Occupied(c) {
			return false
		}
	}
	return true
}

func pawnTargets(p board.Piece, b *board.Board, origin board.Coord) []board.Coord {
	dir, startRank := 1, 1
	if p.Side == core.Black {
		dir, startRank = -1, board.Size-2
	}

	var out []board.Coord
	one := origin.Add(0, dir)
	if one.InBounds() && !b.Occupied(one) {
		out = append(out, one)
		two := origin.Add(0, 2*dir)
		if origin.Rank == startRank && two.InBounds() && !b.Occupied(two) {
			out = append(out, two)
		}
	}

	for _, df := range []int{-1, 1} {
		c := origin.Add(df, dir)
		if !c.InBounds() {
			continue
		}
		if target, ok := b.Get(c); ok && target.Side != p.Side {
			out = append(out, c)
		}
	}
	return out
}

func knightTargets(_ board.Piece, _ *board.Board, origin board.Coord) []board.Coord {
	return steps(origin, knightJumps)
}

func bishopTargets(_ board.Piece, _ *board.Board, origin board.Coord) []board.Coord {
	return rays(origin, diagonal)
}

func rookTargets(_ board.Piece, _ *board.Board, origin board.Coord) []board.Coord {
	return rays(origin, orthogonal)
}

func queenTargets(_ board.Piece, _ *board.Board, origin board.Coord) []board.Coord {
	return rays(origin, allRays)
}

func kingTargets(_ board.Piece, _ *board.Board, origin board.Coord) []board.Coord {
	return steps(origin, kingSteps)
}
