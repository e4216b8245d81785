package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"minichess/internal/board"
	"minichess/internal/core"
	"minichess/internal/game"
	"minichess/internal/movegen"
	"minichess/internal/storage"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/google/uuid"
)

// PlacedPiece is a piece together with its square.
type PlacedPiece struct {
	Square board.Coord
	Piece  board.Piece
}

// Snapshot is a read-only view of a game at one version.
type Snapshot struct {
	GameID    string
	Name      string
	Turn      core.Side
	State     core.State
	Finished  bool
	Placement string
	ASCII     string
	Version   int
	Pieces    []PlacedPiece // ordered by rank, then file
	LastMove  *game.MoveResult
}

// SquareInfo answers a click on one square.
type SquareInfo struct {
	Square   board.Coord
	Piece    board.Piece
	Occupied bool
	Friendly bool
	Moves    movegen.Set
}

// GenerateGameID creates a new unique game ID
func (s *Service) GenerateGameID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for {
		id := uuid.New().String()
		if _, exists := s.sessions[id]; !exists {
			return id
		}
	}
}

// CreateGame starts a game from the standard position.
func (s *Service) CreateGame() (Snapshot, error) {
	return s.CreateGameFrom(board.New(), core.White)
}

// CreateGameFrom starts a game from a copy of b with turn to move.
func (s *Service) CreateGameFrom(b *board.Board, turn core.Side) (Snapshot, error) {
	id := s.GenerateGameID()
	sess := &session{
		game:    game.NewFromBoard(b, turn),
		name:    petname.Generate(2, "-"),
		created: time.Now().UTC(),
	}

	// Held until the ledger row is queued so no move can be recorded first
	sess.mu.Lock()
	defer sess.mu.Unlock()

	s.mu.Lock()
	if len(s.sessions) >= s.maxGames {
		s.mu.Unlock()
		return Snapshot{}, fmt.Errorf("%w: %d active games", ErrResourceLimit, s.maxGames)
	}
	s.sessions[id] = sess
	s.mu.Unlock()

	if s.store != nil {
		s.store.RecordNewGame(storage.GameRecord{
			GameID:           id,
			InitialPlacement: b.Placement(),
			StartTimeUTC:     sess.created,
		})
	}

	return snapshotOf(id, sess), nil
}

func (s *Service) lookup(gameID string) (*session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	return sess, nil
}

// Snapshot returns the current view of a game.
func (s *Service) Snapshot(gameID string) (Snapshot, error) {
	sess, err := s.lookup(gameID)
	if err != nil {
		return Snapshot{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return snapshotOf(gameID, sess), nil
}

// Square reports the occupant of c and its legal destinations.
func (s *Service) Square(gameID string, c board.Coord) (SquareInfo, error) {
	sess, err := s.lookup(gameID)
	if err != nil {
		return SquareInfo{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	info := SquareInfo{Square: c, Moves: sess.game.PossibleMoves(c)}
	info.Friendly, info.Occupied = sess.game.IsFriendly(c)
	if info.Occupied {
		info.Piece, _ = sess.game.Piece(c)
	}
	return info, nil
}

// PossibleMoves returns the legal destinations from c for the side to move.
func (s *Service) PossibleMoves(gameID string, c board.Coord) (movegen.Set, error) {
	sess, err := s.lookup(gameID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.game.PossibleMoves(c), nil
}

// IsFriendly reports whether c holds a piece of the side to move.
func (s *Service) IsFriendly(gameID string, c board.Coord) (friendly, occupied bool, err error) {
	sess, err := s.lookup(gameID)
	if err != nil {
		return false, false, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	friendly, occupied = sess.game.IsFriendly(c)
	return friendly, occupied, nil
}

// AttemptMove applies a move on behalf of the side to move.
func (s *Service) AttemptMove(gameID string, from, to board.Coord) (Snapshot, error) {
	sess, err := s.lookup(gameID)
	if err != nil {
		return Snapshot{}, err
	}

	sess.mu.Lock()
	result, err := sess.game.AttemptMove(from, to)
	if err != nil {
		sess.mu.Unlock()
		return Snapshot{}, err
	}
	sess.version++
	sess.lastMove = &result
	snap := snapshotOf(gameID, sess)
	s.recordMove(gameID, snap, result)
	sess.mu.Unlock()

	s.waiter.NotifyGame(gameID, snap.Version)
	return snap, nil
}

// DeleteGame removes a game and wakes anyone waiting on it.
func (s *Service) DeleteGame(gameID string) error {
	s.mu.Lock()
	if _, ok := s.sessions[gameID]; !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	delete(s.sessions, gameID)
	s.mu.Unlock()

	s.waiter.RemoveGame(gameID)
	return nil
}

// RegisterWait returns a channel closed once the game moves past version,
// is deleted, the wait times out, or ctx ends.
func (s *Service) RegisterWait(ctx context.Context, gameID string, version int) <-chan struct{} {
	notify := s.waiter.RegisterWait(ctx, gameID, version)

	// A move or deletion may have landed before registration.
	snap, err := s.Snapshot(gameID)
	switch {
	case err != nil:
		s.waiter.RemoveGame(gameID)
	case snap.Version != version:
		s.waiter.NotifyGame(gameID, snap.Version)
	}
	return notify
}

// recordMove appends an accepted move to the ledger. Called with the session
// locked so rows land in move order.
func (s *Service) recordMove(gameID string, snap Snapshot, result game.MoveResult) {
	if s.store == nil {
		return
	}
	record := storage.MoveRecord{
		GameID:         gameID,
		MoveNumber:     snap.Version,
		FromSquare:     result.From.String(),
		ToSquare:       result.To.String(),
		Piece:          string(result.Piece.Symbol()),
		Side:           result.Piece.Side.Short(),
		PlacementAfter: snap.Placement,
		MoveTimeUTC:    time.Now().UTC(),
	}
	if result.Captured != nil {
		record.Captured = string(result.Captured.Symbol())
	}
	s.store.RecordMove(record)
}

func snapshotOf(id string, sess *session) Snapshot {
	g := sess.game
	snap := Snapshot{
		GameID:    id,
		Name:      sess.name,
		Turn:      g.Turn(),
		State:     g.State(),
		Finished:  g.Finished(),
		Placement: g.Placement(),
		ASCII:     g.ASCII(),
		Version:   sess.version,
		LastMove:  sess.lastMove,
	}
	for c, p := range g.Pieces() {
		snap.Pieces = append(snap.Pieces, PlacedPiece{Square: c, Piece: p})
	}
	slices.SortFunc(snap.Pieces, func(a, b PlacedPiece) int {
		if a.Square.Rank != b.Square.Rank {
			return a.Square.Rank - b.Square.Rank
		}
		return a.Square.File - b.Square.File
	})
	return snap
}
