package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"minichess/internal/game"
	"minichess/internal/storage"
)

const DefaultMaxGames = 100

var (
	ErrGameNotFound  = errors.New("game not found")
	ErrResourceLimit = errors.New("game limit reached")
)

// session pairs a game with the bookkeeping the server needs. Its mutex
// serializes every query and move on the game.
type session struct {
	mu       sync.Mutex
	game     *game.Game
	name     string // human-readable nickname
	version  int // accepted moves
	lastMove *game.MoveResult
	created  time.Time
}

// Service owns every live game, keyed by ID.
type Service struct {
	sessions map[string]*session
	mu       sync.RWMutex
	store    *storage.Store
	waiter   *WaitRegistry
	maxGames int
}

// New creates a service. store may be nil to disable the ledger.
func New(store *storage.Store, maxGames int) *Service {
	if maxGames < 1 {
		maxGames = DefaultMaxGames
	}
	return &Service{
		sessions: make(map[string]*session),
		store:    store,
		waiter:   NewWaitRegistry(),
		maxGames: maxGames,
	}
}

// GetStorageHealth returns the storage component status
func (s *Service) GetStorageHealth() string {
	if s.store == nil {
		return "disabled"
	}
	if s.store.IsHealthy() {
		return "ok"
	}
	return "degraded"
}

// GameCount returns the number of live games.
func (s *Service) GameCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// ReleaseWaiters wakes every long-poll client and refuses new waits. Games
// and storage stay usable, so in-flight requests can finish.
func (s *Service) ReleaseWaiters(timeout time.Duration) error {
	return s.waiter.Shutdown(timeout)
}

// Shutdown releases waiters, drops all games and closes storage.
func (s *Service) Shutdown(timeout time.Duration) error {
	var errs []error

	if err := s.waiter.Shutdown(timeout); err != nil {
		errs = append(errs, fmt.Errorf("wait registry: %w", err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions = make(map[string]*session)

	if s.store != nil {
		if err := s.store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("storage: %w", err))
		}
	}

	return errors.Join(errs...)
}
