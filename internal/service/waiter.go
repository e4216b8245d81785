package service

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// WaitTimeout is the maximum time a client can wait for notifications
const WaitTimeout = 25 * time.Second

// WaitRegistry manages long-polling clients waiting for a game to move.
type WaitRegistry struct {
	mu       sync.Mutex
	waiters  map[string][]*waitRequest // gameID → waiting clients
	shutdown chan struct{}
	closed   bool
	wg       sync.WaitGroup
	timeout  time.Duration
}

type waitRequest struct {
	version int
	notify  chan struct{}
	timer   *time.Timer
	once    sync.Once
}

func (r *waitRequest) release() {
	r.once.Do(func() {
		r.timer.Stop()
		close(r.notify)
	})
}

// NewWaitRegistry creates a new wait registry
func NewWaitRegistry() *WaitRegistry {
	return &WaitRegistry{
		waiters:  make(map[string][]*waitRequest),
		shutdown: make(chan struct{}),
		timeout:  WaitTimeout,
	}
}

// RegisterWait returns a channel that is closed when the game's version moves
// past version, the game is removed, the wait times out, ctx ends, or the
// registry shuts down.
func (w *WaitRegistry) RegisterWait(ctx context.Context, gameID string, version int) <-chan struct{} {
	req := &waitRequest{
		version: version,
		notify:  make(chan struct{}),
	}

	w.mu.Lock()
	req.timer = time.AfterFunc(w.timeout, func() {
		w.remove(gameID, req)
	})
	if w.closed {
		w.mu.Unlock()
		req.release()
		return req.notify
	}
	w.waiters[gameID] = append(w.waiters[gameID], req)
	w.mu.Unlock()

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		select {
		case <-ctx.Done():
			w.remove(gameID, req)
		case <-w.shutdown:
			w.remove(gameID, req)
		case <-req.notify:
		}
	}()

	return req.notify
}

// NotifyGame releases waiters whose version differs from version.
func (w *WaitRegistry) NotifyGame(gameID string, version int) {
	w.mu.Lock()
	var ready, keep []*waitRequest
	for _, req := range w.waiters[gameID] {
		if req.version != version {
			ready = append(ready, req)
		} else {
			keep = append(keep, req)
		}
	}
	if len(keep) == 0 {
		delete(w.waiters, gameID)
	} else {
		w.waiters[gameID] = keep
	}
	w.mu.Unlock()

	for _, req := range ready {
		req.release()
	}
}

// RemoveGame releases every waiter on a game (called on game deletion)
func (w *WaitRegistry) RemoveGame(gameID string) {
	w.mu.Lock()
	waitList := w.waiters[gameID]
	delete(w.waiters, gameID)
	w.mu.Unlock()

	for _, req := range waitList {
		req.release()
	}
}

// Pending returns the number of registered waiters on a game.
func (w *WaitRegistry) Pending(gameID string) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.waiters[gameID])
}

// Shutdown releases all waiters and waits for their watchers to exit.
func (w *WaitRegistry) Shutdown(timeout time.Duration) error {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.shutdown)
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("wait registry shutdown timed out")
	}
}

// remove drops a specific waiter from the registry and releases it.
func (w *WaitRegistry) remove(gameID string, req *waitRequest) {
	w.mu.Lock()
	waitList := w.waiters[gameID]
	for i, waiter := range waitList {
		if waiter == req {
			w.waiters[gameID] = append(waitList[:i], waitList[i+1:]...)
			break
		}
	}
	if len(w.waiters[gameID]) == 0 {
		delete(w.waiters, gameID)
	}
	w.mu.Unlock()

	req.release()
}
