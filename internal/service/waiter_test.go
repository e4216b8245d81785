package service

import (
	"context"
	"testing"
	"time"
)

func released(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	case <-time.After(time.Second):
		return false
	}
}

func TestNotifySkipsCurrentVersion(t *testing.T) {
	w := NewWaitRegistry()
	stale := w.RegisterWait(context.Background(), "g", 1)
	current := w.RegisterWait(context.Background(), "g", 2)

	w.NotifyGame("g", 2)
	if !released(stale) {
		t.Fatalf("expected waiter on version 1 released")
	}
	select {
	case <-current:
		t.Fatalf("expected waiter already at version 2 to keep waiting")
	default:
	}
	if n := w.Pending("g"); n != 1 {
		t.Fatalf("expected 1 pending waiter, got %d", n)
	}
}

func TestWaitTimeout(t *testing.T) {
	w := NewWaitRegistry()
	w.timeout = 20 * time.Millisecond

	ch := w.RegisterWait(context.Background(), "g", 0)
	if !released(ch) {
		t.Fatalf("expected wait released by timeout")
	}
	if n := w.Pending("g"); n != 0 {
		t.Fatalf("expected no pending waiters, got %d", n)
	}
}

func TestWaitContextCancel(t *testing.T) {
	w := NewWaitRegistry()
	ctx, cancel := context.WithCancel(context.Background())

	ch := w.RegisterWait(ctx, "g", 0)
	cancel()
	if !released(ch) {
		t.Fatalf("expected wait released by cancel")
	}
	if n := w.Pending("g"); n != 0 {
		t.Fatalf("expected no pending waiters, got %d", n)
	}
}

func TestRemoveGameReleasesAll(t *testing.T) {
	w := NewWaitRegistry()
	a := w.RegisterWait(context.Background(), "g", 0)
	b := w.RegisterWait(context.Background(), "g", 0)

	w.RemoveGame("g")
	if !released(a) || !released(b) {
		t.Fatalf("expected all waiters released")
	}
	// releasing twice must not panic
	w.NotifyGame("g", 1)
}

func TestShutdown(t *testing.T) {
	w := NewWaitRegistry()
	ch := w.RegisterWait(context.Background(), "g", 0)

	if err := w.Shutdown(time.Second); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	if !released(ch) {
		t.Fatalf("expected wait released by shutdown")
	}
	if !released(w.RegisterWait(context.Background(), "g", 0)) {
		t.Fatalf("expected registration after shutdown to return released")
	}
}
