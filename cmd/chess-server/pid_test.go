package main

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func TestAcquirePIDFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.pid")

	p, err := acquirePIDFile(path, false)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if strings.TrimSpace(string(data)) != strconv.Itoa(os.Getpid()) {
		t.Fatalf("expected pid %d, got %q", os.Getpid(), data)
	}

	p.release()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected PID file removed, got %v", err)
	}
}

func TestPIDLockExcludesSecondServer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.pid")

	first, err := acquirePIDFile(path, true)
	if err != nil {
		t.Fatalf("first acquire: %v", err)
	}
	defer first.release()

	if _, err := acquirePIDFile(path, true); err == nil {
		t.Fatalf("expected second locked acquire to fail")
	}

	data, _ := os.ReadFile(path)
	if strings.TrimSpace(string(data)) != strconv.Itoa(os.Getpid()) {
		t.Fatalf("expected PID file left intact, got %q", data)
	}
}

func TestPIDOverwritesStaleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.pid")
	if err := os.WriteFile(path, []byte("999999999\n"), 0644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	p, err := acquirePIDFile(path, true)
	if err != nil {
		t.Fatalf("acquire over stale file: %v", err)
	}
	defer p.release()

	data, _ := os.ReadFile(path)
	if strings.TrimSpace(string(data)) != strconv.Itoa(os.Getpid()) {
		t.Fatalf("expected stale pid replaced, got %q", data)
	}
}
