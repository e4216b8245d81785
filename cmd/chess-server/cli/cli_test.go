package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"minichess/internal/storage"

	"github.com/google/uuid"
)

func seedLedger(t *testing.T, path string) string {
	t.Helper()
	store, err := storage.NewStore(path, false)
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	defer store.Close()
	if err := store.InitDB(); err != nil {
		t.Fatalf("init: %v", err)
	}

	id := uuid.New().String()
	now := time.Now().UTC()
	store.RecordNewGame(storage.GameRecord{
		GameID:           id,
		InitialPlacement: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
		StartTimeUTC:     now,
	})
	store.RecordMove(storage.MoveRecord{
		GameID:         id,
		MoveNumber:     1,
		FromSquare:     "e2",
		ToSquare:       "e4",
		Piece:          "P",
		Side:           "w",
		PlacementAfter: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR",
		MoveTimeUTC:    now,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := store.Flush(ctx); err != nil {
		t.Fatalf("flush: %v", err)
	}
	return id
}

func TestRunRequiresSubcommand(t *testing.T) {
	if err := Run(nil); err == nil {
		t.Fatalf("expected error without subcommand")
	}
	if err := Run([]string{"bogus"}); err == nil {
		t.Fatalf("expected error for unknown subcommand")
	}
}

func TestQueryAndMoves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")
	id := seedLedger(t, path)

	var out bytes.Buffer
	if err := runQuery([]string{"-path", path}, &out); err != nil {
		t.Fatalf("query: %v", err)
	}
	if !strings.Contains(out.String(), id) || !strings.Contains(out.String(), "Found 1 game(s)") {
		t.Fatalf("unexpected query output %q", out.String())
	}

	out.Reset()
	if err := runMoves([]string{"-path", path, "-gameId", id}, &out); err != nil {
		t.Fatalf("moves: %v", err)
	}
	if !strings.Contains(out.String(), "e2") || !strings.Contains(out.String(), "4P3") {
		t.Fatalf("unexpected moves output %q", out.String())
	}

	if err := runMoves([]string{"-path", path, "-gameId", "nope"}, &out); err == nil {
		t.Fatalf("expected invalid game ID rejected")
	}
}

func TestDeleteForce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")
	seedLedger(t, path)

	var out bytes.Buffer
	if err := runDelete([]string{"-path", path, "-force"}, os.Stdin, &out); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected database removed, got %v", err)
	}
}

func TestPathRequired(t *testing.T) {
	var out bytes.Buffer
	if err := runQuery(nil, &out); err == nil {
		t.Fatalf("expected missing path error")
	}
	if err := runDelete([]string{"-force"}, os.Stdin, &out); err == nil {
		t.Fatalf("expected missing path error")
	}
}
