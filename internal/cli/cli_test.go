package cli

import (
	"bytes"
	"strings"
	"testing"

	"minichess/internal/board"
	"minichess/internal/core"
	"minichess/internal/movegen"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		wantType CommandType
		wantArgs []string
	}{
		{"", CmdNone, nil},
		{"   ", CmdNone, nil},
		{"new", CmdNew, nil},
		{"board", CmdBoard, nil},
		{"help", CmdHelp, nil},
		{"?", CmdHelp, nil},
		{"quit", CmdQuit, nil},
		{"exit", CmdQuit, nil},
		{"b2 b4", CmdMove, []string{"b2", "b4"}},
		{"B2 B4", CmdMove, []string{"b2", "b4"}},
		{"g1f3", CmdMove, []string{"g1", "f3"}},
		{"moves e2", CmdMoves, []string{"e2"}},
		{"e2", CmdMoves, []string{"e2"}},
		{"moves", CmdUnknown, nil},
		{"castle kingside", CmdUnknown, nil},
		{"e2 e4 e5", CmdUnknown, nil},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cmd := Parse(tt.input)
			if cmd.Type != tt.wantType {
				t.Fatalf("expected type %d, got %d", tt.wantType, cmd.Type)
			}
			if len(cmd.Args) != len(tt.wantArgs) {
				t.Fatalf("expected args %v, got %v", tt.wantArgs, cmd.Args)
			}
			for i := range tt.wantArgs {
				if cmd.Args[i] != tt.wantArgs[i] {
					t.Fatalf("expected args %v, got %v", tt.wantArgs, cmd.Args)
				}
			}
		})
	}
}

func TestDisplayBoardMarksTargets(t *testing.T) {
	var out bytes.Buffer
	view := New(&out)

	b := board.New()
	targets := movegen.Set{
		board.MustParseLabel("e3"): {},
		board.MustParseLabel("e4"): {},
	}
	view.DisplayBoard(b, targets)

	lines := strings.Split(out.String(), "\n")
	var rank3, rank8 string
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "3 "):
			rank3 = line
		case strings.HasPrefix(line, "8 "):
			rank8 = line
		}
	}
	if rank3 != "3 . . . . * . . .  3" {
		t.Fatalf("unexpected rank 3 %q", rank3)
	}
	if rank8 != "8 r n b q k b n r  8" {
		t.Fatalf("unexpected rank 8 %q", rank8)
	}
}

func TestDisplayBoardFileHeaders(t *testing.T) {
	var out bytes.Buffer
	view := New(&out)
	view.DisplayBoard(board.New(), nil)

	var headers []string
	for _, line := range strings.Split(out.String(), "\n") {
		if strings.HasPrefix(line, "  ") {
			headers = append(headers, line)
		}
	}
	if len(headers) != 2 {
		t.Fatalf("expected header above and below the board, got %q", headers)
	}
	for _, h := range headers {
		if h != "  a b c d e f g h" {
			t.Fatalf("unexpected header %q", h)
		}
	}
}

func TestSetTheme(t *testing.T) {
	view := New(&bytes.Buffer{})
	if err := view.SetTheme(ThemeGreen); err != nil {
		t.Fatalf("expected green theme accepted, got %v", err)
	}
	if err := view.SetTheme("purple"); err == nil {
		t.Fatalf("expected unknown theme rejected")
	}
}

func TestColoredBoardUsesEscapes(t *testing.T) {
	var out bytes.Buffer
	view := New(&out)
	view.SetTheme(ThemeBrown)
	view.DisplayBoard(board.New(), nil)
	if !strings.Contains(out.String(), "\033[") {
		t.Fatalf("expected ANSI escapes in themed output")
	}
}

func TestPrompt(t *testing.T) {
	view := New(&bytes.Buffer{})
	if got := view.Prompt(core.Black); got != "[b]> " {
		t.Fatalf("expected [b]> , got %q", got)
	}
}
