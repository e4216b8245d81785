package processor

import (
	"testing"

	"minichess/internal/core"
	"minichess/internal/service"
)

func newTestProcessor(maxGames int) *Processor {
	return New(service.New(nil, maxGames))
}

func createGame(t *testing.T, p *Processor) core.GameResponse {
	t.Helper()
	resp := p.Execute(NewCreateGameCommand())
	if !resp.Success {
		t.Fatalf("create failed: %+v", resp.Error)
	}
	return resp.Data.(core.GameResponse)
}

func TestCreateGameResponse(t *testing.T) {
	p := newTestProcessor(10)
	g := createGame(t, p)

	if g.Turn != "w" || g.State != core.StateWhiteToMove.String() {
		t.Fatalf("expected white to move, got %s/%s", g.Turn, g.State)
	}
	if len(g.Pieces) != 32 {
		t.Fatalf("expected 32 pieces, got %d", len(g.Pieces))
	}
	first := g.Pieces[0]
	if first.Square != "a1" || first.Kind != "rook" || first.Side != "w" || first.Symbol != "R" {
		t.Fatalf("expected white rook on a1, got %+v", first)
	}
	if g.LastMove != nil {
		t.Fatalf("expected no last move, got %+v", g.LastMove)
	}
}

func TestMakeMove(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		wantCode string
	}{
		{"legal double step", "b2", "b4", ""},
		{"uppercase labels", "B2", "B3", ""},
		{"knight jump", "g1", "f3", ""},
		{"empty origin", "e4", "e5", core.ErrInvalidMove},
		{"wrong side", "e7", "e5", core.ErrInvalidMove},
		{"blocked rook", "a1", "a3", core.ErrInvalidMove},
		{"off board", "i2", "i4", core.ErrInvalidSquare},
		{"bad rank", "b2", "b9", core.ErrInvalidSquare},
		{"control character", "b\n", "b4", core.ErrInvalidSquare},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestProcessor(10)
			g := createGame(t, p)

			resp := p.Execute(NewMakeMoveCommand(g.GameID, core.MoveRequest{From: tt.from, To: tt.to}))
			if tt.wantCode == "" {
				if !resp.Success {
					t.Fatalf("expected success, got %+v", resp.Error)
				}
				after := resp.Data.(core.GameResponse)
				if after.Turn != "b" || after.Version != 1 {
					t.Fatalf("expected black to move at version 1, got %s/%d", after.Turn, after.Version)
				}
				return
			}
			if resp.Success {
				t.Fatalf("expected %s, got success", tt.wantCode)
			}
			if resp.Error.Code != tt.wantCode {
				t.Fatalf("expected %s, got %s", tt.wantCode, resp.Error.Code)
			}
		})
	}
}

func TestCaptureReported(t *testing.T) {
	p := newTestProcessor(10)
	g := createGame(t, p)

	var last ProcessorResponse
	for _, m := range [][2]string{{"e2", "e4"}, {"d7", "d5"}, {"e4", "d5"}} {
		last = p.Execute(NewMakeMoveCommand(g.GameID, core.MoveRequest{From: m[0], To: m[1]}))
		if !last.Success {
			t.Fatalf("%s-%s: %+v", m[0], m[1], last.Error)
		}
	}
	after := last.Data.(core.GameResponse)
	if after.LastMove == nil || after.LastMove.Captured != "p" || after.LastMove.Side != "w" {
		t.Fatalf("expected white capturing a black pawn, got %+v", after.LastMove)
	}
	if len(after.Pieces) != 31 {
		t.Fatalf("expected 31 pieces, got %d", len(after.Pieces))
	}
}

func TestGetSquare(t *testing.T) {
	p := newTestProcessor(10)
	g := createGame(t, p)

	resp := p.Execute(NewGetSquareCommand(g.GameID, "b1"))
	if !resp.Success {
		t.Fatalf("square failed: %+v", resp.Error)
	}
	sq := resp.Data.(core.SquareResponse)
	if !sq.Occupied || sq.Friendly == nil || !*sq.Friendly || sq.Piece != "N" {
		t.Fatalf("expected friendly knight, got %+v", sq)
	}
	if len(sq.Moves) != 2 || sq.Moves[0] != "a3" || sq.Moves[1] != "c3" {
		t.Fatalf("expected [a3 c3], got %v", sq.Moves)
	}

	resp = p.Execute(NewGetSquareCommand(g.GameID, "e5"))
	sq = resp.Data.(core.SquareResponse)
	if sq.Occupied || sq.Friendly != nil || len(sq.Moves) != 0 {
		t.Fatalf("expected empty square, got %+v", sq)
	}

	resp = p.Execute(NewGetSquareCommand(g.GameID, "z0"))
	if resp.Success || resp.Error.Code != core.ErrInvalidSquare {
		t.Fatalf("expected INVALID_SQUARE, got %+v", resp)
	}
}

func TestGetMoves(t *testing.T) {
	p := newTestProcessor(10)
	g := createGame(t, p)

	resp := p.Execute(NewGetMovesCommand(g.GameID, "e2"))
	if !resp.Success {
		t.Fatalf("moves failed: %+v", resp.Error)
	}
	moves := resp.Data.(core.MovesResponse)
	if len(moves.Moves) != 2 || moves.Moves[0] != "e3" || moves.Moves[1] != "e4" {
		t.Fatalf("expected [e3 e4], got %v", moves.Moves)
	}

	resp = p.Execute(NewGetMovesCommand(g.GameID, "e7"))
	if moves := resp.Data.(core.MovesResponse); len(moves.Moves) != 0 {
		t.Fatalf("expected no moves for the side not to move, got %v", moves.Moves)
	}
}

func TestGameNotFound(t *testing.T) {
	p := newTestProcessor(10)
	cmds := []Command{
		NewGetGameCommand("missing"),
		NewDeleteGameCommand("missing"),
		NewGetBoardCommand("missing"),
		NewGetMovesCommand("missing", "e2"),
		NewGetSquareCommand("missing", "e2"),
		NewMakeMoveCommand("missing", core.MoveRequest{From: "e2", To: "e4"}),
	}
	for _, cmd := range cmds {
		resp := p.Execute(cmd)
		if resp.Success || resp.Error.Code != core.ErrGameNotFound {
			t.Fatalf("command %d: expected GAME_NOT_FOUND, got %+v", cmd.Type, resp)
		}
	}
}

func TestResourceLimit(t *testing.T) {
	p := newTestProcessor(1)
	createGame(t, p)
	resp := p.Execute(NewCreateGameCommand())
	if resp.Success || resp.Error.Code != core.ErrResourceLimit {
		t.Fatalf("expected RESOURCE_LIMIT, got %+v", resp)
	}
}

func TestGetBoard(t *testing.T) {
	p := newTestProcessor(10)
	g := createGame(t, p)

	resp := p.Execute(NewGetBoardCommand(g.GameID))
	if !resp.Success {
		t.Fatalf("board failed: %+v", resp.Error)
	}
	b := resp.Data.(core.BoardResponse)
	if b.Placement != g.Placement {
		t.Fatalf("expected placement %s, got %s", g.Placement, b.Placement)
	}
	if b.Board == "" {
		t.Fatalf("expected ASCII board")
	}
}

func TestUnknownCommand(t *testing.T) {
	p := newTestProcessor(10)
	resp := p.Execute(Command{Type: CommandType(99)})
	if resp.Success || resp.Error.Code != core.ErrInvalidRequest {
		t.Fatalf("expected INVALID_REQUEST, got %+v", resp)
	}
}
