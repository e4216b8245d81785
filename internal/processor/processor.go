package processor

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"minichess/internal/board"
	"minichess/internal/core"
	"minichess/internal/game"
	"minichess/internal/service"
)

// Processor translates commands into service calls and service results into
// API responses.
type Processor struct {
	svc *service.Service
}

func New(svc *service.Service) *Processor {
	return &Processor{svc: svc}
}

func (p *Processor) Execute(cmd Command) ProcessorResponse {
	switch cmd.Type {
	case CmdCreateGame:
		return p.handleCreateGame(cmd)
	case CmdGetGame:
		return p.handleGetGame(cmd)
	case CmdDeleteGame:
		return p.handleDeleteGame(cmd)
	case CmdGetMoves:
		return p.handleGetMoves(cmd)
	case CmdGetSquare:
		return p.handleGetSquare(cmd)
	case CmdMakeMove:
		return p.handleMakeMove(cmd)
	case CmdGetBoard:
		return p.handleGetBoard(cmd)
	default:
		return p.errorResponse("unknown command", core.ErrInvalidRequest)
	}
}

// parseSquare accepts a label in either case, rejecting control characters.
func parseSquare(label string) (board.Coord, error) {
	for _, r := range label {
		if unicode.IsControl(r) {
			return board.Coord{}, fmt.Errorf("%w: control character", board.ErrInvalidLabel)
		}
	}
	return board.ParseLabel(strings.ToLower(strings.TrimSpace(label)))
}

func (p *Processor) handleCreateGame(_ Command) ProcessorResponse {
	snap, err := p.svc.CreateGame()
	if err != nil {
		return p.serviceError(err)
	}
	return ProcessorResponse{Success: true, Data: buildGameResponse(snap)}
}

func (p *Processor) handleGetGame(cmd Command) ProcessorResponse {
	snap, err := p.svc.Snapshot(cmd.GameID)
	if err != nil {
		return p.serviceError(err)
	}
	return ProcessorResponse{Success: true, Data: buildGameResponse(snap)}
}

func (p *Processor) handleDeleteGame(cmd Command) ProcessorResponse {
	if err := p.svc.DeleteGame(cmd.GameID); err != nil {
		return p.serviceError(err)
	}
	return ProcessorResponse{Success: true}
}

func (p *Processor) handleGetMoves(cmd Command) ProcessorResponse {
	label, ok := cmd.Args.(string)
	if !ok {
		return p.errorResponse("invalid arguments", core.ErrInvalidRequest)
	}
	c, err := parseSquare(label)
	if err != nil {
		return p.errorResponseWithDetails("invalid square", core.ErrInvalidSquare, err.Error())
	}

	moves, err := p.svc.PossibleMoves(cmd.GameID, c)
	if err != nil {
		return p.serviceError(err)
	}
	return ProcessorResponse{
		Success: true,
		Data: core.MovesResponse{
			Square: c.String(),
			Moves:  moves.Labels(),
		},
	}
}

func (p *Processor) handleGetSquare(cmd Command) ProcessorResponse {
	label, ok := cmd.Args.(string)
	if !ok {
		return p.errorResponse("invalid arguments", core.ErrInvalidRequest)
	}
	c, err := parseSquare(label)
	if err != nil {
		return p.errorResponseWithDetails("invalid square", core.ErrInvalidSquare, err.Error())
	}

	info, err := p.svc.Square(cmd.GameID, c)
	if err != nil {
		return p.serviceError(err)
	}

	resp := core.SquareResponse{
		Square:   c.String(),
		Occupied: info.Occupied,
		Moves:    info.Moves.Labels(),
	}
	if info.Occupied {
		friendly := info.Friendly
		resp.Friendly = &friendly
		resp.Piece = string(info.Piece.Symbol())
	}
	return ProcessorResponse{Success: true, Data: resp}
}

func (p *Processor) handleMakeMove(cmd Command) ProcessorResponse {
	args, ok := cmd.Args.(core.MoveRequest)
	if !ok {
		return p.errorResponse("invalid arguments", core.ErrInvalidRequest)
	}

	from, err := parseSquare(args.From)
	if err != nil {
		return p.errorResponseWithDetails("invalid origin square", core.ErrInvalidSquare, err.Error())
	}
	to, err := parseSquare(args.To)
	if err != nil {
		return p.errorResponseWithDetails("invalid destination square", core.ErrInvalidSquare, err.Error())
	}

	snap, err := p.svc.AttemptMove(cmd.GameID, from, to)
	if err != nil {
		return p.serviceError(err)
	}
	return ProcessorResponse{Success: true, Data: buildGameResponse(snap)}
}

func (p *Processor) handleGetBoard(cmd Command) ProcessorResponse {
	snap, err := p.svc.Snapshot(cmd.GameID)
	if err != nil {
		return p.serviceError(err)
	}
	return ProcessorResponse{
		Success: true,
		Data: core.BoardResponse{
			Placement: snap.Placement,
			Board:     snap.ASCII,
		},
	}
}

// buildGameResponse constructs standard game response
func buildGameResponse(snap service.Snapshot) core.GameResponse {
	resp := core.GameResponse{
		GameID:    snap.GameID,
		Name:      snap.Name,
		Turn:      snap.Turn.Short(),
		State:     snap.State.String(),
		Finished:  snap.Finished,
		Placement: snap.Placement,
		Version:   snap.Version,
		Pieces:    make([]core.PieceInfo, 0, len(snap.Pieces)),
	}
	for _, pp := range snap.Pieces {
		resp.Pieces = append(resp.Pieces, core.PieceInfo{
			Square: pp.Square.String(),
			Kind:   pp.Piece.Kind.String(),
			Side:   pp.Piece.Side.Short(),
			Symbol: string(pp.Piece.Symbol()),
		})
	}
	if m := snap.LastMove; m != nil {
		resp.LastMove = &core.MoveInfo{
			From: m.From.String(),
			To:   m.To.String(),
			Side: m.Piece.Side.Short(),
		}
		if m.Captured != nil {
			resp.LastMove.Captured = string(m.Captured.Symbol())
		}
	}
	return resp
}

// serviceError maps service and engine errors onto API error codes.
func (p *Processor) serviceError(err error) ProcessorResponse {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return p.errorResponse("game not found", core.ErrGameNotFound)
	case errors.Is(err, service.ErrResourceLimit):
		return p.errorResponseWithDetails("game limit reached", core.ErrResourceLimit, err.Error())
	case errors.Is(err, game.ErrInvalidMove):
		return p.errorResponseWithDetails("illegal move", core.ErrInvalidMove, err.Error())
	default:
		return p.errorResponseWithDetails("internal error", core.ErrInternalError, err.Error())
	}
}

func (p *Processor) errorResponse(message, code string) ProcessorResponse {
	return ProcessorResponse{
		Success: false,
		Error: &core.ErrorResponse{
			Error: message,
			Code:  code,
		},
	}
}

func (p *Processor) errorResponseWithDetails(message, code, details string) ProcessorResponse {
	resp := p.errorResponse(message, code)
	resp.Error.Details = details
	return resp
}
