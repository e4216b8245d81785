package processor

import (
	"minichess/internal/core"
)

// CommandType defines the type of command being executed
type CommandType int

const (
	CmdCreateGame CommandType = iota
	CmdGetGame
	CmdDeleteGame
	CmdGetMoves
	CmdGetSquare
	CmdMakeMove
	CmdGetBoard
)

// Command is a unified structure for all processor operations
type Command struct {
	Type   CommandType
	GameID string // For game-specific commands
	Args   any    // Command-specific arguments
}

// ProcessorResponse wraps the response with metadata
type ProcessorResponse struct {
	Success bool                `json:"success"`
	Data    any                 `json:"data,omitempty"`
	Error   *core.ErrorResponse `json:"error,omitempty"`
}

func NewCreateGameCommand() Command {
	return Command{Type: CmdCreateGame}
}

func NewGetGameCommand(gameID string) Command {
	return Command{
		Type:   CmdGetGame,
		GameID: gameID,
	}
}

func NewDeleteGameCommand(gameID string) Command {
	return Command{
		Type:   CmdDeleteGame,
		GameID: gameID,
	}
}

// NewGetMovesCommand asks for the legal destinations from square.
func NewGetMovesCommand(gameID, square string) Command {
	return Command{
		Type:   CmdGetMoves,
		GameID: gameID,
		Args:   square,
	}
}

// NewGetSquareCommand asks for the occupant of square and its moves.
func NewGetSquareCommand(gameID, square string) Command {
	return Command{
		Type:   CmdGetSquare,
		GameID: gameID,
		Args:   square,
	}
}

func NewMakeMoveCommand(gameID string, req core.MoveRequest) Command {
	return Command{
		Type:   CmdMakeMove,
		GameID: gameID,
		Args:   req,
	}
}

func NewGetBoardCommand(gameID string) Command {
	return Command{
		Type:   CmdGetBoard,
		GameID: gameID,
	}
}
