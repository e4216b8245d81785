package cli

import (
	"fmt"

	"minichess/internal/board"
	"minichess/internal/game"
)

// Handler runs commands against a single local game.
type Handler struct {
	game *game.Game
	view *CLI
}

func NewHandler(view *CLI) *Handler {
	return &Handler{
		game: game.New(),
		view: view,
	}
}

// Game returns the game being played.
func (h *Handler) Game() *game.Game {
	return h.game
}

// Prompt returns the prompt for the current turn.
func (h *Handler) Prompt() string {
	return h.view.Prompt(h.game.Turn())
}

// ShowBoard draws the current position with no highlights.
func (h *Handler) ShowBoard() {
	h.view.DisplayBoard(h.game.Board(), nil)
}

// ProcessCommand handles one command and returns false to exit.
func (h *Handler) ProcessCommand(cmd *Command) bool {
	switch cmd.Type {
	case CmdQuit:
		return false

	case CmdNone:
		return true

	case CmdNew:
		h.game = game.New()
		h.view.ShowMessage("New game. White to move.")
		h.ShowBoard()

	case CmdBoard:
		h.ShowBoard()

	case CmdHelp:
		h.view.ShowHelp()

	case CmdMoves:
		h.handleSelect(cmd.Args[0])

	case CmdMove:
		h.handleMove(cmd.Args[0], cmd.Args[1])

	default:
		h.view.ShowMessage(fmt.Sprintf("Unknown command: %q (type 'help')", cmd.Raw))
	}
	return true
}

func (h *Handler) handleSelect(label string) {
	sq, err := board.ParseLabel(label)
	if err != nil {
		h.view.ShowError(err)
		return
	}

	friendly, occupied := h.game.IsFriendly(sq)
	switch {
	case !occupied:
		h.view.ShowMessage(fmt.Sprintf("%s is empty", sq))
		return
	case !friendly:
		h.view.ShowMessage(fmt.Sprintf("%s holds an opposing piece", sq))
		return
	}

	moves := h.game.PossibleMoves(sq)
	h.view.DisplayBoard(h.game.Board(), moves)
	if len(moves) == 0 {
		h.view.ShowMessage(fmt.Sprintf("%s has no moves", sq))
		return
	}
	h.view.ShowMessage(fmt.Sprintf("%s can move to %v", sq, moves.Labels()))
}

func (h *Handler) handleMove(fromLabel, toLabel string) {
	from, err := board.ParseLabel(fromLabel)
	if err != nil {
		h.view.ShowError(err)
		return
	}
	to, err := board.ParseLabel(toLabel)
	if err != nil {
		h.view.ShowError(err)
		return
	}

	result, err := h.game.AttemptMove(from, to)
	if err != nil {
		h.view.ShowError(err)
		return
	}

	msg := fmt.Sprintf("%s %s-%s", result.Piece, result.From, result.To)
	if result.Captured != nil {
		msg += fmt.Sprintf(" takes %s", result.Captured)
	}
	h.view.ShowMove(msg)
	h.ShowBoard()
}
