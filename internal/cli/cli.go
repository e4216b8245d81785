package cli

import (
	"fmt"
	"io"
	"strings"

	"minichess/internal/board"
	"minichess/internal/core"
	"minichess/internal/movegen"

	"github.com/fatih/color"
)

type CommandType int

const (
	CmdNone CommandType = iota
	CmdNew
	CmdMove
	CmdMoves
	CmdBoard
	CmdHelp
	CmdQuit
	CmdUnknown
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

// Parse turns one input line into a command. Square labels are lowercased;
// validation is left to the game.
func Parse(input string) *Command {
	input = strings.TrimSpace(input)
	parts := strings.Fields(strings.ToLower(input))
	if len(parts) == 0 {
		return &Command{Type: CmdNone}
	}

	cmd := parts[0]
	args := parts[1:]

	switch cmd {
	case "new":
		return &Command{Type: CmdNew}
	case "board":
		return &Command{Type: CmdBoard}
	case "help", "?":
		return &Command{Type: CmdHelp}
	case "quit", "exit":
		return &Command{Type: CmdQuit}
	case "moves":
		if len(args) != 1 {
			return &Command{Type: CmdUnknown, Raw: input}
		}
		return &Command{Type: CmdMoves, Args: args, Raw: input}
	}

	switch {
	case len(parts) == 2 && len(parts[0]) == 2 && len(parts[1]) == 2:
		return &Command{Type: CmdMove, Args: parts, Raw: input}
	case len(parts) == 1 && len(cmd) == 4:
		return &Command{Type: CmdMove, Args: []string{cmd[:2], cmd[2:]}, Raw: input}
	case len(parts) == 1 && len(cmd) == 2:
		// a lone square selects it
		return &Command{Type: CmdMoves, Args: parts, Raw: input}
	}
	return &Command{Type: CmdUnknown, Raw: input}
}

type ColorTheme string

const (
	ThemeOff   ColorTheme = "off"
	ThemeBrown ColorTheme = "brown"
	ThemeGreen ColorTheme = "green"
	ThemeGray  ColorTheme = "gray"
)

type themeColors struct {
	lightBg  string
	darkBg   string
	targetBg string
	white    string
	black    string
	reset    string
}

var themes = map[ColorTheme]themeColors{
	ThemeOff: {},
	ThemeBrown: {
		lightBg:  "\033[48;5;230m", // Beige
		darkBg:   "\033[48;5;94m",  // Brown
		targetBg: "\033[48;5;178m", // Gold
		white:    "\033[97m",
		black:    "\033[30m",
		reset:    "\033[0m",
	},
	ThemeGreen: {
		lightBg:  "\033[48;5;157m", // Light green
		darkBg:   "\033[48;5;22m",  // Dark green
		targetBg: "\033[48;5;178m",
		white:    "\033[97m",
		black:    "\033[30m",
		reset:    "\033[0m",
	},
	ThemeGray: {
		lightBg:  "\033[48;5;251m", // Light gray
		darkBg:   "\033[48;5;240m", // Dark gray
		targetBg: "\033[48;5;178m",
		white:    "\033[97m",
		black:    "\033[30m",
		reset:    "\033[0m",
	},
}

// CLI renders game state to a writer. Input is read by the caller.
type CLI struct {
	output io.Writer
	theme  ColorTheme

	errColor  *color.Color
	moveColor *color.Color
	turnColor map[core.Side]*color.Color
}

func New(output io.Writer) *CLI {
	c := &CLI{
		output:    output,
		errColor:  color.New(color.FgRed),
		moveColor: color.New(color.FgGreen),
		turnColor: map[core.Side]*color.Color{
			core.White: color.New(color.FgBlue, color.Bold),
			core.Black: color.New(color.FgRed, color.Bold),
		},
	}
	c.SetTheme(ThemeOff)
	return c
}

// SetTheme selects board colours. ThemeOff also disables coloured messages.
func (c *CLI) SetTheme(theme ColorTheme) error {
	if _, ok := themes[theme]; !ok {
		return fmt.Errorf("invalid theme: %s (use: off, brown, green, gray)", theme)
	}
	c.theme = theme

	for _, col := range c.colors() {
		if theme == ThemeOff {
			col.DisableColor()
		} else {
			col.EnableColor()
		}
	}
	return nil
}

func (c *CLI) colors() []*color.Color {
	return []*color.Color{c.errColor, c.moveColor, c.turnColor[core.White], c.turnColor[core.Black]}
}

func (c *CLI) ShowMessage(msg string) {
	fmt.Fprintln(c.output, msg)
}

func (c *CLI) ShowError(err error) {
	c.ShowMessage(c.errColor.Sprintf("Error: %v", err))
}

// ShowMove reports an accepted move.
func (c *CLI) ShowMove(msg string) {
	c.ShowMessage(c.moveColor.Sprint(msg))
}

// Prompt returns the input prompt for the side to move.
func (c *CLI) Prompt(turn core.Side) string {
	return "[" + c.turnColor[turn].Sprint(turn.Short()) + "]> "
}

// DisplayBoard draws b with white at the bottom. Squares in targets are
// marked: '*' on empty squares without colour, a highlight background with it.
func (c *CLI) DisplayBoard(b *board.Board, targets movegen.Set) {
	theme := themes[c.theme]
	var sb strings.Builder
	header := fileHeader()

	sb.WriteString("\n" + header)

	for rank := board.Size - 1; rank >= 0; rank-- {
		sb.WriteString(fmt.Sprintf("%d ", rank+1))
		for file := 0; file < board.Size; file++ {
			sq := board.Coord{File: file, Rank: rank}
			piece, occupied := b.Get(sq)
			target := targets.Has(sq)

			if c.theme == ThemeOff {
				switch {
				case occupied && target:
					sb.WriteString(fmt.Sprintf("%c*", piece.Symbol()))
				case occupied:
					sb.WriteString(fmt.Sprintf("%c ", piece.Symbol()))
				case target:
					sb.WriteString("* ")
				default:
					sb.WriteString(". ")
				}
				continue
			}

			bg := theme.darkBg
			if (rank+file)%2 == 1 {
				bg = theme.lightBg
			}
			if target {
				bg = theme.targetBg
			}
			if !occupied {
				sb.WriteString(fmt.Sprintf("%s  %s", bg, theme.reset))
				continue
			}
			color := theme.black
			if piece.Side == core.White {
				color = theme.white
			}
			sb.WriteString(fmt.Sprintf("%s%s%c %s", bg, color, piece.Symbol(), theme.reset))
		}
		sb.WriteString(fmt.Sprintf(" %d\n", rank+1))
	}
	sb.WriteString(header)

	c.ShowMessage(sb.String())
}

// fileHeader labels the board columns, aligned with the two-cell squares.
func fileHeader() string {
	labels := strings.Split(board.Files[:board.Size], "")
	return "  " + strings.Join(labels, " ") + "\n"
}

func (c *CLI) ShowHelp() {
	help := `Commands:
  <from> <to>      - Move a piece (e.g., b2 b4)
  <from><to>       - Same, without the space (e.g., g1f3)
  <square>         - Select a square and highlight its moves
  moves <square>   - Same as selecting
  board            - Redraw the board
  new              - Start over from the standard position
  quit/exit        - Exit the program
  help/?           - Show this help message`

	c.ShowMessage(help)
}

func (c *CLI) ShowWelcome() {
	c.ShowMessage("Welcome to Chess!")
	c.ShowMessage("White moves first. Enter moves as 'e2 e4' or 'e2e4'; type 'help' for more.")
	c.ShowMessage("")
}
