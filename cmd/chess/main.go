// Package main runs a local two-player game in the terminal.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"minichess/internal/cli"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

func main() {
	var (
		color   = flag.String("color", "auto", "Board colours: auto, on, off, or a theme (brown, green, gray)")
		history = flag.String("history", "", "Optional readline history file")
	)
	flag.Parse()

	view := cli.New(os.Stdout)
	if err := view.SetTheme(themeFor(*color, term.IsTerminal(int(os.Stdout.Fd())))); err != nil {
		log.Fatalf("Invalid -color: %v", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     *history,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		log.Fatalf("Failed to start line editor: %v", err)
	}
	defer rl.Close()

	handler := cli.NewHandler(view)

	view.ShowWelcome()
	handler.ShowBoard()

	for {
		rl.SetPrompt(handler.Prompt())

		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "read error: %v\n", err)
			break
		}

		if !handler.ProcessCommand(cli.Parse(line)) {
			break
		}
	}
}

// themeFor resolves the -color flag; auto means colour on a terminal only.
func themeFor(flagValue string, tty bool) cli.ColorTheme {
	switch flagValue {
	case "auto":
		if tty {
			return cli.ThemeBrown
		}
		return cli.ThemeOff
	case "on":
		return cli.ThemeBrown
	default:
		return cli.ColorTheme(flagValue)
	}
}
