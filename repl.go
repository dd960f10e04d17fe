package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/vyPal/Espresso/lib/history"
	"github.com/vyPal/Espresso/lib/interpreter"
	"github.com/vyPal/Espresso/lib/lexer"
	"github.com/vyPal/Espresso/lib/parser"
)

func init() {
	commands = append(commands, &cli.Command{
		Name:     "repl",
		Usage:    "Start an interactive Espresso session",
		Category: "evaluate",
		Action:   repl,
	})
}

func repl(c *cli.Context) error {
	hist := loadHistory()

	fmt.Printf("Espresso %s. Each line is a full program; 'exit' leaves.\n", c.App.Version)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(">> ")
		if !scanner.Scan() {
			fmt.Println()
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}
		hist.Add(line)
		evalLine(os.Stdout, line)
	}

	if hist.Path != "" {
		if err := hist.Save(); err != nil {
			color.Yellow("Warning: could not save history: %s", err)
		}
	}
	return scanner.Err()
}

// evalLine runs one submitted program. Bindings never carry over to the
// next line; every line starts from an empty table.
func evalLine(out io.Writer, line string) {
	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)

	tokens, lexErr := lexer.Lex(line)
	if lexErr != nil {
		if !lexer.Recoverable(lexErr) {
			red.Fprintln(out, lexErr)
			return
		}
		yellow.Fprintln(out, lexErr)
	}

	prog, err := parser.Parse(tokens)
	if err != nil {
		red.Fprintln(out, err)
		return
	}

	result, err := interpreter.Run(prog)
	if err != nil {
		red.Fprintln(out, err)
		return
	}

	fmt.Fprintln(out, result)
}

// loadHistory never fails the session; at worst it returns an empty
// history with no backing file.
func loadHistory() *history.History {
	path, err := history.DefaultPath()
	if err != nil {
		return &history.History{}
	}
	hist, err := history.Load(path)
	if err != nil {
		color.Yellow("Warning: could not load history: %s", err)
		return &history.History{Path: path}
	}
	return hist
}
