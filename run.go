package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fatih/color"
	"github.com/kr/pretty"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	"github.com/vyPal/Espresso/lib/interpreter"
	"github.com/vyPal/Espresso/lib/lexer"
	"github.com/vyPal/Espresso/lib/parser"
	"github.com/vyPal/Espresso/lib/project"
)

func init() {
	commands = append(commands, &cli.Command{
		Name:      "run",
		Usage:     "Run an Espresso program and print its value",
		Category:  "evaluate",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input-str",
				Aliases: []string{"s"},
				Usage:   "Evaluate a string instead of a file",
			},
			&cli.BoolFlag{
				Name:    "only-parse",
				Aliases: []string{"p"},
				Usage:   "Only parse and dump the AST to stdout",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Dump the AST in Go syntax instead of JSON",
			},
			&cli.BoolFlag{
				Name:    "dump-ast",
				Aliases: []string{"d"},
				Usage:   "Also write the AST to ast_dump.json",
			},
			&cli.BoolFlag{
				Name:    "tokens",
				Aliases: []string{"t"},
				Usage:   "Print the token stream and stop",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "The directory containing " + project.FileName,
			},
		},
		Action: run,
	})
}

func run(c *cli.Context) error {
	src, name, err := sourceFromContext(c)
	if err != nil {
		return err
	}

	tokens, lexErr := lexer.Lex(src)
	if lexErr != nil {
		if !lexer.Recoverable(lexErr) {
			return cli.Exit(color.RedString("Error lexing %s: %s", name, lexErr), 1)
		}
		// The stream is still parseable; report and keep going.
		color.Yellow("Warning: %s", lexErr)
	}

	if c.Bool("tokens") {
		printTokenTable(os.Stdout, tokens)
		return nil
	}

	prog, err := parser.Parse(tokens)
	if err != nil {
		return cli.Exit(color.RedString("Error parsing %s: %s", name, err), 1)
	}

	if c.Bool("only-parse") {
		if err := dumpAST(os.Stdout, prog, c.Bool("pretty")); err != nil {
			return cli.Exit(color.RedString("Error encoding AST: %s", err), 1)
		}
		return nil
	}

	if c.Bool("dump-ast") {
		astFile, err := os.Create("ast_dump.json")
		if err != nil {
			return cli.Exit(color.RedString("Error creating AST dump file: %s", err), 1)
		}
		defer astFile.Close()
		if err := dumpAST(astFile, prog, false); err != nil {
			return cli.Exit(color.RedString("Error encoding AST: %s", err), 1)
		}
	}

	result, err := interpreter.Run(prog)
	if err != nil {
		return cli.Exit(color.RedString("Error running %s: %s", name, err), 1)
	}

	fmt.Println(result)
	return nil
}

// sourceFromContext resolves the program text: the -s flag wins, then the
// file argument, then the project config's main file.
func sourceFromContext(c *cli.Context) (src, name string, err error) {
	if s := c.String("input-str"); s != "" {
		return s, "input", nil
	}

	filename := c.Args().First()
	if filename == "" {
		dir := c.String("config")
		if dir == "" {
			dir = "."
		}
		conf, err := project.Load(dir)
		if err != nil {
			return "", "", cli.Exit(color.RedString("Error: No file specified and no %s found", project.FileName), 1)
		}
		filename = filepath.Join(dir, conf.Main)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return "", "", cli.Exit(color.RedString("Error reading %s: %s", filename, err), 1)
	}
	return string(data), filename, nil
}

func dumpAST(w io.Writer, prog *parser.Program, goSyntax bool) error {
	if goSyntax {
		_, err := fmt.Fprintf(w, "%# v\n", pretty.Formatter(prog))
		return err
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(prog)
}

func printTokenTable(w io.Writer, tokens []lexer.Token) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Type", "Lexeme", "Value", "Line", "Col"})
	for i, tok := range tokens {
		value := ""
		if tok.Type == lexer.NUMBER {
			value = strconv.FormatInt(tok.Value, 10)
		}
		table.Append([]string{
			strconv.Itoa(i),
			tok.Type.String(),
			tok.Lexeme,
			value,
			strconv.Itoa(tok.Line),
			strconv.Itoa(tok.Col),
		})
	}
	table.Render()
}
