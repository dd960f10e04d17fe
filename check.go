package main

import (
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/urfave/cli/v2"

	"github.com/vyPal/Espresso/lib/analyzer"
	"github.com/vyPal/Espresso/lib/lexer"
	"github.com/vyPal/Espresso/lib/parser"
	"github.com/vyPal/Espresso/lib/project"
)

func init() {
	commands = append(commands, &cli.Command{
		Name:      "check",
		Usage:     "Lex, parse and analyze files without running them",
		Category:  "evaluate",
		ArgsUsage: "[files...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "The directory containing " + project.FileName,
			},
		},
		Action: check,
	})
}

func check(c *cli.Context) error {
	files := c.Args().Slice()
	if len(files) == 0 {
		dir := c.String("config")
		if dir == "" {
			dir = "."
		}
		conf, err := project.Load(dir)
		if err != nil {
			return cli.Exit(color.RedString("Error: No files specified and no %s found", project.FileName), 1)
		}
		files = []string{filepath.Join(dir, conf.Main)}
	}

	clean := true
	for _, filename := range files {
		if !checkFile(filename) {
			clean = false
		}
	}

	if !clean {
		return cli.Exit(color.RedString("Problems found."), 1)
	}
	color.Green("No problems found.")
	return nil
}

// checkFile prints every diagnostic for one file and reports whether the
// file is free of errors. Warnings alone still count as clean.
func checkFile(filename string) bool {
	data, err := os.ReadFile(filename)
	if err != nil {
		color.Red("%s: %s", filename, err)
		return false
	}

	clean := true
	tokens, lexErr := lexer.Lex(string(data))
	if lexErr != nil {
		clean = false
		if merr, ok := lexErr.(*multierror.Error); ok {
			// One line per collected error, not the combined block.
			for _, e := range merr.Errors {
				color.Red("%s: %s", filename, e)
			}
		} else {
			color.Red("%s: %s", filename, lexErr)
		}
		if !lexer.Recoverable(lexErr) {
			return false
		}
	}

	prog, err := parser.Parse(tokens)
	if err != nil {
		color.Red("%s: %s", filename, err)
		return false
	}

	for _, d := range analyzer.Analyze(prog) {
		if d.Severity == analyzer.Error {
			clean = false
			color.Red("%s: %s", filename, d)
		} else {
			color.Yellow("%s: %s", filename, d)
		}
	}
	return clean
}
