package main

import (
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

// Version is stamped by the release workflow via -ldflags; dev builds
// report 0.0.0.
var Version = "0.0.0"

// commands is filled by the init functions of the command files, one file
// per command.
var commands []*cli.Command

func main() {
	app := &cli.App{
		Name:                   "Espresso",
		Usage:                  "A tiny expression language with let bindings",
		Version:                Version,
		EnableBashCompletion:   true,
		UseShortOptionHandling: true,
		Commands:               commands,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(color.RedString("%s", err))
	}
}
