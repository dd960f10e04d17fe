package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/vyPal/Espresso/lib/project"
	"github.com/vyPal/Espresso/util"
)

func init() {
	commands = append(commands, &cli.Command{
		Name:      "init",
		Usage:     "Initialize a new Espresso project",
		Category:  "project",
		ArgsUsage: "[dir]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "name",
				Aliases: []string{"n"},
				Usage:   "The name of the project",
			},
			&cli.StringFlag{
				Name:    "version",
				Aliases: []string{"v"},
				Usage:   "The version of the project",
			},
			&cli.StringFlag{
				Name:    "main",
				Aliases: []string{"m"},
				Usage:   "The main file of the project",
			},
			&cli.StringFlag{
				Name:    "author",
				Aliases: []string{"a"},
				Usage:   "The author of the project",
			},
			&cli.StringFlag{
				Name:    "license",
				Aliases: []string{"l"},
				Usage:   "The license of the project",
			},
		},
		Action: initProject,
	})
}

const sampleProgram = "let x = 13;\nlet y = 2;\nx + y * 100\n"

func initProject(c *cli.Context) error {
	rootDir := c.Args().First()
	if rootDir == "" {
		rootDir = "."
	}

	if _, err := os.Stat(rootDir); !os.IsNotExist(err) {
		files, err := os.ReadDir(rootDir)
		if err != nil {
			return err
		}
		if len(files) > 0 {
			if !util.Default.YesNo("The directory is not empty, continue?", false) {
				return nil
			}
		}
	} else {
		if err := os.Mkdir(rootDir, 0755); err != nil {
			return err
		}
		fmt.Println("Created directory:", rootDir)
	}

	srcDir := filepath.Join(rootDir, "src")
	if _, err := os.Stat(srcDir); os.IsNotExist(err) {
		if err := os.Mkdir(srcDir, 0755); err != nil {
			return err
		}
		fmt.Println("Created directory:", srcDir)
	}

	mainFile := filepath.Join(srcDir, "main.espr")
	if _, err := os.Stat(mainFile); os.IsNotExist(err) {
		if err := os.WriteFile(mainFile, []byte(sampleProgram), 0644); err != nil {
			return err
		}
		fmt.Println("Created file:", mainFile)
	}

	conf := project.EspConf{}
	if util.Default.YesNo("Use default configuration?", true) {
		conf.CreateDefault(filepath.Base(rootDir))
	} else {
		conf.Name = flagOrPrompt(c, "name", "Project name", "NewProject")
		conf.Description = util.Default.String("Project description", "A new Espresso project")
		conf.Version = flagOrPrompt(c, "version", "Project version", "1.0.0")
		conf.Main = flagOrPrompt(c, "main", "Main file", "src/main.espr")
		conf.SourceDir = "src"
		conf.Author = flagOrPrompt(c, "author", "Author", "Anonymous")
		conf.License = flagOrPrompt(c, "license", "License", "MIT")
	}

	confPath := filepath.Join(rootDir, project.FileName)
	if err := conf.Save(confPath, false); err != nil {
		return err
	}
	fmt.Println("Created file:", confPath)

	fmt.Println("----------------------------------------")
	fmt.Println("Project initialized successfully!")
	fmt.Println("Run 'cd", rootDir, "&& espresso run' to run it.")
	fmt.Println("----------------------------------------")

	return nil
}

// flagOrPrompt answers from the flag when it was given so scripted init
// runs need no input.
func flagOrPrompt(c *cli.Context, flag, prompt, def string) string {
	if v := c.String(flag); v != "" {
		return v
	}
	return util.Default.String(prompt, def)
}
