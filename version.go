package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/vyPal/Espresso/util"
)

const releaseURL = "https://api.github.com/repos/vyPal/Espresso/releases/latest"

func init() {
	commands = append(commands, &cli.Command{
		Name:     "version",
		Usage:    "Print the version and check for a newer release",
		Category: "version",
		Action:   version,
	})
	commands = append(commands, &cli.Command{
		Name:     "update",
		Usage:    "Update Espresso to the latest version",
		Category: "version",
		Action:   update,
	})
	commands = append(commands, &cli.Command{
		Name:     "autocomplete",
		Usage:    "Install shell autocomplete for Espresso",
		Category: "version",
		Action:   autocomplete,
	})
}

type release struct {
	TagName string `json:"tag_name"`
}

func fetchLatestRelease() (release, error) {
	resp, err := http.Get(releaseURL)
	if err != nil {
		return release{}, fmt.Errorf("fetching the latest release: %w", err)
	}
	defer resp.Body.Close()

	var rel release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return release{}, fmt.Errorf("decoding the release data: %w", err)
	}
	return rel, nil
}

// newerAvailable compares the running version against the released tag.
// When either side fails to parse it falls back to plain inequality, so a
// dev build still learns about releases.
func newerAvailable(current, tag string) bool {
	latest := strings.TrimPrefix(tag, "v")
	cur, errCur := util.ParseSemver(strings.TrimPrefix(current, "v"))
	lat, errLat := util.ParseSemver(latest)
	if errCur != nil || errLat != nil {
		return latest != "" && latest != current
	}
	return lat.Compare(cur) > 0
}

func version(c *cli.Context) error {
	fmt.Printf("Espresso %s\n", c.App.Version)

	rel, err := fetchLatestRelease()
	if err != nil {
		color.Yellow("Could not check for updates: %s", err)
		return nil
	}
	if newerAvailable(c.App.Version, rel.TagName) {
		fmt.Printf("A new version is available: %s. To update, run 'espresso update'\n", strings.TrimPrefix(rel.TagName, "v"))
	} else {
		fmt.Println("You're up to date!")
	}
	return nil
}

func update(c *cli.Context) error {
	if runtime.GOOS == "windows" {
		return cli.Exit(color.RedString("Windows automatic updates are not supported at this time."), 1)
	}

	rel, err := fetchLatestRelease()
	if err != nil {
		return cli.Exit(color.RedString("%s", err), 1)
	}

	if !newerAvailable(c.App.Version, rel.TagName) {
		fmt.Println("You're up to date!")
		return nil
	}

	latest := strings.TrimPrefix(rel.TagName, "v")
	fmt.Printf("A new version is available: %s. Updating...\n", latest)

	osSuffix := "Linux"
	if runtime.GOOS == "darwin" {
		osSuffix = "macOS"
	}

	resp, err := http.Get("https://github.com/vyPal/Espresso/releases/download/" + rel.TagName + "/espresso-" + osSuffix)
	if err != nil {
		return cli.Exit(color.RedString("Failed to download the new version: %s", err), 1)
	}
	defer resp.Body.Close()

	tmpFile, err := os.CreateTemp("", "espresso")
	if err != nil {
		return cli.Exit(color.RedString("Failed to create a temporary file: %s", err), 1)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := io.Copy(tmpFile, resp.Body); err != nil {
		return cli.Exit(color.RedString("Failed to write the temporary file: %s", err), 1)
	}
	if _, err := tmpFile.Seek(0, io.SeekStart); err != nil {
		return cli.Exit(color.RedString("Failed to rewind the temporary file: %s", err), 1)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return cli.Exit(color.RedString("Failed to get the home directory: %s", err), 1)
	}

	baseDir := filepath.Join(homeDir, ".local", "bin")
	if runtime.GOOS == "darwin" {
		baseDir = filepath.Join("/usr", "local", "bin")
	}
	dstFilePath := filepath.Join(baseDir, "espresso")

	// Keep the old binary until the new one is in place.
	oldFilePath := dstFilePath + ".old"
	if err := os.Rename(dstFilePath, oldFilePath); err != nil {
		return cli.Exit(color.RedString("Failed to move the old binary aside: %s", err), 1)
	}

	dstFile, err := os.Create(dstFilePath)
	if err != nil {
		return cli.Exit(color.RedString("Failed to create the new binary: %s", err), 1)
	}
	defer dstFile.Close()

	if _, err := io.Copy(dstFile, tmpFile); err != nil {
		return cli.Exit(color.RedString("Failed to copy the new binary: %s", err), 1)
	}
	if err := os.Chmod(dstFilePath, 0755); err != nil {
		return cli.Exit(color.RedString("Failed to make the new binary executable: %s", err), 1)
	}
	if err := os.Remove(oldFilePath); err != nil {
		return cli.Exit(color.RedString("Failed to remove the old binary: %s", err), 1)
	}

	fmt.Println("Update successful!")
	return nil
}

func downloadFile(url string, path string) error {
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, resp.Body)
	return err
}

func autocomplete(c *cli.Context) error {
	shell := filepath.Base(os.Getenv("SHELL"))
	homeDir, _ := os.UserHomeDir()
	var autocompleteScriptURL, shellConfigFile string

	switch shell {
	case "bash":
		autocompleteScriptURL = "https://raw.githubusercontent.com/vyPal/Espresso/master/autocomplete/bash_autocomplete"
		shellConfigFile = filepath.Join(homeDir, ".bashrc")
	case "zsh":
		autocompleteScriptURL = "https://raw.githubusercontent.com/vyPal/Espresso/master/autocomplete/zsh_autocomplete"
		shellConfigFile = filepath.Join(homeDir, ".zshrc")
	default:
		fmt.Println("Unsupported shell for autocomplete. Skipping...")
		return nil
	}

	installDir := filepath.Join(homeDir, ".local", "share", "Espresso")
	if err := os.MkdirAll(installDir, 0755); err != nil {
		return err
	}
	autocompleteScriptPath := filepath.Join(installDir, "espresso_autocomplete")

	fmt.Printf("Downloading autocomplete script for %s...\n", shell)
	if err := downloadFile(autocompleteScriptURL, autocompleteScriptPath); err != nil {
		return err
	}

	// Source it from the shell's rc file, once.
	file, err := os.OpenFile(shellConfigFile, os.O_RDWR, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	sourceLine := fmt.Sprintf("source %s", autocompleteScriptPath)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if strings.Contains(scanner.Text(), sourceLine) {
			fmt.Println("Autocomplete script already installed.")
			return nil
		}
	}

	if _, err := file.WriteString("\n" + sourceLine + "\n"); err != nil {
		return err
	}

	fmt.Println("Autocomplete script installed. It will be sourced automatically in new shell sessions.")
	fmt.Println("To source it in the current session, run:")
	relativePath := strings.Replace(autocompleteScriptPath, homeDir, "~", 1)
	fmt.Printf("\tsource %s\n", relativePath)
	return nil
}
