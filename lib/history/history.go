// Package history persists REPL input between sessions.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Cap bounds how many entries are kept; the oldest fall off first.
const Cap = 500

// History is a bounded list of REPL inputs, newest last.
type History struct {
	Path    string
	Entries []string
}

// DefaultPath resolves the per-user history file, ~/.espresso/history.json.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".espresso", "history.json"), nil
}

// Load reads the history at path. A missing file is an empty history, not
// an error.
func Load(path string) (*History, error) {
	h := &History{Path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return h, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(data, &h.Entries); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	h.trim()
	return h, nil
}

// Add appends entry. Empty lines and a repeat of the newest entry are
// dropped, the way shells keep history readable.
func (h *History) Add(entry string) {
	if entry == "" {
		return
	}
	if n := len(h.Entries); n > 0 && h.Entries[n-1] == entry {
		return
	}
	h.Entries = append(h.Entries, entry)
	h.trim()
}

// Save writes the history back, creating its directory on first use.
func (h *History) Save() error {
	if err := os.MkdirAll(filepath.Dir(h.Path), 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(h.Entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(h.Path, data, 0644)
}

func (h *History) trim() {
	if len(h.Entries) > Cap {
		h.Entries = h.Entries[len(h.Entries)-Cap:]
	}
}
