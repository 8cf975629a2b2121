package repl

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"sync"
)

const defaultHistorySize = 1000

// History manages command history for the REPL. It is safe for concurrent
// use so that a shutdown hook can save it while the loop is reading.
type History struct {
	mu      sync.Mutex
	entries []string
	maxSize int
	file    string
}

// NewHistory creates a History persisted to file. An empty file keeps
// history in memory only.
func NewHistory(file string) *History {
	return &History{
		entries: make([]string, 0),
		maxSize: defaultHistorySize,
		file:    file,
	}
}

// Add adds a command to history, evicting the oldest entry when full.
func (h *History) Add(cmd string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.add(cmd)
}

func (h *History) add(cmd string) {
	h.entries = append(h.entries, cmd)
	if len(h.entries) > h.maxSize {
		h.entries = h.entries[len(h.entries)-h.maxSize:]
	}
}

// Entries returns all entries, oldest first.
func (h *History) Entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.entries)
}

// Len returns the number of entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Load appends the entries stored in the history file.
func (h *History) Load() error {
	if h.file == "" {
		return nil
	}

	file, err := os.Open(h.file)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer file.Close()

	h.mu.Lock()
	defer h.mu.Unlock()
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			h.add(line)
		}
	}
	return scanner.Err()
}

// Save writes the history file, creating its directory if needed.
func (h *History) Save() error {
	if h.file == "" {
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(h.file), 0o700); err != nil {
		return err
	}

	file, err := os.OpenFile(h.file, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(file)
	for _, entry := range h.entries {
		if _, err := w.WriteString(entry + "\n"); err != nil {
			file.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
