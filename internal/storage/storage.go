// Package storage reads pipeline inputs and writes pipeline artifacts.
package storage

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Storage resolves relative file names against a data folder. An empty
// Folder leaves names as given.
type Storage struct {
	Folder string
}

// NewStorage creates a Storage for the given data folder.
func NewStorage(folder string) *Storage {
	return &Storage{Folder: folder}
}

// Path resolves name against the data folder.
func (s *Storage) Path(name string) string {
	if s == nil || s.Folder == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.Folder, name)
}

// ReadFile reads the named file.
func (s *Storage) ReadFile(name string) ([]byte, error) {
	path := s.Path(name)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}
	slog.Debug("Read file", "path", path, "bytes", len(data))
	return data, nil
}

// ReadLines reads the named file, trims surrounding whitespace from the whole
// text and splits it on newlines. An empty file yields no lines.
func (s *Storage) ReadLines(name string) ([]string, error) {
	data, err := s.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return SplitLines(string(data)), nil
}

// WriteString writes text to the named file, creating parent directories.
func (s *Storage) WriteString(name, text string) error {
	path := s.Path(name)
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("storage: create dir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	slog.Debug("Wrote file", "path", path, "bytes", len(text))
	return nil
}

// SplitLines trims text and splits it on newlines, dropping carriage returns.
func SplitLines(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, "\r")
	}
	return lines
}
