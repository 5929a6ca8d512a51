package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/idilsaglam/cards/internal/board"
	"github.com/idilsaglam/cards/internal/model"
)

// JSON-backed storage. Single file, human-readable, portable.
// No locking; fine for a local single-user CLI.

const DefaultFileName = "cards.json"

// DefaultPath is cards.json in the working directory.
func DefaultPath() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}
	return filepath.Join(wd, DefaultFileName), nil
}

// Exists reports whether a data file is present at p.
func Exists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

// Load reads the board at p. A missing file is an empty board.
func Load(p string) (board.Snapshot, error) {
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return board.Snapshot{}, nil
		}
		return board.Snapshot{}, fmt.Errorf("read file: %w", err)
	}
	var s board.Snapshot
	if err := json.Unmarshal(b, &s); err != nil {
		return board.Snapshot{}, fmt.Errorf("json unmarshal: %w", err)
	}
	return s, nil
}

// Save writes s to p through a temp file so a crash never leaves half a file.
func Save(p string, s board.Snapshot) error {
	if s.Active == nil {
		s.Active = []model.Card{}
	}
	if s.Removed == nil {
		s.Removed = []model.Card{}
	}
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(p), "."+filepath.Base(p)+".*")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
