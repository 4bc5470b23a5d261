package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// Filename is the well-known name of the preferences file inside the
// configuration directory.
const Filename = "preferences.json"

// DefaultPath returns the conventional preferences file location under the
// given application base directory: <base>/Configuration/preferences.json.
func DefaultPath(baseDir string) string {
	return filepath.Join(baseDir, "Configuration", Filename)
}

// Store reads and writes the preferences file at a fixed path. The path is
// supplied at construction so tests and callers can point it anywhere.
type Store struct {
	path string
}

// NewStore creates a Store for the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the file path this store operates on.
func (s *Store) Path() string {
	return s.path
}

// Load returns the persisted preferences. A missing file is not an error:
// the default record is written to disk and returned. Content that does not
// decode as JSON is also not an error: the default record is returned and
// the file is left as-is, to be repaired by the next Save. Other I/O errors
// (permissions, unreadable path) are returned to the caller.
func (s *Store) Load() (Preferences, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		p := Default()
		if err := s.Save(p); err != nil {
			return Preferences{}, fmt.Errorf("persisting default preferences: %w", err)
		}
		slog.Info("created default preferences file", "path", s.path)
		return p, nil
	}
	if err != nil {
		return Preferences{}, fmt.Errorf("reading preferences file: %w", err)
	}

	// Decode over a fully-defaulted record so that a partial file keeps the
	// built-in defaults for any keys it omits.
	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		slog.Warn("preferences file is not valid JSON, using defaults",
			"path", s.path, "error", err)
		return Default(), nil
	}
	return p, nil
}

// Save writes the record as indented JSON, overwriting the whole file.
// The containing directory is created if missing. There is no
// temp-file-then-rename step; a crash mid-write leaves a file the next Load
// masks with defaults.
func (s *Store) Save(p Preferences) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating configuration directory %q: %w", dir, err)
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling preferences: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing preferences file: %w", err)
	}
	return nil
}
