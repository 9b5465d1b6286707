package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// File is a [Store] backed by a JSON state file. The file is written with
// mode 0600 because it carries a live credential.
type File struct {
	mu   sync.Mutex
	path string
}

// NewFile returns a file-backed store rooted at path. The parent directory
// must exist; the file itself is created on first Save.
func NewFile(path string) (*File, error) {
	if path == "" {
		return nil, fmt.Errorf("store: file path required")
	}
	if dir := filepath.Dir(path); dir != "" {
		if _, err := os.Stat(dir); err != nil {
			return nil, fmt.Errorf("store: state directory: %w", err)
		}
	}
	return &File{path: path}, nil
}

// Load implements [Store]. A missing or empty state file yields the zero
// Entry; a corrupt one is treated as no session rather than an error, so a
// damaged file never locks the user out of re-authenticating.
func (f *File) Load(_ context.Context) (Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	raw, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return Entry{}, nil
	}
	if err != nil {
		return Entry{}, fmt.Errorf("store: %w: %v", ErrUnavailable, err)
	}
	if len(raw) == 0 {
		return Entry{}, nil
	}

	var entry Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return Entry{}, nil
	}
	return entry, nil
}

// Save implements [Store]. The entry is written to a sibling temp file and
// renamed into place so a crash mid-write never leaves a torn state file.
func (f *File) Save(_ context.Context, entry Entry) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("store: encode session: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("store: %w: %v", ErrUnavailable, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("store: %w: %v", ErrUnavailable, err)
	}
	return nil
}

// Clear implements [Store].
func (f *File) Clear(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("store: %w: %v", ErrUnavailable, err)
	}
	return nil
}
