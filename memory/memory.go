// Package memory provides NoteStore implementations for the single persisted
// note: a file-backed store for real use and a volatile in-memory store for
// tests. Both overwrite wholesale on Save — last writer wins; there is no
// append semantics and no history.
package memory

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileStore persists the note as a single UTF-8 file, created lazily on the
// first Save. Reads before the first Save report ok=false.
type FileStore struct {
	path string
}

// NewFileStore constructs a store writing to the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Save overwrites the note file wholesale, creating parent directories as
// needed.
func (s *FileStore) Save(note string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create note directory: %w", err)
	}

	if err := os.WriteFile(s.path, []byte(note), 0o600); err != nil {
		return fmt.Errorf("failed to write note: %w", err)
	}

	return nil
}

// Load returns the trimmed note. ok is false when the file does not exist or
// holds only whitespace.
func (s *FileStore) Load() (string, bool, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read note: %w", err)
	}

	note := strings.TrimSpace(string(data))
	return note, note != "", nil
}

// InMemoryStore is a volatile NoteStore for tests and demos.
type InMemoryStore struct {
	mu   sync.RWMutex
	note string
	set  bool
}

// NewInMemoryStore constructs an empty in-memory note store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

// Save overwrites the note.
func (s *InMemoryStore) Save(note string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.note = note
	s.set = true
	return nil
}

// Load returns the note, reporting ok=false before the first Save.
func (s *InMemoryStore) Load() (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.note, s.set && strings.TrimSpace(s.note) != "", nil
}
