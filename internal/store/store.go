package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// Keys for the records the application persists.
const (
	KeyToken       = "token"
	KeyTokenExpiry = "tokenExpiry"
	KeyProfile     = "profile"
	KeyInProgress  = "inProgressTaskIds"
)

// Store is a file-per-key local store. Each record is independently
// readable, writable and removable; there is no transactionality across
// records.
type Store struct {
	dir string
}

// Open returns a Store rooted at dir, creating the directory if needed.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory backing the store.
func (s *Store) Dir() string {
	return s.dir
}

// Get reads the record stored under key. A missing key reads as absent,
// never as an error.
func (s *Store) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read record %s: %w", key, err)
	}
	return data, true, nil
}

// Put writes the record stored under key.
func (s *Store) Put(key string, value []byte) error {
	if err := os.WriteFile(s.path(key), value, 0600); err != nil {
		return fmt.Errorf("failed to write record %s: %w", key, err)
	}
	return nil
}

// Delete removes the record stored under key. Deleting an absent record
// is not an error.
func (s *Store) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete record %s: %w", key, err)
	}
	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key)
}
