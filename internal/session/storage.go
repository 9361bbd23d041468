package session

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrNoItem is returned by Storage.GetItem when the key has no value.
var ErrNoItem = errors.New("no item stored under key")

// Storage is durable key-addressed storage for small JSON values.
type Storage interface {
	GetItem(key string) ([]byte, error)
	SetItem(key string, value []byte) error
}

// FileStorage keeps each key in <Dir>/<key>.json.
type FileStorage struct {
	Dir string
}

// NewFileStorage creates a FileStorage rooted at dir.
func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{Dir: dir}
}

func (s *FileStorage) path(key string) string {
	return filepath.Join(s.Dir, key+".json")
}

// GetItem reads the value stored under key.
// Returns ErrNoItem if there is none.
func (s *FileStorage) GetItem(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoItem
	}
	return data, err
}

// SetItem writes value under key with mode 0600.
// The directory is created with mode 0700 if needed.
func (s *FileStorage) SetItem(key string, value []byte) error {
	if err := os.MkdirAll(s.Dir, 0700); err != nil {
		return err
	}
	return os.WriteFile(s.path(key), value, 0600)
}
