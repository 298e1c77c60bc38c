package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"clinic-api/config"

	"github.com/google/uuid"
)

// FileStore abstracts where uploaded medical file bytes live.
// The database keeps only the key returned by Save.
type FileStore interface {
	Save(filename string, content io.Reader) (string, error)
	Remove(key string) error
}

type localFileStore struct {
	baseDir string
}

func NewLocalFileStore(cfg config.StorageConfig) (FileStore, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &localFileStore{baseDir: cfg.UploadDir}, nil
}

func (s *localFileStore) Save(filename string, content io.Reader) (string, error) {
	// Keep the extension, replace the name to avoid collisions and path tricks
	ext := filepath.Ext(filepath.Base(filename))
	key := uuid.New().String() + ext

	f, err := os.Create(filepath.Join(s.baseDir, key))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		os.Remove(f.Name())
		return "", err
	}

	return key, nil
}

func (s *localFileStore) Remove(key string) error {
	if strings.Contains(key, "..") || strings.ContainsRune(key, os.PathSeparator) {
		return fmt.Errorf("invalid file key: %s", key)
	}
	return os.Remove(filepath.Join(s.baseDir, key))
}
