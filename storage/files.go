package storage

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const imageExt = ".jpg"

// FileStore writes downloaded attachments under a single upload
// directory, one file per message ID.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (f *FileStore) Save(messageID string, r io.Reader) (string, error) {
	path := filepath.Join(f.dir, messageID+imageExt)
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err = io.Copy(file, r); err != nil {
		_ = file.Close()
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	if err = file.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", path, err)
	}
	return path, nil
}

// Encode reads the stored file and returns its base64 transport encoding.
func (f *FileStore) Encode(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// Remove deletes a stored attachment; a missing file is not an error.
func (f *FileStore) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing %s: %w", path, err)
	}
	return nil
}
