package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// FileStore keeps the catalog as a single JSON array of books on disk.
// Every load re-reads the file; there is no in-process cache.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Ping(ctx context.Context) error {
	if _, err := os.Stat(s.path); err != nil {
		return fmt.Errorf("catalog file: %w", err)
	}
	return nil
}

func (s *FileStore) LoadAll(ctx context.Context) ([]Book, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var books []Book
	if err := json.Unmarshal(data, &books); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	for i := range books {
		if books[i].Reviews == nil {
			books[i].Reviews = []Review{}
		}
	}
	return books, nil
}

func (s *FileStore) SaveAll(ctx context.Context, books []Book) error {
	data, err := json.MarshalIndent(books, "", "  ")
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	return nil
}
