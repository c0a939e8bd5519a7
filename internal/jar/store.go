package jar

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

type jarFile struct {
	Items []Item `json:"items"`
}

// FileStore keeps the whole jar in a single JSON file, oldest item first.
type FileStore struct {
	path   string
	logger *zap.Logger
}

// NewFileStore creates a store backed by the file at path. A nil logger
// discards output.
func NewFileStore(path string, logger *zap.Logger) *FileStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileStore{path: path, logger: logger}
}

func (s *FileStore) Add(content string, now time.Time) (Item, error) {
	item, err := NewItem(content, now)
	if err != nil {
		return Item{}, err
	}

	items, err := s.read()
	if err != nil {
		return Item{}, err
	}
	for _, it := range items {
		if it.ID == item.ID {
			return Item{}, fmt.Errorf("jar item '%s' already exists", item.ID)
		}
	}

	if err := s.write(append(items, item)); err != nil {
		return Item{}, err
	}
	s.logger.Debug("jar item added", zap.String("id", item.ID))
	return item, nil
}

func (s *FileStore) List() ([]Item, error) {
	items, err := s.read()
	if err != nil {
		return nil, err
	}
	// Newest additions first when timestamps tie.
	out := make([]Item, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		out = append(out, items[i])
	}
	SortNewest(out)
	return out, nil
}

func (s *FileStore) Remove(id string) (Item, error) {
	items, err := s.read()
	if err != nil {
		return Item{}, err
	}

	for i, it := range items {
		if it.ID != id {
			continue
		}
		kept := append(items[:i:i], items[i+1:]...)
		if err := s.write(kept); err != nil {
			return Item{}, err
		}
		s.logger.Debug("jar item removed", zap.String("id", id))
		return it, nil
	}
	return Item{}, fmt.Errorf("jar item '%s' %w", id, ErrNotFound)
}

func (s *FileStore) Close() error { return nil }

func (s *FileStore) read() ([]Item, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var f jarFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("reading success jar: %w", err)
	}
	return f.Items, nil
}

func (s *FileStore) write(items []Item) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(jarFile{Items: items}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}
