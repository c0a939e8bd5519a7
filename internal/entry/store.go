package entry

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"cloud.google.com/go/civil"
	"go.uber.org/zap"

	"github.com/Flyrell/willpower/internal/habit"
	"github.com/Flyrell/willpower/internal/hashutil"
)

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Open returns the store for a habit using the named backend.
func Open(backend, homeDir, slug string, logger *zap.Logger) (Store, error) {
	switch backend {
	case "", BackendJSON:
		return NewFileStore(habit.LogDir(homeDir, slug), slug, logger), nil
	case BackendSQLite:
		return OpenSQLite(habit.DatabasePath(homeDir), slug, logger)
	default:
		return nil, fmt.Errorf("unknown store backend %q (expected %s or %s)", backend, BackendJSON, BackendSQLite)
	}
}

// FileStore keeps one JSON file per day in a habit's log directory. File
// names are stable per day (see hashutil.EntryID).
type FileStore struct {
	dir    string
	slug   string
	logger *zap.Logger
}

// NewFileStore creates a store rooted at dir. A nil logger discards output.
func NewFileStore(dir, slug string, logger *zap.Logger) *FileStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileStore{dir: dir, slug: slug, logger: logger}
}

func (s *FileStore) path(d civil.Date) string {
	return filepath.Join(s.dir, hashutil.EntryID(s.slug, d))
}

// Save writes e as the entry for e.Date, replacing any previous entry for
// that day while keeping its creation time.
func (s *FileStore) Save(e Entry) (Entry, error) {
	if !e.Date.IsValid() {
		return Entry{}, fmt.Errorf("invalid entry date %q", e.Date)
	}

	e = stamp(e)
	if prev, err := s.Get(e.Date); err == nil {
		e.CreatedAt = prev.CreatedAt
	} else if !errors.Is(err, ErrNotFound) {
		return Entry{}, err
	}
	e.ID = hashutil.EntryID(s.slug, e.Date)

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return Entry{}, err
	}

	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return Entry{}, err
	}
	if err := os.WriteFile(s.path(e.Date), data, 0644); err != nil {
		return Entry{}, err
	}

	s.logger.Debug("entry saved",
		zap.String("habit", s.slug),
		zap.String("date", e.Date.String()),
		zap.Bool("completed", e.Completed))
	return e, nil
}

// Get reads the entry for a single day.
func (s *FileStore) Get(d civil.Date) (Entry, error) {
	data, err := os.ReadFile(s.path(d))
	if errors.Is(err, os.ErrNotExist) {
		return Entry{}, fmt.Errorf("entry '%s' %w", d, ErrNotFound)
	}
	if err != nil {
		return Entry{}, err
	}

	var e Entry
	if err := json.Unmarshal(data, &e); err != nil {
		return Entry{}, fmt.Errorf("reading entry '%s': %w", d, err)
	}
	return e, nil
}

func (s *FileStore) Range(from, to civil.Date) ([]Entry, error) {
	return s.filter(func(e Entry) bool {
		return !e.Date.Before(from) && !e.Date.After(to)
	})
}

func (s *FileStore) Completed() ([]Entry, error) {
	return s.filter(func(e Entry) bool { return e.Completed })
}

func (s *FileStore) All() ([]Entry, error) {
	return s.filter(func(Entry) bool { return true })
}

func (s *FileStore) Close() error { return nil }

func (s *FileStore) filter(keep func(Entry) bool) ([]Entry, error) {
	all, err := s.readAll()
	if err != nil {
		return nil, err
	}
	var out []Entry
	for _, e := range all {
		if keep(e) {
			out = append(out, e)
		}
	}
	sortByDate(out)
	return out, nil
}

func (s *FileStore) readAll() ([]Entry, error) {
	files, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, f.Name()))
		if err != nil {
			return nil, err
		}

		// Corrupted or partial files shouldn't block reading valid entries.
		var e Entry
		if err := json.Unmarshal(data, &e); err != nil || !e.Date.IsValid() {
			s.logger.Debug("skipping unreadable entry file",
				zap.String("habit", s.slug),
				zap.String("file", f.Name()),
				zap.Error(err))
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// stamp fills in missing timestamps from the current time.
func stamp(e Entry) Entry {
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = time.Now()
	}
	e.UpdatedAt = e.UpdatedAt.UTC()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = e.UpdatedAt
	}
	e.CreatedAt = e.CreatedAt.UTC()
	return e
}

func sortByDate(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
}
