package entry

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cloud.google.com/go/civil"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/Flyrell/willpower/internal/hashutil"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS daily_entries (
	id         TEXT NOT NULL,
	habit      TEXT NOT NULL,
	entry_date TEXT NOT NULL,
	completed  INTEGER NOT NULL DEFAULT 0,
	notes      TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL,
	UNIQUE (habit, entry_date)
);
CREATE INDEX IF NOT EXISTS idx_daily_entries_completed ON daily_entries (habit, completed, entry_date);
`

const selectColumns = `SELECT id, entry_date, completed, notes, created_at, updated_at FROM daily_entries`

// SQLiteStore keeps entries for one habit in a shared SQLite database. The
// (habit, entry_date) unique key holds the one-entry-per-day invariant.
type SQLiteStore struct {
	db     *sql.DB
	slug   string
	logger *zap.Logger
}

// OpenSQLite opens (creating if needed) the database at path and scopes the
// returned store to one habit.
func OpenSQLite(path, slug string, logger *zap.Logger) (*SQLiteStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrating database: %w", err)
	}

	logger.Debug("sqlite store opened", zap.String("path", path), zap.String("habit", slug))
	return &SQLiteStore{db: db, slug: slug, logger: logger}, nil
}

func (s *SQLiteStore) Save(e Entry) (Entry, error) {
	if !e.Date.IsValid() {
		return Entry{}, fmt.Errorf("invalid entry date %q", e.Date)
	}
	e = stamp(e)
	e.ID = hashutil.EntryID(s.slug, e.Date)

	_, err := s.db.Exec(`
		INSERT INTO daily_entries (id, habit, entry_date, completed, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (habit, entry_date) DO UPDATE SET
			completed  = excluded.completed,
			notes      = excluded.notes,
			updated_at = excluded.updated_at`,
		e.ID, s.slug, e.Date.String(), e.Completed, e.Notes,
		e.CreatedAt.Format(time.RFC3339Nano), e.UpdatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Entry{}, fmt.Errorf("saving entry '%s': %w", e.Date, err)
	}

	s.logger.Debug("entry saved",
		zap.String("habit", s.slug),
		zap.String("date", e.Date.String()),
		zap.Bool("completed", e.Completed))
	return s.Get(e.Date)
}

func (s *SQLiteStore) Get(d civil.Date) (Entry, error) {
	row := s.db.QueryRow(selectColumns+` WHERE habit = ? AND entry_date = ?`, s.slug, d.String())
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("entry '%s' %w", d, ErrNotFound)
	}
	return e, err
}

func (s *SQLiteStore) Range(from, to civil.Date) ([]Entry, error) {
	return s.query(selectColumns+` WHERE habit = ? AND entry_date BETWEEN ? AND ? ORDER BY entry_date`,
		s.slug, from.String(), to.String())
}

func (s *SQLiteStore) Completed() ([]Entry, error) {
	return s.query(selectColumns+` WHERE habit = ? AND completed = 1 ORDER BY entry_date`, s.slug)
}

func (s *SQLiteStore) All() ([]Entry, error) {
	return s.query(selectColumns+` WHERE habit = ? ORDER BY entry_date`, s.slug)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) query(q string, args ...any) ([]Entry, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(sc scanner) (Entry, error) {
	var (
		e                Entry
		date             string
		created, updated string
	)
	if err := sc.Scan(&e.ID, &date, &e.Completed, &e.Notes, &created, &updated); err != nil {
		return Entry{}, err
	}

	d, err := civil.ParseDate(date)
	if err != nil {
		return Entry{}, fmt.Errorf("parsing entry date %q: %w", date, err)
	}
	e.Date = d
	e.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
	e.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updated)
	return e, nil
}
