package jar

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS success_jar (
	id         TEXT PRIMARY KEY,
	content    TEXT NOT NULL,
	created_at INTEGER NOT NULL
);
`

// SQLiteStore keeps the jar in the shared SQLite database. created_at holds
// Unix nanoseconds so ordering is numeric.
type SQLiteStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// OpenSQLite opens (creating if needed) the database at path.
func OpenSQLite(path string, logger *zap.Logger) (*SQLiteStore, error) {
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
	return &SQLiteStore{db: db, logger: logger}, nil
}

func (s *SQLiteStore) Add(content string, now time.Time) (Item, error) {
	item, err := NewItem(content, now)
	if err != nil {
		return Item{}, err
	}

	_, err = s.db.Exec(`INSERT INTO success_jar (id, content, created_at) VALUES (?, ?, ?)`,
		item.ID, item.Content, item.CreatedAt.UnixNano())
	if err != nil {
		return Item{}, fmt.Errorf("adding jar item: %w", err)
	}
	s.logger.Debug("jar item added", zap.String("id", item.ID))
	return item, nil
}

func (s *SQLiteStore) List() ([]Item, error) {
	rows, err := s.db.Query(`SELECT id, content, created_at FROM success_jar ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *SQLiteStore) Remove(id string) (Item, error) {
	it, err := scanItem(s.db.QueryRow(`SELECT id, content, created_at FROM success_jar WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Item{}, fmt.Errorf("jar item '%s' %w", id, ErrNotFound)
	}
	if err != nil {
		return Item{}, err
	}

	if _, err := s.db.Exec(`DELETE FROM success_jar WHERE id = ?`, id); err != nil {
		return Item{}, fmt.Errorf("removing jar item '%s': %w", id, err)
	}
	s.logger.Debug("jar item removed", zap.String("id", id))
	return it, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(sc scanner) (Item, error) {
	var (
		it      Item
		created int64
	)
	if err := sc.Scan(&it.ID, &it.Content, &created); err != nil {
		return Item{}, err
	}
	it.CreatedAt = time.Unix(0, created).UTC()
	return it, nil
}
