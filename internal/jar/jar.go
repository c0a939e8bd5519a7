// Package jar keeps the success jar: short notes about past wins that can be
// drawn at random when motivation runs low.
package jar

import (
	"errors"
	"fmt"
	"math/rand"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Flyrell/willpower/internal/habit"
	"github.com/Flyrell/willpower/internal/hashutil"
)

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

var (
	// ErrNotFound is returned when no item has the requested ID.
	ErrNotFound = errors.New("not found")
	// ErrEmpty is returned when drawing from a jar with no items.
	ErrEmpty = errors.New("the jar is empty")
)

// Item is one recorded success.
type Item struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Store persists jar items.
type Store interface {
	// Add records a new success. Blank content is rejected.
	Add(content string, now time.Time) (Item, error)
	// List returns all items, newest first.
	List() ([]Item, error)
	// Remove deletes the item with the given ID and returns it.
	Remove(id string) (Item, error)
	Close() error
}

// Path returns the location of the JSON jar file.
func Path(homeDir string) string {
	return filepath.Join(habit.Dir(homeDir), "jar.json")
}

// Open returns the jar store using the named backend.
func Open(backend, homeDir string, logger *zap.Logger) (Store, error) {
	switch backend {
	case "", BackendJSON:
		return NewFileStore(Path(homeDir), logger), nil
	case BackendSQLite:
		return OpenSQLite(habit.DatabasePath(homeDir), logger)
	default:
		return nil, fmt.Errorf("unknown store backend %q (expected %s or %s)", backend, BackendJSON, BackendSQLite)
	}
}

// NewItem validates content and builds the item recorded at now.
func NewItem(content string, now time.Time) (Item, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return Item{}, fmt.Errorf("success cannot be empty")
	}
	seed := content + "\x00" + strconv.FormatInt(now.UnixNano(), 10)
	return Item{
		ID:        hashutil.GenerateIDFromSeed(seed),
		Content:   content,
		CreatedAt: now.UTC(),
	}, nil
}

// SortNewest orders items by creation time, newest first. Ties keep their
// relative order.
func SortNewest(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}

// Draw picks one item at random. intn must return a value in [0, n); nil
// uses math/rand.
func Draw(items []Item, intn func(n int) int) (Item, error) {
	if len(items) == 0 {
		return Item{}, ErrEmpty
	}
	if intn == nil {
		intn = rand.Intn
	}
	return items[intn(len(items))], nil
}
