package habit

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Flyrell/willpower/internal/hashutil"
	"github.com/Flyrell/willpower/internal/stringutil"
)

// Habit is a single tracked daily challenge.
type Habit struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

// Registry holds all registered habits.
type Registry struct {
	Habits []Habit `json:"habits"`
}

// Dir returns the global willpower data directory.
func Dir(homeDir string) string {
	return filepath.Join(homeDir, ".willpower")
}

// RegistryPath returns the path to the global habits.json.
func RegistryPath(homeDir string) string {
	return filepath.Join(Dir(homeDir), "habits.json")
}

// LogDir returns the directory for a habit's entry files.
func LogDir(homeDir, slug string) string {
	return filepath.Join(Dir(homeDir), slug)
}

// DatabasePath returns the path of the shared SQLite database.
func DatabasePath(homeDir string) string {
	return filepath.Join(Dir(homeDir), "willpower.db")
}

// ReadRegistry reads the global habit registry.
// Returns an empty registry if the file does not exist.
func ReadRegistry(homeDir string) (*Registry, error) {
	data, err := os.ReadFile(RegistryPath(homeDir))
	if errors.Is(err, os.ErrNotExist) {
		return &Registry{}, nil
	}
	if err != nil {
		return nil, err
	}

	var reg Registry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("reading habit registry: %w", err)
	}
	return &reg, nil
}

// WriteRegistry writes the global habit registry, creating the directory if needed.
func WriteRegistry(homeDir string, reg *Registry) error {
	if err := os.MkdirAll(Dir(homeDir), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(RegistryPath(homeDir), data, 0644)
}

// Find looks up a habit by name. Returns nil if not found.
func Find(reg *Registry, name string) *Habit {
	for i := range reg.Habits {
		if reg.Habits[i].Name == name {
			return &reg.Habits[i]
		}
	}
	return nil
}

// Resolve looks up a habit by ID, then by name, then by slug.
func Resolve(reg *Registry, identifier string) *Habit {
	for i := range reg.Habits {
		if reg.Habits[i].ID == identifier {
			return &reg.Habits[i]
		}
	}
	if h := Find(reg, identifier); h != nil {
		return h
	}
	for i := range reg.Habits {
		if reg.Habits[i].Slug == identifier {
			return &reg.Habits[i]
		}
	}
	return nil
}

// Create registers a new habit and creates its log directory.
func Create(homeDir, name string, now time.Time) (*Habit, error) {
	slug := stringutil.Slugify(name)
	if slug == "" {
		return nil, fmt.Errorf("habit name '%s' must contain letters or digits", name)
	}

	reg, err := ReadRegistry(homeDir)
	if err != nil {
		return nil, err
	}
	for _, h := range reg.Habits {
		if h.Name == name || h.Slug == slug {
			return nil, fmt.Errorf("habit '%s' already exists", h.Name)
		}
	}

	h := Habit{
		ID:        hashutil.GenerateID(name),
		Name:      name,
		Slug:      slug,
		CreatedAt: now.UTC(),
	}
	reg.Habits = append(reg.Habits, h)

	if err := os.MkdirAll(LogDir(homeDir, slug), 0755); err != nil {
		return nil, err
	}
	if err := WriteRegistry(homeDir, reg); err != nil {
		return nil, err
	}
	return &h, nil
}

// Remove deletes a habit from the registry together with its log directory.
// Entries kept in the shared SQLite database are left in place.
func Remove(homeDir, identifier string) (*Habit, error) {
	reg, err := ReadRegistry(homeDir)
	if err != nil {
		return nil, err
	}

	found := Resolve(reg, identifier)
	if found == nil {
		return nil, fmt.Errorf("habit '%s' not found", identifier)
	}
	removed := *found

	habits := make([]Habit, 0, len(reg.Habits))
	for _, h := range reg.Habits {
		if h.ID != removed.ID {
			habits = append(habits, h)
		}
	}
	reg.Habits = habits

	if err := WriteRegistry(homeDir, reg); err != nil {
		return nil, err
	}
	if err := os.RemoveAll(LogDir(homeDir, removed.Slug)); err != nil {
		return nil, err
	}
	return &removed, nil
}

// Select picks the habit a command should act on: the explicit identifier if
// given, else the configured default, else the only registered habit.
func Select(reg *Registry, identifier, defaultName string) (*Habit, error) {
	if identifier != "" {
		if h := Resolve(reg, identifier); h != nil {
			return h, nil
		}
		return nil, fmt.Errorf("habit '%s' not found", identifier)
	}
	if defaultName != "" {
		if h := Resolve(reg, defaultName); h != nil {
			return h, nil
		}
		return nil, fmt.Errorf("default habit '%s' not found in registry", defaultName)
	}
	switch len(reg.Habits) {
	case 0:
		return nil, fmt.Errorf("no habits found (create one with 'willpower habit add NAME')")
	case 1:
		return &reg.Habits[0], nil
	}
	return nil, fmt.Errorf("multiple habits found (use --habit or set default_habit)")
}
