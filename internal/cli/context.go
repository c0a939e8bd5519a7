package cli

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/Flyrell/willpower/internal/calendar"
	"github.com/Flyrell/willpower/internal/config"
	"github.com/Flyrell/willpower/internal/entry"
	"github.com/Flyrell/willpower/internal/habit"
	"github.com/Flyrell/willpower/internal/streak"
)

// session is the resolved context of a command acting on one habit.
type session struct {
	homeDir string
	cfg     config.Config
	habit   *habit.Habit
	store   entry.Store
}

// openSession loads config, selects the habit and opens its store.
// Callers must Close the session.
func openSession(homeDir, habitFlag string) (*session, error) {
	cfg, err := config.Load(homeDir)
	if err != nil {
		return nil, err
	}

	reg, err := habit.ReadRegistry(homeDir)
	if err != nil {
		return nil, err
	}
	h, err := habit.Select(reg, habitFlag, cfg.DefaultHabit)
	if err != nil {
		return nil, err
	}

	store, err := entry.Open(cfg.Store, homeDir, h.Slug, logger)
	if err != nil {
		return nil, err
	}

	logger.Debug("session opened",
		zap.String("habit", h.Name),
		zap.String("store", cfg.Store))

	return &session{homeDir: homeDir, cfg: cfg, habit: h, store: store}, nil
}

func (s *session) Close() error {
	return s.store.Close()
}

func (s *session) streakOptions() []streak.Option {
	if s.cfg.StreakMaxWalk > 0 {
		return []streak.Option{streak.WithMaxWalk(s.cfg.StreakMaxWalk)}
	}
	return nil
}

func (s *session) calendarOptions() []calendar.Option {
	wd, _ := s.cfg.Weekday()
	return []calendar.Option{calendar.WithWeekStart(wd)}
}

func (s *session) weekStart() time.Weekday {
	wd, _ := s.cfg.Weekday()
	return wd
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
