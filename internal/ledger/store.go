// Package ledger owns the persisted application document: the per-day
// food entry lists, the daily goals, and the cut/bulk energy budget.
package ledger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/schmidtrico91/rico-mealtracker-main/internal/model"
)

// Store reads and writes the single JSON ledger document.
type Store struct {
	path string
}

// DataDir returns the XDG-compliant data directory.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "mealtracker")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "mealtracker")
}

// NewStore creates a store over the given directory. An empty dir uses
// the default data directory.
func NewStore(dir string) *Store {
	if dir == "" {
		dir = DataDir()
	}
	return &Store{path: filepath.Join(dir, "ledger.json")}
}

// Path returns the ledger file path.
func (s *Store) Path() string {
	return s.path
}

// TodayISO returns the current calendar date as YYYY-MM-DD.
func TodayISO() string {
	return time.Now().Format("2006-01-02")
}

// ValidDate reports whether date is a well-formed YYYY-MM-DD string.
func ValidDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

// LoadOrInit reads the document, falling back to an empty one when the
// file is missing, unreadable, or corrupt, and applies defaults. The
// returned document is always fully populated; callers never re-check
// field presence.
func (s *Store) LoadOrInit() *model.Document {
	var doc model.Document

	data, err := os.ReadFile(s.path)
	if err == nil {
		// A corrupt file degrades to defaults rather than crashing;
		// the broken content is overwritten on the next save.
		_ = json.Unmarshal(data, &doc)
	}

	ApplyDefaults(&doc)
	return &doc
}

// Save serializes the full document in a single atomic write: temp file
// in the same directory, then rename over the old one.
func (s *Store) Save(doc *model.Document) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing ledger: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "ledger-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("writing ledger: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replacing ledger: %w", err)
	}
	return nil
}

// Mutate runs one read-modify-write step: load with defaults, apply fn,
// persist. Every user action goes through here so the document on disk
// always reflects the full mutation.
func (s *Store) Mutate(fn func(doc *model.Document) error) error {
	doc := s.LoadOrInit()
	if err := fn(doc); err != nil {
		return err
	}
	return s.Save(doc)
}

// Wipe removes the persisted document entirely.
func (s *Store) Wipe() error {
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// ApplyDefaults fills absent top-level fields with their stated defaults.
// Idempotent: present fields are never clobbered, so applying twice
// equals applying once.
func ApplyDefaults(doc *model.Document) {
	if doc.Goals == (model.Goals{}) {
		doc.Goals = model.DefaultGoals()
	}
	if doc.Budget.CommittedDays == nil && doc.Budget.BudgetStart == 0 && doc.Budget.Maintenance == 0 {
		doc.Budget = model.DefaultBudget()
	}
	if doc.Budget.CommittedDays == nil {
		doc.Budget.CommittedDays = map[string]bool{}
	}
	if !doc.Settings.Mode.Valid() {
		doc.Settings.Mode = model.ModeCut
	}
	if !ValidDate(doc.LastDate) {
		doc.LastDate = TodayISO()
	}
	if doc.Templates == nil {
		doc.Templates = []model.Template{}
	}
	if doc.Recents == nil {
		doc.Recents = []model.Recent{}
	}
	if doc.Days == nil {
		doc.Days = map[string][]model.FoodEntry{}
	}
}
