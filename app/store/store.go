package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/tccnbinhduong/QuanLyDaoTao/app/models"
)

// Store holds the whole application dataset in memory and mirrors it to a
// single JSON file after every mutation. There is exactly one logical
// writer (the single operator), so the locking here only protects the
// snapshot against concurrent HTTP reads; writes are last-write-wins with
// no optimistic concurrency.
type Store struct {
	mu    sync.RWMutex
	path  string
	state models.AppState
}

// ErrNotFound is returned when a lookup or mutation targets an id that is
// not in the store.
var ErrNotFound = errors.New("record not found")

// Open loads the data file at path, falling back to the seeded default
// dataset when the file is missing or unreadable. A corrupt file is logged
// and left on disk untouched until the next successful save.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read data file %s: %v", path, err)
		}
		log.Printf("Data file %s not found, starting with default dataset", path)
		s.state = DefaultState()
		return s, nil
	}

	var state models.AppState
	if err := json.Unmarshal(data, &state); err != nil {
		log.Printf("Data file %s is corrupt (%v), starting with default dataset", path, err)
		s.state = DefaultState()
		return s, nil
	}

	state.Normalize()
	s.state = state
	return s, nil
}

// Snapshot returns a deep copy of the current state. Callers may hold and
// mutate it freely; it never aliases store-internal slices.
func (s *Store) Snapshot() models.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneState(s.state)
}

// Replace swaps in a whole new state (backup restore). The snapshot must
// carry the core entity arrays; on validation failure the in-memory state
// is left untouched.
func (s *Store) Replace(state models.AppState) error {
	if state.Teachers == nil || state.Subjects == nil || state.Classes == nil || state.Schedules == nil {
		return errors.New("invalid data snapshot: missing required sections")
	}
	state.Normalize()

	s.mu.Lock()
	defer s.mu.Unlock()
	old := s.state
	s.state = state
	if err := s.saveLocked(); err != nil {
		s.state = old
		return err
	}
	return nil
}

// Reset discards everything and reinstates the default dataset.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = DefaultState()
	return s.saveLocked()
}

// mutate runs fn against the live state under the write lock and persists
// the result. If fn errors nothing is saved.
func (s *Store) mutate(fn func(state *models.AppState) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(&s.state); err != nil {
		return err
	}
	return s.saveLocked()
}

// saveLocked marshals the state to the data file. Write is via a temp file
// and rename so a crash mid-write cannot truncate the dataset.
func (s *Store) saveLocked() error {
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode data: %v", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory %s: %v", dir, err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write data file: %v", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace data file: %v", err)
	}
	return nil
}

func cloneState(state models.AppState) models.AppState {
	out := models.AppState{
		Teachers:        append([]models.Teacher(nil), state.Teachers...),
		Subjects:        append([]models.Subject(nil), state.Subjects...),
		Classes:         append([]models.ClassEntity(nil), state.Classes...),
		Students:        append([]models.Student(nil), state.Students...),
		Majors:          append([]models.Major(nil), state.Majors...),
		Schedules:       append([]models.ScheduleItem(nil), state.Schedules...),
		ManualCompleted: append([]string(nil), state.ManualCompleted...),
		PaidSubjects:    append([]string(nil), state.PaidSubjects...),
	}
	out.Normalize()
	return out
}
