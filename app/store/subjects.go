package store

import (
	"github.com/google/uuid"

	"github.com/tccnbinhduong/QuanLyDaoTao/app/models"
)

// Subjects returns all subjects, optionally filtered by major.
func (s *Store) Subjects(majorID string) []models.Subject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if majorID == "" {
		return append([]models.Subject(nil), s.state.Subjects...)
	}
	var out []models.Subject
	for _, sub := range s.state.Subjects {
		if sub.MajorID == majorID {
			out = append(out, sub)
		}
	}
	return out
}

// Subject looks up one subject by id.
func (s *Store) Subject(id string) (models.Subject, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sub := range s.state.Subjects {
		if sub.ID == id {
			return sub, true
		}
	}
	return models.Subject{}, false
}

// SubjectsForClass resolves a class's curriculum under the read lock; the
// membership rule itself lives on models.AppState.
func (s *Store) SubjectsForClass(classID string) []models.Subject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.SubjectsForClass(classID)
}

// CreateSubject assigns an id and appends the subject.
func (s *Store) CreateSubject(sub models.Subject) (models.Subject, error) {
	sub.ID = uuid.NewString()
	err := s.mutate(func(state *models.AppState) error {
		state.Subjects = append(state.Subjects, sub)
		return nil
	})
	return sub, err
}

// UpdateSubject replaces the subject with the given id.
func (s *Store) UpdateSubject(id string, sub models.Subject) (models.Subject, error) {
	sub.ID = id
	err := s.mutate(func(state *models.AppState) error {
		for i := range state.Subjects {
			if state.Subjects[i].ID == id {
				state.Subjects[i] = sub
				return nil
			}
		}
		return ErrNotFound
	})
	return sub, err
}

// DeleteSubject removes the subject without cascading to its sessions.
func (s *Store) DeleteSubject(id string) error {
	return s.mutate(func(state *models.AppState) error {
		for i := range state.Subjects {
			if state.Subjects[i].ID == id {
				state.Subjects = append(state.Subjects[:i], state.Subjects[i+1:]...)
				return nil
			}
		}
		return ErrNotFound
	})
}

// ImportSubjects bulk-appends subjects, assigning fresh ids.
func (s *Store) ImportSubjects(subjects []models.Subject) ([]models.Subject, error) {
	for i := range subjects {
		subjects[i].ID = uuid.NewString()
	}
	err := s.mutate(func(state *models.AppState) error {
		state.Subjects = append(state.Subjects, subjects...)
		return nil
	})
	return subjects, err
}
