package store

import (
	"github.com/google/uuid"

	"github.com/tccnbinhduong/QuanLyDaoTao/app/models"
)

// Majors returns all majors.
func (s *Store) Majors() []models.Major {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Major(nil), s.state.Majors...)
}

// Major looks up one major by id.
func (s *Store) Major(id string) (models.Major, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.state.Majors {
		if m.ID == id {
			return m, true
		}
	}
	return models.Major{}, false
}

// CreateMajor assigns an id and appends the major.
func (s *Store) CreateMajor(m models.Major) (models.Major, error) {
	m.ID = uuid.NewString()
	err := s.mutate(func(state *models.AppState) error {
		state.Majors = append(state.Majors, m)
		return nil
	})
	return m, err
}

// UpdateMajor replaces the major with the given id.
func (s *Store) UpdateMajor(id string, m models.Major) (models.Major, error) {
	m.ID = id
	err := s.mutate(func(state *models.AppState) error {
		for i := range state.Majors {
			if state.Majors[i].ID == id {
				state.Majors[i] = m
				return nil
			}
		}
		return ErrNotFound
	})
	return m, err
}

// ImportMajors bulk-appends majors, assigning fresh ids.
func (s *Store) ImportMajors(majors []models.Major) ([]models.Major, error) {
	for i := range majors {
		majors[i].ID = uuid.NewString()
	}
	err := s.mutate(func(state *models.AppState) error {
		state.Majors = append(state.Majors, majors...)
		return nil
	})
	return majors, err
}

// DeleteMajor removes the major. Classes and subjects keep their dangling
// major ids.
func (s *Store) DeleteMajor(id string) error {
	return s.mutate(func(state *models.AppState) error {
		for i := range state.Majors {
			if state.Majors[i].ID == id {
				state.Majors = append(state.Majors[:i], state.Majors[i+1:]...)
				return nil
			}
		}
		return ErrNotFound
	})
}
