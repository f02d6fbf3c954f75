package store

import (
	"github.com/google/uuid"

	"github.com/tccnbinhduong/QuanLyDaoTao/app/models"
)

// Classes returns all classes.
func (s *Store) Classes() []models.ClassEntity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.ClassEntity(nil), s.state.Classes...)
}

// Class looks up one class by id.
func (s *Store) Class(id string) (models.ClassEntity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.state.Classes {
		if c.ID == id {
			return c, true
		}
	}
	return models.ClassEntity{}, false
}

// CreateClass assigns an id and appends the class.
func (s *Store) CreateClass(c models.ClassEntity) (models.ClassEntity, error) {
	c.ID = uuid.NewString()
	err := s.mutate(func(state *models.AppState) error {
		state.Classes = append(state.Classes, c)
		return nil
	})
	return c, err
}

// UpdateClass replaces the class with the given id.
func (s *Store) UpdateClass(id string, c models.ClassEntity) (models.ClassEntity, error) {
	c.ID = id
	err := s.mutate(func(state *models.AppState) error {
		for i := range state.Classes {
			if state.Classes[i].ID == id {
				state.Classes[i] = c
				return nil
			}
		}
		return ErrNotFound
	})
	return c, err
}

// ImportClasses bulk-appends classes, assigning fresh ids.
func (s *Store) ImportClasses(classes []models.ClassEntity) ([]models.ClassEntity, error) {
	for i := range classes {
		classes[i].ID = uuid.NewString()
	}
	err := s.mutate(func(state *models.AppState) error {
		state.Classes = append(state.Classes, classes...)
		return nil
	})
	return classes, err
}

// DeleteClass removes the class. Its students and sessions stay behind and
// render with placeholder labels.
func (s *Store) DeleteClass(id string) error {
	return s.mutate(func(state *models.AppState) error {
		for i := range state.Classes {
			if state.Classes[i].ID == id {
				state.Classes = append(state.Classes[:i], state.Classes[i+1:]...)
				return nil
			}
		}
		return ErrNotFound
	})
}
