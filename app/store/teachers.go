package store

import (
	"github.com/google/uuid"

	"github.com/tccnbinhduong/QuanLyDaoTao/app/models"
)

// Teachers returns all teachers.
func (s *Store) Teachers() []models.Teacher {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Teacher(nil), s.state.Teachers...)
}

// Teacher looks up one teacher by id.
func (s *Store) Teacher(id string) (models.Teacher, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.state.Teachers {
		if t.ID == id {
			return t, true
		}
	}
	return models.Teacher{}, false
}

// CreateTeacher assigns an id and appends the teacher.
func (s *Store) CreateTeacher(t models.Teacher) (models.Teacher, error) {
	t.ID = uuid.NewString()
	err := s.mutate(func(state *models.AppState) error {
		state.Teachers = append(state.Teachers, t)
		return nil
	})
	return t, err
}

// UpdateTeacher replaces the teacher with the given id.
func (s *Store) UpdateTeacher(id string, t models.Teacher) (models.Teacher, error) {
	t.ID = id
	err := s.mutate(func(state *models.AppState) error {
		for i := range state.Teachers {
			if state.Teachers[i].ID == id {
				state.Teachers[i] = t
				return nil
			}
		}
		return ErrNotFound
	})
	return t, err
}

// DeleteTeacher removes the teacher. Sessions referencing it are kept and
// render with a placeholder name; deletes never cascade.
func (s *Store) DeleteTeacher(id string) error {
	return s.mutate(func(state *models.AppState) error {
		for i := range state.Teachers {
			if state.Teachers[i].ID == id {
				state.Teachers = append(state.Teachers[:i], state.Teachers[i+1:]...)
				return nil
			}
		}
		return ErrNotFound
	})
}

// ImportTeachers bulk-appends teachers, assigning fresh ids.
func (s *Store) ImportTeachers(teachers []models.Teacher) ([]models.Teacher, error) {
	for i := range teachers {
		teachers[i].ID = uuid.NewString()
	}
	err := s.mutate(func(state *models.AppState) error {
		state.Teachers = append(state.Teachers, teachers...)
		return nil
	})
	return teachers, err
}
