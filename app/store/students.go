package store

import (
	"github.com/google/uuid"

	"github.com/tccnbinhduong/QuanLyDaoTao/app/models"
)

// Students returns all students, optionally filtered by class.
func (s *Store) Students(classID string) []models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if classID == "" {
		return append([]models.Student(nil), s.state.Students...)
	}
	var out []models.Student
	for _, st := range s.state.Students {
		if st.ClassID == classID {
			out = append(out, st)
		}
	}
	return out
}

// Student looks up one student by id.
func (s *Store) Student(id string) (models.Student, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, st := range s.state.Students {
		if st.ID == id {
			return st, true
		}
	}
	return models.Student{}, false
}

// CreateStudent assigns an id and appends the student.
func (s *Store) CreateStudent(st models.Student) (models.Student, error) {
	st.ID = uuid.NewString()
	err := s.mutate(func(state *models.AppState) error {
		state.Students = append(state.Students, st)
		return nil
	})
	return st, err
}

// UpdateStudent replaces the student with the given id.
func (s *Store) UpdateStudent(id string, st models.Student) (models.Student, error) {
	st.ID = id
	err := s.mutate(func(state *models.AppState) error {
		for i := range state.Students {
			if state.Students[i].ID == id {
				state.Students[i] = st
				return nil
			}
		}
		return ErrNotFound
	})
	return st, err
}

// DeleteStudent removes the student.
func (s *Store) DeleteStudent(id string) error {
	return s.mutate(func(state *models.AppState) error {
		for i := range state.Students {
			if state.Students[i].ID == id {
				state.Students = append(state.Students[:i], state.Students[i+1:]...)
				return nil
			}
		}
		return ErrNotFound
	})
}

// ImportStudents bulk-appends students, assigning fresh ids.
func (s *Store) ImportStudents(students []models.Student) ([]models.Student, error) {
	for i := range students {
		students[i].ID = uuid.NewString()
	}
	err := s.mutate(func(state *models.AppState) error {
		state.Students = append(state.Students, students...)
		return nil
	})
	return students, err
}
