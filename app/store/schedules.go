package store

import (
	"github.com/google/uuid"

	"github.com/tccnbinhduong/QuanLyDaoTao/app/models"
	"github.com/tccnbinhduong/QuanLyDaoTao/app/schedule"
)

// Schedules returns all schedule items, optionally filtered by class.
func (s *Store) Schedules(classID string) []models.ScheduleItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if classID == "" {
		return append([]models.ScheduleItem(nil), s.state.Schedules...)
	}
	var out []models.ScheduleItem
	for _, item := range s.state.Schedules {
		if item.ClassID == classID {
			out = append(out, item)
		}
	}
	return out
}

// Schedule looks up one schedule item by id.
func (s *Store) Schedule(id string) (models.ScheduleItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.state.Schedules {
		if item.ID == id {
			return item, true
		}
	}
	return models.ScheduleItem{}, false
}

// CreateSchedule appends a new session. The id, the pending status and the
// denormalized day session are assigned here; conflict checking is the
// caller's job before it gets this far.
func (s *Store) CreateSchedule(item models.ScheduleItem) (models.ScheduleItem, error) {
	item.ID = uuid.NewString()
	item.Status = models.StatusPending
	item.Session = schedule.SessionFromPeriod(item.StartPeriod)
	err := s.mutate(func(state *models.AppState) error {
		state.Schedules = append(state.Schedules, item)
		return nil
	})
	return item, err
}

// CreateSchedules appends a batch of sessions in order (the continuation
// planner's output). One save covers the whole batch.
func (s *Store) CreateSchedules(items []models.ScheduleItem) ([]models.ScheduleItem, error) {
	for i := range items {
		items[i].ID = uuid.NewString()
		items[i].Session = schedule.SessionFromPeriod(items[i].StartPeriod)
	}
	err := s.mutate(func(state *models.AppState) error {
		state.Schedules = append(state.Schedules, items...)
		return nil
	})
	return items, err
}

// UpdateSchedule applies a partial update to the session. The stored
// Session field is intentionally not re-derived on period edits; it is a
// creation-time denormalization.
func (s *Store) UpdateSchedule(id string, upd models.ScheduleUpdate) (models.ScheduleItem, error) {
	var updated models.ScheduleItem
	err := s.mutate(func(state *models.AppState) error {
		for i := range state.Schedules {
			if state.Schedules[i].ID != id {
				continue
			}
			item := &state.Schedules[i]
			if upd.TeacherID != nil {
				item.TeacherID = *upd.TeacherID
			}
			if upd.SubjectID != nil {
				item.SubjectID = *upd.SubjectID
			}
			if upd.RoomID != nil {
				item.RoomID = *upd.RoomID
			}
			if upd.Date != nil {
				item.Date = *upd.Date
			}
			if upd.StartPeriod != nil {
				item.StartPeriod = *upd.StartPeriod
			}
			if upd.PeriodCount != nil {
				item.PeriodCount = *upd.PeriodCount
			}
			if upd.Status != nil {
				item.Status = *upd.Status
			}
			if upd.Note != nil {
				item.Note = *upd.Note
			}
			updated = *item
			return nil
		}
		return ErrNotFound
	})
	return updated, err
}

// DeleteSchedule removes the session.
func (s *Store) DeleteSchedule(id string) error {
	return s.mutate(func(state *models.AppState) error {
		for i := range state.Schedules {
			if state.Schedules[i].ID == id {
				state.Schedules = append(state.Schedules[:i], state.Schedules[i+1:]...)
				return nil
			}
		}
		return ErrNotFound
	})
}
