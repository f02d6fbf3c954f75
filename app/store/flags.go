package store

import "github.com/tccnbinhduong/QuanLyDaoTao/app/models"

// ManualCompleted returns the subject-class pair keys an operator marked
// finished by hand.
func (s *Store) ManualCompleted() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.state.ManualCompleted...)
}

// ToggleManualCompleted flips the manual-completion flag for a pair and
// returns the new value.
func (s *Store) ToggleManualCompleted(subjectID, classID string) (bool, error) {
	key := models.PairKey(subjectID, classID)
	var on bool
	err := s.mutate(func(state *models.AppState) error {
		for i, k := range state.ManualCompleted {
			if k == key {
				state.ManualCompleted = append(state.ManualCompleted[:i], state.ManualCompleted[i+1:]...)
				return nil
			}
		}
		state.ManualCompleted = append(state.ManualCompleted, key)
		on = true
		return nil
	})
	return on, err
}

// PaidSubjects returns the pair keys whose teacher payout is settled.
func (s *Store) PaidSubjects() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.state.PaidSubjects...)
}

// SettlePaid marks a finished subject-class pair as paid out. Settling the
// same pair twice is a no-op.
func (s *Store) SettlePaid(subjectID, classID string) error {
	key := models.PairKey(subjectID, classID)
	return s.mutate(func(state *models.AppState) error {
		for _, k := range state.PaidSubjects {
			if k == key {
				return nil
			}
		}
		state.PaidSubjects = append(state.PaidSubjects, key)
		return nil
	})
}
