package models

// AppState is the whole persisted dataset. It is marshalled wholesale to a
// single JSON file after every mutation; there is no incremental schema
// migration beyond defaulting missing arrays to empty on load.
//
// ManualCompleted and PaidSubjects hold "subjectID-classID" keys: subjects
// an operator marked finished by hand, and finished subjects whose teacher
// payout has been settled.
type AppState struct {
	Teachers        []Teacher      `json:"teachers"`
	Subjects        []Subject      `json:"subjects"`
	Classes         []ClassEntity  `json:"classes"`
	Students        []Student      `json:"students"`
	Majors          []Major        `json:"majors"`
	Schedules       []ScheduleItem `json:"schedules"`
	ManualCompleted []string       `json:"manual_completed"`
	PaidSubjects    []string       `json:"paid_subjects"`
}

// Normalize replaces nil slices with empty ones so the JSON snapshot always
// carries every key and older files missing newer arrays still load.
func (s *AppState) Normalize() {
	if s.Teachers == nil {
		s.Teachers = []Teacher{}
	}
	if s.Subjects == nil {
		s.Subjects = []Subject{}
	}
	if s.Classes == nil {
		s.Classes = []ClassEntity{}
	}
	if s.Students == nil {
		s.Students = []Student{}
	}
	if s.Majors == nil {
		s.Majors = []Major{}
	}
	if s.Schedules == nil {
		s.Schedules = []ScheduleItem{}
	}
	if s.ManualCompleted == nil {
		s.ManualCompleted = []string{}
	}
	if s.PaidSubjects == nil {
		s.PaidSubjects = []string{}
	}
}

// SubjectsForClass resolves a class's implicit curriculum: every subject
// sharing the class's major belongs to it. Membership is resolved only
// here; swap this for an enrollment lookup and nothing else has to change.
// An unknown class has no curriculum.
func (s AppState) SubjectsForClass(classID string) []Subject {
	for _, c := range s.Classes {
		if c.ID != classID {
			continue
		}
		var out []Subject
		for _, sub := range s.Subjects {
			if sub.MajorID == c.MajorID {
				out = append(out, sub)
			}
		}
		return out
	}
	return nil
}

// PairKey builds the "subjectID-classID" key used by ManualCompleted and
// PaidSubjects.
func PairKey(subjectID, classID string) string {
	return subjectID + "-" + classID
}
