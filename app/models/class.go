package models

// ClassEntity is a student cohort. Its curriculum is implicit: every
// subject sharing the class's MajorID belongs to it. There is no explicit
// enrollment table; resolve membership through store.SubjectsForClass so a
// real enrollment table could replace the rule later.
type ClassEntity struct {
	ID           string `json:"id"`
	Name         string `json:"name" validate:"required"`
	StudentCount int    `json:"student_count" validate:"min=0"`
	MajorID      string `json:"major_id" validate:"required"`
	SchoolYear   string `json:"school_year"`
}
