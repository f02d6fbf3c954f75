package models

// Subject is a curriculum unit taught to every class of its major.
// TotalPeriods is the curriculum target used for progress tracking.
// IsShared marks subjects taught jointly to several classes in the same
// room/teacher/time slot (merged lectures), which relaxes room and teacher
// conflict rules between those classes.
//
// The three responsible teacher name/phone pairs are informational only;
// they are not foreign keys into the teachers list.
type Subject struct {
	ID           string `json:"id"`
	Name         string `json:"name" validate:"required"`
	MajorID      string `json:"major_id" validate:"required"`
	TotalPeriods int    `json:"total_periods" validate:"required,min=1"`
	IsShared     bool   `json:"is_shared,omitempty"`
	Teacher1     string `json:"teacher1,omitempty"`
	Phone1       string `json:"phone1,omitempty"`
	Teacher2     string `json:"teacher2,omitempty"`
	Phone2       string `json:"phone2,omitempty"`
	Teacher3     string `json:"teacher3,omitempty"`
	Phone3       string `json:"phone3,omitempty"`
}
