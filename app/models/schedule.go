package models

// ScheduleItem is one scheduled occupation of a room/teacher/class for a
// contiguous block of periods on a single calendar date.
//
// Date is a plain YYYY-MM-DD string interpreted in local wall-clock time.
// Session is denormalized from StartPeriod at creation time and is not
// re-derived afterwards. The item occupies the half-open period range
// [StartPeriod, StartPeriod+PeriodCount).
type ScheduleItem struct {
	ID          string         `json:"id"`
	Type        ScheduleType   `json:"type" validate:"required,oneof=class exam"`
	TeacherID   string         `json:"teacher_id" validate:"required"`
	SubjectID   string         `json:"subject_id" validate:"required"`
	ClassID     string         `json:"class_id" validate:"required"`
	RoomID      string         `json:"room_id" validate:"required"`
	Date        string         `json:"date" validate:"required,datetime=2006-01-02"`
	Session     DaySession     `json:"session"`
	StartPeriod int            `json:"start_period" validate:"required,min=1,max=10"`
	PeriodCount int            `json:"period_count" validate:"required,min=1"`
	Status      ScheduleStatus `json:"status"`
	Note        string         `json:"note,omitempty"`
}

// End returns the first period after the occupied range.
func (s ScheduleItem) End() int {
	return s.StartPeriod + s.PeriodCount
}

// ScheduleUpdate carries a partial update for a schedule item. Nil fields
// are left untouched.
type ScheduleUpdate struct {
	TeacherID   *string         `json:"teacher_id"`
	SubjectID   *string         `json:"subject_id"`
	RoomID      *string         `json:"room_id"`
	Date        *string         `json:"date" validate:"omitempty,datetime=2006-01-02"`
	StartPeriod *int            `json:"start_period" validate:"omitempty,min=1,max=10"`
	PeriodCount *int            `json:"period_count" validate:"omitempty,min=1"`
	Status      *ScheduleStatus `json:"status"`
	Note        *string         `json:"note"`
}
