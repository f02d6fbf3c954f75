package models

// ScheduleStatus defines the lifecycle states of a scheduled session.
// Off and Makeup are manual overrides set by the operator; the rest are
// derived from the session date at read time (see app/schedule).
type ScheduleStatus string

const (
	StatusPending   ScheduleStatus = "pending"
	StatusOngoing   ScheduleStatus = "ongoing"
	StatusCompleted ScheduleStatus = "completed"
	StatusMakeup    ScheduleStatus = "makeup"
	StatusOff       ScheduleStatus = "off"
)

// ScheduleType distinguishes regular class sessions from exam sittings.
type ScheduleType string

const (
	TypeClass ScheduleType = "class"
	TypeExam  ScheduleType = "exam"
)

// DaySession names the block of the teaching day a session falls in.
// Periods 1-5 are morning, 6-10 afternoon; anything above is evening.
type DaySession string

const (
	SessionMorning   DaySession = "morning"
	SessionAfternoon DaySession = "afternoon"
	SessionEvening   DaySession = "evening"
)

// ValidStatus reports whether s is one of the known schedule statuses.
func ValidStatus(s ScheduleStatus) bool {
	switch s {
	case StatusPending, StatusOngoing, StatusCompleted, StatusMakeup, StatusOff:
		return true
	}
	return false
}
