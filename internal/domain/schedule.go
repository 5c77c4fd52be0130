package domain

// EventType classifies a schedule entry.
type EventType string

const (
	EventTraining    EventType = "Training"
	EventCompetition EventType = "Competition"
	EventMeeting     EventType = "Meeting"
)

func (t EventType) Valid() bool {
	switch t {
	case EventTraining, EventCompetition, EventMeeting:
		return true
	}
	return false
}

// ScheduleEvent is a recurring weekly calendar entry.
//
// Time is a zero-padded 24-hour "HH:mm" string, so lexicographic comparison
// orders events within a day correctly.
type ScheduleEvent struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Type          EventType `json:"type"`
	DayOfWeek     int       `json:"dayOfWeek"` // 0 (Sunday) to 6 (Saturday)
	Time          string    `json:"time"`      // HH:mm
	RemindersSent bool      `json:"remindersSent"`
}

// Before reports whether e sorts ahead of other in the weekly schedule,
// ordered by (dayOfWeek, time) ascending.
func (e ScheduleEvent) Before(other ScheduleEvent) bool {
	if e.DayOfWeek != other.DayOfWeek {
		return e.DayOfWeek < other.DayOfWeek
	}
	return e.Time < other.Time
}
