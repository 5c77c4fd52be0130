package store

import (
	"sort"

	"stormfins/club-app/internal/domain"
)

// AddScheduleEvent appends a weekly calendar entry and keeps the schedule
// sorted by (dayOfWeek, time). The id and remindersSent flag are assigned
// here regardless of what the caller supplied.
func (s *Store) AddScheduleEvent(event domain.ScheduleEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event.ID = s.nextID()
	event.RemindersSent = false

	next := s.state.Clone()
	next.Schedule = append(next.Schedule, event)
	sort.SliceStable(next.Schedule, func(i, j int) bool {
		return next.Schedule[i].Before(next.Schedule[j])
	})
	s.commit("addScheduleEvent", next)
}

// DeleteScheduleEvent removes an event. Silently no-ops when the session is
// not a captain.
func (s *Store) DeleteScheduleEvent(eventID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isCaptainSession() {
		return
	}
	next := s.state.Clone()
	events := next.Schedule[:0]
	for _, e := range next.Schedule {
		if e.ID != eventID {
			events = append(events, e)
		}
	}
	next.Schedule = events
	s.commit("deleteScheduleEvent", next)
}

// AddTrainingPlan appends a plan with a generated id.
func (s *Store) AddTrainingPlan(plan domain.TrainingPlan) {
	s.mu.Lock()
	defer s.mu.Unlock()

	plan.ID = s.nextID()
	next := s.state.Clone()
	next.TrainingPlans = append(next.TrainingPlans, plan)
	s.commit("addTrainingPlan", next)
}
