package domain

// State is the whole application document: everything the store owns and
// everything that gets serialized to the remote JSON document or a local
// snapshot as one blob. JSON key names match the historical document format,
// so documents written by older clients remain readable.
type State struct {
	Users         []User                   `json:"users"`
	Schedule      []ScheduleEvent          `json:"schedule"`
	TrainingPlans []TrainingPlan           `json:"trainingPlans"`
	Conversations map[string][]ChatMessage `json:"conversations"`
	GrantedAwards []GrantedAward           `json:"grantedAwards"`
	Challenges    []Challenge              `json:"challenges"`
	CurrentUser   *User                    `json:"currentUser"`
	UnreadCounts  map[int64]int            `json:"unreadCounts"`
}

// SeedState returns the first-run defaults: one active demo captain so a
// login path always exists, and empty collections for everything else.
func SeedState() *State {
	return &State{
		Users: []User{
			{
				ID:       1,
				Name:     "Admin Captain",
				PIN:      "1234",
				Password: "password123",
				Role:     RoleCaptain,
				IsActive: true,
				Age:      35,
				Avatar:   "",
				Stats:    Stats{Attendance: 98, TopSpeed: 2.1, Endurance: 3000},
				Points:   1500,
			},
		},
		Schedule:      []ScheduleEvent{},
		TrainingPlans: []TrainingPlan{},
		Conversations: map[string][]ChatMessage{},
		GrantedAwards: []GrantedAward{},
		Challenges:    []Challenge{},
		UnreadCounts:  map[int64]int{},
	}
}

// Clone returns a deep copy of the state. Mutations always operate on a
// clone and install it wholesale, so snapshots handed to consumers are never
// modified in place.
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}
	c := &State{
		Users:         make([]User, len(s.Users)),
		Schedule:      make([]ScheduleEvent, len(s.Schedule)),
		TrainingPlans: make([]TrainingPlan, len(s.TrainingPlans)),
		Conversations: make(map[string][]ChatMessage, len(s.Conversations)),
		GrantedAwards: make([]GrantedAward, len(s.GrantedAwards)),
		Challenges:    make([]Challenge, len(s.Challenges)),
		UnreadCounts:  make(map[int64]int, len(s.UnreadCounts)),
	}
	copy(c.Users, s.Users)
	copy(c.Schedule, s.Schedule)
	copy(c.GrantedAwards, s.GrantedAwards)
	for i, p := range s.TrainingPlans {
		p.Focus = append([]string(nil), p.Focus...)
		c.TrainingPlans[i] = p
	}
	for i, ch := range s.Challenges {
		ch.CompletedByUserIDs = append([]int64(nil), ch.CompletedByUserIDs...)
		c.Challenges[i] = ch
	}
	for id, msgs := range s.Conversations {
		c.Conversations[id] = append([]ChatMessage(nil), msgs...)
	}
	for id, n := range s.UnreadCounts {
		c.UnreadCounts[id] = n
	}
	if s.CurrentUser != nil {
		u := *s.CurrentUser
		c.CurrentUser = &u
	}
	return c
}

// Sanitized returns a deep copy with the session stripped. This is the form
// every persistence backend receives: the current user is never saved.
func (s *State) Sanitized() *State {
	c := s.Clone()
	c.CurrentUser = nil
	return c
}

// FindUserByID returns the user with the given id, or nil.
func (s *State) FindUserByID(id int64) *User {
	for i := range s.Users {
		if s.Users[i].ID == id {
			return &s.Users[i]
		}
	}
	return nil
}
