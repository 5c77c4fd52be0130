package domain

// Challenge is a team-wide task any member can complete once for points.
type Challenge struct {
	ID                 int64   `json:"id"`
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	Points             int     `json:"points"`
	CompletedByUserIDs []int64 `json:"completedByUserIds"`
}

// CompletedBy reports whether the given user already completed the challenge.
func (c Challenge) CompletedBy(userID int64) bool {
	for _, id := range c.CompletedByUserIDs {
		if id == userID {
			return true
		}
	}
	return false
}
