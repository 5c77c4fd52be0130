package domain

import "time"

// AwardIcon is the closed set of icon tags the award catalog uses.
type AwardIcon string

const (
	IconTrophy      AwardIcon = "trophy"
	IconStar        AwardIcon = "star"
	IconBolt        AwardIcon = "bolt"
	IconHeart       AwardIcon = "heart"
	IconDashboard   AwardIcon = "dashboard"
	IconTeam        AwardIcon = "team"
	IconProfile     AwardIcon = "profile"
	IconLeaderboard AwardIcon = "leaderboard"
)

// Award is a catalog template. The catalog is static configuration; it is
// never persisted with user data and never mutated.
type Award struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        AwardIcon `json:"icon"`
	Points      int       `json:"points"`
}

// GrantedAward records one instance of a captain granting a catalog award.
// The Award is embedded as a snapshot, not a reference, so later catalog
// changes do not rewrite history. Immutable once created.
type GrantedAward struct {
	ID              int64     `json:"id"`
	Award           Award     `json:"award"`
	UserID          int64     `json:"userId"`
	GrantedByUserID int64     `json:"grantedByUserId"`
	GrantedByName   string    `json:"grantedByUserName"`
	Timestamp       time.Time `json:"timestamp"`
	Reason          string    `json:"reason"`
}
