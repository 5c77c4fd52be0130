package domain

// Role type to distinguish between user roles
type Role string

// Define constants for roles
const (
	RoleCaptain Role = "Captain"
	RolePlayer  Role = "Player"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCaptain, RolePlayer:
		return true
	}
	return false
}

// Stats holds free-form performance telemetry for a user. None of the
// values are validated; they are whatever the captain recorded.
type Stats struct {
	Attendance float64 `json:"attendance"` // percentage
	TopSpeed   float64 `json:"topSpeed"`   // m/s
	Endurance  float64 `json:"endurance"`  // meters
}

// User represents a club member (either a Captain or a Player).
//
// Credentials are stored and compared in plaintext to stay wire-compatible
// with existing remote documents. Production deployments must hash them.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`               // unique, case-insensitive
	PIN      string `json:"pin,omitempty"`      // captain login only
	Password string `json:"password,omitempty"` // set at creation (captain) or activation (player)
	Role     Role   `json:"role"`
	IsActive bool   `json:"isActive"` // players are inactive until they set a password
	Age      int    `json:"age"`
	Avatar   string `json:"avatar"` // empty, inline data URL, or object storage URL
	Stats    Stats  `json:"stats"`
	Points   int    `json:"points"`
}

func (u *User) IsCaptain() bool {
	return u.Role == RoleCaptain
}

func (u *User) IsPlayer() bool {
	return u.Role == RolePlayer
}
