package domain

import "strings"

// TrainingPlan describes a plan a captain has published for the team.
type TrainingPlan struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Focus       []string `json:"focus"` // e.g. "Sprint", "Endurance", "Starts"
}

// ParseFocusList splits a comma-separated focus input into trimmed tags,
// dropping empty segments.
func ParseFocusList(input string) []string {
	parts := strings.Split(input, ",")
	focus := make([]string, 0, len(parts))
	for _, p := range parts {
		if tag := strings.TrimSpace(p); tag != "" {
			focus = append(focus, tag)
		}
	}
	return focus
}
