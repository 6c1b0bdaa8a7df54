package model

import "time"

const (
	EntityName = "team_member"
)

// TeamMember belongs to the partner's organization and is managed through the
// partner surface only.
type TeamMember struct {
	ID       string    `json:"_id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Position string    `json:"position,omitempty"`
	Active   bool      `json:"active"`
	JoinedAt time.Time `json:"joinedAt"`
}
