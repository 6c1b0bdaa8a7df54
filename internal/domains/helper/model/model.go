package model

const (
	EntityName = "helper"
)

// Helper is an on-set assistant bookable alongside a studio or freelancer.
type Helper struct {
	ID        string   `json:"_id"`
	Name      string   `json:"name"`
	City      string   `json:"city"`
	Skills    []string `json:"skills,omitempty"`
	DayRate   float64  `json:"dayRate"`
	Available bool     `json:"available"`
}
