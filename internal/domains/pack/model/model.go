package model

const (
	EntityName = "package"
)

// ServicePackage is a bookable bundle a studio offers (duration, deliverables,
// fixed price).
type ServicePackage struct {
	ID              string   `json:"_id"`
	StudioID        string   `json:"studioId"`
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	Price           float64  `json:"price"`
	DurationMinutes int      `json:"durationMinutes"`
	Deliverables    []string `json:"deliverables,omitempty"`
}
