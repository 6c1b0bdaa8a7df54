package model

import "time"

const (
	EntityName = "freelancer"
)

type Freelancer struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	City        string    `json:"city"`
	Bio         string    `json:"bio,omitempty"`
	Skills      []string  `json:"skills,omitempty"`
	DayRate     float64   `json:"dayRate"`
	Rating      float64   `json:"rating"`
	ReviewCount int       `json:"reviewCount"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"createdAt"`
}
