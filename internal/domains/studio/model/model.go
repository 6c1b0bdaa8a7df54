package model

import "time"

const (
	EntityName = "studio"
)

type Studio struct {
	ID           string    `json:"_id"`
	Name         string    `json:"name"`
	City         string    `json:"city"`
	Address      string    `json:"address,omitempty"`
	Description  string    `json:"description,omitempty"`
	HourlyRate   float64   `json:"hourlyRate"`
	Rating       float64   `json:"rating"`
	ReviewCount  int       `json:"reviewCount"`
	CoverPhotoID string    `json:"coverPhotoId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
