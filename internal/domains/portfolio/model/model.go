package model

import "time"

const (
	EntityName = "portfolio"
)

const (
	MediaTypePhoto = "photo"
	MediaTypeVideo = "video"
)

// Item is one published gallery entry of a studio or freelancer.
type Item struct {
	ID         string    `json:"_id"`
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityId"`
	Title      string    `json:"title,omitempty"`
	MediaURL   string    `json:"mediaUrl"`
	MediaType  string    `json:"mediaType"`
	CreatedAt  time.Time `json:"createdAt"`
}
