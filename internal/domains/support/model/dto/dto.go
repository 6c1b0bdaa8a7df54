package dto

import (
	"crewlink/internal/domains/support/model"
)

type CreateTicketRequest struct {
	Subject string `json:"subject" validate:"required,trimmin=3,trimmax=100"`
	Message string `json:"message" validate:"required,trimmin=10,trimmax=1000"`
}

type CreateTicketResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
}

type GetTicketsResponse struct {
	Tickets []model.Ticket `json:"tickets"`
}
