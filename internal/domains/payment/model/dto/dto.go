package dto

import (
	"crewlink/internal/domains/payment/model"
)

type GetPaymentsResponse struct {
	Payments  []model.Payment `json:"payments"`
	TotalData int             `json:"total"`
	TotalPage int             `json:"total_page"`
}
