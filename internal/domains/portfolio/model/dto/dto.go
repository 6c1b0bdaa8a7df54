package dto

import (
	"crewlink/internal/domains/portfolio/model"
)

type GetPortfolioResponse struct {
	Items []model.Item `json:"items"`
}
