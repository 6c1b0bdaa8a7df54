package dto

import (
	"crewlink/internal/domains/helper/model"
)

type GetHelpersResponse struct {
	Helpers   []model.Helper `json:"helpers"`
	TotalData int            `json:"total"`
	TotalPage int            `json:"total_page"`
}
