package dto

import (
	"crewlink/internal/domains/studio/model"
)

type GetStudiosResponse struct {
	Studios   []model.Studio `json:"studios"`
	TotalData int            `json:"total"`
	TotalPage int            `json:"total_page"`
}
