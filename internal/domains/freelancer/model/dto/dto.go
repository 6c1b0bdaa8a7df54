package dto

import (
	"crewlink/internal/domains/freelancer/model"
)

type GetFreelancersResponse struct {
	Freelancers []model.Freelancer `json:"freelancers"`
	TotalData   int                `json:"total"`
	TotalPage   int                `json:"total_page"`
}
