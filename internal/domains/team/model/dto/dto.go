package dto

import (
	"crewlink/internal/domains/team/model"
)

type GetTeamMembersResponse struct {
	Members []model.TeamMember `json:"members"`
}
