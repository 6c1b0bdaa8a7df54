package dto

import (
	"crewlink/internal/domains/pack/model"
)

type GetPackagesResponse struct {
	Packages []model.ServicePackage `json:"packages"`
}
