package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"crewlink/config"
	"crewlink/infras/otel"
	"crewlink/infras/rest"
	"crewlink/internal/domains/team/model/dto"
	"crewlink/internal/query"
	"crewlink/shared"
	"crewlink/shared/constant"
)

const (
	cacheGetTeamMembers = "team:gets"
)

type Team interface {
	List(ctx context.Context) (dto.GetTeamMembersResponse, error)
}

type serviceImpl struct {
	rest  rest.Client
	cfg   *config.Config
	cache *query.Cache
	otel  otel.Otel
}

func New(restClient rest.Client, cfg *config.Config, cache *query.Cache, ot otel.Otel) Team {
	return &serviceImpl{
		rest:  restClient,
		cfg:   cfg,
		cache: cache,
		otel:  ot,
	}
}

func (s *serviceImpl) List(ctx context.Context) (res dto.GetTeamMembersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListTeamMembers")
	defer scope.End()
	defer scope.TraceIfError(err)

	return query.Fetch(ctx, s.cache, shared.BuildCacheKey(cacheGetTeamMembers), func(ctx context.Context) (dto.GetTeamMembersResponse, error) {
		var out dto.GetTeamMembersResponse

		if err := s.rest.Get(ctx, "/partner/team-members", nil, &out); err != nil {
			log.Error().Err(err).Msg("failed to list team members")

			return out, fmt.Errorf("failed to list team members: %w", err)
		}

		return out, nil
	})
}
