package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"crewlink/config"
	"crewlink/infras/otel"
	"crewlink/infras/rest"
	"crewlink/internal/domains/pack/model/dto"
	"crewlink/internal/query"
	"crewlink/shared"
	"crewlink/shared/constant"
)

const (
	cacheGetPackages = "package:gets"
)

type Package interface {
	ListByStudio(ctx context.Context, studioID string) (dto.GetPackagesResponse, error)
}

type serviceImpl struct {
	rest  rest.Client
	cfg   *config.Config
	cache *query.Cache
	otel  otel.Otel
}

func New(restClient rest.Client, cfg *config.Config, cache *query.Cache, ot otel.Otel) Package {
	return &serviceImpl{
		rest:  restClient,
		cfg:   cfg,
		cache: cache,
		otel:  ot,
	}
}

func (s *serviceImpl) ListByStudio(ctx context.Context, studioID string) (res dto.GetPackagesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListPackages")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetPackages, studioID)

	return query.Fetch(ctx, s.cache, cacheKey, func(ctx context.Context) (dto.GetPackagesResponse, error) {
		var out dto.GetPackagesResponse

		if err := s.rest.Get(ctx, "/user/studios/"+studioID+"/packages", nil, &out); err != nil {
			log.Error().Err(err).Str("studioId", studioID).Msg("failed to list packages")

			return out, fmt.Errorf("failed to list packages: %w", err)
		}

		return out, nil
	})
}
