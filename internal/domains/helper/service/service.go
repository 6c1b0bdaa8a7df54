package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"crewlink/config"
	"crewlink/infras/otel"
	"crewlink/infras/rest"
	"crewlink/internal/domains/helper/model/dto"
	"crewlink/internal/query"
	"crewlink/shared"
	"crewlink/shared/constant"
	gDto "crewlink/shared/dto"
)

const (
	cacheGetHelpers = "helper:gets"
)

type Helper interface {
	List(ctx context.Context, params gDto.QueryParams) (dto.GetHelpersResponse, error)
}

type serviceImpl struct {
	rest  rest.Client
	cfg   *config.Config
	cache *query.Cache
	otel  otel.Otel
}

func New(restClient rest.Client, cfg *config.Config, cache *query.Cache, ot otel.Otel) Helper {
	return &serviceImpl{
		rest:  restClient,
		cfg:   cfg,
		cache: cache,
		otel:  ot,
	}
}

func (s *serviceImpl) List(ctx context.Context, params gDto.QueryParams) (res dto.GetHelpersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListHelpers")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetHelpers, params.ToValues().Encode())

	return query.Fetch(ctx, s.cache, cacheKey, func(ctx context.Context) (dto.GetHelpersResponse, error) {
		var out dto.GetHelpersResponse

		if err := s.rest.Get(ctx, "/user/helpers", params.ToValues(), &out); err != nil {
			log.Error().Err(err).Msg("failed to list helpers")

			return out, fmt.Errorf("failed to list helpers: %w", err)
		}

		out.TotalPage = shared.CalculateTotalPage(out.TotalData, params.Limit)

		return out, nil
	})
}
