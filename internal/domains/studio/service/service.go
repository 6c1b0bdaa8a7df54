package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"crewlink/config"
	"crewlink/infras/otel"
	"crewlink/infras/rest"
	"crewlink/internal/domains/studio/model"
	"crewlink/internal/domains/studio/model/dto"
	"crewlink/internal/query"
	"crewlink/shared"
	"crewlink/shared/constant"
	gDto "crewlink/shared/dto"
)

const (
	cacheGetStudio  = "studio:get"
	cacheGetStudios = "studio:gets"
)

type Studio interface {
	List(ctx context.Context, params gDto.QueryParams) (dto.GetStudiosResponse, error)
	Get(ctx context.Context, id string) (model.Studio, error)
}

type serviceImpl struct {
	rest  rest.Client
	cfg   *config.Config
	cache *query.Cache
	otel  otel.Otel
}

func New(restClient rest.Client, cfg *config.Config, cache *query.Cache, ot otel.Otel) Studio {
	return &serviceImpl{
		rest:  restClient,
		cfg:   cfg,
		cache: cache,
		otel:  ot,
	}
}

func (s *serviceImpl) List(ctx context.Context, params gDto.QueryParams) (res dto.GetStudiosResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListStudios")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetStudios, params.ToValues().Encode())

	return query.Fetch(ctx, s.cache, cacheKey, func(ctx context.Context) (dto.GetStudiosResponse, error) {
		var out dto.GetStudiosResponse

		if err := s.rest.Get(ctx, "/user/studios", params.ToValues(), &out); err != nil {
			log.Error().Err(err).Msg("failed to list studios")

			return out, fmt.Errorf("failed to list studios: %w", err)
		}

		out.TotalPage = shared.CalculateTotalPage(out.TotalData, params.Limit)

		return out, nil
	})
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res model.Studio, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetStudio")
	defer scope.End()
	defer scope.TraceIfError(err)

	return query.Fetch(ctx, s.cache, shared.BuildCacheKey(cacheGetStudio, id), func(ctx context.Context) (model.Studio, error) {
		var out model.Studio

		if err := s.rest.Get(ctx, "/user/studios/"+id, nil, &out); err != nil {
			log.Error().Err(err).Str("studioId", id).Msg("failed to get studio")

			return out, fmt.Errorf("failed to get studio: %w", err)
		}

		return out, nil
	})
}
