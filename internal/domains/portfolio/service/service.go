package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"crewlink/config"
	"crewlink/infras/otel"
	"crewlink/infras/rest"
	"crewlink/internal/domains/portfolio/model/dto"
	"crewlink/internal/query"
	"crewlink/shared"
	"crewlink/shared/constant"
	"crewlink/shared/failure"
	"crewlink/shared/validator"
)

const (
	cacheGetPortfolio = "portfolio:get"
)

type Portfolio interface {
	Get(ctx context.Context, entityType, entityID string) (dto.GetPortfolioResponse, error)
}

type serviceImpl struct {
	rest  rest.Client
	cfg   *config.Config
	cache *query.Cache
	otel  otel.Otel
}

func New(restClient rest.Client, cfg *config.Config, cache *query.Cache, ot otel.Otel) Portfolio {
	return &serviceImpl{
		rest:  restClient,
		cfg:   cfg,
		cache: cache,
		otel:  ot,
	}
}

func (s *serviceImpl) Get(ctx context.Context, entityType, entityID string) (res dto.GetPortfolioResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPortfolio")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateVar(entityType, "required,oneof=studio freelancer"); err != nil {
		return res, err
	}

	if entityID == constant.Empty {
		return res, failure.BadRequestFromString("entity id is required") //nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheGetPortfolio, entityType, entityID)

	return query.Fetch(ctx, s.cache, cacheKey, func(ctx context.Context) (dto.GetPortfolioResponse, error) {
		var out dto.GetPortfolioResponse

		if err := s.rest.Get(ctx, "/user/portfolio/"+entityType+"/"+entityID, nil, &out); err != nil {
			log.Error().Err(err).Str("entityType", entityType).Str("entityId", entityID).Msg("failed to get portfolio")

			return out, fmt.Errorf("failed to get portfolio: %w", err)
		}

		return out, nil
	})
}
