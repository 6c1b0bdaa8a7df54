package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"crewlink/config"
	"crewlink/infras/otel"
	"crewlink/infras/rest"
	"crewlink/internal/domains/freelancer/model"
	"crewlink/internal/domains/freelancer/model/dto"
	"crewlink/internal/query"
	"crewlink/shared"
	"crewlink/shared/constant"
	gDto "crewlink/shared/dto"
)

const (
	cacheGetFreelancer  = "freelancer:get"
	cacheGetFreelancers = "freelancer:gets"
)

type Freelancer interface {
	List(ctx context.Context, params gDto.QueryParams) (dto.GetFreelancersResponse, error)
	Get(ctx context.Context, id string) (model.Freelancer, error)
}

type serviceImpl struct {
	rest  rest.Client
	cfg   *config.Config
	cache *query.Cache
	otel  otel.Otel
}

func New(restClient rest.Client, cfg *config.Config, cache *query.Cache, ot otel.Otel) Freelancer {
	return &serviceImpl{
		rest:  restClient,
		cfg:   cfg,
		cache: cache,
		otel:  ot,
	}
}

func (s *serviceImpl) List(ctx context.Context, params gDto.QueryParams) (res dto.GetFreelancersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListFreelancers")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetFreelancers, params.ToValues().Encode())

	return query.Fetch(ctx, s.cache, cacheKey, func(ctx context.Context) (dto.GetFreelancersResponse, error) {
		var out dto.GetFreelancersResponse

		if err := s.rest.Get(ctx, "/user/freelancers", params.ToValues(), &out); err != nil {
			log.Error().Err(err).Msg("failed to list freelancers")

			return out, fmt.Errorf("failed to list freelancers: %w", err)
		}

		out.TotalPage = shared.CalculateTotalPage(out.TotalData, params.Limit)

		return out, nil
	})
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res model.Freelancer, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetFreelancer")
	defer scope.End()
	defer scope.TraceIfError(err)

	return query.Fetch(ctx, s.cache, shared.BuildCacheKey(cacheGetFreelancer, id), func(ctx context.Context) (model.Freelancer, error) {
		var out model.Freelancer

		if err := s.rest.Get(ctx, "/user/freelancers/"+id, nil, &out); err != nil {
			log.Error().Err(err).Str("freelancerId", id).Msg("failed to get freelancer")

			return out, fmt.Errorf("failed to get freelancer: %w", err)
		}

		return out, nil
	})
}
