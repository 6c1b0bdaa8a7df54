package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"crewlink/config"
	"crewlink/infras/otel"
	"crewlink/infras/rest"
	"crewlink/internal/domains/payment/model"
	"crewlink/internal/domains/payment/model/dto"
	"crewlink/internal/query"
	"crewlink/shared"
	"crewlink/shared/constant"
	gDto "crewlink/shared/dto"
)

const (
	cacheGetPayment  = "payment:get"
	cacheGetPayments = "payment:gets"
)

type Payment interface {
	List(ctx context.Context, params gDto.QueryParams) (dto.GetPaymentsResponse, error)
	Get(ctx context.Context, id string) (model.Payment, error)
}

type serviceImpl struct {
	rest  rest.Client
	cfg   *config.Config
	cache *query.Cache
	otel  otel.Otel
}

func New(restClient rest.Client, cfg *config.Config, cache *query.Cache, ot otel.Otel) Payment {
	return &serviceImpl{
		rest:  restClient,
		cfg:   cfg,
		cache: cache,
		otel:  ot,
	}
}

func (s *serviceImpl) List(ctx context.Context, params gDto.QueryParams) (res dto.GetPaymentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListPayments")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetPayments, params.ToValues().Encode())

	return query.Fetch(ctx, s.cache, cacheKey, func(ctx context.Context) (dto.GetPaymentsResponse, error) {
		var out dto.GetPaymentsResponse

		if err := s.rest.Get(ctx, "/user/payments", params.ToValues(), &out); err != nil {
			log.Error().Err(err).Msg("failed to list payments")

			return out, fmt.Errorf("failed to list payments: %w", err)
		}

		out.TotalPage = shared.CalculateTotalPage(out.TotalData, params.Limit)

		return out, nil
	})
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res model.Payment, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	return query.Fetch(ctx, s.cache, shared.BuildCacheKey(cacheGetPayment, id), func(ctx context.Context) (model.Payment, error) {
		var out model.Payment

		if err := s.rest.Get(ctx, "/user/payments/"+id, nil, &out); err != nil {
			log.Error().Err(err).Str("paymentId", id).Msg("failed to get payment")

			return out, fmt.Errorf("failed to get payment: %w", err)
		}

		return out, nil
	})
}
