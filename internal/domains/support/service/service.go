package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"crewlink/config"
	"crewlink/infras/otel"
	"crewlink/infras/rest"
	"crewlink/internal/domains/support/model/dto"
	"crewlink/internal/query"
	"crewlink/shared"
	"crewlink/shared/constant"
	"crewlink/shared/validator"
)

const (
	cacheGetTickets = "ticket:gets"
)

type Support interface {
	CreateTicket(ctx context.Context, req dto.CreateTicketRequest) (dto.CreateTicketResponse, error)
	ListTickets(ctx context.Context) (dto.GetTicketsResponse, error)
}

type serviceImpl struct {
	rest  rest.Client
	cfg   *config.Config
	cache *query.Cache
	otel  otel.Otel
}

func New(restClient rest.Client, cfg *config.Config, cache *query.Cache, ot otel.Otel) Support {
	return &serviceImpl{
		rest:  restClient,
		cfg:   cfg,
		cache: cache,
		otel:  ot,
	}
}

func (s *serviceImpl) CreateTicket(ctx context.Context, req dto.CreateTicketRequest) (res dto.CreateTicketResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateTicket")
	defer scope.End()
	defer scope.TraceIfError(err)

	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)

	if err = validator.ValidateFields(&req); err != nil {
		return res, err
	}

	if err = s.rest.Post(ctx, "/user/support/tickets", req, &res); err != nil {
		log.Error().Err(err).Msg("failed to create support ticket")

		return res, fmt.Errorf("failed to create support ticket: %w", err)
	}

	s.cache.Invalidate(shared.BuildCacheKey(cacheGetTickets))

	return res, nil
}

func (s *serviceImpl) ListTickets(ctx context.Context) (res dto.GetTicketsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListTickets")
	defer scope.End()
	defer scope.TraceIfError(err)

	return query.Fetch(ctx, s.cache, shared.BuildCacheKey(cacheGetTickets), func(ctx context.Context) (dto.GetTicketsResponse, error) {
		var out dto.GetTicketsResponse

		if err := s.rest.Get(ctx, "/user/support/tickets", nil, &out); err != nil {
			log.Error().Err(err).Msg("failed to list support tickets")

			return out, fmt.Errorf("failed to list support tickets: %w", err)
		}

		return out, nil
	})
}
