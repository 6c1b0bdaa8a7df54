package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"crewlink/config"
	"crewlink/infras/otel"
	"crewlink/infras/rest"
	"crewlink/internal/domains/booking/model"
	"crewlink/internal/domains/booking/model/dto"
	"crewlink/internal/query"
	"crewlink/shared"
	"crewlink/shared/constant"
	gDto "crewlink/shared/dto"
	"crewlink/shared/failure"
	"crewlink/shared/validator"
)

const (
	cacheGetBooking  = "booking:get"
	cacheGetBookings = "booking:gets"
)

// Booking wraps the booking endpoints of the marketplace API. Reads go
// through the query cache; mutations go straight to the server and leave
// cache refreshing to the caller, so the closure workflow can run its single
// explicit refresh after every mutation.
type Booking interface {
	List(ctx context.Context, role string, params gDto.QueryParams) (dto.BookingsResponse, error)
	Get(ctx context.Context, id string) (model.Booking, error)
	Refetch(ctx context.Context, id string) (model.Booking, error)
	UpdateContentDetails(ctx context.Context, id string, req dto.UpdateContentDetailsRequest) error
	AcceptClosure(ctx context.Context, id string) error
	Invalidate(id string)
}

type serviceImpl struct {
	rest  rest.Client
	cfg   *config.Config
	cache *query.Cache
	otel  otel.Otel
}

func New(restClient rest.Client, cfg *config.Config, cache *query.Cache, ot otel.Otel) Booking {
	return &serviceImpl{
		rest:  restClient,
		cfg:   cfg,
		cache: cache,
		otel:  ot,
	}
}

func listPath(role string) (string, error) {
	switch role {
	case constant.RoleUser:
		return "/user/bookings", nil
	case constant.RolePartner:
		return "/partner/bookings", nil
	default:
		return "", failure.BadRequestFromString(fmt.Sprintf("unknown role %q", role)) //nolint:wrapcheck
	}
}

func (s *serviceImpl) List(ctx context.Context, role string, params gDto.QueryParams) (res dto.BookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(err)

	path, err := listPath(role)
	if err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(cacheGetBookings, role, params.ToValues().Encode())

	return query.Fetch(ctx, s.cache, cacheKey, func(ctx context.Context) (dto.BookingsResponse, error) {
		var out dto.BookingsResponse

		if err := s.rest.Get(ctx, path, params.ToValues(), &out); err != nil {
			log.Error().Err(err).Msg("failed to list bookings")

			return out, fmt.Errorf("failed to list bookings: %w", err)
		}

		out.TotalPage = shared.CalculateTotalPage(out.TotalData, params.Limit)

		return out, nil
	})
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	return query.Fetch(ctx, s.cache, shared.BuildCacheKey(cacheGetBooking, id), s.fetch(id))
}

// Refetch bypasses any cached entry and reloads the booking from the server.
func (s *serviceImpl) Refetch(ctx context.Context, id string) (res model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Refetch")
	defer scope.End()
	defer scope.TraceIfError(err)

	return query.Refetch(ctx, s.cache, shared.BuildCacheKey(cacheGetBooking, id), s.fetch(id))
}

func (s *serviceImpl) fetch(id string) func(context.Context) (model.Booking, error) {
	return func(ctx context.Context) (model.Booking, error) {
		var out model.Booking

		if err := s.rest.Get(ctx, "/user/bookings/"+id, nil, &out); err != nil {
			log.Error().Err(err).Str("bookingId", id).Msg("failed to get booking")

			return out, fmt.Errorf("failed to get booking: %w", err)
		}

		return out, nil
	}
}

func (s *serviceImpl) UpdateContentDetails(ctx context.Context, id string, req dto.UpdateContentDetailsRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateContentDetails")
	defer scope.End()
	defer scope.TraceIfError(err)

	req.ContentTitle = strings.TrimSpace(req.ContentTitle)
	req.Notes = strings.TrimSpace(req.Notes)

	if err = validator.ValidateFields(&req); err != nil {
		return err
	}

	if err = s.rest.Put(ctx, "/partner/bookings/"+id+"/content-details", req, nil); err != nil {
		log.Error().Err(err).Str("bookingId", id).Msg("failed to update content details")

		return fmt.Errorf("failed to update content details: %w", err)
	}

	return nil
}

func (s *serviceImpl) AcceptClosure(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AcceptClosure")
	defer scope.End()
	defer scope.TraceIfError(err)

	req := dto.ClosureActionRequest{Action: constant.ClosureActionAccepted}

	var out dto.ActionResponse

	if err = s.rest.Post(ctx, "/media/bookings/"+id+"/closure/request", req, &out); err != nil {
		log.Error().Err(err).Str("bookingId", id).Msg("failed to accept closure request")

		return fmt.Errorf("failed to accept closure request: %w", err)
	}

	return nil
}

// Invalidate drops the booking list caches and the booking itself.
func (s *serviceImpl) Invalidate(id string) {
	s.cache.InvalidatePrefix(cacheGetBookings)
	s.cache.Invalidate(shared.BuildCacheKey(cacheGetBooking, id))
}
