package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"crewlink/config"
	"crewlink/infras/otel"
	"crewlink/infras/rest"
	"crewlink/internal/domains/review/model"
	"crewlink/internal/domains/review/model/dto"
	"crewlink/internal/query"
	"crewlink/shared"
	"crewlink/shared/constant"
	"crewlink/shared/failure"
	"crewlink/shared/validator"
)

const (
	cacheGetReview = "review:get"
)

// Review wraps the per-booking review endpoints. An absent review is a nil
// result, not an error; the workflow derives its state from that distinction.
type Review interface {
	Get(ctx context.Context, bookingID string) (*model.Review, error)
	Refetch(ctx context.Context, bookingID string) (*model.Review, error)
	Submit(ctx context.Context, bookingID string, req dto.SubmitReviewRequest) error
	Invalidate(bookingID string)
}

type serviceImpl struct {
	rest  rest.Client
	cfg   *config.Config
	cache *query.Cache
	otel  otel.Otel
}

func New(restClient rest.Client, cfg *config.Config, cache *query.Cache, ot otel.Otel) Review {
	return &serviceImpl{
		rest:  restClient,
		cfg:   cfg,
		cache: cache,
		otel:  ot,
	}
}

func (s *serviceImpl) Get(ctx context.Context, bookingID string) (res *model.Review, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetReview")
	defer scope.End()
	defer scope.TraceIfError(err)

	return query.Fetch(ctx, s.cache, shared.BuildCacheKey(cacheGetReview, bookingID), s.fetch(bookingID))
}

func (s *serviceImpl) Refetch(ctx context.Context, bookingID string) (res *model.Review, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefetchReview")
	defer scope.End()
	defer scope.TraceIfError(err)

	return query.Refetch(ctx, s.cache, shared.BuildCacheKey(cacheGetReview, bookingID), s.fetch(bookingID))
}

func (s *serviceImpl) fetch(bookingID string) func(context.Context) (*model.Review, error) {
	return func(ctx context.Context) (*model.Review, error) {
		var out dto.GetReviewResponse

		err := s.rest.Get(ctx, "/user/review/"+bookingID+"/review", nil, &out)
		if err != nil {
			if failure.GetCode(err) == http.StatusNotFound {
				return nil, nil
			}

			log.Error().Err(err).Str("bookingId", bookingID).Msg("failed to get review")

			return nil, fmt.Errorf("failed to get review: %w", err)
		}

		return out.Review, nil
	}
}

// Submit validates the review client-side and only then contacts the server.
// A validation failure is returned as field-level errors with no network call
// made.
func (s *serviceImpl) Submit(ctx context.Context, bookingID string, req dto.SubmitReviewRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SubmitReview")
	defer scope.End()
	defer scope.TraceIfError(err)

	req.Title = strings.TrimSpace(req.Title)
	req.Review = strings.TrimSpace(req.Review)

	if err = validator.ValidateFields(&req); err != nil {
		return err
	}

	var out dto.SubmitReviewResponse

	if err = s.rest.Post(ctx, "/user/review/"+bookingID+"/review", req, &out); err != nil {
		log.Error().Err(err).Str("bookingId", bookingID).Msg("failed to submit review")

		return fmt.Errorf("failed to submit review: %w", err)
	}

	return nil
}

func (s *serviceImpl) Invalidate(bookingID string) {
	s.cache.Invalidate(shared.BuildCacheKey(cacheGetReview, bookingID))
}
