package workflow

import (
	"context"

	"github.com/rs/zerolog/log"

	bookingDto "crewlink/internal/domains/booking/model/dto"
	bookingService "crewlink/internal/domains/booking/service"
	reviewDto "crewlink/internal/domains/review/model/dto"
	reviewService "crewlink/internal/domains/review/service"
	"crewlink/infras/otel"
	"crewlink/shared/constant"
	"crewlink/shared/validator"
)

// ReviewForm is the user-entered portion of a review submission. The
// cross-reference ids are filled in from the booking, never from the form,
// so the form carries its own validation rules and is checked before any
// booking lookup.
type ReviewForm struct {
	Title  string `json:"title"  validate:"required,trimmin=5,trimmax=100"`
	Review string `json:"review" validate:"required,trimmin=20,trimmax=1000"`
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
}

// Controller drives the booking closure/review workflow. Every mutation
// follows the same shape: validate locally, call the endpoint, then run one
// explicit refresh so the next derived state reflects server truth.
type Controller interface {
	Snapshot(ctx context.Context, bookingID string) (State, error)
	Refresh(ctx context.Context, bookingID string) (State, error)
	UpdateContentDetails(ctx context.Context, bookingID string, req bookingDto.UpdateContentDetailsRequest) (State, error)
	AcceptClosure(ctx context.Context, bookingID string) (State, error)
	SubmitReview(ctx context.Context, bookingID string, form ReviewForm) (State, error)
}

type controllerImpl struct {
	bookings bookingService.Booking
	reviews  reviewService.Review
	drafts   DraftStore
	otel     otel.Otel
}

func New(bookings bookingService.Booking, reviews reviewService.Review, drafts DraftStore, ot otel.Otel) Controller {
	return &controllerImpl{
		bookings: bookings,
		reviews:  reviews,
		drafts:   drafts,
		otel:     ot,
	}
}

// Snapshot fetches booking and review through the query cache and derives the
// current state.
func (c *controllerImpl) Snapshot(ctx context.Context, bookingID string) (state State, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelWorkflowScopeName, constant.OtelWorkflowScopeName+".Snapshot")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := c.bookings.Get(ctx, bookingID)
	if err != nil {
		return state, err
	}

	review, err := c.reviews.Get(ctx, bookingID)
	if err != nil {
		return state, err
	}

	return DeriveState(booking, review), nil
}

// Refresh invalidates the booking list, the booking and its review, then
// force-refetches booking and review so the caller sees the post-mutation
// state immediately.
func (c *controllerImpl) Refresh(ctx context.Context, bookingID string) (state State, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelWorkflowScopeName, constant.OtelWorkflowScopeName+".Refresh")
	defer scope.End()
	defer scope.TraceIfError(err)

	c.bookings.Invalidate(bookingID)
	c.reviews.Invalidate(bookingID)

	booking, err := c.bookings.Refetch(ctx, bookingID)
	if err != nil {
		return state, err
	}

	review, err := c.reviews.Refetch(ctx, bookingID)
	if err != nil {
		return state, err
	}

	return DeriveState(booking, review), nil
}

func (c *controllerImpl) UpdateContentDetails(ctx context.Context, bookingID string, req bookingDto.UpdateContentDetailsRequest) (state State, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelWorkflowScopeName, constant.OtelWorkflowScopeName+".UpdateContentDetails")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = c.bookings.UpdateContentDetails(ctx, bookingID, req); err != nil {
		return state, err
	}

	return c.Refresh(ctx, bookingID)
}

func (c *controllerImpl) AcceptClosure(ctx context.Context, bookingID string) (state State, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelWorkflowScopeName, constant.OtelWorkflowScopeName+".AcceptClosure")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = c.bookings.AcceptClosure(ctx, bookingID); err != nil {
		return state, err
	}

	return c.Refresh(ctx, bookingID)
}

// SubmitReview creates or updates the review for a booking. The request
// carries every cross-reference id from the booking object; on the first
// successful submission the server moves the booking to completed.
func (c *controllerImpl) SubmitReview(ctx context.Context, bookingID string, form ReviewForm) (state State, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelWorkflowScopeName, constant.OtelWorkflowScopeName+".SubmitReview")
	defer scope.End()
	defer scope.TraceIfError(err)

	// The form fields are checked before the booking lookup so an invalid
	// form never touches the network, not even to resolve cross-reference ids.
	if err = validator.ValidateFields(&form); err != nil {
		return state, err
	}

	booking, err := c.bookings.Get(ctx, bookingID)
	if err != nil {
		return state, err
	}

	req := reviewDto.SubmitReviewRequest{
		Title:  form.Title,
		Review: form.Review,
		Rating: form.Rating,
	}
	req.FromBooking(booking)

	if err = c.reviews.Submit(ctx, bookingID, req); err != nil {
		return state, err
	}

	if c.drafts != nil {
		if draftErr := c.drafts.Discard(ctx, bookingID); draftErr != nil {
			log.Warn().Err(draftErr).Str("bookingId", bookingID).Msg("failed to discard review draft")
		}
	}

	return c.Refresh(ctx, bookingID)
}
