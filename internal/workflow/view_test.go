package workflow_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingModel "crewlink/internal/domains/booking/model"
	reviewModel "crewlink/internal/domains/review/model"
	"crewlink/internal/workflow"
	"crewlink/shared/constant"
)

func allStates() []workflow.State {
	booking := bookingModel.Booking{ID: "bk-1", Status: constant.BookingStatusInProgress}
	review := &reviewModel.Review{Rating: 5, Title: "Great session", Review: "Would book again without hesitation."}

	return []workflow.State{
		{Phase: workflow.PhaseNoClosureRequest, Booking: booking},
		{Phase: workflow.PhaseClosureRequested, Booking: booking},
		{Phase: workflow.PhaseClosureAccepted, Booking: booking},
		{Phase: workflow.PhaseReviewSubmitted, Booking: booking, Review: review},
		{Phase: workflow.PhaseCompleted, Booking: booking, Review: review},
	}
}

func TestViewFor(t *testing.T) {
	userView, err := workflow.ViewFor(constant.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, constant.RoleUser, userView.Role())

	partnerView, err := workflow.ViewFor(constant.RolePartner)
	require.NoError(t, err)
	assert.Equal(t, constant.RolePartner, partnerView.Role())

	_, err = workflow.ViewFor("admin")
	assert.Error(t, err)
}

func TestUserView_WaitingPhase(t *testing.T) {
	view := workflow.UserView{}

	out := view.Render(workflow.State{
		Phase:   workflow.PhaseNoClosureRequest,
		Booking: bookingModel.Booking{ID: "bk-1", Status: constant.BookingStatusInProgress},
	})

	assert.Contains(t, out, "Waiting for the partner")
	assert.NotContains(t, out, "closure accept")
	assert.NotContains(t, out, "closure review")
}

func TestUserView_RequestedPhaseOffersAccept(t *testing.T) {
	view := workflow.UserView{}

	out := view.Render(workflow.State{
		Phase:   workflow.PhaseClosureRequested,
		Booking: bookingModel.Booking{ID: "bk-1"},
	})

	assert.Contains(t, out, "requested closure")
	assert.Contains(t, out, "closure accept")
}

func TestUserView_AcceptedPhaseOffersReview(t *testing.T) {
	view := workflow.UserView{}

	out := view.Render(workflow.State{
		Phase:   workflow.PhaseClosureAccepted,
		Booking: bookingModel.Booking{ID: "bk-1"},
	})

	assert.Contains(t, out, "Leave a review")
	assert.Contains(t, out, "closure review")
}

func TestUserView_CompletedShowsReviewVerbatim(t *testing.T) {
	view := workflow.UserView{}

	review := &reviewModel.Review{
		Rating: 4,
		Title:  "Great light, cramped control room",
		Review: "The live room sounded fantastic but mixing in there got tight with three people.",
	}

	out := view.Render(workflow.State{
		Phase:   workflow.PhaseCompleted,
		Booking: bookingModel.Booking{ID: "bk-1", Status: constant.BookingStatusCompleted},
		Review:  review,
	})

	assert.Contains(t, out, review.Title)
	assert.Contains(t, out, review.Review)
	assert.Contains(t, out, strings.Repeat("★", 4))
	assert.Contains(t, out, "--edit", "the display mode must point at review editing")
}

func TestUserView_HeaderPrefersCustomBookingID(t *testing.T) {
	view := workflow.UserView{}

	out := view.Render(workflow.State{
		Phase:   workflow.PhaseNoClosureRequest,
		Booking: bookingModel.Booking{ID: "bk-1", CustomBookingID: "CB-1001"},
	})

	assert.Contains(t, out, "CB-1001")

	out = view.Render(workflow.State{
		Phase:   workflow.PhaseNoClosureRequest,
		Booking: bookingModel.Booking{ID: "bk-1"},
	})

	assert.Contains(t, out, "bk-1")
}

func TestPartnerView_AlwaysStatic(t *testing.T) {
	view := workflow.PartnerView{}

	for _, state := range allStates() {
		out := view.Render(state)

		assert.Contains(t, out, workflow.PartnerAccessMessage)
		assert.NotContains(t, out, "closure accept")
		assert.NotContains(t, out, "closure review")
		assert.NotContains(t, out, state.Booking.ID, "partner output must not leak booking details")
	}
}
