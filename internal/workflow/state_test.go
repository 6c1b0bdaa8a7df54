package workflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	bookingModel "crewlink/internal/domains/booking/model"
	reviewModel "crewlink/internal/domains/review/model"
	"crewlink/internal/workflow"
	"crewlink/shared/constant"
)

func TestDeriveState(t *testing.T) {
	review := &reviewModel.Review{Rating: 5, Title: "Great session"}

	tests := []struct {
		name    string
		booking bookingModel.Booking
		review  *reviewModel.Review
		want    workflow.Phase
	}{
		{
			name:    "no closure request",
			booking: bookingModel.Booking{Status: constant.BookingStatusInProgress},
			want:    workflow.PhaseNoClosureRequest,
		},
		{
			name: "closure requested",
			booking: bookingModel.Booking{
				Status:         constant.BookingStatusInProgress,
				ClosureRequest: constant.ClosureRequestRequested,
			},
			want: workflow.PhaseClosureRequested,
		},
		{
			name: "closure requested with stale review still shows the request",
			booking: bookingModel.Booking{
				Status:         constant.BookingStatusInProgress,
				ClosureRequest: constant.ClosureRequestRequested,
			},
			review: review,
			want:   workflow.PhaseClosureRequested,
		},
		{
			name: "closure accepted without review",
			booking: bookingModel.Booking{
				Status:         constant.BookingStatusInProgress,
				WorkflowStatus: constant.WorkflowStatusClosure,
				ClosureRequest: constant.ClosureRequestAccepted,
			},
			want: workflow.PhaseClosureAccepted,
		},
		{
			name: "review submitted but booking not yet completed",
			booking: bookingModel.Booking{
				Status:         constant.BookingStatusInProgress,
				WorkflowStatus: constant.WorkflowStatusClosure,
				ClosureRequest: constant.ClosureRequestAccepted,
			},
			review: review,
			want:   workflow.PhaseReviewSubmitted,
		},
		{
			name: "completed",
			booking: bookingModel.Booking{
				Status:         constant.BookingStatusCompleted,
				WorkflowStatus: constant.WorkflowStatusClosure,
				ClosureRequest: constant.ClosureRequestAccepted,
			},
			review: review,
			want:   workflow.PhaseCompleted,
		},
		{
			name: "completed status outside the closure workflow is not terminal",
			booking: bookingModel.Booking{
				Status:         constant.BookingStatusCompleted,
				WorkflowStatus: constant.WorkflowStatusEditing,
				ClosureRequest: constant.ClosureRequestAccepted,
			},
			review: review,
			want:   workflow.PhaseReviewSubmitted,
		},
		{
			name: "unknown closure request value derives to the waiting phase",
			booking: bookingModel.Booking{
				Status:         constant.BookingStatusInProgress,
				ClosureRequest: "pending-approval",
			},
			want: workflow.PhaseNoClosureRequest,
		},
		{
			name:    "zero-value booking",
			booking: bookingModel.Booking{},
			want:    workflow.PhaseNoClosureRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := workflow.DeriveState(tt.booking, tt.review)

			assert.Equal(t, tt.want, state.Phase)
			assert.Equal(t, tt.booking, state.Booking)
			assert.Equal(t, tt.review, state.Review)
		})
	}
}

func TestPhase_String(t *testing.T) {
	tests := []struct {
		phase workflow.Phase
		want  string
	}{
		{workflow.PhaseNoClosureRequest, "no-closure-request"},
		{workflow.PhaseClosureRequested, "closure-requested"},
		{workflow.PhaseClosureAccepted, "closure-accepted"},
		{workflow.PhaseReviewSubmitted, "review-submitted"},
		{workflow.PhaseCompleted, "completed"},
		{workflow.Phase(99), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.phase.String())
	}
}
