package workflow

import (
	bookingModel "crewlink/internal/domains/booking/model"
	reviewModel "crewlink/internal/domains/review/model"
	"crewlink/shared/constant"
)

// Phase is the derived closure-workflow state of a booking. It is never
// stored; every snapshot recomputes it from freshly fetched server data, so
// the client cannot hold a phase the server disagrees with.
type Phase int

const (
	// PhaseNoClosureRequest is the initial phase; the partner has not
	// triggered a closure request yet and the user can only wait.
	PhaseNoClosureRequest Phase = iota

	// PhaseClosureRequested means the partner requested closure and the
	// user's single available action is accepting it.
	PhaseClosureRequested

	// PhaseClosureAccepted means the handshake is done and no review exists
	// yet; the user is in the review form.
	PhaseClosureAccepted

	// PhaseReviewSubmitted means a review exists but the booking has not yet
	// been observed as completed. Transient; the next refetch usually lands
	// in PhaseCompleted.
	PhaseReviewSubmitted

	// PhaseCompleted is terminal for the workflow. The review stays editable,
	// which transiently re-enters the form.
	PhaseCompleted
)

func (p Phase) String() string {
	switch p {
	case PhaseNoClosureRequest:
		return "no-closure-request"
	case PhaseClosureRequested:
		return "closure-requested"
	case PhaseClosureAccepted:
		return "closure-accepted"
	case PhaseReviewSubmitted:
		return "review-submitted"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// State is one derived snapshot of the workflow: the phase plus the server
// data it was derived from.
type State struct {
	Phase   Phase
	Booking bookingModel.Booking
	Review  *reviewModel.Review
}

// DeriveState computes the workflow phase from a booking and its review.
// Pure; the only place phase decisions are made. Unknown closureRequest
// values derive conservatively to the waiting phase.
func DeriveState(booking bookingModel.Booking, review *reviewModel.Review) State {
	state := State{Booking: booking, Review: review}

	switch booking.ClosureRequest {
	case constant.ClosureRequestRequested:
		state.Phase = PhaseClosureRequested
	case constant.ClosureRequestAccepted:
		switch {
		case review == nil:
			state.Phase = PhaseClosureAccepted
		case booking.Completed() && booking.InClosure():
			state.Phase = PhaseCompleted
		default:
			state.Phase = PhaseReviewSubmitted
		}
	default:
		state.Phase = PhaseNoClosureRequest
	}

	return state
}
