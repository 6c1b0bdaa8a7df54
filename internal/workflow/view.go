package workflow

import (
	"fmt"
	"strings"

	"crewlink/shared/constant"
	"crewlink/shared/failure"
)

// PartnerAccessMessage is the only thing a partner account ever sees in this
// workflow. Partners trigger closure requests through their own flows; the
// handshake and the review belong to the user side.
const PartnerAccessMessage = "Access not available for partner accounts. Closure requests are managed from the partner dashboard."

// View renders a derived workflow state for one role. The two roles are
// explicit variants rather than runtime branches, so the permission
// asymmetry between them is fixed at construction time.
type View interface {
	Role() string
	Render(state State) string
}

// ViewFor returns the view variant for a role.
func ViewFor(role string) (View, error) {
	switch role {
	case constant.RoleUser:
		return UserView{}, nil
	case constant.RolePartner:
		return PartnerView{}, nil
	default:
		return nil, failure.BadRequestFromString(fmt.Sprintf("unknown role %q", role)) //nolint:wrapcheck
	}
}

type UserView struct{}

func (UserView) Role() string {
	return constant.RoleUser
}

func (UserView) Render(state State) string {
	var b strings.Builder

	b.WriteString(renderHeader(state))
	b.WriteString("\n")

	switch state.Phase {
	case PhaseNoClosureRequest:
		b.WriteString(mutedStyle.Render("Waiting for the partner to request closure. Check back later."))
	case PhaseClosureRequested:
		b.WriteString(actionStyle.Render("The partner requested closure of this booking."))
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("Run `crewlink closure accept` to accept it."))
	case PhaseClosureAccepted:
		b.WriteString(actionStyle.Render("Closure accepted. Leave a review to complete the booking."))
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("Run `crewlink closure review` to write it."))
	case PhaseReviewSubmitted, PhaseCompleted:
		b.WriteString(renderReview(state))
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("Run `crewlink closure review --edit` to change it."))
	}

	b.WriteString("\n")

	return b.String()
}

type PartnerView struct{}

func (PartnerView) Role() string {
	return constant.RolePartner
}

// Render shows the same static message for every state.
func (PartnerView) Render(_ State) string {
	return mutedStyle.Render(PartnerAccessMessage) + "\n"
}

func renderHeader(state State) string {
	booking := state.Booking

	header := fmt.Sprintf("Booking %s", booking.CustomBookingID)
	if booking.CustomBookingID == "" {
		header = fmt.Sprintf("Booking %s", booking.ID)
	}

	return headerStyle.Render(header) + "  " +
		badgeStyle.Render(booking.Status) + " " +
		badgeStyle.Render(state.Phase.String())
}

func renderReview(state State) string {
	if state.Review == nil {
		return ""
	}

	review := state.Review
	stars := strings.Repeat("★", review.Rating) + strings.Repeat("☆", constant.ReviewRatingMax-review.Rating)

	var b strings.Builder

	b.WriteString(ratingStyle.Render(stars))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(review.Title))
	b.WriteString("\n")
	b.WriteString(review.Review)

	return b.String()
}
