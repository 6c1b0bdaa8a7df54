package dto

import (
	"crewlink/internal/domains/booking/model"
)

// UpdateContentDetailsRequest carries the content metadata a booking needs
// before closure can proceed. Lengths are checked against the trimmed value
// and violations never reach the network.
type UpdateContentDetailsRequest struct {
	ContentTitle   string `json:"contentTitle"   validate:"required,trimmin=3,trimmax=100"`
	Notes          string `json:"notes"          validate:"required,trimmin=10,trimmax=1000"`
	WorkflowStatus string `json:"workFlowStatus" validate:"omitempty,oneof=initiation content editing closure"`
}

// ClosureActionRequest is the body of the closure handshake endpoint. The
// client only ever sends the accepted action; requests are created by the
// partner side through its own flows.
type ClosureActionRequest struct {
	Action string `json:"action" validate:"required,oneof=accepted"`
}

type ActionResponse struct {
	Success bool `json:"success"`
}

type BookingsResponse struct {
	Bookings  []model.Booking `json:"bookings"`
	TotalData int             `json:"total"`
	TotalPage int             `json:"total_page"`
}
