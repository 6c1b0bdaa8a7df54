package constant

import (
	"time"
)

const (
	Empty = ""
)

// Role is the viewer role for a booking. The permission asymmetry between the
// two roles is deliberate: partners trigger closure requests through their own
// flows, users accept them and own the review.
const (
	RolePartner = "partner"
	RoleUser    = "user"
)

// Booking lifecycle status values as reported by the backend.
const (
	BookingStatusPending    = "pending"
	BookingStatusConfirmed  = "confirmed"
	BookingStatusInProgress = "in-progress"
	BookingStatusCompleted  = "completed"
	BookingStatusCancelled  = "cancelled"
)

// Workflow phases of a booking.
const (
	WorkflowStatusInitiation = "initiation"
	WorkflowStatusContent    = "content"
	WorkflowStatusEditing    = "editing"
	WorkflowStatusClosure    = "closure"
)

// Closure request sub-states. An absent closureRequest field is the initial
// state; the accepted transition is irreversible from the client side.
const (
	ClosureRequestNone      = ""
	ClosureRequestRequested = "requested"
	ClosureRequestAccepted  = "accepted"

	ClosureActionAccepted = "accepted"
)

const (
	EntityTypeStudio     = "studio"
	EntityTypeFreelancer = "freelancer"
)

const (
	RequestHeaderAuthorization = "Authorization"
	RequestHeaderContentType   = "Content-Type"
	RequestHeaderRequestID     = "X-Request-ID"
	RequestHeaderUserAgent     = "User-Agent"

	ContentTypeJSON = "application/json"

	AuthSchemeBearer = "Bearer"
)

const (
	RequestParamPage    = "page"
	RequestParamLimit   = "limit"
	RequestParamSortBy  = "sort_by"
	RequestParamSortDir = "sort_dir"
	RequestParamSearch  = "search"
)

const (
	DefaultValuePage    = 1
	DefaultValueLimit   = 10
	DefaultValueSortBy  = "created_at"
	DefaultValueSortDir = "DESC"
)

const (
	DateFormat = time.RFC3339
)

const (
	OtelServiceScopeName  = "service"
	OtelRestScopeName     = "rest"
	OtelWorkflowScopeName = "workflow"
	OtelSessionScopeName  = "session"
	OtelQueryScopeName    = "query"

	OtelHTTPMethodAttribute = "http.method"
	OtelHTTPPathAttribute   = "http.path"
	OtelHTTPStatusAttribute = "http.status_code"
)

// Validation bounds enforced before any network call is made. The backend
// enforces the same bounds authoritatively.
const (
	ReviewRatingMin = 1
	ReviewRatingMax = 5
	ReviewTitleMin  = 5
	ReviewTitleMax  = 100
	ReviewBodyMin   = 20
	ReviewBodyMax   = 1000

	ContentTitleMin = 3
	ContentTitleMax = 100
	ContentNotesMin = 10
	ContentNotesMax = 1000
)
