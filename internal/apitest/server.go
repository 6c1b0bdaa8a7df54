// Package apitest hosts a scripted stand-in for the marketplace backend.
// Tests point the rest client at it and assert on exactly which endpoints
// were hit and with what payloads.
package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"

	"crewlink/infras/sqlite"
	bookingModel "crewlink/internal/domains/booking/model"
	bookingDto "crewlink/internal/domains/booking/model/dto"
	reviewModel "crewlink/internal/domains/review/model"
	reviewDto "crewlink/internal/domains/review/model/dto"
	"crewlink/shared/constant"
	"crewlink/shared/timezone"
)

// Server is the fake backend. All exported state is guarded by mu; tests
// mutate fixtures directly between requests.
type Server struct {
	mu sync.Mutex

	httpServer *httptest.Server

	// RequireAuth makes every route demand a bearer token and answer 401
	// without one.
	RequireAuth bool
	// ForceUnauthorized makes every route answer 401 even with a token,
	// simulating an expired session.
	ForceUnauthorized bool
	// FailAll makes every route answer 500 with a server message.
	FailAll bool

	Bookings map[string]*bookingModel.Booking
	Reviews  map[string]*reviewModel.Review

	ClosureActions    []bookingDto.ClosureActionRequest
	ContentUpdates    []bookingDto.UpdateContentDetailsRequest
	ReviewSubmissions []reviewDto.SubmitReviewRequest

	LastAuthHeader string
	LastRequestID  string

	hits map[string]int
}

func NewServer(t *testing.T) *Server {
	t.Helper()

	s := &Server{
		Bookings: make(map[string]*bookingModel.Booking),
		Reviews:  make(map[string]*reviewModel.Review),
		hits:     make(map[string]int),
	}

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut},
	}))
	router.Use(s.observe)

	router.Get("/user/bookings", s.listBookings)
	router.Get("/partner/bookings", s.listBookings)
	router.Get("/user/bookings/{id}", s.getBooking)
	router.Put("/partner/bookings/{id}/content-details", s.updateContentDetails)
	router.Post("/media/bookings/{id}/closure/request", s.closureRequest)
	router.Get("/user/review/{id}/review", s.getReview)
	router.Post("/user/review/{id}/review", s.submitReview)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	})

	s.httpServer = httptest.NewServer(router)
	t.Cleanup(s.httpServer.Close)

	return s
}

// URL is the base URL tests plug into config.API.BaseURL.
func (s *Server) URL() string {
	return s.httpServer.URL
}

// Hits returns how often a route pattern was served, e.g.
// Hits("POST", "/media/bookings/{id}/closure/request").
func (s *Server) Hits(method, pattern string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.hits[method+" "+pattern]
}

// TotalHits counts every request the server saw.
func (s *Server) TotalHits() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, n := range s.hits {
		total += n
	}

	return total
}

// AddBooking registers a booking fixture and returns it for mutation.
func (s *Server) AddBooking(booking bookingModel.Booking) *bookingModel.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := booking
	s.Bookings[b.ID] = &b

	return &b
}

// AddReview registers a review fixture for a booking id.
func (s *Server) AddReview(bookingID string, review reviewModel.Review) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := review
	s.Reviews[bookingID] = &r
}

func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.LastAuthHeader = r.Header.Get(constant.RequestHeaderAuthorization)
		s.LastRequestID = r.Header.Get(constant.RequestHeaderRequestID)

		if s.ForceUnauthorized ||
			(s.RequireAuth && !strings.HasPrefix(s.LastAuthHeader, constant.AuthSchemeBearer+" ")) {
			s.mu.Unlock()
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})

			return
		}

		if s.FailAll {
			s.mu.Unlock()
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "backend unavailable"})

			return
		}
		s.mu.Unlock()

		next.ServeHTTP(w, r)

		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			s.mu.Lock()
			s.hits[r.Method+" "+rctx.RoutePattern()]++
			s.mu.Unlock()
		}
	})
}

func (s *Server) listBookings(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := bookingDto.BookingsResponse{Bookings: []bookingModel.Booking{}}
	for _, b := range s.Bookings {
		res.Bookings = append(res.Bookings, *b)
	}

	res.TotalData = len(res.Bookings)

	writeJSON(w, http.StatusOK, res)
}

func (s *Server) getBooking(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.Bookings[chi.URLParam(r, "id")]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "booking not found"})

		return
	}

	writeJSON(w, http.StatusOK, booking)
}

func (s *Server) updateContentDetails(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.Bookings[chi.URLParam(r, "id")]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "booking not found"})

		return
	}

	var req bookingDto.UpdateContentDetailsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid body"})

		return
	}

	s.ContentUpdates = append(s.ContentUpdates, req)

	booking.ContentTitle = req.ContentTitle
	booking.Notes = req.Notes
	if req.WorkflowStatus != "" {
		booking.WorkflowStatus = req.WorkflowStatus
	}

	writeJSON(w, http.StatusOK, bookingDto.ActionResponse{Success: true})
}

func (s *Server) closureRequest(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.Bookings[chi.URLParam(r, "id")]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "booking not found"})

		return
	}

	var req bookingDto.ClosureActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid body"})

		return
	}

	s.ClosureActions = append(s.ClosureActions, req)

	if req.Action == constant.ClosureActionAccepted {
		booking.ClosureRequest = constant.ClosureRequestAccepted
	}

	writeJSON(w, http.StatusOK, bookingDto.ActionResponse{Success: true})
}

func (s *Server) getReview(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	writeJSON(w, http.StatusOK, reviewDto.GetReviewResponse{
		Review: s.Reviews[chi.URLParam(r, "id")],
	})
}

func (s *Server) submitReview(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookingID := chi.URLParam(r, "id")

	booking, ok := s.Bookings[bookingID]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "booking not found"})

		return
	}

	var req reviewDto.SubmitReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid body"})

		return
	}

	s.ReviewSubmissions = append(s.ReviewSubmissions, req)

	now := timezone.Now()

	existing := s.Reviews[bookingID]
	if existing == nil {
		s.Reviews[bookingID] = &reviewModel.Review{
			Rating:    req.Rating,
			Title:     req.Title,
			Review:    req.Review,
			CreatedAt: now,
			UpdatedAt: now,
		}

		// First review completes the booking server-side.
		booking.Status = constant.BookingStatusCompleted
		booking.WorkflowStatus = constant.WorkflowStatusClosure
	} else {
		existing.Rating = req.Rating
		existing.Title = req.Title
		existing.Review = req.Review
		existing.UpdatedAt = now
	}

	writeJSON(w, http.StatusOK, reviewDto.SubmitReviewResponse{Success: true})
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}

// StateDB returns an in-memory migrated state database for tests that need a
// session or draft store.
func StateDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Connect("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory state db: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })

	db.SetMaxOpenConns(1)

	if err := sqlite.Migrate(db); err != nil {
		t.Fatalf("failed to migrate state db: %v", err)
	}

	return db
}
