package service_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"crewlink/config"
	"crewlink/infras/otel/mocks"
	restMocks "crewlink/infras/rest/mocks"
	bookingModel "crewlink/internal/domains/booking/model"
	"crewlink/internal/domains/review/model"
	"crewlink/internal/domains/review/model/dto"
	"crewlink/internal/domains/review/service"
	"crewlink/internal/query"
	"crewlink/shared/constant"
	"crewlink/shared/failure"
)

func newService(t *testing.T) (service.Review, *restMocks.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRest := restMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	cache := query.New(cfg, mocks.NewOtel())

	return service.New(mockRest, cfg, cache, mocks.NewOtel()), mockRest
}

func validRequest() dto.SubmitReviewRequest {
	req := dto.SubmitReviewRequest{
		Title:  "Great session",
		Review: "The studio was clean and the engineer knew the gear inside out.",
		Rating: 5,
	}

	req.FromBooking(bookingModel.Booking{
		EntityType:      constant.EntityTypeStudio,
		EntityID:        "studio-1",
		StudioID:        "studio-1",
		CustomBookingID: "CB-1001",
	})

	return req
}

func TestReviewService_Get(t *testing.T) {
	svc, mockRest := newService(t)

	mockRest.EXPECT().
		Get(gomock.Any(), "/user/review/bk-1/review", gomock.Nil(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ any, out *dto.GetReviewResponse) error {
			out.Review = &model.Review{Rating: 4, Title: "Solid"}

			return nil
		}).
		Times(1)

	ctx := context.Background()

	// Second call is served from the cache.
	for range 2 {
		review, err := svc.Get(ctx, "bk-1")
		require.NoError(t, err)
		require.NotNil(t, review)
		assert.Equal(t, 4, review.Rating)
	}
}

func TestReviewService_GetAbsentReviewIsNil(t *testing.T) {
	svc, mockRest := newService(t)

	mockRest.EXPECT().
		Get(gomock.Any(), "/user/review/bk-1/review", gomock.Nil(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ any, out *dto.GetReviewResponse) error {
			out.Review = nil

			return nil
		})

	review, err := svc.Get(context.Background(), "bk-1")
	require.NoError(t, err)
	assert.Nil(t, review)
}

func TestReviewService_GetNotFoundIsNil(t *testing.T) {
	svc, mockRest := newService(t)

	mockRest.EXPECT().
		Get(gomock.Any(), "/user/review/bk-1/review", gomock.Nil(), gomock.Any()).
		Return(failure.FromStatus(http.StatusNotFound, "review not found"))

	review, err := svc.Get(context.Background(), "bk-1")
	require.NoError(t, err, "a missing review is a state, not an error")
	assert.Nil(t, review)
}

func TestReviewService_Submit(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*dto.SubmitReviewRequest)
		wantFields []string
		wantCall   bool
	}{
		{
			name:     "valid request",
			mutate:   func(*dto.SubmitReviewRequest) {},
			wantCall: true,
		},
		{
			name: "trims title and body before sending",
			mutate: func(req *dto.SubmitReviewRequest) {
				req.Title = "  Great session  "
				req.Review = "  The studio was clean and the engineer knew the gear inside out.  "
			},
			wantCall: true,
		},
		{
			name: "title too short",
			mutate: func(req *dto.SubmitReviewRequest) {
				req.Title = "abcd"
			},
			wantFields: []string{"title"},
		},
		{
			name: "body too short",
			mutate: func(req *dto.SubmitReviewRequest) {
				req.Review = "too short"
			},
			wantFields: []string{"review"},
		},
		{
			name: "body above maximum",
			mutate: func(req *dto.SubmitReviewRequest) {
				req.Review = strings.Repeat("a", 1001)
			},
			wantFields: []string{"review"},
		},
		{
			name: "rating out of range",
			mutate: func(req *dto.SubmitReviewRequest) {
				req.Rating = 6
			},
			wantFields: []string{"rating"},
		},
		{
			name: "missing rating",
			mutate: func(req *dto.SubmitReviewRequest) {
				req.Rating = 0
			},
			wantFields: []string{"rating"},
		},
		{
			name: "multiple invalid fields reported together",
			mutate: func(req *dto.SubmitReviewRequest) {
				req.Title = "ab"
				req.Review = "nope"
				req.Rating = 0
			},
			wantFields: []string{"title", "review", "rating"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRest := newService(t)

			req := validRequest()
			tt.mutate(&req)

			if tt.wantCall {
				mockRest.EXPECT().
					Post(gomock.Any(), "/user/review/bk-1/review", gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, body dto.SubmitReviewRequest, _ any) error {
						assert.Equal(t, strings.TrimSpace(req.Title), body.Title)
						assert.Equal(t, strings.TrimSpace(req.Review), body.Review)
						assert.Equal(t, "CB-1001", body.CustomBookingID)
						assert.Equal(t, constant.EntityTypeStudio, body.EntityType)

						return nil
					})
			}

			err := svc.Submit(context.Background(), "bk-1", req)

			if tt.wantCall {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			require.True(t, failure.IsValidation(err))

			var v *failure.Validation
			require.ErrorAs(t, err, &v)

			for _, field := range tt.wantFields {
				assert.NotEmpty(t, v.Field(field), "expected a message for field %s", field)
			}

			assert.Len(t, v.Fields, len(tt.wantFields))
		})
	}
}

func TestReviewService_Invalidate(t *testing.T) {
	svc, mockRest := newService(t)

	mockRest.EXPECT().
		Get(gomock.Any(), "/user/review/bk-1/review", gomock.Nil(), gomock.Any()).
		Return(nil).
		Times(2)

	ctx := context.Background()

	_, err := svc.Get(ctx, "bk-1")
	require.NoError(t, err)

	svc.Invalidate("bk-1")

	_, err = svc.Get(ctx, "bk-1")
	require.NoError(t, err)
}
