package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"crewlink/config"
	"crewlink/infras/otel/mocks"
	restMocks "crewlink/infras/rest/mocks"
	"crewlink/internal/domains/booking/model"
	"crewlink/internal/domains/booking/model/dto"
	"crewlink/internal/domains/booking/service"
	"crewlink/internal/query"
	"crewlink/shared/constant"
	gDto "crewlink/shared/dto"
	"crewlink/shared/failure"
)

func newService(t *testing.T) (service.Booking, *restMocks.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRest := restMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	cache := query.New(cfg, mocks.NewOtel())

	return service.New(mockRest, cfg, cache, mocks.NewOtel()), mockRest
}

func TestBookingService_List(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		wantPath string
		wantErr  bool
	}{
		{name: "user role", role: constant.RoleUser, wantPath: "/user/bookings"},
		{name: "partner role", role: constant.RolePartner, wantPath: "/partner/bookings"},
		{name: "unknown role", role: "admin", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRest := newService(t)

			if !tt.wantErr {
				mockRest.EXPECT().
					Get(gomock.Any(), tt.wantPath, gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, _ any, out *dto.BookingsResponse) error {
						out.Bookings = []model.Booking{{ID: "bk-1"}}
						out.TotalData = 25

						return nil
					})
			}

			res, err := svc.List(context.Background(), tt.role, gDto.Defaults())

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Len(t, res.Bookings, 1)
			assert.Equal(t, 25, res.TotalData)
			assert.Equal(t, 3, res.TotalPage)
		})
	}
}

func TestBookingService_ListCachesPerRole(t *testing.T) {
	svc, mockRest := newService(t)

	mockRest.EXPECT().
		Get(gomock.Any(), "/user/bookings", gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	mockRest.EXPECT().
		Get(gomock.Any(), "/partner/bookings", gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	ctx := context.Background()
	params := gDto.Defaults()

	for range 2 {
		_, err := svc.List(ctx, constant.RoleUser, params)
		require.NoError(t, err)

		_, err = svc.List(ctx, constant.RolePartner, params)
		require.NoError(t, err)
	}
}

func TestBookingService_GetUsesCache(t *testing.T) {
	svc, mockRest := newService(t)

	mockRest.EXPECT().
		Get(gomock.Any(), "/user/bookings/bk-1", gomock.Nil(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ any, out *model.Booking) error {
			out.ID = "bk-1"
			out.Status = constant.BookingStatusInProgress

			return nil
		}).
		Times(1)

	ctx := context.Background()

	for range 3 {
		booking, err := svc.Get(ctx, "bk-1")
		require.NoError(t, err)
		assert.Equal(t, "bk-1", booking.ID)
	}
}

func TestBookingService_RefetchBypassesCache(t *testing.T) {
	svc, mockRest := newService(t)

	mockRest.EXPECT().
		Get(gomock.Any(), "/user/bookings/bk-1", gomock.Nil(), gomock.Any()).
		Return(nil).
		Times(2)

	ctx := context.Background()

	_, err := svc.Get(ctx, "bk-1")
	require.NoError(t, err)

	_, err = svc.Refetch(ctx, "bk-1")
	require.NoError(t, err)
}

func TestBookingService_UpdateContentDetails(t *testing.T) {
	tests := []struct {
		name       string
		req        dto.UpdateContentDetailsRequest
		wantFields []string
		wantCall   bool
	}{
		{
			name: "valid request",
			req: dto.UpdateContentDetailsRequest{
				ContentTitle: "Spring campaign shoot",
				Notes:        "Focus on the warmer takes from the second half.",
			},
			wantCall: true,
		},
		{
			name: "trims surrounding whitespace before sending",
			req: dto.UpdateContentDetailsRequest{
				ContentTitle: "  Spring campaign shoot  ",
				Notes:        "  Focus on the warmer takes from the second half.  ",
			},
			wantCall: true,
		},
		{
			name: "title too short",
			req: dto.UpdateContentDetailsRequest{
				ContentTitle: "ab",
				Notes:        "Focus on the warmer takes from the second half.",
			},
			wantFields: []string{"contentTitle"},
		},
		{
			name: "notes too short",
			req: dto.UpdateContentDetailsRequest{
				ContentTitle: "Spring campaign shoot",
				Notes:        "short",
			},
			wantFields: []string{"notes"},
		},
		{
			name: "whitespace padding does not satisfy minimum length",
			req: dto.UpdateContentDetailsRequest{
				ContentTitle: "ab        ",
				Notes:        "short     ",
			},
			wantFields: []string{"contentTitle", "notes"},
		},
		{
			name: "notes above maximum",
			req: dto.UpdateContentDetailsRequest{
				ContentTitle: "Spring campaign shoot",
				Notes:        strings.Repeat("a", 1001),
			},
			wantFields: []string{"notes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRest := newService(t)

			if tt.wantCall {
				mockRest.EXPECT().
					Put(gomock.Any(), "/partner/bookings/bk-1/content-details", gomock.Any(), gomock.Nil()).
					DoAndReturn(func(_ context.Context, _ string, body dto.UpdateContentDetailsRequest, _ any) error {
						assert.Equal(t, strings.TrimSpace(tt.req.ContentTitle), body.ContentTitle)
						assert.Equal(t, strings.TrimSpace(tt.req.Notes), body.Notes)

						return nil
					})
			}

			err := svc.UpdateContentDetails(context.Background(), "bk-1", tt.req)

			if tt.wantCall {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			require.True(t, failure.IsValidation(err), "invalid input must fail before any network call")

			var v *failure.Validation
			require.ErrorAs(t, err, &v)

			for _, field := range tt.wantFields {
				assert.NotEmpty(t, v.Field(field), "expected a message for field %s", field)
			}

			assert.Len(t, v.Fields, len(tt.wantFields))
		})
	}
}

func TestBookingService_AcceptClosure(t *testing.T) {
	svc, mockRest := newService(t)

	mockRest.EXPECT().
		Post(gomock.Any(), "/media/bookings/bk-1/closure/request", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, body dto.ClosureActionRequest, _ any) error {
			assert.Equal(t, constant.ClosureActionAccepted, body.Action)

			return nil
		})

	err := svc.AcceptClosure(context.Background(), "bk-1")
	assert.NoError(t, err)
}

func TestBookingService_Invalidate(t *testing.T) {
	svc, mockRest := newService(t)

	mockRest.EXPECT().
		Get(gomock.Any(), "/user/bookings", gomock.Any(), gomock.Any()).
		Return(nil).
		Times(2)

	mockRest.EXPECT().
		Get(gomock.Any(), "/user/bookings/bk-1", gomock.Nil(), gomock.Any()).
		Return(nil).
		Times(2)

	ctx := context.Background()
	params := gDto.Defaults()

	_, err := svc.List(ctx, constant.RoleUser, params)
	require.NoError(t, err)

	_, err = svc.Get(ctx, "bk-1")
	require.NoError(t, err)

	svc.Invalidate("bk-1")

	_, err = svc.List(ctx, constant.RoleUser, params)
	require.NoError(t, err)

	_, err = svc.Get(ctx, "bk-1")
	require.NoError(t, err)
}
