package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"crewlink/config"
	"crewlink/infras/otel/mocks"
	restMocks "crewlink/infras/rest/mocks"
	"crewlink/internal/domains/support/model"
	"crewlink/internal/domains/support/model/dto"
	"crewlink/internal/domains/support/service"
	"crewlink/internal/query"
	"crewlink/shared/failure"
)

func newService(t *testing.T) (service.Support, *restMocks.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRest := restMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	cache := query.New(cfg, mocks.NewOtel())

	return service.New(mockRest, cfg, cache, mocks.NewOtel()), mockRest
}

func TestSupportService_CreateTicket(t *testing.T) {
	svc, mockRest := newService(t)

	mockRest.EXPECT().
		Post(gomock.Any(), "/user/support/tickets", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, body dto.CreateTicketRequest, out *dto.CreateTicketResponse) error {
			assert.Equal(t, "Invoice missing", body.Subject)

			out.Success = true
			out.ID = "ticket-1"

			return nil
		})

	res, err := svc.CreateTicket(context.Background(), dto.CreateTicketRequest{
		Subject: "  Invoice missing  ",
		Message: "The March booking has no invoice attached to it.",
	})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, "ticket-1", res.ID)
}

func TestSupportService_CreateTicketInvalid(t *testing.T) {
	tests := []struct {
		name       string
		req        dto.CreateTicketRequest
		wantFields []string
	}{
		{
			name:       "subject too short",
			req:        dto.CreateTicketRequest{Subject: "ab", Message: "The March booking has no invoice attached to it."},
			wantFields: []string{"subject"},
		},
		{
			name:       "message too short",
			req:        dto.CreateTicketRequest{Subject: "Invoice missing", Message: "short"},
			wantFields: []string{"message"},
		},
		{
			name:       "both missing",
			req:        dto.CreateTicketRequest{},
			wantFields: []string{"subject", "message"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newService(t)

			_, err := svc.CreateTicket(context.Background(), tt.req)
			require.Error(t, err)
			require.True(t, failure.IsValidation(err))

			var v *failure.Validation
			require.ErrorAs(t, err, &v)

			for _, field := range tt.wantFields {
				assert.NotEmpty(t, v.Field(field))
			}
		})
	}
}

func TestSupportService_CreateTicketInvalidatesList(t *testing.T) {
	svc, mockRest := newService(t)

	mockRest.EXPECT().
		Get(gomock.Any(), "/user/support/tickets", gomock.Nil(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ any, out *dto.GetTicketsResponse) error {
			out.Tickets = []model.Ticket{{ID: "ticket-1"}}

			return nil
		}).
		Times(2)

	mockRest.EXPECT().
		Post(gomock.Any(), "/user/support/tickets", gomock.Any(), gomock.Any()).
		Return(nil)

	ctx := context.Background()

	_, err := svc.ListTickets(ctx)
	require.NoError(t, err)

	_, err = svc.CreateTicket(ctx, dto.CreateTicketRequest{
		Subject: "Invoice missing",
		Message: "The March booking has no invoice attached to it.",
	})
	require.NoError(t, err)

	// The list cache was invalidated by the mutation.
	_, err = svc.ListTickets(ctx)
	require.NoError(t, err)
}
