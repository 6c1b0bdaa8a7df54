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
	"crewlink/internal/domains/portfolio/model"
	"crewlink/internal/domains/portfolio/model/dto"
	"crewlink/internal/domains/portfolio/service"
	"crewlink/internal/query"
	"crewlink/shared/constant"
)

func newService(t *testing.T) (service.Portfolio, *restMocks.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRest := restMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	cache := query.New(cfg, mocks.NewOtel())

	return service.New(mockRest, cfg, cache, mocks.NewOtel()), mockRest
}

func TestPortfolioService_Get(t *testing.T) {
	svc, mockRest := newService(t)

	mockRest.EXPECT().
		Get(gomock.Any(), "/user/portfolio/studio/studio-1", gomock.Nil(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ any, out *dto.GetPortfolioResponse) error {
			out.Items = []model.Item{{ID: "item-1", MediaType: model.MediaTypePhoto}}

			return nil
		})

	res, err := svc.Get(context.Background(), constant.EntityTypeStudio, "studio-1")
	require.NoError(t, err)
	assert.Len(t, res.Items, 1)
}

func TestPortfolioService_GetInvalidEntityType(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Get(context.Background(), "agency", "studio-1")
	assert.Error(t, err, "unknown entity types must fail before any network call")
}

func TestPortfolioService_GetMissingEntityID(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Get(context.Background(), constant.EntityTypeFreelancer, "")
	assert.Error(t, err)
}
