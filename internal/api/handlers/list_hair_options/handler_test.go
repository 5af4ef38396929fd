package list_hair_options

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-StudioBooking/internal/service/catalog/models"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
)

type mockService struct{ mock.Mock }

func (m *mockService) ListHairOptions(ctx context.Context, serviceID *uuid.UUID) (*models.HairOptionListResponse, error) {
	args := m.Called(ctx, serviceID)
	resp, _ := args.Get(0).(*models.HairOptionListResponse)
	return resp, args.Error(1)
}

func TestHandler_Handle(t *testing.T) {
	serviceID := uuid.New()

	t.Run("filtered by service", func(t *testing.T) {
		svc := &mockService{}
		svc.On("ListHairOptions", mock.Anything, &serviceID).Return(&models.HairOptionListResponse{
			HairOptions: []*models.HairOptionResponse{{ID: uuid.New(), ServiceID: serviceID, Name: "Waist length", PriceDelta: 100}},
		}, nil)

		rec := httptest.NewRecorder()
		NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/hair-options?serviceId="+serviceID.String(), nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"priceDelta":100`)
	})

	t.Run("all", func(t *testing.T) {
		svc := &mockService{}
		svc.On("ListHairOptions", mock.Anything, (*uuid.UUID)(nil)).Return(&models.HairOptionListResponse{HairOptions: []*models.HairOptionResponse{}}, nil)

		rec := httptest.NewRecorder()
		NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/hair-options", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"hairOptions":[]}`, rec.Body.String())
	})

	t.Run("invalid service id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		NewHandler(&mockService{}, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/hair-options?serviceId=3", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
