package create_hair_option

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-StudioBooking/internal/service/catalog"
	"github.com/m04kA/SMC-StudioBooking/internal/service/catalog/models"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
)

type mockService struct{ mock.Mock }

func (m *mockService) CreateHairOption(ctx context.Context, req *models.CreateHairOptionRequest) (*models.HairOptionResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.HairOptionResponse)
	return resp, args.Error(1)
}

func TestHandler_Handle(t *testing.T) {
	serviceID := uuid.New()
	body := `{"serviceId":"` + serviceID.String() + `","name":"Bum length","priceDelta":150}`

	t.Run("created", func(t *testing.T) {
		svc := &mockService{}
		svc.On("CreateHairOption", mock.Anything, mock.MatchedBy(func(r *models.CreateHairOptionRequest) bool {
			return r.ServiceID == serviceID && r.PriceDelta != nil && *r.PriceDelta == 150
		})).Return(&models.HairOptionResponse{ID: uuid.New(), ServiceID: serviceID, Name: "Bum length", PriceDelta: 150}, nil)

		rec := httptest.NewRecorder()
		NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/admin/hair-options", strings.NewReader(body)))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("unknown service", func(t *testing.T) {
		svc := &mockService{}
		svc.On("CreateHairOption", mock.Anything, mock.Anything).Return(nil, catalog.ErrServiceNotFound)

		rec := httptest.NewRecorder()
		NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/admin/hair-options", strings.NewReader(body)))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid", func(t *testing.T) {
		svc := &mockService{}
		svc.On("CreateHairOption", mock.Anything, mock.Anything).Return(nil, catalog.ErrInvalidInput)

		rec := httptest.NewRecorder()
		NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/admin/hair-options", strings.NewReader(`{"name":""}`)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
