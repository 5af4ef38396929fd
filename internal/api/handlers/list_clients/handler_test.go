package list_clients

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-StudioBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
)

type mockService struct{ mock.Mock }

func (m *mockService) ListClients(ctx context.Context) (*models.ClientListResponse, error) {
	args := m.Called(ctx)
	resp, _ := args.Get(0).(*models.ClientListResponse)
	return resp, args.Error(1)
}

func TestHandler_Handle(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		svc := &mockService{}
		svc.On("ListClients", mock.Anything).Return(&models.ClientListResponse{
			Clients: []*models.ClientResponse{},
		}, nil)

		rec := httptest.NewRecorder()
		NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/clients", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"clients":[],"stats":{"totalClients":0,"totalBookings":0,"confirmedBookings":0,"pendingBookings":0,"totalRevenue":0}}`, rec.Body.String())
	})

	t.Run("internal", func(t *testing.T) {
		svc := &mockService{}
		svc.On("ListClients", mock.Anything).Return(nil, errors.New("db down"))

		rec := httptest.NewRecorder()
		NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/clients", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
