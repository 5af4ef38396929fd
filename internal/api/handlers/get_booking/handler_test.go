package get_booking

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-StudioBooking/internal/service/bookings"
	"github.com/m04kA/SMC-StudioBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
)

type mockService struct{ mock.Mock }

func (m *mockService) GetByID(ctx context.Context, id uuid.UUID) (*models.BookingResponse, error) {
	args := m.Called(ctx, id)
	resp, _ := args.Get(0).(*models.BookingResponse)
	return resp, args.Error(1)
}

func serve(h *Handler, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/"+id, nil)
	req = mux.SetURLVars(req, map[string]string{"bookingId": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		svc := &mockService{}
		svc.On("GetByID", mock.Anything, id).Return(&models.BookingResponse{ID: id, Status: "pop_uploaded", Reference: "SHEDIDTHAT-0A1B2C3D"}, nil)

		rec := serve(NewHandler(svc, logger.NewNop()), id.String())
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"pop_uploaded"`)
	})

	t.Run("invalid id", func(t *testing.T) {
		rec := serve(NewHandler(&mockService{}, logger.NewNop()), "abc")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &mockService{}
		svc.On("GetByID", mock.Anything, id).Return(nil, bookings.ErrBookingNotFound)

		rec := serve(NewHandler(svc, logger.NewNop()), id.String())
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("internal", func(t *testing.T) {
		svc := &mockService{}
		svc.On("GetByID", mock.Anything, id).Return(nil, errors.New("db down"))

		rec := serve(NewHandler(svc, logger.NewNop()), id.String())
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
