package cancel_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	cancelBooking "github.com/m04kA/SMC-StudioBooking/internal/usecase/cancel_booking"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
)

type mockUseCase struct{ mock.Mock }

func (m *mockUseCase) Execute(ctx context.Context, req *cancelBooking.Request) (*cancelBooking.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*cancelBooking.Response)
	return resp, args.Error(1)
}

func serve(h *Handler, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/bookings/"+id+"/cancel", nil)
	req = mux.SetURLVars(req, map[string]string{"bookingId": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	id := uuid.New()

	t.Run("cancelled", func(t *testing.T) {
		uc := &mockUseCase{}
		uc.On("Execute", mock.Anything, &cancelBooking.Request{BookingID: id}).
			Return(&cancelBooking.Response{BookingID: id, Status: "cancelled", ReleasedSlot: true}, nil)

		rec := serve(NewHandler(uc, logger.NewNop()), id.String())
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"bookingId":"`+id.String()+`","status":"cancelled","releasedSlot":true}`, rec.Body.String())
	})

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", cancelBooking.ErrBookingNotFound, http.StatusNotFound},
		{"cannot cancel", cancelBooking.ErrCannotCancel, http.StatusConflict},
		{"internal", cancelBooking.ErrInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			assert.Equal(t, tt.status, serve(NewHandler(uc, logger.NewNop()), id.String()).Code)
		})
	}

	t.Run("invalid id", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, serve(NewHandler(&mockUseCase{}, logger.NewNop()), "12").Code)
	})
}
