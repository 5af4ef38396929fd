package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	createBooking "github.com/m04kA/SMC-StudioBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
)

type mockUseCase struct{ mock.Mock }

func (m *mockUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*createBooking.Response)
	return resp, args.Error(1)
}

func body(serviceID uuid.UUID, start string) string {
	return fmt.Sprintf(`{
		"customerName": "Thandi",
		"email": "thandi@example.com",
		"phone": "0821234567",
		"serviceId": %q,
		"startTime": %q,
		"paymentChoice": "DEPOSIT"
	}`, serviceID, start)
}

func TestHandler_Handle(t *testing.T) {
	serviceID := uuid.New()
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.FixedZone("SAST", 2*60*60))

	t.Run("created", func(t *testing.T) {
		id := uuid.New()
		uc := &mockUseCase{}
		uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *createBooking.Request) bool {
			return r.ServiceID == serviceID && r.StartTime.Equal(start) && r.PaymentChoice == "DEPOSIT"
		})).Return(&createBooking.Response{
			ID:            id,
			Reference:     "SHEDIDTHAT-ABCD1234",
			Status:        "requested",
			ServiceName:   "Knotless Braids",
			StartTime:     start,
			EndTime:       start.Add(4 * time.Hour),
			PaymentChoice: "DEPOSIT",
			AmountDue:     257,
			CreatedAt:     start.Add(-24 * time.Hour),
		}, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body(serviceID, start.Format(time.RFC3339))))
		NewHandler(uc, logger.NewNop()).Handle(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp BookingResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, id, resp.ID)
		assert.Equal(t, "SHEDIDTHAT-ABCD1234", resp.Reference)
		assert.Equal(t, float64(257), resp.AmountDue)
		assert.Equal(t, "2026-03-10T14:00:00+02:00", resp.EndTime)
	})

	t.Run("bad body", func(t *testing.T) {
		uc := &mockUseCase{}
		rec := httptest.NewRecorder()
		NewHandler(uc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(`{`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	})

	t.Run("bad start time", func(t *testing.T) {
		uc := &mockUseCase{}
		rec := httptest.NewRecorder()
		NewHandler(uc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body(serviceID, "10:00"))))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid input", fmt.Errorf("%w: email is required", createBooking.ErrInvalidInput), http.StatusBadRequest},
		{"service not found", createBooking.ErrServiceNotFound, http.StatusNotFound},
		{"hair option mismatch", createBooking.ErrHairOptionNotFound, http.StatusBadRequest},
		{"in the past", createBooking.ErrStartInPast, http.StatusBadRequest},
		{"closed", createBooking.ErrStudioClosed, http.StatusBadRequest},
		{"outside hours", createBooking.ErrOutsideBusinessHours, http.StatusBadRequest},
		{"conflict", createBooking.ErrSlotNotAvailable, http.StatusConflict},
		{"internal", createBooking.ErrInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := httptest.NewRecorder()
			NewHandler(uc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body(serviceID, start.Format(time.RFC3339)))))

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}
