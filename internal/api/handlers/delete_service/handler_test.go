package delete_service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-StudioBooking/internal/service/catalog"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
)

type mockService struct{ mock.Mock }

func (m *mockService) DeleteService(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"deleted", nil, http.StatusNoContent},
		{"not found", catalog.ErrServiceNotFound, http.StatusNotFound},
		{"in use", catalog.ErrServiceInUse, http.StatusConflict},
		{"internal", catalog.ErrInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := uuid.New()
			svc := &mockService{}
			svc.On("DeleteService", mock.Anything, id).Return(tt.err)

			req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/services/"+id.String(), nil)
			req = mux.SetURLVars(req, map[string]string{"serviceId": id.String()})
			rec := httptest.NewRecorder()
			NewHandler(svc, logger.NewNop()).Handle(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
