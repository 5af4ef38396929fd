package update_service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-StudioBooking/internal/service/catalog"
	"github.com/m04kA/SMC-StudioBooking/internal/service/catalog/models"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
)

type mockService struct{ mock.Mock }

func (m *mockService) UpdateService(ctx context.Context, id uuid.UUID, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	args := m.Called(ctx, id, req)
	resp, _ := args.Get(0).(*models.ServiceResponse)
	return resp, args.Error(1)
}

func serve(h *Handler, id, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/services/"+id, strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"serviceId": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	id := uuid.New()

	t.Run("updated", func(t *testing.T) {
		svc := &mockService{}
		svc.On("UpdateService", mock.Anything, id, mock.MatchedBy(func(r *models.UpdateServiceRequest) bool {
			return r.FullPrice != nil && *r.FullPrice == 900 && r.Name == nil
		})).Return(&models.ServiceResponse{ID: id, FullPrice: 900}, nil)

		rec := serve(NewHandler(svc, logger.NewNop()), id.String(), `{"fullPrice":900}`)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", catalog.ErrServiceNotFound, http.StatusNotFound},
		{"invalid", catalog.ErrInvalidInput, http.StatusBadRequest},
		{"internal", catalog.ErrInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("UpdateService", mock.Anything, id, mock.Anything).Return(nil, tt.err)
			assert.Equal(t, tt.status, serve(NewHandler(svc, logger.NewNop()), id.String(), `{"name":"X"}`).Code)
		})
	}

	t.Run("invalid id", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, serve(NewHandler(&mockService{}, logger.NewNop()), "x", `{}`).Code)
	})
}
