package update_hair_option

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

func (m *mockService) UpdateHairOption(ctx context.Context, id uuid.UUID, req *models.UpdateHairOptionRequest) (*models.HairOptionResponse, error) {
	args := m.Called(ctx, id, req)
	resp, _ := args.Get(0).(*models.HairOptionResponse)
	return resp, args.Error(1)
}

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name   string
		resp   *models.HairOptionResponse
		err    error
		status int
	}{
		{"updated", &models.HairOptionResponse{Name: "Knee length"}, nil, http.StatusOK},
		{"not found", nil, catalog.ErrHairOptionNotFound, http.StatusNotFound},
		{"invalid", nil, catalog.ErrInvalidInput, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := uuid.New()
			svc := &mockService{}
			svc.On("UpdateHairOption", mock.Anything, id, mock.Anything).Return(tt.resp, tt.err)

			req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/hair-options/"+id.String(), strings.NewReader(`{"name":"Knee length"}`))
			req = mux.SetURLVars(req, map[string]string{"hairOptionId": id.String()})
			rec := httptest.NewRecorder()
			NewHandler(svc, logger.NewNop()).Handle(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
