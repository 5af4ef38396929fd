package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondConflict(rec, "slot taken")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"slot taken"}`, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ann"}`))
	require.NoError(t, DecodeJSON(req, &dst))
	assert.Equal(t, "Ann", dst.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ann","extra":1}`))
	assert.Error(t, DecodeJSON(req, &dst))
}

func TestPathAndQueryUUID(t *testing.T) {
	id := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/x?serviceId="+id.String(), nil)
	req = mux.SetURLVars(req, map[string]string{"bookingId": id.String()})

	got, err := PathUUID(req, "bookingId")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	q, err := QueryUUID(req, "serviceId")
	require.NoError(t, err)
	assert.Equal(t, id, *q)

	q, err = QueryUUID(req, "missing")
	require.NoError(t, err)
	assert.Nil(t, q)

	req = mux.SetURLVars(req, map[string]string{"bookingId": "42"})
	_, err = PathUUID(req, "bookingId")
	assert.Error(t, err)
}
