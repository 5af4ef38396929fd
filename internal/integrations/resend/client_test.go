package resend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
)

func TestClient_Send(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var got Email
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/emails", r.URL.Path)
			assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"49a3999c-0ce1-4ea6-ab68-afcd6dc2e794"}`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "re_test", "studio@example.com", time.Second, logger.NewNop())
		id, err := c.Send(context.Background(), "thandi@example.com", "Payment Instructions", "<p>hi</p>")
		require.NoError(t, err)

		assert.Equal(t, "49a3999c-0ce1-4ea6-ab68-afcd6dc2e794", id)
		assert.Equal(t, "studio@example.com", got.From)
		assert.Equal(t, []string{"thandi@example.com"}, got.To)
		assert.Equal(t, "<p>hi</p>", got.HTML)
	})

	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "bad key", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "validation error", status: http.StatusUnprocessableEntity, body: `{"statusCode":422,"name":"validation_error","message":"Invalid to field"}`, wantErr: ErrInvalidEmail},
		{name: "rate limited", status: http.StatusTooManyRequests, wantErr: ErrRateLimited},
		{name: "server error", status: http.StatusInternalServerError, body: "boom", wantErr: ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, "re_test", "studio@example.com", time.Second, logger.NewNop())
			_, err := c.Send(context.Background(), "thandi@example.com", "s", "b")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("unreachable", func(t *testing.T) {
		c := NewClient("http://127.0.0.1:1", "re_test", "studio@example.com", 200*time.Millisecond, logger.NewNop())
		_, err := c.Send(context.Background(), "thandi@example.com", "s", "b")
		assert.ErrorIs(t, err, ErrInternal)
	})
}
