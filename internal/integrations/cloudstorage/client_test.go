package cloudstorage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cld, err := cloudinary.NewFromParams("demo", "key", "secret")
	require.NoError(t, err)
	cld.Config.API.UploadPrefix = srv.URL

	c := NewClientWithCloudinary(cld, "payment-proofs", logger.NewNop())
	c.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return c
}

func TestClient_UploadProof(t *testing.T) {
	t.Run("returns secure url", func(t *testing.T) {
		var path string
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			path = r.URL.Path
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"public_id":"payment-proofs/abc-1700000000000.pdf","secure_url":"https://res.cloudinary.com/demo/raw/upload/payment-proofs/abc.pdf"}`))
		})

		url, err := c.UploadProof(context.Background(), "abc", "POP.PDF", strings.NewReader("%PDF-1.4"))
		require.NoError(t, err)
		assert.Equal(t, "https://res.cloudinary.com/demo/raw/upload/payment-proofs/abc.pdf", url)
		assert.Contains(t, path, "/demo/auto/upload")
	})

	t.Run("api error", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"message":"Invalid file"}}`))
		})

		_, err := c.UploadProof(context.Background(), "abc", "pop.png", strings.NewReader("png"))
		assert.ErrorIs(t, err, ErrUploadFailed)
	})
}

func TestNewClient_RequiresCredentials(t *testing.T) {
	_, err := NewClient("", "key", "secret", "payment-proofs", logger.NewNop())
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
