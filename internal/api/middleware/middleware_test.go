package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
)

const testSecret = "studio-secret"

func signToken(t *testing.T, secret string, claims AdminClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func validClaims(email string) AdminClaims {
	return AdminClaims{
		Email: email,
		Role:  "authenticated",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestAdminAuth(t *testing.T) {
	auth := NewAdminAuth(testSecret, "authenticated", []string{" Owner@Studio.com "}, logger.NewNop())
	protected := auth.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := AdminFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, "owner@studio.com", claims.Email)
		w.WriteHeader(http.StatusOK)
	}))

	expired := validClaims("owner@studio.com")
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	noExp := validClaims("owner@studio.com")
	noExp.ExpiresAt = nil

	anon := validClaims("owner@studio.com")
	anon.Role = "anon"

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"valid", "Bearer " + signToken(t, testSecret, validClaims("owner@studio.com")), http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"wrong secret", "Bearer " + signToken(t, "other", validClaims("owner@studio.com")), http.StatusUnauthorized},
		{"expired", "Bearer " + signToken(t, testSecret, expired), http.StatusUnauthorized},
		{"no expiry", "Bearer " + signToken(t, testSecret, noExp), http.StatusUnauthorized},
		{"public anon token", "Bearer " + signToken(t, testSecret, anon), http.StatusForbidden},
		{"not in allow list", "Bearer " + signToken(t, testSecret, validClaims("guest@studio.com")), http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestAdminAuth_EmptyAllowListAcceptsAnyValidToken(t *testing.T) {
	auth := NewAdminAuth(testSecret, "authenticated", nil, logger.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/clients", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, validClaims("anyone@studio.com")))
	rec := httptest.NewRecorder()
	auth.Middleware(http.HandlerFunc(okHandler)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminAuth_RoleCheckDisabled(t *testing.T) {
	auth := NewAdminAuth(testSecret, "", nil, logger.NewNop())

	claims := validClaims("owner@studio.com")
	claims.Role = ""
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/clients", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, claims))
	rec := httptest.NewRecorder()
	auth.Middleware(http.HandlerFunc(okHandler)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminAuth_RejectsNoneAlgorithm(t *testing.T) {
	auth := NewAdminAuth(testSecret, "authenticated", nil, logger.NewNop())

	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, validClaims("x@studio.com")).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = auth.Parse(token)
	assert.Error(t, err)
}

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(60, 2, nil, logger.NewNop())
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }
	h := limiter.Middleware(http.HandlerFunc(okHandler))

	call := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", nil)
		req.RemoteAddr = ip + ":5000"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, call("10.0.0.1"))
	assert.Equal(t, http.StatusOK, call("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1"))
	assert.Equal(t, http.StatusOK, call("10.0.0.2"))

	// через секунду восстанавливается один токен
	now = now.Add(time.Second)
	assert.Equal(t, http.StatusOK, call("10.0.0.1"))

	now = now.Add(idleLimiterTTL + time.Second)
	assert.Equal(t, 2, limiter.Cleanup())
}

func TestRateLimiter_IgnoresForwardedHeadersFromUntrustedPeer(t *testing.T) {
	limiter := NewRateLimiter(1, 1, nil, logger.NewNop())
	h := limiter.Middleware(http.HandlerFunc(okHandler))

	limited := 0
	for i := 0; i < 20; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", nil)
		req.RemoteAddr = "198.51.100.10:40000"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("203.0.113.%d", i))
		req.Header.Set("X-Real-IP", fmt.Sprintf("192.0.2.%d", i))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code == http.StatusTooManyRequests {
			limited++
		}
	}

	assert.Equal(t, 19, limited)
	assert.Len(t, limiter.visitors, 1)
}

func TestParseTrustedProxies(t *testing.T) {
	prefixes, err := ParseTrustedProxies([]string{"10.0.0.0/8", " 127.0.0.1 ", "", "::1"})
	require.NoError(t, err)
	require.Len(t, prefixes, 3)
	assert.Equal(t, "10.0.0.0/8", prefixes[0].String())
	assert.Equal(t, "127.0.0.1/32", prefixes[1].String())
	assert.Equal(t, "::1/128", prefixes[2].String())

	_, err = ParseTrustedProxies([]string{"proxy.local"})
	assert.Error(t, err)
	_, err = ParseTrustedProxies([]string{"10.0.0.0/99"})
	assert.Error(t, err)
}

func TestClientIP(t *testing.T) {
	trusted, err := ParseTrustedProxies([]string{"10.0.0.0/8"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		trusted bool
		headers map[string]string
		remote  string
		want    string
	}{
		{"untrusted peer ignores forwarded for", false, map[string]string{"X-Forwarded-For": "203.0.113.7"}, "198.51.100.1:1234", "198.51.100.1"},
		{"untrusted peer ignores real ip", false, map[string]string{"X-Real-IP": "203.0.113.7"}, "198.51.100.1:1234", "198.51.100.1"},
		{"no proxies configured", false, map[string]string{"X-Forwarded-For": "203.0.113.7"}, "10.0.0.9:1234", "10.0.0.9"},
		{"trusted proxy forwarded for", true, map[string]string{"X-Forwarded-For": "203.0.113.7"}, "10.0.0.9:1234", "203.0.113.7"},
		{"client-supplied prefix skipped", true, map[string]string{"X-Forwarded-For": "1.2.3.4, 203.0.113.7, 10.0.0.5"}, "10.0.0.9:1234", "203.0.113.7"},
		{"trusted proxy real ip", true, map[string]string{"X-Real-IP": " 198.51.100.2 "}, "10.0.0.9:1234", "198.51.100.2"},
		{"trusted proxy without headers", true, nil, "10.0.0.9:1234", "10.0.0.9"},
		{"remote without port", false, nil, "192.0.2.1", "192.0.2.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			var proxies []netip.Prefix
			if tt.trusted {
				proxies = trusted
			}
			assert.Equal(t, tt.want, ClientIP(req, proxies))
		})
	}
}

type observation struct {
	method, route string
	status        int
}

type fakeObserver struct{ got []observation }

func (f *fakeObserver) ObserveHTTP(method, route string, status int, _ time.Duration) {
	f.got = append(f.got, observation{method, route, status})
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	obs := &fakeObserver{}
	r := mux.NewRouter()
	r.Use(Metrics(obs))
	r.HandleFunc("/api/v1/bookings/{bookingId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/bookings/abc", nil))

	require.Len(t, obs.got, 1)
	assert.Equal(t, observation{http.MethodGet, "/api/v1/bookings/{bookingId}", http.StatusNotFound}, obs.got[0])
}
