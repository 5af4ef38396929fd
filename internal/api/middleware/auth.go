package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
)

const (
	msgMissingToken = "missing bearer token"
	msgInvalidToken = "invalid or expired token"
	msgNotAdmin     = "this account has no access to the admin console"
)

var errUnexpectedSigningMethod = errors.New("unexpected signing method")

// AdminClaims claims токена, выданного провайдером авторизации
type AdminClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

type adminKey struct{}

// AdminFromContext возвращает claims администратора, положенные AdminAuth
func AdminFromContext(ctx context.Context) (*AdminClaims, bool) {
	claims, ok := ctx.Value(adminKey{}).(*AdminClaims)
	return claims, ok
}

// AdminAuth проверяет Bearer токены админки
// Токен подписан HS256 общим секретом и должен нести роль requiredRole (пустая - роль не проверяется);
// если список email не пуст, доступ есть только у перечисленных адресов
type AdminAuth struct {
	secret       []byte
	requiredRole string
	allowed      map[string]struct{}
	logger       Logger
}

func NewAdminAuth(secret, requiredRole string, allowedEmails []string, logger Logger) *AdminAuth {
	allowed := make(map[string]struct{}, len(allowedEmails))
	for _, email := range allowedEmails {
		email = strings.ToLower(strings.TrimSpace(email))
		if email != "" {
			allowed[email] = struct{}{}
		}
	}

	return &AdminAuth{
		secret:       []byte(secret),
		requiredRole: strings.TrimSpace(requiredRole),
		allowed:      allowed,
		logger:       logger,
	}
}

// Middleware возвращает mux middleware для защищённых маршрутов
func (a *AdminAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			a.logger.Warn("%s %s - Missing bearer token", r.Method, r.URL.Path)
			handlers.RespondUnauthorized(w, msgMissingToken)
			return
		}

		claims, err := a.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			a.logger.Warn("%s %s - Invalid token: %v", r.Method, r.URL.Path, err)
			handlers.RespondUnauthorized(w, msgInvalidToken)
			return
		}

		if a.requiredRole != "" && claims.Role != a.requiredRole {
			a.logger.Warn("%s %s - Admin access denied: role=%q, email=%s", r.Method, r.URL.Path, claims.Role, claims.Email)
			handlers.RespondForbidden(w, msgNotAdmin)
			return
		}

		if !a.isAllowed(claims.Email) {
			a.logger.Warn("%s %s - Admin access denied: email=%s", r.Method, r.URL.Path, claims.Email)
			handlers.RespondForbidden(w, msgNotAdmin)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), adminKey{}, claims)))
	})
}

// Parse проверяет подпись и срок действия токена
func (a *AdminAuth) Parse(token string) (*AdminClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &AdminClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", errUnexpectedSigningMethod, t.Header["alg"])
		}
		return a.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*AdminClaims)
	if !ok || !parsed.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

func (a *AdminAuth) isAllowed(email string) bool {
	if len(a.allowed) == 0 {
		return true
	}
	_, ok := a.allowed[strings.ToLower(strings.TrimSpace(email))]
	return ok
}
