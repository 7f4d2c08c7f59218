package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/sssbpuc/campusd/internal/service"
)

type contextKeyAuth string

// AuthPrincipalKey is the context key for the authenticated admin.
const AuthPrincipalKey contextKeyAuth = "auth_principal"

// Principal is the admin identity attached to authenticated requests.
type Principal struct {
	AdminID string
	Email   string
}

// Authenticate validates the Authorization Bearer token on every request and
// attaches the admin Principal to the context. Requests without a valid
// token get a 401 JSON error.
func Authenticate(authSvc *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				writeAuthError(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			p, err := authSvc.ValidateJWT(r.Context(), token)
			if err != nil {
				writeAuthError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), AuthPrincipalKey, &Principal{
				AdminID: p.AdminID,
				Email:   p.Email,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetPrincipal extracts the authenticated admin from the context, or nil
// for unauthenticated requests.
func GetPrincipal(ctx context.Context) *Principal {
	if p, ok := ctx.Value(AuthPrincipalKey).(*Principal); ok {
		return p
	}
	return nil
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Constructed by hand to avoid an import cycle with the handler package.
	w.Write([]byte(`{"error":{"code":` + strconv.Itoa(status) + `,"message":"` + message + `"}}`))
}
