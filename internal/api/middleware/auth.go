package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/quickcourt/QC-BookingService/internal/api/handlers"
	"github.com/quickcourt/QC-BookingService/internal/domain"
	"github.com/quickcourt/QC-BookingService/pkg/authtoken"
)

type authCtxKey int

const (
	userIDKey authCtxKey = iota
	userRoleKey
)

const (
	msgMissingToken  = "authorization token is required"
	msgInvalidToken  = "invalid or expired token"
	msgManagerOnly   = "manager role is required"
	authHeaderPrefix = "Bearer "
)

// TokenParser проверяет токен доступа
type TokenParser interface {
	Parse(token string) (*authtoken.Claims, error)
}

// Auth проверяет Bearer токен и кладёт userID и роль в контекст запроса
func Auth(parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, authHeaderPrefix) {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			claims, err := parser.Parse(strings.TrimPrefix(header, authHeaderPrefix))
			if err != nil {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			ctx = context.WithValue(ctx, userRoleKey, domain.UserRole(claims.Role))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireManager пропускает только пользователей с ролью manager.
// Должен стоять после Auth.
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := RoleFromContext(r.Context())
		if !ok || !role.IsManager() {
			handlers.RespondForbidden(w, msgManagerOnly)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithUser кладёт идентичность пользователя в контекст так же,
// как это делает Auth middleware
func WithUser(ctx context.Context, userID int64, role domain.UserRole) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, userRoleKey, role)
}

// UserIDFromContext достаёт ID пользователя, положенный Auth middleware
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// RoleFromContext достаёт роль пользователя, положенную Auth middleware
func RoleFromContext(ctx context.Context) (domain.UserRole, bool) {
	role, ok := ctx.Value(userRoleKey).(domain.UserRole)
	return role, ok
}
