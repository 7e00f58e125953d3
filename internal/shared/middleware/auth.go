package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"fintrack/internal/domain/user"
	"fintrack/internal/shared/auth"
)

type ContextKey string

// UserKey holds the resolved *user.User for downstream handlers.
const UserKey ContextKey = "user"

// UserFrom returns the authenticated user attached by the Auth middleware.
func UserFrom(ctx context.Context) (*user.User, bool) {
	u, ok := ctx.Value(UserKey).(*user.User)
	return u, ok
}

// Auth verifies the bearer token on every request and resolves the user it
// embeds. A token whose user has since been deleted is rejected the same way
// as a missing token.
func Auth(jwt *auth.JWT, users user.Repository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				unauthorized(w, "Access denied. No token provided.")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				unauthorized(w, "Invalid authorization header format.")
				return
			}

			claims, err := jwt.Validate(parts[1])
			if err != nil {
				if errors.Is(err, auth.ErrTokenExpired) {
					unauthorized(w, "Token expired. Please login again.")
				} else {
					unauthorized(w, "Invalid token.")
				}
				return
			}

			u, err := users.GetByID(r.Context(), claims.UserID)
			if err != nil {
				unauthorized(w, "User belonging to this token no longer exists.")
				return
			}

			ctx := context.WithValue(r.Context(), UserKey, u)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"message": message,
	})
}
