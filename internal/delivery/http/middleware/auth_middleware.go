package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"medical-appointment-assistant/internal/usecase"
	"medical-appointment-assistant/pkg/jwt"
	"medical-appointment-assistant/pkg/response"
)

type contextKey string

const (
	UserIDKey    contextKey = "user_id"
	UserEmailKey contextKey = "user_email"
	TokenIDKey   contextKey = "token_id"
)

// TokenAuthenticator validates a bearer token and checks it is still active
type TokenAuthenticator interface {
	Authenticate(ctx context.Context, accessToken string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	authenticator TokenAuthenticator
}

func NewAuthMiddleware(authenticator TokenAuthenticator) *AuthMiddleware {
	return &AuthMiddleware{
		authenticator: authenticator,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.authenticator.Authenticate(r.Context(), parts[1])
		switch {
		case errors.Is(err, usecase.ErrInvalidToken):
			response.Unauthorized(w, "Invalid or expired token")
			return
		case errors.Is(err, usecase.ErrTokenRevoked):
			response.Unauthorized(w, "Token has been revoked")
			return
		case err != nil:
			response.InternalServerError(w, "Failed to validate token")
			return
		}

		// Add user info to context
		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, UserEmailKey, claims.Email)
		ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserIDFromContext extracts user ID from context
func GetUserIDFromContext(ctx context.Context) (uint, bool) {
	userID, ok := ctx.Value(UserIDKey).(uint)
	return userID, ok
}

// GetUserEmailFromContext extracts user email from context
func GetUserEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(UserEmailKey).(string)
	return email, ok
}

// GetTokenIDFromContext extracts token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}
