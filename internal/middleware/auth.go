package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"users-backend/internal/token"
	"users-backend/utils/response"
)

type contextKey string

const claimsContextKey contextKey = "claims"

type AuthMiddleware struct {
	tokens *token.Manager
	logger *slog.Logger
}

func NewAuthMiddleware(tokens *token.Manager, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, logger: logger}
}

// RequireAuth rejects the request with 403 unless the Authorization header
// carries a valid, unexpired token. Quote characters are stripped from the
// header before verification. Verified claims end up in the request context,
// though handlers resolve the target user from the path id.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			m.logger.Error("authorization header missing")
			response.Error(w, http.StatusForbidden, "Authorization token required")
			return
		}

		tokenString := stripQuotes(header)

		claims, err := m.tokens.Verify(tokenString)
		if err != nil {
			m.logger.Error("token verification failed", "error", err)
			response.Error(w, http.StatusForbidden, err.Error())
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func stripQuotes(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\'' || r == '"' {
			return -1
		}
		return r
	}, s)
}

// ClaimsFromContext returns the verified claims stored by RequireAuth, or nil
// outside an authenticated request.
func ClaimsFromContext(ctx context.Context) *token.Claims {
	claims, ok := ctx.Value(claimsContextKey).(*token.Claims)
	if !ok {
		return nil
	}
	return claims
}
