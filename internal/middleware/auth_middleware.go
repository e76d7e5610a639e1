package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/csmahmud99/krafti-summer-camp-school-server/internal/apperr"
	"github.com/csmahmud99/krafti-summer-camp-school-server/internal/auth"
	"github.com/csmahmud99/krafti-summer-camp-school-server/internal/response"
)

type contextKey string

const emailContextKey contextKey = "userEmail"

// RequireAuth verifies the bearer token and attaches the claim email to
// the request context. Every failure writes exactly one response and halts.
func RequireAuth(tokens *auth.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				response.Error(w, apperr.ErrUnauthorized)
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				response.Error(w, apperr.ErrUnauthorized)
				return
			}

			claims, err := tokens.ValidateJWT(parts[1])
			if err != nil {
				response.Error(w, apperr.ErrUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), emailContextKey, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// EmailFromContext returns the authenticated caller's email, if any.
func EmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(emailContextKey).(string)
	return email, ok
}

// WithEmail attaches an email to the context; test helper for handlers
// exercised without the full middleware chain.
func WithEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, emailContextKey, email)
}
