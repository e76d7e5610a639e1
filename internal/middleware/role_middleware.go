package middleware

import (
	"errors"
	"net/http"

	"github.com/csmahmud99/krafti-summer-camp-school-server/internal/apperr"
	"github.com/csmahmud99/krafti-summer-camp-school-server/internal/models"
	"github.com/csmahmud99/krafti-summer-camp-school-server/internal/repository"
	"github.com/csmahmud99/krafti-summer-camp-school-server/internal/response"
)

// RequireRole looks up the caller's stored profile and denies the request
// unless its role matches. Must run after RequireAuth. A token issued
// before a role change still reflects only the stored role checked here.
func RequireRole(users repository.UserRepository, role models.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, ok := EmailFromContext(r.Context())
			if !ok {
				response.Error(w, apperr.ErrUnauthorized)
				return
			}

			user, err := users.FindByEmail(r.Context(), email)
			if errors.Is(err, repository.ErrNotFound) {
				response.Error(w, apperr.ErrForbidden)
				return
			}
			if err != nil {
				response.Error(w, apperr.Wrap(err, apperr.ErrUpstream.Code, apperr.ErrUpstream.Status, "failed to look up user role"))
				return
			}
			if user.Role != role {
				response.Error(w, apperr.ErrForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
