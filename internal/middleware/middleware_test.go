package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csmahmud99/krafti-summer-camp-school-server/internal/auth"
	"github.com/csmahmud99/krafti-summer-camp-school-server/internal/models"
	"github.com/csmahmud99/krafti-summer-camp-school-server/internal/repository/memory"
)

func okHandler(captured *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if captured != nil {
			if email, ok := EmailFromContext(r.Context()); ok {
				*captured = email
			}
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuthMissingHeader(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")
	handler := RequireAuth(tokens)(okHandler(nil))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthBadScheme(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")
	handler := RequireAuth(tokens)(okHandler(nil))

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Basic abc")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthInvalidToken(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")
	handler := RequireAuth(tokens)(okHandler(nil))

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthAttachesEmail(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")
	token, err := tokens.GenerateJWT("a@x.com")
	require.NoError(t, err)

	var captured string
	handler := RequireAuth(tokens)(okHandler(&captured))

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "a@x.com", captured)
}

func TestRequireRoleForbiddenWithoutStoredUser(t *testing.T) {
	users := memory.NewUserStore()
	handler := RequireRole(users, models.RoleAdmin)(okHandler(nil))

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req = req.WithContext(WithEmail(context.Background(), "ghost@x.com"))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRoleForbiddenOnRoleMismatch(t *testing.T) {
	users := memory.NewUserStore()
	_, err := users.Insert(context.Background(), &models.User{Email: "a@x.com", Role: models.RoleInstructor})
	require.NoError(t, err)

	handler := RequireRole(users, models.RoleAdmin)(okHandler(nil))

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req = req.WithContext(WithEmail(context.Background(), "a@x.com"))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRoleAllowsStoredRole(t *testing.T) {
	users := memory.NewUserStore()
	_, err := users.Insert(context.Background(), &models.User{Email: "a@x.com", Role: models.RoleAdmin})
	require.NoError(t, err)

	handler := RequireRole(users, models.RoleAdmin)(okHandler(nil))

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req = req.WithContext(WithEmail(context.Background(), "a@x.com"))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoleUnauthorizedWithoutAuth(t *testing.T) {
	users := memory.NewUserStore()
	handler := RequireRole(users, models.RoleAdmin)(okHandler(nil))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
