package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/csmahmud99/krafti-summer-camp-school-server/internal/middleware"
	"github.com/csmahmud99/krafti-summer-camp-school-server/internal/models"
	"github.com/csmahmud99/krafti-summer-camp-school-server/internal/repository/memory"
)

func newUserHandler(users *memory.UserStore) *UserHandler {
	return NewUserHandler(users, nil, zap.NewNop())
}

func TestCreateUserInsertsOnce(t *testing.T) {
	users := memory.NewUserStore()
	handler := newUserHandler(users)

	body := `{"email":"a@x.com","name":"A"}`

	w := httptest.NewRecorder()
	handler.CreateUser(w, httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString(body)))
	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created["insertedId"])
	assert.Equal(t, 1, users.Count())
}

func TestCreateUserIdempotentByEmail(t *testing.T) {
	users := memory.NewUserStore()
	handler := newUserHandler(users)

	body := `{"email":"a@x.com","name":"A"}`

	w := httptest.NewRecorder()
	handler.CreateUser(w, httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString(body)))
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	handler.CreateUser(w, httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString(body)))
	require.Equal(t, http.StatusOK, w.Code)

	var ack map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ack))
	assert.Equal(t, "User already exists.", ack["message"])
	assert.Equal(t, 1, users.Count())
}

func TestCreateUserRequiresEmail(t *testing.T) {
	handler := newUserHandler(memory.NewUserStore())

	w := httptest.NewRecorder()
	handler.CreateUser(w, httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString(`{"name":"A"}`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateUserHashesPassword(t *testing.T) {
	users := memory.NewUserStore()
	handler := newUserHandler(users)

	body := `{"email":"a@x.com","name":"A","password":"hunter22"}`
	w := httptest.NewRecorder()
	handler.CreateUser(w, httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString(body)))
	require.Equal(t, http.StatusCreated, w.Code)

	stored, err := users.FindByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", stored.Password)
	assert.NotEmpty(t, stored.Password)
}

func checkRoleRequest(t *testing.T, handler *UserHandler, target string, pathEmail, claimEmail string) map[string]bool {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req = mux.SetURLVars(req, map[string]string{"email": pathEmail})
	if claimEmail != "" {
		req = req.WithContext(middleware.WithEmail(req.Context(), claimEmail))
	}

	w := httptest.NewRecorder()
	if target == "/users/admin/"+pathEmail {
		handler.CheckAdmin(w, req)
	} else {
		handler.CheckInstructor(w, req)
	}
	require.Equal(t, http.StatusOK, w.Code)

	var result map[string]bool
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	return result
}

func TestCheckAdminNoUserRecord(t *testing.T) {
	handler := newUserHandler(memory.NewUserStore())

	result := checkRoleRequest(t, handler, "/users/admin/a@x.com", "a@x.com", "a@x.com")
	assert.False(t, result["admin"])
}

func TestCheckAdminTokenScoping(t *testing.T) {
	users := memory.NewUserStore()
	_, err := users.Insert(context.Background(), &models.User{Email: "a@x.com", Role: models.RoleAdmin})
	require.NoError(t, err)
	handler := newUserHandler(users)

	// A token issued for b@x.com must not reveal a@x.com's role.
	result := checkRoleRequest(t, handler, "/users/admin/a@x.com", "a@x.com", "b@x.com")
	assert.False(t, result["admin"])
}

func TestCheckAdminTrueForStoredAdmin(t *testing.T) {
	users := memory.NewUserStore()
	_, err := users.Insert(context.Background(), &models.User{Email: "a@x.com", Role: models.RoleAdmin})
	require.NoError(t, err)
	handler := newUserHandler(users)

	result := checkRoleRequest(t, handler, "/users/admin/a@x.com", "a@x.com", "a@x.com")
	assert.True(t, result["admin"])
}

func TestCheckInstructor(t *testing.T) {
	users := memory.NewUserStore()
	_, err := users.Insert(context.Background(), &models.User{Email: "i@x.com", Role: models.RoleInstructor})
	require.NoError(t, err)
	handler := newUserHandler(users)

	result := checkRoleRequest(t, handler, "/users/instructor/i@x.com", "i@x.com", "i@x.com")
	assert.True(t, result["instructor"])

	result = checkRoleRequest(t, handler, "/users/instructor/i@x.com", "i@x.com", "someone@x.com")
	assert.False(t, result["instructor"])
}

func TestMakeAdminPromotesUser(t *testing.T) {
	users := memory.NewUserStore()
	id, err := users.Insert(context.Background(), &models.User{Email: "a@x.com"})
	require.NoError(t, err)
	handler := newUserHandler(users)

	req := httptest.NewRequest(http.MethodPatch, "/users/admin/"+id.Hex(), nil)
	req = mux.SetURLVars(req, map[string]string{"id": id.Hex()})
	w := httptest.NewRecorder()
	handler.MakeAdmin(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	stored, err := users.FindByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, stored.Role)

	// The role check now reflects the stored role.
	result := checkRoleRequest(t, handler, "/users/admin/a@x.com", "a@x.com", "a@x.com")
	assert.True(t, result["admin"])
}

func TestMakeInstructorUnknownID(t *testing.T) {
	handler := newUserHandler(memory.NewUserStore())

	missing := "651234567890abcdef123456"
	req := httptest.NewRequest(http.MethodPatch, "/users/instructor/"+missing, nil)
	req = mux.SetURLVars(req, map[string]string{"id": missing})
	w := httptest.NewRecorder()
	handler.MakeInstructor(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMakeAdminMalformedID(t *testing.T) {
	handler := newUserHandler(memory.NewUserStore())

	req := httptest.NewRequest(http.MethodPatch, "/users/admin/not-hex", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "not-hex"})
	w := httptest.NewRecorder()
	handler.MakeAdmin(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetInstructorsFiltersByRole(t *testing.T) {
	users := memory.NewUserStore()
	ctx := context.Background()
	_, err := users.Insert(ctx, &models.User{Email: "i@x.com", Role: models.RoleInstructor})
	require.NoError(t, err)
	_, err = users.Insert(ctx, &models.User{Email: "s@x.com"})
	require.NoError(t, err)
	handler := newUserHandler(users)

	w := httptest.NewRecorder()
	handler.GetInstructors(w, httptest.NewRequest(http.MethodGet, "/instructors", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var instructors []models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &instructors))
	require.Len(t, instructors, 1)
	assert.Equal(t, "i@x.com", instructors[0].Email)
}
