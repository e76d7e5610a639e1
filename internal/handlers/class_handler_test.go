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

	"github.com/csmahmud99/krafti-summer-camp-school-server/internal/models"
	"github.com/csmahmud99/krafti-summer-camp-school-server/internal/repository/memory"
)

func seedClass(t *testing.T, classes *memory.ClassStore, class models.Class) models.Class {
	t.Helper()
	id, err := classes.Insert(context.Background(), &class)
	require.NoError(t, err)
	class.ID = id
	return class
}

func TestGetClassesReturnsAllStatuses(t *testing.T) {
	classes := memory.NewClassStore()
	seedClass(t, classes, models.Class{NameClass: "Pottery", InstructorEmail: "i@x.com", Status: models.StatusPending})
	seedClass(t, classes, models.Class{NameClass: "Guitar", InstructorEmail: "i@x.com", Status: models.StatusApproved})
	seedClass(t, classes, models.Class{NameClass: "Chess", InstructorEmail: "i@x.com", Status: models.StatusDenied})
	handler := NewClassHandler(classes, zap.NewNop())

	w := httptest.NewRecorder()
	handler.GetClasses(w, httptest.NewRequest(http.MethodGet, "/classes", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var listed []models.Class
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Len(t, listed, 3)
}

func TestGetClassesByInstructor(t *testing.T) {
	classes := memory.NewClassStore()
	seedClass(t, classes, models.Class{NameClass: "Pottery", InstructorEmail: "i@x.com"})
	seedClass(t, classes, models.Class{NameClass: "Guitar", InstructorEmail: "other@x.com"})
	handler := NewClassHandler(classes, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/myClasses/i@x.com", nil)
	req = mux.SetURLVars(req, map[string]string{"email": "i@x.com"})
	w := httptest.NewRecorder()
	handler.GetClassesByInstructor(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var listed []models.Class
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Pottery", listed[0].NameClass)
}

func TestGetClassByID(t *testing.T) {
	classes := memory.NewClassStore()
	class := seedClass(t, classes, models.Class{NameClass: "Pottery", InstructorEmail: "i@x.com"})
	handler := NewClassHandler(classes, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/myClass/"+class.ID.Hex(), nil)
	req = mux.SetURLVars(req, map[string]string{"id": class.ID.Hex()})
	w := httptest.NewRecorder()
	handler.GetClassByID(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Class
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, class.ID, got.ID)
}

func TestGetClassByIDMalformed(t *testing.T) {
	handler := NewClassHandler(memory.NewClassStore(), zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/myClass/zzz", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "zzz"})
	w := httptest.NewRecorder()
	handler.GetClassByID(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetClassByIDNotFound(t *testing.T) {
	handler := NewClassHandler(memory.NewClassStore(), zap.NewNop())

	missing := "651234567890abcdef123456"
	req := httptest.NewRequest(http.MethodGet, "/myClass/"+missing, nil)
	req = mux.SetURLVars(req, map[string]string{"id": missing})
	w := httptest.NewRecorder()
	handler.GetClassByID(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateClassDefaultsToPending(t *testing.T) {
	classes := memory.NewClassStore()
	handler := NewClassHandler(classes, zap.NewNop())

	body := `{"nameClass":"Pottery","instructorEmail":"i@x.com","seats":10,"price":49.99}`
	w := httptest.NewRecorder()
	handler.CreateClass(w, httptest.NewRequest(http.MethodPost, "/classes", bytes.NewBufferString(body)))
	require.Equal(t, http.StatusCreated, w.Code)

	listed, err := classes.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, models.StatusPending, listed[0].Status)
	assert.Equal(t, 0, listed[0].Enroll)
}

func TestCreateClassRejectsInvalidBody(t *testing.T) {
	handler := NewClassHandler(memory.NewClassStore(), zap.NewNop())

	for name, body := range map[string]string{
		"missing name":   `{"instructorEmail":"i@x.com","seats":10,"price":10}`,
		"bad email":      `{"nameClass":"Pottery","instructorEmail":"nope","seats":10,"price":10}`,
		"negative seats": `{"nameClass":"Pottery","instructorEmail":"i@x.com","seats":-1,"price":10}`,
		"negative price": `{"nameClass":"Pottery","instructorEmail":"i@x.com","seats":10,"price":-5}`,
	} {
		w := httptest.NewRecorder()
		handler.CreateClass(w, httptest.NewRequest(http.MethodPost, "/classes", bytes.NewBufferString(body)))
		assert.Equal(t, http.StatusBadRequest, w.Code, name)
	}
}

func TestApproveAndDenyClass(t *testing.T) {
	classes := memory.NewClassStore()
	class := seedClass(t, classes, models.Class{NameClass: "Pottery", InstructorEmail: "i@x.com", Status: models.StatusPending})
	handler := NewClassHandler(classes, zap.NewNop())

	req := httptest.NewRequest(http.MethodPatch, "/classes/approved/"+class.ID.Hex(), nil)
	req = mux.SetURLVars(req, map[string]string{"id": class.ID.Hex()})
	w := httptest.NewRecorder()
	handler.ApproveClass(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	stored, err := classes.FindByID(context.Background(), class.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, stored.Status)

	req = httptest.NewRequest(http.MethodPatch, "/classes/denied/"+class.ID.Hex(), nil)
	req = mux.SetURLVars(req, map[string]string{"id": class.ID.Hex()})
	w = httptest.NewRecorder()
	handler.DenyClass(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	stored, err = classes.FindByID(context.Background(), class.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDenied, stored.Status)
}

func TestUpdateClassReplacesFourFields(t *testing.T) {
	classes := memory.NewClassStore()
	class := seedClass(t, classes, models.Class{
		NameClass:       "Pottery",
		InstructorEmail: "i@x.com",
		Seats:           10,
		Price:           49.99,
		Enroll:          3,
		Status:          models.StatusApproved,
	})
	handler := NewClassHandler(classes, zap.NewNop())

	body := `{"nameClass":"Advanced Pottery","image":"pots.png","seats":5,"price":59.99}`
	req := httptest.NewRequest(http.MethodPut, "/classes/"+class.ID.Hex(), bytes.NewBufferString(body))
	req = mux.SetURLVars(req, map[string]string{"id": class.ID.Hex()})
	w := httptest.NewRecorder()
	handler.UpdateClass(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	stored, err := classes.FindByID(context.Background(), class.ID)
	require.NoError(t, err)
	assert.Equal(t, "Advanced Pottery", stored.NameClass)
	assert.Equal(t, "pots.png", stored.Image)
	assert.Equal(t, 5, stored.Seats)
	assert.Equal(t, 59.99, stored.Price)
	// Everything outside the four fields is untouched.
	assert.Equal(t, 3, stored.Enroll)
	assert.Equal(t, models.StatusApproved, stored.Status)
	assert.Equal(t, "i@x.com", stored.InstructorEmail)
}
