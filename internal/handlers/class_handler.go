package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/csmahmud99/krafti-summer-camp-school-server/internal/apperr"
	"github.com/csmahmud99/krafti-summer-camp-school-server/internal/models"
	"github.com/csmahmud99/krafti-summer-camp-school-server/internal/repository"
	"github.com/csmahmud99/krafti-summer-camp-school-server/internal/response"
)

type ClassHandler struct {
	classes  repository.ClassRepository
	logger   *zap.Logger
	validate *validator.Validate
}

func NewClassHandler(classes repository.ClassRepository, logger *zap.Logger) *ClassHandler {
	return &ClassHandler{
		classes:  classes,
		logger:   logger,
		validate: validator.New(),
	}
}

// GetClasses returns every class regardless of status.
func (h *ClassHandler) GetClasses(w http.ResponseWriter, r *http.Request) {
	classes, err := h.classes.List(r.Context())
	if err != nil {
		h.logger.Error("failed to fetch classes", zap.Error(err))
		response.Error(w, apperr.Wrap(err, apperr.ErrUpstream.Code, apperr.ErrUpstream.Status, "failed to fetch classes"))
		return
	}
	response.JSON(w, http.StatusOK, classes)
}

// GetClassesByInstructor returns the classes created by one instructor.
func (h *ClassHandler) GetClassesByInstructor(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]
	classes, err := h.classes.ListByInstructor(r.Context(), email)
	if err != nil {
		h.logger.Error("failed to fetch instructor classes", zap.Error(err))
		response.Error(w, apperr.Wrap(err, apperr.ErrUpstream.Code, apperr.ErrUpstream.Status, "failed to fetch classes"))
		return
	}
	response.JSON(w, http.StatusOK, classes)
}

// GetClassByID returns a single class document.
func (h *ClassHandler) GetClassByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseObjectID(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, err)
		return
	}

	class, err := h.classes.FindByID(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		response.Error(w, apperr.Clone(apperr.ErrNotFound, "class not found"))
		return
	}
	if err != nil {
		h.logger.Error("failed to fetch class", zap.Error(err))
		response.Error(w, apperr.Wrap(err, apperr.ErrUpstream.Code, apperr.ErrUpstream.Status, "failed to fetch class"))
		return
	}

	response.JSON(w, http.StatusOK, class)
}

// CreateClass inserts a new class as Pending. Instructor-gated in the routes.
func (h *ClassHandler) CreateClass(w http.ResponseWriter, r *http.Request) {
	var newClass models.Class
	if err := json.NewDecoder(r.Body).Decode(&newClass); err != nil {
		response.Error(w, apperr.Clone(apperr.ErrValidation, "invalid request payload"))
		return
	}
	if err := h.validate.Struct(newClass); err != nil {
		response.Error(w, apperr.Wrap(err, apperr.ErrValidation.Code, apperr.ErrValidation.Status, "nameClass, instructorEmail, non-negative seats and price are required"))
		return
	}

	newClass.Status = models.StatusPending
	newClass.Enroll = 0
	newClass.CreatedAt = time.Now()

	id, err := h.classes.Insert(r.Context(), &newClass)
	if err != nil {
		h.logger.Error("failed to create class", zap.Error(err))
		response.Error(w, apperr.Wrap(err, apperr.ErrUpstream.Code, apperr.ErrUpstream.Status, "failed to create class"))
		return
	}

	response.JSON(w, http.StatusCreated, map[string]string{"insertedId": id.Hex()})
}

// ApproveClass sets the class status to Approved.
func (h *ClassHandler) ApproveClass(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, models.StatusApproved)
}

// DenyClass sets the class status to Denied.
func (h *ClassHandler) DenyClass(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, models.StatusDenied)
}

func (h *ClassHandler) setStatus(w http.ResponseWriter, r *http.Request, status models.ClassStatus) {
	id, err := parseObjectID(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, err)
		return
	}

	matched, err := h.classes.SetStatus(r.Context(), id, status)
	if err != nil {
		h.logger.Error("failed to update class status", zap.Error(err))
		response.Error(w, apperr.Wrap(err, apperr.ErrUpstream.Code, apperr.ErrUpstream.Status, "failed to update class status"))
		return
	}
	if matched == 0 {
		response.Error(w, apperr.Clone(apperr.ErrNotFound, "class not found"))
		return
	}

	response.JSON(w, http.StatusOK, map[string]int64{"modifiedCount": matched})
}

// UpdateClass replaces the four editable fields: nameClass, image, seats, price.
func (h *ClassHandler) UpdateClass(w http.ResponseWriter, r *http.Request) {
	id, err := parseObjectID(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, err)
		return
	}

	var update models.ClassUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		response.Error(w, apperr.Clone(apperr.ErrValidation, "invalid request payload"))
		return
	}
	if err := h.validate.Struct(update); err != nil {
		response.Error(w, apperr.Wrap(err, apperr.ErrValidation.Code, apperr.ErrValidation.Status, "nameClass and non-negative seats and price are required"))
		return
	}

	matched, err := h.classes.Update(r.Context(), id, update)
	if err != nil {
		h.logger.Error("failed to update class", zap.Error(err))
		response.Error(w, apperr.Wrap(err, apperr.ErrUpstream.Code, apperr.ErrUpstream.Status, "failed to update class"))
		return
	}
	if matched == 0 {
		response.Error(w, apperr.Clone(apperr.ErrNotFound, "class not found"))
		return
	}

	response.JSON(w, http.StatusOK, map[string]int64{"modifiedCount": matched})
}
