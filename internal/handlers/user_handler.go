package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/csmahmud99/krafti-summer-camp-school-server/internal/apperr"
	"github.com/csmahmud99/krafti-summer-camp-school-server/internal/middleware"
	"github.com/csmahmud99/krafti-summer-camp-school-server/internal/models"
	"github.com/csmahmud99/krafti-summer-camp-school-server/internal/repository"
	"github.com/csmahmud99/krafti-summer-camp-school-server/internal/response"
	"github.com/csmahmud99/krafti-summer-camp-school-server/internal/utils"
)

type UserHandler struct {
	users  repository.UserRepository
	mailer *utils.Mailer
	logger *zap.Logger
}

func NewUserHandler(users repository.UserRepository, mailer *utils.Mailer, logger *zap.Logger) *UserHandler {
	return &UserHandler{users: users, mailer: mailer, logger: logger}
}

// GetUsers returns every user document. Admin-gated in the routes.
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		h.logger.Error("failed to fetch users", zap.Error(err))
		response.Error(w, apperr.Wrap(err, apperr.ErrUpstream.Code, apperr.ErrUpstream.Status, "failed to fetch users"))
		return
	}
	response.JSON(w, http.StatusOK, users)
}

// GetInstructors returns user profiles carrying the instructor role.
func (h *UserHandler) GetInstructors(w http.ResponseWriter, r *http.Request) {
	instructors, err := h.users.ListByRole(r.Context(), models.RoleInstructor)
	if err != nil {
		h.logger.Error("failed to fetch instructors", zap.Error(err))
		response.Error(w, apperr.Wrap(err, apperr.ErrUpstream.Code, apperr.ErrUpstream.Status, "failed to fetch instructors"))
		return
	}
	response.JSON(w, http.StatusOK, instructors)
}

// CreateUser is an idempotent upsert-by-email. Social logins replay the
// same POST on every sign-in, so an existing email is acknowledged
// without touching the stored document.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var newUser models.User
	if err := json.NewDecoder(r.Body).Decode(&newUser); err != nil {
		response.Error(w, apperr.Clone(apperr.ErrValidation, "invalid request payload"))
		return
	}
	if newUser.Email == "" {
		response.Error(w, apperr.Clone(apperr.ErrValidation, "email is required"))
		return
	}

	_, err := h.users.FindByEmail(r.Context(), newUser.Email)
	if err == nil {
		response.JSON(w, http.StatusOK, map[string]string{"message": "User already exists."})
		return
	}
	if !errors.Is(err, repository.ErrNotFound) {
		h.logger.Error("failed to check existing user", zap.Error(err))
		response.Error(w, apperr.Wrap(err, apperr.ErrUpstream.Code, apperr.ErrUpstream.Status, "failed to check existing user"))
		return
	}

	if newUser.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(newUser.Password), bcrypt.DefaultCost)
		if err != nil {
			response.Error(w, apperr.ErrInternal)
			return
		}
		newUser.Password = string(hashed)
	}
	newUser.Role = models.RoleNone
	newUser.CreatedAt = time.Now()

	id, err := h.users.Insert(r.Context(), &newUser)
	if err != nil {
		h.logger.Error("failed to create user", zap.Error(err))
		response.Error(w, apperr.Wrap(err, apperr.ErrUpstream.Code, apperr.ErrUpstream.Status, "failed to create user"))
		return
	}

	if h.mailer.Enabled() {
		go func() {
			if err := h.mailer.SendWelcome(newUser.Email, newUser.Name); err != nil {
				h.logger.Warn("failed to send welcome email", zap.String("email", newUser.Email), zap.Error(err))
			}
		}()
	}

	response.JSON(w, http.StatusCreated, map[string]string{"insertedId": id.Hex()})
}

// CheckAdmin reports whether the stored role for the path email is admin.
// A token for a different email learns nothing about the target role.
func (h *UserHandler) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	h.checkRole(w, r, models.RoleAdmin, "admin")
}

// CheckInstructor is the instructor counterpart of CheckAdmin.
func (h *UserHandler) CheckInstructor(w http.ResponseWriter, r *http.Request) {
	h.checkRole(w, r, models.RoleInstructor, "instructor")
}

func (h *UserHandler) checkRole(w http.ResponseWriter, r *http.Request, role models.UserRole, field string) {
	email := mux.Vars(r)["email"]

	claimEmail, ok := middleware.EmailFromContext(r.Context())
	if !ok || claimEmail != email {
		response.JSON(w, http.StatusOK, map[string]bool{field: false})
		return
	}

	user, err := h.users.FindByEmail(r.Context(), email)
	if errors.Is(err, repository.ErrNotFound) {
		response.JSON(w, http.StatusOK, map[string]bool{field: false})
		return
	}
	if err != nil {
		h.logger.Error("failed to look up user", zap.Error(err))
		response.Error(w, apperr.Wrap(err, apperr.ErrUpstream.Code, apperr.ErrUpstream.Status, "failed to look up user"))
		return
	}

	response.JSON(w, http.StatusOK, map[string]bool{field: user.Role == role})
}

// MakeAdmin unconditionally sets role=admin on the given user id.
func (h *UserHandler) MakeAdmin(w http.ResponseWriter, r *http.Request) {
	h.setRole(w, r, models.RoleAdmin)
}

// MakeInstructor unconditionally sets role=instructor on the given user id.
func (h *UserHandler) MakeInstructor(w http.ResponseWriter, r *http.Request) {
	h.setRole(w, r, models.RoleInstructor)
}

func (h *UserHandler) setRole(w http.ResponseWriter, r *http.Request, role models.UserRole) {
	id, err := parseObjectID(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, err)
		return
	}

	modified, err := h.users.SetRole(r.Context(), id, role)
	if err != nil {
		h.logger.Error("failed to update role", zap.Error(err))
		response.Error(w, apperr.Wrap(err, apperr.ErrUpstream.Code, apperr.ErrUpstream.Status, "failed to update role"))
		return
	}
	if modified == 0 {
		response.Error(w, apperr.Clone(apperr.ErrNotFound, "user not found"))
		return
	}

	response.JSON(w, http.StatusOK, map[string]int64{"modifiedCount": modified})
}
