package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/csmahmud99/krafti-summer-camp-school-server/internal/apperr"
	"github.com/csmahmud99/krafti-summer-camp-school-server/internal/middleware"
	"github.com/csmahmud99/krafti-summer-camp-school-server/internal/models"
	"github.com/csmahmud99/krafti-summer-camp-school-server/internal/repository"
	"github.com/csmahmud99/krafti-summer-camp-school-server/internal/response"
)

type CartHandler struct {
	carts  repository.CartRepository
	logger *zap.Logger
}

func NewCartHandler(carts repository.CartRepository, logger *zap.Logger) *CartHandler {
	return &CartHandler{carts: carts, logger: logger}
}

// GetSelected returns the caller's pending selections. The query email
// must match the token subject; an empty email answers [] immediately.
func (h *CartHandler) GetSelected(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		response.JSON(w, http.StatusOK, []models.CartEntry{})
		return
	}

	claimEmail, ok := middleware.EmailFromContext(r.Context())
	if !ok || claimEmail != email {
		response.Error(w, apperr.ErrForbidden)
		return
	}

	entries, err := h.carts.ListByEmail(r.Context(), email)
	if err != nil {
		h.logger.Error("failed to fetch selections", zap.Error(err))
		response.Error(w, apperr.Wrap(err, apperr.ErrUpstream.Code, apperr.ErrUpstream.Status, "failed to fetch selections"))
		return
	}

	response.JSON(w, http.StatusOK, entries)
}

// AddSelected inserts a selection document. There is no duplicate check;
// the same class can sit in the cart twice until one copy is paid for.
func (h *CartHandler) AddSelected(w http.ResponseWriter, r *http.Request) {
	var entry models.CartEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		response.Error(w, apperr.Clone(apperr.ErrValidation, "invalid request payload"))
		return
	}
	if entry.Email == "" || entry.ClassID.IsZero() {
		response.Error(w, apperr.Clone(apperr.ErrValidation, "email and classId are required"))
		return
	}

	entry.SelectedAt = time.Now()

	id, err := h.carts.Insert(r.Context(), &entry)
	if err != nil {
		h.logger.Error("failed to add selection", zap.Error(err))
		response.Error(w, apperr.Wrap(err, apperr.ErrUpstream.Code, apperr.ErrUpstream.Status, "failed to add selection"))
		return
	}

	response.JSON(w, http.StatusCreated, map[string]string{"insertedId": id.Hex()})
}
