package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/csmahmud99/krafti-summer-camp-school-server/internal/apperr"
	"github.com/csmahmud99/krafti-summer-camp-school-server/internal/middleware"
	"github.com/csmahmud99/krafti-summer-camp-school-server/internal/models"
	"github.com/csmahmud99/krafti-summer-camp-school-server/internal/payments"
	"github.com/csmahmud99/krafti-summer-camp-school-server/internal/repository"
	"github.com/csmahmud99/krafti-summer-camp-school-server/internal/response"
)

type PaymentHandler struct {
	carts    repository.CartRepository
	classes  repository.ClassRepository
	payments repository.PaymentRepository
	intents  payments.IntentCreator
	logger   *zap.Logger
}

func NewPaymentHandler(carts repository.CartRepository, classes repository.ClassRepository, paymentRepo repository.PaymentRepository, intents payments.IntentCreator, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		carts:    carts,
		classes:  classes,
		payments: paymentRepo,
		intents:  intents,
		logger:   logger,
	}
}

// SettlementResult combines the three settlement sub-results.
type SettlementResult struct {
	InsertedID    string `json:"insertedId"`
	DeletedCount  int64  `json:"deletedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
}

// CreateIntent requests a card-payable intent for the given price in USD.
func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Price float64 `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, apperr.Clone(apperr.ErrValidation, "invalid request payload"))
		return
	}
	if body.Price <= 0 {
		response.Error(w, apperr.Clone(apperr.ErrValidation, "price must be positive"))
		return
	}

	// Minor units: dollars to cents, truncated.
	amount := int64(body.Price * 100)

	clientSecret, err := h.intents.CreateIntent(r.Context(), amount)
	if err != nil {
		h.logger.Error("failed to create payment intent", zap.Error(err))
		response.Error(w, apperr.Wrap(err, apperr.ErrUpstream.Code, apperr.ErrUpstream.Status, "payment provider request failed"))
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"clientSecret": clientSecret})
}

// CreatePayment settles a purchase: it records the payment, consumes the
// cart entry and moves one seat to the enroll count. Amount and counters
// are recomputed here from the stored documents; client-supplied deltas
// are ignored. The three writes are not one transaction, so each later
// failure compensates the earlier writes before reporting the error.
func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var body struct {
		PayID string `json:"payId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, apperr.Clone(apperr.ErrValidation, "invalid request payload"))
		return
	}

	payID, err := parseObjectID(body.PayID)
	if err != nil {
		response.Error(w, err)
		return
	}

	claimEmail, ok := middleware.EmailFromContext(r.Context())
	if !ok {
		response.Error(w, apperr.ErrUnauthorized)
		return
	}

	ctx := r.Context()

	entry, err := h.carts.FindByID(ctx, payID)
	if errors.Is(err, repository.ErrNotFound) {
		response.Error(w, apperr.Clone(apperr.ErrNotFound, "cart entry not found"))
		return
	}
	if err != nil {
		response.Error(w, apperr.Wrap(err, apperr.ErrUpstream.Code, apperr.ErrUpstream.Status, "failed to load cart entry"))
		return
	}
	if entry.Email != claimEmail {
		response.Error(w, apperr.ErrForbidden)
		return
	}

	class, err := h.classes.FindByID(ctx, entry.ClassID)
	if errors.Is(err, repository.ErrNotFound) {
		response.Error(w, apperr.Clone(apperr.ErrNotFound, "class not found"))
		return
	}
	if err != nil {
		response.Error(w, apperr.Wrap(err, apperr.ErrUpstream.Code, apperr.ErrUpstream.Status, "failed to load class"))
		return
	}
	if class.Seats <= 0 {
		response.Error(w, apperr.Clone(apperr.ErrConflict, "no seats left"))
		return
	}

	payment := models.Payment{
		Email:         claimEmail,
		ClassID:       class.ID,
		PayID:         entry.ID,
		NameClass:     class.NameClass,
		Amount:        class.Price,
		TransactionID: uuid.NewString(),
		Date:          time.Now(),
	}

	paymentID, err := h.payments.Insert(ctx, &payment)
	if err != nil {
		h.logger.Error("failed to record payment", zap.Error(err))
		response.Error(w, apperr.Wrap(err, apperr.ErrUpstream.Code, apperr.ErrUpstream.Status, "failed to record payment"))
		return
	}

	modified, err := h.classes.ApplyEnrollment(ctx, class.ID)
	if err != nil || modified == 0 {
		// Undo the recorded payment; the seat was never taken.
		if delErr := h.payments.Delete(ctx, paymentID); delErr != nil {
			h.logger.Error("failed to undo payment record", zap.String("paymentId", paymentID.Hex()), zap.Error(delErr))
		}
		if err != nil {
			h.logger.Error("failed to update class counters", zap.Error(err))
			response.Error(w, apperr.Wrap(err, apperr.ErrUpstream.Code, apperr.ErrUpstream.Status, "failed to update class counters"))
			return
		}
		response.Error(w, apperr.Clone(apperr.ErrConflict, "no seats left"))
		return
	}

	deleted, err := h.carts.Delete(ctx, entry.ID)
	if err != nil {
		// Undo the counter change and the payment record.
		if revErr := h.classes.RevertEnrollment(ctx, class.ID); revErr != nil {
			h.logger.Error("failed to revert class counters", zap.String("classId", class.ID.Hex()), zap.Error(revErr))
		}
		if delErr := h.payments.Delete(ctx, paymentID); delErr != nil {
			h.logger.Error("failed to undo payment record", zap.String("paymentId", paymentID.Hex()), zap.Error(delErr))
		}
		h.logger.Error("failed to delete cart entry", zap.Error(err))
		response.Error(w, apperr.Wrap(err, apperr.ErrUpstream.Code, apperr.ErrUpstream.Status, "failed to delete cart entry"))
		return
	}

	response.JSON(w, http.StatusCreated, SettlementResult{
		InsertedID:    paymentID.Hex(),
		DeletedCount:  deleted,
		ModifiedCount: modified,
	})
}

// GetEnrolled returns all payment records for an email.
func (h *PaymentHandler) GetEnrolled(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	records, err := h.payments.ListByEmail(r.Context(), email)
	if err != nil {
		h.logger.Error("failed to fetch enrollments", zap.Error(err))
		response.Error(w, apperr.Wrap(err, apperr.ErrUpstream.Code, apperr.ErrUpstream.Status, "failed to fetch enrollments"))
		return
	}

	response.JSON(w, http.StatusOK, records)
}
