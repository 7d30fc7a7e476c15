// internal/api/handler/payment.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"paycart/internal/api/types"
	"paycart/internal/service"
	"paycart/internal/util"
)

// PaymentHandler handles HTTP requests related to payment operations.
type PaymentHandler struct {
	service service.PaymentService
	logger  *slog.Logger
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(svc service.PaymentService, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: svc,
		logger:  logger,
	}
}

// CreatePaymentRequest represents the request body for creating a payment.
type CreatePaymentRequest struct {
	UserID int64           `json:"user_id"`
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
}

// Create handles the create payment request.
// POST /payments
func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}
	if req.UserID <= 0 || req.Amount.IsNegative() || req.Amount.IsZero() {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}
	if req.Date.IsZero() {
		req.Date = time.Now().UTC()
	}

	payment, err := h.service.CreatePayment(r.Context(), req.UserID, req.Amount, req.Date)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusCreated, payment)
}

// Get handles the get payment request.
// GET /payments/{paymentID}
func (h *PaymentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "paymentID"))
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	payment, err := h.service.GetPayment(r.Context(), id)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, payment)
}

// List handles the list payments request.
// GET /payments
func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)

	payments, totalCount, err := h.service.ListPayments(r.Context(), limit, offset)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, types.NewPaginatedResponse(payments, limit, offset, totalCount))
}

// UpdatePaymentRequest represents the request body for updating a payment.
type UpdatePaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// Update handles the update payment request. Only the amount can change;
// the user's balance is not touched.
// PUT /payments/{paymentID}
func (h *PaymentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "paymentID"))
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	var req UpdatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	payment, err := h.service.UpdatePayment(r.Context(), id, req.Amount)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, payment)
}

// Delete handles the delete payment request.
// DELETE /payments/{paymentID}
func (h *PaymentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "paymentID"))
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	if err := h.service.DeletePayment(r.Context(), id); err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, map[string]string{"message": "Payment deleted"})
}
