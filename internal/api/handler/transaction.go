// internal/api/handler/transaction.go
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

// TransactionHandler handles HTTP requests for purchase transactions and their items.
type TransactionHandler struct {
	service service.TransactionService
	logger  *slog.Logger
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(svc service.TransactionService, logger *slog.Logger) *TransactionHandler {
	return &TransactionHandler{
		service: svc,
		logger:  logger,
	}
}

// CreateTransactionRequest represents the request body for creating a transaction.
type CreateTransactionRequest struct {
	UserID      int64           `json:"user_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Date        time.Time       `json:"date"`
}

// Create handles POST /transactions.
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}
	if req.UserID <= 0 {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}
	if req.Date.IsZero() {
		req.Date = time.Now().UTC()
	}

	transaction, err := h.service.CreateTransaction(r.Context(), req.UserID, req.TotalAmount, req.Date)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusCreated, transaction)
}

// Get handles GET /transactions/{transactionID}.
func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "transactionID"))
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	transaction, err := h.service.GetTransaction(r.Context(), id)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, transaction)
}

// List handles GET /transactions.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)

	transactions, totalCount, err := h.service.ListTransactions(r.Context(), limit, offset)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, types.NewPaginatedResponse(transactions, limit, offset, totalCount))
}

// Delete handles DELETE /transactions/{transactionID}.
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "transactionID"))
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	if err := h.service.DeleteTransaction(r.Context(), id); err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, map[string]string{"message": "Transaction deleted"})
}

// CreateTransactionItemRequest represents the request body for adding a line item.
type CreateTransactionItemRequest struct {
	ProductID int64           `json:"product_id"`
	Count     int64           `json:"count"`
	Amount    decimal.Decimal `json:"amount"`
}

// CreateItem handles POST /transactions/{transactionID}/items.
func (h *TransactionHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	transactionID, err := parseIDParam(chi.URLParam(r, "transactionID"))
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	var req CreateTransactionItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}
	if req.ProductID <= 0 {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	item, err := h.service.CreateTransactionItem(r.Context(), req.ProductID, transactionID, req.Count, req.Amount)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusCreated, item)
}

// ListItems handles GET /transactions/{transactionID}/items.
func (h *TransactionHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	transactionID, err := parseIDParam(chi.URLParam(r, "transactionID"))
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	limit, offset := parsePagination(r)

	items, totalCount, err := h.service.ListTransactionItems(r.Context(), transactionID, limit, offset)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, types.NewPaginatedResponse(items, limit, offset, totalCount))
}

// GetItem handles GET /transaction-items/{itemID}.
func (h *TransactionHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "itemID"))
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	item, err := h.service.GetTransactionItem(r.Context(), id)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, item)
}

// DeleteItem handles DELETE /transaction-items/{itemID}.
func (h *TransactionHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "itemID"))
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	if err := h.service.DeleteTransactionItem(r.Context(), id); err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, map[string]string{"message": "Transaction item deleted"})
}
