// internal/api/handler/category.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"paycart/internal/api/types"
	"paycart/internal/service"
	"paycart/internal/util"
)

// CategoryHandler handles HTTP requests related to catalog categories.
type CategoryHandler struct {
	service service.CategoryService
	logger  *slog.Logger
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(svc service.CategoryService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: svc,
		logger:  logger,
	}
}

// CreateCategoryRequest represents the request body for creating a category.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	OrderValue  int64  `json:"order_value"`
	Description string `json:"description"`
}

// Create handles POST /categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	category, err := h.service.CreateCategory(r.Context(), req.Name, req.OrderValue, req.Description)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusCreated, category)
}

// Get handles GET /categories/{categoryID}.
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "categoryID"))
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	category, err := h.service.GetCategory(r.Context(), id)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, category)
}

// List handles GET /categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)

	categories, totalCount, err := h.service.ListCategories(r.Context(), limit, offset)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, types.NewPaginatedResponse(categories, limit, offset, totalCount))
}

// UpdateCategoryRequest represents the request body for a partial category update.
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	OrderValue  *int64  `json:"order_value"`
	Description *string `json:"description"`
}

// Update handles PUT /categories/{categoryID}.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "categoryID"))
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	var req UpdateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	category, err := h.service.UpdateCategory(r.Context(), id, service.CategoryUpdate{
		Name:        req.Name,
		OrderValue:  req.OrderValue,
		Description: req.Description,
	})
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, category)
}

// Delete handles DELETE /categories/{categoryID}.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "categoryID"))
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	if err := h.service.DeleteCategory(r.Context(), id); err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, map[string]string{"message": "Category deleted"})
}
