// internal/api/handler/product.go
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

// ProductHandler handles HTTP requests related to catalog products.
type ProductHandler struct {
	service service.ProductService
	logger  *slog.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(svc service.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: svc,
		logger:  logger,
	}
}

// CreateProductRequest represents the request body for creating a product.
type CreateProductRequest struct {
	Name       string `json:"name"`
	Count      int64  `json:"count"`
	CategoryID int64  `json:"category_id"`
}

// Create handles POST /products.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}
	if req.CategoryID <= 0 {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	product, err := h.service.CreateProduct(r.Context(), req.Name, req.Count, req.CategoryID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusCreated, product)
}

// Get handles GET /products/{productID}.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "productID"))
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	product, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, product)
}

// List handles GET /products.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)

	products, totalCount, err := h.service.ListProducts(r.Context(), limit, offset)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, types.NewPaginatedResponse(products, limit, offset, totalCount))
}

// UpdateProductRequest represents the request body for a partial product update.
type UpdateProductRequest struct {
	Name  *string `json:"name"`
	Count *int64  `json:"count"`
}

// Update handles PUT /products/{productID}.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "productID"))
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	var req UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	product, err := h.service.UpdateProduct(r.Context(), id, service.ProductUpdate{
		Name:  req.Name,
		Count: req.Count,
	})
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, product)
}

// Delete handles DELETE /products/{productID}.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "productID"))
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, map[string]string{"message": "Product deleted"})
}
