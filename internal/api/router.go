// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"paycart/internal/api/handler"
)

// NewRouter sets up and returns a new HTTP router.
func NewRouter(
	userHandler *handler.UserHandler,
	categoryHandler *handler.CategoryHandler,
	productHandler *handler.ProductHandler,
	transactionHandler *handler.TransactionHandler,
	paymentHandler *handler.PaymentHandler,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(handler.DefaultTimeout))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Route("/users", func(r chi.Router) {
		r.Post("/", userHandler.Create)
		r.Get("/", userHandler.List)
		r.Get("/{userID}", userHandler.Get)
		r.Put("/{userID}", userHandler.Update)
		r.Delete("/{userID}", userHandler.Delete)
	})

	r.Route("/categories", func(r chi.Router) {
		r.Post("/", categoryHandler.Create)
		r.Get("/", categoryHandler.List)
		r.Get("/{categoryID}", categoryHandler.Get)
		r.Put("/{categoryID}", categoryHandler.Update)
		r.Delete("/{categoryID}", categoryHandler.Delete)
	})

	r.Route("/products", func(r chi.Router) {
		r.Post("/", productHandler.Create)
		r.Get("/", productHandler.List)
		r.Get("/{productID}", productHandler.Get)
		r.Put("/{productID}", productHandler.Update)
		r.Delete("/{productID}", productHandler.Delete)
	})

	r.Route("/transactions", func(r chi.Router) {
		r.Post("/", transactionHandler.Create)
		r.Get("/", transactionHandler.List)
		r.Get("/{transactionID}", transactionHandler.Get)
		r.Delete("/{transactionID}", transactionHandler.Delete)
		r.Post("/{transactionID}/items", transactionHandler.CreateItem)
		r.Get("/{transactionID}/items", transactionHandler.ListItems)
	})

	r.Route("/transaction-items", func(r chi.Router) {
		r.Get("/{itemID}", transactionHandler.GetItem)
		r.Delete("/{itemID}", transactionHandler.DeleteItem)
	})

	r.Route("/payments", func(r chi.Router) {
		r.Post("/", paymentHandler.Create)
		r.Get("/", paymentHandler.List)
		r.Get("/{paymentID}", paymentHandler.Get)
		r.Put("/{paymentID}", paymentHandler.Update)
		r.Delete("/{paymentID}", paymentHandler.Delete)
	})

	return r
}
