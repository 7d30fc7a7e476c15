// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	router "paycart/internal/api"
	"paycart/internal/api/handler"
	"paycart/internal/config"
	"paycart/internal/events"
	"paycart/internal/events/kafka"
	"paycart/internal/repository"
	"paycart/internal/repository/postgres"
	"paycart/internal/service"
	"paycart/internal/util"
	"paycart/pkg/db"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB

	// Repositories
	UserRepository            repository.UserRepository
	CategoryRepository        repository.CategoryRepository
	ProductRepository         repository.ProductRepository
	TransactionRepository     repository.TransactionRepository
	TransactionItemRepository repository.TransactionItemRepository
	PaymentRepository         repository.PaymentRepository

	// Event publisher (nil when no brokers are configured)
	Publisher events.Publisher

	// Services
	UserService        service.UserService
	CategoryService    service.CategoryService
	ProductService     service.ProductService
	TransactionService service.TransactionService
	PaymentService     service.PaymentService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	// 2. Initialize Logger
	util.InitLogger()
	app.Logger = util.GetLogger()
	app.Logger.Info("Application configuration loaded successfully.")

	// 3. Connect to Database
	database, err := db.NewPostgresDB(app.Config.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = database
	app.Logger.Info("Database connection established.")

	// 4. Initialize Repositories
	app.UserRepository = postgres.NewUserRepository(app.DB)
	app.CategoryRepository = postgres.NewCategoryRepository(app.DB)
	app.ProductRepository = postgres.NewProductRepository(app.DB)
	app.TransactionRepository = postgres.NewTransactionRepository(app.DB)
	app.TransactionItemRepository = postgres.NewTransactionItemRepository(app.DB)
	app.PaymentRepository = postgres.NewPaymentRepository(app.DB)
	app.Logger.Info("Repositories initialized.")

	// 5. Initialize event publisher when brokers are configured
	if len(app.Config.KafkaBrokers) > 0 {
		app.Publisher = kafka.NewPublisher(app.Config.KafkaBrokers)
		app.Logger.Info("Kafka publisher initialized.", "brokers", app.Config.KafkaBrokers)
	}

	// 6. Initialize Services
	// Pass the concrete db.BeginTx, db.CommitTx, db.RollbackTx functions from pkg/db
	app.UserService = service.NewUserService(
		app.DB, // This is the DBTxBeginner
		app.DB, // This is the DBExecutor
		app.UserRepository,
		db.BeginTx,
		db.CommitTx,
		db.RollbackTx,
	)
	app.CategoryService = service.NewCategoryService(app.DB, app.CategoryRepository)
	app.ProductService = service.NewProductService(app.DB, app.ProductRepository, app.CategoryRepository)
	app.TransactionService = service.NewTransactionService(
		app.DB,
		app.TransactionRepository,
		app.TransactionItemRepository,
		app.ProductRepository,
		app.UserRepository,
	)
	app.PaymentService = service.NewPaymentService(
		app.DB,
		app.DB,
		app.UserRepository,
		app.PaymentRepository,
		db.BeginTx,
		db.CommitTx,
		db.RollbackTx,
		app.Publisher,
		app.Logger,
	)
	app.Logger.Info("Services initialized.")

	// 7. Initialize HTTP Handlers and Router
	userHandler := handler.NewUserHandler(app.UserService, app.Logger)
	categoryHandler := handler.NewCategoryHandler(app.CategoryService, app.Logger)
	productHandler := handler.NewProductHandler(app.ProductService, app.Logger)
	transactionHandler := handler.NewTransactionHandler(app.TransactionService, app.Logger)
	paymentHandler := handler.NewPaymentHandler(app.PaymentService, app.Logger)
	app.HTTPHandler = router.NewRouter(
		userHandler,
		categoryHandler,
		productHandler,
		transactionHandler,
		paymentHandler,
		app.Logger,
	)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.Publisher != nil {
		if err := app.Publisher.Close(); err != nil {
			app.Logger.Error("Failed to close event publisher", "error", err)
		} else {
			app.Logger.Info("Event publisher closed.")
		}
	}
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
