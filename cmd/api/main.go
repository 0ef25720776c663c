package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/fkhayef/tabsplit/docs"
	"github.com/fkhayef/tabsplit/internal/config"
	"github.com/fkhayef/tabsplit/internal/database"
	"github.com/fkhayef/tabsplit/internal/group"
	"github.com/fkhayef/tabsplit/internal/receipt"
	"github.com/fkhayef/tabsplit/internal/share"
	"github.com/fkhayef/tabsplit/pkg/logging"
	mw "github.com/fkhayef/tabsplit/pkg/middleware"
)

// @title        Tabsplit API
// @version      1.0
// @description  Receipt splitting backend: groups, split computation and shareable payment messages.
// @BasePath     /api/v1
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	logging.Setup()

	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	slog.Info("Connected to database")

	// Group feature
	groupRepo := group.NewRepository(db)
	groupService := group.NewService(groupRepo)
	groupHandler := group.NewHandler(groupService)

	// Receipt feature (uses the group roster for stored splits)
	receiptRepo := receipt.NewRepository(db)
	receiptService := receipt.NewService(receiptRepo, groupRepo)
	receiptHandler := receipt.NewHandler(receiptService)

	// Share feature
	shareService := share.NewService(receiptRepo, cfg.PaymentHandle)
	shareHandler := share.NewHandler(shareService)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(mw.ParticipantMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		// Mount feature routers
		r.Mount("/groups", groupHandler.Routes())
		r.Mount("/receipts", receiptHandler.Routes())
		r.Mount("/share", shareHandler.Routes())
	})

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	slog.Info("Server starting", "port", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
