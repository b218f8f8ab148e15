package main

import (
	"context"
	"net/http"
	"os"

	"github.com/ryankirkland/99grind/internal/api"
	"github.com/ryankirkland/99grind/internal/config"
	"github.com/ryankirkland/99grind/internal/database"
	"github.com/ryankirkland/99grind/internal/handler"
	"github.com/ryankirkland/99grind/internal/logger"
	"github.com/ryankirkland/99grind/internal/middleware"
	"github.com/ryankirkland/99grind/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL
	db, err := database.ConnectPostgres(cfg)
	if err != nil {
		logger.Error("Database connection failed: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	// Apply schema migrations
	if err := database.Migrate(context.Background(), db); err != nil {
		logger.Error("Migration failed: %v", err)
		os.Exit(1)
	}

	// Cloudinary is optional: picture uploads answer 503 when unconfigured
	if cld, err := services.NewCloudinaryService(cfg); err != nil {
		logger.Warning("Cloudinary disabled: %v", err)
	} else {
		handler.Cloudinary = cld
	}

	// Initialize routes
	router := api.SetupRouter()

	// Wrap router with CORS middleware
	h := middleware.CORSMiddleware(router)

	// Start server
	logger.Success("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, h); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
}
