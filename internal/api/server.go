package api

import (
	"net/http"

	"github.com/futig/course-prompts/internal/api/docs"
	"github.com/futig/course-prompts/internal/api/middleware"
	promptapi "github.com/futig/course-prompts/internal/api/prompt"
	"github.com/futig/course-prompts/internal/config"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// SetupRouter creates and configures the HTTP router
func SetupRouter(promptHandler *promptapi.Handler, cfg *config.Config, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.Recoverer)                              // Recover from panics
	r.Use(chimiddleware.RequestID)                              // Add request ID
	r.Use(middleware.Logger(logger))                            // Log requests
	r.Use(middleware.CORS)                                      // Handle CORS
	r.Use(chimiddleware.Timeout(cfg.ServerCfg.RequestTimeout)) // Default timeout

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Swagger documentation endpoints
	if cfg.DocsEnabled {
		docs.RegisterRoutes(r)
	}

	// Register routes
	promptapi.RegisterRoutes(r, promptHandler)

	return r
}
