package builder

import (
	"fmt"
	"net/http"

	"github.com/futig/course-prompts/internal/api"
	promptapi "github.com/futig/course-prompts/internal/api/prompt"
	"github.com/futig/course-prompts/internal/config"
	"github.com/futig/course-prompts/internal/pkg/formatter"
	"github.com/futig/course-prompts/internal/pkg/validator"
	"github.com/futig/course-prompts/internal/prompt"
	promptusecase "github.com/futig/course-prompts/internal/usecase/prompt"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

func Build() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return BuildWithConfig(cfg)
}

// BuildWithConfig wires the application from an already loaded configuration.
func BuildWithConfig(cfg *config.Config) (*App, error) {
	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	registry := NewRegistry(cfg.PromptCfg)
	logger.Info("Prompt registry initialized",
		zap.Int("kinds", len(registry.Kinds())),
		zap.Int("history_window", cfg.PromptCfg.HistoryWindow),
		zap.String("default_language", cfg.PromptCfg.DefaultLanguage),
	)

	// Initialize validators
	requestValidator := validator.NewRequestValidator(cfg.PromptCfg)

	// Initialize use cases
	var ucOpts []promptusecase.Option
	if ttl := cfg.PromptCfg.ExportCacheTTL; ttl > 0 {
		ucOpts = append(ucOpts, promptusecase.WithDocumentCache(cache.New(ttl, 2*ttl), ttl))
	}
	promptUC := promptusecase.NewUsecase(registry, formatter.NewFactory(), ucOpts...)
	logger.Info("Use cases initialized", zap.Duration("export_cache_ttl", cfg.PromptCfg.ExportCacheTTL))

	// Setup API handlers
	promptHandler := promptapi.NewHandler(promptUC, requestValidator, cfg.PromptCfg.MaxBodyBytes)

	// Setup router
	router := api.SetupRouter(promptHandler, cfg, logger)
	logger.Info("HTTP router configured", zap.Bool("docs_enabled", cfg.DocsEnabled))

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  cfg.ServerCfg.ReadTimeout,
		WriteTimeout: cfg.ServerCfg.WriteTimeout,
		IdleTimeout:  cfg.ServerCfg.IdleTimeout,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server:          server,
		logger:          logger,
		shutdownTimeout: cfg.ServerCfg.ShutdownTimeout,
	}, nil
}

// NewRegistry maps prompt configuration onto registry options.
func NewRegistry(cfg config.PromptConfig) prompt.Registry {
	return prompt.NewRegistry(prompt.Options{
		HistoryWindow:         cfg.HistoryWindow,
		DefaultLanguage:       cfg.DefaultLanguage,
		DefaultQuestionCount:  cfg.DefaultQuestionCount,
		DefaultLessonDuration: cfg.DefaultLessonDuration,
	})
}
