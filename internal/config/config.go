package config

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr string       `env:"SERVER_ADDR,notEmpty"`
	ServerCfg  ServerConfig `envPrefix:"SERVER_"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL,notEmpty"`

	// Prompt assembly defaults and request limits
	PromptCfg PromptConfig `envPrefix:"PROMPT_"`

	// Serve Swagger UI under /docs
	DocsEnabled bool `env:"DOCS_ENABLED" envDefault:"true"`

	// Environment (set from flag, not from env var)
	Environment string
}

type ServerConfig struct {
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

type PromptConfig struct {
	HistoryWindow         int    `env:"HISTORY_WINDOW" envDefault:"5"`
	DefaultLanguage       string `env:"DEFAULT_LANGUAGE" envDefault:"english"`
	DefaultLessonDuration int    `env:"DEFAULT_LESSON_DURATION" envDefault:"15"`
	DefaultQuestionCount  int    `env:"DEFAULT_QUESTION_COUNT" envDefault:"5"`

	MaxLessonDuration int   `env:"MAX_LESSON_DURATION" envDefault:"240"`
	MaxQuestionCount  int   `env:"MAX_QUESTION_COUNT" envDefault:"50"`
	MaxBatchItems     int   `env:"MAX_BATCH_ITEMS" envDefault:"100"`
	MaxBodyBytes      int64 `env:"MAX_BODY_BYTES" envDefault:"1048576"` // 1 MiB

	// 0 disables the export document cache
	ExportCacheTTL time.Duration `env:"EXPORT_CACHE_TTL" envDefault:"10m"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	return Load(*envFlag)
}

// Load reads the env file for environment (if present) and parses the
// process environment into a validated Config.
func Load(environment string) (*Config, error) {
	envFile := getEnvFile(environment)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = environment

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	var errors []string

	p := cfg.PromptCfg

	if p.HistoryWindow < 1 || p.HistoryWindow > 50 {
		errors = append(errors, fmt.Sprintf("PROMPT_HISTORY_WINDOW must be between 1 and 50, got %d", p.HistoryWindow))
	}

	if strings.TrimSpace(p.DefaultLanguage) == "" {
		errors = append(errors, "PROMPT_DEFAULT_LANGUAGE must not be blank")
	}

	if p.MaxLessonDuration < 1 || p.MaxLessonDuration > 600 {
		errors = append(errors, fmt.Sprintf("PROMPT_MAX_LESSON_DURATION must be between 1 and 600 minutes, got %d", p.MaxLessonDuration))
	}

	if p.DefaultLessonDuration < 1 || p.DefaultLessonDuration > p.MaxLessonDuration {
		errors = append(errors, fmt.Sprintf("PROMPT_DEFAULT_LESSON_DURATION must be between 1 and PROMPT_MAX_LESSON_DURATION(%d), got %d", p.MaxLessonDuration, p.DefaultLessonDuration))
	}

	if p.MaxQuestionCount < 1 || p.MaxQuestionCount > 200 {
		errors = append(errors, fmt.Sprintf("PROMPT_MAX_QUESTION_COUNT must be between 1 and 200, got %d", p.MaxQuestionCount))
	}

	if p.DefaultQuestionCount < 1 || p.DefaultQuestionCount > p.MaxQuestionCount {
		errors = append(errors, fmt.Sprintf("PROMPT_DEFAULT_QUESTION_COUNT must be between 1 and PROMPT_MAX_QUESTION_COUNT(%d), got %d", p.MaxQuestionCount, p.DefaultQuestionCount))
	}

	if p.MaxBatchItems < 1 || p.MaxBatchItems > 1000 {
		errors = append(errors, fmt.Sprintf("PROMPT_MAX_BATCH_ITEMS must be between 1 and 1000, got %d", p.MaxBatchItems))
	}

	if p.MaxBodyBytes < 1024 {
		errors = append(errors, fmt.Sprintf("PROMPT_MAX_BODY_BYTES must be at least 1024, got %d", p.MaxBodyBytes))
	}

	if p.ExportCacheTTL < 0 {
		errors = append(errors, fmt.Sprintf("PROMPT_EXPORT_CACHE_TTL must not be negative, got %s", p.ExportCacheTTL))
	}

	if cfg.ServerCfg.ShutdownTimeout <= 0 {
		errors = append(errors, "SERVER_SHUTDOWN_TIMEOUT must be positive")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation errors:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
