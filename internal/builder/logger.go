package builder

import (
	"fmt"

	"go.uber.org/zap"
)

func setupLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.DisableStacktrace = lvl.Level() > zap.DebugLevel

	return cfg.Build()
}
