package main

import (
	"context"
	"fmt"
	"os"

	"github.com/futig/course-prompts/internal/pkg/formatter"
	ctxlog "github.com/futig/course-prompts/internal/pkg/logger"
	"github.com/futig/course-prompts/internal/prompt"
	promptusecase "github.com/futig/course-prompts/internal/usecase/prompt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool
	opts    prompt.Options

	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "promptctl",
	Short: "Render course prompts and their reply contracts offline",
	Long: `promptctl renders the same prompts the HTTP API serves, reading a JSON
request from a file or stdin. It is meant for reviewing prompt wording and
contracts without running the server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log render details to stderr")
	rootCmd.PersistentFlags().IntVar(&opts.HistoryWindow, "history-window", prompt.DefaultHistoryWindow, "Chat messages kept in a tutor turn")
	rootCmd.PersistentFlags().StringVar(&opts.DefaultLanguage, "default-language", prompt.DefaultLanguage, "Language used when a request leaves it unset")
	rootCmd.PersistentFlags().IntVar(&opts.DefaultQuestionCount, "default-question-count", prompt.DefaultQuestionCount, "Multiple-choice questions when a request leaves it unset")
	rootCmd.PersistentFlags().IntVar(&opts.DefaultLessonDuration, "default-lesson-duration", prompt.DefaultLessonDuration, "Lesson minutes when a request leaves it unset")

	rootCmd.AddCommand(kindsCmd, renderCmd, exportCmd)
}

func newRegistry() prompt.Registry {
	return prompt.NewRegistry(opts)
}

func newUsecase() *promptusecase.PromptUsecase {
	return promptusecase.NewUsecase(newRegistry(), formatter.NewFactory())
}

func commandContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return ctxlog.Attach(ctx, logger, zap.String("command", cmd.Name()))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
