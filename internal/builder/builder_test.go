package builder

import (
	"context"
	"testing"
	"time"

	"github.com/futig/course-prompts/internal/config"
	"github.com/futig/course-prompts/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		ServerAddr: "127.0.0.1:0",
		LogLevel:   "error",
		ServerCfg: config.ServerConfig{
			ReadTimeout:     time.Second,
			WriteTimeout:    time.Second,
			IdleTimeout:     time.Second,
			RequestTimeout:  time.Second,
			ShutdownTimeout: time.Second,
		},
		PromptCfg: config.PromptConfig{
			HistoryWindow:         3,
			DefaultLanguage:       "german",
			DefaultLessonDuration: 20,
			DefaultQuestionCount:  7,
			MaxLessonDuration:     240,
			MaxQuestionCount:      50,
			MaxBatchItems:         100,
			MaxBodyBytes:          1 << 20,
		},
	}
}

func TestNewRegistryUsesConfig(t *testing.T) {
	r := NewRegistry(testConfig().PromptCfg)

	p, err := r.BuildMultipleChoiceTest(entity.MultipleChoiceTestRequest{Topic: "Tides"})
	require.NoError(t, err)
	assert.Contains(t, p.Text, "Create 7 multiple choice questions.")
	assert.Equal(t, "german", p.Contract.Language)
}

func TestSetupLogger(t *testing.T) {
	_, err := setupLogger("info")
	assert.NoError(t, err)

	_, err = setupLogger("loud")
	assert.Error(t, err)
}

func TestAppStopsOnCancel(t *testing.T) {
	app, err := BuildWithConfig(testConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.serve(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop after cancel")
	}
}
