package prompt

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/futig/course-prompts/internal/config"
	"github.com/futig/course-prompts/internal/entity"
	"github.com/futig/course-prompts/internal/pkg/formatter"
	"github.com/futig/course-prompts/internal/pkg/validator"
	core "github.com/futig/course-prompts/internal/prompt"
	promptusecase "github.com/futig/course-prompts/internal/usecase/prompt"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestRouter(maxBody int64) http.Handler {
	uc := promptusecase.NewUsecase(core.NewRegistry(core.Options{}), formatter.NewFactory())
	v := validator.NewRequestValidator(config.PromptConfig{
		MaxLessonDuration: 240,
		MaxQuestionCount:  50,
		MaxBatchItems:     10,
	})

	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(uc, v, maxBody))
	return r
}

func post(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeRender(t *testing.T, rec *httptest.ResponseRecorder) entity.RenderPromptResponse {
	t.Helper()
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp entity.RenderPromptResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestRenderEndpoints(t *testing.T) {
	router := newTestRouter(1 << 20)

	tests := []struct {
		path     string
		body     string
		kind     entity.PromptKind
		contains string
	}{
		{"/prompts/tests/multiple-choice", `{"topic":"Volcanoes","number_of_questions":3}`, entity.PromptMultipleChoiceTest, "Create 3 multiple choice questions."},
		{"/prompts/tests/open-ended", `{"topic":"Volcanoes"}`, entity.PromptOpenEndedTest, "10-15 open-ended questions"},
		{"/prompts/answers/check", `{"question":"Is lava hot?","answer":"yes","is_open":true}`, entity.PromptAnswerCheck, "User's answer: yes"},
		{"/prompts/answers/batch-check", `{"items":[{"question":"a","answer":"b"}]}`, entity.PromptBatchAnswerCheck, `"user_answer": "b"`},
		{"/prompts/courses/structure", `{"topic":"Volcanoes","knowledge_assessment":"none"}`, entity.PromptCourseStructure, `"course_title"`},
		{"/prompts/courses/title", `{"current_title":"Volcanoes 101"}`, entity.PromptCourseTitle, "Volcanoes 101"},
		{"/prompts/lessons/content", `{"lesson_title":"Magma","unit_title":"Unit 1","lesson_duration":45}`, entity.PromptLessonContent, "45-minute"},
		{"/prompts/chat/turn", `{"unit_title":"Unit 1","user_question":"What is magma?","chat_history":[{"role":"user","content":"hi"}]}`, entity.PromptChatTurn, "Student: hi"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp := decodeRender(t, post(t, router, tt.path, tt.body))
			assert.NotEmpty(t, resp.RenderID)
			assert.Equal(t, tt.kind, resp.Kind)
			assert.Contains(t, resp.Prompt, tt.contains)
			assert.NotEmpty(t, resp.Contract.Format)
		})
	}
}

func TestCourseEditModes(t *testing.T) {
	router := newTestRouter(1 << 20)

	t.Run("direct", func(t *testing.T) {
		rec := post(t, router, "/prompts/courses/edit", `{"course":{"course_title":"Old","units":[{"unit_title":"U1"}]},"user_request":"Rename it to Fresh"}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp entity.CourseEditResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, entity.CourseEditModeDirect, resp.Mode)
		assert.Equal(t, "Fresh", resp.Course["course_title"])
		assert.Equal(t, []any{map[string]any{"unit_title": "U1"}}, resp.Course["units"])
		assert.Empty(t, resp.Prompt)
		assert.Nil(t, resp.Contract)
	})

	t.Run("prompt", func(t *testing.T) {
		rec := post(t, router, "/prompts/courses/edit", `{"course":{"course_title":"Old"},"user_request":"Add a unit on basalt"}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp entity.CourseEditResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, entity.CourseEditModePrompt, resp.Mode)
		assert.Contains(t, resp.Prompt, "Add a unit on basalt")
		require.NotNil(t, resp.Contract)
	})
}

func TestErrorMapping(t *testing.T) {
	router := newTestRouter(1 << 20)

	tests := []struct {
		name   string
		path   string
		body   string
		status int
		msg    string
	}{
		{"missing topic", "/prompts/tests/open-ended", `{}`, http.StatusBadRequest, "topic"},
		{"malformed json", "/prompts/tests/open-ended", `{"topic":`, http.StatusBadRequest, "invalid request body"},
		{"batch too large", "/prompts/answers/batch-check", `{"items":[` + strings.TrimSuffix(strings.Repeat(`{"question":"q","answer":"a"},`, 11), ",") + `]}`, http.StatusBadRequest, "validation failed"},
		{"bad role", "/prompts/chat/turn", `{"unit_title":"u","user_question":"q","chat_history":[{"role":"system","content":"x"}]}`, http.StatusBadRequest, "chat_history[0]"},
		{"missing answer in batch", "/prompts/answers/batch-check", `{"items":[{"question":"q","answer":"a"},{"question":"q2"}]}`, http.StatusBadRequest, "items[1].answer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, router, tt.path, tt.body)
			assert.Equal(t, tt.status, rec.Code)

			var body entity.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, http.StatusText(tt.status), body.Error)
			assert.Contains(t, body.Message, tt.msg)
		})
	}
}

func TestBodyLimit(t *testing.T) {
	router := newTestRouter(64)

	rec := post(t, router, "/prompts/tests/open-ended", `{"topic":"`+strings.Repeat("x", 200)+`"}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestExport(t *testing.T) {
	router := newTestRouter(1 << 20)
	body := `{"kind":"chat_turn","prompt":"Student's question: why?","contract":{"format":"text","language":"english"}}`

	t.Run("markdown by default", func(t *testing.T) {
		rec := post(t, router, "/prompts/export", body)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		assert.Equal(t, "text/markdown; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="chat_turn.md"`, rec.Header().Get("Content-Disposition"))
		assert.Contains(t, rec.Body.String(), "# chat_turn")
		assert.Contains(t, rec.Body.String(), "Format: text")
		assert.Contains(t, rec.Body.String(), "Student's question: why?")
	})

	t.Run("yaml", func(t *testing.T) {
		rec := post(t, router, "/prompts/export?format=yml", body)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Body.String(), "title: chat_turn")
	})

	t.Run("unsupported format", func(t *testing.T) {
		rec := post(t, router, "/prompts/export?format=rtf", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown kind", func(t *testing.T) {
		rec := post(t, router, "/prompts/export", `{"kind":"../x","prompt":"hi"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, rec.Header().Get("Content-Disposition"))
	})

	t.Run("empty prompt", func(t *testing.T) {
		rec := post(t, router, "/prompts/export", `{"kind":"chat_turn"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestToExportFormat(t *testing.T) {
	assert.Equal(t, entity.FormatMarkdown, toExportFormat(""))
	assert.Equal(t, entity.FormatMarkdown, toExportFormat("MD"))
	assert.Equal(t, entity.FormatYAML, toExportFormat("yml"))
	assert.Equal(t, entity.FormatPDF, toExportFormat(" pdf "))
	assert.Equal(t, entity.ExportFormat("rtf"), toExportFormat("rtf"))
}
