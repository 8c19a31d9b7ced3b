package prompt

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/futig/course-prompts/internal/entity"
	"github.com/futig/course-prompts/internal/pkg/logger"
	"github.com/futig/course-prompts/internal/pkg/response"
	"github.com/futig/course-prompts/internal/pkg/validator"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Handler struct {
	usecase      PromptUsecase
	validator    *validator.Validator
	maxBodyBytes int64
}

func NewHandler(
	usecase PromptUsecase,
	validator *validator.Validator,
	maxBodyBytes int64,
) *Handler {
	return &Handler{
		usecase:      usecase,
		validator:    validator,
		maxBodyBytes: maxBodyBytes,
	}
}

// MultipleChoiceTest handles POST /prompts/tests/multiple-choice
func (h *Handler) MultipleChoiceTest(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "MultipleChoiceTest")

	var req entity.MultipleChoiceTestRequest
	if !h.decode(ctx, w, r, &req) {
		return
	}

	if err := h.validator.ValidateMultipleChoiceTest(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "validation failed", err)
		return
	}

	ctx = logger.AddFields(ctx,
		zap.String("topic", req.Topic),
		zap.Int("number_of_questions", req.NumberOfQuestions),
	)

	resp, err := h.usecase.MultipleChoiceTest(ctx, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}

// OpenEndedTest handles POST /prompts/tests/open-ended
func (h *Handler) OpenEndedTest(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "OpenEndedTest")

	var req entity.OpenEndedTestRequest
	if !h.decode(ctx, w, r, &req) {
		return
	}

	if err := h.validator.ValidateOpenEndedTest(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "validation failed", err)
		return
	}

	resp, err := h.usecase.OpenEndedTest(ctx, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}

// AnswerCheck handles POST /prompts/answers/check
func (h *Handler) AnswerCheck(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "AnswerCheck")

	var req entity.AnswerCheckRequest
	if !h.decode(ctx, w, r, &req) {
		return
	}

	if err := h.validator.ValidateAnswerCheck(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "validation failed", err)
		return
	}

	resp, err := h.usecase.AnswerCheck(ctx, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}

// BatchAnswerCheck handles POST /prompts/answers/batch-check
func (h *Handler) BatchAnswerCheck(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "BatchAnswerCheck")

	var req entity.BatchAnswerCheckRequest
	if !h.decode(ctx, w, r, &req) {
		return
	}

	if err := h.validator.ValidateBatchAnswerCheck(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "validation failed", err)
		return
	}

	resp, err := h.usecase.BatchAnswerCheck(ctx, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}

// CourseStructure handles POST /prompts/courses/structure
func (h *Handler) CourseStructure(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "CourseStructure")

	var req entity.CourseStructureRequest
	if !h.decode(ctx, w, r, &req) {
		return
	}

	if err := h.validator.ValidateCourseStructure(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "validation failed", err)
		return
	}

	resp, err := h.usecase.CourseStructure(ctx, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}

// CourseEdit handles POST /prompts/courses/edit
func (h *Handler) CourseEdit(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "CourseEdit")

	var req entity.CourseEditRequest
	if !h.decode(ctx, w, r, &req) {
		return
	}

	if err := h.validator.ValidateCourseEdit(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "validation failed", err)
		return
	}

	resp, err := h.usecase.CourseEdit(ctx, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Debug(ctx, "course edit resolved", zap.String("mode", string(resp.Mode)))
	h.respondJSON(w, http.StatusOK, resp)
}

// CourseTitle handles POST /prompts/courses/title
func (h *Handler) CourseTitle(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "CourseTitle")

	var req entity.CourseTitleRequest
	if !h.decode(ctx, w, r, &req) {
		return
	}

	if err := h.validator.ValidateCourseTitle(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "validation failed", err)
		return
	}

	resp, err := h.usecase.CourseTitle(ctx, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}

// LessonContent handles POST /prompts/lessons/content
func (h *Handler) LessonContent(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "LessonContent")

	var req entity.LessonContentRequest
	if !h.decode(ctx, w, r, &req) {
		return
	}

	if err := h.validator.ValidateLessonContent(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "validation failed", err)
		return
	}

	ctx = logger.AddFields(ctx,
		zap.String("lesson_title", req.LessonTitle),
		zap.Int("lesson_duration", req.LessonDuration),
	)

	resp, err := h.usecase.LessonContent(ctx, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}

// ChatTurn handles POST /prompts/chat/turn
func (h *Handler) ChatTurn(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ChatTurn")

	var req entity.ChatTurnRequest
	if !h.decode(ctx, w, r, &req) {
		return
	}

	if err := h.validator.ValidateChatTurn(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "validation failed", err)
		return
	}

	resp, err := h.usecase.ChatTurn(ctx, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}

// Export handles POST /prompts/export?format=markdown|docx|pdf|yaml
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	format := toExportFormat(r.URL.Query().Get("format"))
	ctx := logger.WithAction(r.Context(), "Export", zap.String("format", string(format)))

	var req entity.ExportPromptRequest
	if !h.decode(ctx, w, r, &req) {
		return
	}

	if err := h.validator.ValidateExport(&req, format); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "validation failed", err)
		return
	}

	doc, err := h.usecase.Export(ctx, &req, format)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Attachment(w, doc)
}

// Helper methods
func (h *Handler) decode(ctx context.Context, w http.ResponseWriter, r *http.Request, dst any) bool {
	body := http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.respondError(ctx, w, http.StatusRequestEntityTooLarge, "request body too large", err)
			return false
		}
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return false
	}
	return true
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, data any) {
	response.JSON(w, status, data)
}

func (h *Handler) respondError(ctx context.Context, w http.ResponseWriter, status int, message string, err error) {
	if status >= http.StatusInternalServerError {
		ctxzap.Error(ctx, message, zap.Error(err))
		response.Error(w, status, message)
		return
	}
	ctxzap.Warn(ctx, message, zap.Error(err))
	response.Error(w, status, message+": "+err.Error())
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	if errors.Is(err, entity.ErrMissingField) || errors.Is(err, entity.ErrInvalidParameter) || errors.Is(err, entity.ErrMalformedContext) {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid parameter", err)
	} else if errors.Is(err, entity.ErrUnsupportedFormat) {
		h.respondError(ctx, w, http.StatusBadRequest, "unsupported format", err)
	} else {
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
