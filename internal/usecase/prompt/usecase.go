package prompt

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/futig/course-prompts/internal/entity"
	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// PromptUsecase renders prompts for the outer surfaces: it stamps every
// render with an id, logs it and exports prompt sheets as documents.
type PromptUsecase struct {
	builder    PromptBuilder
	formatters FormatterFactory
	documents  DocumentCache
	cacheTTL   time.Duration
	newID      func() string
}

type Option func(*PromptUsecase)

// WithDocumentCache keeps exported documents for ttl so repeated downloads
// of the same sheet skip PDF/DOCX rendering.
func WithDocumentCache(c DocumentCache, ttl time.Duration) Option {
	return func(uc *PromptUsecase) {
		uc.documents = c
		uc.cacheTTL = ttl
	}
}

// NewUsecase creates a new prompt use case
func NewUsecase(builder PromptBuilder, formatters FormatterFactory, opts ...Option) *PromptUsecase {
	uc := &PromptUsecase{
		builder:    builder,
		formatters: formatters,
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *PromptUsecase) MultipleChoiceTest(ctx context.Context, req *entity.MultipleChoiceTestRequest) (*entity.RenderPromptResponse, error) {
	p, err := uc.builder.BuildMultipleChoiceTest(*req)
	return uc.stamp(ctx, entity.PromptMultipleChoiceTest, p, err)
}

func (uc *PromptUsecase) OpenEndedTest(ctx context.Context, req *entity.OpenEndedTestRequest) (*entity.RenderPromptResponse, error) {
	p, err := uc.builder.BuildOpenEndedTest(*req)
	return uc.stamp(ctx, entity.PromptOpenEndedTest, p, err)
}

func (uc *PromptUsecase) AnswerCheck(ctx context.Context, req *entity.AnswerCheckRequest) (*entity.RenderPromptResponse, error) {
	p, err := uc.builder.BuildAnswerCheck(*req)
	return uc.stamp(ctx, entity.PromptAnswerCheck, p, err)
}

func (uc *PromptUsecase) BatchAnswerCheck(ctx context.Context, req *entity.BatchAnswerCheckRequest) (*entity.RenderPromptResponse, error) {
	ctxzap.Debug(ctx, "correlating answer batch", zap.Int("items", len(req.Items)))

	p, err := uc.builder.BuildBatchAnswerCheck(*req)
	return uc.stamp(ctx, entity.PromptBatchAnswerCheck, p, err)
}

func (uc *PromptUsecase) CourseStructure(ctx context.Context, req *entity.CourseStructureRequest) (*entity.RenderPromptResponse, error) {
	p, err := uc.builder.BuildCourseStructure(*req)
	return uc.stamp(ctx, entity.PromptCourseStructure, p, err)
}

// CourseEdit resolves rename requests directly and renders the edit prompt
// for everything else.
func (uc *PromptUsecase) CourseEdit(ctx context.Context, req *entity.CourseEditRequest) (*entity.CourseEditResponse, error) {
	res, err := uc.builder.BuildCourseEdit(*req)
	if err != nil {
		return nil, fmt.Errorf("build %s prompt: %w", entity.PromptCourseEdit, err)
	}

	renderID := uc.newID()
	if res.IsDirect() {
		ctxzap.Info(ctx, "course title updated without prompt",
			zap.String("render_id", renderID),
			zap.Any("course_title", res.Course[entity.CourseTitleKey]),
		)
	} else {
		uc.logRendered(ctx, renderID, res.Prompt)
	}

	return toCourseEditResponse(renderID, res), nil
}

func (uc *PromptUsecase) CourseTitle(ctx context.Context, req *entity.CourseTitleRequest) (*entity.RenderPromptResponse, error) {
	p, err := uc.builder.BuildCourseTitle(*req)
	return uc.stamp(ctx, entity.PromptCourseTitle, p, err)
}

func (uc *PromptUsecase) LessonContent(ctx context.Context, req *entity.LessonContentRequest) (*entity.RenderPromptResponse, error) {
	p, err := uc.builder.BuildLessonContent(*req)
	return uc.stamp(ctx, entity.PromptLessonContent, p, err)
}

func (uc *PromptUsecase) ChatTurn(ctx context.Context, req *entity.ChatTurnRequest) (*entity.RenderPromptResponse, error) {
	ctxzap.Debug(ctx, "rendering chat turn", zap.Int("history_messages", len(req.ChatHistory)))

	p, err := uc.builder.BuildChatTurn(*req)
	return uc.stamp(ctx, entity.PromptChatTurn, p, err)
}

// Export renders a prompt sheet (contract summary plus prompt body) in the
// requested document format.
func (uc *PromptUsecase) Export(ctx context.Context, req *entity.ExportPromptRequest, format entity.ExportFormat) (*entity.ExportedDocument, error) {
	key, cacheable := uc.exportKey(req, format)
	if cacheable {
		if cached, ok := uc.documents.Get(key); ok {
			if doc, ok := cached.(*entity.ExportedDocument); ok {
				ctxzap.Debug(ctx, "prompt export served from cache", zap.String("format", string(format)))
				return doc, nil
			}
		}
	}

	fmtr, err := uc.formatters.Create(format)
	if err != nil {
		return nil, err
	}

	doc, err := toDocument(req)
	if err != nil {
		return nil, err
	}

	content, err := fmtr.Format(doc)
	if err != nil {
		return nil, fmt.Errorf("format %s document: %w", format, err)
	}

	ctxzap.Info(ctx, "prompt exported",
		zap.String("kind", string(req.Kind)),
		zap.String("format", string(format)),
		zap.Int("bytes", len(content)),
	)

	exported := &entity.ExportedDocument{
		FileName:    fmt.Sprintf("%s%s", documentTitle(req.Kind), fmtr.FileExtension()),
		ContentType: fmtr.ContentType(),
		Content:     content,
	}
	if cacheable {
		uc.documents.Set(key, exported, uc.cacheTTL)
	}
	return exported, nil
}

func (uc *PromptUsecase) exportKey(req *entity.ExportPromptRequest, format entity.ExportFormat) (string, bool) {
	if uc.documents == nil || uc.cacheTTL <= 0 {
		return "", false
	}
	data, err := json.Marshal(struct {
		Format  entity.ExportFormat         `json:"format"`
		Request *entity.ExportPromptRequest `json:"request"`
	}{format, req})
	if err != nil {
		return "", false
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), true
}

// Render decodes body as the request type of kind and renders it. The
// result is either *entity.RenderPromptResponse or, for course edits,
// *entity.CourseEditResponse.
func (uc *PromptUsecase) Render(ctx context.Context, kind entity.PromptKind, body []byte) (any, error) {
	switch kind {
	case entity.PromptMultipleChoiceTest:
		return dispatch(ctx, body, uc.MultipleChoiceTest)
	case entity.PromptOpenEndedTest:
		return dispatch(ctx, body, uc.OpenEndedTest)
	case entity.PromptAnswerCheck:
		return dispatch(ctx, body, uc.AnswerCheck)
	case entity.PromptBatchAnswerCheck:
		return dispatch(ctx, body, uc.BatchAnswerCheck)
	case entity.PromptCourseStructure:
		return dispatch(ctx, body, uc.CourseStructure)
	case entity.PromptCourseEdit:
		return dispatch(ctx, body, uc.CourseEdit)
	case entity.PromptCourseTitle:
		return dispatch(ctx, body, uc.CourseTitle)
	case entity.PromptLessonContent:
		return dispatch(ctx, body, uc.LessonContent)
	case entity.PromptChatTurn:
		return dispatch(ctx, body, uc.ChatTurn)
	default:
		return nil, fmt.Errorf("%w: unknown prompt kind %q", entity.ErrInvalidParameter, kind)
	}
}

func dispatch[Req, Resp any](ctx context.Context, body []byte, run func(context.Context, *Req) (*Resp, error)) (any, error) {
	var req Req
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, fmt.Errorf("%w: decode request: %v", entity.ErrInvalidParameter, err)
	}
	resp, err := run(ctx, &req)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (uc *PromptUsecase) stamp(ctx context.Context, kind entity.PromptKind, p *entity.RenderedPrompt, err error) (*entity.RenderPromptResponse, error) {
	if err != nil {
		return nil, fmt.Errorf("build %s prompt: %w", kind, err)
	}

	renderID := uc.newID()
	uc.logRendered(ctx, renderID, p)
	return toRenderResponse(renderID, p), nil
}

func (uc *PromptUsecase) logRendered(ctx context.Context, renderID string, p *entity.RenderedPrompt) {
	ctxzap.Info(ctx, "prompt rendered",
		zap.String("render_id", renderID),
		zap.String("kind", string(p.Kind)),
		zap.String("reply_format", string(p.Contract.Format)),
		zap.String("language", p.Contract.Language),
		zap.Int("prompt_length", len(p.Text)),
	)
}
