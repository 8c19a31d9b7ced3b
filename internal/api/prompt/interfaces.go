package prompt

import (
	"context"

	"github.com/futig/course-prompts/internal/entity"
)

type PromptUsecase interface {
	MultipleChoiceTest(ctx context.Context, req *entity.MultipleChoiceTestRequest) (*entity.RenderPromptResponse, error)
	OpenEndedTest(ctx context.Context, req *entity.OpenEndedTestRequest) (*entity.RenderPromptResponse, error)
	AnswerCheck(ctx context.Context, req *entity.AnswerCheckRequest) (*entity.RenderPromptResponse, error)
	BatchAnswerCheck(ctx context.Context, req *entity.BatchAnswerCheckRequest) (*entity.RenderPromptResponse, error)
	CourseStructure(ctx context.Context, req *entity.CourseStructureRequest) (*entity.RenderPromptResponse, error)
	CourseEdit(ctx context.Context, req *entity.CourseEditRequest) (*entity.CourseEditResponse, error)
	CourseTitle(ctx context.Context, req *entity.CourseTitleRequest) (*entity.RenderPromptResponse, error)
	LessonContent(ctx context.Context, req *entity.LessonContentRequest) (*entity.RenderPromptResponse, error)
	ChatTurn(ctx context.Context, req *entity.ChatTurnRequest) (*entity.RenderPromptResponse, error)
	Export(ctx context.Context, req *entity.ExportPromptRequest, format entity.ExportFormat) (*entity.ExportedDocument, error)
}
