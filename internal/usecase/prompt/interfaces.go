package prompt

import (
	"time"

	"github.com/futig/course-prompts/internal/entity"
	"github.com/futig/course-prompts/internal/pkg/formatter"
)

type PromptBuilder interface {
	BuildMultipleChoiceTest(req entity.MultipleChoiceTestRequest) (*entity.RenderedPrompt, error)
	BuildOpenEndedTest(req entity.OpenEndedTestRequest) (*entity.RenderedPrompt, error)
	BuildAnswerCheck(req entity.AnswerCheckRequest) (*entity.RenderedPrompt, error)
	BuildBatchAnswerCheck(req entity.BatchAnswerCheckRequest) (*entity.RenderedPrompt, error)
	BuildCourseStructure(req entity.CourseStructureRequest) (*entity.RenderedPrompt, error)
	BuildCourseEdit(req entity.CourseEditRequest) (*entity.CourseEditResult, error)
	BuildCourseTitle(req entity.CourseTitleRequest) (*entity.RenderedPrompt, error)
	BuildLessonContent(req entity.LessonContentRequest) (*entity.RenderedPrompt, error)
	BuildChatTurn(req entity.ChatTurnRequest) (*entity.RenderedPrompt, error)
}

type FormatterFactory interface {
	Create(format entity.ExportFormat) (formatter.Formatter, error)
}

// DocumentCache holds exported documents between identical export requests.
// *cache.Cache from github.com/patrickmn/go-cache satisfies it.
type DocumentCache interface {
	Get(key string) (any, bool)
	Set(key string, value any, ttl time.Duration)
}
