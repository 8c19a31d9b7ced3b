package entity

type PromptKind string

const (
	PromptMultipleChoiceTest PromptKind = "multiple_choice_test"
	PromptOpenEndedTest      PromptKind = "open_ended_test"
	PromptAnswerCheck        PromptKind = "answer_check"
	PromptBatchAnswerCheck   PromptKind = "batch_answer_check"
	PromptCourseStructure    PromptKind = "course_structure"
	PromptCourseEdit         PromptKind = "course_edit"
	PromptCourseTitle        PromptKind = "course_title"
	PromptLessonContent      PromptKind = "lesson_content"
	PromptChatTurn           PromptKind = "chat_turn"
)

// PromptKinds lists every kind in route order.
func PromptKinds() []PromptKind {
	return []PromptKind{
		PromptMultipleChoiceTest,
		PromptOpenEndedTest,
		PromptAnswerCheck,
		PromptBatchAnswerCheck,
		PromptCourseStructure,
		PromptCourseEdit,
		PromptCourseTitle,
		PromptLessonContent,
		PromptChatTurn,
	}
}

func (k PromptKind) IsValid() bool {
	for _, known := range PromptKinds() {
		if k == known {
			return true
		}
	}
	return false
}

type ReplyFormat string

const (
	ReplyFormatJSON     ReplyFormat = "json"
	ReplyFormatText     ReplyFormat = "text"
	ReplyFormatMarkdown ReplyFormat = "markdown"
)

// Contract describes the reply shape a rendered prompt demands from the LLM.
// Keys stay in English regardless of Language; only the values of
// LocalizedKeys are written in Language.
type Contract struct {
	Format        ReplyFormat    `json:"format"`
	Language      string         `json:"language"`
	Keys          []string       `json:"keys,omitempty"`
	LocalizedKeys []string       `json:"localized_keys,omitempty"`
	Schema        map[string]any `json:"schema,omitempty"`
}

// RenderedPrompt is the text payload handed to the LLM-invocation collaborator.
type RenderedPrompt struct {
	Kind     PromptKind `json:"kind"`
	Text     string     `json:"prompt"`
	Contract Contract   `json:"contract"`
}

// CourseEditResult is the outcome of the course-edit builder: either a
// prompt for the LLM or, on the title fast path, the updated course itself.
type CourseEditResult struct {
	Prompt *RenderedPrompt
	Course CourseDocument
}

// IsDirect reports whether the edit was resolved without an LLM round-trip.
func (r *CourseEditResult) IsDirect() bool {
	return r != nil && r.Course != nil
}
