package entity

type MultipleChoiceTestRequest struct {
	Topic             string       `json:"topic"`
	AdditionalContext string       `json:"additional_context,omitempty"`
	Language          string       `json:"language,omitempty"`
	NumberOfQuestions int          `json:"number_of_questions,omitempty"`
	UserProfile       *UserProfile `json:"user_profile,omitempty"`
	LessonContent     string       `json:"lesson_content,omitempty"`
}

type OpenEndedTestRequest struct {
	Topic             string `json:"topic"`
	AdditionalContext string `json:"additional_context,omitempty"`
	Language          string `json:"language,omitempty"`
}

type AnswerCheckRequest struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Options  []string `json:"options,omitempty"`
	IsOpen   bool     `json:"is_open"`
	Language string   `json:"language,omitempty"`
}

type BatchAnswerCheckRequest struct {
	Items    []QuestionAnswer `json:"items"`
	Language string           `json:"language,omitempty"`
}

type CourseStructureRequest struct {
	Topic               string           `json:"topic"`
	KnowledgeAssessment string           `json:"knowledge_assessment"`
	AssessedAnswers     []AssessedAnswer `json:"assessed_answers,omitempty"`
	Language            string           `json:"language,omitempty"`
	LessonDuration      int              `json:"lesson_duration,omitempty"`
	UserProfile         *UserProfile     `json:"user_profile,omitempty"`
}

type CourseEditRequest struct {
	Course      CourseDocument `json:"course"`
	UserRequest string         `json:"user_request"`
	Language    string         `json:"language,omitempty"`
}

type CourseTitleRequest struct {
	CurrentTitle string `json:"current_title,omitempty"`
	UserRequest  string `json:"user_request,omitempty"`
	Language     string `json:"language,omitempty"`
}

type LessonContentRequest struct {
	LessonTitle     string       `json:"lesson_title"`
	UnitTitle       string       `json:"unit_title"`
	Language        string       `json:"language,omitempty"`
	LessonDuration  int          `json:"lesson_duration,omitempty"`
	UserProfile     *UserProfile `json:"user_profile,omitempty"`
	CourseStructure any          `json:"course_structure,omitempty"`
}

type ChatTurnRequest struct {
	LessonContent string        `json:"lesson_content"`
	UnitTitle     string        `json:"unit_title"`
	ChatHistory   []ChatMessage `json:"chat_history,omitempty"`
	UserQuestion  string        `json:"user_question"`
	Language      string        `json:"language,omitempty"`
}

type ExportPromptRequest struct {
	Kind     PromptKind `json:"kind"`
	Prompt   string     `json:"prompt"`
	Contract *Contract  `json:"contract,omitempty"`
}

type ExportFormat string

const (
	FormatMarkdown ExportFormat = "markdown"
	FormatDOCX     ExportFormat = "docx"
	FormatPDF      ExportFormat = "pdf"
	FormatYAML     ExportFormat = "yaml"
)

type RenderPromptResponse struct {
	RenderID string     `json:"render_id"`
	Kind     PromptKind `json:"kind"`
	Prompt   string     `json:"prompt"`
	Contract Contract   `json:"contract"`
}

type CourseEditMode string

const (
	CourseEditModeDirect CourseEditMode = "direct"
	CourseEditModePrompt CourseEditMode = "prompt"
)

type CourseEditResponse struct {
	RenderID string         `json:"render_id"`
	Mode     CourseEditMode `json:"mode"`
	Course   CourseDocument `json:"course,omitempty"`
	Prompt   string         `json:"prompt,omitempty"`
	Contract *Contract      `json:"contract,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func (f ExportFormat) IsValid() bool {
	switch f {
	case FormatMarkdown, FormatDOCX, FormatPDF, FormatYAML:
		return true
	default:
		return false
	}
}

// ExportedDocument is a rendered prompt sheet ready to be served as a download.
type ExportedDocument struct {
	FileName    string
	ContentType string
	Content     []byte
}
