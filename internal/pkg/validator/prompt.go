package validator

import (
	"fmt"
	"strings"

	"github.com/futig/course-prompts/internal/config"
	"github.com/futig/course-prompts/internal/entity"
)

const maxLanguageLength = 64

// Validator enforces transport-level limits on render requests. Required
// fields are checked by the prompt builders themselves.
type Validator struct {
	cfg config.PromptConfig
}

func NewRequestValidator(cfg config.PromptConfig) *Validator {
	return &Validator{cfg: cfg}
}

func (v *Validator) ValidateMultipleChoiceTest(req *entity.MultipleChoiceTestRequest) error {
	if req.NumberOfQuestions < 0 || req.NumberOfQuestions > v.cfg.MaxQuestionCount {
		return fmt.Errorf("%w: number_of_questions must be between 0 and %d, got %d",
			entity.ErrInvalidParameter, v.cfg.MaxQuestionCount, req.NumberOfQuestions)
	}
	if err := validateProfile(req.UserProfile); err != nil {
		return err
	}
	return validateLanguage(req.Language)
}

func (v *Validator) ValidateOpenEndedTest(req *entity.OpenEndedTestRequest) error {
	return validateLanguage(req.Language)
}

func (v *Validator) ValidateAnswerCheck(req *entity.AnswerCheckRequest) error {
	for i, opt := range req.Options {
		if strings.TrimSpace(opt) == "" {
			return fmt.Errorf("%w: options[%d]", entity.ErrMissingField, i)
		}
	}
	return validateLanguage(req.Language)
}

func (v *Validator) ValidateBatchAnswerCheck(req *entity.BatchAnswerCheckRequest) error {
	if len(req.Items) > v.cfg.MaxBatchItems {
		return fmt.Errorf("%w: items must hold at most %d entries, got %d",
			entity.ErrInvalidParameter, v.cfg.MaxBatchItems, len(req.Items))
	}
	return validateLanguage(req.Language)
}

func (v *Validator) ValidateCourseStructure(req *entity.CourseStructureRequest) error {
	if err := v.validateDuration(req.LessonDuration); err != nil {
		return err
	}
	if err := validateProfile(req.UserProfile); err != nil {
		return err
	}
	return validateLanguage(req.Language)
}

func (v *Validator) ValidateCourseEdit(req *entity.CourseEditRequest) error {
	return validateLanguage(req.Language)
}

func (v *Validator) ValidateCourseTitle(req *entity.CourseTitleRequest) error {
	return validateLanguage(req.Language)
}

func (v *Validator) ValidateLessonContent(req *entity.LessonContentRequest) error {
	if err := v.validateDuration(req.LessonDuration); err != nil {
		return err
	}
	if err := validateProfile(req.UserProfile); err != nil {
		return err
	}
	return validateLanguage(req.Language)
}

func (v *Validator) ValidateChatTurn(req *entity.ChatTurnRequest) error {
	for i := range req.ChatHistory {
		if err := req.ChatHistory[i].Role.Validate(); err != nil {
			return fmt.Errorf("chat_history[%d]: %w", i, err)
		}
	}
	return validateLanguage(req.Language)
}

// ValidateExport checks an export request and the requested document format.
func (v *Validator) ValidateExport(req *entity.ExportPromptRequest, format entity.ExportFormat) error {
	if !format.IsValid() {
		return fmt.Errorf("%w: %s (expected markdown, docx, pdf or yaml)", entity.ErrUnsupportedFormat, format)
	}
	if req.Kind != "" && !req.Kind.IsValid() {
		return fmt.Errorf("%w: unknown prompt kind %q", entity.ErrInvalidParameter, truncate(string(req.Kind), 64))
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return fmt.Errorf("%w: prompt", entity.ErrMissingField)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func (v *Validator) validateDuration(minutes int) error {
	if minutes < 0 || minutes > v.cfg.MaxLessonDuration {
		return fmt.Errorf("%w: lesson_duration must be between 0 and %d minutes, got %d",
			entity.ErrInvalidParameter, v.cfg.MaxLessonDuration, minutes)
	}
	return nil
}

func validateProfile(p *entity.UserProfile) error {
	if p != nil && p.Age < 0 {
		return fmt.Errorf("%w: user_profile.age must not be negative", entity.ErrInvalidParameter)
	}
	return nil
}

func validateLanguage(language string) error {
	if len(language) > maxLanguageLength {
		return fmt.Errorf("%w: language must be at most %d bytes", entity.ErrInvalidParameter, maxLanguageLength)
	}
	return nil
}
