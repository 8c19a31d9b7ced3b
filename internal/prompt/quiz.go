package prompt

import (
	"encoding/json"
	"fmt"

	"github.com/futig/course-prompts/internal/entity"
)

const (
	MinOpenEndedQuestions = 10
	MaxOpenEndedQuestions = 15
)

var (
	multipleChoiceKeys = []string{"test-name", "topic", "questions", "question", "type", "options", "option1", "option2", "option3", "option4"}
	multipleChoiceText = []string{"test-name", "topic", "question", "option1", "option2", "option3", "option4"}

	openEndedKeys = []string{"test-name", "topic", "questions", "question", "type"}
	openEndedText = []string{"test-name", "topic", "question"}
)

var multipleChoiceTemplate = mustTemplate(entity.PromptMultipleChoiceTest, `
You are creating a test on the topic: {{.Topic}}.
{{.AdditionalContext}}
{{if .Profile}}Consider the following user profile to calibrate the tone, wording and examples of the questions (it never overrides the constraints below): {{.Profile}}{{end}}
{{.LessonFragment}}

Create {{.Count}} multiple choice questions.

IMPORTANT CONSTRAINTS:
- Each question must have EXACTLY ONE correct answer.
- Do NOT create questions where multiple options are correct (e.g., "Which of the following are true: 1,2,4").
- Do NOT create questions asking to "select all that apply".
- Each question must have exactly 4 options, with exactly 1 of them correct.
- Make sure the incorrect options are plausible distractors but clearly wrong.
- Do NOT mark or hint which option is correct anywhere in the response.

{{.LanguageRules}}
{{.JSONOnly}}

Use this format:

{
  "test-name": "Sample Test Name",
  "topic": {{.TopicJSON}},
  "questions": [
    {
      "question": "Sample question text?",
      "type": "single-answer",
      "options": {
        "option1": "Answer A",
        "option2": "Answer B",
        "option3": "Answer C",
        "option4": "Answer D"
      }
    }
  ]
}
`)

var openEndedTemplate = mustTemplate(entity.PromptOpenEndedTest, `
Create 10-15 open-ended questions to assess someone's knowledge on "{{.Topic}}".
{{.AdditionalContext}}

{{.LanguageRules}}
{{.JSONOnly}}

Respond in this JSON format:

{
  "test-name": "Open Test",
  "topic": {{.TopicJSON}},
  "questions": [
    {
      "question": "Explain how XYZ works...",
      "type": "open-ended"
    }
  ]
}
`)

// BuildMultipleChoiceTest renders the single-answer multiple-choice test prompt.
func (r Registry) BuildMultipleChoiceTest(req entity.MultipleChoiceTestRequest) (*entity.RenderedPrompt, error) {
	if err := requireNonEmpty("topic", req.Topic); err != nil {
		return nil, err
	}

	lessonFragment, _, err := ContentFragment(LabelLessonContent,
		"The following is the content of the lessons from this unit. You MUST base your questions directly on this material and treat it as ground truth.",
		req.LessonContent)
	if err != nil {
		return nil, err
	}

	profile, _ := ProfileFragment(req.UserProfile)
	language := r.language(req.Language)
	count := r.questionCount(req.NumberOfQuestions)

	text, err := render(multipleChoiceTemplate, map[string]any{
		"Topic":             req.Topic,
		"TopicJSON":         jsonString(req.Topic),
		"AdditionalContext": req.AdditionalContext,
		"Profile":           profile,
		"LessonFragment":    lessonFragment,
		"Count":             count,
		"LanguageRules":     LanguageRules(language, multipleChoiceKeys, multipleChoiceText),
		"JSONOnly":          JSONOnlyRule,
	})
	if err != nil {
		return nil, err
	}

	return &entity.RenderedPrompt{
		Kind:     entity.PromptMultipleChoiceTest,
		Text:     text,
		Contract: jsonContract(language, multipleChoiceKeys, multipleChoiceText, MultipleChoiceTestSchema(count)),
	}, nil
}

// BuildOpenEndedTest renders the open-ended test prompt.
func (r Registry) BuildOpenEndedTest(req entity.OpenEndedTestRequest) (*entity.RenderedPrompt, error) {
	if err := requireNonEmpty("topic", req.Topic); err != nil {
		return nil, err
	}

	language := r.language(req.Language)
	text, err := render(openEndedTemplate, map[string]any{
		"Topic":             req.Topic,
		"TopicJSON":         jsonString(req.Topic),
		"AdditionalContext": req.AdditionalContext,
		"LanguageRules":     LanguageRules(language, openEndedKeys, openEndedText),
		"JSONOnly":          JSONOnlyRule,
	})
	if err != nil {
		return nil, err
	}

	return &entity.RenderedPrompt{
		Kind:     entity.PromptOpenEndedTest,
		Text:     text,
		Contract: jsonContract(language, openEndedKeys, openEndedText, OpenEndedTestSchema()),
	}, nil
}

// MultipleChoiceTestSchema expects exactly count questions with four options
// each. The correct option is deliberately absent from the shape.
func MultipleChoiceTestSchema(count int) map[string]any {
	options := objectSchema(map[string]any{
		"option1": stringSchema(),
		"option2": stringSchema(),
		"option3": stringSchema(),
		"option4": stringSchema(),
	}, "option1", "option2", "option3", "option4")

	question := objectSchema(map[string]any{
		"question": stringSchema(),
		"type":     enumSchema("single-answer"),
		"options":  options,
	}, "question", "type", "options")

	return objectSchema(map[string]any{
		"test-name": stringSchema(),
		"topic":     stringSchema(),
		"questions": arraySchema(question, count, count),
	}, "test-name", "topic", "questions")
}

func OpenEndedTestSchema() map[string]any {
	question := objectSchema(map[string]any{
		"question": stringSchema(),
		"type":     enumSchema("open-ended"),
	}, "question", "type")

	return objectSchema(map[string]any{
		"test-name": stringSchema(),
		"topic":     stringSchema(),
		"questions": arraySchema(question, MinOpenEndedQuestions, MaxOpenEndedQuestions),
	}, "test-name", "topic", "questions")
}

// jsonString quotes s as a JSON string literal for use inside format examples.
func jsonString(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return fmt.Sprintf("%q", s)
	}
	return string(b)
}
