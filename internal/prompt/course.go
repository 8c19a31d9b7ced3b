package prompt

import (
	"fmt"
	"strings"

	"github.com/futig/course-prompts/internal/entity"
)

const MaxCourseTitleLength = 60

var (
	courseKeys = []string{"course_title", "units", "unit_title", "lessons", "lesson_title", "estimated_time_minutes", "test", "test_title"}
	courseText = []string{"course_title", "unit_title", "lesson_title", "test_title"}
)

var courseStructureTemplate = mustTemplate(entity.PromptCourseStructure, `
A learner has completed a test on the topic: "{{.Topic}}".
Here is a qualitative assessment of their knowledge based on the test:
"{{.Assessment}}"
{{if .Answers}}
Below is a detailed breakdown of their responses:
{{.Answers}}
{{end}}
Your task:
- Based on their performance and the overall assessment, design a personalized course outline to help them improve.
{{if .Profile}}- Use the following user profile to calibrate the pacing, tone and examples of the course: {{.Profile}}
{{end}}- The course should include units. Each unit should contain lessons (with estimated completion time in minutes) and a test.
- Do NOT generate lesson or test content yet, only the structure.
- Lessons should be appropriately sequenced for progressive learning.
- Aim for lessons of about {{.Duration}} minutes each.

{{.LanguageRules}}
{{.JSONOnly}}

Return the course structure using the format:

{
  "course_title": {{.TopicJSON}},
  "units": [
    {
      "unit_title": "Unit 1: Foundations",
      "lessons": [
        {
          "lesson_title": "Lesson 1.1: Basics",
          "estimated_time_minutes": {{.Duration}}
        }
      ],
      "test": {
        "test_title": "Unit 1 Assessment"
      }
    }
  ]
}
`)

var courseTitleTemplate = mustTemplate(entity.PromptCourseTitle, `
You are an AI course title generator. The user wants to update their course title.
{{if .CurrentTitle}}
CURRENT TITLE:
{{.CurrentTitle}}
{{end}}{{if .UserRequest}}
USER REQUEST:
{{.UserRequest}}
{{end}}
INSTRUCTIONS:
1. Generate a single, concise, and engaging course title{{if .UserRequest}} based on the user's request{{else}} that improves the current title{{end}}.
2. The title should be clear, informative, and appealing to potential students.
3. Keep it under {{.MaxLength}} characters if possible.
4. Write the title in {{.Language}}.

Return ONLY the new course title, with no additional text, explanations, or quotation marks.
`)

// BuildCourseStructure renders the course-outline prompt from a learner's
// test results.
func (r Registry) BuildCourseStructure(req entity.CourseStructureRequest) (*entity.RenderedPrompt, error) {
	err := firstError(
		requireNonEmpty("topic", req.Topic),
		requireNonEmpty("knowledge_assessment", req.KnowledgeAssessment),
	)
	if err != nil {
		return nil, err
	}

	answers := make([]string, 0, len(req.AssessedAnswers))
	for _, a := range req.AssessedAnswers {
		answers = append(answers, fmt.Sprintf("Q: %s\nA: %s\nAssessment: %s", a.Question, a.Answer, a.Assessment))
	}

	profile, _ := ProfileFragment(req.UserProfile)
	language := r.language(req.Language)
	duration := r.lessonDuration(req.LessonDuration)

	text, err := render(courseStructureTemplate, map[string]any{
		"Topic":         req.Topic,
		"TopicJSON":     jsonString(req.Topic),
		"Assessment":    req.KnowledgeAssessment,
		"Answers":       strings.Join(answers, "\n\n"),
		"Profile":       profile,
		"Duration":      duration,
		"LanguageRules": LanguageRules(language, courseKeys, courseText),
		"JSONOnly":      JSONOnlyRule,
	})
	if err != nil {
		return nil, err
	}

	return &entity.RenderedPrompt{
		Kind:     entity.PromptCourseStructure,
		Text:     text,
		Contract: jsonContract(language, courseKeys, courseText, CourseSchema()),
	}, nil
}

// BuildCourseTitle renders the plain-text title prompt. Either the current
// title (to improve it) or a user request (to follow it) must be given.
func (r Registry) BuildCourseTitle(req entity.CourseTitleRequest) (*entity.RenderedPrompt, error) {
	if err := requireAnyNonEmpty([]string{"current_title", "user_request"}, req.CurrentTitle, req.UserRequest); err != nil {
		return nil, err
	}

	language := r.language(req.Language)
	text, err := render(courseTitleTemplate, map[string]any{
		"CurrentTitle": strings.TrimSpace(req.CurrentTitle),
		"UserRequest":  strings.TrimSpace(req.UserRequest),
		"MaxLength":    MaxCourseTitleLength,
		"Language":     language,
	})
	if err != nil {
		return nil, err
	}

	return &entity.RenderedPrompt{
		Kind:     entity.PromptCourseTitle,
		Text:     text,
		Contract: textContract(entity.ReplyFormatText, language),
	}, nil
}

// CourseSchema is the outline shape shared by the structure and edit prompts.
func CourseSchema() map[string]any {
	lesson := objectSchema(map[string]any{
		"lesson_title":           stringSchema(),
		"estimated_time_minutes": integerSchema(),
	}, "lesson_title", "estimated_time_minutes")

	test := objectSchema(map[string]any{
		"test_title": stringSchema(),
	}, "test_title")

	unit := objectSchema(map[string]any{
		"unit_title": stringSchema(),
		"lessons":    arraySchema(lesson, 1, 0),
		"test":       test,
	}, "unit_title", "lessons", "test")

	return objectSchema(map[string]any{
		"course_title": stringSchema(),
		"units":        arraySchema(unit, 1, 0),
	}, "course_title", "units")
}
