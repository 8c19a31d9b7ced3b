package prompt

import "github.com/futig/course-prompts/internal/entity"

// Output-format markers the lesson renderer depends on.
const (
	InlineMathDelimiter  = "$"
	DisplayMathDelimiter = "$$"
	ImagePromptTag       = `[IMAGE_PROMPT: "<description>"]`
)

// LessonFormattingDirectives is embedded verbatim in every lesson prompt.
const LessonFormattingDirectives = `Mathematical Formulas:
- For inline mathematical expressions, wrap them in single dollar signs, like "$\frac{1}{2}$".
- For display-style equations (on their own line), wrap them in double dollar signs, like "$$\sum_{i=1}^{n} i = \frac{n(n + 1)}{2}$$".
- Use standard LaTeX syntax for all mathematical formulas.

Visual Aids:
- Insert AI image placeholders only when the visual would enhance understanding.
- All images must follow this format exactly:
  ` + ImagePromptTag + `
- Every description must ask for a grayscale, schematic-style diagram with no text.

Example:
[IMAGE_PROMPT: "A grayscale, schematic-style diagram with no text, showing the layers of a neural network"]

IMPORTANT: Do NOT include any text in the images themselves. Images must be grayscale, schematic diagrams.`

var lessonContentTemplate = mustTemplate(entity.PromptLessonContent, `
You are an expert AI tutor.

Generate a comprehensive, structured, and beginner-friendly lesson on the topic: "{{.LessonTitle}}".
This lesson is part of the unit: "{{.UnitTitle}}".
The entire lesson content MUST be in {{.Language}}.
{{.CourseFragment}}

Guidelines:
- Use clear Markdown formatting (## Headings, bullet points, code blocks if needed).
- Include step-by-step explanations, illustrative examples, and analogies.
- The lesson's length MUST be calibrated for a {{.Duration}}-minute completion time for an average student. A shorter duration means a more concise, high-level overview. A longer duration allows for more depth, detail, and examples.
- For this duration, write {{.Depth}}.
- Use concise, easy-to-understand language for learners at various levels.
{{if .Profile}}- Use the following user profile to calibrate the tone, examples, and analogies of the lesson: {{.Profile}} For instance, if their bio mentions programming, use technical analogies.
{{end}}
{{.Directives}}

The lesson should be clear, logically organized, and visually supported where appropriate.
`)

// lessonDepth maps a duration to a qualitative depth; longer never means
// shallower.
func lessonDepth(minutes int) string {
	switch {
	case minutes <= 10:
		return "a concise, high-level overview that covers only the essential ideas"
	case minutes <= 30:
		return "a balanced lesson with the key explanations and a few worked examples"
	default:
		return "an in-depth lesson with detailed explanations, several worked examples, and practice-oriented insights"
	}
}

// BuildLessonContent renders the Markdown lesson-authoring prompt.
func (r Registry) BuildLessonContent(req entity.LessonContentRequest) (*entity.RenderedPrompt, error) {
	err := firstError(
		requireNonEmpty("lesson_title", req.LessonTitle),
		requireNonEmpty("unit_title", req.UnitTitle),
	)
	if err != nil {
		return nil, err
	}

	courseFragment, _, err := ContentFragment(LabelCourseStructure,
		"The following is the full structure of the course this lesson is part of. You MUST treat it as the structural basis for this lesson and may reference other lessons from it.",
		req.CourseStructure)
	if err != nil {
		return nil, err
	}

	profile, _ := ProfileFragment(req.UserProfile)
	language := r.language(req.Language)
	duration := r.lessonDuration(req.LessonDuration)

	text, err := render(lessonContentTemplate, map[string]any{
		"LessonTitle":    req.LessonTitle,
		"UnitTitle":      req.UnitTitle,
		"Language":       language,
		"CourseFragment": courseFragment,
		"Duration":       duration,
		"Depth":          lessonDepth(duration),
		"Profile":        profile,
		"Directives":     LessonFormattingDirectives,
	})
	if err != nil {
		return nil, err
	}

	return &entity.RenderedPrompt{
		Kind:     entity.PromptLessonContent,
		Text:     text,
		Contract: textContract(entity.ReplyFormatMarkdown, language),
	}, nil
}
