package prompt

import (
	"fmt"

	"github.com/futig/course-prompts/internal/entity"
)

const TutorName = "Quillio"

var chatTurnTemplate = mustTemplate(entity.PromptChatTurn, `
You are a friendly and encouraging AI tutor named {{.Tutor}}, helping a student learn about {{.UnitTitle}}.
You must only answer questions related to the lesson's topic.

{{.LessonFragment}}
{{if .History}}
Previous conversation:
{{.History}}
{{end}}
Student's question: {{.Question}}

Please provide a helpful, clear, and concise response to the student's question.
- If the question is off-topic, gently guide the conversation back to the lesson.
- If you don't know the answer, say so rather than making up information.
- Keep your response focused and educational, in plain text without Markdown.
- Respond in {{.Language}}.
`)

// BuildChatTurn renders one tutoring turn. Only the last HistoryWindow
// messages of the transcript are included.
func (r Registry) BuildChatTurn(req entity.ChatTurnRequest) (*entity.RenderedPrompt, error) {
	err := firstError(
		requireNonEmpty("unit_title", req.UnitTitle),
		requireNonEmpty("user_question", req.UserQuestion),
	)
	if err != nil {
		return nil, err
	}
	for i := range req.ChatHistory {
		if err := req.ChatHistory[i].Role.Validate(); err != nil {
			return nil, fmt.Errorf("chat_history[%d]: %w", i, err)
		}
	}

	lessonFragment, _, err := ContentFragment(LabelLessonContent,
		"The student is viewing a lesson with the following content. You MUST treat it as ground truth.",
		req.LessonContent)
	if err != nil {
		return nil, err
	}

	language := r.language(req.Language)
	text, err := render(chatTurnTemplate, map[string]any{
		"Tutor":          TutorName,
		"UnitTitle":      req.UnitTitle,
		"LessonFragment": lessonFragment,
		"History":        RenderHistory(req.ChatHistory, r.opts.HistoryWindow),
		"Question":       req.UserQuestion,
		"Language":       language,
	})
	if err != nil {
		return nil, err
	}

	return &entity.RenderedPrompt{
		Kind:     entity.PromptChatTurn,
		Text:     text,
		Contract: textContract(entity.ReplyFormatText, language),
	}, nil
}
