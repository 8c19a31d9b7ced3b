package prompt

import (
	"fmt"
	"strings"

	"github.com/futig/course-prompts/internal/entity"
)

var batchKeys = []string{assessmentsKey, idKey, assessmentKey}

var answerCheckTemplate = mustTemplate(entity.PromptAnswerCheck, `
Reply with "correct" or "incorrect", then briefly explain your reasoning in {{.Language}}.
Keep the first word ("correct" or "incorrect") in English so it can be read automatically.
Your entire response MUST be only the verdict followed by the explanation, with no other text.

Question: {{.Question}}
{{if .Options}}Options:
{{.Options}}
{{end}}User's answer: {{.Answer}}
`)

var batchCheckTemplate = mustTemplate(entity.PromptBatchAnswerCheck, `
You are an expert evaluator. Below is a list of questions and the user's answers.
For each question, reply with "correct" or "incorrect" and then provide a brief, one-sentence explanation for your reasoning in {{.Language}}.

Evaluate the following items:
{{.Items}}

{{.Contract}}

Example format:
{
  "assessments": [
    {
      "id": <id of the question>,
      "assessment": "<correct|incorrect>. <one-sentence explanation>"
    }
  ]
}
`)

// BuildAnswerCheck renders the prompt grading a single answer. Closed
// questions must carry their options.
func (r Registry) BuildAnswerCheck(req entity.AnswerCheckRequest) (*entity.RenderedPrompt, error) {
	err := firstError(
		requireNonEmpty("question", req.Question),
		requireNonEmpty("answer", req.Answer),
	)
	if err != nil {
		return nil, err
	}
	if !req.IsOpen && len(req.Options) == 0 {
		return nil, fmt.Errorf("%w: options", entity.ErrMissingField)
	}

	var options string
	if !req.IsOpen {
		lines := make([]string, len(req.Options))
		for i, o := range req.Options {
			lines[i] = fmt.Sprintf("%d. %s", i+1, o)
		}
		options = strings.Join(lines, "\n")
	}

	language := r.language(req.Language)
	text, err := render(answerCheckTemplate, map[string]any{
		"Language": language,
		"Question": req.Question,
		"Options":  options,
		"Answer":   req.Answer,
	})
	if err != nil {
		return nil, err
	}

	return &entity.RenderedPrompt{
		Kind:     entity.PromptAnswerCheck,
		Text:     text,
		Contract: textContract(entity.ReplyFormatText, language),
	}, nil
}

// BuildBatchAnswerCheck grades a whole batch in one call. Items are
// correlated by position and the reply must echo the ids in input order.
func (r Registry) BuildBatchAnswerCheck(req entity.BatchAnswerCheckRequest) (*entity.RenderedPrompt, error) {
	batch, err := Correlate(req.Items)
	if err != nil {
		return nil, err
	}
	items, err := RenderBatchItems(batch)
	if err != nil {
		return nil, err
	}

	language := r.language(req.Language)
	text, err := render(batchCheckTemplate, map[string]any{
		"Language": language,
		"Items":    items,
		"Contract": BatchReplyContract(len(batch), language),
	})
	if err != nil {
		return nil, err
	}

	return &entity.RenderedPrompt{
		Kind:     entity.PromptBatchAnswerCheck,
		Text:     text,
		Contract: jsonContract(language, batchKeys, []string{assessmentKey}, BatchReplySchema(len(batch))),
	}, nil
}
