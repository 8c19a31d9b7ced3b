package prompt

import (
	"strings"
	"testing"

	"github.com/futig/course-prompts/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAnswerCheck(t *testing.T) {
	r := newTestRegistry()

	t.Run("open question", func(t *testing.T) {
		p, err := r.BuildAnswerCheck(entity.AnswerCheckRequest{
			Question: "Why is the sky blue?",
			Answer:   "Rayleigh scattering",
			IsOpen:   true,
			Language: "italian",
		})
		require.NoError(t, err)

		assert.Equal(t, entity.PromptAnswerCheck, p.Kind)
		assert.Equal(t, entity.ReplyFormatText, p.Contract.Format)
		assert.Contains(t, p.Text, `Reply with "correct" or "incorrect", then briefly explain your reasoning in italian.`)
		assert.Contains(t, p.Text, "Question: Why is the sky blue?")
		assert.Contains(t, p.Text, "User's answer: Rayleigh scattering")
		assert.NotContains(t, p.Text, "Options:")
	})

	t.Run("closed question lists options", func(t *testing.T) {
		p, err := r.BuildAnswerCheck(entity.AnswerCheckRequest{
			Question: "2+2?",
			Answer:   "4",
			Options:  []string{"3", "4", "5", "22"},
		})
		require.NoError(t, err)
		assert.Contains(t, p.Text, "Options:\n1. 3\n2. 4\n3. 5\n4. 22\nUser's answer: 4")
	})

	t.Run("closed question without options fails", func(t *testing.T) {
		_, err := r.BuildAnswerCheck(entity.AnswerCheckRequest{Question: "2+2?", Answer: "4"})
		require.ErrorIs(t, err, entity.ErrMissingField)
		assert.Contains(t, err.Error(), "options")
	})

	t.Run("answer is required", func(t *testing.T) {
		_, err := r.BuildAnswerCheck(entity.AnswerCheckRequest{Question: "2+2?", IsOpen: true})
		require.ErrorIs(t, err, entity.ErrMissingField)
		assert.Contains(t, err.Error(), "answer")
	})
}

func TestBuildBatchAnswerCheck(t *testing.T) {
	r := newTestRegistry()

	t.Run("items are correlated by position", func(t *testing.T) {
		p, err := r.BuildBatchAnswerCheck(entity.BatchAnswerCheckRequest{
			Items: []entity.QuestionAnswer{
				{Question: "2+2?", Answer: "4"},
				{Question: "Capital of France?", Answer: "Berlin"},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, entity.PromptBatchAnswerCheck, p.Kind)
		assert.Contains(t, p.Text, "{\n  \"id\": 0,\n  \"question\": \"2+2?\",\n  \"user_answer\": \"4\"\n}")
		assert.Contains(t, p.Text, "{\n  \"id\": 1,\n  \"question\": \"Capital of France?\",\n  \"user_answer\": \"Berlin\"\n}")
		assert.Contains(t, p.Text, BatchOrderRule)
		assert.Contains(t, p.Text, "exactly 2 entries")
		assert.Less(t, strings.Index(p.Text, `"id": 0`), strings.Index(p.Text, `"id": 1`))

		assert.Equal(t, entity.ReplyFormatJSON, p.Contract.Format)
		assert.Equal(t, []string{"assessments", "id", "assessment"}, p.Contract.Keys)
		assert.Equal(t, []string{"assessment"}, p.Contract.LocalizedKeys)
	})

	t.Run("missing answer fails with position", func(t *testing.T) {
		_, err := r.BuildBatchAnswerCheck(entity.BatchAnswerCheckRequest{
			Items: []entity.QuestionAnswer{
				{Question: "2+2?", Answer: "4"},
				{Question: "Capital of France?"},
			},
		})
		require.ErrorIs(t, err, entity.ErrMissingField)
		assert.Contains(t, err.Error(), "items[1].answer")
	})

	t.Run("explanation language is parameterized", func(t *testing.T) {
		p, err := r.BuildBatchAnswerCheck(entity.BatchAnswerCheckRequest{
			Items:    questions(3),
			Language: "portuguese",
		})
		require.NoError(t, err)
		assert.Contains(t, p.Text, "one-sentence explanation for your reasoning in portuguese")
		assert.Equal(t, "portuguese", p.Contract.Language)
	})
}
