package prompt

import (
	"fmt"
	"strings"

	"github.com/futig/course-prompts/internal/entity"
)

// Verdict tokens every assessment must start with.
const (
	VerdictCorrect   = "correct"
	VerdictIncorrect = "incorrect"
)

const (
	assessmentsKey = "assessments"
	idKey          = "id"
	assessmentKey  = "assessment"
)

// BatchOrderRule is the ordering guarantee the batch reply must honor.
const BatchOrderRule = "The order of the assessments in the array MUST match the order of the questions provided."

// Correlate assigns positional ids 0..n-1 to items. A blank question or
// answer is a caller error and reports the offending position.
func Correlate(items []entity.QuestionAnswer) ([]entity.BatchItem, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: items", entity.ErrMissingField)
	}

	batch := make([]entity.BatchItem, len(items))
	for i, qa := range items {
		if strings.TrimSpace(qa.Question) == "" {
			return nil, fmt.Errorf("%w: items[%d].question", entity.ErrMissingField, i)
		}
		if strings.TrimSpace(qa.Answer) == "" {
			return nil, fmt.Errorf("%w: items[%d].answer", entity.ErrMissingField, i)
		}
		batch[i] = entity.BatchItem{
			ID:       i,
			Question: qa.Question,
			Answer:   qa.Answer,
		}
	}
	return batch, nil
}

// RenderBatchItems serializes each item as its own JSON object, in order.
func RenderBatchItems(batch []entity.BatchItem) (string, error) {
	blocks := make([]string, 0, len(batch))
	for _, item := range batch {
		block, err := marshalIndent(item)
		if err != nil {
			return "", err
		}
		blocks = append(blocks, block)
	}
	return strings.Join(blocks, "\n"), nil
}

// BatchReplyContract describes the reply shape for a batch of n items.
func BatchReplyContract(n int, language string) string {
	lines := []string{
		JSONOnlyRule,
		fmt.Sprintf("The JSON object must have a single key %q, which is an array of exactly %d entries, one per question.", assessmentsKey, n),
		fmt.Sprintf("Each object in the array must contain the %q of the question and the %q string.", idKey, assessmentKey),
		fmt.Sprintf("Use every id from 0 to %d exactly once.", n-1),
		BatchOrderRule,
		fmt.Sprintf("Each %q must begin with %q or %q, followed by a one-sentence explanation written in %s.", assessmentKey, VerdictCorrect, VerdictIncorrect, language),
		fmt.Sprintf("Keep the JSON keys (%s) and the words %q and %q in English.", quoteAll([]string{assessmentsKey, idKey, assessmentKey}), VerdictCorrect, VerdictIncorrect),
	}
	return strings.Join(lines, "\n")
}

// BatchReplySchema is the JSON-schema form of BatchReplyContract.
func BatchReplySchema(n int) map[string]any {
	entry := objectSchema(map[string]any{
		idKey: map[string]any{
			"type":    "integer",
			"minimum": 0,
			"maximum": n - 1,
		},
		assessmentKey: map[string]any{
			"type":    "string",
			"pattern": "^(correct|incorrect)\\b",
		},
	}, idKey, assessmentKey)

	return objectSchema(map[string]any{
		assessmentsKey: arraySchema(entry, n, n),
	}, assessmentsKey)
}
