package prompt

import (
	"fmt"
	"strings"

	"github.com/futig/course-prompts/internal/entity"
)

const DefaultLanguage = "english"

// JSONOnlyRule is stated in every prompt that expects a JSON reply.
const JSONOnlyRule = "Your entire response MUST be only a valid JSON object, with no additional text, explanations, or markdown formatting around it."

func normalizeLanguage(language string) string {
	language = strings.TrimSpace(language)
	if language == "" {
		return DefaultLanguage
	}
	return language
}

// LanguageRules states the key/language split: values listed in localized
// follow the target language, every key in keys stays in English.
func LanguageRules(language string, keys, localized []string) string {
	return fmt.Sprintf(
		"Generate the response in the following language: %s.\n"+
			"All user-visible string values (like %s) must be in %s.\n"+
			"Keep all JSON keys (like %s) in English, regardless of the response language.",
		language, strings.Join(localized, ", "), language, quoteAll(keys),
	)
}

func quoteAll(keys []string) string {
	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = fmt.Sprintf("%q", k)
	}
	return strings.Join(quoted, ", ")
}

func jsonContract(language string, keys, localized []string, schema map[string]any) entity.Contract {
	return entity.Contract{
		Format:        entity.ReplyFormatJSON,
		Language:      language,
		Keys:          keys,
		LocalizedKeys: localized,
		Schema:        schema,
	}
}

func textContract(format entity.ReplyFormat, language string) entity.Contract {
	return entity.Contract{
		Format:   format,
		Language: language,
	}
}

// ---------- schema helpers ----------

func stringSchema() map[string]any {
	return map[string]any{"type": "string"}
}

func integerSchema() map[string]any {
	return map[string]any{"type": "integer"}
}

func enumSchema(values ...string) map[string]any {
	return map[string]any{"type": "string", "enum": values}
}

func arraySchema(items map[string]any, minItems, maxItems int) map[string]any {
	s := map[string]any{"type": "array", "items": items}
	if minItems > 0 {
		s["minItems"] = minItems
	}
	if maxItems > 0 {
		s["maxItems"] = maxItems
	}
	return s
}

// objectSchema builds a strict object: every property is required and no
// other property is allowed.
func objectSchema(props map[string]any, order ...string) map[string]any {
	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"required":             order,
		"additionalProperties": false,
	}
}
