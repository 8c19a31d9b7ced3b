package prompt

import (
	"strings"

	"github.com/futig/course-prompts/internal/entity"
)

// toExportFormat reads the ?format= query value; an empty value means Markdown.
func toExportFormat(raw string) entity.ExportFormat {
	raw = strings.ToLower(strings.TrimSpace(raw))
	switch raw {
	case "", "md":
		return entity.FormatMarkdown
	case "yml":
		return entity.FormatYAML
	default:
		return entity.ExportFormat(raw)
	}
}
