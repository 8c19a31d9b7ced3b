package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/futig/course-prompts/internal/entity"
	"github.com/futig/course-prompts/internal/pkg/formatter"
)

func toRenderResponse(renderID string, p *entity.RenderedPrompt) *entity.RenderPromptResponse {
	return &entity.RenderPromptResponse{
		RenderID: renderID,
		Kind:     p.Kind,
		Prompt:   p.Text,
		Contract: p.Contract,
	}
}

func toCourseEditResponse(renderID string, res *entity.CourseEditResult) *entity.CourseEditResponse {
	if res.IsDirect() {
		return &entity.CourseEditResponse{
			RenderID: renderID,
			Mode:     entity.CourseEditModeDirect,
			Course:   res.Course,
		}
	}
	contract := res.Prompt.Contract
	return &entity.CourseEditResponse{
		RenderID: renderID,
		Mode:     entity.CourseEditModePrompt,
		Prompt:   res.Prompt.Text,
		Contract: &contract,
	}
}

func toDocument(req *entity.ExportPromptRequest) (formatter.Document, error) {
	doc := formatter.Document{Title: documentTitle(req.Kind)}

	if c := req.Contract; c != nil {
		doc.Sections = append(doc.Sections, formatter.Section{
			Heading: "Contract",
			Body:    contractSummary(c),
		})
		if len(c.Schema) > 0 {
			schema, err := json.MarshalIndent(c.Schema, "", "  ")
			if err != nil {
				return formatter.Document{}, fmt.Errorf("%w: contract schema: %v", entity.ErrMalformedContext, err)
			}
			doc.Sections = append(doc.Sections, formatter.Section{
				Heading: "Reply schema",
				Body:    string(schema),
			})
		}
	}

	doc.Sections = append(doc.Sections, formatter.Section{
		Heading: "Prompt",
		Body:    req.Prompt,
	})
	return doc, nil
}

// documentTitle names the exported file; anything but a known kind falls
// back to "prompt".
func documentTitle(kind entity.PromptKind) string {
	if !kind.IsValid() {
		return "prompt"
	}
	return string(kind)
}

func contractSummary(c *entity.Contract) string {
	lines := []string{"Format: " + string(c.Format)}
	if c.Language != "" {
		lines = append(lines, "Language: "+c.Language)
	}
	if len(c.Keys) > 0 {
		lines = append(lines, "Keys (always English): "+strings.Join(c.Keys, ", "))
	}
	if len(c.LocalizedKeys) > 0 {
		lines = append(lines, "Localized values: "+strings.Join(c.LocalizedKeys, ", "))
	}
	return strings.Join(lines, "\n")
}
