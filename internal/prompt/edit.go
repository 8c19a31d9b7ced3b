package prompt

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/futig/course-prompts/internal/entity"
)

// TitleIntentKeywords mark an edit request as a rename. Matching is
// case-insensitive on whole words.
var TitleIntentKeywords = []string{"title", "name", "rename", "call this"}

var (
	titleIntentRe = keywordPattern(TitleIntentKeywords)
	quotedTitleRe = regexp.MustCompile(`["“«]([^"”»]+)["”»]`)
	targetTitleRe = regexp.MustCompile(`(?i)\b(?:to|as)\s+(?:be\s+)?(.+)$`)
	fillerRe      = regexp.MustCompile(`(?i)^(?:\s*\b(?:the|this|my|our|its|it|course|title|name|of|new)\b)*\s*`)
)

func keywordPattern(keywords []string) *regexp.Regexp {
	quoted := make([]string, len(keywords))
	for i, k := range keywords {
		quoted[i] = regexp.QuoteMeta(k)
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
}

var courseEditTemplate = mustTemplate(entity.PromptCourseEdit, `
You are an expert AI curriculum editor. Your task is to modify an existing course structure, provided as a JSON object, according to the user's request.

{{.CourseFragment}}

Here is the user's request:
"{{.UserRequest}}"

IMPORTANT RULES:
1. Make only the minimal changes necessary to satisfy the user's request.
2. Keep all existing content unless the user explicitly asks to remove it.
3. Preserve the existing structure of the JSON and its keys ({{.Keys}}).
4. If you add new lessons, ensure they have an "estimated_time_minutes" key and match the style of the existing ones.
5. Ensure the course remains logically structured.
6. {{.LanguageRules}}
7. {{.JSONOnly}}

Now, return the complete, modified JSON object for the entire course.
`)

// HasTitleIntent reports whether request asks for a rename.
func HasTitleIntent(request string) bool {
	return titleIntentRe.MatchString(request)
}

// ExtractTitle pulls the requested title out of a rename request. A quoted
// phrase wins. Otherwise only the text after the first intent keyword is
// considered: whatever follows "to"/"as" there, else that text with leading
// filler ("the course", "it") dropped. The whole request is the last resort.
func ExtractTitle(request string) string {
	request = strings.TrimSpace(request)
	if m := quotedTitleRe.FindStringSubmatch(request); m != nil {
		if t := strings.TrimSpace(m[1]); t != "" {
			return t
		}
	}

	loc := titleIntentRe.FindStringIndex(request)
	if loc == nil {
		return request
	}
	rest := request[loc[1]:]

	if m := targetTitleRe.FindStringSubmatch(rest); m != nil {
		if t := cleanTitle(m[1]); t != "" {
			return t
		}
	}
	if t := cleanTitle(fillerRe.ReplaceAllString(rest, "")); t != "" {
		return t
	}
	return request
}

func cleanTitle(s string) string {
	return strings.Trim(strings.TrimSpace(s), ".!'\"")
}

// BuildCourseEdit either resolves a rename directly, replacing only
// course_title and carrying every other key over, or renders the general
// edit prompt.
func (r Registry) BuildCourseEdit(req entity.CourseEditRequest) (*entity.CourseEditResult, error) {
	if err := requireNonEmpty("user_request", req.UserRequest); err != nil {
		return nil, err
	}
	if len(req.Course) == 0 {
		return nil, fmt.Errorf("%w: course", entity.ErrMissingField)
	}

	if HasTitleIntent(req.UserRequest) && req.Course.HasTitle() {
		return &entity.CourseEditResult{
			Course: req.Course.WithTitle(ExtractTitle(req.UserRequest)),
		}, nil
	}

	p, err := r.buildCourseEditPrompt(req)
	if err != nil {
		return nil, err
	}
	return &entity.CourseEditResult{Prompt: p}, nil
}

func (r Registry) buildCourseEditPrompt(req entity.CourseEditRequest) (*entity.RenderedPrompt, error) {
	courseFragment, _, err := ContentFragment(LabelCourseStructure,
		"The following is the current course. You MUST use it as the structural basis of your reply.",
		map[string]any(req.Course))
	if err != nil {
		return nil, err
	}

	language := r.language(req.Language)
	text, err := render(courseEditTemplate, map[string]any{
		"CourseFragment": courseFragment,
		"UserRequest":    strings.TrimSpace(req.UserRequest),
		"Keys":           quoteAll([]string{"course_title", "units", "lessons", "test"}),
		"LanguageRules":  strings.ReplaceAll(LanguageRules(language, courseKeys, courseText), "\n", " "),
		"JSONOnly":       JSONOnlyRule,
	})
	if err != nil {
		return nil, err
	}

	return &entity.RenderedPrompt{
		Kind:     entity.PromptCourseEdit,
		Text:     text,
		Contract: jsonContract(language, courseKeys, courseText, CourseSchema()),
	}, nil
}
