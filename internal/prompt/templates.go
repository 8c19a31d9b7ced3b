package prompt

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/futig/course-prompts/internal/entity"
)

// mustTemplate compiles a prompt template once at package init. Missing
// fields render as zero values so optional fragments can simply be left empty.
func mustTemplate(kind entity.PromptKind, text string) *template.Template {
	return template.Must(template.New(string(kind)).Option("missingkey=zero").Parse(text))
}

const (
	tokenOpen  = "\uE000"
	tokenClose = "\uE001"
)

// render executes t and tidies the template's own layout. Non-empty string
// values are swapped for opaque tokens while tidying so caller content
// (history, questions, fragments) comes out byte for byte.
func render(t *template.Template, data map[string]any) (string, error) {
	masked := make(map[string]any, len(data))
	var pairs []string
	for k, v := range data {
		str, ok := v.(string)
		if !ok {
			masked[k] = v
			continue
		}
		if strings.TrimSpace(str) == "" {
			masked[k] = ""
			continue
		}
		token := tokenOpen + strconv.Itoa(len(pairs)/2) + tokenClose
		masked[k] = token
		pairs = append(pairs, token, stripTokens(str))
	}

	var b bytes.Buffer
	if err := t.Execute(&b, masked); err != nil {
		return "", fmt.Errorf("render %s: %w", t.Name(), err)
	}
	return strings.NewReplacer(pairs...).Replace(tidy(b.String())), nil
}

func stripTokens(s string) string {
	if !strings.ContainsAny(s, tokenOpen+tokenClose) {
		return s
	}
	return strings.NewReplacer(tokenOpen, "", tokenClose, "").Replace(s)
}

// tidy trims trailing whitespace on every line and collapses the blank
// lines left behind by omitted fragments. Text between START/END sentinels
// is kept verbatim.
func tidy(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blank, verbatim := false, false
	for _, line := range lines {
		if verbatim {
			out = append(out, line)
			verbatim = !sentinelEnd(line)
			continue
		}
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			if blank || len(out) == 0 {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, line)
		verbatim = sentinelStart(line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

func sentinelStart(line string) bool {
	return strings.HasPrefix(line, "--- ") && strings.HasSuffix(line, " START ---")
}

func sentinelEnd(line string) bool {
	return strings.HasPrefix(line, "--- ") && strings.HasSuffix(strings.TrimRight(line, "\r"), " END ---")
}

func requireNonEmpty(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s", entity.ErrMissingField, field)
	}
	return nil
}

func requireAnyNonEmpty(fields []string, values ...string) error {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return nil
		}
	}
	return fmt.Errorf("%w: one of %s", entity.ErrMissingField, strings.Join(fields, ", "))
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
