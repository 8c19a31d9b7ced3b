package prompt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/futig/course-prompts/internal/entity"
)

// Sentinel labels for verbatim context blocks.
const (
	LabelLessonContent   = "LESSON CONTENT"
	LabelCourseStructure = "COURSE STRUCTURE"
)

// ProfileFragment summarizes the learner profile. It reports false when
// neither age nor bio is present, in which case nothing must be rendered.
func ProfileFragment(p *entity.UserProfile) (string, bool) {
	clauses := make([]string, 0, 2)
	if p.HasAge() {
		clauses = append(clauses, fmt.Sprintf("The user is %d years old.", p.Age))
	}
	if p.HasBio() {
		clauses = append(clauses, fmt.Sprintf("The user's bio: '%s'.", strings.TrimSpace(p.Bio)))
	}
	if len(clauses) == 0 {
		return "", false
	}
	return strings.Join(clauses, " "), true
}

// ContentFragment wraps source between START/END sentinels, prefixed with
// instruction. Strings are included verbatim, anything else is serialized as
// indented JSON. Empty sources, false and numeric zero yield no fragment at
// all.
func ContentFragment(label, instruction string, source any) (string, bool, error) {
	body, ok, err := contentBody(source)
	if err != nil || !ok {
		return "", false, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "IMPORTANT: %s\n", instruction)
	fmt.Fprintf(&b, "--- %s START ---\n", label)
	b.WriteString(body)
	fmt.Fprintf(&b, "\n--- %s END ---", label)
	return b.String(), true, nil
}

func contentBody(source any) (string, bool, error) {
	switch v := source.(type) {
	case nil:
		return "", false, nil
	case string:
		if strings.TrimSpace(v) == "" {
			return "", false, nil
		}
		return strings.TrimSpace(v), true, nil
	case json.RawMessage:
		trimmed := bytes.TrimSpace(v)
		if len(trimmed) == 0 || falsyJSON(string(trimmed)) {
			return "", false, nil
		}
		var out bytes.Buffer
		if err := json.Indent(&out, trimmed, "", "  "); err != nil {
			return "", false, fmt.Errorf("%w: %v", entity.ErrMalformedContext, err)
		}
		return out.String(), true, nil
	}

	rv := reflect.ValueOf(source)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		if rv.Len() == 0 {
			return "", false, nil
		}
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return "", false, nil
		}
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		if rv.IsZero() {
			return "", false, nil
		}
	}

	body, err := marshalIndent(source)
	if err != nil {
		return "", false, err
	}
	return body, true, nil
}

func falsyJSON(raw string) bool {
	switch raw {
	case "null", "false":
		return true
	}
	f, err := strconv.ParseFloat(raw, 64)
	return err == nil && f == 0
}

// marshalIndent serializes v for inclusion in a prompt. HTML escaping is
// disabled so that <, > and & reach the model unchanged.
func marshalIndent(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("%w: %v", entity.ErrMalformedContext, err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
