package entity

import (
	"fmt"
	"strings"
)

// UserProfile is the optional learner profile used to personalize prompts.
// Zero values mean "not provided".
type UserProfile struct {
	Age int    `json:"age,omitempty"`
	Bio string `json:"bio,omitempty"`
}

// HasAge reports whether the profile carries a usable age.
func (p *UserProfile) HasAge() bool {
	return p != nil && p.Age > 0
}

// HasBio reports whether the profile carries a non-blank bio.
func (p *UserProfile) HasBio() bool {
	return p != nil && strings.TrimSpace(p.Bio) != ""
}

type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

func (r *ChatRole) Validate() error {
	switch *r {
	case ChatRoleUser, ChatRoleAssistant:
		return nil
	default:
		return fmt.Errorf("%w: unknown chat role: %s", ErrInvalidParameter, *r)
	}
}

// Label returns the human-readable speaker label used in rendered transcripts.
func (r ChatRole) Label() string {
	if r == ChatRoleUser {
		return "Student"
	}
	return "Tutor"
}

type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// QuestionAnswer is one caller-supplied question with the learner's answer.
type QuestionAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// BatchItem is a QuestionAnswer with its positional id inside one batch.
type BatchItem struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"user_answer"`
}

// AssessedAnswer is a graded answer fed back into course planning.
type AssessedAnswer struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Assessment string `json:"assessment"`
}

// CourseDocument is a loosely structured course outline as produced by the
// course-structure contract. Keys follow the contract vocabulary
// (course_title, units, lessons, test, ...).
type CourseDocument map[string]any

const (
	CourseTitleKey = "course_title"
	CourseUnitsKey = "units"
)

// HasTitle reports whether the document carries a course_title key.
func (c CourseDocument) HasTitle() bool {
	_, ok := c[CourseTitleKey]
	return ok
}

// WithTitle returns a shallow copy of the document with only course_title replaced.
func (c CourseDocument) WithTitle(title string) CourseDocument {
	out := make(CourseDocument, len(c))
	for k, v := range c {
		out[k] = v
	}
	out[CourseTitleKey] = title
	return out
}
