// Package prompt assembles LLM prompts for the learning platform and defines
// the reply contracts those prompts demand. Every builder is a pure function
// of its input: no I/O, no shared mutable state.
package prompt

import (
	"strings"

	"github.com/futig/course-prompts/internal/entity"
)

const (
	DefaultQuestionCount  = 5
	DefaultLessonDuration = 15
)

// Options are the caller-level defaults applied when a request leaves a
// field unset.
type Options struct {
	HistoryWindow         int
	DefaultLanguage       string
	DefaultQuestionCount  int
	DefaultLessonDuration int
}

// Registry holds one builder per prompt kind. It is an immutable value and
// safe for concurrent use.
type Registry struct {
	opts Options
}

func NewRegistry(opts Options) Registry {
	if opts.HistoryWindow <= 0 {
		opts.HistoryWindow = DefaultHistoryWindow
	}
	if opts.DefaultQuestionCount <= 0 {
		opts.DefaultQuestionCount = DefaultQuestionCount
	}
	if opts.DefaultLessonDuration <= 0 {
		opts.DefaultLessonDuration = DefaultLessonDuration
	}
	opts.DefaultLanguage = normalizeLanguage(opts.DefaultLanguage)
	return Registry{opts: opts}
}

// Kinds lists every prompt kind the registry can build.
func (r Registry) Kinds() []entity.PromptKind {
	return entity.PromptKinds()
}

func (r Registry) language(requested string) string {
	if l := strings.TrimSpace(requested); l != "" {
		return l
	}
	return r.opts.DefaultLanguage
}

func (r Registry) questionCount(requested int) int {
	if requested > 0 {
		return requested
	}
	return r.opts.DefaultQuestionCount
}

func (r Registry) lessonDuration(requested int) int {
	if requested > 0 {
		return requested
	}
	return r.opts.DefaultLessonDuration
}
