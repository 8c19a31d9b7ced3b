package prompt

import (
	"testing"

	"github.com/futig/course-prompts/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLessonContent(t *testing.T) {
	r := newTestRegistry()

	base := entity.LessonContentRequest{
		LessonTitle: "Lesson 2.1: Recursion",
		UnitTitle:   "Unit 2: Functions",
	}

	t.Run("duration shapes the prompt", func(t *testing.T) {
		short := base
		short.LessonDuration = 5
		long := base
		long.LessonDuration = 45

		ps, err := r.BuildLessonContent(short)
		require.NoError(t, err)
		pl, err := r.BuildLessonContent(long)
		require.NoError(t, err)

		assert.NotEqual(t, ps.Text, pl.Text)
		assert.Contains(t, ps.Text, "calibrated for a 5-minute completion time")
		assert.NotContains(t, ps.Text, "45-minute")
		assert.Contains(t, ps.Text, "high-level overview that covers only")
		assert.Contains(t, pl.Text, "calibrated for a 45-minute completion time")
		assert.Contains(t, pl.Text, "an in-depth lesson")

		for _, p := range []*entity.RenderedPrompt{ps, pl} {
			assert.Contains(t, p.Text, `on the topic: "Lesson 2.1: Recursion"`)
			assert.Contains(t, p.Text, LessonFormattingDirectives)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		p, err := r.BuildLessonContent(base)
		require.NoError(t, err)

		assert.Equal(t, entity.PromptLessonContent, p.Kind)
		assert.Equal(t, entity.ReplyFormatMarkdown, p.Contract.Format)
		assert.Equal(t, DefaultLanguage, p.Contract.Language)
		assert.Contains(t, p.Text, "calibrated for a 15-minute completion time")
		assert.Contains(t, p.Text, "MUST be in english")
		assert.NotContains(t, p.Text, "COURSE STRUCTURE")
		assert.NotContains(t, p.Text, "user profile")
	})

	t.Run("profile and course structure", func(t *testing.T) {
		req := base
		req.UserProfile = &entity.UserProfile{Bio: "backend developer"}
		req.CourseStructure = map[string]any{"course_title": "Functional thinking"}

		p, err := r.BuildLessonContent(req)
		require.NoError(t, err)
		assert.Contains(t, p.Text, "calibrate the tone, examples, and analogies of the lesson: The user's bio: 'backend developer'.")
		assert.Contains(t, p.Text, "--- COURSE STRUCTURE START ---\n{\n  \"course_title\": \"Functional thinking\"\n}\n--- COURSE STRUCTURE END ---")
	})

	t.Run("falsy course structure is omitted", func(t *testing.T) {
		for _, src := range []any{false, float64(0)} {
			req := base
			req.CourseStructure = src

			p, err := r.BuildLessonContent(req)
			require.NoError(t, err)
			assert.NotContains(t, p.Text, "COURSE STRUCTURE", "%v", src)
		}
	})

	t.Run("malformed course structure", func(t *testing.T) {
		req := base
		req.CourseStructure = map[string]any{"units": make(chan int)}

		_, err := r.BuildLessonContent(req)
		assert.ErrorIs(t, err, entity.ErrMalformedContext)
	})

	t.Run("required fields", func(t *testing.T) {
		_, err := r.BuildLessonContent(entity.LessonContentRequest{UnitTitle: "u"})
		require.ErrorIs(t, err, entity.ErrMissingField)
		assert.Contains(t, err.Error(), "lesson_title")

		_, err = r.BuildLessonContent(entity.LessonContentRequest{LessonTitle: "l"})
		require.ErrorIs(t, err, entity.ErrMissingField)
		assert.Contains(t, err.Error(), "unit_title")
	})
}

func TestLessonDepth(t *testing.T) {
	assert.Equal(t, lessonDepth(1), lessonDepth(10))
	assert.NotEqual(t, lessonDepth(10), lessonDepth(11))
	assert.Equal(t, lessonDepth(11), lessonDepth(30))
	assert.NotEqual(t, lessonDepth(30), lessonDepth(31))
}
