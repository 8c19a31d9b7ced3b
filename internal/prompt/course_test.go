package prompt

import (
	"testing"

	"github.com/futig/course-prompts/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCourseStructure(t *testing.T) {
	r := newTestRegistry()

	req := entity.CourseStructureRequest{
		Topic:               "Linear algebra",
		KnowledgeAssessment: "Knows vectors, struggles with eigenvalues.",
		AssessedAnswers: []entity.AssessedAnswer{
			{Question: "What is a basis?", Answer: "A spanning set", Assessment: "incorrect. It must also be independent."},
		},
		LessonDuration: 20,
		Language:       "german",
	}

	t.Run("renders assessment and contract", func(t *testing.T) {
		p, err := r.BuildCourseStructure(req)
		require.NoError(t, err)

		assert.Equal(t, entity.PromptCourseStructure, p.Kind)
		assert.Contains(t, p.Text, `A learner has completed a test on the topic: "Linear algebra".`)
		assert.Contains(t, p.Text, "Q: What is a basis?\nA: A spanning set\nAssessment: incorrect. It must also be independent.")
		assert.Contains(t, p.Text, `"estimated_time_minutes": 20`)
		assert.Contains(t, p.Text, "Do NOT generate lesson or test content yet")
		assert.Contains(t, p.Text, "must be in german")
		assert.Contains(t, p.Text, `Keep all JSON keys (like "course_title", "units"`)
		assert.Contains(t, p.Text, JSONOnlyRule)
		assert.NotContains(t, p.Text, "user profile")
		assert.Equal(t, CourseSchema(), p.Contract.Schema)
	})

	t.Run("profile calibrates the course", func(t *testing.T) {
		withProfile := req
		withProfile.UserProfile = &entity.UserProfile{Age: 40, Bio: "accountant"}

		p, err := r.BuildCourseStructure(withProfile)
		require.NoError(t, err)
		assert.Contains(t, p.Text, "user profile to calibrate the pacing, tone and examples of the course: The user is 40 years old. The user's bio: 'accountant'.")
	})

	t.Run("default duration", func(t *testing.T) {
		noDuration := req
		noDuration.LessonDuration = 0

		p, err := r.BuildCourseStructure(noDuration)
		require.NoError(t, err)
		assert.Contains(t, p.Text, `"estimated_time_minutes": 15`)
	})

	t.Run("required fields", func(t *testing.T) {
		_, err := r.BuildCourseStructure(entity.CourseStructureRequest{Topic: "x"})
		require.ErrorIs(t, err, entity.ErrMissingField)
		assert.Contains(t, err.Error(), "knowledge_assessment")
	})
}

func TestBuildCourseTitle(t *testing.T) {
	r := newTestRegistry()

	t.Run("improves the current title", func(t *testing.T) {
		p, err := r.BuildCourseTitle(entity.CourseTitleRequest{CurrentTitle: "An Introduction To The Basics Of Programming In Go"})
		require.NoError(t, err)

		assert.Equal(t, entity.PromptCourseTitle, p.Kind)
		assert.Contains(t, p.Text, "CURRENT TITLE:\nAn Introduction To The Basics Of Programming In Go")
		assert.Contains(t, p.Text, "that improves the current title")
		assert.NotContains(t, p.Text, "USER REQUEST")
		assert.Contains(t, p.Text, "Keep it under 60 characters")
		assert.Contains(t, p.Text, "Return ONLY the new course title")
	})

	t.Run("follows the user request", func(t *testing.T) {
		p, err := r.BuildCourseTitle(entity.CourseTitleRequest{UserRequest: "make it sound fun", Language: "dutch"})
		require.NoError(t, err)
		assert.Contains(t, p.Text, "USER REQUEST:\nmake it sound fun")
		assert.Contains(t, p.Text, "based on the user's request")
		assert.Contains(t, p.Text, "Write the title in dutch.")
	})

	t.Run("needs either input", func(t *testing.T) {
		_, err := r.BuildCourseTitle(entity.CourseTitleRequest{})
		assert.ErrorIs(t, err, entity.ErrMissingField)
	})
}
