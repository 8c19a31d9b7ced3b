package prompt

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/futig/course-prompts/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileFragment(t *testing.T) {
	tests := []struct {
		name    string
		profile *entity.UserProfile
		want    string
		ok      bool
	}{
		{name: "nil profile", profile: nil, ok: false},
		{name: "empty profile", profile: &entity.UserProfile{}, ok: false},
		{name: "blank bio only", profile: &entity.UserProfile{Bio: "   "}, ok: false},
		{name: "age only", profile: &entity.UserProfile{Age: 30}, want: "The user is 30 years old.", ok: true},
		{name: "bio only", profile: &entity.UserProfile{Bio: "Backend developer"}, want: "The user's bio: 'Backend developer'.", ok: true},
		{
			name:    "age and bio",
			profile: &entity.UserProfile{Age: 17, Bio: "Likes chess"},
			want:    "The user is 17 years old. The user's bio: 'Likes chess'.",
			ok:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ProfileFragment(tt.profile)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContentFragment(t *testing.T) {
	t.Run("absent sources produce nothing", func(t *testing.T) {
		for _, src := range []any{nil, "", "  \n ", map[string]any{}, []string{}, json.RawMessage("null"), (*entity.UserProfile)(nil),
			false, 0, 0.0, json.RawMessage("false"), json.RawMessage(" 0.0 ")} {
			got, ok, err := ContentFragment(LabelLessonContent, "use it", src)
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Empty(t, got)
		}
	})

	t.Run("truthy scalars are serialized", func(t *testing.T) {
		for src, body := range map[any]string{true: "true", 3: "3", 0.5: "0.5"} {
			got, ok, err := ContentFragment(LabelCourseStructure, "Use it.", src)
			require.NoError(t, err)
			require.True(t, ok, "%v", src)
			assert.Contains(t, got, "--- COURSE STRUCTURE START ---\n"+body+"\n--- COURSE STRUCTURE END ---")
		}
	})

	t.Run("text is wrapped verbatim between sentinels", func(t *testing.T) {
		got, ok, err := ContentFragment(LabelLessonContent, "Treat this as ground truth.", "Cells divide.\n\n\nTwice.")
		require.NoError(t, err)
		require.True(t, ok)

		want := "IMPORTANT: Treat this as ground truth.\n" +
			"--- LESSON CONTENT START ---\n" +
			"Cells divide.\n\n\nTwice.\n" +
			"--- LESSON CONTENT END ---"
		assert.Equal(t, want, got)
	})

	t.Run("structured values are serialized as json", func(t *testing.T) {
		course := map[string]any{"course_title": "Go & Friends", "units": []any{}}
		got, ok, err := ContentFragment(LabelCourseStructure, "Use it.", course)
		require.NoError(t, err)
		require.True(t, ok)

		assert.Contains(t, got, "--- COURSE STRUCTURE START ---")
		assert.Contains(t, got, `"course_title": "Go & Friends"`)
		assert.True(t, strings.HasSuffix(got, "--- COURSE STRUCTURE END ---"))
	})

	t.Run("raw json is indented", func(t *testing.T) {
		got, ok, err := ContentFragment(LabelCourseStructure, "Use it.", json.RawMessage(`{"a":1}`))
		require.NoError(t, err)
		require.True(t, ok)
		assert.Contains(t, got, "{\n  \"a\": 1\n}")
	})

	t.Run("unserializable values fail", func(t *testing.T) {
		_, ok, err := ContentFragment(LabelCourseStructure, "Use it.", map[string]any{"bad": make(chan int)})
		require.Error(t, err)
		assert.ErrorIs(t, err, entity.ErrMalformedContext)
		assert.False(t, ok)
	})

	t.Run("invalid raw json fails", func(t *testing.T) {
		_, _, err := ContentFragment(LabelCourseStructure, "Use it.", json.RawMessage(`{"a":`))
		assert.ErrorIs(t, err, entity.ErrMalformedContext)
	})
}

func TestTidy(t *testing.T) {
	in := "\n\nfirst   \n\n\n\nsecond\n--- X START ---\nkeep  \n\n\nspacing\n--- X END ---\n\n\nlast\n"
	want := "first\n\nsecond\n--- X START ---\nkeep  \n\n\nspacing\n--- X END ---\n\nlast"
	assert.Equal(t, want, tidy(in))
}
