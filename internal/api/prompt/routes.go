package prompt

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers prompt rendering routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/prompts", func(r chi.Router) {
		r.Post("/tests/multiple-choice", h.MultipleChoiceTest)
		r.Post("/tests/open-ended", h.OpenEndedTest)
		r.Post("/answers/check", h.AnswerCheck)
		r.Post("/answers/batch-check", h.BatchAnswerCheck)
		r.Post("/courses/structure", h.CourseStructure)
		r.Post("/courses/edit", h.CourseEdit)
		r.Post("/courses/title", h.CourseTitle)
		r.Post("/lessons/content", h.LessonContent)
		r.Post("/chat/turn", h.ChatTurn)
		r.Post("/export", h.Export)
	})
}
