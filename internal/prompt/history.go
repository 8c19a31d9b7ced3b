package prompt

import (
	"strings"

	"github.com/futig/course-prompts/internal/entity"
)

const DefaultHistoryWindow = 5

// WindowHistory returns the last k messages of history, oldest first.
func WindowHistory(history []entity.ChatMessage, k int) []entity.ChatMessage {
	if k <= 0 || len(history) == 0 {
		return nil
	}
	if len(history) > k {
		history = history[len(history)-k:]
	}
	out := make([]entity.ChatMessage, len(history))
	copy(out, history)
	return out
}

// RenderHistory renders the window as "<Label>: <content>" lines. An empty
// history renders as an empty string.
func RenderHistory(history []entity.ChatMessage, k int) string {
	window := WindowHistory(history, k)
	lines := make([]string, 0, len(window))
	for _, msg := range window {
		lines = append(lines, msg.Role.Label()+": "+msg.Content)
	}
	return strings.Join(lines, "\n")
}
