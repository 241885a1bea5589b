package session

import (
	"strings"
)

// Turn roles. These mirror the message_type values persisted by the caller.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is a single utterance in the conversation.
type Turn struct {
	Role string
	Text string
}

// Session is the conversational state threaded through the assistant engine.
// It lives for a single request: the caller rebuilds it from persisted history,
// the engine appends exactly one user turn and one assistant turn, and the
// caller persists the new turns. Turns are append-only.
//
// ProjectId and UserId are opaque identifier strings; handlers that need a
// real identifier validate the shape themselves and explain a malformed one
// to the user instead of erroring. Empty string means absent.
type Session struct {
	turns     []Turn
	ProjectId string
	UserId    string
	RoleKey   string
}

// New creates a session from prior history. The history slice is copied so the
// engine can never mutate the caller's backing array.
func New(history []Turn, projectId, userId, roleKey string) *Session {
	turns := make([]Turn, len(history))
	copy(turns, history)
	return &Session{
		turns:     turns,
		ProjectId: projectId,
		UserId:    userId,
		RoleKey:   roleKey,
	}
}

// Append adds a turn. There is no way to remove or reorder turns.
func (s *Session) Append(role, text string) {
	s.turns = append(s.turns, Turn{Role: role, Text: text})
}

// Turns returns a copy of the turn sequence.
func (s *Session) Turns() []Turn {
	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// Len returns the number of turns.
func (s *Session) Len() int {
	return len(s.turns)
}

// LastUserText returns the text of the most recent user turn, with a leading
// "user:" label stripped if the caller left one in. Empty string if the
// session has no user turn yet.
func (s *Session) LastUserText() string {
	for i := len(s.turns) - 1; i >= 0; i-- {
		if s.turns[i].Role == RoleUser {
			return StripLabel(s.turns[i].Text)
		}
	}
	return ""
}

// StripLabel removes a leading "user:" prefix (any case) from a message.
// Some clients send history lines in "USER: ..." format.
func StripLabel(text string) string {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) >= 5 && strings.EqualFold(trimmed[:5], "user:") {
		return strings.TrimSpace(trimmed[5:])
	}
	return trimmed
}
