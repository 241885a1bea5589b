package events

import (
	"time"

	"github.com/google/uuid"
)

// Event type codes published by this service.
const (
	TypeAssistantReply = "ASSISTANT_REPLY"
	TypeUserLogin      = "USER_LOGIN"
)

// NewAssistantReply builds the event emitted after the assistant answers a
// turn. Consumers use it to fan out notifications to the asking user.
func NewAssistantReply(projectId, userId uuid.UUID, intent, preview string) BaseEvent {
	return BaseEvent{
		Type: TypeAssistantReply,
		Data: map[string]interface{}{
			"project_id": projectId.String(),
			"user_id":    userId.String(),
			"intent":     intent,
			"preview":    preview,
		},
		OccurredAt: time.Now(),
	}
}
