package entity

import (
	"time"

	"github.com/google/uuid"
)

// Message type values. The assistant engine mirrors these as turn roles.
const (
	MessageTypeUser      = "user"
	MessageTypeAssistant = "assistant"
)

// Message is one persisted conversation turn inside a project.
type Message struct {
	Id          uuid.UUID
	ProjectId   uuid.UUID
	UserId      uuid.UUID
	MessageType string
	Content     string
	Intent      string
	CreatedAt   time.Time
}
