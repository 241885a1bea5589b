package dto

import (
	"time"

	"github.com/google/uuid"
)

type ChatRequest struct {
	Message string `json:"message" validate:"required,max=4000"`
}

type ChatMessageDTO struct {
	Id        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Intent    string    `json:"intent,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ChatResponse struct {
	ProjectId uuid.UUID       `json:"project_id"`
	Intent    string          `json:"intent"`
	Sent      *ChatMessageDTO `json:"sent"`
	Reply     *ChatMessageDTO `json:"reply"`
}

type ChatHistoryResponse struct {
	ProjectId uuid.UUID        `json:"project_id"`
	Messages  []ChatMessageDTO `json:"messages"`
}

// PublishAssistantReplyMessage is the payload queued to the email digest
// worker after an assistant reply is persisted.
type PublishAssistantReplyMessage struct {
	MessageId uuid.UUID `json:"message_id"`
	ProjectId uuid.UUID `json:"project_id"`
	UserId    uuid.UUID `json:"user_id"`
}
