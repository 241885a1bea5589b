package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification is an in-app notification delivered over the websocket hub
// and optionally by email. Metadata carries event-specific payload fields
// (project id, intent, ...).
type Notification struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Title     string
	Message   string
	Metadata  map[string]interface{}
	IsRead    bool
	ReadAt    *time.Time
	CreatedAt time.Time
}
