package model

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectId   uuid.UUID `gorm:"type:uuid;not null;index:idx_messages_project_created,priority:1"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index"`
	MessageType string    `gorm:"type:varchar(20);not null"`
	Content     string    `gorm:"type:text;not null"`
	Intent      string    `gorm:"type:varchar(30)"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index:idx_messages_project_created,priority:2"`
}

func (Message) TableName() string {
	return "messages"
}
