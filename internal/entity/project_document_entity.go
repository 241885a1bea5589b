package entity

import (
	"time"

	"github.com/google/uuid"
)

type ProjectDocument struct {
	Id         uuid.UUID
	ProjectId  uuid.UUID
	Title      string
	Content    string
	UploadedBy uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}
