package model

import (
	"time"

	"github.com/google/uuid"
)

type ProjectDocument struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectId  uuid.UUID `gorm:"type:uuid;not null;index:idx_project_documents_project_created,priority:1"`
	Title      string    `gorm:"type:varchar(255);not null"`
	Content    string    `gorm:"type:text"`
	UploadedBy uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index:idx_project_documents_project_created,priority:2"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (ProjectDocument) TableName() string {
	return "project_documents"
}
