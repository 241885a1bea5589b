package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByProjectId filters any project-scoped table.
type ByProjectId struct {
	ProjectId uuid.UUID
}

func (s ByProjectId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("project_id = ?", s.ProjectId)
}

// ByUserId filters user-owned rows.
type ByUserId struct {
	UserId uuid.UUID
}

func (s ByUserId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserId)
}
