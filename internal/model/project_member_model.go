package model

import (
	"time"

	"github.com/google/uuid"
)

type ProjectMember struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_project_members_project_user,priority:1"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_project_members_project_user,priority:2"`
	RoleId    uuid.UUID `gorm:"type:uuid;not null"`
	Role      Role      `gorm:"foreignKey:RoleId"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (ProjectMember) TableName() string {
	return "project_members"
}
