package model

import (
	"github.com/google/uuid"
)

type Role struct {
	Id   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Key  string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name string    `gorm:"type:varchar(100);not null"`
}

func (Role) TableName() string {
	return "roles"
}
