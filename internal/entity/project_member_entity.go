package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProjectMember links a user to a project under exactly one role.
// RoleKey and RoleName are denormalized from the joined role row so callers
// don't need a second lookup.
type ProjectMember struct {
	Id        uuid.UUID
	ProjectId uuid.UUID
	UserId    uuid.UUID
	RoleId    uuid.UUID
	RoleKey   string
	RoleName  string
	CreatedAt time.Time
}
