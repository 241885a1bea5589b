package entity

import (
	"github.com/google/uuid"
)

// Role is a business role on a project (Project Manager, Estimator, ...).
// Key is the stable machine identifier; Name is the display label.
type Role struct {
	Id   uuid.UUID
	Key  string
	Name string
}
