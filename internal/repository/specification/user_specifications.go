package specification

import (
	"gorm.io/gorm"
)

// ByEmail looks a user up by exact email.
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

// ByRoleKey filters roles by machine key.
type ByRoleKey struct {
	Key string
}

func (s ByRoleKey) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("key = ?", s.Key)
}
