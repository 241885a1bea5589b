package specification

import (
	"gorm.io/gorm"
)

// TitleOrContentILike matches documents whose title or content contains the
// query text, case-insensitive.
type TitleOrContentILike struct {
	Query string
}

func (s TitleOrContentILike) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)
}
