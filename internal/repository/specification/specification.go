// Package specification provides composable query fragments that
// repositories chain onto a GORM statement before executing it.
package specification

import "gorm.io/gorm"

// Specification narrows or shapes a query. Implementations are small value
// types so call sites read declaratively.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
