package visibility

import (
	"go-workboard/internal/domain"

	"gorm.io/gorm"
)

// Scope applies restrict unless the actor is a Director, who sees every row.
func Scope(actor domain.Actor, restrict func(db *gorm.DB) *gorm.DB) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if actor.IsDirector() {
			return db
		}
		return restrict(db)
	}
}

func OwnedBy(column, employeeID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", employeeID)
	}
}
