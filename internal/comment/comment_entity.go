package comment

import (
	"time"

	"github.com/google/uuid"
)

const (
	OwnerProject         = "project"
	OwnerTask            = "task"
	OwnerIndependentWork = "independent_work"
)

type Comment struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerType            string    `gorm:"type:varchar(30);not null;index:idx_comments_owner"`
	OwnerID              uuid.UUID `gorm:"type:uuid;not null;index:idx_comments_owner"`
	AuthorID             uuid.UUID `gorm:"type:uuid;not null"`
	AuthorName           string    `gorm:"type:varchar(255)"`
	AuthorRole           string    `gorm:"type:varchar(30);not null"`
	Text                 string    `gorm:"type:text;not null"`
	VisibleToEmployee    bool      `gorm:"not null;default:true"`
	VisibleToProjectHead bool      `gorm:"not null;default:true"`
	CreatedAt            time.Time `gorm:"index:idx_comments_owner"`
}
