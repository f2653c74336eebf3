package project

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Project struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name          string     `gorm:"type:varchar(255);not null"`
	ProjectNumber string     `gorm:"type:varchar(50);not null;uniqueIndex:uq_projects_number"`
	Location      string     `gorm:"type:varchar(255)"`
	Description   string     `gorm:"type:text"`
	AssignedToID  *uuid.UUID `gorm:"type:uuid;index"`
	Status        string     `gorm:"type:varchar(30);not null"`
	Progress      int        `gorm:"not null;default:0"`
	CreatedByID   uuid.UUID  `gorm:"type:uuid"`
	Remarks       []Remark   `gorm:"foreignKey:ProjectID"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

type Remark struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProjectID  uuid.UUID `gorm:"type:uuid;not null;index"`
	AuthorID   uuid.UUID `gorm:"type:uuid;not null"`
	AuthorName string    `gorm:"type:varchar(255)"`
	Text       string    `gorm:"type:text;not null"`
	CreatedAt  time.Time
}

func (Remark) TableName() string { return "project_remarks" }
