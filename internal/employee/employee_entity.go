package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Employee struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_employees_email"`
	Phone        string    `gorm:"type:varchar(50)"`
	Position     string    `gorm:"type:varchar(150)"`
	Department   string    `gorm:"type:varchar(150)"`
	JoiningDate  time.Time `gorm:"type:date"`
	Username     string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_employees_username"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(30);not null"`
	Status       string    `gorm:"type:varchar(30);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}
