package auth

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Account is the login view of an employee row.
type Account struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Email        string
	Username     string
	PasswordHash string
	Role         string
	Status       string
	DeletedAt    gorm.DeletedAt
}

func (Account) TableName() string { return "employees" }
