package auth

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	GetByUsername(ctx context.Context, username string) (*Account, error)
	GetByID(ctx context.Context, id string) (*Account, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByUsername(ctx context.Context, username string) (*Account, error) {
	var account Account
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&account).Error
	return &account, err
}

func (r *repository) GetByID(ctx context.Context, id string) (*Account, error) {
	var account Account
	err := r.db.WithContext(ctx).First(&account, "id = ?", id).Error
	return &account, err
}
