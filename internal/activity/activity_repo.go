package activity

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, entry *Entry) error
	FindByTask(ctx context.Context, taskID string) ([]Entry, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, entry *Entry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) FindByTask(ctx context.Context, taskID string) ([]Entry, error) {
	var entries []Entry
	err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("occurred_at ASC").
		Find(&entries).Error
	return entries, err
}
