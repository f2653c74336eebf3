package counter

import (
	"context"
	"time"

	"gorm.io/gorm"
)

const ScopeProjectNumber = "project_number"

//go:generate mockgen -source=counter_repo.go -destination=mock/counter_repo_mock.go -package=mock
type Repository interface {
	GetNextValue(ctx context.Context, scope string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetNextValue(ctx context.Context, scope string) (int64, error) {
	var nextValue int64

	// single statement upsert so concurrent callers never receive the same value
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO workboard_counters (scope, last_value, updated_at)
		VALUES (?, 1, now())
		ON CONFLICT (scope) DO UPDATE
		SET last_value = workboard_counters.last_value + 1, updated_at = now()
		RETURNING last_value
	`, scope).Scan(&nextValue).Error
	if err != nil {
		return 0, err
	}

	return nextValue, nil
}

// Counter is the gorm model of workboard_counters, used only for migrations.
type Counter struct {
	Scope     string `gorm:"type:varchar(100);primaryKey"`
	LastValue int64  `gorm:"not null;default:0"`
	UpdatedAt time.Time
}

func (Counter) TableName() string { return "workboard_counters" }
