package comment

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, c *Comment) error
	FindByOwner(ctx context.Context, ownerType, ownerID string) ([]Comment, error)
	FindByOwners(ctx context.Context, ownerType string, ownerIDs []string) (map[string][]Comment, error)
	DeleteByOwner(ctx context.Context, ownerType, ownerID string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx runs subsequent statements on tx, which the service opened on the same *sql.DB.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	db := r.db.Session(&gorm.Session{})
	db.Statement.ConnPool = tx
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, c *Comment) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) FindByOwner(ctx context.Context, ownerType, ownerID string) ([]Comment, error) {
	var comments []Comment
	err := r.db.WithContext(ctx).
		Where("owner_type = ? AND owner_id = ?", ownerType, ownerID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

// FindByOwners groups comments by owner id for list endpoints, avoiding one query per row.
func (r *repository) FindByOwners(ctx context.Context, ownerType string, ownerIDs []string) (map[string][]Comment, error) {
	grouped := make(map[string][]Comment, len(ownerIDs))
	if len(ownerIDs) == 0 {
		return grouped, nil
	}

	var comments []Comment
	err := r.db.WithContext(ctx).
		Where("owner_type = ? AND owner_id IN ?", ownerType, ownerIDs).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	for _, c := range comments {
		key := c.OwnerID.String()
		grouped[key] = append(grouped[key], c)
	}
	return grouped, nil
}

func (r *repository) DeleteByOwner(ctx context.Context, ownerType, ownerID string) error {
	return r.db.WithContext(ctx).
		Where("owner_type = ? AND owner_id = ?", ownerType, ownerID).
		Delete(&Comment{}).Error
}
