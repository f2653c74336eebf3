package independentwork

import (
	"context"
	"database/sql"

	"go-workboard/internal/domain"
	"go-workboard/internal/visibility"

	"gorm.io/gorm"
)

// VisibleTo lets Directors and Project Heads read every entry and Employees only their own.
func VisibleTo(actor domain.Actor) func(db *gorm.DB) *gorm.DB {
	if actor.IsProjectHead() {
		return func(db *gorm.DB) *gorm.DB { return db }
	}
	return visibility.Scope(actor, visibility.OwnedBy("independent_work.employee_id", actor.EmployeeID))
}

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Entry) error
	FindAllVisible(ctx context.Context, actor domain.Actor) ([]Entry, error)
	FindVisibleByEmployee(ctx context.Context, actor domain.Actor, employeeID string) ([]Entry, error)
	FindVisibleByID(ctx context.Context, actor domain.Actor, id string) (*Entry, error)
	Update(ctx context.Context, e *Entry) error
	ReplaceAttachments(ctx context.Context, e *Entry) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	db := r.db.Session(&gorm.Session{})
	db.Statement.ConnPool = tx
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, e *Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) list(ctx context.Context, actor domain.Actor, scopes ...func(*gorm.DB) *gorm.DB) ([]Entry, error) {
	var entries []Entry
	err := r.db.WithContext(ctx).
		Scopes(VisibleTo(actor)).
		Scopes(scopes...).
		Preload("Attachments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Order("independent_work.date DESC, independent_work.created_at DESC").
		Find(&entries).Error
	return entries, err
}

func (r *repository) FindAllVisible(ctx context.Context, actor domain.Actor) ([]Entry, error) {
	return r.list(ctx, actor)
}

func (r *repository) FindVisibleByEmployee(ctx context.Context, actor domain.Actor, employeeID string) ([]Entry, error) {
	return r.list(ctx, actor, visibility.OwnedBy("independent_work.employee_id", employeeID))
}

func (r *repository) FindVisibleByID(ctx context.Context, actor domain.Actor, id string) (*Entry, error) {
	var e Entry
	err := r.db.WithContext(ctx).
		Scopes(VisibleTo(actor)).
		Preload("Attachments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&e, "independent_work.id = ?", id).Error
	return &e, err
}

func (r *repository) Update(ctx context.Context, e *Entry) error {
	return r.db.WithContext(ctx).Omit("Attachments").Save(e).Error
}

func (r *repository) ReplaceAttachments(ctx context.Context, e *Entry) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("entry_id = ?", e.ID).Delete(&Attachment{}).Error; err != nil {
		return err
	}
	if len(e.Attachments) == 0 {
		return nil
	}
	return db.Create(&e.Attachments).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&Entry{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
