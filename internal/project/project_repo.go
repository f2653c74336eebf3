package project

import (
	"context"
	"database/sql"

	"go-workboard/internal/domain"
	"go-workboard/internal/visibility"

	"gorm.io/gorm"
)

// visibleProjectsClause admits projects assigned to the caller or holding a task they work on or head.
const visibleProjectsClause = `projects.assigned_to_id = ?
	OR projects.id IN (
		SELECT t.project_id FROM tasks t
		JOIN task_assignees ta ON ta.task_id = t.id
		WHERE ta.employee_id = ? AND t.deleted_at IS NULL
	)
	OR projects.id IN (
		SELECT project_id FROM tasks
		WHERE project_head_id = ? AND deleted_at IS NULL
	)`

func VisibleTo(actor domain.Actor) func(db *gorm.DB) *gorm.DB {
	return visibility.Scope(actor, func(db *gorm.DB) *gorm.DB {
		id := actor.EmployeeID
		return db.Where(visibleProjectsClause, id, id, id)
	})
}

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Project) error
	FindAllVisible(ctx context.Context, actor domain.Actor) ([]Project, error)
	FindVisibleByID(ctx context.Context, actor domain.Actor, id string) (*Project, error)
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, id string) error
	DetachTasks(ctx context.Context, id string) (int64, error)
	AddRemark(ctx context.Context, remark *Remark) error
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

func (r *repository) Create(ctx context.Context, p *Project) error {
	return r.db.WithContext(ctx).Omit("Remarks").Create(p).Error
}

func (r *repository) FindAllVisible(ctx context.Context, actor domain.Actor) ([]Project, error) {
	var projects []Project
	err := r.db.WithContext(ctx).
		Scopes(VisibleTo(actor)).
		Preload("Remarks", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

func (r *repository) FindVisibleByID(ctx context.Context, actor domain.Actor, id string) (*Project, error) {
	var p Project
	err := r.db.WithContext(ctx).
		Scopes(VisibleTo(actor)).
		Preload("Remarks", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&p, "projects.id = ?", id).Error
	return &p, err
}

func (r *repository) Update(ctx context.Context, p *Project) error {
	return r.db.WithContext(ctx).Omit("Remarks").Save(p).Error
}

// DetachTasks clears the project reference on every task that points at id.
func (r *repository) DetachTasks(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Exec(
		"UPDATE tasks SET project_id = NULL, updated_at = NOW() WHERE project_id = ?", id,
	)
	return res.RowsAffected, res.Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&Project{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) AddRemark(ctx context.Context, remark *Remark) error {
	return r.db.WithContext(ctx).Create(remark).Error
}
