package task

import (
	"context"
	"database/sql"
	"time"

	"go-workboard/internal/domain"
	"go-workboard/internal/status"
	"go-workboard/internal/visibility"

	"gorm.io/gorm"
)

// assignedClause admits tasks the caller is assigned to. Project heads also see
// tasks they head or handed out.
const (
	assignedClause = `tasks.id IN (SELECT task_id FROM task_assignees WHERE employee_id = ?)`
	headClause     = assignedClause + ` OR tasks.project_head_id = ? OR tasks.assigned_by_id = ?`
)

func VisibleTo(actor domain.Actor) func(db *gorm.DB) *gorm.DB {
	return visibility.Scope(actor, func(db *gorm.DB) *gorm.DB {
		id := actor.EmployeeID
		if actor.IsProjectHead() {
			return db.Where(headClause, id, id, id)
		}
		return db.Where(assignedClause, id)
	})
}

func applyFilter(f Filter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.Status != "" {
			db = db.Where("tasks.status = ?", f.Status)
		}
		if f.Priority != "" {
			db = db.Where("tasks.priority = ?", f.Priority)
		}
		if f.ProjectID != "" {
			db = db.Where("tasks.project_id = ?", f.ProjectID)
		}
		if f.AssigneeID != "" {
			db = db.Where("tasks.id IN (SELECT task_id FROM task_assignees WHERE employee_id = ?)", f.AssigneeID)
		}
		return db
	}
}

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, t *Task) error
	FindAllVisible(ctx context.Context, actor domain.Actor, filter Filter) ([]Task, error)
	FindVisibleByID(ctx context.Context, actor domain.Actor, id string) (*Task, error)
	Update(ctx context.Context, t *Task) error
	ReplaceAssignees(ctx context.Context, t *Task) error
	Delete(ctx context.Context, id string) error
	ProjectExists(ctx context.Context, projectID string) (bool, error)
	// MarkOverdue flips open tasks due before today to Overdue and returns their ids.
	MarkOverdue(ctx context.Context, today time.Time) ([]string, error)
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

func (r *repository) Create(ctx context.Context, t *Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) FindAllVisible(ctx context.Context, actor domain.Actor, filter Filter) ([]Task, error) {
	var tasks []Task
	err := r.db.WithContext(ctx).
		Scopes(VisibleTo(actor), applyFilter(filter)).
		Preload("Assignees").
		Order("tasks.due_date ASC, tasks.created_at ASC").
		Find(&tasks).Error
	return tasks, err
}

func (r *repository) FindVisibleByID(ctx context.Context, actor domain.Actor, id string) (*Task, error) {
	var t Task
	err := r.db.WithContext(ctx).
		Scopes(VisibleTo(actor)).
		Preload("Assignees").
		First(&t, "tasks.id = ?", id).Error
	return &t, err
}

func (r *repository) Update(ctx context.Context, t *Task) error {
	return r.db.WithContext(ctx).Omit("Assignees").Save(t).Error
}

func (r *repository) ReplaceAssignees(ctx context.Context, t *Task) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("task_id = ?", t.ID).Delete(&Assignee{}).Error; err != nil {
		return err
	}
	if len(t.Assignees) == 0 {
		return nil
	}
	return db.Create(&t.Assignees).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&Task{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) ProjectExists(ctx context.Context, projectID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table("projects").
		Where("id = ? AND deleted_at IS NULL", projectID).
		Count(&n).Error
	return n > 0, err
}

func (r *repository) MarkOverdue(ctx context.Context, today time.Time) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Raw(`
		UPDATE tasks SET status = ?, updated_at = now()
		WHERE status IN (?, ?) AND due_date < ? AND deleted_at IS NULL
		RETURNING id
	`, status.TaskOverdue, status.TaskPending, status.TaskInProgress, today).Scan(&ids).Error
	return ids, err
}
