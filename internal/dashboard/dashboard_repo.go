package dashboard

import (
	"context"

	"go-workboard/internal/domain"
	"go-workboard/internal/project"
	"go-workboard/internal/status"
	"go-workboard/internal/task"

	"gorm.io/gorm"
)

type TaskCounts struct {
	ByStatus          map[string]int64
	PendingExtension  int64
	PendingCompletion int64
}

type ProjectTaskCounts struct {
	Total     int64
	Completed int64
	Overdue   int64
}

type Repository interface {
	CountEmployeesByStatus(ctx context.Context) (map[string]int64, error)
	CountProjectsByStatus(ctx context.Context, actor domain.Actor) (map[string]int64, error)
	CountTasks(ctx context.Context, actor domain.Actor) (TaskCounts, error)
	ListProjects(ctx context.Context, actor domain.Actor) ([]project.Project, error)
	CountTasksByProject(ctx context.Context, projectIDs []string) (map[string]ProjectTaskCounts, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

type statusCount struct {
	Status string
	Count  int64
}

func toMap(rows []statusCount) map[string]int64 {
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Status] = r.Count
	}
	return out
}

func (r *repository) CountEmployeesByStatus(ctx context.Context) (map[string]int64, error) {
	var rows []statusCount
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("status, COUNT(*) AS count").
		Where("deleted_at IS NULL").
		Group("status").
		Scan(&rows).Error
	return toMap(rows), err
}

func (r *repository) CountProjectsByStatus(ctx context.Context, actor domain.Actor) (map[string]int64, error) {
	var rows []statusCount
	err := r.db.WithContext(ctx).
		Model(&project.Project{}).
		Scopes(project.VisibleTo(actor)).
		Select("projects.status AS status, COUNT(*) AS count").
		Group("projects.status").
		Scan(&rows).Error
	return toMap(rows), err
}

func (r *repository) CountTasks(ctx context.Context, actor domain.Actor) (TaskCounts, error) {
	var rows []statusCount
	err := r.db.WithContext(ctx).
		Model(&task.Task{}).
		Scopes(task.VisibleTo(actor)).
		Select("tasks.status AS status, COUNT(*) AS count").
		Group("tasks.status").
		Scan(&rows).Error
	if err != nil {
		return TaskCounts{}, err
	}

	var pending struct {
		Extension  int64
		Completion int64
	}
	err = r.db.WithContext(ctx).
		Model(&task.Task{}).
		Scopes(task.VisibleTo(actor)).
		Select(
			"COUNT(*) FILTER (WHERE tasks.extension_request_status = ?) AS extension, "+
				"COUNT(*) FILTER (WHERE tasks.completion_request_status = ?) AS completion",
			status.RequestPending, status.RequestPending,
		).
		Scan(&pending).Error
	if err != nil {
		return TaskCounts{}, err
	}

	return TaskCounts{
		ByStatus:          toMap(rows),
		PendingExtension:  pending.Extension,
		PendingCompletion: pending.Completion,
	}, nil
}

func (r *repository) ListProjects(ctx context.Context, actor domain.Actor) ([]project.Project, error) {
	var projects []project.Project
	err := r.db.WithContext(ctx).
		Scopes(project.VisibleTo(actor)).
		Order("projects.created_at DESC").
		Find(&projects).Error
	return projects, err
}

func (r *repository) CountTasksByProject(ctx context.Context, projectIDs []string) (map[string]ProjectTaskCounts, error) {
	out := make(map[string]ProjectTaskCounts, len(projectIDs))
	if len(projectIDs) == 0 {
		return out, nil
	}

	var rows []struct {
		ProjectID string
		Total     int64
		Completed int64
		Overdue   int64
	}
	err := r.db.WithContext(ctx).
		Model(&task.Task{}).
		Select(
			"project_id, COUNT(*) AS total, "+
				"COUNT(*) FILTER (WHERE status = ?) AS completed, "+
				"COUNT(*) FILTER (WHERE status = ?) AS overdue",
			status.TaskCompleted, status.TaskOverdue,
		).
		Where("project_id IN ?", projectIDs).
		Group("project_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		out[row.ProjectID] = ProjectTaskCounts{Total: row.Total, Completed: row.Completed, Overdue: row.Overdue}
	}
	return out, nil
}
