package task

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"go-workboard/internal/comment"
	"go-workboard/internal/directory"
	"go-workboard/internal/domain"
	"go-workboard/internal/events"
	"go-workboard/internal/messaging/kafka"
	"go-workboard/internal/metrics"
	"go-workboard/internal/shared/contextutil"
	"go-workboard/internal/status"
	taskerrors "go-workboard/internal/task/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, actor domain.Actor, req CreateTaskRequest) (TaskResponse, error)
	GetAll(ctx context.Context, actor domain.Actor, filter Filter) ([]TaskResponse, error)
	GetByID(ctx context.Context, actor domain.Actor, id string) (TaskResponse, error)
	Update(ctx context.Context, actor domain.Actor, id string, req UpdateTaskRequest) (TaskResponse, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
	AddComment(ctx context.Context, actor domain.Actor, id string, req comment.CreateCommentRequest) (TaskResponse, error)

	RequestExtension(ctx context.Context, actor domain.Actor, id string, req ExtensionRequest) (TaskResponse, error)
	RespondExtension(ctx context.Context, actor domain.Actor, id string, req RespondRequest) (TaskResponse, error)
	RequestCompletion(ctx context.Context, actor domain.Actor, id string, req CompletionRequest) (TaskResponse, error)
	RespondCompletion(ctx context.Context, actor domain.Actor, id string, req RespondRequest) (TaskResponse, error)

	// MarkOverdue moves open tasks past their due date to Overdue and returns how many changed.
	MarkOverdue(ctx context.Context, now time.Time) (int, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	comments  comment.Repository
	outbox    kafka.OutboxRepository
	directory directory.Directory
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	comments comment.Repository,
	outboxRepo kafka.OutboxRepository,
	dir directory.Directory,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("task.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("task.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		comments:  comments,
		outbox:    outboxRepo,
		directory: dir,
		logger:    l,
	}
}

var systemActor = domain.Actor{Name: "system"}

func parseDate(value string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, taskerrors.ErrInvalidDueDate
	}
	return d, nil
}

func parseOptionalID(value string) *uuid.UUID {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return nil
	}
	return &id
}

// checkReferences verifies that every assignee, the project head and the project exist.
func (s *service) checkReferences(ctx context.Context, assigneeIDs []string, projectHeadID, projectID *uuid.UUID) ([]Assignee, error) {
	ids := make([]string, 0, len(assigneeIDs)+1)
	ids = append(ids, assigneeIDs...)
	if projectHeadID != nil {
		ids = append(ids, projectHeadID.String())
	}

	found, err := s.directory.Lookup(ctx, ids)
	if err != nil {
		return nil, err
	}
	if missing := directory.Missing(assigneeIDs, found); len(missing) > 0 {
		s.logger.Warn("task assignees missing", zap.Strings("employee_ids", missing))
		return nil, taskerrors.ErrAssigneeNotFound
	}
	if projectHeadID != nil {
		if _, ok := found[projectHeadID.String()]; !ok {
			return nil, taskerrors.ErrProjectHeadNotFound
		}
	}
	if projectID != nil {
		ok, err := s.repo.ProjectExists(ctx, projectID.String())
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, taskerrors.ErrProjectNotFound
		}
	}

	seen := make(map[string]struct{}, len(assigneeIDs))
	assignees := make([]Assignee, 0, len(assigneeIDs))
	for _, raw := range assigneeIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, taskerrors.ErrAssigneeNotFound
		}
		if _, dup := seen[id.String()]; dup {
			continue
		}
		seen[id.String()] = struct{}{}
		assignees = append(assignees, Assignee{EmployeeID: id})
	}
	return assignees, nil
}

func (s *service) enqueue(ctx context.Context, tx *sql.Tx, t *Task, eventType string, actor domain.Actor, requestStatus, note string) error {
	if s.outbox == nil {
		return nil
	}
	rid := contextutil.GetRequestID(ctx)
	payload := events.TaskEvent{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		RequestID:     rid,
		TaskID:        t.ID.String(),
		ActorID:       actor.EmployeeID,
		ActorName:     actor.Name,
		ActorRole:     actor.Role,
		Status:        t.Status,
		RequestStatus: requestStatus,
		Note:          note,
		OccurredAt:    time.Now().UTC(),
	}
	event, err := kafka.NewOutboxEvent(rid, "task", t.ID.String(), eventType, events.TaskLifecycleTopic, payload)
	if err != nil {
		return err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
		s.logger.Error("task outbox persist failed",
			zap.String("request_id", rid),
			zap.String("task_id", t.ID.String()),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// save persists t and its lifecycle event in one transaction.
func (s *service) save(ctx context.Context, t *Task, replaceAssignees bool, eventType string, actor domain.Actor, requestStatus, note string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("task begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	repo := s.repo.WithTx(tx)
	if err := repo.Update(ctx, t); err != nil {
		s.logger.Error("task persist failed", zap.String("task_id", t.ID.String()), zap.Error(err))
		return mapRepositoryError(err)
	}
	if replaceAssignees {
		if err := repo.ReplaceAssignees(ctx, t); err != nil {
			s.logger.Error("task assignees persist failed", zap.String("task_id", t.ID.String()), zap.Error(err))
			return err
		}
	}
	if err := s.enqueue(ctx, tx, t, eventType, actor, requestStatus, note); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("task commit failed", zap.Error(err))
		return err
	}
	return nil
}

func (s *service) Create(ctx context.Context, actor domain.Actor, req CreateTaskRequest) (TaskResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create task requested",
		zap.String("request_id", rid),
		zap.String("actor_id", actor.EmployeeID),
		zap.String("title", req.Title),
	)

	if !status.IsValid(status.KindPriority, req.Priority) {
		return TaskResponse{}, taskerrors.ErrInvalidPriority
	}
	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		return TaskResponse{}, err
	}
	assignedBy, err := uuid.Parse(actor.EmployeeID)
	if err != nil {
		return TaskResponse{}, taskerrors.ErrNotTaskManager
	}

	projectHeadID := parseOptionalID(req.ProjectHeadID)
	projectID := parseOptionalID(req.ProjectID)
	assignees, err := s.checkReferences(ctx, req.AssignedEmployeeIDs, projectHeadID, projectID)
	if err != nil {
		s.logger.Warn("create task references rejected", zap.String("request_id", rid), zap.Error(err))
		return TaskResponse{}, err
	}

	t := &Task{
		ID:            uuid.New(),
		Title:         strings.TrimSpace(req.Title),
		Description:   strings.TrimSpace(req.Description),
		ProjectID:     projectID,
		AssignedByID:  assignedBy,
		ProjectHeadID: projectHeadID,
		Priority:      req.Priority,
		Status:        status.TaskPending,
		DueDate:       dueDate,
	}
	for i := range assignees {
		assignees[i].TaskID = t.ID
	}
	t.Assignees = assignees

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create task begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return TaskResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, t); err != nil {
		s.logger.Error("create task persist failed", zap.String("request_id", rid), zap.Error(err))
		return TaskResponse{}, err
	}
	if err := s.enqueue(ctx, tx, t, events.EventTaskCreated, actor, "", ""); err != nil {
		return TaskResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create task commit failed", zap.String("request_id", rid), zap.Error(err))
		return TaskResponse{}, err
	}

	s.logger.Info("create task success",
		zap.String("request_id", rid),
		zap.String("task_id", t.ID.String()),
		zap.Int("assignees", len(t.Assignees)),
	)
	return mapToResponse(*t, nil, actor, s.names(ctx, []Task{*t})), nil
}

func (s *service) names(ctx context.Context, tasks []Task) map[string]string {
	var ids []string
	for _, t := range tasks {
		ids = append(ids, t.AssigneeIDs()...)
	}
	names := make(map[string]string, len(ids))
	found, err := s.directory.Lookup(ctx, ids)
	if err != nil {
		s.logger.Warn("resolve assignee names failed", zap.Error(err))
		return names
	}
	for id, p := range found {
		names[id] = p.Name
	}
	return names
}

func (s *service) GetAll(ctx context.Context, actor domain.Actor, filter Filter) ([]TaskResponse, error) {
	s.logger.Debug("get all tasks requested",
		zap.String("actor_id", actor.EmployeeID),
		zap.String("role", actor.Role),
		zap.String("status", filter.Status),
		zap.String("priority", filter.Priority),
	)

	tasks, err := s.repo.FindAllVisible(ctx, actor, filter)
	if err != nil {
		s.logger.Error("get all tasks failed", zap.Error(err))
		return nil, err
	}

	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID.String()
	}
	grouped, err := s.comments.FindByOwners(ctx, comment.OwnerTask, ids)
	if err != nil {
		s.logger.Error("get all tasks load comments failed", zap.Error(err))
		return nil, err
	}

	names := s.names(ctx, tasks)
	resp := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		resp[i] = mapToResponse(t, grouped[t.ID.String()], actor, names)
	}
	return resp, nil
}

func (s *service) load(ctx context.Context, actor domain.Actor, id string) (*Task, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, taskerrors.ErrInvalidTaskID
	}
	t, err := s.repo.FindVisibleByID(ctx, actor, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return t, nil
}

func (s *service) respond(ctx context.Context, actor domain.Actor, t Task) (TaskResponse, error) {
	comments, err := s.comments.FindByOwner(ctx, comment.OwnerTask, t.ID.String())
	if err != nil {
		s.logger.Error("load task comments failed", zap.String("task_id", t.ID.String()), zap.Error(err))
		return TaskResponse{}, err
	}
	return mapToResponse(t, comments, actor, s.names(ctx, []Task{t})), nil
}

func (s *service) GetByID(ctx context.Context, actor domain.Actor, id string) (TaskResponse, error) {
	s.logger.Debug("get task by id requested", zap.String("task_id", id))

	t, err := s.load(ctx, actor, id)
	if err != nil {
		s.logger.Warn("get task by id failed", zap.String("task_id", id), zap.Error(err))
		return TaskResponse{}, err
	}
	return s.respond(ctx, actor, *t)
}

func canManage(actor domain.Actor, t *Task) bool {
	return actor.IsDirector() || t.IsAssigner(actor.EmployeeID) || t.IsHeadedBy(actor.EmployeeID)
}

func (s *service) Update(ctx context.Context, actor domain.Actor, id string, req UpdateTaskRequest) (TaskResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update task requested",
		zap.String("request_id", rid),
		zap.String("task_id", id),
		zap.String("actor_id", actor.EmployeeID),
	)

	if !status.IsValid(status.KindPriority, req.Priority) {
		return TaskResponse{}, taskerrors.ErrInvalidPriority
	}
	if !status.IsValid(status.KindTask, req.Status) {
		return TaskResponse{}, taskerrors.ErrInvalidStatus
	}
	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		return TaskResponse{}, err
	}

	t, err := s.load(ctx, actor, id)
	if err != nil {
		return TaskResponse{}, err
	}
	if !canManage(actor, t) {
		s.logger.Warn("update task forbidden", zap.String("task_id", id), zap.String("actor_id", actor.EmployeeID))
		return TaskResponse{}, taskerrors.ErrNotTaskManager
	}
	if t.IsLocked && !actor.IsDirector() {
		s.logger.Warn("update task locked", zap.String("task_id", id), zap.String("actor_id", actor.EmployeeID))
		return TaskResponse{}, taskerrors.ErrTaskLocked
	}

	projectHeadID := parseOptionalID(req.ProjectHeadID)
	projectID := parseOptionalID(req.ProjectID)
	assignees, err := s.checkReferences(ctx, req.AssignedEmployeeIDs, projectHeadID, projectID)
	if err != nil {
		s.logger.Warn("update task references rejected", zap.String("task_id", id), zap.Error(err))
		return TaskResponse{}, err
	}
	for i := range assignees {
		assignees[i].TaskID = t.ID
	}

	t.Title = strings.TrimSpace(req.Title)
	t.Description = strings.TrimSpace(req.Description)
	t.ProjectID = projectID
	t.ProjectHeadID = projectHeadID
	t.Priority = req.Priority
	t.DueDate = dueDate
	t.Assignees = assignees
	switch {
	case req.Status == status.TaskCompleted && t.Status != status.TaskCompleted:
		today := truncateDay(time.Now())
		t.CompletedDate = &today
	case req.Status != status.TaskCompleted && t.Status == status.TaskCompleted:
		Reopen(t)
	case req.Status != status.TaskCompleted:
		t.CompletedDate = nil
	}
	t.Status = req.Status

	if err := s.save(ctx, t, true, events.EventTaskUpdated, actor, "", ""); err != nil {
		return TaskResponse{}, err
	}

	s.logger.Info("update task success",
		zap.String("request_id", rid),
		zap.String("task_id", id),
		zap.String("status", t.Status),
	)
	return s.respond(ctx, actor, *t)
}

func (s *service) Delete(ctx context.Context, actor domain.Actor, id string) error {
	s.logger.Debug("delete task requested", zap.String("task_id", id))

	t, err := s.load(ctx, actor, id)
	if err != nil {
		return err
	}
	if !actor.IsDirector() && !t.IsAssigner(actor.EmployeeID) {
		s.logger.Warn("delete task forbidden", zap.String("task_id", id), zap.String("actor_id", actor.EmployeeID))
		return taskerrors.ErrNotTaskManager
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete task begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Delete(ctx, id); err != nil {
		s.logger.Warn("delete task failed", zap.String("task_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}
	if err := s.comments.WithTx(tx).DeleteByOwner(ctx, comment.OwnerTask, id); err != nil {
		s.logger.Error("delete task comments failed", zap.String("task_id", id), zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete task commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete task success", zap.String("task_id", id))
	return nil
}

func (s *service) AddComment(ctx context.Context, actor domain.Actor, id string, req comment.CreateCommentRequest) (TaskResponse, error) {
	t, err := s.load(ctx, actor, id)
	if err != nil {
		return TaskResponse{}, err
	}

	c, err := comment.New(comment.OwnerTask, t.ID, actor, req)
	if err != nil {
		return TaskResponse{}, err
	}
	if err := s.comments.Create(ctx, c); err != nil {
		s.logger.Error("add task comment failed", zap.String("task_id", id), zap.Error(err))
		return TaskResponse{}, err
	}

	s.logger.Info("add task comment success",
		zap.String("task_id", id),
		zap.String("comment_id", c.ID.String()),
	)
	return s.respond(ctx, actor, *t)
}

func (s *service) RequestExtension(ctx context.Context, actor domain.Actor, id string, req ExtensionRequest) (TaskResponse, error) {
	requested, err := parseDate(req.RequestedDueDate)
	if err != nil {
		return TaskResponse{}, err
	}
	t, err := s.load(ctx, actor, id)
	if err != nil {
		return TaskResponse{}, err
	}

	if err := OpenExtension(t, actor, requested, req.Reason, time.Now().UTC()); err != nil {
		s.logger.Warn("extension request rejected",
			zap.String("task_id", id),
			zap.String("actor_id", actor.EmployeeID),
			zap.String("current", t.ExtensionRequestStatus),
			zap.Error(err),
		)
		return TaskResponse{}, err
	}
	if err := s.save(ctx, t, false, events.EventTaskExtensionRequested, actor, t.ExtensionRequestStatus, t.ExtensionReason); err != nil {
		return TaskResponse{}, err
	}

	metrics.IncrementWorkflowTransition(WorkflowExtension, t.ExtensionRequestStatus)
	s.logger.Info("extension requested",
		zap.String("task_id", id),
		zap.String("requested_due_date", req.RequestedDueDate),
	)
	return s.respond(ctx, actor, *t)
}

func (s *service) RespondExtension(ctx context.Context, actor domain.Actor, id string, req RespondRequest) (TaskResponse, error) {
	t, err := s.load(ctx, actor, id)
	if err != nil {
		return TaskResponse{}, err
	}

	if err := ResolveExtension(t, actor, req.Decision, req.Comment, time.Now().UTC()); err != nil {
		s.logger.Warn("extension response rejected",
			zap.String("task_id", id),
			zap.String("actor_id", actor.EmployeeID),
			zap.String("decision", req.Decision),
			zap.Error(err),
		)
		return TaskResponse{}, err
	}

	eventType := events.EventTaskExtensionApproved
	if req.Decision == status.RequestRejected {
		eventType = events.EventTaskExtensionRejected
	}
	if err := s.save(ctx, t, false, eventType, actor, t.ExtensionRequestStatus, t.ExtensionResponseComment); err != nil {
		return TaskResponse{}, err
	}

	metrics.IncrementWorkflowTransition(WorkflowExtension, t.ExtensionRequestStatus)
	s.logger.Info("extension resolved", zap.String("task_id", id), zap.String("decision", req.Decision))
	return s.respond(ctx, actor, *t)
}

func (s *service) RequestCompletion(ctx context.Context, actor domain.Actor, id string, req CompletionRequest) (TaskResponse, error) {
	t, err := s.load(ctx, actor, id)
	if err != nil {
		return TaskResponse{}, err
	}

	if err := OpenCompletion(t, actor, req.Note, time.Now().UTC()); err != nil {
		s.logger.Warn("completion request rejected",
			zap.String("task_id", id),
			zap.String("actor_id", actor.EmployeeID),
			zap.String("current", t.CompletionRequestStatus),
			zap.Error(err),
		)
		return TaskResponse{}, err
	}
	if err := s.save(ctx, t, false, events.EventTaskCompletionRequest, actor, t.CompletionRequestStatus, t.CompletionNote); err != nil {
		return TaskResponse{}, err
	}

	metrics.IncrementWorkflowTransition(WorkflowCompletion, t.CompletionRequestStatus)
	s.logger.Info("completion requested", zap.String("task_id", id))
	return s.respond(ctx, actor, *t)
}

func (s *service) RespondCompletion(ctx context.Context, actor domain.Actor, id string, req RespondRequest) (TaskResponse, error) {
	t, err := s.load(ctx, actor, id)
	if err != nil {
		return TaskResponse{}, err
	}

	if err := ResolveCompletion(t, actor, req.Decision, req.Comment, req.Rating, time.Now().UTC()); err != nil {
		s.logger.Warn("completion response rejected",
			zap.String("task_id", id),
			zap.String("actor_id", actor.EmployeeID),
			zap.String("decision", req.Decision),
			zap.Error(err),
		)
		return TaskResponse{}, err
	}

	eventType := events.EventTaskCompletionApproved
	if req.Decision == status.RequestRejected {
		eventType = events.EventTaskCompletionRejected
	}
	if err := s.save(ctx, t, false, eventType, actor, t.CompletionRequestStatus, t.CompletionResponseComment); err != nil {
		return TaskResponse{}, err
	}

	metrics.IncrementWorkflowTransition(WorkflowCompletion, t.CompletionRequestStatus)
	s.logger.Info("completion resolved", zap.String("task_id", id), zap.String("decision", req.Decision))
	return s.respond(ctx, actor, *t)
}

func (s *service) MarkOverdue(ctx context.Context, now time.Time) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("overdue sweep begin tx failed", zap.Error(err))
		return 0, err
	}
	defer tx.Rollback()

	ids, err := s.repo.WithTx(tx).MarkOverdue(ctx, truncateDay(now))
	if err != nil {
		s.logger.Error("overdue sweep update failed", zap.Error(err))
		return 0, err
	}
	for _, id := range ids {
		taskID, err := uuid.Parse(id)
		if err != nil {
			continue
		}
		t := &Task{ID: taskID, Status: status.TaskOverdue}
		if err := s.enqueue(ctx, tx, t, events.EventTaskOverdue, systemActor, "", ""); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("overdue sweep commit failed", zap.Error(err))
		return 0, err
	}

	if len(ids) > 0 {
		s.logger.Info("overdue sweep marked tasks", zap.Int("count", len(ids)))
	}
	return len(ids), nil
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}

func formatID(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

func mapToResponse(t Task, comments []comment.Comment, viewer domain.Actor, names map[string]string) TaskResponse {
	assignees := make([]AssigneeResponse, len(t.Assignees))
	for i, a := range t.Assignees {
		assignees[i] = AssigneeResponse{ID: a.EmployeeID.String(), Name: names[a.EmployeeID.String()]}
	}

	resp := TaskResponse{
		ID:            t.ID.String(),
		Title:         t.Title,
		Description:   t.Description,
		ProjectID:     formatID(t.ProjectID),
		Assignees:     assignees,
		AssignedByID:  t.AssignedByID.String(),
		ProjectHeadID: formatID(t.ProjectHeadID),
		Priority:      t.Priority,
		PriorityColor: status.ColorFor(status.KindPriority, t.Priority),
		Status:        t.Status,
		StatusColor:   status.ColorFor(status.KindTask, t.Status),
		DueDate:       t.DueDate.Format(DateLayout),
		CompletedDate: formatDate(t.CompletedDate),
		IsLocked:      t.IsLocked,
		Rating:        t.Rating,
		Comments:      comment.ToVisibleResponses(comments, viewer),
		CreatedAt:     t.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     t.UpdatedAt.UTC().Format(time.RFC3339),
	}

	if t.ExtensionRequestStatus != status.RequestNone {
		resp.ExtensionRequest = &ExtensionResponse{
			Status:           t.ExtensionRequestStatus,
			RequestedAt:      formatTime(t.ExtensionRequestedAt),
			RequestedByID:    formatID(t.ExtensionRequestedByID),
			RequestedDueDate: formatDate(t.ExtensionRequestedDueDate),
			Reason:           t.ExtensionReason,
			RespondedByID:    formatID(t.ExtensionRespondedByID),
			RespondedAt:      formatTime(t.ExtensionRespondedAt),
			ResponseComment:  t.ExtensionResponseComment,
			StatusColor:      status.ColorFor(status.KindRequest, t.ExtensionRequestStatus),
		}
	}
	if t.CompletionRequestStatus != status.RequestNone {
		resp.CompletionRequest = &CompletionResponse{
			Status:          t.CompletionRequestStatus,
			RequestedAt:     formatTime(t.CompletionRequestedAt),
			RequestedByID:   formatID(t.CompletionRequestedByID),
			Note:            t.CompletionNote,
			RespondedByID:   formatID(t.CompletionRespondedByID),
			RespondedAt:     formatTime(t.CompletionRespondedAt),
			ResponseComment: t.CompletionResponseComment,
			StatusColor:     status.ColorFor(status.KindRequest, t.CompletionRequestStatus),
		}
	}
	return resp
}
