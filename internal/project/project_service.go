package project

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"go-workboard/internal/comment"
	"go-workboard/internal/directory"
	"go-workboard/internal/domain"
	projecterrors "go-workboard/internal/project/errors"
	"go-workboard/internal/shared/apperror"
	"go-workboard/internal/shared/contextutil"
	"go-workboard/internal/shared/counter"
	"go-workboard/internal/status"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const projectNumberFormat = "PRJ-%06d"

type Service interface {
	Create(ctx context.Context, actor domain.Actor, req CreateProjectRequest) (ProjectResponse, error)
	GetAll(ctx context.Context, actor domain.Actor) ([]ProjectResponse, error)
	GetByID(ctx context.Context, actor domain.Actor, id string) (ProjectResponse, error)
	Update(ctx context.Context, actor domain.Actor, id string, req UpdateProjectRequest) (ProjectResponse, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
	AddRemark(ctx context.Context, actor domain.Actor, id string, req AddRemarkRequest) (ProjectResponse, error)
	AddComment(ctx context.Context, actor domain.Actor, id string, req comment.CreateCommentRequest) (ProjectResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	comments  comment.Repository
	counter   counter.Repository
	directory directory.Directory
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	comments comment.Repository,
	counterRepo counter.Repository,
	dir directory.Directory,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("project.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("project.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		comments:  comments,
		counter:   counterRepo,
		directory: dir,
		logger:    l,
	}
}

// normalizeProgress pins Completed projects to 100.
func normalizeProgress(projectStatus string, progress *int, current int) int {
	if projectStatus == status.ProjectCompleted {
		return 100
	}
	if progress == nil {
		return current
	}
	return *progress
}

func (s *service) resolveAssignee(ctx context.Context, assignedToID string) (uuid.UUID, string, error) {
	id, err := uuid.Parse(assignedToID)
	if err != nil {
		return uuid.Nil, "", projecterrors.ErrAssigneeNotFound
	}
	found, err := s.directory.Lookup(ctx, []string{id.String()})
	if err != nil {
		return uuid.Nil, "", err
	}
	person, ok := found[id.String()]
	if !ok {
		return uuid.Nil, "", projecterrors.ErrAssigneeNotFound
	}
	return id, person.Name, nil
}

func (s *service) Create(ctx context.Context, actor domain.Actor, req CreateProjectRequest) (ProjectResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create project requested",
		zap.String("request_id", rid),
		zap.String("actor_id", actor.EmployeeID),
		zap.String("name", req.Name),
	)

	if !status.IsValid(status.KindProject, req.Status) {
		s.logger.Warn("create project invalid status", zap.String("status", req.Status))
		return ProjectResponse{}, projecterrors.ErrInvalidStatus
	}

	assigneeID, assigneeName, err := s.resolveAssignee(ctx, req.AssignedToID)
	if err != nil {
		s.logger.Warn("create project assignee rejected", zap.String("assigned_to_id", req.AssignedToID), zap.Error(err))
		return ProjectResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create project begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return ProjectResponse{}, err
	}
	defer tx.Rollback()

	number := strings.TrimSpace(req.ProjectNumber)
	if number == "" {
		next, err := s.counter.GetNextValue(ctx, counter.ScopeProjectNumber)
		if err != nil {
			s.logger.Error("create project generate number failed", zap.Error(err))
			return ProjectResponse{}, err
		}
		number = fmt.Sprintf(projectNumberFormat, next)
	}

	createdBy, _ := uuid.Parse(actor.EmployeeID)
	p := &Project{
		ID:            uuid.New(),
		Name:          strings.TrimSpace(req.Name),
		ProjectNumber: number,
		Location:      strings.TrimSpace(req.Location),
		Description:   strings.TrimSpace(req.Description),
		AssignedToID:  &assigneeID,
		Status:        req.Status,
		Progress:      normalizeProgress(req.Status, req.Progress, 0),
		CreatedByID:   createdBy,
	}

	if err := s.repo.WithTx(tx).Create(ctx, p); err != nil {
		s.logger.Error("create project persist failed", zap.String("request_id", rid), zap.Error(err))
		return ProjectResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create project commit failed", zap.String("request_id", rid), zap.Error(err))
		return ProjectResponse{}, err
	}

	s.logger.Info("create project success",
		zap.String("request_id", rid),
		zap.String("project_id", p.ID.String()),
		zap.String("project_number", p.ProjectNumber),
	)

	resp := mapToResponse(*p, nil, actor)
	resp.AssignedToName = assigneeName
	return resp, nil
}

func (s *service) GetAll(ctx context.Context, actor domain.Actor) ([]ProjectResponse, error) {
	s.logger.Debug("get all projects requested",
		zap.String("actor_id", actor.EmployeeID),
		zap.String("role", actor.Role),
	)

	projects, err := s.repo.FindAllVisible(ctx, actor)
	if err != nil {
		s.logger.Error("get all projects failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	ids := make([]string, len(projects))
	for i, p := range projects {
		ids[i] = p.ID.String()
	}
	grouped, err := s.comments.FindByOwners(ctx, comment.OwnerProject, ids)
	if err != nil {
		s.logger.Error("get all projects load comments failed", zap.Error(err))
		return nil, err
	}

	names := s.assigneeNames(ctx, projects)
	resp := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		resp[i] = mapToResponse(p, grouped[p.ID.String()], actor)
		if p.AssignedToID != nil {
			resp[i].AssignedToName = names[p.AssignedToID.String()]
		}
	}
	return resp, nil
}

func (s *service) assigneeNames(ctx context.Context, projects []Project) map[string]string {
	ids := make([]string, 0, len(projects))
	for _, p := range projects {
		if p.AssignedToID != nil {
			ids = append(ids, p.AssignedToID.String())
		}
	}
	names := make(map[string]string, len(ids))
	found, err := s.directory.Lookup(ctx, ids)
	if err != nil {
		s.logger.Warn("resolve assignee names failed", zap.Error(err))
		return names
	}
	for id, person := range found {
		names[id] = person.Name
	}
	return names
}

func (s *service) load(ctx context.Context, actor domain.Actor, id string) (*Project, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, projecterrors.ErrInvalidProjectID
	}
	p, err := s.repo.FindVisibleByID(ctx, actor, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return p, nil
}

func (s *service) respond(ctx context.Context, actor domain.Actor, p Project) (ProjectResponse, error) {
	comments, err := s.comments.FindByOwner(ctx, comment.OwnerProject, p.ID.String())
	if err != nil {
		s.logger.Error("load project comments failed", zap.String("project_id", p.ID.String()), zap.Error(err))
		return ProjectResponse{}, err
	}
	resp := mapToResponse(p, comments, actor)
	if p.AssignedToID != nil {
		resp.AssignedToName = s.assigneeNames(ctx, []Project{p})[p.AssignedToID.String()]
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, actor domain.Actor, id string) (ProjectResponse, error) {
	s.logger.Debug("get project by id requested", zap.String("project_id", id))

	p, err := s.load(ctx, actor, id)
	if err != nil {
		s.logger.Warn("get project by id failed", zap.String("project_id", id), zap.Error(err))
		return ProjectResponse{}, err
	}
	return s.respond(ctx, actor, *p)
}

func canManage(actor domain.Actor, p *Project) bool {
	if actor.IsDirector() {
		return true
	}
	return actor.IsProjectHead() && p.AssignedToID != nil && p.AssignedToID.String() == actor.EmployeeID
}

func (s *service) Update(ctx context.Context, actor domain.Actor, id string, req UpdateProjectRequest) (ProjectResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update project requested",
		zap.String("request_id", rid),
		zap.String("project_id", id),
		zap.String("actor_id", actor.EmployeeID),
	)

	if !status.IsValid(status.KindProject, req.Status) {
		return ProjectResponse{}, projecterrors.ErrInvalidStatus
	}

	p, err := s.load(ctx, actor, id)
	if err != nil {
		s.logger.Warn("update project load failed", zap.String("project_id", id), zap.Error(err))
		return ProjectResponse{}, err
	}
	if !canManage(actor, p) {
		s.logger.Warn("update project forbidden",
			zap.String("project_id", id),
			zap.String("actor_id", actor.EmployeeID),
		)
		return ProjectResponse{}, projecterrors.ErrNotProjectManager
	}

	assigneeID, _, err := s.resolveAssignee(ctx, req.AssignedToID)
	if err != nil {
		return ProjectResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update project begin tx failed", zap.Error(err))
		return ProjectResponse{}, err
	}
	defer tx.Rollback()

	if number := strings.TrimSpace(req.ProjectNumber); number != "" {
		p.ProjectNumber = number
	}
	p.Name = strings.TrimSpace(req.Name)
	p.Location = strings.TrimSpace(req.Location)
	p.Description = strings.TrimSpace(req.Description)
	p.AssignedToID = &assigneeID
	p.Status = req.Status
	p.Progress = normalizeProgress(req.Status, req.Progress, p.Progress)

	if err := s.repo.WithTx(tx).Update(ctx, p); err != nil {
		s.logger.Error("update project persist failed", zap.Error(err))
		return ProjectResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update project commit failed", zap.Error(err))
		return ProjectResponse{}, err
	}

	s.logger.Info("update project success",
		zap.String("request_id", rid),
		zap.String("project_id", id),
		zap.String("status", p.Status),
		zap.Int("progress", p.Progress),
	)
	return s.respond(ctx, actor, *p)
}

func (s *service) Delete(ctx context.Context, actor domain.Actor, id string) error {
	s.logger.Debug("delete project requested", zap.String("project_id", id))
	if !actor.IsDirector() {
		return apperror.ErrForbidden
	}
	if _, err := uuid.Parse(id); err != nil {
		return projecterrors.ErrInvalidProjectID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete project begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	repo := s.repo.WithTx(tx)
	if err := repo.Delete(ctx, id); err != nil {
		s.logger.Warn("delete project failed", zap.String("project_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}
	detached, err := repo.DetachTasks(ctx, id)
	if err != nil {
		s.logger.Error("detach project tasks failed", zap.String("project_id", id), zap.Error(err))
		return err
	}
	if err := s.comments.WithTx(tx).DeleteByOwner(ctx, comment.OwnerProject, id); err != nil {
		s.logger.Error("delete project comments failed", zap.String("project_id", id), zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete project commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete project success",
		zap.String("project_id", id),
		zap.Int64("detached_tasks", detached),
	)
	return nil
}

func (s *service) AddRemark(ctx context.Context, actor domain.Actor, id string, req AddRemarkRequest) (ProjectResponse, error) {
	p, err := s.load(ctx, actor, id)
	if err != nil {
		return ProjectResponse{}, err
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return ProjectResponse{}, apperror.RequiredField("Text")
	}

	authorID, _ := uuid.Parse(actor.EmployeeID)
	remark := &Remark{
		ID:         uuid.New(),
		ProjectID:  p.ID,
		AuthorID:   authorID,
		AuthorName: actor.Name,
		Text:       text,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.AddRemark(ctx, remark); err != nil {
		s.logger.Error("add project remark failed", zap.String("project_id", id), zap.Error(err))
		return ProjectResponse{}, err
	}
	p.Remarks = append(p.Remarks, *remark)

	s.logger.Info("add project remark success",
		zap.String("project_id", id),
		zap.String("remark_id", remark.ID.String()),
	)
	return s.respond(ctx, actor, *p)
}

func (s *service) AddComment(ctx context.Context, actor domain.Actor, id string, req comment.CreateCommentRequest) (ProjectResponse, error) {
	p, err := s.load(ctx, actor, id)
	if err != nil {
		return ProjectResponse{}, err
	}

	c, err := comment.New(comment.OwnerProject, p.ID, actor, req)
	if err != nil {
		return ProjectResponse{}, err
	}
	if err := s.comments.Create(ctx, c); err != nil {
		s.logger.Error("add project comment failed", zap.String("project_id", id), zap.Error(err))
		return ProjectResponse{}, err
	}

	s.logger.Info("add project comment success",
		zap.String("project_id", id),
		zap.String("comment_id", c.ID.String()),
	)
	return s.respond(ctx, actor, *p)
}

func mapToResponse(p Project, comments []comment.Comment, viewer domain.Actor) ProjectResponse {
	remarks := make([]RemarkResponse, len(p.Remarks))
	for i, r := range p.Remarks {
		remarks[i] = RemarkResponse{
			ID:         r.ID.String(),
			AuthorID:   r.AuthorID.String(),
			AuthorName: r.AuthorName,
			Text:       r.Text,
			CreatedAt:  r.CreatedAt.UTC().Format(time.RFC3339),
		}
	}

	resp := ProjectResponse{
		ID:            p.ID.String(),
		Name:          p.Name,
		ProjectNumber: p.ProjectNumber,
		Location:      p.Location,
		Description:   p.Description,
		Status:        p.Status,
		StatusColor:   status.ColorFor(status.KindProject, p.Status),
		Progress:      p.Progress,
		Remarks:       remarks,
		Comments:      comment.ToVisibleResponses(comments, viewer),
		CreatedAt:     p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     p.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if p.AssignedToID != nil {
		resp.AssignedToID = p.AssignedToID.String()
	}
	return resp
}
