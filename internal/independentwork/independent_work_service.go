package independentwork

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"go-workboard/internal/comment"
	"go-workboard/internal/directory"
	"go-workboard/internal/domain"
	independentworkerrors "go-workboard/internal/independentwork/errors"
	"go-workboard/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, actor domain.Actor, req CreateEntryRequest) (EntryResponse, error)
	GetAll(ctx context.Context, actor domain.Actor) ([]EntryResponse, error)
	GetByEmployee(ctx context.Context, actor domain.Actor, employeeID string) ([]EntryResponse, error)
	GetByID(ctx context.Context, actor domain.Actor, id string) (EntryResponse, error)
	Update(ctx context.Context, actor domain.Actor, id string, req UpdateEntryRequest) (EntryResponse, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
	AddComment(ctx context.Context, actor domain.Actor, id string, req comment.CreateCommentRequest) (EntryResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	comments  comment.Repository
	directory directory.Directory
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	comments comment.Repository,
	dir directory.Directory,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("independentwork.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("independentwork.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		comments:  comments,
		directory: dir,
		logger:    l,
	}
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return independentworkerrors.ErrEntryNotFound
	}
	return err
}

func parseDate(value string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, independentworkerrors.ErrInvalidDate
	}
	return d, nil
}

func validHours(h float64) bool {
	return h > 0 && h <= 24
}

// resolveEmployee picks the entry owner: the actor, or anyone when a Director names them.
func (s *service) resolveEmployee(ctx context.Context, actor domain.Actor, requested string) (uuid.UUID, string, error) {
	requested = strings.TrimSpace(requested)
	if requested == "" {
		requested = actor.EmployeeID
	}
	if requested != actor.EmployeeID && !actor.IsDirector() {
		return uuid.Nil, "", independentworkerrors.ErrCreateForOthers
	}

	id, err := uuid.Parse(requested)
	if err != nil {
		return uuid.Nil, "", independentworkerrors.ErrInvalidEmployeeID
	}
	found, err := s.directory.Lookup(ctx, []string{id.String()})
	if err != nil {
		return uuid.Nil, "", err
	}
	person, ok := found[id.String()]
	if !ok {
		return uuid.Nil, "", independentworkerrors.ErrEmployeeNotFound
	}
	return id, person.Name, nil
}

func (s *service) Create(ctx context.Context, actor domain.Actor, req CreateEntryRequest) (EntryResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create independent work requested",
		zap.String("request_id", rid),
		zap.String("actor_id", actor.EmployeeID),
		zap.String("employee_id", req.EmployeeID),
	)

	if !validHours(req.Hours) {
		return EntryResponse{}, independentworkerrors.ErrInvalidHours
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return EntryResponse{}, err
	}

	employeeID, employeeName, err := s.resolveEmployee(ctx, actor, req.EmployeeID)
	if err != nil {
		s.logger.Warn("create independent work owner rejected", zap.String("request_id", rid), zap.Error(err))
		return EntryResponse{}, err
	}

	now := time.Now().UTC()
	createdBy, _ := uuid.Parse(actor.EmployeeID)
	e := &Entry{
		ID:           uuid.New(),
		EmployeeID:   employeeID,
		EmployeeName: employeeName,
		Date:         date,
		Description:  strings.TrimSpace(req.Description),
		Category:     strings.TrimSpace(req.Category),
		Hours:        req.Hours,
		CreatedByID:  createdBy,
	}
	e.Attachments, err = decodeAttachments(e.ID, req.Attachments, now)
	if err != nil {
		s.logger.Warn("create independent work attachments rejected", zap.String("request_id", rid), zap.Error(err))
		return EntryResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create independent work begin tx failed", zap.Error(err))
		return EntryResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, e); err != nil {
		s.logger.Error("create independent work persist failed", zap.String("request_id", rid), zap.Error(err))
		return EntryResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create independent work commit failed", zap.Error(err))
		return EntryResponse{}, err
	}

	s.logger.Info("create independent work success",
		zap.String("request_id", rid),
		zap.String("entry_id", e.ID.String()),
		zap.String("employee_id", e.EmployeeID.String()),
		zap.Int("attachments", len(e.Attachments)),
	)
	return mapToResponse(*e, nil, actor), nil
}

func (s *service) withComments(ctx context.Context, actor domain.Actor, entries []Entry) ([]EntryResponse, error) {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID.String()
	}
	grouped, err := s.comments.FindByOwners(ctx, comment.OwnerIndependentWork, ids)
	if err != nil {
		s.logger.Error("load independent work comments failed", zap.Error(err))
		return nil, err
	}

	resp := make([]EntryResponse, len(entries))
	for i, e := range entries {
		resp[i] = mapToResponse(e, grouped[e.ID.String()], actor)
	}
	return resp, nil
}

func (s *service) GetAll(ctx context.Context, actor domain.Actor) ([]EntryResponse, error) {
	s.logger.Debug("get all independent work requested",
		zap.String("actor_id", actor.EmployeeID),
		zap.String("role", actor.Role),
	)

	entries, err := s.repo.FindAllVisible(ctx, actor)
	if err != nil {
		s.logger.Error("get all independent work failed", zap.Error(err))
		return nil, err
	}
	return s.withComments(ctx, actor, entries)
}

func (s *service) GetByEmployee(ctx context.Context, actor domain.Actor, employeeID string) ([]EntryResponse, error) {
	s.logger.Debug("get independent work by employee requested", zap.String("employee_id", employeeID))

	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, independentworkerrors.ErrInvalidEmployeeID
	}

	entries, err := s.repo.FindVisibleByEmployee(ctx, actor, employeeID)
	if err != nil {
		s.logger.Error("get independent work by employee failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}
	return s.withComments(ctx, actor, entries)
}

func (s *service) load(ctx context.Context, actor domain.Actor, id string) (*Entry, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, independentworkerrors.ErrInvalidEntryID
	}
	e, err := s.repo.FindVisibleByID(ctx, actor, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return e, nil
}

func (s *service) respond(ctx context.Context, actor domain.Actor, e Entry) (EntryResponse, error) {
	comments, err := s.comments.FindByOwner(ctx, comment.OwnerIndependentWork, e.ID.String())
	if err != nil {
		s.logger.Error("load independent work comments failed", zap.String("entry_id", e.ID.String()), zap.Error(err))
		return EntryResponse{}, err
	}
	return mapToResponse(e, comments, actor), nil
}

func (s *service) GetByID(ctx context.Context, actor domain.Actor, id string) (EntryResponse, error) {
	s.logger.Debug("get independent work by id requested", zap.String("entry_id", id))

	e, err := s.load(ctx, actor, id)
	if err != nil {
		s.logger.Warn("get independent work by id failed", zap.String("entry_id", id), zap.Error(err))
		return EntryResponse{}, err
	}
	return s.respond(ctx, actor, *e)
}

func canChange(actor domain.Actor, e *Entry) bool {
	return actor.IsDirector() || e.EmployeeID.String() == actor.EmployeeID
}

func (s *service) Update(ctx context.Context, actor domain.Actor, id string, req UpdateEntryRequest) (EntryResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update independent work requested",
		zap.String("request_id", rid),
		zap.String("entry_id", id),
	)

	if !validHours(req.Hours) {
		return EntryResponse{}, independentworkerrors.ErrInvalidHours
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return EntryResponse{}, err
	}

	e, err := s.load(ctx, actor, id)
	if err != nil {
		return EntryResponse{}, err
	}
	if !canChange(actor, e) {
		s.logger.Warn("update independent work forbidden", zap.String("entry_id", id), zap.String("actor_id", actor.EmployeeID))
		return EntryResponse{}, independentworkerrors.ErrNotAuthor
	}

	replace := req.Attachments != nil
	if replace {
		attachments, err := decodeAttachments(e.ID, *req.Attachments, time.Now().UTC())
		if err != nil {
			return EntryResponse{}, err
		}
		e.Attachments = attachments
	}
	e.Date = date
	e.Description = strings.TrimSpace(req.Description)
	e.Category = strings.TrimSpace(req.Category)
	e.Hours = req.Hours

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update independent work begin tx failed", zap.Error(err))
		return EntryResponse{}, err
	}
	defer tx.Rollback()

	repo := s.repo.WithTx(tx)
	if err := repo.Update(ctx, e); err != nil {
		s.logger.Error("update independent work persist failed", zap.Error(err))
		return EntryResponse{}, mapRepositoryError(err)
	}
	if replace {
		if err := repo.ReplaceAttachments(ctx, e); err != nil {
			s.logger.Error("update independent work attachments failed", zap.Error(err))
			return EntryResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update independent work commit failed", zap.Error(err))
		return EntryResponse{}, err
	}

	s.logger.Info("update independent work success",
		zap.String("request_id", rid),
		zap.String("entry_id", id),
	)
	return s.respond(ctx, actor, *e)
}

func (s *service) Delete(ctx context.Context, actor domain.Actor, id string) error {
	s.logger.Debug("delete independent work requested", zap.String("entry_id", id))

	e, err := s.load(ctx, actor, id)
	if err != nil {
		return err
	}
	if !canChange(actor, e) {
		s.logger.Warn("delete independent work forbidden", zap.String("entry_id", id), zap.String("actor_id", actor.EmployeeID))
		return independentworkerrors.ErrNotAuthor
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete independent work begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	if err := s.comments.WithTx(tx).DeleteByOwner(ctx, comment.OwnerIndependentWork, id); err != nil {
		s.logger.Error("delete independent work comments failed", zap.String("entry_id", id), zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete independent work commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete independent work success", zap.String("entry_id", id))
	return nil
}

func (s *service) AddComment(ctx context.Context, actor domain.Actor, id string, req comment.CreateCommentRequest) (EntryResponse, error) {
	e, err := s.load(ctx, actor, id)
	if err != nil {
		return EntryResponse{}, err
	}

	c, err := comment.New(comment.OwnerIndependentWork, e.ID, actor, req)
	if err != nil {
		return EntryResponse{}, err
	}
	if err := s.comments.Create(ctx, c); err != nil {
		s.logger.Error("add independent work comment failed", zap.String("entry_id", id), zap.Error(err))
		return EntryResponse{}, err
	}

	s.logger.Info("add independent work comment success",
		zap.String("entry_id", id),
		zap.String("comment_id", c.ID.String()),
	)
	return s.respond(ctx, actor, *e)
}

func mapToResponse(e Entry, comments []comment.Comment, viewer domain.Actor) EntryResponse {
	return EntryResponse{
		ID:           e.ID.String(),
		EmployeeID:   e.EmployeeID.String(),
		EmployeeName: e.EmployeeName,
		Date:         e.Date.Format(DateLayout),
		Description:  e.Description,
		Category:     e.Category,
		Hours:        e.Hours,
		Attachments:  attachmentResponses(e.Attachments),
		Comments:     comment.ToVisibleResponses(comments, viewer),
		CreatedAt:    e.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    e.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
