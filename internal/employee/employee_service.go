package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"go-workboard/internal/domain"
	employeeerrors "go-workboard/internal/employee/errors"
	"go-workboard/internal/events"
	"go-workboard/internal/messaging/kafka"
	"go-workboard/internal/metrics"
	"go-workboard/internal/shared/contextutil"
	"go-workboard/internal/status"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/singleflight"
)

const (
	EmployeeOptionsKey = "employees:options"
	employeeOptionsTTL = time.Hour
)

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeOptionResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, actorID, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func validateAccountFields(role, employeeStatus, joiningDate string) (time.Time, error) {
	if !domain.IsValidRole(role) {
		return time.Time{}, employeeerrors.ErrInvalidRole
	}
	if !status.IsValid(status.KindEmployee, employeeStatus) {
		return time.Time{}, employeeerrors.ErrInvalidStatus
	}
	joined, err := time.Parse(DateLayout, joiningDate)
	if err != nil {
		return time.Time{}, employeeerrors.ErrInvalidJoiningDate
	}
	return joined, nil
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
		zap.String("username", req.Username),
		zap.String("role", req.Role),
	)

	joined, err := validateAccountFields(req.Role, req.Status, req.JoiningDate)
	if err != nil {
		s.logger.Warn("create employee invalid input", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("create employee hash password failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	empl := &Employee{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:        strings.TrimSpace(req.Phone),
		Position:     strings.TrimSpace(req.Position),
		Department:   strings.TrimSpace(req.Department),
		JoiningDate:  joined,
		Username:     strings.TrimSpace(req.Username),
		PasswordHash: string(hash),
		Role:         req.Role,
		Status:       req.Status,
	}

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event, err := kafka.NewOutboxEvent(rid, "employee", empl.ID.String(), events.EventEmployeeCreated, events.EmployeeLifecycleTopic,
			events.EmployeeCreatedEvent{
				EventID:    uuid.NewString(),
				EventType:  events.EventEmployeeCreated,
				RequestID:  rid,
				EmployeeID: empl.ID.String(),
				Name:       empl.Name,
				Role:       empl.Role,
				OccurredAt: time.Now().UTC(),
			})
		if err != nil {
			s.logger.Error("create employee build event failed", zap.String("request_id", rid), zap.Error(err))
			return EmployeeResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
			s.logger.Error("create employee outbox persist failed",
				zap.String("employee_id", empl.ID.String()),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptions(ctx)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested", zap.String("request_id", contextutil.GetRequestID(ctx)))
	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(employees), nil
}

func (s *service) GetOptions(ctx context.Context) ([]EmployeeOptionResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, EmployeeOptionsKey).Result(); err == nil {
			var resp []EmployeeOptionResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				metrics.IncrementCacheLookup("employee_options", true)
				return resp, nil
			}
		}
		metrics.IncrementCacheLookup("employee_options", false)
	}

	// collapse concurrent misses into one query
	v, err, _ := s.sf.Do(EmployeeOptionsKey, func() (interface{}, error) {
		employees, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]EmployeeOptionResponse, len(employees))
		for i, e := range employees {
			resp[i] = EmployeeOptionResponse{
				ID:       e.ID.String(),
				Name:     e.Name,
				Role:     e.Role,
				Position: e.Position,
			}
		}

		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, EmployeeOptionsKey, data, employeeOptionsTTL).Err(); err != nil {
					s.logger.Warn("cache employee options failed", zap.Error(err))
				}
			}
		}

		return resp, nil
	})
	if err != nil {
		s.logger.Error("get employee options failed", zap.Error(err))
		return nil, err
	}

	return v.([]EmployeeOptionResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.String("employee_id", id))
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("get employee by id failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	joined, err := validateAccountFields(req.Role, req.Status, req.JoiningDate)
	if err != nil {
		s.logger.Warn("update employee invalid input", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("update employee fetch existing failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	empl.Name = strings.TrimSpace(req.Name)
	empl.Email = strings.ToLower(strings.TrimSpace(req.Email))
	empl.Phone = strings.TrimSpace(req.Phone)
	empl.Position = strings.TrimSpace(req.Position)
	empl.Department = strings.TrimSpace(req.Department)
	empl.JoiningDate = joined
	empl.Username = strings.TrimSpace(req.Username)
	empl.Role = req.Role
	empl.Status = req.Status
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			s.logger.Error("update employee hash password failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		empl.PasswordHash = string(hash)
	}

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptions(ctx)

	s.logger.Info("update employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)

	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, actorID, id string) error {
	s.logger.Debug("delete employee requested", zap.String("employee_id", id))
	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}
	if actorID == id {
		s.logger.Warn("delete employee rejected, self delete", zap.String("employee_id", id))
		return employeeerrors.ErrCannotDeleteSelf
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Delete(ctx, id); err != nil {
		s.logger.Warn("delete employee failed", zap.String("employee_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	s.invalidateOptions(ctx)

	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) invalidateOptions(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, EmployeeOptionsKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", EmployeeOptionsKey),
		)
	}
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:          empl.ID.String(),
		Name:        empl.Name,
		Email:       empl.Email,
		Phone:       empl.Phone,
		Position:    empl.Position,
		Department:  empl.Department,
		JoiningDate: empl.JoiningDate.Format(DateLayout),
		Username:    empl.Username,
		Role:        empl.Role,
		Status:      empl.Status,
		StatusColor: status.ColorFor(status.KindEmployee, empl.Status),
		CreatedAt:   empl.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   empl.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		res[i] = mapToResponse(e)
	}
	return res
}
