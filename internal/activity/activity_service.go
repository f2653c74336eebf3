package activity

import (
	"context"
	"errors"
	"strings"
	"time"

	activityerrors "go-workboard/internal/activity/errors"
	"go-workboard/internal/events"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type Service interface {
	Record(ctx context.Context, event events.TaskEvent) error
	ListByTask(ctx context.Context, taskID string) ([]EntryResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("activity.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("activity.service")
	}
	return &service{repo: repo, logger: l}
}

// Record stores one activity entry per event id; replays return ErrAlreadyRecorded.
func (s *service) Record(ctx context.Context, event events.TaskEvent) error {
	taskID, err := uuid.Parse(event.TaskID)
	if err != nil || event.EventID == "" || event.EventType == "" {
		s.logger.Warn("record activity invalid event",
			zap.String("event_id", event.EventID),
			zap.String("task_id", event.TaskID),
		)
		return activityerrors.ErrInvalidEvent
	}

	occurredAt := event.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	entry := &Entry{
		ID:            uuid.New(),
		EventID:       event.EventID,
		TaskID:        taskID,
		EventType:     event.EventType,
		ActorID:       event.ActorID,
		ActorName:     event.ActorName,
		ActorRole:     event.ActorRole,
		Status:        event.Status,
		RequestStatus: event.RequestStatus,
		Note:          event.Note,
		OccurredAt:    occurredAt,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		if isDuplicateEvent(err) {
			return activityerrors.ErrAlreadyRecorded
		}
		s.logger.Error("record activity persist failed",
			zap.String("event_id", event.EventID),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("activity recorded",
		zap.String("request_id", event.RequestID),
		zap.String("event_id", event.EventID),
		zap.String("event_type", event.EventType),
		zap.String("task_id", event.TaskID),
	)
	return nil
}

func (s *service) ListByTask(ctx context.Context, taskID string) ([]EntryResponse, error) {
	entries, err := s.repo.FindByTask(ctx, taskID)
	if err != nil {
		s.logger.Error("list activity failed", zap.String("task_id", taskID), zap.Error(err))
		return nil, err
	}

	resp := make([]EntryResponse, len(entries))
	for i, e := range entries {
		resp[i] = EntryResponse{
			ID:            e.ID.String(),
			TaskID:        e.TaskID.String(),
			EventType:     e.EventType,
			ActorID:       e.ActorID,
			ActorName:     e.ActorName,
			ActorRole:     e.ActorRole,
			Status:        e.Status,
			RequestStatus: e.RequestStatus,
			Note:          e.Note,
			OccurredAt:    e.OccurredAt.UTC().Format(time.RFC3339),
		}
	}
	return resp, nil
}

func isDuplicateEvent(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == "uq_task_activity_event"
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_task_activity_event")
}
