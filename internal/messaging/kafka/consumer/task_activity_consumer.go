package consumer

import (
	"context"
	"encoding/json"
	"errors"

	activityerrors "go-workboard/internal/activity/errors"
	"go-workboard/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type ActivityRecorder interface {
	Record(ctx context.Context, event events.TaskEvent) error
}

func ConsumeTaskLifecycle(
	ctx context.Context,
	reader MessageReader,
	recorder ActivityRecorder,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.task_lifecycle")
	log.Info("task lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("task lifecycle consumer stopped")
				return
			}
			log.Error("fetch task lifecycle message failed", zap.Error(err))
			continue
		}

		handleTaskMessage(ctx, reader, recorder, msg, log)
	}
}

// handleTaskMessage commits poison and duplicate messages; transient failures stay uncommitted for redelivery.
func handleTaskMessage(
	ctx context.Context,
	reader MessageReader,
	recorder ActivityRecorder,
	msg kafkago.Message,
	log *zap.Logger,
) {
	var event events.TaskEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode task event failed", zap.Int64("offset", msg.Offset), zap.Error(err))
		_ = reader.CommitMessages(ctx, msg)
		return
	}
	if event.EventID == "" {
		event.EventID = headerValue(msg, "event_id")
	}
	if event.RequestID == "" {
		event.RequestID = headerValue(msg, "request_id")
	}

	if err := recorder.Record(ctx, event); err != nil {
		switch {
		case errors.Is(err, activityerrors.ErrAlreadyRecorded):
			log.Warn("task activity already recorded, skipping",
				zap.String("event_id", event.EventID),
				zap.String("task_id", event.TaskID),
			)
			_ = reader.CommitMessages(ctx, msg)
		case errors.Is(err, activityerrors.ErrInvalidEvent):
			log.Error("invalid task event dropped",
				zap.String("event_id", event.EventID),
				zap.String("task_id", event.TaskID),
			)
			_ = reader.CommitMessages(ctx, msg)
		default:
			log.Error("record task activity failed",
				zap.String("event_id", event.EventID),
				zap.String("task_id", event.TaskID),
				zap.Error(err),
			)
		}
		return
	}

	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Error("commit task lifecycle message failed", zap.Error(err))
		return
	}

	log.Info("task activity recorded from event",
		zap.String("request_id", event.RequestID),
		zap.String("event_id", event.EventID),
		zap.String("event_type", event.EventType),
		zap.String("task_id", event.TaskID),
	)
}

func headerValue(msg kafkago.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
