package producer_test

import (
	"context"
	"errors"
	"testing"

	"go-workboard/internal/events"
	"go-workboard/internal/messaging/kafka"
	kafkaMock "go-workboard/internal/messaging/kafka/mock"
	"go-workboard/internal/messaging/kafka/producer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	WriteFn  func(ctx context.Context, msgs ...kafkago.Message) error
	messages []kafkago.Message
}

func (f *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	f.messages = append(f.messages, msgs...)
	if f.WriteFn != nil {
		return f.WriteFn(ctx, msgs...)
	}
	return nil
}

func headerValue(msg kafkago.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func TestProcessPendingEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes and marks sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{}

		pending := []kafka.OutboxEvent{
			{
				ID:            "evt-1",
				RequestID:     "REQ-1",
				AggregateType: "task",
				AggregateID:   "task-1",
				EventType:     events.EventTaskCreated,
				Topic:         events.TaskLifecycleTopic,
				Payload:       []byte(`{"task_id":"task-1"}`),
			},
		}

		repo.EXPECT().ListPending(ctx, 50).Return(pending, nil)
		repo.EXPECT().MarkSent(ctx, "evt-1").Return(nil)

		sent, err := producer.ProcessPendingEvents(ctx, repo, writer, zap.NewNop())

		assert.NoError(t, err)
		assert.Equal(t, 1, sent)
		assert.Len(t, writer.messages, 1)
		msg := writer.messages[0]
		assert.Equal(t, events.TaskLifecycleTopic, msg.Topic)
		assert.Equal(t, "task-1", string(msg.Key))
		assert.Equal(t, "evt-1", headerValue(msg, "event_id"))
		assert.Equal(t, "REQ-1", headerValue(msg, "request_id"))
		assert.Equal(t, events.EventTaskCreated, headerValue(msg, "event_type"))
	})

	t.Run("write failure marks failed and continues", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{
			WriteFn: func(ctx context.Context, msgs ...kafkago.Message) error {
				if string(msgs[0].Key) == "bad" {
					return errors.New("broker unavailable")
				}
				return nil
			},
		}

		pending := []kafka.OutboxEvent{
			{ID: "evt-1", AggregateID: "bad", Topic: events.TaskLifecycleTopic, Payload: []byte(`{}`)},
			{ID: "evt-2", AggregateID: "good", Topic: events.TaskLifecycleTopic, Payload: []byte(`{}`)},
		}

		repo.EXPECT().ListPending(ctx, 50).Return(pending, nil)
		repo.EXPECT().MarkFailed(ctx, "evt-1", "broker unavailable").Return(nil)
		repo.EXPECT().MarkSent(ctx, "evt-2").Return(nil)

		sent, err := producer.ProcessPendingEvents(ctx, repo, writer, zap.NewNop())

		assert.NoError(t, err)
		assert.Equal(t, 1, sent)
	})

	t.Run("list error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)

		repo.EXPECT().ListPending(ctx, 50).Return(nil, errors.New("db down"))

		sent, err := producer.ProcessPendingEvents(ctx, repo, &fakeWriter{}, zap.NewNop())

		assert.EqualError(t, err, "db down")
		assert.Zero(t, sent)
	})

	t.Run("nothing pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{}

		repo.EXPECT().ListPending(ctx, 50).Return([]kafka.OutboxEvent{}, nil)

		sent, err := producer.ProcessPendingEvents(ctx, repo, writer, zap.NewNop())

		assert.NoError(t, err)
		assert.Zero(t, sent)
		assert.Empty(t, writer.messages)
	})
}
