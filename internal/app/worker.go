package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-workboard/internal/comment"
	"go-workboard/internal/directory"
	"go-workboard/internal/messaging/kafka"
	"go-workboard/internal/messaging/kafka/producer"
	"go-workboard/internal/shared/connection"
	"go-workboard/internal/task"

	"go.uber.org/zap"
)

// OverdueMarker is the part of the task service the worker drives.
type OverdueMarker interface {
	MarkOverdue(ctx context.Context, now time.Time) (int, error)
}

func RunWorker() error {
	logger := zap.L().Named("app.worker")

	gormDB, err := connection.ConnectGORMWithRetry(postgresConfigFromEnv(), 5)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	kafkaWriter, err := connection.ConnectKafkaWithRetry(kafkaBroker, 5)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(sqlDB)
	taskService := task.NewService(
		sqlDB,
		task.NewRepository(gormDB),
		comment.NewRepository(gormDB),
		outboxRepo,
		directory.New(gormDB),
		logger,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interval := pollIntervalFromEnv()
	go producer.ProcessOutboxEvents(ctx, outboxRepo, kafkaWriter, logger, interval)
	go SweepOverdue(ctx, taskService, logger, time.Minute)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()

	return nil
}

// SweepOverdue marks past-due tasks once on start and then on every tick until ctx is done.
func SweepOverdue(ctx context.Context, marker OverdueMarker, logger *zap.Logger, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		n, err := marker.MarkOverdue(ctx, time.Now())
		if err != nil {
			logger.Error("overdue sweep failed", zap.Error(err))
		} else if n > 0 {
			logger.Info("tasks marked overdue", zap.Int("count", n))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
