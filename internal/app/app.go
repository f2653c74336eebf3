package app

import (
	"fmt"
	"os"

	"go-workboard/internal/activity"
	"go-workboard/internal/comment"
	"go-workboard/internal/employee"
	"go-workboard/internal/independentwork"
	"go-workboard/internal/messaging/kafka"
	"go-workboard/internal/middleware"
	"go-workboard/internal/project"
	"go-workboard/internal/shared/connection"
	"go-workboard/internal/shared/counter"
	"go-workboard/internal/task"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func BuildApp(router *gin.Engine) error {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(postgresConfigFromEnv(), 5)
	if err != nil {
		return err
	}
	if autoMigrateEnabled() {
		if err := migrate(gormDB); err != nil {
			return fmt.Errorf("auto migrate: %w", err)
		}
		logger.Info("schema migrated")
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return registerModules(router, sqlDB, gormDB, redisClient, logger)
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&employee.Employee{},
		&project.Project{},
		&project.Remark{},
		&task.Task{},
		&task.Assignee{},
		&comment.Comment{},
		&activity.Entry{},
		&independentwork.Entry{},
		&independentwork.Attachment{},
		&counter.Counter{},
		&kafka.OutboxRecord{},
	)
}
