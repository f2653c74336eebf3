package app

import (
	"database/sql"

	"go-workboard/internal/activity"
	"go-workboard/internal/auth"
	"go-workboard/internal/comment"
	"go-workboard/internal/dashboard"
	"go-workboard/internal/directory"
	"go-workboard/internal/employee"
	"go-workboard/internal/independentwork"
	"go-workboard/internal/messaging/kafka"
	"go-workboard/internal/project"
	"go-workboard/internal/rbac"
	"go-workboard/internal/rbac/infra"
	"go-workboard/internal/shared/counter"
	"go-workboard/internal/task"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	activityRepo := activity.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	commentRepo := comment.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	dashboardRepo := dashboard.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	independentWorkRepo := independentwork.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	projectRepo := project.NewRepository(gormDB)
	taskRepo := task.NewRepository(gormDB)
	dir := directory.New(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer, logger)
	if err := rbacService.LoadPolicy(); err != nil {
		return err
	}

	// --- Services ---
	activityService := activity.NewService(activityRepo, logger)
	authService := auth.NewService(authRepo, rbacService, logger)
	dashboardService := dashboard.NewService(dashboardRepo, rdb, logger)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, outboxRepo, rdb, logger)
	independentWorkService := independentwork.NewService(db, independentWorkRepo, commentRepo, dir, logger)
	projectService := project.NewService(db, projectRepo, commentRepo, counterRepo, dir, logger)
	taskService := task.NewService(db, taskRepo, commentRepo, outboxRepo, dir, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, logger)
	dashboardHandler := dashboard.NewHandler(dashboardService, logger)
	employeeHandler := employee.NewHandlerWithRedis(employeeService, rdb, logger)
	independentWorkHandler := independentwork.NewHandler(independentWorkService, rdb, logger)
	projectHandler := project.NewHandler(projectService, rdb, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)
	taskHandler := task.NewHandler(taskService, activityService, rdb, logger)

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		auth.RegisterRoutes(api, authHandler, logger)
		dashboard.RegisterRoutes(api, dashboardHandler, rbacService, logger)
		employee.RegisterRoutes(api, employeeHandler, rbacService, rdb, logger)
		independentwork.RegisterRoutes(api, independentWorkHandler, rbacService, rdb, logger)
		project.RegisterRoutes(api, projectHandler, rbacService, rdb, logger)
		rbac.RegisterRoutes(api, rbacHandler, logger)
		task.RegisterRoutes(api, taskHandler, rbacService, rdb, logger)
	}

	return nil
}
