package task

import (
	"go-workboard/internal/middleware"
	"go-workboard/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	tasks := r.Group("/tasks")
	tasks.Use(middleware.AuthMiddleware())
	tasks.Use(middleware.ContextLogger(logger))
	{
		tasks.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceTask, rbac.ActionRead),
			handler.GetAll,
		)

		tasks.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceTask, rbac.ActionRead),
			handler.GetByID,
		)

		tasks.GET("/:id/activity",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceTask, rbac.ActionRead),
			handler.Activity,
		)

		tasks.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceTask, rbac.ActionCreate),
			middleware.ExtractUserID(),
			middleware.Idempotency(rdb),
			handler.Create,
		)

		tasks.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceTask, rbac.ActionUpdate),
			handler.Update,
		)

		tasks.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, rbac.ResourceTask, rbac.ActionDelete),
			handler.Delete,
		)

		tasks.POST("/:id/comments",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceTask, rbac.ActionComment),
			handler.AddComment,
		)

		tasks.POST("/:id/extension-request",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceTask, rbac.ActionRequest),
			handler.RequestExtension,
		)

		tasks.POST("/:id/extension-response",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceTask, rbac.ActionRespond),
			handler.RespondExtension,
		)

		tasks.POST("/:id/completion-request",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceTask, rbac.ActionRequest),
			handler.RequestCompletion,
		)

		tasks.POST("/:id/completion-response",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceTask, rbac.ActionRespond),
			handler.RespondCompletion,
		)
	}
}
