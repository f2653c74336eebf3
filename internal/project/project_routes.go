package project

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
	projects := r.Group("/projects")
	projects.Use(middleware.AuthMiddleware())
	projects.Use(middleware.ContextLogger(logger))
	{
		projects.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceProject, rbac.ActionRead),
			handler.GetAll,
		)

		projects.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceProject, rbac.ActionRead),
			handler.GetByID,
		)

		projects.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceProject, rbac.ActionCreate),
			middleware.ExtractUserID(),
			middleware.Idempotency(rdb),
			handler.Create,
		)

		projects.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceProject, rbac.ActionUpdate),
			handler.Update,
		)

		projects.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, rbac.ResourceProject, rbac.ActionDelete),
			handler.Delete,
		)

		projects.POST("/:id/remarks",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceProject, rbac.ActionRemark),
			handler.AddRemark,
		)

		projects.POST("/:id/comments",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceProject, rbac.ActionComment),
			handler.AddComment,
		)
	}
}
