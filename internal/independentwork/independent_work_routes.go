package independentwork

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
	work := r.Group("/independent-work")
	work.Use(middleware.AuthMiddleware())
	work.Use(middleware.ContextLogger(logger))
	{
		work.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceIndependentWork, rbac.ActionRead),
			handler.GetAll,
		)

		work.GET("/employee/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceIndependentWork, rbac.ActionRead),
			handler.GetByEmployee,
		)

		work.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceIndependentWork, rbac.ActionRead),
			handler.GetByID,
		)

		work.POST("",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, rbac.ResourceIndependentWork, rbac.ActionCreate),
			middleware.ExtractUserID(),
			middleware.Idempotency(rdb),
			handler.Create,
		)

		work.PUT("/:id",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, rbac.ResourceIndependentWork, rbac.ActionUpdate),
			handler.Update,
		)

		work.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, rbac.ResourceIndependentWork, rbac.ActionDelete),
			handler.Delete,
		)

		work.POST("/:id/comments",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceIndependentWork, rbac.ActionComment),
			handler.AddComment,
		)
	}
}
