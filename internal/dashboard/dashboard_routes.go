package dashboard

import (
	"go-workboard/internal/middleware"
	"go-workboard/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service, logger *zap.Logger) {
	dashboard := r.Group("/dashboard")
	dashboard.Use(middleware.AuthMiddleware())
	dashboard.Use(middleware.ContextLogger(logger))
	dashboard.Use(middleware.RBACAuthorize(rbacService, rbac.ResourceDashboard, rbac.ActionRead))
	{
		dashboard.GET("/stats", middleware.RateLimitByUser(2, 10), handler.Stats)
		dashboard.GET("/projects", middleware.RateLimitByUser(2, 10), handler.Projects)
		dashboard.GET("/statuses", handler.Statuses)
	}
}
