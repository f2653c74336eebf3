package rbac

import (
	"go-workboard/internal/domain"
	"go-workboard/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	group := r.Group("/rbac")
	group.Use(middleware.AuthMiddleware())
	group.Use(middleware.ContextLogger(logger))
	{
		group.POST("/enforce", middleware.RoleMiddleware(domain.RoleDirector), handler.Enforce)
		group.GET("/permissions", handler.Permissions)
	}
}
