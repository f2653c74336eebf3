package auth

import (
	"go-workboard/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(0.2, 5), handler.Login)
		auth.POST("/refresh", middleware.RateLimitByIP(0.5, 5), handler.RefreshToken)
		auth.POST("/logout", handler.Logout)
		auth.GET("/me",
			middleware.AuthMiddleware(),
			middleware.ContextLogger(logger),
			middleware.RateLimitByUser(2, 5),
			handler.Me,
		)
	}
}
