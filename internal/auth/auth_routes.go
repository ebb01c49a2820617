package auth

import (
	"github.com/JohnrodSosmena1/SAL-SURE-Payroll-System/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	jwtSecret string,
	logger *zap.Logger,
) {
	authGroup := r.Group("/auth")
	authGroup.Use(middleware.ContextLogger(logger))
	{
		// Login endpoints are rate limited by IP since no principal exists yet.
		authGroup.POST("/login", middleware.RateLimitByIP(1, 5), handler.Login)
		authGroup.POST("/admin/login", middleware.RateLimitByIP(0.5, 3), handler.AdminLogin)

		authGroup.GET("/me", middleware.AuthRequired(jwtSecret), handler.GetMe)
	}
}
