package employee

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
	employees := r.Group("/employees")
	employees.Use(middleware.AuthRequired(jwtSecret))
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RequireRole("admin"),
			handler.GetAll,
		)

		employees.GET("/directory",
			middleware.RateLimitByUser(5, 20),
			middleware.RequireRole("admin"),
			handler.Directory,
		)

		employees.GET("/:username",
			middleware.RateLimitByUser(3, 10),
			handler.GetByUsername,
		)

		employees.PUT("/:username",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RequireRole("admin"),
			handler.Upsert,
		)

		employees.DELETE("/:username",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RequireRole("admin"),
			handler.Delete,
		)
	}
}
