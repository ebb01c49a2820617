package payroll

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
	payroll := r.Group("/payroll")
	payroll.Use(middleware.AuthRequired(jwtSecret))
	payroll.Use(middleware.ContextLogger(logger))
	{
		payroll.POST("/approvals",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RequireRole("admin"),
			handler.ApproveAll,
		)

		payroll.GET("/summary",
			middleware.RateLimitByUser(3, 10),
			middleware.RequireRole("admin"),
			handler.Summary,
		)

		payroll.GET("/:username/history",
			middleware.RateLimitByUser(3, 10),
			handler.History,
		)

		payroll.GET("/:username/preview",
			middleware.RateLimitByUser(3, 10),
			handler.Preview,
		)
	}
}
