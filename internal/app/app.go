package app

import (
	"net/http"

	"github.com/JohnrodSosmena1/SAL-SURE-Payroll-System/internal/auth"
	"github.com/JohnrodSosmena1/SAL-SURE-Payroll-System/internal/config"
	"github.com/JohnrodSosmena1/SAL-SURE-Payroll-System/internal/employee"
	"github.com/JohnrodSosmena1/SAL-SURE-Payroll-System/internal/payroll"
	"github.com/JohnrodSosmena1/SAL-SURE-Payroll-System/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects infrastructure and registers every module's routes.
func BuildApp(router *gin.Engine, cfg *config.Config, logger *zap.Logger) error {
	db, err := connection.ConnectGORMWithRetry(
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
		cfg.DBSSLMode,
		5,
	)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	if err := db.AutoMigrate(&employee.Employee{}, &payroll.Record{}); err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
	if err != nil {
		return err
	}
	logger.Info("redis connection established")

	// Repositories
	employeeRepo := employee.NewRepository(db)
	payrollRepo := payroll.NewRepository(db)

	// Credential source (injected secrets, not literals)
	creds, err := auth.NewConfigCredentialSource(cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		return err
	}

	// Services
	employeeService := employee.NewService(db, employeeRepo, redisClient, cfg.DefaultEmployeePassword, logger)
	payrollService := payroll.NewService(db, payrollRepo, employeeRepo, logger)
	authService := auth.NewService(employeeRepo, creds, cfg.JWTSecret, cfg.TokenTTL, logger)

	// Handlers + routes
	api := router.Group("/api/v1")

	auth.RegisterRoutes(api, auth.NewHandler(authService, logger), cfg.JWTSecret, logger)
	employee.RegisterRoutes(api, employee.NewHandler(employeeService, logger), cfg.JWTSecret, logger)
	payroll.RegisterRoutes(api, payroll.NewHandler(payrollService, logger), cfg.JWTSecret, logger)

	router.GET("/healthz", func(c *gin.Context) {
		if err := sqlDB.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return nil
}
