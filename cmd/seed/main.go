package main

import (
	"context"
	"flag"

	"github.com/JohnrodSosmena1/SAL-SURE-Payroll-System/internal/config"
	"github.com/JohnrodSosmena1/SAL-SURE-Payroll-System/internal/employee"
	"github.com/JohnrodSosmena1/SAL-SURE-Payroll-System/internal/payroll"
	"github.com/JohnrodSosmena1/SAL-SURE-Payroll-System/internal/seed"
	"github.com/JohnrodSosmena1/SAL-SURE-Payroll-System/internal/shared/connection"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	count := flag.Int("count", 100, "number of dummy employees to insert")
	flag.Parse()

	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config failed", zap.Error(err))
	}

	db, err := connection.ConnectGORMWithRetry(
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
		cfg.DBSSLMode,
		3,
	)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}

	if err := db.AutoMigrate(&employee.Employee{}, &payroll.Record{}); err != nil {
		logger.Fatal("migrate failed", zap.Error(err))
	}

	seeder := seed.NewSeeder(
		employee.NewRepository(db),
		payroll.NewRepository(db),
		cfg.DefaultEmployeePassword,
		logger,
	)

	if err := seeder.Run(context.Background(), *count); err != nil {
		logger.Fatal("seed failed", zap.Error(err))
	}
}
