package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"

	"github.com/Russell0014/MCBA-Internet-Banking/internal/config"
	"github.com/Russell0014/MCBA-Internet-Banking/internal/database"
	"github.com/Russell0014/MCBA-Internet-Banking/internal/database/repository"
	"github.com/Russell0014/MCBA-Internet-Banking/internal/scheduler"
	"github.com/Russell0014/MCBA-Internet-Banking/internal/service"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config", zap.Error(err))
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		logger.Fatal("mkdir db dir", zap.Error(err))
	}

	if err := database.RunMigrations(cfg.Database.Path, "internal/database/migrations"); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatal("open db", zap.Error(err))
	}
	defer db.Close()

	if err := database.SeedDefaults(ctx, db); err != nil {
		logger.Fatal("seed defaults", zap.Error(err))
	}

	fees, err := cfg.Fees.Policy()
	if err != nil {
		logger.Fatal("fee policy", zap.Error(err))
	}

	// repositories
	acctRepo := repository.NewAccountRepo(db)
	txRepo := repository.NewTransactionRepo(db)
	billRepo := repository.NewBillPayRepo(db)
	payeeRepo := repository.NewPayeeRepo(db)

	// services
	executor := service.NewTransactionService(db, acctRepo, txRepo, fees, database.Now)
	bills := service.NewBillPayService(db, billRepo, payeeRepo, acctRepo, executor, database.Now, logger)

	sched := &scheduler.Scheduler{
		Bills:    bills,
		Interval: cfg.Scheduler.PollInterval,
		Logger:   logger,
	}
	if err := sched.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("scheduler", zap.Error(err))
	}
}
