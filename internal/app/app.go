package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/pokerleague/lnpayments/internal/config"
	"github.com/pokerleague/lnpayments/internal/database"
	"github.com/pokerleague/lnpayments/internal/handlers"
	"github.com/pokerleague/lnpayments/internal/lnode"
	"github.com/pokerleague/lnpayments/internal/logger"
	"github.com/pokerleague/lnpayments/internal/repository"
	"github.com/pokerleague/lnpayments/internal/service"
	"go.uber.org/zap"
)

type App struct {
	server  *http.Server
	db      *sql.DB
	sweeper *service.Sweeper
}

func NewApp() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ParseFlags()

	if err := logger.Initialize("debug"); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Error("Database connection failed", zap.Error(err))
		return nil, err
	}

	nodeClient := lnode.NewClient(cfg.NodeAddress, cfg.NodeAPIKey)

	balanceRepo := repository.NewBalanceRepository(db)
	withdrawalRepo := repository.NewWithdrawalRepository(db)
	poolRepo := repository.NewPoolRepository(db)

	balanceService := service.NewBalanceService(balanceRepo)
	withdrawalService := service.NewWithdrawalService(
		withdrawalRepo, balanceRepo, nodeClient,
		cfg.PublicBaseURL, cfg.MinWithdrawSats, cfg.WithdrawalTTL, cfg.PayTimeout,
	)
	poolService := service.NewPoolService(poolRepo, nodeClient, cfg.InvoiceTTL)
	sweeper := service.NewSweeper(withdrawalRepo, poolRepo, nodeClient, cfg.SweepInterval)

	handler := handlers.NewHandler(balanceService, withdrawalService, poolService, nodeClient)
	r := handlers.NewRouter(handler, cfg.SecretKey)

	server := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: r,
	}

	return &App{
		server:  server,
		db:      db,
		sweeper: sweeper,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	go a.sweeper.Run(ctx)

	go func() {
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("server failed to start", zap.Error(err))
		}
	}()
	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	logger.Log.Info("shutting down server...")
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("server shutdown failed", zap.Error(err))
		return err
	}

	logger.Log.Info("closing database connection...")
	if err := a.db.Close(); err != nil {
		logger.Log.Error("failed to close database", zap.Error(err))
		return err
	}

	return nil
}
