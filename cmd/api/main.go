package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/andriawan/minibank-backend/internal/api"
	"github.com/andriawan/minibank-backend/internal/auth"
	"github.com/andriawan/minibank-backend/internal/config"
	"github.com/andriawan/minibank-backend/internal/logger"
	"github.com/andriawan/minibank-backend/internal/metrics"
	"github.com/andriawan/minibank-backend/internal/repository/memory"
	"github.com/andriawan/minibank-backend/internal/rules"
	"github.com/andriawan/minibank-backend/internal/services"
	"github.com/andriawan/minibank-backend/internal/worker"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	verifier, err := auth.NewAdminVerifier(cfg.AdminKey)
	if err != nil {
		log.Error("admin verifier", "err", err)
		os.Exit(1)
	}

	repos := memory.NewRepositories()
	wp := worker.NewPool(4)
	defer wp.Stop()

	engine := rules.NewEngine(cfg.Limits)
	locks := services.NewLockTable()
	accountSvc := services.NewAccountService(repos.Accounts, repos.AuditLogs, wp, locks)
	txnSvc := services.NewTransactionService(repos.Ledger, repos.Accounts, repos.AuditLogs, engine, wp, locks)
	auditSvc := services.NewAuditService(repos.AuditLogs)

	metrics.Init()
	r := api.NewRouter(cfg, verifier, accountSvc, txnSvc, auditSvc)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
