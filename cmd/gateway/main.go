package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/api"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/application/services"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/config"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/infrastructure/bank"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/infrastructure/persistence/memory"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/interfaces/rest/handlers"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger, err := cfg.Logger.NewLogger(os.Stdout)
	if err != nil {
		slog.Error("failed to build logger", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(logger)

	logger.Info("starting gateway service",
		"env", cfg.Primary.Env,
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
		"bank_url", cfg.BankClient.BaseURL,
	)

	ctx := context.Background()
	swagger, err := api.GetSwagger(ctx)
	if err != nil {
		logger.Error("failed to load api description", "error", err)
		os.Exit(1)
	}

	paymentRepo := memory.NewPaymentRepository()
	bankClient := bank.NewBankClient(cfg.BankClient)
	paymentService := services.NewPaymentService(paymentRepo, bankClient, logger)

	h := handlers.NewHandlers(paymentService, swagger, logger)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handlers.NewRouter(h, cfg.Server.RequestTimeout),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited", "payments_recorded", paymentRepo.Count())
}
