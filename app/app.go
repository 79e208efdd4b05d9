// File: app/app.go
package app

import (
	"context"
	"fmt"
	"go-bank-console/bankapi"
	"go-bank-console/config"
	"go-bank-console/handler"
	"go-bank-console/logger"
	"go-bank-console/router"
	"go-bank-console/service"
	"go-bank-console/web"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
)

// NewHandler wires every layer of the console on top of api and returns the
// root HTTP handler.
func NewHandler(api *bankapi.Client) (http.Handler, error) {
	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("could not load templates: %w", err)
	}

	// One in-flight guard shared by all views; keys are per session and view.
	inflight := service.NewInflight()

	customerHandler := handler.NewCustomerHandler(
		service.NewCustomerService(api),
		service.NewCreateCustomerService(api),
		inflight,
		renderer,
	)
	transactionHandler := handler.NewTransactionHandler(
		service.NewTransferService(api),
		service.NewHistoryService(api),
		inflight,
		renderer,
	)

	return router.NewRouter(customerHandler, transactionHandler), nil
}

// Run starts the console with config.AppConfig and blocks until SIGINT or
// SIGTERM, then shuts the server down gracefully.
func Run() error {
	cfg := config.AppConfig
	logger.Configure(cfg.Log.Level, cfg.Log.Format)
	logger.Log.WithFields(logrus.Fields{
		"backend": cfg.Backend.BaseURL,
		"timeout": cfg.Backend.Timeout,
	}).Info("Configuration loaded successfully")

	api := bankapi.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout)
	r, err := NewHandler(api)
	if err != nil {
		return err
	}

	port := cfg.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Log.Infof("Console starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Log.Info("Server exited properly")
	return nil
}
