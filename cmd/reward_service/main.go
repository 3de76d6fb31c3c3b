package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"vendor_rewards/configs"
	"vendor_rewards/internal/api"
	"vendor_rewards/internal/di"
)

func main() {
	config, err := configs.LoadRewardServiceConfig()
	logger := di.NewLogger(config.Logger.AppName, config.App.Environment, config.Logger.URL)

	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger.Info("config loaded")

	ctx := context.Background()

	container, err := di.NewContainer(ctx, di.Config{
		Binary:  "reward_service",
		App:     config.App,
		DB:      config.DB,
		Cache:   config.Cache,
		Rewards: config.Rewards,
		Wallet:  config.Wallet,
	}, logger)
	if err != nil {
		logger.Fatalw("failed to build services", "error", err)
	}
	defer container.Close(logger)

	handler := api.NewHandler(
		container.VoteService,
		container.DistributionService,
		container.BalanceService,
		container.Streaks,
		container.VendorRepository,
		logger,
	)

	server := &http.Server{Addr: config.HTTP.Addr, Handler: api.NewRouter(handler, logger)}

	go func() {
		logger.Infow("starting http server", "addr", config.HTTP.Addr)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorw("failed to start http server", "error", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(ctx, config.HTTP.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorw("failed to shutdown http server", "error", err)
		return
	}

	logger.Info("shutting down")
}
