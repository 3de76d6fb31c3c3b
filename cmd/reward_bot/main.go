package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"vendor_rewards/configs"
	"vendor_rewards/internal/di"
	tgbot "vendor_rewards/internal/tg_bot"
	"vendor_rewards/internal/tg_bot/commands"
	"vendor_rewards/internal/tg_bot/handlers"

	"go.uber.org/zap"
)

func main() {
	config, err := configs.LoadRewardBotConfig()
	logger := di.NewLogger(config.Logger.AppName, config.App.Environment, config.Logger.URL)

	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger.Info("config loaded")

	container, err := di.NewContainer(context.Background(), di.Config{
		Binary:  "reward_bot",
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

	go func() {
		logger.Info("setting up health check server")
		settingUpHealthCheckServer(config.HTTP, logger)
	}()

	logger.Info("starting bot")

	tgbot.NewBot(
		handlers.NewRewardBotCommandHandler(container.UserRepository, logger,
			[]commands.Command{
				commands.NewStartCommand(container.BalanceService, container.Streaks, logger),
				commands.NewConnectWalletCommand(container.UserRepository, container.DistributionService, logger),
				commands.NewRetryDistributionsCommand(container.DistributionService, logger),
				commands.NewHistoryCommand(container.VoteService, config.Bot.HistoryLimit, logger),
			},
		),
	).Start(config.Bot, config.App, logger)
}

func settingUpHealthCheckServer(config configs.HTTP, logger *zap.SugaredLogger) {
	mux := http.NewServeMux()
	mux.HandleFunc("/reward-bot/healthcheck", healthCheckHandler)

	server := &http.Server{Addr: config.Addr, Handler: mux}

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
		<-stop

		ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Errorw("failed to shutdown http server", "error", err)
		}
		logger.Info("shutting down")
		os.Exit(0)
	}()

	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Errorw("failed to start http server", "error", err)
	}
}

func healthCheckHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
