package main

import (
	"context"
	"errors"

	"vendor_rewards/configs"
	"vendor_rewards/internal/calendar"
	"vendor_rewards/internal/db/models"
	"vendor_rewards/internal/db/repositories"
	"vendor_rewards/internal/di"
	"vendor_rewards/internal/services"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

type streakResetter interface {
	Reset(ctx context.Context, userID string) error
}

func main() {
	config, err := configs.LoadRewardSweeperConfig()
	logger := di.NewLogger(config.Logger.AppName, config.App.Environment, config.Logger.URL)

	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger.Info("config loaded")

	container, err := di.NewContainer(context.Background(), di.Config{
		Binary:  "reward_sweeper",
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

	s := gocron.NewScheduler(container.Calendar.Location())
	s.SingletonModeAll()

	_, err = s.Cron(config.Sweeper.Cron).Do(func() {
		ctx := context.Background()

		logger.Info("resetting lapsed streaks")
		reset := resetLapsedStreaks(ctx, container.UserRepository, container.Streaks, container.Calendar, logger)
		logger.Infow("lapsed streaks reset", "users", reset)

		logger.Info("retrying failed distributions")
		summary := retryFailedDistributions(ctx, container.VoteRepository, container.DistributionService, logger)
		logger.Infow("failed distributions retried",
			"distributed", summary.Distributed,
			"succeeded", summary.Succeeded,
			"failed", summary.Failed,
		)
	})
	if err != nil {
		logger.Fatalw("failed to schedule sweeper", "error", err)
	}

	s.StartBlocking()
}

// resetLapsedStreaks zeroes the streak of every user whose streak was last
// advanced before yesterday.
func resetLapsedStreaks(
	ctx context.Context,
	userRepository repositories.UserRepository,
	streaks streakResetter,
	cal *calendar.Calendar,
	logger *zap.SugaredLogger,
) int {
	users, err := userRepository.GetManyWithLapsedStreak(ctx, cal.DayKey(cal.Yesterday()))
	if err != nil {
		logger.Errorw("failed to get users with lapsed streak", "error", err)
		return 0
	}

	reset := 0
	for _, user := range users {
		if err := streaks.Reset(ctx, user.ID); err != nil {
			logger.Errorw("failed to reset streak", "user_id", user.ID, "error", err)
			continue
		}
		reset++
	}

	return reset
}

func retryFailedDistributions(
	ctx context.Context,
	voteRepository repositories.VoteRepository,
	distributionService services.DistributionService,
	logger *zap.SugaredLogger,
) services.DistributionSummary {
	var total services.DistributionSummary

	voterIDs, err := voteRepository.GetVoterIDsByDistributionStatus(ctx, models.DistributionStatusFailed)
	if err != nil {
		logger.Errorw("failed to get voters with failed distributions", "error", err)
		return total
	}

	for _, voterID := range voterIDs {
		summary, err := distributionService.RetryFailed(ctx, voterID)
		if errors.Is(err, services.ErrNoWallet) {
			logger.Warnw("failed distributions without wallet", "user_id", voterID)
			continue
		}
		if err != nil {
			logger.Errorw("failed to retry distributions", "user_id", voterID, "error", err)
			continue
		}

		total.Distributed += summary.Distributed
		total.Succeeded += summary.Succeeded
		total.Failed += summary.Failed
	}

	return total
}
