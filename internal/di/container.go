package di

import (
	"context"
	"fmt"

	"vendor_rewards/configs"
	"vendor_rewards/internal/cache"
	"vendor_rewards/internal/calendar"
	"vendor_rewards/internal/counters"
	"vendor_rewards/internal/db"
	"vendor_rewards/internal/db/repositories"
	"vendor_rewards/internal/evidence"
	"vendor_rewards/internal/rewards"
	"vendor_rewards/internal/services"
	"vendor_rewards/internal/streak"
	"vendor_rewards/internal/wallet"

	"github.com/go-pg/pg/v10"
	"go.uber.org/zap"
)

type Config struct {
	// Binary names the process; it picks the cache subdirectory.
	Binary  string
	App     configs.App
	DB      configs.DB
	Cache   configs.Cache
	Rewards configs.Rewards
	Wallet  configs.Wallet
}

// Container owns the shared resources of a binary and the services built on them.
type Container struct {
	DB       *pg.DB
	Cache    *cache.Store
	Calendar *calendar.Calendar

	UserRepository   repositories.UserRepository
	VoteRepository   repositories.VoteRepository
	ProofRepository  repositories.ProofRepository
	VendorRepository repositories.VendorRepository

	Evidence *evidence.Filter
	Streaks  *streak.Tracker

	BalanceService      services.BalanceService
	DistributionService services.DistributionService
	VoteService         services.VoteService
}

func NewContainer(ctx context.Context, config Config, logger *zap.SugaredLogger) (*Container, error) {
	cal, err := calendar.Load(config.App.Timezone)
	if err != nil {
		return nil, err
	}

	logger.Info("starting db")
	database, err := db.StartDB(config.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to start db: %w", err)
	}
	logger.Info("db started")

	store, err := cache.Open(config.Cache.Dir(config.Binary), logger)
	if err != nil {
		_ = database.Close()
		return nil, err
	}
	logger.Infow("cache opened", "path", config.Cache.Dir(config.Binary))

	sink, err := wallet.NewSink(ctx, config.Wallet, logger)
	if err != nil {
		_ = store.Close()
		_ = database.Close()
		return nil, fmt.Errorf("failed to create wallet sink: %w", err)
	}

	logger.Info("initializing repositories and services")

	c := &Container{
		DB:               database,
		Cache:            store,
		Calendar:         cal,
		UserRepository:   repositories.NewUserRepository(database),
		VoteRepository:   repositories.NewVoteRepository(database),
		ProofRepository:  repositories.NewProofRepository(database),
		VendorRepository: repositories.NewVendorRepository(database),
	}
	c.Evidence = evidence.NewFilter(store, c.ProofRepository, cal, config.Rewards.SuspiciousLogLength)

	policy := rewards.PolicyFromConfig(config.Rewards)
	voteCounters := counters.New(store, cal)

	c.Streaks = streak.NewTracker(c.UserRepository, c.VoteRepository, store, cal, logger)
	c.BalanceService = services.NewBalanceService(c.UserRepository, store, logger)
	c.DistributionService = services.NewDistributionService(c.UserRepository, c.VoteRepository, sink, logger)

	calculator := rewards.NewCalculator(c.VoteRepository, c.Streaks, voteCounters, cal, policy, logger)
	c.VoteService = services.NewVoteService(
		c.UserRepository,
		c.VoteRepository,
		c.ProofRepository,
		c.Evidence,
		voteCounters,
		calculator,
		c.Streaks,
		c.BalanceService,
		c.DistributionService,
		cal,
		logger,
	)

	logger.Infow("reward policy",
		"weekly_token_cap", policy.WeeklyTokenCap,
		"daily_vendor_vote_cap", policy.DailyVendorVoteCap,
		"daily_vote_cap", policy.DailyVoteCap,
		"weekly_vote_cap", policy.WeeklyVoteCap,
	)

	return c, nil
}

func (c *Container) Close(logger *zap.SugaredLogger) {
	if err := c.Cache.Close(); err != nil {
		logger.Errorw("failed to close cache", "error", err)
	}
	if err := c.DB.Close(); err != nil {
		logger.Errorw("failed to close db", "error", err)
	}
}
