package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vendor_rewards/internal/cache"
	"vendor_rewards/internal/db/repositories"

	"go.uber.org/zap"
)

const balanceTTL = time.Hour

type BalanceCache interface {
	SetInt(key string, value int64, ttl time.Duration) error
	GetInt(key string) (int64, error)
	Delete(key string) error
}

type BalanceService interface {
	Credit(ctx context.Context, userID string, amount int64) (int64, error)
	GetBalance(ctx context.Context, userID string) (int64, error)
}

type balanceService struct {
	userRepository repositories.UserRepository
	cache          BalanceCache
	logger         *zap.SugaredLogger
}

func NewBalanceService(userRepository repositories.UserRepository, cache BalanceCache, logger *zap.SugaredLogger) BalanceService {
	return &balanceService{
		userRepository: userRepository,
		cache:          cache,
		logger:         logger,
	}
}

// Credit adds amount to the stored balance and drops the cached copy; the
// next read repopulates it from the users table.
func (s *balanceService) Credit(ctx context.Context, userID string, amount int64) (int64, error) {
	balance, err := s.userRepository.AddBalance(ctx, userID, amount)
	if err != nil {
		return 0, fmt.Errorf("failed to credit %d tokens to user %s: %w", amount, userID, err)
	}

	if err := s.cache.Delete(balanceKey(userID)); err != nil {
		s.logger.Warnw("failed to invalidate cached balance", "user_id", userID, "error", err)
	}

	return balance, nil
}

func (s *balanceService) GetBalance(ctx context.Context, userID string) (int64, error) {
	balance, err := s.cache.GetInt(balanceKey(userID))
	if err == nil {
		return balance, nil
	}
	if !errors.Is(err, cache.ErrNotFound) {
		s.logger.Warnw("failed to read cached balance", "user_id", userID, "error", err)
	}

	user, err := s.userRepository.GetOne(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to get user %s: %w", userID, err)
	}
	if user == nil {
		return 0, ErrUserNotFound
	}

	s.remember(userID, user.TokenBalance)

	return user.TokenBalance, nil
}

func (s *balanceService) remember(userID string, balance int64) {
	if err := s.cache.SetInt(balanceKey(userID), balance, balanceTTL); err != nil {
		s.logger.Warnw("failed to cache balance", "user_id", userID, "error", err)
	}
}

func balanceKey(userID string) string {
	return "balance:" + userID
}
