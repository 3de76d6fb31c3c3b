package services

import (
	"context"
	"errors"
	"fmt"

	"vendor_rewards/internal/db/models"
	"vendor_rewards/internal/db/repositories"
	"vendor_rewards/internal/wallet"

	"go.uber.org/zap"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrNoWallet     = errors.New("user has no wallet connected")
)

type DistributionSummary struct {
	Distributed int64 `json:"distributed"`
	Succeeded   int   `json:"succeeded"`
	Failed      int   `json:"failed"`
}

type DistributionService interface {
	Distribute(ctx context.Context, vote *models.Vote, user *models.User) (models.DistributionStatus, error)
	ProcessPendingForUser(ctx context.Context, userID, walletAddress string) (DistributionSummary, error)
	RetryFailed(ctx context.Context, userID string) (DistributionSummary, error)
	ConnectWallet(ctx context.Context, userID, walletAddress string) (DistributionSummary, error)
}

type distributionService struct {
	userRepository repositories.UserRepository
	voteRepository repositories.VoteRepository
	sink           wallet.Sink
	logger         *zap.SugaredLogger
}

// NewDistributionService accepts a nil sink; votes then stay pending.
func NewDistributionService(
	userRepository repositories.UserRepository,
	voteRepository repositories.VoteRepository,
	sink wallet.Sink,
	logger *zap.SugaredLogger,
) DistributionService {
	return &distributionService{
		userRepository: userRepository,
		voteRepository: voteRepository,
		sink:           sink,
		logger:         logger,
	}
}

// Distribute pushes the reward of a freshly written vote when the user has a
// wallet. Otherwise the vote stays pending.
func (s *distributionService) Distribute(ctx context.Context, vote *models.Vote, user *models.User) (models.DistributionStatus, error) {
	if s.sink == nil || user == nil || !user.HasWallet() {
		return models.DistributionStatusPending, nil
	}

	current, _, err := s.attempt(ctx, vote.ID, user.WalletAddress, models.DistributionStatusPending)
	if err != nil {
		return vote.DistributionStatus, err
	}

	*vote = *current

	return current.DistributionStatus, nil
}

func (s *distributionService) ProcessPendingForUser(ctx context.Context, userID, walletAddress string) (DistributionSummary, error) {
	return s.drain(ctx, userID, walletAddress, models.DistributionStatusPending)
}

func (s *distributionService) RetryFailed(ctx context.Context, userID string) (DistributionSummary, error) {
	user, err := s.userRepository.GetOne(ctx, userID)
	if err != nil {
		return DistributionSummary{}, fmt.Errorf("failed to get user %s: %w", userID, err)
	}
	if user == nil {
		return DistributionSummary{}, ErrUserNotFound
	}
	if !user.HasWallet() {
		return DistributionSummary{}, ErrNoWallet
	}

	return s.drain(ctx, userID, user.WalletAddress, models.DistributionStatusFailed)
}

func (s *distributionService) ConnectWallet(ctx context.Context, userID, walletAddress string) (DistributionSummary, error) {
	address, err := wallet.NormalizeAddress(walletAddress)
	if err != nil {
		return DistributionSummary{}, err
	}

	user, err := s.userRepository.GetOne(ctx, userID)
	if err != nil {
		return DistributionSummary{}, fmt.Errorf("failed to get user %s: %w", userID, err)
	}
	if user == nil {
		return DistributionSummary{}, ErrUserNotFound
	}

	if err := s.userRepository.SetWallet(ctx, userID, address); err != nil {
		return DistributionSummary{}, fmt.Errorf("failed to store wallet of user %s: %w", userID, err)
	}

	s.logger.Infow("wallet connected", "user_id", userID, "wallet", address)

	return s.ProcessPendingForUser(ctx, userID, address)
}

// drain walks every vote of the user in status from, oldest first, and keeps
// going past individual failures.
func (s *distributionService) drain(ctx context.Context, userID, walletAddress string, from models.DistributionStatus) (DistributionSummary, error) {
	var summary DistributionSummary

	if s.sink == nil {
		s.logger.Infow("no distribution sink configured, skipping", "user_id", userID, "status", from)
		return summary, nil
	}

	votes, err := s.voteRepository.GetManyByDistributionStatus(ctx, userID, from)
	if err != nil {
		return summary, fmt.Errorf("failed to get %s votes of user %s: %w", from, userID, err)
	}

	for _, listed := range votes {
		vote, attempted, err := s.attempt(ctx, listed.ID, walletAddress, from)
		switch {
		case err != nil:
			s.logger.Errorw("failed to distribute vote", "vote_id", listed.ID, "error", err)
			summary.Failed++
		case !attempted:
			continue
		case vote.DistributionStatus == models.DistributionStatusDistributed:
			summary.Distributed += vote.TokenReward
			summary.Succeeded++
		default:
			summary.Failed++
		}
	}

	s.logger.Infow("distribution finished",
		"user_id", userID,
		"status", from,
		"distributed", summary.Distributed,
		"succeeded", summary.Succeeded,
		"failed", summary.Failed,
	)

	return summary, nil
}

// attempt re-reads the vote and makes one transfer if the vote is still in
// status from. The returned vote carries the stored distribution state.
func (s *distributionService) attempt(ctx context.Context, voteID, walletAddress string, from models.DistributionStatus) (*models.Vote, bool, error) {
	vote, err := s.voteRepository.GetOne(ctx, voteID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get vote %s: %w", voteID, err)
	}
	if vote == nil {
		return nil, false, fmt.Errorf("vote %s not found", voteID)
	}
	if vote.DistributionStatus != from {
		return vote, false, nil
	}

	vote.DistributionAttempts++

	txRef, err := s.sink.Transfer(ctx, walletAddress, vote.TokenReward)
	if err != nil {
		s.logger.Warnw("token transfer failed", "vote_id", vote.ID, "user_id", vote.VoterID, "error", err)
		vote.DistributionStatus = models.DistributionStatusFailed
		vote.DistributionTxRef = ""
		vote.DistributionError = err.Error()
	} else {
		vote.DistributionStatus = models.DistributionStatusDistributed
		vote.DistributionTxRef = txRef
		vote.DistributionError = ""
	}

	updated, err := s.voteRepository.UpdateDistribution(ctx, vote, from)
	if err != nil {
		if vote.DistributionStatus == models.DistributionStatusDistributed {
			// the tokens left the treasury but the vote still reads as unsent
			s.logger.Errorw("transfer sent but not recorded",
				"vote_id", vote.ID,
				"user_id", vote.VoterID,
				"wallet", walletAddress,
				"amount", vote.TokenReward,
				"tx_ref", vote.DistributionTxRef,
				"error", err,
			)
		}
		return nil, false, fmt.Errorf("failed to update distribution of vote %s: %w", vote.ID, err)
	}
	if !updated {
		s.logger.Warnw("vote distribution changed concurrently", "vote_id", vote.ID, "tx_ref", vote.DistributionTxRef)

		current, err := s.voteRepository.GetOne(ctx, voteID)
		if err != nil {
			return nil, false, fmt.Errorf("failed to reload vote %s: %w", voteID, err)
		}
		if current == nil {
			return nil, false, fmt.Errorf("vote %s not found", voteID)
		}
		return current, false, nil
	}

	return vote, true, nil
}
