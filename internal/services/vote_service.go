package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"vendor_rewards/internal/calendar"
	"vendor_rewards/internal/counters"
	"vendor_rewards/internal/db/models"
	"vendor_rewards/internal/db/repositories"
	"vendor_rewards/internal/evidence"
	"vendor_rewards/internal/rewards"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100

	reasonDuplicateProof = "duplicate_proof"
)

var (
	ErrInvalidVote       = errors.New("invalid vote")
	ErrDuplicateEvidence = errors.New("this proof was already used for another vote")
	ErrRateLimited       = errors.New("vote limit reached, try again later")
	ErrWeeklyCapExceeded = errors.New("weekly token limit reached")
	ErrPersistence       = errors.New("failed to record vote")
	ErrVendorNotFound    = errors.New("vendor not found")
)

type SubmitVoteRequest struct {
	VoterID     string
	VendorID    string
	Kind        models.VoteKind
	ProofURL    string
	ContentHash string
	Location    *models.Location
	Confidence  *float64
	Metadata    map[string]interface{}
}

type SubmitVoteResult struct {
	VoteID             string
	TokensEarned       int64
	NewBalance         int64
	StreakBonus        int64
	TerritoryBonus     int64
	Streak             int
	DistributionStatus models.DistributionStatus
	Warnings           []string
}

type StreakAdvancer interface {
	AdvanceOnVote(ctx context.Context, userID string) (int, error)
}

type VoteService interface {
	Submit(ctx context.Context, request SubmitVoteRequest) (SubmitVoteResult, error)
	History(ctx context.Context, voterID string, limit int) ([]*models.Vote, error)
	VendorStats(ctx context.Context, vendorID string) (*models.VendorStats, error)
}

type voteService struct {
	userRepository  repositories.UserRepository
	voteRepository  repositories.VoteRepository
	proofRepository repositories.ProofRepository
	evidence        *evidence.Filter
	counters        *counters.Counters
	calculator      *rewards.Calculator
	streaks         StreakAdvancer
	balances        BalanceService
	distributions   DistributionService
	calendar        *calendar.Calendar
	logger          *zap.SugaredLogger
	newID           func() string
}

func NewVoteService(
	userRepository repositories.UserRepository,
	voteRepository repositories.VoteRepository,
	proofRepository repositories.ProofRepository,
	evidence *evidence.Filter,
	counters *counters.Counters,
	calculator *rewards.Calculator,
	streaks StreakAdvancer,
	balances BalanceService,
	distributions DistributionService,
	calendar *calendar.Calendar,
	logger *zap.SugaredLogger,
) VoteService {
	return &voteService{
		userRepository:  userRepository,
		voteRepository:  voteRepository,
		proofRepository: proofRepository,
		evidence:        evidence,
		counters:        counters,
		calculator:      calculator,
		streaks:         streaks,
		balances:        balances,
		distributions:   distributions,
		calendar:        calendar,
		logger:          logger,
		newID:           uuid.NewString,
	}
}

// Submit admits a vote, writes it to the ledger and applies its side effects.
// Nothing changes when the vote row cannot be written. Failures after that
// point are logged and returned as warnings; the vote stands.
func (s *voteService) Submit(ctx context.Context, request SubmitVoteRequest) (SubmitVoteResult, error) {
	if err := validate(&request); err != nil {
		return SubmitVoteResult{}, err
	}

	logger := s.logger.With("user_id", request.VoterID, "vendor_id", request.VendorID, "kind", request.Kind)

	committed := false
	if request.Kind == models.VoteKindVerified {
		if err := s.checkEvidence(ctx, request); err != nil {
			return SubmitVoteResult{}, err
		}
		defer func() {
			if !committed {
				s.releaseEvidence(request)
			}
		}()
	}

	if err := s.checkLimits(request.VoterID, request.VendorID); err != nil {
		return SubmitVoteResult{}, err
	}

	if err := s.userRepository.EnsureExists(ctx, request.VoterID); err != nil {
		logger.Errorw("failed to create user", "error", err)
		return SubmitVoteResult{}, ErrPersistence
	}

	user, err := s.userRepository.GetOne(ctx, request.VoterID)
	if err != nil || user == nil {
		logger.Errorw("failed to get user", "error", err)
		return SubmitVoteResult{}, ErrPersistence
	}

	reward, err := s.calculator.Calculate(ctx, request.VoterID, request.VendorID, request.Kind)
	if err != nil {
		logger.Errorw("failed to calculate reward", "error", err)
		return SubmitVoteResult{}, fmt.Errorf("failed to calculate reward: %w", err)
	}

	if s.calculator.Policy().WeeklyCapEnabled() && reward.CapExceeded {
		logger.Infow("weekly cap exceeded", "total", reward.Total, "remaining", reward.WeeklyCapRemaining)
		return SubmitVoteResult{}, ErrWeeklyCapExceeded
	}

	vote := &models.Vote{
		ID:                 s.newID(),
		VoterID:            request.VoterID,
		VendorID:           request.VendorID,
		Kind:               request.Kind,
		TokenReward:        reward.Total,
		StreakBonus:        reward.StreakBonus,
		TerritoryBonus:     reward.TerritoryBonus,
		DistributionStatus: models.DistributionStatusPending,
		CreatedAt:          s.calendar.Now(),
	}

	if err := s.voteRepository.Create(ctx, vote); err != nil {
		logger.Errorw("failed to create vote", "vote_id", vote.ID, "error", err)
		return SubmitVoteResult{}, ErrPersistence
	}
	committed = true

	logger.Infow("vote recorded", "vote_id", vote.ID, "tokens", reward.Total, "streak_bonus", reward.StreakBonus)

	result := SubmitVoteResult{
		VoteID:             vote.ID,
		TokensEarned:       reward.Total,
		NewBalance:         user.TokenBalance,
		StreakBonus:        reward.StreakBonus,
		TerritoryBonus:     reward.TerritoryBonus,
		Streak:             user.CurrentStreak,
		DistributionStatus: models.DistributionStatusPending,
	}

	warn := func(message string, err error) {
		logger.Errorw(message, "vote_id", vote.ID, "error", err)
		result.Warnings = append(result.Warnings, message)
	}

	if request.Kind == models.VoteKindVerified {
		if err := s.storeProof(ctx, vote, request); err != nil {
			warn("failed to store proof", err)
		}
	}

	if balance, err := s.balances.Credit(ctx, vote.VoterID, reward.Total); err != nil {
		warn("failed to update balance", err)
	} else {
		result.NewBalance = balance
	}

	if streak, err := s.streaks.AdvanceOnVote(ctx, vote.VoterID); err != nil {
		warn("failed to update streak", err)
	} else {
		result.Streak = streak
	}

	if err := s.bumpCounters(vote); err != nil {
		warn("failed to update vote counters", err)
	}

	status, err := s.distributions.Distribute(ctx, vote, user)
	if err != nil {
		warn("failed to distribute tokens", err)
	} else {
		result.DistributionStatus = status
	}

	return result, nil
}

func (s *voteService) History(ctx context.Context, voterID string, limit int) ([]*models.Vote, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}

	votes, err := s.voteRepository.GetHistory(ctx, voterID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get vote history of user %s: %w", voterID, err)
	}

	return votes, nil
}

func (s *voteService) VendorStats(ctx context.Context, vendorID string) (*models.VendorStats, error) {
	stats, err := s.voteRepository.GetVendorStats(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats of vendor %s: %w", vendorID, err)
	}

	return stats, nil
}

func validate(request *SubmitVoteRequest) error {
	request.VoterID = strings.TrimSpace(request.VoterID)
	request.VendorID = strings.TrimSpace(request.VendorID)

	switch {
	case request.VoterID == "":
		return fmt.Errorf("%w: voter id is required", ErrInvalidVote)
	case request.VendorID == "":
		return fmt.Errorf("%w: vendor id is required", ErrInvalidVote)
	case !request.Kind.IsValid():
		return fmt.Errorf("%w: unknown vote kind %q", ErrInvalidVote, request.Kind)
	case request.Kind == models.VoteKindVerified && request.ProofURL == "" && request.ContentHash == "":
		return fmt.Errorf("%w: verified votes need a proof", ErrInvalidVote)
	case request.Confidence != nil && (*request.Confidence < 0 || *request.Confidence > 1):
		return fmt.Errorf("%w: confidence must be between 0 and 1", ErrInvalidVote)
	}

	if request.ContentHash == "" {
		request.ContentHash = evidence.ContentHash(request.ProofURL)
	}
	request.ContentHash = evidence.NormalizeHash(request.ContentHash)

	return nil
}

func (s *voteService) checkEvidence(ctx context.Context, request SubmitVoteRequest) error {
	duplicate, err := s.evidence.IsDuplicate(ctx, request.ContentHash)
	if err != nil {
		return err
	}
	if !duplicate {
		return nil
	}

	s.logger.Warnw("duplicate proof rejected", "user_id", request.VoterID, "content_hash", request.ContentHash)

	err = s.evidence.RecordSuspicious(request.VoterID, evidence.SuspiciousActivity{
		Reason:      reasonDuplicateProof,
		VendorID:    request.VendorID,
		ContentHash: request.ContentHash,
		At:          s.calendar.Now(),
	})
	if err != nil {
		s.logger.Errorw("failed to record suspicious activity", "user_id", request.VoterID, "error", err)
	}

	return ErrDuplicateEvidence
}

// releaseEvidence lets a vote that was rejected or failed to commit be
// submitted again with the same proof.
func (s *voteService) releaseEvidence(request SubmitVoteRequest) {
	if err := s.evidence.Release(request.ContentHash); err != nil {
		s.logger.Errorw("failed to release proof", "user_id", request.VoterID, "content_hash", request.ContentHash, "error", err)
	}
}

// checkLimits only consults the counters of limits that are switched on.
func (s *voteService) checkLimits(userID, vendorID string) error {
	policy := s.calculator.Policy()

	limits := []struct {
		key   counters.Key
		limit int64
	}{
		{key: s.counters.DailyVotes(userID, vendorID), limit: policy.DailyVendorVoteCap},
		{key: s.counters.DailyVotes(userID, counters.AnyVendor), limit: policy.DailyVoteCap},
		{key: s.counters.WeeklyVotes(userID), limit: policy.WeeklyVoteCap},
	}

	for _, l := range limits {
		if l.limit <= 0 {
			continue
		}

		count, err := s.counters.Get(l.key)
		if err != nil {
			return fmt.Errorf("failed to check vote limit %s: %w", l.key.Name, err)
		}
		if count >= l.limit {
			s.logger.Infow("vote limit reached", "user_id", userID, "key", l.key.Name, "limit", l.limit)
			return ErrRateLimited
		}
	}

	return nil
}

func (s *voteService) storeProof(ctx context.Context, vote *models.Vote, request SubmitVoteRequest) error {
	proof := &models.Proof{
		ID:          s.newID(),
		VoteID:      vote.ID,
		VoterID:     vote.VoterID,
		VendorID:    vote.VendorID,
		ContentHash: request.ContentHash,
		URL:         request.ProofURL,
		Location:    request.Location,
		Confidence:  request.Confidence,
		Status:      models.ProofStatusPending,
		Metadata:    request.Metadata,
		CreatedAt:   vote.CreatedAt,
	}

	if err := s.proofRepository.Create(ctx, proof); err != nil {
		return err
	}

	if err := s.voteRepository.AttachProof(ctx, vote.ID, proof.ID); err != nil {
		return err
	}

	vote.ProofID = proof.ID

	return nil
}

func (s *voteService) bumpCounters(vote *models.Vote) error {
	var errs []error

	for _, key := range []counters.Key{
		s.counters.DailyVotes(vote.VoterID, vote.VendorID),
		s.counters.DailyVotes(vote.VoterID, counters.AnyVendor),
		s.counters.WeeklyVotes(vote.VoterID),
	} {
		if _, err := s.counters.Increment(key); err != nil {
			errs = append(errs, err)
		}
	}

	if _, err := s.counters.IncrementBy(s.counters.WeeklyTokens(vote.VoterID), vote.TokenReward); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
