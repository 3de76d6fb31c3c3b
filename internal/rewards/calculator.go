// Package rewards decides how many tokens a vote earns.
package rewards

import (
	"context"
	"fmt"

	"vendor_rewards/internal/calendar"
	"vendor_rewards/internal/counters"
	"vendor_rewards/internal/db/models"
	"vendor_rewards/internal/db/repositories"

	"go.uber.org/zap"
)

type Input struct {
	Kind                    models.VoteKind
	FirstVoteForVendorToday bool
	Streak                  int
	EarnedThisWeek          int64
}

type Reward struct {
	Base               int64
	StreakBonus        int64
	TerritoryBonus     int64
	Total              int64
	WeeklyCapRemaining int64
	CapExceeded        bool
}

// Calculate is the pure reward rule set.
func Calculate(input Input, policy Policy) Reward {
	base := RegularBase
	if input.Kind == models.VoteKindVerified {
		base = VerifiedBase
	}

	if !input.FirstVoteForVendorToday {
		base /= 2
	}

	streakBonus := int64(input.Streak)
	if streakBonus > MaxStreakBonus {
		streakBonus = MaxStreakBonus
	}
	if streakBonus < 0 {
		streakBonus = 0
	}

	reward := Reward{
		Base:               base,
		StreakBonus:        streakBonus,
		TerritoryBonus:     territoryBonus(),
		WeeklyCapRemaining: policy.WeeklyCapRemaining(input.EarnedThisWeek),
	}
	reward.Total = reward.Base + reward.StreakBonus + reward.TerritoryBonus
	reward.CapExceeded = reward.Total > reward.WeeklyCapRemaining

	return reward
}

// territoryBonus is reserved for zone ownership rewards.
func territoryBonus() int64 {
	return 0
}

type StreakSource interface {
	BonusStreak(ctx context.Context, userID string) (int, error)
}

type Calculator struct {
	voteRepository repositories.VoteRepository
	streaks        StreakSource
	counters       *counters.Counters
	calendar       *calendar.Calendar
	policy         Policy
	logger         *zap.SugaredLogger
}

func NewCalculator(
	voteRepository repositories.VoteRepository,
	streaks StreakSource,
	counters *counters.Counters,
	calendar *calendar.Calendar,
	policy Policy,
	logger *zap.SugaredLogger,
) *Calculator {
	return &Calculator{
		voteRepository: voteRepository,
		streaks:        streaks,
		counters:       counters,
		calendar:       calendar,
		policy:         policy,
		logger:         logger,
	}
}

func (c *Calculator) Policy() Policy {
	return c.policy
}

// Calculate gathers the inputs of a vote that is about to be written.
func (c *Calculator) Calculate(ctx context.Context, userID, vendorID string, kind models.VoteKind) (Reward, error) {
	first, err := c.IsFirstVoteForVendorToday(ctx, userID, vendorID)
	if err != nil {
		return Reward{}, err
	}

	streak, err := c.streaks.BonusStreak(ctx, userID)
	if err != nil {
		c.logger.Warnw("failed to get streak, granting no streak bonus", "user_id", userID, "error", err)
		streak = 0
	}

	earned, err := c.counters.Get(c.counters.WeeklyTokens(userID))
	if err != nil {
		if c.policy.WeeklyCapEnabled() {
			return Reward{}, fmt.Errorf("failed to read weekly earnings of user %s: %w", userID, err)
		}
		c.logger.Warnw("failed to read weekly earnings", "user_id", userID, "error", err)
		earned = 0
	}

	return Calculate(Input{
		Kind:                    kind,
		FirstVoteForVendorToday: first,
		Streak:                  streak,
		EarnedThisWeek:          earned,
	}, c.policy), nil
}

// IsFirstVoteForVendorToday asks the ledger, not the counters, whether the
// user already voted for vendor on the current calendar day.
func (c *Calculator) IsFirstVoteForVendorToday(ctx context.Context, userID, vendorID string) (bool, error) {
	from, to := c.calendar.DayBounds(c.calendar.Now())

	count, err := c.voteRepository.CountByVoterAndVendor(ctx, userID, vendorID, from, to)
	if err != nil {
		return false, fmt.Errorf("failed to count today's votes of user %s for vendor %s: %w", userID, vendorID, err)
	}

	return count == 0, nil
}
