package rewards

import (
	"math"

	"vendor_rewards/configs"
)

const (
	RegularBase    int64 = 10
	VerifiedBase   int64 = 30
	MaxStreakBonus int64 = 10

	// Caps below are switched off with 0. Raising one of them re-enables the
	// check without touching the admission flow.
	WeeklyTokenCap     int64 = 0
	DailyVendorVoteCap int64 = 0
	DailyVoteCap       int64 = 0
	WeeklyVoteCap      int64 = 0
)

const Unlimited int64 = math.MaxInt64

type Policy struct {
	WeeklyTokenCap     int64
	DailyVendorVoteCap int64
	DailyVoteCap       int64
	WeeklyVoteCap      int64
}

func DefaultPolicy() Policy {
	return Policy{
		WeeklyTokenCap:     WeeklyTokenCap,
		DailyVendorVoteCap: DailyVendorVoteCap,
		DailyVoteCap:       DailyVoteCap,
		WeeklyVoteCap:      WeeklyVoteCap,
	}
}

// PolicyFromConfig starts from DefaultPolicy and applies every non-zero
// override from the environment.
func PolicyFromConfig(config configs.Rewards) Policy {
	policy := DefaultPolicy()

	if config.WeeklyTokenCap > 0 {
		policy.WeeklyTokenCap = config.WeeklyTokenCap
	}
	if config.DailyVendorVoteCap > 0 {
		policy.DailyVendorVoteCap = config.DailyVendorVoteCap
	}
	if config.DailyVoteCap > 0 {
		policy.DailyVoteCap = config.DailyVoteCap
	}
	if config.WeeklyVoteCap > 0 {
		policy.WeeklyVoteCap = config.WeeklyVoteCap
	}

	return policy
}

func (p Policy) WeeklyCapEnabled() bool {
	return p.WeeklyTokenCap > 0
}

// WeeklyCapRemaining is Unlimited while the weekly cap is disabled.
func (p Policy) WeeklyCapRemaining(earnedThisWeek int64) int64 {
	if !p.WeeklyCapEnabled() {
		return Unlimited
	}

	remaining := p.WeeklyTokenCap - earnedThisWeek
	if remaining < 0 {
		return 0
	}

	return remaining
}
