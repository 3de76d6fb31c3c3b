package rewards

import (
	"context"
	"errors"
	"testing"
	"time"

	"vendor_rewards/configs"
	"vendor_rewards/internal/cache"
	"vendor_rewards/internal/calendar"
	"vendor_rewards/internal/counters"
	"vendor_rewards/internal/db/models"
	mock_repositories "vendor_rewards/internal/db/repositories/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestCalculate_FirstRegularVote(t *testing.T) {
	reward := Calculate(Input{Kind: models.VoteKindRegular, FirstVoteForVendorToday: true}, DefaultPolicy())

	assert.Equal(t, int64(10), reward.Base)
	assert.Equal(t, int64(0), reward.StreakBonus)
	assert.Equal(t, int64(10), reward.Total)
	assert.False(t, reward.CapExceeded)
}

func TestCalculate_RepeatVoteIsHalved(t *testing.T) {
	regular := Calculate(Input{Kind: models.VoteKindRegular}, DefaultPolicy())
	verified := Calculate(Input{Kind: models.VoteKindVerified}, DefaultPolicy())

	assert.Equal(t, int64(5), regular.Total)
	assert.Equal(t, int64(15), verified.Total)
}

func TestCalculate_FirstVerifiedVote(t *testing.T) {
	reward := Calculate(Input{Kind: models.VoteKindVerified, FirstVoteForVendorToday: true}, DefaultPolicy())
	assert.Equal(t, int64(30), reward.Total)
}

func TestCalculate_StreakBonus(t *testing.T) {
	reward := Calculate(Input{Kind: models.VoteKindRegular, FirstVoteForVendorToday: true, Streak: 7}, DefaultPolicy())

	assert.Equal(t, int64(7), reward.StreakBonus)
	assert.Equal(t, int64(17), reward.Total)
}

func TestCalculate_StreakBonusIsCapped(t *testing.T) {
	reward := Calculate(Input{Kind: models.VoteKindRegular, Streak: 25}, DefaultPolicy())

	assert.Equal(t, int64(10), reward.StreakBonus)
	assert.Equal(t, int64(15), reward.Total)
}

func TestCalculate_TerritoryBonusIsZero(t *testing.T) {
	reward := Calculate(Input{Kind: models.VoteKindVerified, FirstVoteForVendorToday: true, Streak: 3}, DefaultPolicy())
	assert.Equal(t, int64(0), reward.TerritoryBonus)
}

func TestCalculate_WeeklyCapDisabled(t *testing.T) {
	reward := Calculate(Input{Kind: models.VoteKindVerified, FirstVoteForVendorToday: true, EarnedThisWeek: 1_000_000}, DefaultPolicy())

	assert.Equal(t, Unlimited, reward.WeeklyCapRemaining)
	assert.False(t, reward.CapExceeded)
}

func TestCalculate_WeeklyCapEnabled(t *testing.T) {
	policy := DefaultPolicy()
	policy.WeeklyTokenCap = 100

	reward := Calculate(Input{Kind: models.VoteKindVerified, FirstVoteForVendorToday: true, EarnedThisWeek: 80}, policy)
	assert.Equal(t, int64(20), reward.WeeklyCapRemaining)
	assert.True(t, reward.CapExceeded)

	reward = Calculate(Input{Kind: models.VoteKindRegular, FirstVoteForVendorToday: true, EarnedThisWeek: 80}, policy)
	assert.False(t, reward.CapExceeded)

	reward = Calculate(Input{Kind: models.VoteKindRegular, EarnedThisWeek: 150}, policy)
	assert.Equal(t, int64(0), reward.WeeklyCapRemaining)
	assert.True(t, reward.CapExceeded)
}

func TestPolicyFromConfig_OverridesOnlyNonZero(t *testing.T) {
	policy := PolicyFromConfig(configs.Rewards{WeeklyTokenCap: 500, DailyVoteCap: 20})

	assert.Equal(t, int64(500), policy.WeeklyTokenCap)
	assert.Equal(t, int64(20), policy.DailyVoteCap)
	assert.Equal(t, DailyVendorVoteCap, policy.DailyVendorVoteCap)
	assert.Equal(t, WeeklyVoteCap, policy.WeeklyVoteCap)
}

type fixedStreak struct {
	streak int
	err    error
}

func (s fixedStreak) BonusStreak(context.Context, string) (int, error) {
	return s.streak, s.err
}

func newTestCalculator(t *testing.T, streaks StreakSource, policy Policy) (*Calculator, *mock_repositories.MockVoteRepository, *counters.Counters) {
	t.Helper()

	ctrl := gomock.NewController(t)
	votes := mock_repositories.NewMockVoteRepository(ctrl)

	store, err := cache.Open("", zap.NewNop().Sugar())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
	c := calendar.NewWithClock(time.UTC, func() time.Time { return now })
	cnt := counters.New(store, c)

	return NewCalculator(votes, streaks, cnt, c, policy, zap.NewNop().Sugar()), votes, cnt
}

func TestCalculator_FirstVoteOfDay(t *testing.T) {
	calculator, votes, _ := newTestCalculator(t, fixedStreak{streak: 7}, DefaultPolicy())

	from := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	votes.EXPECT().CountByVoterAndVendor(gomock.Any(), "u1", "v1", from, from.AddDate(0, 0, 1)).Return(0, nil)

	reward, err := calculator.Calculate(context.Background(), "u1", "v1", models.VoteKindRegular)
	require.NoError(t, err)
	assert.Equal(t, int64(17), reward.Total)
}

func TestCalculator_RepeatVoteOfDay(t *testing.T) {
	calculator, votes, _ := newTestCalculator(t, fixedStreak{}, DefaultPolicy())

	votes.EXPECT().CountByVoterAndVendor(gomock.Any(), "u1", "v1", gomock.Any(), gomock.Any()).Return(1, nil)

	reward, err := calculator.Calculate(context.Background(), "u1", "v1", models.VoteKindRegular)
	require.NoError(t, err)
	assert.Equal(t, int64(5), reward.Total)
}

func TestCalculator_StreakFailureGrantsNoBonus(t *testing.T) {
	calculator, votes, _ := newTestCalculator(t, fixedStreak{err: errors.New("db down")}, DefaultPolicy())

	votes.EXPECT().CountByVoterAndVendor(gomock.Any(), "u1", "v1", gomock.Any(), gomock.Any()).Return(0, nil)

	reward, err := calculator.Calculate(context.Background(), "u1", "v1", models.VoteKindVerified)
	require.NoError(t, err)
	assert.Equal(t, int64(30), reward.Total)
}

func TestCalculator_LedgerFailureIsReturned(t *testing.T) {
	calculator, votes, _ := newTestCalculator(t, fixedStreak{}, DefaultPolicy())

	votes.EXPECT().CountByVoterAndVendor(gomock.Any(), "u1", "v1", gomock.Any(), gomock.Any()).Return(0, errors.New("db down"))

	_, err := calculator.Calculate(context.Background(), "u1", "v1", models.VoteKindRegular)
	assert.Error(t, err)
}

func TestCalculator_UsesWeeklyEarnings(t *testing.T) {
	policy := DefaultPolicy()
	policy.WeeklyTokenCap = 40
	calculator, votes, cnt := newTestCalculator(t, fixedStreak{}, policy)

	_, err := cnt.IncrementBy(cnt.WeeklyTokens("u1"), 35)
	require.NoError(t, err)

	votes.EXPECT().CountByVoterAndVendor(gomock.Any(), "u1", "v1", gomock.Any(), gomock.Any()).Return(0, nil)

	reward, err := calculator.Calculate(context.Background(), "u1", "v1", models.VoteKindRegular)
	require.NoError(t, err)
	assert.Equal(t, int64(5), reward.WeeklyCapRemaining)
	assert.True(t, reward.CapExceeded)
}
