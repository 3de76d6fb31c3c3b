// Package streak tracks how many consecutive calendar days a user voted on.
// The users table holds the authoritative value; the cache entry is a
// mirror used for display that expires when the run would lapse.
package streak

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vendor_rewards/internal/cache"
	"vendor_rewards/internal/calendar"
	"vendor_rewards/internal/db/repositories"

	"go.uber.org/zap"
)

const lookbackDays = 30

type Cache interface {
	SetInt(key string, value int64, ttl time.Duration) error
	GetInt(key string) (int64, error)
	Delete(key string) error
}

type Tracker struct {
	userRepository repositories.UserRepository
	voteRepository repositories.VoteRepository
	cache          Cache
	calendar       *calendar.Calendar
	logger         *zap.SugaredLogger
}

func NewTracker(
	userRepository repositories.UserRepository,
	voteRepository repositories.VoteRepository,
	cache Cache,
	calendar *calendar.Calendar,
	logger *zap.SugaredLogger,
) *Tracker {
	return &Tracker{
		userRepository: userRepository,
		voteRepository: voteRepository,
		cache:          cache,
		calendar:       calendar,
		logger:         logger,
	}
}

// GetStreak returns the streak ending today, or ending at the last day the
// user voted when there is no vote today.
func (t *Tracker) GetStreak(ctx context.Context, userID string) (int, error) {
	return t.streakAsOf(ctx, userID, t.calendar.Today())
}

// BonusStreak is the length of the run today's vote extends. A run that
// starts today earns no bonus, so the value is 0 unless the user voted
// yesterday. It is the same for every vote of one calendar day.
func (t *Tracker) BonusStreak(ctx context.Context, userID string) (int, error) {
	yesterday := t.calendar.Yesterday()

	votedYesterday, err := t.votedOn(ctx, userID, yesterday)
	if err != nil {
		return 0, err
	}
	if !votedYesterday {
		return 0, nil
	}

	streak, err := t.streakAsOf(ctx, userID, yesterday)
	if err != nil {
		return 0, err
	}

	return streak + 1, nil
}

// AdvanceOnVote moves the stored streak forward for today's vote. It is a
// no-op once the streak was advanced today, so every accepted vote may call it.
func (t *Tracker) AdvanceOnVote(ctx context.Context, userID string) (int, error) {
	today := t.calendar.DayKey(t.calendar.Now())

	user, err := t.userRepository.GetOne(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to get user %s: %w", userID, err)
	}
	if user == nil {
		return 0, fmt.Errorf("user %s not found", userID)
	}

	if user.StreakUpdatedOn == today {
		return user.CurrentStreak, nil
	}

	votedYesterday, err := t.votedOn(ctx, userID, t.calendar.Yesterday())
	if err != nil {
		return 0, err
	}

	streak := 1
	if votedYesterday {
		streak = user.CurrentStreak + 1
	}

	advanced, err := t.userRepository.AdvanceStreak(ctx, userID, streak, today)
	if err != nil {
		return 0, fmt.Errorf("failed to store streak of user %s: %w", userID, err)
	}

	if !advanced {
		// a concurrent vote advanced it first
		current, err := t.userRepository.GetOne(ctx, userID)
		if err != nil {
			return 0, fmt.Errorf("failed to reload streak of user %s: %w", userID, err)
		}
		if current == nil {
			return 0, fmt.Errorf("user %s not found", userID)
		}
		streak = current.CurrentStreak
	}

	t.cacheStreak(userID, streak)

	return streak, nil
}

func (t *Tracker) Reset(ctx context.Context, userID string) error {
	if err := t.userRepository.ResetStreak(ctx, userID); err != nil {
		return fmt.Errorf("failed to reset streak of user %s: %w", userID, err)
	}

	if err := t.cache.Delete(cacheKey(userID)); err != nil {
		t.logger.Warnw("failed to drop cached streak", "user_id", userID, "error", err)
	}

	return nil
}

// CachedStreak serves the current streak from the cache when possible. On a
// miss it asks GetStreak, unless the user's run already lapsed.
func (t *Tracker) CachedStreak(ctx context.Context, userID string) (int, error) {
	value, err := t.cache.GetInt(cacheKey(userID))
	if err == nil {
		return int(value), nil
	}
	if !errors.Is(err, cache.ErrNotFound) {
		t.logger.Warnw("failed to read cached streak", "user_id", userID, "error", err)
	}

	user, err := t.userRepository.GetOne(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to get user %s: %w", userID, err)
	}
	if user == nil {
		return 0, nil
	}

	// day keys are YYYY-MM-DD, so they compare in calendar order
	if user.StreakUpdatedOn == "" || user.StreakUpdatedOn < t.calendar.DayKey(t.calendar.Yesterday()) {
		return 0, nil
	}

	streak, err := t.GetStreak(ctx, userID)
	if err != nil {
		t.logger.Warnw("failed to compute streak, serving stored value", "user_id", userID, "error", err)
		streak = user.CurrentStreak
	}

	t.cacheStreak(userID, streak)

	return streak, nil
}

func (t *Tracker) streakAsOf(ctx context.Context, userID string, day time.Time) (int, error) {
	streak, err := t.userRepository.GetPrecomputedStreak(ctx, userID, t.calendar.DayKey(day), t.calendar.Location().String())
	if err == nil {
		return streak, nil
	}

	t.logger.Warnw("precomputed streak unavailable, recomputing from votes", "user_id", userID, "error", err)

	createdAt, err := t.voteRepository.GetCreatedAtSince(ctx, userID, day.AddDate(0, 0, -(lookbackDays-1)))
	if err != nil {
		return 0, fmt.Errorf("failed to recompute streak of user %s: %w", userID, err)
	}

	return countStreak(createdAt, day, t.calendar), nil
}

func (t *Tracker) votedOn(ctx context.Context, userID string, day time.Time) (bool, error) {
	from, to := t.calendar.DayBounds(day)

	count, err := t.voteRepository.CountByVoter(ctx, userID, from, to)
	if err != nil {
		return false, fmt.Errorf("failed to count votes of user %s: %w", userID, err)
	}

	return count > 0, nil
}

func (t *Tracker) cacheStreak(userID string, streak int) {
	if err := t.cache.SetInt(cacheKey(userID), int64(streak), t.mirrorTTL()); err != nil {
		t.logger.Warnw("failed to cache streak", "user_id", userID, "error", err)
	}
}

// mirrorTTL keeps a cached streak until the end of tomorrow, the last moment
// a vote can still extend today's run. It is at most two days.
func (t *Tracker) mirrorTTL() time.Duration {
	now := t.calendar.Now()
	return t.calendar.StartOfDay(now).AddDate(0, 0, 2).Sub(now)
}

// countStreak walks back from the latest voting day on or before asOf and
// counts days until the first day without a vote.
func countStreak(createdAt []time.Time, asOf time.Time, c *calendar.Calendar) int {
	days := make(map[string]bool, len(createdAt))
	for _, ts := range createdAt {
		days[c.DayKey(ts)] = true
	}

	day := c.StartOfDay(asOf)
	for i := 0; i < lookbackDays && !days[c.DayKey(day)]; i++ {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for streak < lookbackDays && days[c.DayKey(day)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}

	return streak
}

func cacheKey(userID string) string {
	return "streak:" + userID
}
