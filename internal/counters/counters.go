// Package counters keeps per-day and per-week activity counters whose keys
// encode the owner and the time window, and whose expiry equals the window.
package counters

import (
	"errors"
	"fmt"
	"time"

	"vendor_rewards/internal/cache"
	"vendor_rewards/internal/calendar"
)

const AnyVendor = "*"

type Store interface {
	IncrementBy(key string, delta int64, ttl time.Duration) (int64, error)
	GetInt(key string) (int64, error)
}

type Key struct {
	Name string
	TTL  time.Duration
}

type Counters struct {
	store    Store
	calendar *calendar.Calendar
}

func New(store Store, calendar *calendar.Calendar) *Counters {
	return &Counters{store: store, calendar: calendar}
}

// DailyVotes counts votes of a user today, for one vendor or AnyVendor.
func (c *Counters) DailyVotes(userID, vendorID string) Key {
	return Key{
		Name: fmt.Sprintf("votes:daily:%s:%s:%s", userID, vendorID, c.calendar.DayKey(c.calendar.Now())),
		TTL:  calendar.Day,
	}
}

func (c *Counters) WeeklyVotes(userID string) Key {
	return Key{
		Name: fmt.Sprintf("votes:weekly:%s:%s:%s", userID, AnyVendor, c.calendar.WeekKey(c.calendar.Now())),
		TTL:  calendar.Week,
	}
}

// WeeklyTokens accumulates the tokens a user earned this ISO week.
func (c *Counters) WeeklyTokens(userID string) Key {
	return Key{
		Name: fmt.Sprintf("tokens:weekly:%s:%s", userID, c.calendar.WeekKey(c.calendar.Now())),
		TTL:  calendar.Week,
	}
}

func (c *Counters) Increment(key Key) (int64, error) {
	return c.IncrementBy(key, 1)
}

func (c *Counters) IncrementBy(key Key, delta int64) (int64, error) {
	return c.store.IncrementBy(key.Name, delta, key.TTL)
}

// Get returns zero for counters that never started or already expired.
func (c *Counters) Get(key Key) (int64, error) {
	value, err := c.store.GetInt(key.Name)
	if errors.Is(err, cache.ErrNotFound) {
		return 0, nil
	}

	return value, err
}
