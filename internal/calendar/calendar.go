// Package calendar maps instants onto the calendar days and ISO weeks of the
// reference timezone that streaks and counters are keyed by.
package calendar

import (
	"fmt"
	"time"
)

const (
	dayLayout = "2006-01-02"

	Day  = 24 * time.Hour
	Week = 7 * Day
)

type Calendar struct {
	location *time.Location
	now      func() time.Time
}

func New(location *time.Location) *Calendar {
	return &Calendar{location: location, now: time.Now}
}

func NewWithClock(location *time.Location, now func() time.Time) *Calendar {
	return &Calendar{location: location, now: now}
}

// Load resolves an IANA timezone name, e.g. "Asia/Seoul".
func Load(timezone string) (*Calendar, error) {
	location, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", timezone, err)
	}

	return New(location), nil
}

func (c *Calendar) Location() *time.Location {
	return c.location
}

func (c *Calendar) Now() time.Time {
	return c.now().In(c.location)
}

func (c *Calendar) StartOfDay(t time.Time) time.Time {
	t = t.In(c.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.location)
}

func (c *Calendar) Today() time.Time {
	return c.StartOfDay(c.Now())
}

func (c *Calendar) Yesterday() time.Time {
	return c.Today().AddDate(0, 0, -1)
}

// DayBounds returns [start, end) of the calendar day containing t.
func (c *Calendar) DayBounds(t time.Time) (time.Time, time.Time) {
	start := c.StartOfDay(t)
	return start, start.AddDate(0, 0, 1)
}

func (c *Calendar) DayKey(t time.Time) string {
	return t.In(c.location).Format(dayLayout)
}

func (c *Calendar) WeekKey(t time.Time) string {
	year, week := t.In(c.location).ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}
