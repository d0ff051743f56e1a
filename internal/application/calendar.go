package application

import (
	"time"

	"github.com/ericfisherdev/guestwifi/internal/domain/model"
)

// Calendar turns the wall clock into DD/MM/YYYY day strings in a fixed time
// zone. It shares model.FormatDate with the validator so every value it
// produces passes model.IsValidDate.
type Calendar struct {
	loc *time.Location
	now func() time.Time
}

// NewCalendar creates a Calendar pinned to loc using the system clock.
// A nil loc means time.Local.
func NewCalendar(loc *time.Location) *Calendar {
	return NewCalendarWithClock(loc, time.Now)
}

// NewCalendarWithClock creates a Calendar with an injected clock.
func NewCalendarWithClock(loc *time.Location, now func() time.Time) *Calendar {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &Calendar{loc: loc, now: now}
}

// Location returns the time zone days are computed in.
func (c *Calendar) Location() *time.Location {
	return c.loc
}

// Today returns the current day in the calendar's time zone.
func (c *Calendar) Today() string {
	return c.DateAt(c.now())
}

// Yesterday returns the day before Today.
func (c *Calendar) Yesterday() string {
	now := c.now().In(c.loc)
	y, m, d := now.Date()
	return model.FormatDate(time.Date(y, m, d-1, 12, 0, 0, 0, c.loc))
}

// DateAt formats t as a day in the calendar's time zone.
func (c *Calendar) DateAt(t time.Time) string {
	return model.FormatDate(t.In(c.loc))
}
