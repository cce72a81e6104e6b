package service

import (
	"time"

	"github.com/limbo/habitpulse/internal/progress"
	"github.com/limbo/habitpulse/pkg/entity"
)

// Calendar decides which day is today for users of the service and how
// their weeks are laid out.
type Calendar struct {
	Now       func() time.Time
	Location  *time.Location
	WeekStart time.Weekday
}

func DefaultCalendar() Calendar {
	return Calendar{
		Now:       time.Now,
		Location:  time.UTC,
		WeekStart: time.Monday,
	}
}

func (c Calendar) location() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}

func (c Calendar) Today() time.Time {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	return progress.Day(now().In(c.location()))
}

// resolve returns today when day is zero and the calendar day of day otherwise.
func (c Calendar) resolve(day time.Time) time.Time {
	if day.IsZero() {
		return c.Today()
	}
	return progress.Day(day)
}

// localize moves creation timestamps into the calendar location so that the
// creation day matches what the user saw.
func (c Calendar) localize(habit entity.Habit) entity.Habit {
	habit.CreatedAt = habit.CreatedAt.In(c.location())
	return habit
}

func (c Calendar) localizeAll(habits []entity.Habit) []entity.Habit {
	result := make([]entity.Habit, len(habits))
	for i, h := range habits {
		result[i] = c.localize(h)
	}
	return result
}

func (c Calendar) options() progress.Options {
	return progress.Options{WeekStart: c.WeekStart}
}
