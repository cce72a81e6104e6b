package progress

import (
	"time"

	"github.com/limbo/habitpulse/pkg/entity"
)

var frequencyTargets = []struct {
	Frequency entity.Frequency
	Target    int
}{
	{entity.FrequencyDaily, 7},
	{entity.Frequency2xWeek, 2},
	{entity.Frequency3xWeek, 3},
	{entity.Frequency4xWeek, 4},
	{entity.Frequency5xWeek, 5},
	{entity.Frequency6xWeek, 6},
	{entity.FrequencyWeekly, 1},
}

// FrequencyTarget maps a frequency to the number of days per week it asks for.
// Unknown frequencies ask for one day.
func FrequencyTarget(freq entity.Frequency) int {
	for _, ft := range frequencyTargets {
		if ft.Frequency == freq {
			return ft.Target
		}
	}
	return 1
}

func IsKnownFrequency(freq entity.Frequency) bool {
	for _, ft := range frequencyTargets {
		if ft.Frequency == freq {
			return true
		}
	}
	return false
}

// WeekStart returns the first day of the week containing date.
func WeekStart(date time.Time, startDay time.Weekday) time.Time {
	d := Day(date)
	offset := (int(d.Weekday()) - int(startDay) + 7) % 7
	return d.AddDate(0, 0, -offset)
}

// HasMetWeeklyFrequency reports whether the habit reached its weekly target in
// the seven days starting at weekStart.
func HasMetWeeklyFrequency(habit entity.Habit, completions []entity.HabitCompletion, weekStart time.Time) bool {
	return WeeklyProgress(habit, NewIndex(completions), weekStart).Met
}

func WeeklyProgress(habit entity.Habit, idx *Index, weekStart time.Time) entity.WeeklyProgress {
	from := Day(weekStart)
	if created := Day(habit.CreatedAt); from.Before(created) {
		from = created
	}
	to := AddDays(weekStart, 6)
	completed := 0
	if !from.After(to) {
		completed = idx.CountInRange(habit.ID, from, to)
	}
	target := FrequencyTarget(habit.Frequency)
	return entity.WeeklyProgress{
		WeekStart: Day(weekStart),
		Target:    target,
		Completed: completed,
		Met:       completed >= target,
	}
}

// NormalizeHabit resolves the category and forces daily habits to be absolute.
// A missing frequency means daily, an unrecognized one degrades to weekly.
func NormalizeHabit(habit entity.Habit) entity.Habit {
	habit.Category = NormalizeCategory(string(habit.Category))
	switch {
	case habit.Frequency == "":
		habit.Frequency = entity.FrequencyDaily
	case !IsKnownFrequency(habit.Frequency):
		habit.Frequency = entity.FrequencyWeekly
	}
	if habit.Frequency == entity.FrequencyDaily {
		habit.IsAbsolute = true
	}
	return habit
}
