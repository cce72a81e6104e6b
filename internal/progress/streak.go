package progress

import (
	"slices"
	"time"

	"github.com/limbo/habitpulse/pkg/entity"
)

type StreakOptions struct {
	// GraceToday keeps a streak alive while today is still unchecked.
	GraceToday bool
}

var DefaultStreakOptions = StreakOptions{GraceToday: true}

// ComputeStreak counts consecutive completed days ending today, or yesterday
// when today isn't completed yet. Days before the habit's creation never count.
func ComputeStreak(habit entity.Habit, completions []entity.HabitCompletion, today time.Time) int {
	return ComputeStreakWithOptions(habit, NewIndex(completions), today, DefaultStreakOptions)
}

func ComputeStreakWithOptions(habit entity.Habit, idx *Index, today time.Time, opts StreakOptions) int {
	created := Day(habit.CreatedAt)
	cursor := Day(today)
	if cursor.Before(created) {
		return 0
	}
	if !idx.Completed(habit.ID, cursor) {
		if !opts.GraceToday {
			return 0
		}
		cursor = cursor.AddDate(0, 0, -1)
	}
	streak := 0
	for !cursor.Before(created) && idx.Completed(habit.ID, cursor) {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}

// LongestStreak is the longest run of consecutive completed days between the
// habit's creation and today.
func LongestStreak(habit entity.Habit, completions []entity.HabitCompletion, today time.Time) int {
	created, last := dayNumber(habit.CreatedAt), dayNumber(today)
	days := make(map[int64]bool)
	for _, c := range completions {
		if c.HabitID != habit.ID {
			continue
		}
		days[dayNumber(c.Date)] = c.Completed
	}
	completed := make([]int64, 0, len(days))
	for d, ok := range days {
		if ok && d >= created && d <= last {
			completed = append(completed, d)
		}
	}
	slices.Sort(completed)

	longest, run := 0, 0
	for i, d := range completed {
		if i > 0 && d == completed[i-1]+1 {
			run++
		} else {
			run = 1
		}
		longest = max(longest, run)
	}
	return longest
}

// RefreshStreaks returns copies of habits with Streak recomputed as of today.
func RefreshStreaks(habits []entity.Habit, completions []entity.HabitCompletion, today time.Time) []entity.Habit {
	idx := NewIndex(completions)
	result := make([]entity.Habit, len(habits))
	for i, h := range habits {
		h.Streak = ComputeStreakWithOptions(h, idx, today, DefaultStreakOptions)
		result[i] = h
	}
	return result
}
