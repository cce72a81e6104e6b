package progress_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/limbo/habitpulse/internal/progress"
	"github.com/limbo/habitpulse/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreakBonus(t *testing.T) {
	testCases := []struct {
		Streak int
		Bonus  int
	}{
		{0, 0},
		{6, 0},
		{7, 25},
		{29, 25},
		{30, 125},
		{100, 625},
		{365, 625},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.Bonus, progress.StreakBonus(tc.Streak), "streak %d", tc.Streak)
	}
}

func TestComputeXP(t *testing.T) {
	habits := []entity.Habit{
		{ID: uuid.New(), Streak: 7},
		{ID: uuid.New(), Streak: 0},
		{ID: uuid.New(), Streak: -3},
	}
	// 3 habits, 12 completions, streak 7 → 2*7 + 25
	assert.Equal(t, 30+60+14+25, progress.ComputeXP(habits, 12))
	assert.Equal(t, 0, progress.ComputeXP(nil, 0))
}

func TestComputeXPMonotonic(t *testing.T) {
	prev := -1
	for streak := 0; streak <= 120; streak++ {
		xp := progress.ComputeXP([]entity.Habit{{Streak: streak}}, streak)
		assert.GreaterOrEqual(t, xp, prev)
		prev = xp
	}
}

func TestResolveLevel(t *testing.T) {
	testCases := []struct {
		Desc     string
		XP       int
		Level    int
		Progress int
	}{
		{"zero", 0, 1, 0},
		{"mid first level", 50, 1, 50},
		{"boundary goes up", 100, 2, 0},
		{"mid level", 175, 2, 50},
		{"top level", 16000, 10, 50},
		{"beyond the table clamps", 99999, 10, 100},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			level, p := progress.ResolveLevel(tc.XP)
			assert.Equal(t, tc.Level, level.Level)
			assert.Equal(t, tc.Progress, p)
		})
	}
}

func TestLevelsAscending(t *testing.T) {
	levels := progress.Levels()
	require.NotEmpty(t, levels)
	assert.Equal(t, 0, levels[0].MinXP)
	for i := 1; i < len(levels); i++ {
		assert.Equal(t, levels[i-1].MaxXP, levels[i].MinXP)
		assert.Equal(t, levels[i-1].Level+1, levels[i].Level)
	}
}

func TestDeriveGamificationEmpty(t *testing.T) {
	g := progress.DeriveGamification(nil, nil)
	assert.Equal(t, 0, g.XP)
	assert.Equal(t, 1, g.Level)
	assert.Equal(t, "Beginner", g.LevelTitle)
	require.NotEmpty(t, g.Achievements)
	for _, a := range g.Achievements {
		assert.False(t, a.Unlocked, a.ID)
		assert.Equal(t, 0, a.ProgressPercent, a.ID)
	}
}

func TestDeriveGamification(t *testing.T) {
	created := date("2024-01-01")
	categories := []entity.Category{"physical", "diet", "sleep", "mental", "family", "financial"}
	habits := make([]entity.Habit, 0, len(categories))
	for i, c := range categories {
		habits = append(habits, entity.Habit{ID: uuid.New(), Category: c, CreatedAt: created, Streak: i})
	}
	habits[0].Streak = 31
	completions := completedRange(habits[0].ID, "2024-01-01", "2024-01-31")
	// an un-toggled day and a duplicate don't add completions
	completions = append(completions,
		entity.HabitCompletion{HabitID: habits[1].ID, Date: date("2024-01-05"), Completed: false},
		entity.HabitCompletion{HabitID: habits[0].ID, Date: date("2024-01-31"), Completed: true},
		entity.HabitCompletion{HabitID: uuid.New(), Date: date("2024-01-31"), Completed: true},
	)

	g := progress.DeriveGamification(habits, completions)

	streakXP := 2*(31+1+2+3+4+5) + 125
	assert.Equal(t, 60+5*31+streakXP, g.XP)

	byID := make(map[string]progress.Achievement)
	for _, a := range g.Achievements {
		byID[a.ID] = a
		assert.GreaterOrEqual(t, a.ProgressPercent, 0)
		assert.LessOrEqual(t, a.ProgressPercent, 100)
		if a.Unlocked {
			assert.Equal(t, 100, a.ProgressPercent, a.ID)
		}
	}
	assert.True(t, byID["first-habit"].Unlocked)
	assert.True(t, byID["habits-5"].Unlocked)
	assert.True(t, byID["streak-30"].Unlocked)
	assert.True(t, byID["all-categories"].Unlocked)
	assert.False(t, byID["completions-50"].Unlocked)
	assert.Equal(t, 62, byID["completions-50"].ProgressPercent)
	assert.Equal(t, 31, byID["completions-50"].Current)
	assert.False(t, byID["streak-100"].Unlocked)
	assert.Equal(t, 31, byID["streak-100"].ProgressPercent)
}

func TestDeriveGamificationIsPure(t *testing.T) {
	habits := []entity.Habit{{ID: uuid.New(), Category: "sleep", Streak: 4, CreatedAt: date("2024-01-01")}}
	completions := completedRange(habits[0].ID, "2024-01-01", "2024-01-04")
	assert.Equal(t, progress.DeriveGamification(habits, completions), progress.DeriveGamification(habits, completions))
}
