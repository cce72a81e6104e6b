package progress

import (
	"github.com/google/uuid"
	"github.com/limbo/habitpulse/pkg/entity"
)

const (
	xpPerHabit      = 10
	xpPerCompletion = 5
	xpPerStreakDay  = 2
)

// Streak bonuses stack: a 30-day streak earns both the 7 and the 30 bonus.
var streakBonuses = []struct {
	MinStreak int
	Bonus     int
}{
	{7, 25},
	{30, 100},
	{100, 500},
}

type Level struct {
	Level int    `json:"level"`
	Title string `json:"title"`
	MinXP int    `json:"min_xp"`
	MaxXP int    `json:"max_xp"`
}

var levels = []Level{
	{1, "Beginner", 0, 100},
	{2, "Novice", 100, 250},
	{3, "Apprentice", 250, 500},
	{4, "Practitioner", 500, 1000},
	{5, "Adept", 1000, 2000},
	{6, "Expert", 2000, 3500},
	{7, "Master", 3500, 5500},
	{8, "Grandmaster", 5500, 8000},
	{9, "Legend", 8000, 12000},
	{10, "Immortal", 12000, 20000},
}

func Levels() []Level {
	return append([]Level(nil), levels...)
}

type facts struct {
	habits     int
	completed  int
	maxStreak  int
	categories int
}

type achievementDef struct {
	ID          string
	Title       string
	Description string
	Threshold   int
	value       func(facts) int
}

func habitCount(f facts) int     { return f.habits }
func completedCount(f facts) int { return f.completed }
func maxStreak(f facts) int      { return f.maxStreak }
func categoryCount(f facts) int  { return f.categories }

var achievements = []achievementDef{
	{"first-habit", "First Step", "Create your first habit", 1, habitCount},
	{"streak-3", "Warming Up", "Reach a 3-day streak", 3, maxStreak},
	{"habits-5", "Habit Builder", "Track 5 habits", 5, habitCount},
	{"streak-7", "Week Warrior", "Reach a 7-day streak", 7, maxStreak},
	{"completions-50", "Consistent", "Complete habits 50 times", 50, completedCount},
	{"streak-30", "Unstoppable", "Reach a 30-day streak", 30, maxStreak},
	{"all-categories", "Well Rounded", "Have a habit in every category", CoreCategoryCount, categoryCount},
	{"streak-100", "Centurion", "Reach a 100-day streak", 100, maxStreak},
	{"completions-1000", "Legendary Discipline", "Complete habits 1000 times", 1000, completedCount},
}

type Achievement struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Threshold       int    `json:"threshold"`
	Current         int    `json:"current"`
	Unlocked        bool   `json:"unlocked"`
	ProgressPercent int    `json:"progress_percent"`
}

type Gamification struct {
	XP                   int           `json:"xp"`
	Level                int           `json:"level"`
	LevelTitle           string        `json:"level_title"`
	LevelMinXP           int           `json:"level_min_xp"`
	LevelMaxXP           int           `json:"level_max_xp"`
	LevelProgressPercent int           `json:"level_progress_percent"`
	Achievements         []Achievement `json:"achievements"`
}

// StreakBonus is the flat bonus a single habit earns for its current streak.
func StreakBonus(streak int) int {
	bonus := 0
	for _, sb := range streakBonuses {
		if streak >= sb.MinStreak {
			bonus += sb.Bonus
		}
	}
	return bonus
}

// ComputeXP uses habit.Streak as stored; refresh streaks first for live values.
func ComputeXP(habits []entity.Habit, completedCompletions int) int {
	xp := xpPerHabit*len(habits) + xpPerCompletion*max(completedCompletions, 0)
	for _, h := range habits {
		streak := max(h.Streak, 0)
		xp += xpPerStreakDay*streak + StreakBonus(streak)
	}
	return xp
}

// ResolveLevel picks the level whose [MinXP, MaxXP) holds xp, clamping to the
// top level once the table runs out.
func ResolveLevel(xp int) (Level, int) {
	for _, l := range levels {
		if xp >= l.MinXP && xp < l.MaxXP {
			return l, clampPercent(percent(xp-l.MinXP, l.MaxXP-l.MinXP))
		}
	}
	if xp < levels[0].MinXP {
		return levels[0], 0
	}
	return levels[len(levels)-1], 100
}

func clampPercent(p int) int {
	return min(max(p, 0), 100)
}

// DeriveGamification re-evaluates XP, level and every achievement from scratch.
func DeriveGamification(habits []entity.Habit, completions []entity.HabitCompletion) Gamification {
	byID := make(map[uuid.UUID]entity.Habit, len(habits))
	f := facts{habits: len(habits)}
	covered := make(map[entity.Category]bool)
	for _, h := range habits {
		byID[h.ID] = h
		f.maxStreak = max(f.maxStreak, h.Streak)
		if c := NormalizeCategory(string(h.Category)); c != entity.CategoryOther {
			covered[c] = true
		}
	}
	f.categories = len(covered)
	f.completed = newTally(byID, NewIndex(completions)).total()

	xp := ComputeXP(habits, f.completed)
	level, progress := ResolveLevel(xp)
	g := Gamification{
		XP:                   xp,
		Level:                level.Level,
		LevelTitle:           level.Title,
		LevelMinXP:           level.MinXP,
		LevelMaxXP:           level.MaxXP,
		LevelProgressPercent: progress,
		Achievements:         make([]Achievement, 0, len(achievements)),
	}
	for _, def := range achievements {
		current := def.value(f)
		a := Achievement{
			ID:          def.ID,
			Title:       def.Title,
			Description: def.Description,
			Threshold:   def.Threshold,
			Current:     current,
			Unlocked:    current >= def.Threshold,
		}
		if a.Unlocked {
			a.ProgressPercent = 100
		} else {
			a.ProgressPercent = clampPercent(percent(current, def.Threshold))
		}
		g.Achievements = append(g.Achievements, a)
	}
	return g
}
