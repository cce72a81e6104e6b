package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
}

type Category string

const (
	CategoryPhysical      Category = "physical"
	CategoryNutrition     Category = "nutrition"
	CategorySleep         Category = "sleep"
	CategoryMental        Category = "mental"
	CategoryRelationships Category = "relationships"
	CategoryFinancial     Category = "financial"

	// Anything that doesn't resolve to one of the six above
	CategoryOther Category = "other"
)

type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	Frequency2xWeek Frequency = "2x-week"
	Frequency3xWeek Frequency = "3x-week"
	Frequency4xWeek Frequency = "4x-week"
	Frequency5xWeek Frequency = "5x-week"
	Frequency6xWeek Frequency = "6x-week"
	FrequencyWeekly Frequency = "weekly"
)

type Habit struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"uid"`
	Title       string    `json:"title"`
	Description string    `json:"desc"`
	Category    Category  `json:"category"`
	Frequency   Frequency `json:"frequency"`
	IsAbsolute  bool      `json:"is_absolute"`
	Impact      int       `json:"impact"`
	Effort      int       `json:"effort"`
	Streak      int       `json:"streak"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HabitCompletion is the single authoritative record for a habit on a calendar day.
type HabitCompletion struct {
	HabitID   uuid.UUID `json:"habit_id"`
	Date      time.Time `json:"date"`
	Completed bool      `json:"completed"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

type WeeklyProgress struct {
	WeekStart time.Time `json:"week_start"`
	Target    int       `json:"target"`
	Completed int       `json:"completed"`
	Met       bool      `json:"met"`
}

type HabitStats struct {
	ID               uuid.UUID      `json:"habit_id"`
	TotalCompletions int            `json:"total_completions"`
	CurrentStreak    int            `json:"current_streak"`
	MaxStreak        int            `json:"max_streak"`
	LastCompletion   *time.Time     `json:"last_completion,omitempty"`
	Week             WeeklyProgress `json:"week"`
}
