package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_service.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/habitpulse/internal/progress"
	"github.com/limbo/habitpulse/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type CreateHabitRequest struct {
	Title       string           `validate:"required,min=1,max=128"`
	Description string           `validate:"max=1024"`
	Category    string           `validate:"max=32"`
	Frequency   entity.Frequency `validate:"omitempty,habit_frequency"`
	IsAbsolute  bool
	Impact      int `validate:"omitempty,min=1,max=10"`
	Effort      int `validate:"omitempty,min=1,max=10"`
}

// UpdateHabitRequest changes only the fields that are set.
type UpdateHabitRequest struct {
	Title       *string           `validate:"omitempty,min=1,max=128"`
	Description *string           `validate:"omitempty,max=1024"`
	Category    *string           `validate:"omitempty,max=32"`
	Frequency   *entity.Frequency `validate:"omitempty,habit_frequency"`
	IsAbsolute  *bool
	Impact      *int `validate:"omitempty,min=1,max=10"`
	Effort      *int `validate:"omitempty,min=1,max=10"`
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type HabitsServiceI interface {
	CreateHabit(ctx context.Context, uid uuid.UUID, req *CreateHabitRequest) (*entity.Habit, error)
	// Returns habit if it belongs to userID
	GetHabit(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error)
	GetUserHabits(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Habit, error)
	UpdateHabit(ctx context.Context, habitID, userID uuid.UUID, req *UpdateHabitRequest) (*entity.Habit, error)
	DeleteHabit(ctx context.Context, habitID, userID uuid.UUID) error
}

type CompletionsServiceI interface {
	// Flips the day of habit and returns its new state
	ToggleCompletion(ctx context.Context, habitID, userID uuid.UUID, date time.Time) (bool, error)
	SetCompletion(ctx context.Context, habitID, userID uuid.UUID, date time.Time, completed bool) error
	GetHabitCompletions(ctx context.Context, habitID, userID uuid.UUID, from, to time.Time) ([]entity.HabitCompletion, error)
}

// Zero today means the current day of the service calendar.
type ProgressServiceI interface {
	GetHabitStats(ctx context.Context, habitID, userID uuid.UUID, today time.Time) (*entity.HabitStats, error)
	GetStats(ctx context.Context, uid uuid.UUID, tf progress.Timeframe, today time.Time) (*progress.Stats, error)
	GetGamification(ctx context.Context, uid uuid.UUID, today time.Time) (*progress.Gamification, error)
	// Recomputes and stores streaks of every habit of uid
	RefreshStreaks(ctx context.Context, uid uuid.UUID, today time.Time) ([]entity.Habit, error)
}
