package repository

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repository.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/habitpulse/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database, returns generated id
	Create(ctx context.Context, user *entity.User) (uuid.UUID, error)
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Updates user's info
	Update(ctx context.Context, user *entity.User) error
	// Deletes user, his habits and completions go with him
	Delete(ctx context.Context, uid uuid.UUID) error
}

type HabitsRepositoryI interface {
	// Creates new habit. Streak, ID and timestamps are filled by database
	Create(ctx context.Context, habit *entity.Habit) (uuid.UUID, error)
	// Searches habit with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error)
	// Lists habits owned by user with uid. Requires pagination params provided
	GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Habit, error)
	// Lists every habit of the user, oldest first
	ListAllByUserID(ctx context.Context, uid uuid.UUID) ([]entity.Habit, error)
	// Updates editable fields of habit by ID (ID in habit is necessary)
	Update(ctx context.Context, habit *entity.Habit) error
	// Stores recomputed streaks of given habits in one transaction
	UpdateStreaks(ctx context.Context, habits []entity.Habit) error
	// Deletes habit with id, completions are removed by cascade
	Delete(ctx context.Context, id uuid.UUID) error
}

type CompletionsRepositoryI interface {
	// Flips completion of habit on date (absent record becomes completed). Returns new state
	Toggle(ctx context.Context, habitID uuid.UUID, date time.Time) (bool, error)
	// Upserts explicit completion state
	Set(ctx context.Context, habitID uuid.UUID, date time.Time, completed bool) error
	// Returns the record for habit on date
	Get(ctx context.Context, habitID uuid.UUID, date time.Time) (*entity.HabitCompletion, error)
	// Provides records of habitID for a period, both ends included
	GetByHabitAndDateRange(ctx context.Context, habitID uuid.UUID, from, to time.Time) ([]entity.HabitCompletion, error)
	// Provides every record of every habit owned by uid
	ListByUserID(ctx context.Context, uid uuid.UUID) ([]entity.HabitCompletion, error)
	// Returns date of last completed day of habitID, nil if there is none
	GetLastCompletedDate(ctx context.Context, habitID uuid.UUID) (*time.Time, error)
	// Returns count of completed days for habitID
	CountCompletedByHabitID(ctx context.Context, habitID uuid.UUID) (int, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
	SSLMode  string
}

func (pgcfg *PGCfg) ConnString() string {
	connStr := fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
	if pgcfg.SSLMode != "" {
		connStr += "?sslmode=" + pgcfg.SSLMode
	}
	return connStr
}
