package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/habitpulse/internal/error_values"
	"github.com/limbo/habitpulse/pkg/entity"
)

type CompletionsRepository struct {
	conn PgConnection
}

func NewCompletionsRepoWithConn(conn PgConnection) *CompletionsRepository {
	return &CompletionsRepository{
		conn: conn,
	}
}

// Toggle is a single upsert so concurrent toggles of one day never produce two rows.
func (cr *CompletionsRepository) Toggle(ctx context.Context, habitID uuid.UUID, date time.Time) (bool, error) {
	var completed bool
	row := cr.conn.QueryRow(
		ctx,
		`INSERT INTO habit_completions (habit_id, completion_date, completed) VALUES ($1, $2, TRUE)
		ON CONFLICT (habit_id, completion_date) DO UPDATE SET completed = NOT habit_completions.completed, updated_at = NOW()
		RETURNING completed;`,
		habitID,
		date,
	)
	if err := row.Scan(&completed); err != nil {
		if pgErrCode(err) == pgForeignKeyViolation {
			return false, errorvalues.ErrHabitNotFound
		}
		return false, errors.New("toggling completion error: " + err.Error())
	}
	return completed, nil
}

func (cr *CompletionsRepository) Set(ctx context.Context, habitID uuid.UUID, date time.Time, completed bool) error {
	_, err := cr.conn.Exec(
		ctx,
		`INSERT INTO habit_completions (habit_id, completion_date, completed) VALUES ($1, $2, $3)
		ON CONFLICT (habit_id, completion_date) DO UPDATE SET completed = EXCLUDED.completed, updated_at = NOW();`,
		habitID,
		date,
		completed,
	)
	if err != nil {
		if pgErrCode(err) == pgForeignKeyViolation {
			return errorvalues.ErrHabitNotFound
		}
		return errors.New("setting completion error: " + err.Error())
	}
	return nil
}

func (cr *CompletionsRepository) Get(ctx context.Context, habitID uuid.UUID, date time.Time) (*entity.HabitCompletion, error) {
	row := cr.conn.QueryRow(
		ctx,
		`SELECT habit_id, completion_date, completed, updated_at FROM habit_completions WHERE habit_id = $1 AND completion_date = $2;`,
		habitID,
		date,
	)
	var c entity.HabitCompletion
	if err := row.Scan(&c.HabitID, &c.Date, &c.Completed, &c.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrCompletionNotFound
		}
		return nil, errors.New("getting completion error: " + err.Error())
	}
	return &c, nil
}

func (cr *CompletionsRepository) GetByHabitAndDateRange(ctx context.Context, habitID uuid.UUID, from, to time.Time) ([]entity.HabitCompletion, error) {
	rows, err := cr.conn.Query(
		ctx,
		`SELECT habit_id, completion_date, completed, updated_at FROM habit_completions
		WHERE habit_id = $1 AND completion_date >= $2 AND completion_date <= $3 ORDER BY completion_date;`,
		habitID,
		from,
		to,
	)
	if err != nil {
		return nil, errors.New("getting completions for period error: " + err.Error())
	}
	return collectCompletions(rows)
}

func (cr *CompletionsRepository) ListByUserID(ctx context.Context, uid uuid.UUID) ([]entity.HabitCompletion, error) {
	rows, err := cr.conn.Query(
		ctx,
		`SELECT c.habit_id, c.completion_date, c.completed, c.updated_at FROM habit_completions c
		JOIN habits h ON h.id = c.habit_id WHERE h.user_id = $1 ORDER BY c.completion_date;`,
		uid,
	)
	if err != nil {
		return nil, errors.New("listing user completions error: " + err.Error())
	}
	return collectCompletions(rows)
}

func (cr *CompletionsRepository) GetLastCompletedDate(ctx context.Context, habitID uuid.UUID) (*time.Time, error) {
	row := cr.conn.QueryRow(
		ctx,
		`SELECT completion_date FROM habit_completions WHERE habit_id = $1 AND completed ORDER BY completion_date DESC LIMIT 1;`,
		habitID,
	)
	var date time.Time
	if err := row.Scan(&date); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting last completion date error: " + err.Error())
	}
	return &date, nil
}

func (cr *CompletionsRepository) CountCompletedByHabitID(ctx context.Context, habitID uuid.UUID) (int, error) {
	row := cr.conn.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM habit_completions WHERE habit_id = $1 AND completed;`,
		habitID,
	)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("error counting completions: " + err.Error())
	}
	return count, nil
}

func collectCompletions(rows pgx.Rows) ([]entity.HabitCompletion, error) {
	defer rows.Close()
	result := make([]entity.HabitCompletion, 0)
	for rows.Next() {
		var c entity.HabitCompletion
		if err := rows.Scan(&c.HabitID, &c.Date, &c.Completed, &c.UpdatedAt); err != nil {
			return nil, errors.New("completion row parsing error: " + err.Error())
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected completion rows error: " + err.Error())
	}
	return result, nil
}
