package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/habitpulse/internal/error_values"
	"github.com/limbo/habitpulse/pkg/entity"
)

const habitColumns = `id, user_id, title, description, category, frequency, is_absolute, impact, effort, streak, created_at, updated_at`

type HabitsRepository struct {
	conn PgConnection
}

func NewHabitsRepoWithConn(conn PgConnection) *HabitsRepository {
	return &HabitsRepository{
		conn: conn,
	}
}

func (hr *HabitsRepository) Create(ctx context.Context, habit *entity.Habit) (uuid.UUID, error) {
	var id uuid.UUID
	row := hr.conn.QueryRow(ctx, `INSERT INTO habits (user_id, title, description, category, frequency, is_absolute, impact, effort)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id;`,
		habit.UserID,
		habit.Title,
		habit.Description,
		habit.Category,
		habit.Frequency,
		habit.IsAbsolute,
		habit.Impact,
		habit.Effort,
	)
	if err := row.Scan(&id); err != nil {
		switch pgErrCode(err) {
		case pgUniqueViolation:
			return uuid.UUID{}, errorvalues.ErrUserHasHabit
		case pgForeignKeyViolation:
			return uuid.UUID{}, errorvalues.ErrOwnerNotFound
		}
		return uuid.UUID{}, errors.New("creating habit db error: " + err.Error())
	}
	return id, nil
}

func (hr *HabitsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error) {
	row := hr.conn.QueryRow(ctx, `SELECT `+habitColumns+` FROM habits WHERE id = $1;`, id)
	habit, err := scanHabit(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrHabitNotFound
		}
		return nil, errors.New("getting habit by id error: " + err.Error())
	}
	return habit, nil
}

func (hr *HabitsRepository) GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Habit, error) {
	rows, err := hr.conn.Query(ctx, `SELECT `+habitColumns+` FROM habits WHERE user_id = $1 ORDER BY created_at LIMIT $2 OFFSET $3;`,
		uid, limit, offset)
	if err != nil {
		return nil, errors.New("getting habits by uid error: " + err.Error())
	}
	defer rows.Close()
	habits := make([]*entity.Habit, 0)
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, errors.New("unmarshalling habit error: " + err.Error())
		}
		habits = append(habits, h)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return habits, nil
}

func (hr *HabitsRepository) ListAllByUserID(ctx context.Context, uid uuid.UUID) ([]entity.Habit, error) {
	rows, err := hr.conn.Query(ctx, `SELECT `+habitColumns+` FROM habits WHERE user_id = $1 ORDER BY created_at;`, uid)
	if err != nil {
		return nil, errors.New("listing habits by uid error: " + err.Error())
	}
	defer rows.Close()
	habits := make([]entity.Habit, 0)
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, errors.New("unmarshalling habit error: " + err.Error())
		}
		habits = append(habits, *h)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return habits, nil
}

func (hr *HabitsRepository) Update(ctx context.Context, habit *entity.Habit) error {
	ct, err := hr.conn.Exec(ctx, `UPDATE habits SET title = $1, description = $2, category = $3, frequency = $4,
		is_absolute = $5, impact = $6, effort = $7, updated_at = NOW() WHERE id = $8;`,
		habit.Title,
		habit.Description,
		habit.Category,
		habit.Frequency,
		habit.IsAbsolute,
		habit.Impact,
		habit.Effort,
		habit.ID,
	)
	if err != nil {
		if pgErrCode(err) == pgUniqueViolation {
			return errorvalues.ErrUserHasHabit
		}
		return errors.New("error updating habit: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrHabitNotFound
	}
	return nil
}

func (hr *HabitsRepository) UpdateStreaks(ctx context.Context, habits []entity.Habit) error {
	if len(habits) == 0 {
		return nil
	}
	tx, err := hr.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning streaks transaction error: " + err.Error())
	}
	defer tx.Rollback(ctx)
	for _, h := range habits {
		if _, err = tx.Exec(ctx, `UPDATE habits SET streak = $1 WHERE id = $2;`, h.Streak, h.ID); err != nil {
			return errors.New("updating streak error: " + err.Error())
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing streaks error: " + err.Error())
	}
	return nil
}

func (hr *HabitsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := hr.conn.Exec(ctx, `DELETE FROM habits WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting habit: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrHabitNotFound
	}
	return nil
}

func scanHabit(row rowScanner) (*entity.Habit, error) {
	var h entity.Habit
	err := row.Scan(&h.ID, &h.UserID, &h.Title, &h.Description, &h.Category, &h.Frequency,
		&h.IsAbsolute, &h.Impact, &h.Effort, &h.Streak, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &h, nil
}
