package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/habitpulse/internal/error_values"
	"github.com/limbo/habitpulse/internal/repository"
	"github.com/limbo/habitpulse/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

var completionColumns = []string{"habit_id", "completion_date", "completed", "updated_at"}

func TestToggleCompletion(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewCompletionsRepoWithConn(mock)
	hid := uuid.New()
	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`INSERT INTO habit_completions (habit_id, completion_date, completed) VALUES ($1, $2, TRUE)
		ON CONFLICT (habit_id, completion_date) DO UPDATE SET completed = NOT habit_completions.completed, updated_at = NOW()
		RETURNING completed;`)
	ctx := context.Background()
	t.Run("first toggle completes", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(hid, date).
			WillReturnRows(pgxmock.NewRows([]string{"completed"}).AddRow(true))
		completed, err := repo.Toggle(ctx, hid, date)
		assert.NoError(t, err)
		assert.True(t, completed)
	})
	t.Run("second toggle clears", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(hid, date).
			WillReturnRows(pgxmock.NewRows([]string{"completed"}).AddRow(false))
		completed, err := repo.Toggle(ctx, hid, date)
		assert.NoError(t, err)
		assert.False(t, completed)
	})
	t.Run("unknown habit", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(hid, date).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		_, err := repo.Toggle(ctx, hid, date)
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(hid, date).
			WillReturnError(errors.New("db error"))
		_, err := repo.Toggle(ctx, hid, date)
		assert.EqualError(t, err, "toggling completion error: db error")
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetCompletion(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewCompletionsRepoWithConn(mock)
	hid := uuid.New()
	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`INSERT INTO habit_completions (habit_id, completion_date, completed) VALUES ($1, $2, $3)
		ON CONFLICT (habit_id, completion_date) DO UPDATE SET completed = EXCLUDED.completed, updated_at = NOW();`)
	ctx := context.Background()
	testCases := []struct {
		Desc         string
		Completed    bool
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:      "mark completed",
			Completed: true,
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(hid, date, true).WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			Desc:      "mark missed",
			Completed: false,
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(hid, date, false).WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			Desc:      "unknown habit",
			Completed: true,
			Error:     errorvalues.ErrHabitNotFound,
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(hid, date, true).WillReturnError(&pgconn.PgError{Code: "23503"})
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := repo.Set(ctx, hid, date, tc.Completed)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
			} else {
				assert.NoError(t, err)
			}
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCompletion(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewCompletionsRepoWithConn(mock)
	c := entity.HabitCompletion{
		HabitID:   uuid.New(),
		Date:      time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Completed: true,
		UpdatedAt: time.Date(2024, 3, 5, 8, 30, 0, 0, time.UTC),
	}
	query := regexp.QuoteMeta(`SELECT habit_id, completion_date, completed, updated_at FROM habit_completions WHERE habit_id = $1 AND completion_date = $2;`)
	ctx := context.Background()
	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(c.HabitID, c.Date).
			WillReturnRows(pgxmock.NewRows(completionColumns).AddRow(c.HabitID, c.Date, c.Completed, c.UpdatedAt))
		result, err := repo.Get(ctx, c.HabitID, c.Date)
		assert.NoError(t, err)
		assert.Equal(t, c, *result)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(c.HabitID, c.Date).WillReturnError(pgx.ErrNoRows)
		_, err := repo.Get(ctx, c.HabitID, c.Date)
		assert.ErrorIs(t, err, errorvalues.ErrCompletionNotFound)
	})
}

func TestGetCompletionsForPeriod(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewCompletionsRepoWithConn(mock)
	hid := uuid.New()
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`SELECT habit_id, completion_date, completed, updated_at FROM habit_completions
		WHERE habit_id = $1 AND completion_date >= $2 AND completion_date <= $3 ORDER BY completion_date;`)
	ctx := context.Background()
	expected := []entity.HabitCompletion{
		{HabitID: hid, Date: from, Completed: true, UpdatedAt: from},
		{HabitID: hid, Date: from.AddDate(0, 0, 2), Completed: false, UpdatedAt: from.AddDate(0, 0, 2)},
	}
	t.Run("success", func(t *testing.T) {
		rows := pgxmock.NewRows(completionColumns)
		for _, c := range expected {
			rows.AddRow(c.HabitID, c.Date, c.Completed, c.UpdatedAt)
		}
		mock.ExpectQuery(query).WithArgs(hid, from, to).WillReturnRows(rows)
		result, err := repo.GetByHabitAndDateRange(ctx, hid, from, to)
		assert.NoError(t, err)
		assert.Equal(t, expected, result)
	})
	t.Run("no records", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(hid, from, to).WillReturnRows(pgxmock.NewRows(completionColumns))
		result, err := repo.GetByHabitAndDateRange(ctx, hid, from, to)
		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(hid, from, to).WillReturnError(errors.New("db error"))
		_, err := repo.GetByHabitAndDateRange(ctx, hid, from, to)
		assert.EqualError(t, err, "getting completions for period error: db error")
	})
}

func TestListCompletionsByUserID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewCompletionsRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT c.habit_id, c.completion_date, c.completed, c.updated_at FROM habit_completions c
		JOIN habits h ON h.id = c.habit_id WHERE h.user_id = $1 ORDER BY c.completion_date;`)
	ctx := context.Background()
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	t.Run("success", func(t *testing.T) {
		hid := uuid.New()
		mock.ExpectQuery(query).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows(completionColumns).AddRow(hid, day, true, day))
		result, err := repo.ListByUserID(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, []entity.HabitCompletion{{HabitID: hid, Date: day, Completed: true, UpdatedAt: day}}, result)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID).WillReturnError(errors.New("db error"))
		_, err := repo.ListByUserID(ctx, userID)
		assert.EqualError(t, err, "listing user completions error: db error")
	})
}

func TestGetLastCompletedDate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewCompletionsRepoWithConn(mock)
	hid := uuid.New()
	query := regexp.QuoteMeta(`SELECT completion_date FROM habit_completions WHERE habit_id = $1 AND completed ORDER BY completion_date DESC LIMIT 1;`)
	ctx := context.Background()
	t.Run("has completions", func(t *testing.T) {
		day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
		mock.ExpectQuery(query).WithArgs(hid).WillReturnRows(pgxmock.NewRows([]string{"completion_date"}).AddRow(day))
		result, err := repo.GetLastCompletedDate(ctx, hid)
		assert.NoError(t, err)
		if assert.NotNil(t, result) {
			assert.Equal(t, day, *result)
		}
	})
	t.Run("never completed", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(hid).WillReturnError(pgx.ErrNoRows)
		result, err := repo.GetLastCompletedDate(ctx, hid)
		assert.NoError(t, err)
		assert.Nil(t, result)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(hid).WillReturnError(errors.New("db error"))
		_, err := repo.GetLastCompletedDate(ctx, hid)
		assert.EqualError(t, err, "getting last completion date error: db error")
	})
}

func TestCountCompleted(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewCompletionsRepoWithConn(mock)
	hid := uuid.New()
	query := regexp.QuoteMeta(`SELECT COUNT(*) FROM habit_completions WHERE habit_id = $1 AND completed;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(hid).WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(12))
		count, err := repo.CountCompletedByHabitID(ctx, hid)
		assert.NoError(t, err)
		assert.Equal(t, 12, count)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(hid).WillReturnError(errors.New("db error"))
		_, err := repo.CountCompletedByHabitID(ctx, hid)
		assert.EqualError(t, err, "error counting completions: db error")
	})
}
