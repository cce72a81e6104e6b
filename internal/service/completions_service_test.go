package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/habitpulse/internal/error_values"
	"github.com/limbo/habitpulse/internal/progress"
	"github.com/limbo/habitpulse/internal/repository/mocks"
	"github.com/limbo/habitpulse/internal/service"
	"github.com/limbo/habitpulse/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedCalendar() service.Calendar {
	return service.Calendar{
		Now:       func() time.Time { return time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC) },
		Location:  time.UTC,
		WeekStart: time.Monday,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestToggleCompletion(t *testing.T) {
	ctrl := gomock.NewController(t)
	habitsRepo := mocks.NewMockHabitsRepositoryI(ctrl)
	completionsRepo := mocks.NewMockCompletionsRepositoryI(ctrl)
	serv := service.NewCompletionsService(habitsRepo, completionsRepo, fixedCalendar())
	habitID := uuid.New()
	userID := uuid.New()
	habit := entity.Habit{
		ID:        habitID,
		UserID:    userID,
		Title:     "test_habit",
		Frequency: entity.FrequencyDaily,
		CreatedAt: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	freshHabit := func() *entity.Habit {
		h := habit
		return &h
	}
	testCases := []struct {
		Desc         string
		Error        error
		Date         time.Time
		Completed    bool
		MockPrepFunc func()
	}{
		{
			Desc:      "success",
			Date:      time.Date(2024, 3, 10, 7, 0, 0, 0, time.UTC),
			Completed: true,
			MockPrepFunc: func() {
				habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(freshHabit(), nil)
				completionsRepo.EXPECT().Toggle(gomock.Any(), habitID, day(2024, 3, 10)).Return(true, nil)
				completionsRepo.EXPECT().GetByHabitAndDateRange(gomock.Any(), habitID, day(2024, 3, 1), day(2024, 3, 10)).
					Return([]entity.HabitCompletion{
						{HabitID: habitID, Date: day(2024, 3, 9), Completed: true},
						{HabitID: habitID, Date: day(2024, 3, 10), Completed: true},
					}, nil)
				habitsRepo.EXPECT().UpdateStreaks(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, habits []entity.Habit) error {
					assert.Len(t, habits, 1)
					assert.Equal(t, 2, habits[0].Streak)
					return nil
				})
			},
		},
		{
			Desc:      "zero date is today",
			Completed: false,
			MockPrepFunc: func() {
				habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(freshHabit(), nil)
				completionsRepo.EXPECT().Toggle(gomock.Any(), habitID, day(2024, 3, 10)).Return(false, nil)
				completionsRepo.EXPECT().GetByHabitAndDateRange(gomock.Any(), habitID, day(2024, 3, 1), day(2024, 3, 10)).
					Return(nil, nil)
			},
		},
		{
			Desc:  "error date in the future",
			Date:  day(2024, 3, 11),
			Error: errorvalues.ErrCompletionDateNotAllowed,
			MockPrepFunc: func() {
				habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(freshHabit(), nil)
			},
		},
		{
			Desc:  "error date before creation",
			Date:  day(2024, 2, 29),
			Error: errorvalues.ErrCompletionBeforeCreation,
			MockPrepFunc: func() {
				habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(freshHabit(), nil)
			},
		},
		{
			Desc:  "error wrong owner",
			Date:  day(2024, 3, 10),
			Error: errorvalues.ErrWrongOwner,
			MockPrepFunc: func() {
				other := freshHabit()
				other.UserID = uuid.New()
				habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(other, nil)
			},
		},
		{
			Desc:  "error habit not found",
			Date:  day(2024, 3, 10),
			Error: errorvalues.ErrHabitNotFound,
			MockPrepFunc: func() {
				habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(nil, errorvalues.ErrHabitNotFound)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			completed, err := serv.ToggleCompletion(ctx, habitID, userID, tc.Date)
			assert.ErrorIs(t, err, tc.Error)
			assert.Equal(t, tc.Completed, completed)
		})
	}
	t.Run("stored habit keeps its streak", func(t *testing.T) {
		stored := freshHabit()
		stored.Streak = 1
		habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(stored, nil)
		completionsRepo.EXPECT().Toggle(gomock.Any(), habitID, day(2024, 3, 10)).Return(true, nil)
		completionsRepo.EXPECT().GetByHabitAndDateRange(gomock.Any(), habitID, day(2024, 3, 1), day(2024, 3, 10)).
			Return([]entity.HabitCompletion{
				{HabitID: habitID, Date: day(2024, 3, 9), Completed: true},
				{HabitID: habitID, Date: day(2024, 3, 10), Completed: true},
			}, nil)
		habitsRepo.EXPECT().UpdateStreaks(gomock.Any(), []entity.Habit{func() entity.Habit {
			h := habit
			h.Streak = 2
			return h
		}()}).Return(nil)
		completed, err := serv.ToggleCompletion(ctx, habitID, userID, day(2024, 3, 10))
		require.NoError(t, err)
		assert.True(t, completed)
		assert.Equal(t, 1, stored.Streak)
	})
	t.Run("repository error", func(t *testing.T) {
		habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(freshHabit(), nil)
		completionsRepo.EXPECT().Toggle(gomock.Any(), habitID, day(2024, 3, 5)).Return(false, errors.New("db error"))
		_, err := serv.ToggleCompletion(ctx, habitID, userID, day(2024, 3, 5))
		assert.EqualError(t, err, "repository error: db error")
	})
}

func TestSetCompletion(t *testing.T) {
	ctrl := gomock.NewController(t)
	habitsRepo := mocks.NewMockHabitsRepositoryI(ctrl)
	completionsRepo := mocks.NewMockCompletionsRepositoryI(ctrl)
	serv := service.NewCompletionsService(habitsRepo, completionsRepo, fixedCalendar())
	habitID := uuid.New()
	userID := uuid.New()
	habit := entity.Habit{
		ID:        habitID,
		UserID:    userID,
		Frequency: entity.FrequencyDaily,
		Streak:    1,
		CreatedAt: day(2024, 3, 1),
	}
	freshHabit := func() *entity.Habit {
		h := habit
		return &h
	}
	ctx := context.Background()
	t.Run("unchanged streak is not stored", func(t *testing.T) {
		habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(freshHabit(), nil)
		completionsRepo.EXPECT().Set(gomock.Any(), habitID, day(2024, 3, 9), true).Return(nil)
		completionsRepo.EXPECT().GetByHabitAndDateRange(gomock.Any(), habitID, day(2024, 3, 1), day(2024, 3, 10)).
			Return([]entity.HabitCompletion{{HabitID: habitID, Date: day(2024, 3, 9), Completed: true}}, nil)
		assert.NoError(t, serv.SetCompletion(ctx, habitID, userID, day(2024, 3, 9), true))
	})
	t.Run("streak sync failure is not returned", func(t *testing.T) {
		habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(freshHabit(), nil)
		completionsRepo.EXPECT().Set(gomock.Any(), habitID, day(2024, 3, 9), false).Return(nil)
		completionsRepo.EXPECT().GetByHabitAndDateRange(gomock.Any(), habitID, day(2024, 3, 1), day(2024, 3, 10)).
			Return(nil, errors.New("db error"))
		assert.NoError(t, serv.SetCompletion(ctx, habitID, userID, day(2024, 3, 9), false))
	})
	t.Run("future date", func(t *testing.T) {
		habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(freshHabit(), nil)
		err := serv.SetCompletion(ctx, habitID, userID, day(2024, 4, 1), true)
		assert.ErrorIs(t, err, errorvalues.ErrCompletionDateNotAllowed)
	})
}

func TestGetHabitCompletions(t *testing.T) {
	ctrl := gomock.NewController(t)
	habitsRepo := mocks.NewMockHabitsRepositoryI(ctrl)
	completionsRepo := mocks.NewMockCompletionsRepositoryI(ctrl)
	serv := service.NewCompletionsService(habitsRepo, completionsRepo, fixedCalendar())
	habitID := uuid.New()
	userID := uuid.New()
	habit := &entity.Habit{ID: habitID, UserID: userID, CreatedAt: day(2024, 3, 1)}
	ctx := context.Background()
	expected := []entity.HabitCompletion{{HabitID: habitID, Date: day(2024, 3, 2), Completed: true}}
	t.Run("reversed range is swapped", func(t *testing.T) {
		habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(habit, nil)
		completionsRepo.EXPECT().GetByHabitAndDateRange(gomock.Any(), habitID, day(2024, 3, 1), day(2024, 3, 7)).Return(expected, nil)
		result, err := serv.GetHabitCompletions(ctx, habitID, userID, day(2024, 3, 7), time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC))
		assert.NoError(t, err)
		assert.Equal(t, expected, result)
	})
	t.Run("default range is the last 30 days", func(t *testing.T) {
		habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(habit, nil)
		completionsRepo.EXPECT().GetByHabitAndDateRange(gomock.Any(), habitID, day(2024, 2, 10), day(2024, 3, 10)).Return(expected, nil)
		result, err := serv.GetHabitCompletions(ctx, habitID, userID, time.Time{}, time.Time{})
		assert.NoError(t, err)
		assert.Equal(t, expected, result)
	})
	t.Run("wrong owner", func(t *testing.T) {
		habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(habit, nil)
		_, err := serv.GetHabitCompletions(ctx, habitID, uuid.New(), day(2024, 3, 1), day(2024, 3, 7))
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
}

// completionsStore keeps completion records in memory.
type completionsStore struct {
	mu      sync.Mutex
	records map[uuid.UUID]map[time.Time]bool
}

func newCompletionsStore() *completionsStore {
	return &completionsStore{records: make(map[uuid.UUID]map[time.Time]bool)}
}

func (cs *completionsStore) Toggle(ctx context.Context, habitID uuid.UUID, date time.Time) (bool, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if cs.records[habitID] == nil {
		cs.records[habitID] = make(map[time.Time]bool)
	}
	completed, ok := cs.records[habitID][date]
	cs.records[habitID][date] = !ok || !completed
	return cs.records[habitID][date], nil
}

func (cs *completionsStore) Set(ctx context.Context, habitID uuid.UUID, date time.Time, completed bool) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if cs.records[habitID] == nil {
		cs.records[habitID] = make(map[time.Time]bool)
	}
	cs.records[habitID][date] = completed
	return nil
}

func (cs *completionsStore) Get(ctx context.Context, habitID uuid.UUID, date time.Time) (*entity.HabitCompletion, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	completed, ok := cs.records[habitID][date]
	if !ok {
		return nil, errorvalues.ErrCompletionNotFound
	}
	return &entity.HabitCompletion{HabitID: habitID, Date: date, Completed: completed}, nil
}

func (cs *completionsStore) GetByHabitAndDateRange(ctx context.Context, habitID uuid.UUID, from, to time.Time) ([]entity.HabitCompletion, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	result := make([]entity.HabitCompletion, 0)
	for date, completed := range cs.records[habitID] {
		if !date.Before(from) && !date.After(to) {
			result = append(result, entity.HabitCompletion{HabitID: habitID, Date: date, Completed: completed})
		}
	}
	return result, nil
}

func (cs *completionsStore) ListByUserID(ctx context.Context, uid uuid.UUID) ([]entity.HabitCompletion, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	result := make([]entity.HabitCompletion, 0)
	for habitID, days := range cs.records {
		for date, completed := range days {
			result = append(result, entity.HabitCompletion{HabitID: habitID, Date: date, Completed: completed})
		}
	}
	return result, nil
}

func (cs *completionsStore) GetLastCompletedDate(ctx context.Context, habitID uuid.UUID) (*time.Time, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	var last *time.Time
	for date, completed := range cs.records[habitID] {
		if completed && (last == nil || date.After(*last)) {
			d := date
			last = &d
		}
	}
	return last, nil
}

func (cs *completionsStore) CountCompletedByHabitID(ctx context.Context, habitID uuid.UUID) (int, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	count := 0
	for _, completed := range cs.records[habitID] {
		if completed {
			count++
		}
	}
	return count, nil
}

func TestToggleRoundTrip(t *testing.T) {
	store := newCompletionsStore()
	repo := &habitRepoMock{state: stateSuccess}
	created := testHabit.CreatedAt.UTC()
	cal := fixedCalendar()
	cal.Now = func() time.Time { return created.AddDate(0, 0, 3) }
	serv := service.NewCompletionsService(repo, store, cal)
	ctx := context.Background()
	today := progress.Day(created.AddDate(0, 0, 3))
	days := []time.Time{progress.AddDays(today, -2), progress.AddDays(today, -1), today}
	before := make(map[time.Time]bool)
	for i, d := range days {
		if i%2 == 0 {
			require.NoError(t, serv.SetCompletion(ctx, habitID, userID, d, true))
		}
		before[d] = progress.IsCompleted(habitID, d, mustList(t, store))
	}
	for _, d := range days {
		first, err := serv.ToggleCompletion(ctx, habitID, userID, d)
		require.NoError(t, err)
		assert.Equal(t, !before[d], first)
		second, err := serv.ToggleCompletion(ctx, habitID, userID, d)
		require.NoError(t, err)
		assert.Equal(t, before[d], second)
		assert.Equal(t, before[d], progress.IsCompleted(habitID, d, mustList(t, store)))
	}
}

func mustList(t *testing.T, store *completionsStore) []entity.HabitCompletion {
	t.Helper()
	list, err := store.ListByUserID(context.Background(), userID)
	require.NoError(t, err)
	return list
}
