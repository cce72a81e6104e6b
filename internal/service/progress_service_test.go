package service_test

import (
	"context"
	"errors"
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

func completedDays(habitID uuid.UUID, days ...time.Time) []entity.HabitCompletion {
	result := make([]entity.HabitCompletion, 0, len(days))
	for _, d := range days {
		result = append(result, entity.HabitCompletion{HabitID: habitID, Date: d, Completed: true, UpdatedAt: d})
	}
	return result
}

func TestGetHabitStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	habitsRepo := mocks.NewMockHabitsRepositoryI(ctrl)
	completionsRepo := mocks.NewMockCompletionsRepositoryI(ctrl)
	serv := service.NewProgressService(habitsRepo, completionsRepo, fixedCalendar())
	habitID := uuid.New()
	userID := uuid.New()
	habit := &entity.Habit{
		ID:        habitID,
		UserID:    userID,
		Frequency: entity.Frequency3xWeek,
		Streak:    3,
		CreatedAt: day(2024, 3, 1),
	}
	ctx := context.Background()
	// 2024-03-10 is a Sunday, the week started on Monday 03-04
	completions := completedDays(habitID, day(2024, 3, 2), day(2024, 3, 3), day(2024, 3, 4),
		day(2024, 3, 5), day(2024, 3, 8), day(2024, 3, 9), day(2024, 3, 10))
	last := day(2024, 3, 10)
	t.Run("success", func(t *testing.T) {
		habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(habit, nil)
		completionsRepo.EXPECT().GetByHabitAndDateRange(gomock.Any(), habitID, day(2024, 3, 1), day(2024, 3, 10)).Return(completions, nil)
		completionsRepo.EXPECT().CountCompletedByHabitID(gomock.Any(), habitID).Return(7, nil)
		completionsRepo.EXPECT().GetLastCompletedDate(gomock.Any(), habitID).Return(&last, nil)
		stats, err := serv.GetHabitStats(ctx, habitID, userID, time.Time{})
		require.NoError(t, err)
		assert.Equal(t, habitID, stats.ID)
		assert.Equal(t, 7, stats.TotalCompletions)
		assert.Equal(t, 3, stats.CurrentStreak)
		assert.Equal(t, 4, stats.MaxStreak)
		assert.Equal(t, &last, stats.LastCompletion)
		assert.Equal(t, entity.WeeklyProgress{WeekStart: day(2024, 3, 4), Target: 3, Completed: 5, Met: true}, stats.Week)
	})
	t.Run("explicit today stores changed streak", func(t *testing.T) {
		habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(habit, nil)
		completionsRepo.EXPECT().GetByHabitAndDateRange(gomock.Any(), habitID, day(2024, 3, 1), day(2024, 3, 5)).Return(completions[:4], nil)
		completionsRepo.EXPECT().CountCompletedByHabitID(gomock.Any(), habitID).Return(7, nil)
		completionsRepo.EXPECT().GetLastCompletedDate(gomock.Any(), habitID).Return(&last, nil)
		habitsRepo.EXPECT().UpdateStreaks(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, habits []entity.Habit) error {
			require.Len(t, habits, 1)
			assert.Equal(t, 4, habits[0].Streak)
			return nil
		})
		stats, err := serv.GetHabitStats(ctx, habitID, userID, time.Date(2024, 3, 5, 22, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, 4, stats.CurrentStreak)
	})
	t.Run("wrong owner", func(t *testing.T) {
		habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(habit, nil)
		_, err := serv.GetHabitStats(ctx, habitID, uuid.New(), time.Time{})
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("db error", func(t *testing.T) {
		habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(habit, nil)
		completionsRepo.EXPECT().GetByHabitAndDateRange(gomock.Any(), habitID, gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db error"))
		_, err := serv.GetHabitStats(ctx, habitID, userID, time.Time{})
		assert.EqualError(t, err, "repository error: db error")
	})
}

func TestGetStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	habitsRepo := mocks.NewMockHabitsRepositoryI(ctrl)
	completionsRepo := mocks.NewMockCompletionsRepositoryI(ctrl)
	serv := service.NewProgressService(habitsRepo, completionsRepo, fixedCalendar())
	uid := uuid.New()
	first := entity.Habit{ID: uuid.New(), UserID: uid, Title: "run", Category: entity.CategoryPhysical, CreatedAt: day(2024, 1, 1)}
	second := entity.Habit{ID: uuid.New(), UserID: uid, Title: "read", Category: entity.CategoryMental, CreatedAt: day(2024, 1, 1)}
	completions := append(completedDays(first.ID, day(2024, 3, 4), day(2024, 3, 5)), completedDays(second.ID, day(2024, 3, 10))...)
	ctx := context.Background()
	t.Run("week", func(t *testing.T) {
		habitsRepo.EXPECT().ListAllByUserID(gomock.Any(), uid).Return([]entity.Habit{first, second}, nil)
		completionsRepo.EXPECT().ListByUserID(gomock.Any(), uid).Return(completions, nil)
		stats, err := serv.GetStats(ctx, uid, progress.TimeframeWeek, time.Time{})
		require.NoError(t, err)
		assert.Equal(t, day(2024, 3, 4), stats.StartDate)
		assert.Equal(t, day(2024, 3, 10), stats.EndDate)
		assert.Equal(t, 2, stats.TotalHabits)
		assert.Equal(t, 2, stats.ActiveHabits)
		// 3 of 14 habit-days
		assert.Equal(t, 21, stats.CompletionRate)
		assert.Len(t, stats.DailyProgress, 7)
		assert.Len(t, stats.RecentActivity, 3)
	})
	t.Run("db error", func(t *testing.T) {
		habitsRepo.EXPECT().ListAllByUserID(gomock.Any(), uid).Return(nil, errors.New("db error"))
		_, err := serv.GetStats(ctx, uid, progress.TimeframeMonth, time.Time{})
		assert.EqualError(t, err, "repository error: db error")
	})
}

func TestGetGamification(t *testing.T) {
	ctrl := gomock.NewController(t)
	habitsRepo := mocks.NewMockHabitsRepositoryI(ctrl)
	completionsRepo := mocks.NewMockCompletionsRepositoryI(ctrl)
	serv := service.NewProgressService(habitsRepo, completionsRepo, fixedCalendar())
	uid := uuid.New()
	habit := entity.Habit{ID: uuid.New(), UserID: uid, Category: entity.CategorySleep, Streak: 10, CreatedAt: day(2024, 3, 1)}
	completions := completedDays(habit.ID, day(2024, 3, 8), day(2024, 3, 9), day(2024, 3, 10))
	ctx := context.Background()
	habitsRepo.EXPECT().ListAllByUserID(gomock.Any(), uid).Return([]entity.Habit{habit}, nil)
	completionsRepo.EXPECT().ListByUserID(gomock.Any(), uid).Return(completions, nil)
	habitsRepo.EXPECT().UpdateStreaks(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
	g, err := serv.GetGamification(ctx, uid, time.Time{})
	require.NoError(t, err)
	// 1 habit * 10 + 3 completions * 5 + streak of 3 * 2
	assert.Equal(t, 31, g.XP)
	assert.Equal(t, 1, g.Level)
	assert.Equal(t, progress.DeriveGamification([]entity.Habit{{ID: habit.ID, Category: habit.Category, Streak: 3}}, completions).Achievements, g.Achievements)
}

func TestRefreshStreaks(t *testing.T) {
	ctrl := gomock.NewController(t)
	habitsRepo := mocks.NewMockHabitsRepositoryI(ctrl)
	completionsRepo := mocks.NewMockCompletionsRepositoryI(ctrl)
	serv := service.NewProgressService(habitsRepo, completionsRepo, fixedCalendar())
	uid := uuid.New()
	fresh := entity.Habit{ID: uuid.New(), UserID: uid, Streak: 2, CreatedAt: day(2024, 3, 1)}
	stale := entity.Habit{ID: uuid.New(), UserID: uid, Streak: 5, CreatedAt: day(2024, 3, 1)}
	completions := append(completedDays(fresh.ID, day(2024, 3, 8), day(2024, 3, 9)), completedDays(stale.ID, day(2024, 3, 2))...)
	ctx := context.Background()
	t.Run("only changed streaks are stored", func(t *testing.T) {
		habitsRepo.EXPECT().ListAllByUserID(gomock.Any(), uid).Return([]entity.Habit{fresh, stale}, nil)
		completionsRepo.EXPECT().ListByUserID(gomock.Any(), uid).Return(completions, nil)
		habitsRepo.EXPECT().UpdateStreaks(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, habits []entity.Habit) error {
			require.Len(t, habits, 1)
			assert.Equal(t, stale.ID, habits[0].ID)
			assert.Equal(t, 0, habits[0].Streak)
			return nil
		})
		habits, err := serv.RefreshStreaks(ctx, uid, time.Time{})
		require.NoError(t, err)
		require.Len(t, habits, 2)
		assert.Equal(t, 2, habits[0].Streak)
		assert.Equal(t, 0, habits[1].Streak)
	})
	t.Run("completions error", func(t *testing.T) {
		habitsRepo.EXPECT().ListAllByUserID(gomock.Any(), uid).Return([]entity.Habit{fresh}, nil)
		completionsRepo.EXPECT().ListByUserID(gomock.Any(), uid).Return(nil, errors.New("db error"))
		_, err := serv.RefreshStreaks(ctx, uid, time.Time{})
		assert.EqualError(t, err, "repository error: db error")
	})
}
