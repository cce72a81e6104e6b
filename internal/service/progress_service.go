package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/habitpulse/internal/progress"
	"github.com/limbo/habitpulse/internal/repository"
	"github.com/limbo/habitpulse/pkg/entity"
)

// ProgressService loads a user's habits and completions and hands them to the
// progress engine.
type ProgressService struct {
	habitsRepo      repository.HabitsRepositoryI
	completionsRepo repository.CompletionsRepositoryI
	calendar        Calendar
}

func NewProgressService(habitsRepo repository.HabitsRepositoryI, completionsRepo repository.CompletionsRepositoryI, calendar Calendar) *ProgressService {
	if habitsRepo == nil || completionsRepo == nil {
		log.Fatal("on progress service provided nil repos")
	}
	return &ProgressService{
		habitsRepo:      habitsRepo,
		completionsRepo: completionsRepo,
		calendar:        calendar,
	}
}

func (serv *ProgressService) GetHabitStats(ctx context.Context, habitID, userID uuid.UUID, today time.Time) (*entity.HabitStats, error) {
	habit, err := ownedHabit(ctx, serv.habitsRepo, habitID, userID)
	if err != nil {
		return nil, err
	}
	today = serv.calendar.resolve(today)
	local := serv.calendar.localize(*habit)
	completions, err := serv.completionsRepo.GetByHabitAndDateRange(ctx, habitID, progress.Day(local.CreatedAt), today)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	total, err := serv.completionsRepo.CountCompletedByHabitID(ctx, habitID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	last, err := serv.completionsRepo.GetLastCompletedDate(ctx, habitID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	idx := progress.NewIndex(completions)
	stats := &entity.HabitStats{
		ID:               habitID,
		TotalCompletions: total,
		CurrentStreak:    progress.ComputeStreakWithOptions(local, idx, today, progress.DefaultStreakOptions),
		MaxStreak:        progress.LongestStreak(local, completions, today),
		LastCompletion:   last,
		Week:             progress.WeeklyProgress(local, idx, progress.WeekStart(today, serv.calendar.WeekStart)),
	}
	if stats.CurrentStreak != habit.Streak {
		local.Streak = stats.CurrentStreak
		serv.storeStreaks(ctx, []entity.Habit{local})
	}
	return stats, nil
}

func (serv *ProgressService) GetStats(ctx context.Context, uid uuid.UUID, tf progress.Timeframe, today time.Time) (*progress.Stats, error) {
	today = serv.calendar.resolve(today)
	habits, completions, err := serv.load(ctx, uid)
	if err != nil {
		return nil, err
	}
	stats := progress.ComputeStats(habits, completions, tf, today, serv.calendar.options())
	return &stats, nil
}

func (serv *ProgressService) GetGamification(ctx context.Context, uid uuid.UUID, today time.Time) (*progress.Gamification, error) {
	habits, completions, err := serv.refresh(ctx, uid, serv.calendar.resolve(today))
	if err != nil {
		return nil, err
	}
	g := progress.DeriveGamification(habits, completions)
	return &g, nil
}

func (serv *ProgressService) RefreshStreaks(ctx context.Context, uid uuid.UUID, today time.Time) ([]entity.Habit, error) {
	habits, _, err := serv.refresh(ctx, uid, serv.calendar.resolve(today))
	if err != nil {
		return nil, err
	}
	return habits, nil
}

func (serv *ProgressService) refresh(ctx context.Context, uid uuid.UUID, today time.Time) ([]entity.Habit, []entity.HabitCompletion, error) {
	habits, completions, err := serv.load(ctx, uid)
	if err != nil {
		return nil, nil, err
	}
	refreshed := progress.RefreshStreaks(habits, completions, today)
	changed := make([]entity.Habit, 0)
	for i := range refreshed {
		if refreshed[i].Streak != habits[i].Streak {
			changed = append(changed, refreshed[i])
		}
	}
	serv.storeStreaks(ctx, changed)
	return refreshed, completions, nil
}

func (serv *ProgressService) load(ctx context.Context, uid uuid.UUID) ([]entity.Habit, []entity.HabitCompletion, error) {
	habits, err := serv.habitsRepo.ListAllByUserID(ctx, uid)
	if err != nil {
		return nil, nil, errors.New("repository error: " + err.Error())
	}
	completions, err := serv.completionsRepo.ListByUserID(ctx, uid)
	if err != nil {
		return nil, nil, errors.New("repository error: " + err.Error())
	}
	return serv.calendar.localizeAll(habits), completions, nil
}

func (serv *ProgressService) storeStreaks(ctx context.Context, habits []entity.Habit) {
	if len(habits) == 0 {
		return
	}
	if err := serv.habitsRepo.UpdateStreaks(ctx, habits); err != nil {
		slog.Warn("storing streaks failed", slog.Int("habits", len(habits)), slog.String("error", err.Error()))
	}
}
