package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/habitpulse/internal/error_values"
	"github.com/limbo/habitpulse/internal/progress"
	"github.com/limbo/habitpulse/internal/repository"
	"github.com/limbo/habitpulse/pkg/entity"
)

// Days returned when no start of the range is given
const defaultCompletionsWindow = 30

type CompletionsService struct {
	habitsRepo      repository.HabitsRepositoryI
	completionsRepo repository.CompletionsRepositoryI
	calendar        Calendar
}

func NewCompletionsService(habitsRepo repository.HabitsRepositoryI, completionsRepo repository.CompletionsRepositoryI, calendar Calendar) *CompletionsService {
	if habitsRepo == nil || completionsRepo == nil {
		log.Fatal("on completions service provided nil repos")
	}
	return &CompletionsService{
		habitsRepo:      habitsRepo,
		completionsRepo: completionsRepo,
		calendar:        calendar,
	}
}

func (serv *CompletionsService) ToggleCompletion(ctx context.Context, habitID, userID uuid.UUID, date time.Time) (bool, error) {
	habit, day, err := serv.editableDay(ctx, habitID, userID, date)
	if err != nil {
		return false, err
	}
	completed, err := serv.completionsRepo.Toggle(ctx, habitID, day)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return false, err
		}
		return false, errors.New("repository error: " + err.Error())
	}
	serv.syncStreak(ctx, habit)
	return completed, nil
}

func (serv *CompletionsService) SetCompletion(ctx context.Context, habitID, userID uuid.UUID, date time.Time, completed bool) error {
	habit, day, err := serv.editableDay(ctx, habitID, userID, date)
	if err != nil {
		return err
	}
	err = serv.completionsRepo.Set(ctx, habitID, day, completed)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	serv.syncStreak(ctx, habit)
	return nil
}

func (serv *CompletionsService) GetHabitCompletions(ctx context.Context, habitID, userID uuid.UUID, from, to time.Time) ([]entity.HabitCompletion, error) {
	if _, err := ownedHabit(ctx, serv.habitsRepo, habitID, userID); err != nil {
		return nil, err
	}
	to = serv.calendar.resolve(to)
	if from.IsZero() {
		from = progress.AddDays(to, -(defaultCompletionsWindow - 1))
	}
	from = progress.Day(from)
	if from.After(to) {
		from, to = to, from
	}
	completions, err := serv.completionsRepo.GetByHabitAndDateRange(ctx, habitID, from, to)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return completions, nil
}

// editableDay checks ownership and that date lies between the creation day
// of the habit and today. A zero date means today.
func (serv *CompletionsService) editableDay(ctx context.Context, habitID, userID uuid.UUID, date time.Time) (*entity.Habit, time.Time, error) {
	habit, err := ownedHabit(ctx, serv.habitsRepo, habitID, userID)
	if err != nil {
		return nil, time.Time{}, err
	}
	day := serv.calendar.resolve(date)
	if day.After(serv.calendar.Today()) {
		return nil, time.Time{}, errorvalues.ErrCompletionDateNotAllowed
	}
	if day.Before(progress.Day(serv.calendar.localize(*habit).CreatedAt)) {
		return nil, time.Time{}, errorvalues.ErrCompletionBeforeCreation
	}
	return habit, day, nil
}

// syncStreak stores the recomputed streak of habit. Failures are only logged.
func (serv *CompletionsService) syncStreak(ctx context.Context, habit *entity.Habit) {
	local := serv.calendar.localize(*habit)
	today := serv.calendar.Today()
	completions, err := serv.completionsRepo.GetByHabitAndDateRange(ctx, habit.ID, progress.Day(local.CreatedAt), today)
	if err != nil {
		slog.Warn("loading completions for streak failed", slog.String("habit_id", habit.ID.String()), slog.String("error", err.Error()))
		return
	}
	streak := progress.ComputeStreak(local, completions, today)
	if streak == habit.Streak {
		return
	}
	updated := *habit
	updated.Streak = streak
	if err = serv.habitsRepo.UpdateStreaks(ctx, []entity.Habit{updated}); err != nil {
		slog.Warn("storing streak failed", slog.String("habit_id", habit.ID.String()), slog.String("error", err.Error()))
	}
}
