package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/habitpulse/internal/error_values"
	"github.com/limbo/habitpulse/internal/progress"
	"github.com/limbo/habitpulse/internal/repository"
	"github.com/limbo/habitpulse/pkg/entity"
)

const defaultHabitScore = 5

type HabitsService struct {
	repo repository.HabitsRepositoryI
}

func NewHabitsService(habitsRepo repository.HabitsRepositoryI) *HabitsService {
	if habitsRepo == nil {
		log.Fatal("provided nil habitsRepo")
	}
	return &HabitsService{
		repo: habitsRepo,
	}
}

func (hs *HabitsService) CreateHabit(ctx context.Context, uid uuid.UUID, req *CreateHabitRequest) (*entity.Habit, error) {
	if err := validate.Struct(*req); err != nil {
		return nil, validationError(errorvalues.ErrInvalidHabit, err)
	}
	h := progress.NormalizeHabit(entity.Habit{
		UserID:      uid,
		Title:       req.Title,
		Description: req.Description,
		Category:    entity.Category(req.Category),
		Frequency:   req.Frequency,
		IsAbsolute:  req.IsAbsolute,
		Impact:      scoreOrDefault(req.Impact),
		Effort:      scoreOrDefault(req.Effort),
	})
	id, err := hs.repo.Create(ctx, &h)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrOwnerNotFound):
			return nil, errorvalues.ErrUserNotFound
		case errors.Is(err, errorvalues.ErrUserHasHabit):
			return nil, errorvalues.ErrUserHasHabit
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	habit, err := hs.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	return habit, nil
}

func (hs *HabitsService) GetUserHabits(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Habit, error) {
	habits, err := hs.repo.GetByUserID(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	return habits, nil
}

func (hs *HabitsService) UpdateHabit(ctx context.Context, habitID, userID uuid.UUID, req *UpdateHabitRequest) (*entity.Habit, error) {
	if err := validate.Struct(*req); err != nil {
		return nil, validationError(errorvalues.ErrInvalidHabit, err)
	}
	habit, err := hs.GetHabit(ctx, habitID, userID)
	if err != nil {
		return nil, err
	}
	applyUpdate(habit, req)
	*habit = progress.NormalizeHabit(*habit)
	err = hs.repo.Update(ctx, habit)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrHabitNotFound), errors.Is(err, errorvalues.ErrUserHasHabit):
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	updated, err := hs.repo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	return updated, nil
}

func (hs *HabitsService) DeleteHabit(ctx context.Context, habitID, userID uuid.UUID) error {
	if _, err := hs.GetHabit(ctx, habitID, userID); err != nil {
		return err
	}
	err := hs.repo.Delete(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return err
		}
		return errors.New("habits repository error: " + err.Error())
	}
	return nil
}

func (hs *HabitsService) GetHabit(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error) {
	return ownedHabit(ctx, hs.repo, habitID, userID)
}

func ownedHabit(ctx context.Context, repo repository.HabitsRepositoryI, habitID, userID uuid.UUID) (*entity.Habit, error) {
	habit, err := repo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	return habit, nil
}

func applyUpdate(habit *entity.Habit, req *UpdateHabitRequest) {
	if req.Title != nil {
		habit.Title = *req.Title
	}
	if req.Description != nil {
		habit.Description = *req.Description
	}
	if req.Category != nil {
		habit.Category = entity.Category(*req.Category)
	}
	if req.Frequency != nil {
		// Leaving daily drops the implied absolute flag unless it is set explicitly
		if habit.Frequency == entity.FrequencyDaily && *req.Frequency != entity.FrequencyDaily {
			habit.IsAbsolute = false
		}
		habit.Frequency = *req.Frequency
	}
	if req.IsAbsolute != nil {
		habit.IsAbsolute = *req.IsAbsolute
	}
	if req.Impact != nil {
		habit.Impact = *req.Impact
	}
	if req.Effort != nil {
		habit.Effort = *req.Effort
	}
}

func scoreOrDefault(score int) int {
	if score == 0 {
		return defaultHabitScore
	}
	return score
}
