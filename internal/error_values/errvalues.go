package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrValidation       = errors.New("validation error")

	ErrHabitNotFound = errors.New("habit doesn't exist")
	ErrUserHasHabit  = errors.New("user already has habit with such title")
	ErrOwnerNotFound = errors.New("habit owner doesn't exist")
	ErrWrongOwner    = errors.New("habit belongs to another user")
	ErrInvalidHabit  = errors.New("invalid habit")

	ErrCompletionNotFound       = errors.New("completion doesn't exist")
	ErrCompletionDateNotAllowed = errors.New("completion date is in the future")
	ErrCompletionBeforeCreation = errors.New("completion date is before habit creation")
)
