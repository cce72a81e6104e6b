package service

import (
	"errors"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/limbo/habitpulse/internal/progress"
	"github.com/limbo/habitpulse/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("alphanum_underscore", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for i, char := range value {
				// Cannot be started with a digit or underscore
				if i == 0 && (unicode.IsDigit(char) || char == '_') {
					return false
				}
				// Digits, letters or underscore
				if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' {
					return false
				}
			}
			return true
		})
		validate.RegisterValidation("habit_frequency", func(fl validator.FieldLevel) bool {
			return progress.IsKnownFrequency(entity.Frequency(fl.Field().String()))
		})
	})
}

func validationError(prefix error, err error) error {
	if fieldErrs, ok := err.(validator.ValidationErrors); ok {
		joined := []error{prefix}
		for _, fieldErr := range fieldErrs {
			joined = append(joined, fieldErr)
		}
		return errors.Join(joined...)
	}
	return errors.New("validation unexpected error: " + err.Error())
}
