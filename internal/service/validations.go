package service

import (
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/rexfit/internal/error_values"
	"github.com/limbo/rexfit/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("routine", func(fl validator.FieldLevel) bool {
			return entity.RoutineType(fl.Field().String()).Valid()
		})
		validate.RegisterValidation("mood", func(fl validator.FieldLevel) bool {
			return entity.Mood(fl.Field().String()).Valid()
		})
	})
}

// validateRequest joins every field error onto ErrInvalidInput.
func validateRequest(req any) error {
	InitValidator()
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	if validationError, ok := err.(validator.ValidationErrors); ok {
		err = errorvalues.ErrInvalidInput
		for _, fieldErr := range validationError {
			err = errors.Join(err, fieldErr)
		}
		return err
	}
	return errors.New("validation unexpected error: " + err.Error())
}
