package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/adanyl0v/go-task-tracker/internal/models"
)

const taskStatusTag = "taskstatus"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	err := v.RegisterValidation(taskStatusTag, func(fl validator.FieldLevel) bool {
		return models.Status(fl.Field().String()).IsValid()
	})
	if err != nil {
		panic(fmt.Errorf("failed to register %s validation: %w", taskStatusTag, err))
	}
	return v
}

// Field order matters: the first failing field wins.
type taskInput struct {
	Title       string        `validate:"required"`
	Description string        `validate:"required"`
	Status      models.Status `validate:"omitempty,taskstatus"`
}

type taskStatusInput struct {
	Status models.Status `validate:"required,taskstatus"`
}

var invalidStatusReason = "Status must be one of: " + joinStatuses(models.Statuses())

func joinStatuses(statuses []models.Status) string {
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// validateTask expects title and description to be trimmed already.
func validateTask(title, description string, status models.Status) error {
	return toValidationError(validate.Struct(taskInput{
		Title:       title,
		Description: description,
		Status:      status,
	}))
}

func validateTaskStatus(status models.Status) error {
	return toValidationError(validate.Struct(taskStatusInput{Status: status}))
}

func toValidationError(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	switch fieldErrs[0].Field() {
	case "Title":
		return &ValidationError{Field: "title", Reason: "Title is required"}
	case "Description":
		return &ValidationError{Field: "description", Reason: "Description is required"}
	default:
		return &ValidationError{Field: "status", Reason: invalidStatusReason}
	}
}
