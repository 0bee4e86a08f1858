package utils

import (
	"strings"
	"time"

	"tickoff/models"
)

// ValidateTodoForm checks raw form input and returns the validated field set,
// or a non-empty map of field name to error message. The same rules apply
// whether the caller is creating a new todo or updating an existing one.
// An empty due date means "no due date", not a failure.
func ValidateTodoForm(title, description, dueDate string) (models.TodoFields, map[string]string) {
	errs := map[string]string{}

	fields := models.TodoFields{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
	}

	if fields.Title == "" {
		errs["title"] = "Title is required."
	}

	if s := strings.TrimSpace(dueDate); s != "" {
		due, err := time.ParseInLocation(models.DueDateLayout, s, time.Local)
		if err != nil {
			errs["due_date"] = "Due date must look like 2025-12-31T23:59."
		} else {
			fields.DueDate = &due
		}
	}

	if len(errs) > 0 {
		return models.TodoFields{}, errs
	}
	return fields, nil
}
