package models_test

import (
	"fmt"
	"testing"
	"time"

	"tickoff/models"
)

func TestTodoStringReturnsTitle(t *testing.T) {
	todo := models.Todo{Title: "My Todo"}

	if got := todo.String(); got != "My Todo" {
		t.Errorf("String() = %q, want %q", got, "My Todo")
	}
	if got := fmt.Sprint(todo); got != "My Todo" {
		t.Errorf("fmt.Sprint() = %q, want %q", got, "My Todo")
	}
}

func TestDueDateInput(t *testing.T) {
	var todo models.Todo
	if got := todo.DueDateInput(); got != "" {
		t.Errorf("DueDateInput() with no due date = %q, want empty", got)
	}

	due := time.Date(2025, time.December, 31, 23, 59, 0, 0, time.Local)
	todo.DueDate = &due
	if got, want := todo.DueDateInput(), "2025-12-31T23:59"; got != want {
		t.Errorf("DueDateInput() = %q, want %q", got, want)
	}
}
