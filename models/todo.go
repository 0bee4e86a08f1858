package models

import (
	"time"

	"github.com/google/uuid"
)

// DueDateLayout is the wire format for due dates submitted by the
// datetime-local form input.
const DueDateLayout = "2006-01-02T15:04"

type Todo struct {
	ID          uuid.UUID  `db:"id"`
	Title       string     `db:"title"`
	Description string     `db:"description"`
	DueDate     *time.Time `db:"due_date"`
	IsCompleted bool       `db:"is_completed"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

func (t Todo) String() string {
	return t.Title
}

// DueDateInput formats the due date for prefilling the edit form.
// Empty string when no due date is set.
func (t Todo) DueDateInput() string {
	if t.DueDate == nil {
		return ""
	}
	return t.DueDate.Format(DueDateLayout)
}

// TodoFields is a validated field set ready to be inserted or applied to an
// existing record.
type TodoFields struct {
	Title       string
	Description string
	DueDate     *time.Time
}
