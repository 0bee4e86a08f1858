package utils

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tickoff/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrTodoNotFound is returned when the requested id has no row.
var ErrTodoNotFound = errors.New("todo not found")

const queryTimeout = 10 * time.Second

const todoColumns = "id, title, description, due_date, is_completed, created_at, updated_at"

// TodoStore is the persistence surface the handlers depend on.
type TodoStore interface {
	List(ctx context.Context) ([]models.Todo, error)
	Get(ctx context.Context, id uuid.UUID) (models.Todo, error)
	Insert(ctx context.Context, fields models.TodoFields) (models.Todo, error)
	Update(ctx context.Context, id uuid.UUID, fields models.TodoFields) error
	Delete(ctx context.Context, id uuid.UUID) error
	Toggle(ctx context.Context, id uuid.UUID) (bool, error)
	DueBefore(ctx context.Context, cutoff time.Time) ([]models.Todo, error)
}

// PostgresTodoStore implements TodoStore on a pgx connection pool.
type PostgresTodoStore struct {
	db *pgxpool.Pool
}

func NewPostgresTodoStore(db *pgxpool.Pool) *PostgresTodoStore {
	return &PostgresTodoStore{db: db}
}

func scanTodo(row pgx.Row) (models.Todo, error) {
	var t models.Todo
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.DueDate, &t.IsCompleted, &t.CreatedAt, &t.UpdatedAt)
	if err == pgx.ErrNoRows {
		return t, ErrTodoNotFound
	}
	return t, err
}

func (s *PostgresTodoStore) collect(ctx context.Context, stmt string, args ...any) ([]models.Todo, error) {
	rows, err := s.db.Query(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("querying todos: %w", err)
	}
	defer rows.Close()

	todos := []models.Todo{}
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning todo row: %w", err)
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

// List returns every todo. The descending creation-time order is part of the
// contract, so it is spelled out rather than left to the engine.
func (s *PostgresTodoStore) List(ctx context.Context) ([]models.Todo, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmt := "SELECT " + todoColumns + " FROM todos ORDER BY created_at DESC"
	return s.collect(ctx, stmt)
}

func (s *PostgresTodoStore) Get(ctx context.Context, id uuid.UUID) (models.Todo, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmt := "SELECT " + todoColumns + " FROM todos WHERE id = $1"
	return scanTodo(s.db.QueryRow(ctx, stmt, id))
}

func (s *PostgresTodoStore) Insert(ctx context.Context, fields models.TodoFields) (models.Todo, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmt := "INSERT INTO todos (id, title, description, due_date) VALUES ($1, $2, $3, $4) RETURNING " + todoColumns
	t, err := scanTodo(s.db.QueryRow(ctx, stmt, uuid.New(), fields.Title, fields.Description, fields.DueDate))
	if err != nil {
		return t, fmt.Errorf("inserting todo: %w", err)
	}
	return t, nil
}

func (s *PostgresTodoStore) Update(ctx context.Context, id uuid.UUID, fields models.TodoFields) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmt := "UPDATE todos SET title = $2, description = $3, due_date = $4, updated_at = NOW() WHERE id = $1"
	tag, err := s.db.Exec(ctx, stmt, id, fields.Title, fields.Description, fields.DueDate)
	if err != nil {
		return fmt.Errorf("updating todo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTodoNotFound
	}
	return nil
}

func (s *PostgresTodoStore) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tag, err := s.db.Exec(ctx, "DELETE FROM todos WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("deleting todo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTodoNotFound
	}
	return nil
}

// Toggle flips is_completed in a single statement and reports the new value.
func (s *PostgresTodoStore) Toggle(ctx context.Context, id uuid.UUID) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmt := "UPDATE todos SET is_completed = NOT is_completed, updated_at = NOW() WHERE id = $1 RETURNING is_completed"
	var completed bool
	err := s.db.QueryRow(ctx, stmt, id).Scan(&completed)
	if err == pgx.ErrNoRows {
		return false, ErrTodoNotFound
	}
	if err != nil {
		return false, fmt.Errorf("toggling todo: %w", err)
	}
	return completed, nil
}

// DueBefore returns incomplete todos whose due date falls before the cutoff,
// soonest first.
func (s *PostgresTodoStore) DueBefore(ctx context.Context, cutoff time.Time) ([]models.Todo, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmt := "SELECT " + todoColumns + " FROM todos WHERE is_completed = FALSE AND due_date IS NOT NULL AND due_date < $1 ORDER BY due_date ASC"
	return s.collect(ctx, stmt, cutoff)
}
